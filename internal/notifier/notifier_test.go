package notifier

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"StockAnalyzer/internal/model"
)

func TestFormatFundamental(t *testing.T) {
	got := FormatFundamental(model.FundamentalRecord{Name: "Ericsson", Solvency: "38", PE: "14.2", PS: "n/a"})
	assert.Equal(t, "Solvency: 38%\nP/E: 14.2\nP/S: n/a", got)
	assert.Equal(t, "Fundamental analysis - Ericsson", FundamentalTitle("Ericsson"))
}

func TestFormatTechnical(t *testing.T) {
	res := model.BetaResult{
		Instrument:    "Ericsson",
		PercentReturn: 12.5,
		Beta:          model.BetaOf(1.2),
		High:          70,
		Low:           50.25,
		EndPrice:      61.24,
		Live:          true,
	}
	assert.Equal(t, "Price change: 12.5%\nBeta: 1.2\nHigh: 70\nLow: 50.25\nEnd price: 61.24 (live quote)", FormatTechnical(res))

	res.Beta = model.BetaUnavailable()
	res.Live = false
	got := FormatTechnical(res)
	assert.Contains(t, got, "Beta: unavailable\n")
	assert.Contains(t, got, "(last stored price)")
}

func TestFormatRanking(t *testing.T) {
	got := FormatRanking([]model.RankEntry{
		{Position: 1, Instrument: "B", Beta: 1.2},
		{Position: 2, Instrument: "A", Beta: 0.5},
	})
	assert.Equal(t, "1. B - 1.2\n2. A - 0.5", got)
	assert.Equal(t, "No instruments could be ranked.", FormatRanking(nil))
}

func TestFormatHistory(t *testing.T) {
	got := FormatHistory([]model.BetaResult{
		{Instrument: "A", PercentReturn: -3.5, Beta: model.BetaOf(-0.7)},
		{Instrument: "B", PercentReturn: 10},
	})
	assert.Equal(t, "A: -3.5%, beta -0.7\nB: 10%, beta unavailable", got)
	assert.Equal(t, "No analyses recorded.", FormatHistory(nil))
}

func TestConsoleNotifier(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewConsoleNotifier(&buf).Show("Instrument ranking", "1. B - 1.2\n2. A - 0.5"))

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 6)
	assert.Equal(t, doubleRule, lines[0])
	assert.Equal(t, "  Instrument ranking", lines[1])
	assert.Equal(t, singleRule, lines[2])
	assert.Equal(t, "  1. B - 1.2", lines[3])
	assert.Equal(t, "  2. A - 0.5", lines[4])
	assert.Equal(t, doubleRule, lines[5])
}

func TestFormatHTML(t *testing.T) {
	assert.Equal(t, "<b>P/E &lt;10</b>\n\na &amp; b", FormatHTML("P/E <10", "a & b"))
}

type fakeTelegram struct {
	mu      sync.Mutex
	sent    []string
	polls   int
	updates string
	fail    int
	chatID  string
}

func (f *fakeTelegram) handler(t *testing.T) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		f.mu.Lock()
		defer f.mu.Unlock()
		switch {
		case strings.HasSuffix(r.URL.Path, "/sendMessage"):
			if f.fail > 0 {
				f.fail--
				http.Error(w, "boom", http.StatusBadGateway)
				return
			}
			var payload map[string]string
			assert.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
			chat := f.chatID
			if chat == "" {
				chat = "chat"
			}
			assert.Equal(t, chat, payload["chat_id"])
			assert.Equal(t, "HTML", payload["parse_mode"])
			f.sent = append(f.sent, payload["text"])
			fmt.Fprint(w, `{"ok":true}`)
		case strings.HasSuffix(r.URL.Path, "/getUpdates"):
			f.polls++
			if f.polls == 1 {
				fmt.Fprint(w, f.updates)
				return
			}
			fmt.Fprint(w, `{"ok":true,"result":[]}`)
		default:
			http.NotFound(w, r)
		}
	})
}

func (f *fakeTelegram) messages() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.sent...)
}

func TestTelegramNotifier_Show(t *testing.T) {
	fake := &fakeTelegram{}
	srv := httptest.NewServer(fake.handler(t))
	defer srv.Close()

	tn := NewTelegramNotifier("token", "chat", "", zerolog.Nop())
	tn.APIURL = srv.URL

	require.NoError(t, tn.Show("Instrument ranking", "1. B - 1.2"))
	assert.Equal(t, []string{"<b>Instrument ranking</b>\n\n1. B - 1.2"}, fake.messages())
}

func TestTelegramNotifier_SendError(t *testing.T) {
	fake := &fakeTelegram{fail: 1}
	srv := httptest.NewServer(fake.handler(t))
	defer srv.Close()

	tn := NewTelegramNotifier("token", "chat", "", zerolog.Nop())
	tn.APIURL = srv.URL

	err := tn.Send("hello")
	assert.ErrorContains(t, err, "status 502")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	fake.fail = 1
	assert.ErrorIs(t, tn.SendWithRetry(ctx, "hello", 2), context.Canceled)
}

func TestTelegramNotifier_StartPolling(t *testing.T) {
	fake := &fakeTelegram{chatID: "42", updates: `{"ok":true,"result":[
		{"update_id":6,"message":{"text":"/rank","chat":{"id":777}}},
		{"update_id":7,"message":{"text":" /rank ","chat":{"id":42}}},
		{"update_id":8},
		{"update_id":9,"message":{"text":"/ignored","chat":{"id":42}}}
	]}`}
	srv := httptest.NewServer(fake.handler(t))
	defer srv.Close()

	tn := NewTelegramNotifier("token", "42", "", zerolog.Nop())
	tn.APIURL = srv.URL

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var (
		mu       sync.Mutex
		commands []string
	)
	handler := func(_ context.Context, cmd string) (string, string) {
		mu.Lock()
		commands = append(commands, cmd)
		mu.Unlock()
		if cmd == "/rank" {
			return "Instrument ranking", "1. A - 1"
		}
		return "", ""
	}

	done := make(chan struct{})
	go func() {
		tn.StartPolling(ctx, handler)
		close(done)
	}()

	require.Eventually(t, func() bool { return len(fake.messages()) == 1 }, 5*time.Second, 10*time.Millisecond)
	cancel()
	select {
	case <-done:
	case <-time.After(40 * time.Second):
		t.Fatal("polling did not stop")
	}

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, []string{"/rank", "/ignored"}, commands)
	assert.Equal(t, "<b>Instrument ranking</b>\n\n1. A - 1", fake.messages()[0])
}
