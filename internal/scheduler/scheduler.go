package scheduler

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog"

	"StockAnalyzer/internal/analysis"
	"StockAnalyzer/internal/notifier"
)

// Scheduler runs the periodic ranking report and dispatches chat commands.
// Actions never overlap: a cron run and a chat command wait for each other.
type Scheduler struct {
	Cron     *cron.Cron
	Service  *analysis.Service
	Notifier notifier.Notifier
	Log      zerolog.Logger
	Ctx      context.Context

	mu sync.Mutex
}

// NewScheduler creates a new Scheduler.
func NewScheduler(ctx context.Context, svc *analysis.Service, n notifier.Notifier, log zerolog.Logger) *Scheduler {
	return &Scheduler{
		Cron:     cron.New(cron.WithSeconds()),
		Service:  svc,
		Notifier: n,
		Log:      log,
		Ctx:      ctx,
	}
}

// RegisterRankReport schedules the ranking report.
func (s *Scheduler) RegisterRankReport(spec string) error {
	if _, err := s.Cron.AddFunc(spec, s.rankTask); err != nil {
		return fmt.Errorf("register rank report: %w", err)
	}
	return nil
}

// Start starts the cron scheduler.
func (s *Scheduler) Start() {
	s.Cron.Start()
	s.Log.Info().Msg("scheduler started")
}

// Stop stops the cron scheduler and waits for a running job.
func (s *Scheduler) Stop() {
	<-s.Cron.Stop().Done()
	s.Log.Info().Msg("scheduler stopped")
}

// RunRankNow executes the ranking report immediately.
func (s *Scheduler) RunRankNow() {
	s.rankTask()
}

func (s *Scheduler) rankTask() {
	s.Log.Info().Msg("running rank report")
	s.mu.Lock()
	d := s.Service.RankDialog(s.Ctx)
	s.mu.Unlock()
	if d.Err != nil {
		s.Log.Error().Err(d.Err).Msg("rank report")
	}
	s.show(d.Title, d.Body)
}

// HandleCommand runs one chat command and returns the dialog to send back.
func (s *Scheduler) HandleCommand(ctx context.Context, text string) (title, body string) {
	cmd, arg := splitCommand(text)

	s.mu.Lock()
	defer s.mu.Unlock()

	var d analysis.Dialog
	switch cmd {
	case "/fundamental":
		if arg == "" {
			return "Usage", "/fundamental <instrument>"
		}
		d = s.Service.FundamentalDialog(ctx, arg)
	case "/technical":
		if arg == "" {
			return "Usage", "/technical <instrument>"
		}
		d = s.Service.TechnicalDialog(ctx, arg)
	case "/rank":
		d = s.Service.RankDialog(ctx)
	case "/instruments":
		names := make([]string, 0)
		for _, in := range s.Service.Instruments() {
			names = append(names, in.Name)
		}
		return "Instruments", strings.Join(names, "\n")
	case "/history":
		rows, err := s.Service.History(10)
		if err != nil {
			return notifier.TitleError, err.Error()
		}
		return "History", notifier.FormatHistory(rows)
	default:
		return "Commands", strings.Join([]string{
			"/fundamental <instrument>",
			"/technical <instrument>",
			"/rank",
			"/instruments",
			"/history",
		}, "\n")
	}
	if d.Err != nil {
		s.Log.Warn().Err(d.Err).Str("command", cmd).Msg("command failed")
	}
	return d.Title, d.Body
}

// splitCommand splits "/cmd@bot some name" into "/cmd" and "some name".
func splitCommand(text string) (cmd, arg string) {
	text = strings.TrimSpace(text)
	cmd, arg, _ = strings.Cut(text, " ")
	if i := strings.Index(cmd, "@"); i >= 0 {
		cmd = cmd[:i]
	}
	return strings.ToLower(cmd), strings.TrimSpace(arg)
}

func (s *Scheduler) show(title, body string) {
	if err := s.Notifier.Show(title, body); err != nil {
		s.Log.Error().Err(err).Msg("send notification")
	}
}
