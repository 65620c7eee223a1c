package commands

import (
	"errors"
	"fmt"
	"io"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"StockAnalyzer/internal/analysis"
	"StockAnalyzer/internal/collector"
	"StockAnalyzer/internal/config"
	"StockAnalyzer/internal/loader"
	"StockAnalyzer/internal/logger"
	"StockAnalyzer/internal/notifier"
	"StockAnalyzer/internal/recorder"
)

// app is the wiring shared by every command.
type app struct {
	cfg     *config.Config
	log     zerolog.Logger
	service *analysis.Service
	rec     recorder.Recorder
	out     notifier.Notifier
}

func newApp(stdout, stderr io.Writer) (*app, error) {
	cfg, err := config.Load(configFile)
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation: %w", err)
	}
	if offline {
		disabled := false
		cfg.Quote.Enabled = &disabled
	}
	level := cfg.Log.Level
	if verbose {
		level = "debug"
	}
	log := logger.New(level, cfg.Log.Format, stderr)

	data := &loader.Loader{
		FundamentalsFile: cfg.Data.FundamentalsFile,
		PricesFile:       cfg.Data.PricesFile,
		BenchmarkFile:    cfg.Data.BenchmarkFile,
		Instruments:      cfg.InstrumentNames(),
		Log:              log.With().Str("component", "loader").Logger(),
	}

	var fetcher collector.Fetcher
	if cfg.QuotesEnabled() {
		fetcher = newFetcher(cfg)
		log.Debug().Str("source", fetcher.Name()).Msg("live quotes enabled")
	}
	resolver := collector.NewResolver(fetcher, cfg.Quote.RatePerSecond, log.With().Str("component", "quotes").Logger())

	var rec recorder.Recorder = recorder.NewNoopRecorder()
	if cfg.Database.SQLitePath != "" {
		sr, err := recorder.NewSQLiteRecorder(cfg.Database.SQLitePath, log)
		if err != nil {
			log.Warn().Err(err).Msg("init sqlite recorder failed, history disabled")
		} else {
			rec = sr
		}
	}

	return &app{
		cfg:     cfg,
		log:     log,
		service: analysis.NewService(cfg.Instruments, data, resolver, rec, log),
		rec:     rec,
		out:     notifier.NewConsoleNotifier(stdout),
	}, nil
}

func newFetcher(cfg *config.Config) collector.Fetcher {
	switch cfg.Quote.Source {
	case config.SourceREST:
		return collector.NewRESTFetcher(cfg.Quote.BaseURL, cfg.Quote.APIKey, cfg.Proxy)
	case config.SourceScrape:
		return collector.NewScrapeFetcher(cfg.Quote.BaseURL, cfg.Quote.Selector, cfg.Proxy)
	default:
		f := collector.NewYahooFetcher(cfg.Proxy)
		if cfg.Quote.BaseURL != "" {
			f.BaseURL = cfg.Quote.BaseURL
		}
		return f
	}
}

func (a *app) close() {
	if err := a.rec.Close(); err != nil {
		a.log.Warn().Err(err).Msg("close recorder")
	}
}

// show displays a dialog and returns its error, if any.
func (a *app) show(d analysis.Dialog) error {
	if err := a.out.Show(d.Title, d.Body); err != nil {
		return err
	}
	return d.Err
}

// showError displays msg as an error dialog. A failing notifier is logged,
// the caller still returns its own error.
func (a *app) showError(msg string) {
	if err := a.out.Show(notifier.TitleError, msg); err != nil {
		a.log.Warn().Err(err).Msg("show error dialog")
	}
}

// withApp builds the app for one command run.
func withApp(cmd *cobra.Command, fn func(a *app) error) error {
	a, err := newApp(cmd.OutOrStdout(), cmd.ErrOrStderr())
	if err != nil {
		if showErr := notifier.NewConsoleNotifier(cmd.ErrOrStderr()).Show(notifier.TitleError, err.Error()); showErr != nil {
			return errors.Join(err, showErr)
		}
		return err
	}
	defer a.close()
	return fn(a)
}
