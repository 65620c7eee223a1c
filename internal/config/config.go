package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"StockAnalyzer/internal/model"
)

// Quote sources.
const (
	SourceYahoo  = "yahoo"
	SourceREST   = "rest"
	SourceScrape = "scrape"
)

// DefaultInstruments is the catalogue used when the config file lists none.
var DefaultInstruments = []model.Instrument{
	{Name: "Ericsson", Ticker: "ERIC"},
	{Name: "Electrolux", Ticker: "ELUX-B.ST"},
	{Name: "AstraZeneca", Ticker: "AZN.L"},
}

// Config holds all application configuration.
type Config struct {
	Data struct {
		FundamentalsFile string `yaml:"fundamentals_file"`
		PricesFile       string `yaml:"prices_file"`
		BenchmarkFile    string `yaml:"benchmark_file"`
	} `yaml:"data"`
	Instruments []model.Instrument `yaml:"instruments"`
	Quote       struct {
		Enabled       *bool   `yaml:"enabled"`
		Source        string  `yaml:"source"`
		BaseURL       string  `yaml:"base_url"`
		APIKey        string  `yaml:"api_key"`
		Selector      string  `yaml:"selector"`
		RatePerSecond float64 `yaml:"rate_per_second"`
	} `yaml:"quote"`
	Telegram struct {
		BotToken string `yaml:"bot_token"`
		ChatID   string `yaml:"chat_id"`
	} `yaml:"telegram"`
	Schedule struct {
		RankCron string `yaml:"rank_cron"`
	} `yaml:"schedule"`
	Database struct {
		SQLitePath string `yaml:"sqlite_path"`
	} `yaml:"database"`
	Log struct {
		Level  string `yaml:"level"`
		Format string `yaml:"format"`
	} `yaml:"log"`
	Proxy string `yaml:"proxy"`
}

// Load reads config from a YAML file, then applies .env and environment
// variable overrides and fills defaults. A missing file is not an error.
func Load(path string) (*Config, error) {
	cfg := &Config{}

	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if len(data) > 0 {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	// .env never overrides variables already set in the environment.
	_ = godotenv.Load()

	if v := os.Getenv("FUNDAMENTALS_FILE"); v != "" {
		cfg.Data.FundamentalsFile = v
	}
	if v := os.Getenv("PRICES_FILE"); v != "" {
		cfg.Data.PricesFile = v
	}
	if v := os.Getenv("BENCHMARK_FILE"); v != "" {
		cfg.Data.BenchmarkFile = v
	}
	if v := os.Getenv("QUOTE_ENABLED"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.Quote.Enabled = &b
		}
	}
	if v := os.Getenv("QUOTE_SOURCE"); v != "" {
		cfg.Quote.Source = v
	}
	if v := os.Getenv("QUOTE_BASE_URL"); v != "" {
		cfg.Quote.BaseURL = v
	}
	if v := os.Getenv("QUOTE_API_KEY"); v != "" {
		cfg.Quote.APIKey = v
	}
	if v := os.Getenv("TELEGRAM_BOT_TOKEN"); v != "" {
		cfg.Telegram.BotToken = v
	}
	if v := os.Getenv("TELEGRAM_CHAT_ID"); v != "" {
		cfg.Telegram.ChatID = v
	}
	if v := os.Getenv("CRON_RANK"); v != "" {
		cfg.Schedule.RankCron = v
	}
	if v := os.Getenv("SQLITE_PATH"); v != "" {
		cfg.Database.SQLitePath = v
	}
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		cfg.Log.Level = v
	}
	if v := os.Getenv("LOG_FORMAT"); v != "" {
		cfg.Log.Format = v
	}
	if v := os.Getenv("HTTPS_PROXY"); v != "" {
		cfg.Proxy = v
	}

	// Defaults
	if cfg.Data.FundamentalsFile == "" {
		cfg.Data.FundamentalsFile = "fundamenta.txt"
	}
	if cfg.Data.PricesFile == "" {
		cfg.Data.PricesFile = "kurser.txt"
	}
	if cfg.Data.BenchmarkFile == "" {
		cfg.Data.BenchmarkFile = "omx.txt"
	}
	if len(cfg.Instruments) == 0 {
		cfg.Instruments = append([]model.Instrument(nil), DefaultInstruments...)
	}
	if cfg.Quote.Enabled == nil {
		enabled := true
		cfg.Quote.Enabled = &enabled
	}
	if cfg.Quote.Source == "" {
		cfg.Quote.Source = SourceYahoo
	}
	if cfg.Quote.RatePerSecond == 0 {
		cfg.Quote.RatePerSecond = 2
	}
	if cfg.Schedule.RankCron == "" {
		cfg.Schedule.RankCron = "0 30 17 * * 1-5"
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = "info"
	}
	if cfg.Log.Format == "" {
		cfg.Log.Format = "console"
	}

	return cfg, nil
}

// QuotesEnabled reports whether live price lookups are switched on.
func (c *Config) QuotesEnabled() bool {
	return c.Quote.Enabled != nil && *c.Quote.Enabled
}

// InstrumentNames returns the catalogue names in configured order.
func (c *Config) InstrumentNames() []string {
	names := make([]string, len(c.Instruments))
	for i, in := range c.Instruments {
		names[i] = in.Name
	}
	return names
}

// Instrument looks up a catalogue entry by name.
func (c *Config) Instrument(name string) (model.Instrument, bool) {
	for _, in := range c.Instruments {
		if in.Name == name {
			return in, true
		}
	}
	return model.Instrument{}, false
}

// Validate checks the catalogue and quote settings.
func (c *Config) Validate() error {
	seen := make(map[string]bool, len(c.Instruments))
	for i, in := range c.Instruments {
		if in.Name == "" {
			return fmt.Errorf("instruments[%d].name is required", i)
		}
		if seen[in.Name] {
			return fmt.Errorf("instruments: duplicate name %q", in.Name)
		}
		seen[in.Name] = true
	}
	switch c.Quote.Source {
	case SourceYahoo:
	case SourceREST:
		if c.Quote.BaseURL == "" {
			return fmt.Errorf("quote.base_url is required for source %q", c.Quote.Source)
		}
	case SourceScrape:
		if c.Quote.BaseURL == "" || c.Quote.Selector == "" {
			return fmt.Errorf("quote.base_url and quote.selector are required for source %q", c.Quote.Source)
		}
	default:
		return fmt.Errorf("quote.source must be one of %s, %s, %s", SourceYahoo, SourceREST, SourceScrape)
	}
	if c.Quote.RatePerSecond < 0 {
		return fmt.Errorf("quote.rate_per_second must not be negative")
	}
	return nil
}

// ValidateTelegram checks the settings needed by bot mode.
func (c *Config) ValidateTelegram() error {
	if c.Telegram.BotToken == "" {
		return fmt.Errorf("telegram.bot_token is required")
	}
	if c.Telegram.ChatID == "" {
		return fmt.Errorf("telegram.chat_id is required")
	}
	return nil
}
