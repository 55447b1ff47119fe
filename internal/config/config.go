// Package config loads CLI settings from the environment and an optional
// .env file.
package config

import (
	stderrors "errors"
	"io"
	"io/fs"
	"log/slog"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"github.com/KirkDiggler/genesys-dice/internal/errors"
)

// Output and log formats
const (
	FormatText = "text"
	FormatJSON = "json"
)

var (
	logLevels = []string{"debug", "info", "warn", "error"}
	formats   = []string{FormatText, FormatJSON}
)

// Config holds settings shared by every command
type Config struct {
	LogLevel  string `env:"GENESYS_DICE_LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"GENESYS_DICE_LOG_FORMAT" envDefault:"text"`
	Output    string `env:"GENESYS_DICE_OUTPUT" envDefault:"text"`

	// Seed makes every roll reproducible when set
	Seed *int64 `env:"GENESYS_DICE_SEED"`
}

// Load reads the given .env files, or ".env" when none are named, then parses
// the environment. Missing files are ignored. Variables already set in the
// environment win over file values.
func Load(files ...string) (*Config, error) {
	if err := godotenv.Load(files...); err != nil && !stderrors.Is(err, fs.ErrNotExist) {
		return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "failed to load env file")
	}

	return Parse()
}

// Parse reads the configuration from the environment only
func Parse() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "failed to parse environment")
	}

	cfg.LogLevel = strings.ToLower(cfg.LogLevel)
	cfg.LogFormat = strings.ToLower(cfg.LogFormat)
	cfg.Output = strings.ToLower(cfg.Output)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks every enumerated setting
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	errors.ValidateEnum("GENESYS_DICE_LOG_LEVEL", c.LogLevel, logLevels, vb)
	errors.ValidateEnum("GENESYS_DICE_LOG_FORMAT", c.LogFormat, formats, vb)
	errors.ValidateEnum("GENESYS_DICE_OUTPUT", c.Output, formats, vb)

	return vb.Build()
}

// Level maps LogLevel to a slog level. Unknown values map to info.
func (c *Config) Level() slog.Level {
	switch c.LogLevel {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// Logger builds a logger writing to w in the configured format
func (c *Config) Logger(w io.Writer) *slog.Logger {
	opts := &slog.HandlerOptions{Level: c.Level()}
	if c.LogFormat == FormatJSON {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}
