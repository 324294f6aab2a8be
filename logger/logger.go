package logger

import (
	"github.com/rs/zerolog"
	"github.com/viant/leadsdesk/config"
	"io"
	"os"
)

type Logger = zerolog.Logger

// New builds a logger writing JSON or console output to w (stderr when nil).
func New(cfg *config.LogConfig, w io.Writer) Logger {
	if w == nil {
		w = os.Stderr
	}
	level, err := zerolog.ParseLevel(cfg.Level)
	if err != nil || cfg.Level == "" {
		level = zerolog.InfoLevel
	}
	if cfg.Format != "json" {
		w = zerolog.ConsoleWriter{Out: w}
	}
	return zerolog.New(w).Level(level).With().Timestamp().Logger()
}
