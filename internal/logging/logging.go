// Package logging builds zerolog loggers from configuration.
package logging

import (
	"io"
	"time"

	"github.com/rs/zerolog"
)

// New creates a logger writing to w. An unknown level falls back to info.
func New(cfg Config, w io.Writer, serviceName string) zerolog.Logger {
	level, err := zerolog.ParseLevel(cfg.Level)
	if err != nil || cfg.Level == "" {
		level = zerolog.InfoLevel
	}

	var zl zerolog.Logger
	if cfg.Format == FormatJSON {
		zl = zerolog.New(w)
	} else {
		zl = zerolog.New(zerolog.ConsoleWriter{
			Out:        w,
			NoColor:    cfg.NoColor,
			TimeFormat: time.Kitchen,
		})
	}

	ctx := zl.Level(level).With().Str("service", serviceName)
	if cfg.Timestamp {
		ctx = ctx.Timestamp()
	}
	return ctx.Logger()
}
