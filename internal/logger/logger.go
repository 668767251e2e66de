package logger

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"

	"trivia-app/internal/config"
)

// New builds the application logger. Local runs get a human readable console
// writer, everything else emits JSON lines.
func New(cfg config.Config) zerolog.Logger {
	var w io.Writer = os.Stdout
	if cfg.IsLocal() {
		w = zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.Kitchen}
	}
	return newWithWriter(w, cfg.LogLevel)
}

func newWithWriter(w io.Writer, level string) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil || level == "" {
		lvl = zerolog.InfoLevel
	}
	return zerolog.New(w).Level(lvl).With().Timestamp().Logger()
}
