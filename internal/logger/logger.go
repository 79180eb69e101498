package logger

import (
	"io"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// New создает логгер с заданным уровнем; неизвестный уровень трактуется как info
func New(level string, w io.Writer) zerolog.Logger {
	zerolog.TimeFieldFormat = time.RFC3339

	lvl, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(level)))
	if err != nil || lvl == zerolog.NoLevel {
		lvl = zerolog.InfoLevel
	}

	return zerolog.New(w).Level(lvl).With().Timestamp().Logger()
}
