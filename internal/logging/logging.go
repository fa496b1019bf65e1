// Package logging configures the zerolog logger used by the command line tools.
package logging

import (
	"context"
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// New returns a logger writing to w at the named level. Unknown levels fall
// back to info. console switches from JSON lines to human readable output.
func New(w io.Writer, level string, console bool) zerolog.Logger {
	name := strings.ToLower(strings.TrimSpace(level))
	lvl, err := zerolog.ParseLevel(name)
	if err != nil || name == "" {
		lvl = zerolog.InfoLevel
	}
	if console {
		w = zerolog.ConsoleWriter{Out: w, TimeFormat: time.RFC3339}
	}
	return zerolog.New(w).Level(lvl).With().Timestamp().Logger()
}

// Setup installs a stderr logger as the global logger and returns a context
// carrying it, so log.Ctx picks it up in the client packages.
func Setup(ctx context.Context, level string, console bool) context.Context {
	l := New(os.Stderr, level, console)
	log.Logger = l
	zerolog.DefaultContextLogger = &l
	return l.WithContext(ctx)
}
