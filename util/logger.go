package util

import (
	"io"
	"os"
	"strings"
	"sync"

	"github.com/rs/zerolog"
)

var (
	appLogger   zerolog.Logger
	appLoggerMu sync.RWMutex
)

func init() {
	appLogger = NewLogger(os.Stdout, os.Getenv("APPENV"), os.Getenv("LOGLEVEL"))
}

// NewLogger builds the application logger. Outside production the output is
// human readable; in production every line is a JSON object.
func NewLogger(out io.Writer, env, level string) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(strings.ToLower(level))
	if err != nil || level == "" {
		lvl = zerolog.InfoLevel
	}

	w := out
	if env != "production" {
		w = zerolog.ConsoleWriter{Out: out, NoColor: true}
	}
	return zerolog.New(w).Level(lvl).With().Timestamp().Logger()
}

// InitLogger replaces the application logger, typically once from main after config is loaded.
func InitLogger(env, level string) {
	SetLogger(NewLogger(os.Stdout, env, level))
}

// SetLogger swaps the application logger, used by tests to capture output.
func SetLogger(l zerolog.Logger) {
	appLoggerMu.Lock()
	defer appLoggerMu.Unlock()
	appLogger = l
}

// Logger returns the application logger.
func Logger() *zerolog.Logger {
	appLoggerMu.RLock()
	defer appLoggerMu.RUnlock()
	l := appLogger
	return &l
}
