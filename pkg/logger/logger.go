package logger

import (
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Config opsi logger.
type Config struct {
	Env   string // development -> console yang enak dibaca; selain itu JSON
	Level string // trace, debug, info, warn, error
}

// Logger pembungkus zerolog untuk injeksi dan konsistensi.
type Logger struct {
	zl zerolog.Logger
}

// New membuat logger terstruktur. Di development pakai console writer; di production JSON.
func New(cfg Config) *Logger {
	var w io.Writer = os.Stdout
	if cfg.Env == "development" {
		w = zerolog.ConsoleWriter{Out: os.Stdout}
	}

	zl := zerolog.New(w).Level(parseLevel(cfg.Level)).With().Timestamp().Logger()

	// Arahkan juga logger global zerolog untuk paket yang memakainya langsung
	log.Logger = zl

	return &Logger{zl: zl}
}

func parseLevel(s string) zerolog.Level {
	switch s {
	case "trace":
		return zerolog.TraceLevel
	case "debug":
		return zerolog.DebugLevel
	case "info":
		return zerolog.InfoLevel
	case "warn":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}

// Trace..Fatal delegasi ke zerolog.
func (l *Logger) Trace() *zerolog.Event { return l.zl.Trace() }
func (l *Logger) Debug() *zerolog.Event { return l.zl.Debug() }
func (l *Logger) Info() *zerolog.Event  { return l.zl.Info() }
func (l *Logger) Warn() *zerolog.Event  { return l.zl.Warn() }
func (l *Logger) Error() *zerolog.Event { return l.zl.Error() }
func (l *Logger) Fatal() *zerolog.Event { return l.zl.Fatal() }

// With membuat sublogger dengan field tetap.
func (l *Logger) With() zerolog.Context {
	return l.zl.With()
}

// Zerolog mengembalikan logger internal bila API langsung diperlukan.
func (l *Logger) Zerolog() zerolog.Logger {
	return l.zl
}
