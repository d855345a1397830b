package logger

import (
	"io"
	"os"
	"strings"
	"time"

	"leftpad/internal/domain"

	"github.com/rs/zerolog"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Logger interface
type Logger interface {
	Log() *zerolog.Event
	Fatal() *zerolog.Event
	Err(err error) *zerolog.Event
	Error() *zerolog.Event
	Warn() *zerolog.Event
	Info() *zerolog.Event
	Trace() *zerolog.Event
	Debug() *zerolog.Event
	With() zerolog.Context
	Level() zerolog.Level
	SetLogLevel(level string)
}

// DefaultLogger default logging controller
type DefaultLogger struct {
	log     zerolog.Logger
	level   zerolog.Level
	writers []io.Writer
}

// New builds a logger writing to stderr and, when logPath is set, to a rotating file.
func New(cfg *domain.Config) Logger {
	return NewWithWriter(cfg, zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.DateTime,
	})
}

// NewWithWriter is New with a custom console writer.
func NewWithWriter(cfg *domain.Config, console io.Writer) Logger {
	l := &DefaultLogger{
		writers: make([]io.Writer, 0, 2),
		level:   zerolog.DebugLevel,
	}

	zerolog.TimeFieldFormat = time.RFC3339

	// stdout is reserved for command output
	l.writers = append(l.writers, console)

	if cfg.LogPath != "" {
		l.writers = append(l.writers,
			&lumberjack.Logger{
				Filename:   cfg.LogPath,
				MaxSize:    cfg.LogMaxSize, // megabytes
				MaxBackups: cfg.LogMaxBackups,
			},
		)
	}

	l.log = zerolog.New(io.MultiWriter(l.writers...)).With().Timestamp().Logger()
	l.SetLogLevel(cfg.LogLevel)

	return l
}

func (l *DefaultLogger) SetLogLevel(level string) {
	lvl := ParseLevel(level)
	l.level = lvl
	l.log = l.log.Level(lvl)
}

// ParseLevel maps config levels to zerolog levels, defaulting to debug
func ParseLevel(level string) zerolog.Level {
	switch strings.ToUpper(level) {
	case "TRACE":
		return zerolog.TraceLevel
	case "DEBUG":
		return zerolog.DebugLevel
	case "INFO":
		return zerolog.InfoLevel
	case "WARN":
		return zerolog.WarnLevel
	case "ERROR":
		return zerolog.ErrorLevel
	default:
		return zerolog.DebugLevel
	}
}

func (l *DefaultLogger) Level() zerolog.Level {
	return l.level
}

// Log log something without a level.
func (l *DefaultLogger) Log() *zerolog.Event {
	return l.log.Log()
}

// Fatal log something at fatal level. This exits the process.
func (l *DefaultLogger) Fatal() *zerolog.Event {
	return l.log.Fatal()
}

// Error log something at Error level
func (l *DefaultLogger) Error() *zerolog.Event {
	return l.log.Error()
}

// Err log something at Err level
func (l *DefaultLogger) Err(err error) *zerolog.Event {
	return l.log.Err(err)
}

// Warn log something at warning level.
func (l *DefaultLogger) Warn() *zerolog.Event {
	return l.log.Warn()
}

// Info log something at info level.
func (l *DefaultLogger) Info() *zerolog.Event {
	return l.log.Info()
}

// Trace log something at trace level.
func (l *DefaultLogger) Trace() *zerolog.Event {
	return l.log.Trace()
}

// Debug log something at debug level.
func (l *DefaultLogger) Debug() *zerolog.Event {
	return l.log.Debug()
}

// With log with context
func (l *DefaultLogger) With() zerolog.Context {
	return l.log.With()
}
