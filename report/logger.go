package report

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

// Level is the run's log verbosity. Trace is strictly more verbose than
// Debug, matching the original implementation's separate trace macro
// rather than folding it into --debug.
type Level string

const (
	LevelInfo  Level = "info"
	LevelDebug Level = "debug"
	LevelTrace Level = "trace"
)

// LoggerConfig configures a Logger.
type LoggerConfig struct {
	Level  Level
	Output io.Writer
}

// Logger wraps a zerolog.Logger with the level/field conventions used
// throughout the clustering run.
type Logger struct {
	logger zerolog.Logger
}

// NewLogger constructs a Logger writing to cfg.Output (os.Stdout if nil)
// at cfg.Level.
func NewLogger(cfg LoggerConfig) *Logger {
	out := cfg.Output
	if out == nil {
		out = os.Stdout
	}
	zlog := zerolog.New(out).With().Timestamp().Logger()
	switch cfg.Level {
	case LevelTrace:
		zlog = zlog.Level(zerolog.TraceLevel)
	case LevelDebug:
		zlog = zlog.Level(zerolog.DebugLevel)
	default:
		zlog = zlog.Level(zerolog.InfoLevel)
	}
	return &Logger{logger: zlog}
}

// NewConsoleLogger constructs a Logger writing human-readable
// (non-JSON) console output, for interactive use.
func NewConsoleLogger(level Level) *Logger {
	return NewLogger(LoggerConfig{
		Level:  level,
		Output: zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339},
	})
}

func (l *Logger) Trace(msg string, fields ...interface{}) { l.emit(l.logger.Trace(), msg, fields...) }
func (l *Logger) Debug(msg string, fields ...interface{}) { l.emit(l.logger.Debug(), msg, fields...) }
func (l *Logger) Info(msg string, fields ...interface{})  { l.emit(l.logger.Info(), msg, fields...) }
func (l *Logger) Warn(msg string, fields ...interface{})  { l.emit(l.logger.Warn(), msg, fields...) }
func (l *Logger) Error(msg string, fields ...interface{}) { l.emit(l.logger.Error(), msg, fields...) }

// emit attaches key/value pairs (fields[2i], fields[2i+1]) to event and
// flushes it with msg.
func (l *Logger) emit(event *zerolog.Event, msg string, fields ...interface{}) {
	for i := 0; i+1 < len(fields); i += 2 {
		key, ok := fields[i].(string)
		if !ok {
			continue
		}
		event = event.Interface(key, fields[i+1])
	}
	event.Msg(msg)
}
