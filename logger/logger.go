package logger

import (
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"gopkg.in/natefinch/lumberjack.v2"
)

const logFileName = "filmhay.log"

// Logger wraps zerolog and owns the optional log file rotator
type Logger struct {
	zerolog.Logger
	rotator *lumberjack.Logger
}

// Config holds logger configuration
type Config struct {
	Level      string
	Format     string // "console" or "json"
	Path       string // directory for the log file, empty to log to stdout only
	MaxSizeMB  int
	MaxBackups int
	MaxAgeDays int
	Out        io.Writer // console sink, stdout when nil
}

// New builds a logger writing to stdout and, when cfg.Path is set, to a
// rotated file in that directory
func New(cfg Config) *Logger {
	sink := cfg.Out
	if sink == nil {
		sink = os.Stdout
	}
	out := sink
	if cfg.Format != "json" {
		out = zerolog.ConsoleWriter{Out: sink, TimeFormat: time.RFC3339}
	}

	var rotator *lumberjack.Logger
	var dirErr error
	if cfg.Path != "" {
		if dirErr = os.MkdirAll(cfg.Path, 0o755); dirErr == nil {
			rotator = &lumberjack.Logger{
				Filename:   filepath.Join(cfg.Path, logFileName),
				MaxSize:    orDefault(cfg.MaxSizeMB, 10),
				MaxBackups: orDefault(cfg.MaxBackups, 5),
				MaxAge:     orDefault(cfg.MaxAgeDays, 30),
				Compress:   true,
				LocalTime:  true,
			}
			out = io.MultiWriter(out, rotator)
		}
	}

	zl := zerolog.New(out).Level(ParseLevel(cfg.Level)).With().Timestamp().Logger()
	if dirErr != nil {
		zl.Warn().Err(dirErr).Str("path", cfg.Path).Msg("file logging disabled, cannot create log directory")
	}
	return &Logger{Logger: zl, rotator: rotator}
}

// Nop returns a logger that discards everything, for tests
func Nop() *Logger {
	return &Logger{Logger: zerolog.Nop()}
}

// Close flushes and closes the log file if one is open
func (l *Logger) Close() error {
	if l.rotator != nil {
		return l.rotator.Close()
	}
	return nil
}

// WithComponent returns a child logger tagged with component
func (l *Logger) WithComponent(component string) *Logger {
	return &Logger{
		Logger: l.Logger.With().Str("component", component).Logger(),
	}
}

// ParseLevel maps a config string to a zerolog level, defaulting to info
func ParseLevel(level string) zerolog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "trace":
		return zerolog.TraceLevel
	case "debug":
		return zerolog.DebugLevel
	case "warn", "warning":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	case "fatal":
		return zerolog.FatalLevel
	default:
		return zerolog.InfoLevel
	}
}

func orDefault(v, def int) int {
	if v <= 0 {
		return def
	}
	return v
}
