package log

import (
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"
)

const (
	DebugLevel = "debug"
	InfoLevel  = "info"
	WarnLevel  = "warn"
	ErrorLevel = "error"

	// LevelEnv is read when --log-level is not given.
	LevelEnv = "RANGETYPE_LOG_LEVEL"

	defaultLogLevel = WarnLevel
	timeFormat      = "2006-01-02 15:04:05"
)

var logger = zerolog.Nop()

// Init installs a console logger writing to w (stderr when nil) at the given
// level. An empty level means warn.
func Init(level string, w io.Writer) error {
	if level == "" {
		level = defaultLogLevel
	}
	var lvl zerolog.Level
	switch level {
	case DebugLevel:
		lvl = zerolog.DebugLevel
	case InfoLevel:
		lvl = zerolog.InfoLevel
	case WarnLevel:
		lvl = zerolog.WarnLevel
	case ErrorLevel:
		lvl = zerolog.ErrorLevel
	default:
		return fmt.Errorf("unknown log level: %s", level)
	}
	if w == nil {
		w = os.Stderr
	}
	console := zerolog.ConsoleWriter{Out: w, TimeFormat: timeFormat, NoColor: true}
	logger = zerolog.New(console).Level(lvl).With().Timestamp().Logger()
	return nil
}

// Reset drops the installed logger; nothing is written until Init runs again.
func Reset() {
	logger = zerolog.Nop()
}

func Logger() *zerolog.Logger {
	return &logger
}

func Debug() *zerolog.Event {
	return logger.Debug()
}

func Info() *zerolog.Event {
	return logger.Info()
}

func Warn() *zerolog.Event {
	return logger.Warn()
}

func Error() *zerolog.Event {
	return logger.Error()
}

// ResolveLevel returns flagValue, or the LevelEnv value when it is empty.
func ResolveLevel(flagValue string) string {
	if flagValue != "" {
		return flagValue
	}
	return os.Getenv(LevelEnv)
}

// Levels lists the accepted level names, for flag help and completion.
func Levels() []string {
	return []string{DebugLevel, InfoLevel, WarnLevel, ErrorLevel}
}
