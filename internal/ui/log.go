// Package ui is the console logger of the lvqubo command. Library packages
// never log; only the command does.
package ui

import (
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/mattn/go-colorable"
	"github.com/rs/zerolog"
)

type LogLevel int

const (
	LevelTrace LogLevel = iota
	LevelDebug
	LevelInfo
	LevelWarn
	LevelError
)

var levelNames = []string{"trace", "debug", "info", "warn", "error"}

var zerologLevels = []zerolog.Level{
	zerolog.TraceLevel, zerolog.DebugLevel, zerolog.InfoLevel, zerolog.WarnLevel, zerolog.ErrorLevel,
}

func (l LogLevel) String() string {
	if l < LevelTrace || l > LevelError {
		return fmt.Sprintf("LogLevel(%d)", int(l))
	}
	return levelNames[l]
}

// LogLevelString parses a level name, case-insensitively.
func LogLevelString(s string) (LogLevel, error) {
	for i, n := range levelNames {
		if strings.EqualFold(n, s) {
			return LogLevel(i), nil
		}
	}
	return 0, fmt.Errorf("%q does not belong to LogLevel values", s)
}

// LogLevelStrings lists the accepted level names.
func LogLevelStrings() []string {
	return append([]string(nil), levelNames...)
}

var (
	outputMutex sync.Mutex
	logger      = newLogger(colorable.NewColorableStderr())
	logLevel    = LevelInfo
)

func newLogger(w io.Writer) zerolog.Logger {
	return zerolog.New(zerolog.ConsoleWriter{
		Out:        w,
		TimeFormat: "15:04:05.000",
	}).With().Timestamp().Logger().Level(zerologLevels[LevelInfo])
}

// SetOutput redirects console logging to w, plain and uncolored.
func SetOutput(w io.Writer) {
	outputMutex.Lock()
	defer outputMutex.Unlock()
	logger = zerolog.New(zerolog.ConsoleWriter{
		Out:        w,
		NoColor:    true,
		TimeFormat: "15:04:05.000",
	}).With().Timestamp().Logger().Level(zerologLevels[logLevel])
}

func SetLoglevel(l LogLevel) {
	outputMutex.Lock()
	defer outputMutex.Unlock()
	if l < LevelTrace || l > LevelError {
		l = LevelInfo
	}
	logLevel = l
	logger = logger.Level(zerologLevels[l])
}

func GetLoglevel() LogLevel {
	outputMutex.Lock()
	defer outputMutex.Unlock()
	return logLevel
}

func current() *zerolog.Logger {
	outputMutex.Lock()
	defer outputMutex.Unlock()
	l := logger
	return &l
}

func Trace() *zerolog.Event { return current().Trace() }
func Debug() *zerolog.Event { return current().Debug() }
func Info() *zerolog.Event  { return current().Info() }
func Warn() *zerolog.Event  { return current().Warn() }
func Error() *zerolog.Event { return current().Error() }
