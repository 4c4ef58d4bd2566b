package internal

import (
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

var (
	globalLogger *Logger
	once         sync.Once
)

const (
	LogLevelDebug LogLevel = iota
	LogLevelInfo
	LogLevelWarn
	LogLevelError
)

type Component string
type LogLevel int

const (
	ComponentLunchMoney Component = "LunchMoney"
	ComponentConfig     Component = "Config"
	ComponentGeneral    Component = "General"
)

// DefaultComponents are enabled on loggers built without an explicit list
var DefaultComponents = []Component{
	ComponentLunchMoney,
	ComponentConfig,
	ComponentGeneral,
}

type Logger struct {
	mu                sync.RWMutex
	logger            zerolog.Logger
	level             LogLevel
	enabledComponents map[Component]bool
}

// InitGlobalLogger sets up the process-wide logger once; later calls are no-ops
func InitGlobalLogger(w io.Writer, level LogLevel, components []Component) {
	once.Do(func() {
		globalLogger = NewLogger(w, level, components)
	})
}

// GetLogger returns the process-wide logger, creating a console logger at info level if needed
func GetLogger() *Logger {
	once.Do(func() {
		globalLogger = NewLogger(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}, LogLevelInfo, nil)
	})
	return globalLogger
}

// NewLogger creates a logger writing structured events to w.
// A nil components list enables DefaultComponents.
func NewLogger(w io.Writer, level LogLevel, components []Component) *Logger {
	if components == nil {
		components = DefaultComponents
	}
	enabledComponents := make(map[Component]bool, len(components))
	for _, component := range components {
		enabledComponents[component] = true
	}

	return &Logger{
		logger:            zerolog.New(w).With().Timestamp().Logger(),
		level:             level,
		enabledComponents: enabledComponents,
	}
}

// NewNopLogger returns a logger that discards everything
func NewNopLogger() *Logger {
	return NewLogger(io.Discard, LogLevelError, []Component{})
}

func (l *Logger) SetLevel(level LogLevel) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.level = level
}

func (l *Logger) EnableComponent(component Component) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.enabledComponents[component] = true
}

func (l *Logger) DisableComponent(component Component) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.enabledComponents[component] = false
}

func (l *Logger) IsComponentEnabled(component Component) bool {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.enabledComponents[component]
}

// Event starts a structured event, or returns nil when the level or component is filtered.
// zerolog treats methods on a nil *Event as no-ops, so callers may chain freely.
func (l *Logger) Event(level LogLevel, component Component) *zerolog.Event {
	l.mu.RLock()
	defer l.mu.RUnlock()

	if level < l.level || !l.enabledComponents[component] {
		return nil
	}

	var event *zerolog.Event
	switch level {
	case LogLevelDebug:
		event = l.logger.Debug()
	case LogLevelInfo:
		event = l.logger.Info()
	case LogLevelWarn:
		event = l.logger.Warn()
	default:
		event = l.logger.Error()
	}
	return event.Str("component", string(component))
}

func (l *Logger) log(level LogLevel, component Component, format string, args ...interface{}) {
	if event := l.Event(level, component); event != nil {
		event.Msg(fmt.Sprintf(format, args...))
	}
}

func (l *Logger) Debug(component Component, format string, args ...interface{}) {
	l.log(LogLevelDebug, component, format, args...)
}

func (l *Logger) Info(component Component, format string, args ...interface{}) {
	l.log(LogLevelInfo, component, format, args...)
}

func (l *Logger) Warn(component Component, format string, args ...interface{}) {
	l.log(LogLevelWarn, component, format, args...)
}

func (l *Logger) Error(component Component, format string, args ...interface{}) {
	l.log(LogLevelError, component, format, args...)
}

// ParseLogLevel maps a level name (debug, info, warn, error) to a LogLevel
func ParseLogLevel(name string) (LogLevel, error) {
	switch name {
	case "debug":
		return LogLevelDebug, nil
	case "", "info":
		return LogLevelInfo, nil
	case "warn", "warning":
		return LogLevelWarn, nil
	case "error":
		return LogLevelError, nil
	}
	return LogLevelInfo, fmt.Errorf("unknown log level %q", name)
}
