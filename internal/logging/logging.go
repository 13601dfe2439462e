package logging

import (
	"fmt"
	"maps"
	"strings"

	glog "github.com/goliatone/go-logger/glog"
)

// Component names passed to Root.Component.
const (
	ComponentPipeline = "embedcode.pipeline"
	ComponentCLI      = "embedcode.cli"
)

// FieldRunID tags every line logged during one pipeline run.
const FieldRunID = "run_id"

// Logger is the subset of structured logging the pipeline needs.
type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	WithFields(fields map[string]any) Logger
}

// Format selects how go-logger renders lines.
type Format string

const (
	FormatConsole Format = "console"
	FormatJSON    Format = "json"
	FormatPretty  Format = "pretty"
)

var formatOptions = map[Format]func() glog.Option{
	FormatConsole: glog.WithLoggerTypeConsole,
	FormatJSON:    glog.WithLoggerTypeJSON,
	FormatPretty:  glog.WithLoggerTypePretty,
}

// ParseFormat accepts the log.format values of the configuration.
// An empty value means console.
func ParseFormat(value string) (Format, error) {
	f := Format(strings.ToLower(strings.TrimSpace(value)))
	if f == "" {
		return FormatConsole, nil
	}
	if _, ok := formatOptions[f]; !ok {
		return "", fmt.Errorf("unsupported log format %q", value)
	}
	return f, nil
}

var levels = map[string]string{
	"trace":   glog.Trace,
	"debug":   glog.Debug,
	"info":    glog.Info,
	"warn":    glog.Warn,
	"warning": glog.Warn,
	"error":   glog.Error,
	"fatal":   glog.Fatal,
}

// ParseLevel maps a log.level value to its go-logger level. An empty value
// keeps the go-logger default.
func ParseLevel(value string) (string, error) {
	key := strings.ToLower(strings.TrimSpace(value))
	if key == "" {
		return "", nil
	}
	level, ok := levels[key]
	if !ok {
		return "", fmt.Errorf("unsupported log level %q", value)
	}
	return level, nil
}

// Config holds the log section of the embedcode configuration.
type Config struct {
	Level  string
	Format string
}

// Root owns the go-logger instance shared by every component.
type Root struct {
	base *glog.BaseLogger
}

// New builds the root logger from the log settings.
func New(cfg Config) (*Root, error) {
	format, err := ParseFormat(cfg.Format)
	if err != nil {
		return nil, err
	}
	level, err := ParseLevel(cfg.Level)
	if err != nil {
		return nil, err
	}

	options := []glog.Option{formatOptions[format]()}
	if level != "" {
		options = append(options, glog.WithLevel(level))
	}
	return &Root{base: glog.NewLogger(options...)}, nil
}

// Component returns the logger of a named part of embedcode.
func (r *Root) Component(name string) Logger {
	if r == nil || r.base == nil {
		return NoOp()
	}
	return wrap(r.base.GetLogger(name))
}

// Run returns the pipeline logger for one run.
func (r *Root) Run(runID string) Logger {
	return WithRunID(r.Component(ComponentPipeline), runID)
}

// WithRunID attaches the run identifier to l.
func WithRunID(l Logger, runID string) Logger {
	if l == nil {
		return NoOp()
	}
	if runID == "" {
		return l
	}
	return l.WithFields(map[string]any{FieldRunID: runID})
}

func wrap(inner glog.Logger) Logger {
	if inner == nil {
		return NoOp()
	}
	return &adapter{inner: inner}
}

type adapter struct {
	inner glog.Logger
}

func (l *adapter) Debug(msg string, args ...any) { l.inner.Debug(msg, args...) }
func (l *adapter) Info(msg string, args ...any)  { l.inner.Info(msg, args...) }
func (l *adapter) Warn(msg string, args ...any)  { l.inner.Warn(msg, args...) }

// WithFields is a no-op when the go-logger implementation has no field support.
func (l *adapter) WithFields(fields map[string]any) Logger {
	with, ok := l.inner.(glog.FieldsLogger)
	if !ok || len(fields) == 0 {
		return l
	}
	return wrap(with.WithFields(maps.Clone(fields)))
}
