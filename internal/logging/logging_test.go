package logging

import (
	"context"
	"testing"

	glog "github.com/goliatone/go-logger/glog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFormat(t *testing.T) {
	tests := []struct {
		value string
		want  Format
	}{
		{"", FormatConsole},
		{"console", FormatConsole},
		{" JSON ", FormatJSON},
		{"pretty", FormatPretty},
	}
	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			got, err := ParseFormat(tt.value)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	_, err := ParseFormat("xml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported log format")
}

func TestParseLevel(t *testing.T) {
	level, err := ParseLevel(" WARNING ")
	require.NoError(t, err)
	assert.Equal(t, glog.Warn, level)

	level, err = ParseLevel("")
	require.NoError(t, err)
	assert.Empty(t, level)

	_, err = ParseLevel("loud")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported log level")
}

func TestNew(t *testing.T) {
	root, err := New(Config{Level: "debug", Format: "json"})
	require.NoError(t, err)

	logger := root.Run("0b7f")
	require.NotNil(t, logger)
	logger.Debug("fragments written", "files", 3)

	require.NotNil(t, root.Component(ComponentCLI))

	_, err = New(Config{Format: "xml"})
	assert.Error(t, err)
	_, err = New(Config{Level: "loud"})
	assert.Error(t, err)
}

func TestNilRootFallsBackToNoOp(t *testing.T) {
	var root *Root
	assert.Equal(t, NoOp(), root.Component(ComponentPipeline))
	assert.Equal(t, NoOp(), root.Run("abc"))
}

func TestWithRunID(t *testing.T) {
	stub := &stubLogger{}
	logger := WithRunID(wrap(stub), "run-1")
	logger.Info("embedding finished")

	require.Len(t, stub.fields, 1)
	assert.Equal(t, map[string]any{FieldRunID: "run-1"}, stub.fields[0])
	assert.Equal(t, []string{"info"}, stub.calls)

	t.Run("Empty id adds nothing", func(t *testing.T) {
		stub := &stubLogger{}
		WithRunID(wrap(stub), "")
		assert.Empty(t, stub.fields)
	})

	t.Run("Nil logger", func(t *testing.T) {
		assert.Equal(t, NoOp(), WithRunID(nil, "run-1"))
	})
}

func TestAdapter(t *testing.T) {
	stub := &stubLogger{}
	adapted := wrap(stub)

	adapted.Debug("code files found", "count", 2)
	adapted.Info("documentation updated")
	adapted.Warn("documentation is out of date")
	assert.Equal(t, []string{"debug", "info", "warn"}, stub.calls)

	fields := map[string]any{"file": "guide.md"}
	adapted.WithFields(fields)
	fields["file"] = "other.md"
	require.Len(t, stub.fields, 1)
	assert.Equal(t, "guide.md", stub.fields[0]["file"])

	assert.Same(t, adapted, adapted.WithFields(nil))
}

type stubLogger struct {
	calls  []string
	fields []map[string]any
}

var _ glog.Logger = (*stubLogger)(nil)
var _ glog.FieldsLogger = (*stubLogger)(nil)

func (s *stubLogger) Trace(string, ...any) { s.calls = append(s.calls, "trace") }
func (s *stubLogger) Debug(string, ...any) { s.calls = append(s.calls, "debug") }
func (s *stubLogger) Info(string, ...any)  { s.calls = append(s.calls, "info") }
func (s *stubLogger) Warn(string, ...any)  { s.calls = append(s.calls, "warn") }
func (s *stubLogger) Error(string, ...any) { s.calls = append(s.calls, "error") }
func (s *stubLogger) Fatal(string, ...any) { s.calls = append(s.calls, "fatal") }

func (s *stubLogger) WithContext(context.Context) glog.Logger { return s }

func (s *stubLogger) WithFields(fields map[string]any) glog.Logger {
	s.fields = append(s.fields, fields)
	return s
}
