package logging

type noop struct{}

// NoOp returns a logger that discards everything.
func NoOp() Logger { return noop{} }

func (noop) Debug(string, ...any)               {}
func (noop) Info(string, ...any)                {}
func (noop) Warn(string, ...any)                {}
func (n noop) WithFields(map[string]any) Logger { return n }
