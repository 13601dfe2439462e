package embedding

import (
	"errors"
	"fmt"
)

var (
	// ErrUnparsable means no transition accepts the current line, typically a
	// directive that is not followed by a code fence.
	ErrUnparsable = errors.New("unparsable document")
	// ErrDirectiveUnterminated means the end of file was reached before a
	// directive could be decoded.
	ErrDirectiveUnterminated = errors.New("failed to parse directive")
)

// Error reports a failure while processing one documentation file.
type Error struct {
	DocFile string
	Line    int
	Err     error
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %v at line %d", e.DocFile, e.Err, e.Line)
}

func (e *Error) Unwrap() error {
	return e.Err
}
