package pipeline

import (
	"fmt"
	"strings"
)

// OutOfDateError lists the documentation files whose embedded code differs
// from the source.
type OutOfDateError struct {
	Files []string
}

func (e *OutOfDateError) Error() string {
	return fmt.Sprintf("documentation files are not up-to-date with code files: %s",
		strings.Join(e.Files, ", "))
}

// Problem is a documentation file that could not be processed.
type Problem struct {
	DocFile  string
	CodeFile string
	Fragment string
	Err      error
}

func (p Problem) String() string {
	return fmt.Sprintf("%s | %s — %s | %s", p.DocFile, p.CodeFile, p.Fragment, p.Err)
}
