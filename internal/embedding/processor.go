package embedding

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"embedcode/internal/directive"
	"embedcode/internal/storage"
)

// Run drives the state machine over c until the end of the document.
func Run(c *Context) error {
	state := Start
	for state != Finish {
		next, ok := step(state, c)
		if !ok {
			return &Error{DocFile: c.DocFile, Line: c.Line(), Err: ErrUnparsable}
		}
		if err := accept(next, c); err != nil {
			var located *Error
			if errors.As(err, &located) {
				return located
			}
			return &Error{DocFile: c.DocFile, Line: c.Line(), Err: err}
		}
		state = next
	}
	return nil
}

func step(from State, c *Context) (State, bool) {
	for _, candidate := range transitions[from] {
		if recognize(candidate, c) {
			return candidate, true
		}
	}
	return from, false
}

// Processor embeds code fragments into a single documentation file.
type Processor struct {
	docFile string
	reader  storage.FragmentReader
	parse   directive.AttributeParser
}

// NewProcessor creates a processor for docFile reading fragments from reader.
func NewProcessor(docFile string, reader storage.FragmentReader) *Processor {
	return &Processor{
		docFile: docFile,
		reader:  reader,
		parse:   directive.XMLAttributes,
	}
}

// Process parses the document and rebuilds its content without writing it.
func (p *Processor) Process() (*Context, error) {
	raw, err := os.ReadFile(p.docFile)
	if err != nil {
		return nil, fmt.Errorf("cannot read documentation file %s: %w", p.docFile, err)
	}

	c := NewContext(p.docFile, strings.Split(string(raw), "\n"), p.reader).
		WithAttributeParser(p.parse)
	if err := Run(c); err != nil {
		return c, err
	}
	return c, nil
}

// Embed regenerates every embedded code block and writes the file back if it changed.
// It reports whether the file was rewritten.
func (p *Processor) Embed() (bool, error) {
	c, err := p.Process()
	if err != nil {
		return false, err
	}
	if !c.ContainsDirective() || !c.ContentChanged() {
		return false, nil
	}

	info, err := os.Stat(p.docFile)
	if err != nil {
		return false, err
	}
	out := strings.Join(c.Result(), "\n")
	if err := os.WriteFile(p.docFile, []byte(out), info.Mode().Perm()); err != nil {
		return false, fmt.Errorf("cannot write documentation file %s: %w", p.docFile, err)
	}
	return true, nil
}

// IsUpToDate reports whether embedding would leave the file unchanged.
func (p *Processor) IsUpToDate() (bool, error) {
	c, err := p.Process()
	if err != nil {
		return false, err
	}
	return !c.ContainsDirective() || !c.ContentChanged(), nil
}
