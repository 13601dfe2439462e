package fragment

import (
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"
	"unicode/utf8"
)

var (
	// ErrUnexpectedStart is returned when a fragment is opened twice without being closed.
	ErrUnexpectedStart = errors.New("unexpected fragment start")
	// ErrUnexpectedEnd is returned when a fragment is closed without being opened.
	ErrUnexpectedEnd = errors.New("unexpected fragment end")
	// ErrNotText marks files that are not valid UTF-8 text. Bulk extraction skips them.
	ErrNotText = errors.New("not a text file")
)

// Writer persists rendered fragment content.
type Writer interface {
	Put(codeFile, fragmentName string, lines []string) error
}

// Result is the outcome of fragmenting one source file.
type Result struct {
	// CodeFile is the path the result was produced for.
	CodeFile string
	// Lines is the file content with marker lines removed.
	Lines []string
	// Fragments maps fragment names to their partitions. Always holds DefaultName.
	Fragments map[string]Fragment
}

// Names returns the fragment names in a stable order, default first.
func (r *Result) Names() []string {
	names := make([]string, 0, len(r.Fragments))
	for name := range r.Fragments {
		if name != DefaultName {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return append([]string{DefaultName}, names...)
}

// Extractor splits source files into named fragments.
type Extractor struct {
	separator string
}

// NewExtractor creates an extractor that joins multi-occurrence fragments with separator.
func NewExtractor(separator string) *Extractor {
	return &Extractor{separator: separator}
}

// ExtractFromFile reads and fragments a single source file.
func (e *Extractor) ExtractFromFile(path string) (*Result, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("cannot read file %s: %w", path, err)
	}
	if !utf8.Valid(content) {
		return nil, fmt.Errorf("%w: %s", ErrNotText, path)
	}
	return e.Fragmentize(path, SplitLines(string(content)))
}

// Fragmentize scans lines once, stripping marker lines and recording fragment partitions.
func (e *Extractor) Fragmentize(codeFile string, lines []string) (*Result, error) {
	builders := make(map[string]*builder)
	rendered := make([]string, 0, len(lines))

	for _, line := range lines {
		cursor := len(rendered)

		if starts := FindStarts(line); len(starts) > 0 {
			for _, name := range starts {
				b, ok := builders[name]
				if !ok {
					b = &builder{codeFile: codeFile, name: name}
					builders[name] = b
				}
				if err := b.addStart(cursor); err != nil {
					return nil, err
				}
			}
			continue
		}

		if ends := FindEnds(line); len(ends) > 0 {
			for _, name := range ends {
				b, ok := builders[name]
				if !ok {
					return nil, fmt.Errorf("%w: fragment %q in %s was not started",
						ErrUnexpectedEnd, name, codeFile)
				}
				if err := b.addEnd(cursor - 1); err != nil {
					return nil, err
				}
			}
			continue
		}

		rendered = append(rendered, line)
	}

	fragments := make(map[string]Fragment, len(builders)+1)
	for name, b := range builders {
		fragments[name] = b.build()
	}
	fragments[DefaultName] = Default()

	return &Result{CodeFile: codeFile, Lines: rendered, Fragments: fragments}, nil
}

// WriteTo persists every fragment of r under codeFile.
func (e *Extractor) WriteTo(w Writer, codeFile string, r *Result) error {
	for _, name := range r.Names() {
		text := r.Fragments[name].Text(r.Lines, e.separator)
		if err := w.Put(codeFile, name, text); err != nil {
			return fmt.Errorf("failed to store fragment %q of %s: %w", name, codeFile, err)
		}
	}
	return nil
}

// SplitLines splits text into lines without their terminators.
// A trailing newline does not produce an extra empty line.
func SplitLines(text string) []string {
	if text == "" {
		return nil
	}
	text = strings.TrimSuffix(text, "\n")
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	return lines
}
