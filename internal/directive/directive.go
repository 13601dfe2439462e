package directive

import (
	"errors"
	"fmt"
	"strings"

	"embedcode/internal/fragment"
	"embedcode/internal/indent"
	"embedcode/internal/pattern"
	"embedcode/internal/storage"
)

const (
	// Tag is the element name of an embedding directive.
	Tag = "embed-code"
	// Marker starts a directive line.
	Marker = "<" + Tag
	// LegacyMarker starts the processing-instruction form of a directive.
	LegacyMarker = "<?" + Tag
)

var (
	// ErrNotDirective means the text does not (yet) decode as a directive.
	// It is a soft failure: the text is treated as ordinary documentation.
	ErrNotDirective = errors.New("no directive recognized here")
	// ErrInvalidDirective means the directive decoded but its attributes are inconsistent.
	ErrInvalidDirective = errors.New("invalid <embed-code> directive")
)

// Directive names a code file and a selection within it.
//
// The selection is either a fragment name, or a start/end glob range over the
// whole file, or nothing at all (the whole file).
type Directive struct {
	CodeFile string
	Fragment string
	Start    *pattern.Pattern
	End      *pattern.Pattern
}

// IsCandidate reports whether line looks like the beginning of a directive.
func IsCandidate(line string) bool {
	trimmed := strings.TrimSpace(line)
	return strings.HasPrefix(trimmed, Marker) || strings.HasPrefix(trimmed, LegacyMarker)
}

// Decode parses directive text using the XML attribute parser.
func Decode(text string) (*Directive, error) {
	return DecodeWith(text, XMLAttributes)
}

// DecodeWith parses directive text with the given attribute parser.
func DecodeWith(text string, parse AttributeParser) (*Directive, error) {
	attrs, err := parse(text)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNotDirective, err)
	}
	return New(attrs)
}

// New builds a directive from decoded attributes.
func New(attrs map[string]string) (*Directive, error) {
	d := &Directive{
		CodeFile: attrs["file"],
		Fragment: attrs["fragment"],
	}
	start, end := attrs["start"], attrs["end"]

	if d.CodeFile == "" {
		return nil, fmt.Errorf("%w: the `file` attribute is required", ErrInvalidDirective)
	}
	if d.Fragment != "" && (start != "" || end != "") {
		return nil, fmt.Errorf("%w: must NOT specify both a fragment name and start/end patterns",
			ErrInvalidDirective)
	}

	var err error
	if start != "" {
		if d.Start, err = pattern.Compile(start); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidDirective, err)
		}
	}
	if end != "" {
		if d.End, err = pattern.Compile(end); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidDirective, err)
		}
	}
	return d, nil
}

// Content resolves the lines the directive selects.
func (d *Directive) Content(r storage.FragmentReader) ([]string, error) {
	if d.Fragment != "" {
		return r.Get(d.CodeFile, d.Fragment)
	}

	lines, err := r.Get(d.CodeFile, fragment.DefaultName)
	if err != nil {
		return nil, err
	}
	if d.Start == nil && d.End == nil {
		return lines, nil
	}
	return d.selectRange(lines)
}

func (d *Directive) selectRange(lines []string) ([]string, error) {
	start := 0
	if d.Start != nil {
		idx, err := d.Start.Scan(lines, 0)
		if err != nil {
			return nil, err
		}
		start = idx
	}

	end := len(lines) - 1
	if d.End != nil {
		idx, err := d.End.Scan(lines, start)
		if err != nil {
			return nil, err
		}
		end = idx
	}

	if end < start {
		return nil, nil
	}
	return indent.Normalize(lines[start : end+1]), nil
}

func (d *Directive) String() string {
	return fmt.Sprintf("<embed-code file=%q fragment=%q start=%q end=%q>",
		d.CodeFile, d.Fragment, patternString(d.Start), patternString(d.End))
}

func patternString(p *pattern.Pattern) string {
	if p == nil {
		return ""
	}
	return p.String()
}
