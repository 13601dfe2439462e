package pattern

import (
	"errors"
	"fmt"
	"strings"

	"github.com/gobwas/glob"
)

// ErrNoMatchingLine is returned by Scan when no line satisfies the pattern.
var ErrNoMatchingLine = errors.New("no matching line")

// Pattern is a shell-style glob matched against a single line of text.
//
// A leading '^' anchors the pattern to the start of the line and a trailing '$'
// anchors it to the end. Without an anchor the pattern may match anywhere in
// the line.
type Pattern struct {
	source string
	glob   glob.Glob
}

// Compile turns a user supplied pattern into a line matcher.
// Only '*' and '?' are wildcards; every other character matches itself.
func Compile(source string) (*Pattern, error) {
	body := source
	prefix, suffix := "*", "*"

	if strings.HasPrefix(body, "^") {
		body = body[1:]
		prefix = ""
	} else if strings.HasPrefix(body, "*") {
		prefix = ""
	}

	if strings.HasSuffix(body, "$") {
		body = body[:len(body)-1]
		suffix = ""
	} else if strings.HasSuffix(body, "*") {
		suffix = ""
	}

	expr := prefix + quoteLiterals(body) + suffix

	g, err := glob.Compile(expr)
	if err != nil {
		return nil, fmt.Errorf("invalid pattern %q: %w", source, err)
	}

	return &Pattern{source: source, glob: g}, nil
}

// Match reports whether line satisfies the pattern. A trailing newline is ignored.
func (p *Pattern) Match(line string) bool {
	line = strings.TrimSuffix(line, "\n")
	line = strings.TrimSuffix(line, "\r")
	return p.glob.Match(line)
}

// Scan returns the index of the first line at or after from that matches.
func (p *Pattern) Scan(lines []string, from int) (int, error) {
	for i := max(from, 0); i < len(lines); i++ {
		if p.Match(lines[i]) {
			return i, nil
		}
	}
	return -1, fmt.Errorf("%w for pattern `%s`", ErrNoMatchingLine, p.source)
}

// String returns the pattern as the user wrote it.
func (p *Pattern) String() string {
	return p.source
}

// quoteLiterals escapes every glob metacharacter except the '*' and '?' wildcards.
func quoteLiterals(body string) string {
	var b strings.Builder
	literal := 0
	for i, r := range body {
		if r != '*' && r != '?' {
			continue
		}
		b.WriteString(glob.QuoteMeta(body[literal:i]))
		b.WriteRune(r)
		literal = i + 1
	}
	b.WriteString(glob.QuoteMeta(body[literal:]))
	return b.String()
}
