package embedding

import (
	"fmt"
	"strings"

	"embedcode/internal/directive"
	"embedcode/internal/storage"
)

const fence = "```"

// Context is the mutable state of one parsing run over a documentation file.
type Context struct {
	DocFile string

	source []string
	pos    int
	result []string

	reader storage.FragmentReader
	parse  directive.AttributeParser

	current           *directive.Directive
	directives        []*directive.Directive
	containsDirective bool

	fenceOpen   bool
	fenceIndent int
	fenceEOL    string
}

// NewContext prepares a parsing run over the given document lines.
func NewContext(docFile string, lines []string, reader storage.FragmentReader) *Context {
	return &Context{
		DocFile: docFile,
		source:  lines,
		result:  make([]string, 0, len(lines)),
		reader:  reader,
		parse:   directive.XMLAttributes,
	}
}

// WithAttributeParser replaces the parser used to decode directives.
func (c *Context) WithAttributeParser(p directive.AttributeParser) *Context {
	c.parse = p
	return c
}

// Result returns the rebuilt document lines.
func (c *Context) Result() []string {
	return c.result
}

// Directives returns every directive decoded so far, in document order.
func (c *Context) Directives() []*directive.Directive {
	return c.directives
}

// Pending returns the directive waiting for its code fence, if any.
func (c *Context) Pending() *directive.Directive {
	return c.current
}

// ContainsDirective reports whether the document has at least one directive.
func (c *Context) ContainsDirective() bool {
	return c.containsDirective
}

// ContentChanged reports whether the rebuilt document differs from the original.
func (c *Context) ContentChanged() bool {
	if len(c.result) != len(c.source) {
		return true
	}
	for i := range c.source {
		if c.source[i] != c.result[i] {
			return true
		}
	}
	return false
}

// Line returns the 1-based number of the line under the cursor.
func (c *Context) Line() int {
	return c.pos + 1
}

func (c *Context) String() string {
	return fmt.Sprintf("Context[file=`%s`, line=%d, directive=%v]", c.DocFile, c.Line(), c.current)
}

func (c *Context) reachedEOF() bool {
	return c.pos >= len(c.source)
}

func (c *Context) currentLine() string {
	return c.source[c.pos]
}

func (c *Context) copyLine() {
	c.result = append(c.result, c.source[c.pos])
	c.pos++
}

func (c *Context) setDirective(d *directive.Directive) {
	c.current = d
	c.directives = append(c.directives, d)
	c.containsDirective = true
}

// isFenceEnd reports whether line closes the open fence: once the recorded
// indentation is stripped it must begin with the fence token.
func (c *Context) isFenceEnd(line string) bool {
	if len(line) < c.fenceIndent || strings.TrimSpace(line[:c.fenceIndent]) != "" {
		return false
	}
	return strings.HasPrefix(line[c.fenceIndent:], fence)
}
