package embedding

import (
	"errors"
	"fmt"
	"strings"

	"embedcode/internal/directive"
)

// recognize reports whether the current line can move the machine into s.
func recognize(s State, c *Context) bool {
	switch s {
	case Finish:
		return c.reachedEOF()
	case RegularLine:
		return !c.reachedEOF() && c.current == nil
	case Directive:
		return !c.reachedEOF() && c.current == nil && directive.IsCandidate(c.currentLine())
	case BlankLine:
		return !c.reachedEOF() && c.current != nil && !c.fenceOpen &&
			strings.TrimSpace(c.currentLine()) == ""
	case FenceStart:
		return !c.reachedEOF() && strings.HasPrefix(strings.TrimSpace(c.currentLine()), fence)
	case FenceLine:
		return !c.reachedEOF() && c.fenceOpen
	case FenceEnd:
		return !c.reachedEOF() && c.fenceOpen && c.isFenceEnd(c.currentLine())
	default:
		return false
	}
}

// accept applies the side effects of entering s.
func accept(s State, c *Context) error {
	switch s {
	case RegularLine, BlankLine:
		c.copyLine()
	case Directive:
		return acceptDirective(c)
	case FenceStart:
		line := c.currentLine()
		c.fenceIndent = len(line) - len(strings.TrimLeft(line, " \t"))
		c.fenceEOL = ""
		if strings.HasSuffix(line, "\r") {
			c.fenceEOL = "\r"
		}
		c.fenceOpen = true
		c.copyLine()
	case FenceLine:
		// The old fence body is dropped; FenceEnd renders the fresh one.
		c.pos++
	case FenceEnd:
		return acceptFenceEnd(c)
	}
	return nil
}

func acceptDirective(c *Context) error {
	start := c.Line()
	var body []string
	for !c.reachedEOF() {
		body = append(body, c.currentLine())
		c.copyLine()

		d, err := directive.DecodeWith(strings.Join(body, "\n"), c.parse)
		if err == nil {
			c.setDirective(d)
			return nil
		}
		if !errors.Is(err, directive.ErrNotDirective) {
			return err
		}
	}
	return &Error{
		DocFile: c.DocFile,
		Line:    start,
		Err:     fmt.Errorf("%w: %s", ErrDirectiveUnterminated, strings.Join(body, "\n")),
	}
}

// acceptFenceEnd renders the directive's content inside the fence, prefixed
// with the fence's indentation. Blank content lines are written empty.
func acceptFenceEnd(c *Context) error {
	content, err := c.current.Content(c.reader)
	if err != nil {
		return fmt.Errorf("cannot embed %s: %w", c.current, err)
	}

	prefix := c.currentLine()[:c.fenceIndent]
	for _, line := range content {
		if line == "" {
			c.result = append(c.result, c.fenceEOL)
			continue
		}
		c.result = append(c.result, prefix+line+c.fenceEOL)
	}

	c.copyLine()
	c.current = nil
	c.fenceOpen = false
	c.fenceIndent = 0
	c.fenceEOL = ""
	return nil
}
