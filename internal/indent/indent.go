package indent

import "strings"

// MaxCommonIndentation returns the smallest leading-whitespace width among the
// non-blank lines. Blank lines are ignored; if every line is blank the result is 0.
func MaxCommonIndentation(lines []string) int {
	common := -1
	for _, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}
		width := len(line) - len(strings.TrimLeft(line, " \t"))
		if common < 0 || width < common {
			common = width
		}
	}
	if common < 0 {
		return 0
	}
	return common
}

// CutIndent drops the first n characters of every line. Lines shorter than n
// (blank lines, typically) become empty. The input slice is not modified.
func CutIndent(lines []string, n int) []string {
	out := make([]string, len(lines))
	for i, line := range lines {
		if n >= len(line) {
			continue
		}
		out[i] = line[n:]
	}
	return out
}

// Normalize strips the common indentation of lines.
func Normalize(lines []string) []string {
	return CutIndent(lines, MaxCommonIndentation(lines))
}
