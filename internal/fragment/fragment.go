package fragment

import "embedcode/internal/indent"

// DefaultName is the reserved name of the fragment covering the whole file.
const DefaultName = "_default"

// Fragment is a named, possibly multi-occurrence, region of a source file.
type Fragment struct {
	Name       string
	Partitions []Partition
}

// Default returns the fragment that stands for the whole rendered file.
func Default() Fragment {
	return Fragment{Name: DefaultName}
}

// IsDefault reports whether f is the whole-file fragment.
func (f Fragment) IsDefault() bool {
	return f.Name == DefaultName
}

// Text renders the persisted form of the fragment.
//
// The default fragment is the whole rendered file. A named fragment is the
// concatenation of its partitions, separated by a separator line, with the
// indentation common to all partitions removed.
func (f Fragment) Text(lines []string, separator string) []string {
	if f.IsDefault() {
		out := make([]string, len(lines))
		copy(out, lines)
		return out
	}

	common := -1
	parts := make([][]string, 0, len(f.Partitions))
	for _, p := range f.Partitions {
		selected := p.Select(lines)
		parts = append(parts, selected)
		if width := indent.MaxCommonIndentation(selected); common < 0 || width < common {
			common = width
		}
	}

	if common < 0 {
		common = 0
	}

	var out []string
	for i, part := range parts {
		if i > 0 {
			out = append(out, separator)
		}
		out = append(out, indent.CutIndent(part, common)...)
	}
	return out
}
