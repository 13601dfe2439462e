package fragment

// Partition is an inclusive line range of the rendered file content.
// A nil End means the fragment was never closed and runs to the end of file.
type Partition struct {
	Start int
	End   *int
}

// Open reports whether the partition is still waiting for its end marker.
func (p Partition) Open() bool {
	return p.End == nil
}

// Select returns the lines covered by the partition.
func (p Partition) Select(lines []string) []string {
	start := min(p.Start, len(lines))
	if p.End == nil {
		return lines[start:]
	}
	end := min(*p.End+1, len(lines))
	if end < start {
		return nil
	}
	return lines[start:end]
}
