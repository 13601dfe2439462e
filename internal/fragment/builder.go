package fragment

import "fmt"

type builder struct {
	codeFile   string
	name       string
	partitions []Partition
}

func (b *builder) addStart(pos int) error {
	if n := len(b.partitions); n > 0 && b.partitions[n-1].Open() {
		return fmt.Errorf("%w: fragment %q in %s is already open (since line %d)",
			ErrUnexpectedStart, b.name, b.codeFile, b.partitions[n-1].Start)
	}
	b.partitions = append(b.partitions, Partition{Start: pos})
	return nil
}

func (b *builder) addEnd(pos int) error {
	n := len(b.partitions)
	if n == 0 || !b.partitions[n-1].Open() {
		return fmt.Errorf("%w: fragment %q in %s was not started",
			ErrUnexpectedEnd, b.name, b.codeFile)
	}
	b.partitions[n-1].End = &pos
	return nil
}

func (b *builder) build() Fragment {
	return Fragment{Name: b.name, Partitions: b.partitions}
}
