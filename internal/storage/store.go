package storage

// Store persists rendered fragments keyed by source file and fragment name.
type Store interface {
	FragmentReader

	// Put writes (or overwrites) the content of a fragment.
	Put(codeFile, fragmentName string, lines []string) error

	// Clean removes every stored fragment.
	Clean() error
}

// FragmentReader is the read side of a Store, used while embedding.
type FragmentReader interface {
	// Get returns the stored lines of a fragment or ErrFragmentNotFound.
	Get(codeFile, fragmentName string) ([]string, error)
}
