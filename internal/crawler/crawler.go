package crawler

import (
	"context"
	"fmt"
	"io/fs"
	"path/filepath"

	"github.com/bmatcuk/doublestar/v4"
)

// Crawler scans a directory for files matching glob patterns.
type Crawler struct {
	root     string
	includes []string
	excludes []string
	skipDirs []string
	ignored  []string
}

// Option configures a Crawler.
type Option func(*Crawler)

// WithExcludes drops files matching any of the patterns.
func WithExcludes(patterns ...string) Option {
	return func(c *Crawler) { c.excludes = append(c.excludes, patterns...) }
}

// WithSkipDir prunes a directory from the walk. Directories outside the
// root are ignored.
func WithSkipDir(dir string) Option {
	return func(c *Crawler) {
		if dir == "" {
			return
		}
		if abs, err := filepath.Abs(dir); err == nil {
			c.skipDirs = append(c.skipDirs, abs)
		}
	}
}

// NewCrawler creates a crawler over root. Patterns use doublestar syntax and
// are matched against slash-separated paths relative to root.
func NewCrawler(root string, includes []string, opts ...Option) (*Crawler, error) {
	c := &Crawler{
		root:     filepath.Clean(root),
		includes: includes,
		ignored:  []string{".git"},
	}
	for _, opt := range opts {
		opt(c)
	}
	for _, p := range append(append([]string{}, c.includes...), c.excludes...) {
		if !doublestar.ValidatePattern(p) {
			return nil, fmt.Errorf("invalid glob pattern %q", p)
		}
	}
	return c, nil
}

// Root returns the directory being scanned.
func (c *Crawler) Root() string {
	return c.root
}

// Scan walks the root in lexical order and calls onFile with the path of every
// matching file, relative to the root. Walking stops at the first error.
func (c *Crawler) Scan(ctx context.Context, onFile func(rel string) error) error {
	return filepath.WalkDir(c.root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if err := ctx.Err(); err != nil {
			return err
		}

		// Skip ignored directories
		if d.IsDir() {
			if path != c.root && c.skipped(path, d.Name()) {
				return filepath.SkipDir
			}
			return nil
		}
		if !d.Type().IsRegular() {
			return nil
		}

		rel, err := filepath.Rel(c.root, path)
		if err != nil {
			return err
		}
		if !c.Matches(rel) {
			return nil
		}
		return onFile(rel)
	})
}

// Files collects every matching file.
func (c *Crawler) Files(ctx context.Context) ([]string, error) {
	var files []string
	err := c.Scan(ctx, func(rel string) error {
		files = append(files, rel)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return files, nil
}

// Matches reports whether a root-relative path is included and not excluded.
func (c *Crawler) Matches(rel string) bool {
	slashed := filepath.ToSlash(rel)
	return matchAny(c.includes, slashed) && !matchAny(c.excludes, slashed)
}

func (c *Crawler) skipped(path, name string) bool {
	for _, ign := range c.ignored {
		if name == ign {
			return true
		}
	}
	if len(c.skipDirs) == 0 {
		return false
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return false
	}
	for _, dir := range c.skipDirs {
		if abs == dir {
			return true
		}
	}
	return false
}

func matchAny(patterns []string, path string) bool {
	for _, pattern := range patterns {
		if ok, err := doublestar.Match(pattern, path); err == nil && ok {
			return true
		}
	}
	return false
}
