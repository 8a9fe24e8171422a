package project

import (
	"path/filepath"
)

type (
	// Paths resolves paths against the manifest directory or the invocation directory.
	Paths struct {
		root string
		cwd  string
	}
)

func NewPaths(root, cwd string) Paths {
	return Paths{root: Manual(root), cwd: Manual(cwd)}
}

// Root joins elem onto the manifest directory.
func (p Paths) Root(elem ...string) string {
	return Manual(p.root, elem...)
}

// Cwd joins elem onto the invocation directory.
func (p Paths) Cwd(elem ...string) string {
	return Manual(p.cwd, elem...)
}

// Under returns a resolver rooted at Root(elem...).
func (p Paths) Under(elem ...string) func(...string) string {
	base := p.Root(elem...)

	return func(rest ...string) string {
		return Manual(base, rest...)
	}
}

// Manual resolves elem in order onto base; an absolute element discards everything before
// it. The result is always absolute.
func Manual(base string, elem ...string) string {
	path := base

	for _, e := range elem {
		if filepath.IsAbs(e) {
			path = e
		} else {
			path = filepath.Join(path, e)
		}
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return filepath.Clean(path)
	}

	return abs
}
