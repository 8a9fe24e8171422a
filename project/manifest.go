package project

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
)

type (
	Manifest struct {
		Path          string
		Dir           string
		Name          string
		Version       string
		RepositoryURL string
		contents      []byte
	}
)

const (
	ManifestFileName = "package.json"
	LibrarianPackage = "react-librarian"
)

var (
	ErrManifestNotFound = errors.New("no " + ManifestFileName + " found")

	branchRegex = regexp.MustCompile(`^(git\+)?https?:`)
)

// FindManifest walks from dir up to the filesystem root and returns the path of the first
// package.json it meets. Non-nil returned error wraps [ErrManifestNotFound] when the root is
// reached without finding one.
func FindManifest(dir string) (string, error) {
	dir, err := filepath.Abs(dir)
	if err != nil {
		return "", fmt.Errorf("failed to make %q absolute: %w", dir, err)
	}

	start := dir

	for {
		candidate := filepath.Join(dir, ManifestFileName)

		info, err := os.Stat(candidate)
		if err == nil && !info.IsDir() {
			return candidate, nil
		}

		if err != nil && !errors.Is(err, os.ErrNotExist) {
			return "", fmt.Errorf("failed to check %q: %w", candidate, err)
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", fmt.Errorf("%w in %q or any of its parents", ErrManifestNotFound, start)
		}

		dir = parent
	}
}

func ReadManifest(ctx context.Context, path string) (*Manifest, error) {
	contents, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("failed to read %q: %w", path, err)
	}

	m := Manifest{
		Path:     path,
		Dir:      filepath.Dir(path),
		contents: contents,
	}

	m.Name = m.stringField(ctx, ".name")
	m.Version = m.stringField(ctx, ".version")

	// repository is either {"type": ..., "url": ...} or a shorthand string.
	if m.RepositoryURL = m.stringField(ctx, ".repository.url"); m.RepositoryURL == "" {
		m.RepositoryURL = m.stringField(ctx, ".repository")
	}

	return &m, nil
}

// LoadManifest finds and reads the manifest nearest to dir.
func LoadManifest(ctx context.Context, dir string) (*Manifest, error) {
	path, err := FindManifest(dir)
	if err != nil {
		return nil, err
	}

	return ReadManifest(ctx, path)
}

func (m *Manifest) stringField(ctx context.Context, path string) string {
	v, err := lookupField(ctx, m.contents, path)
	if err != nil {
		return ""
	}

	s, _ := v.(string)

	return s
}

// Dependency returns the version specifier of name from devDependencies, falling back to
// dependencies, or "" when neither lists it.
func (m *Manifest) Dependency(ctx context.Context, name string) string {
	if v := m.stringField(ctx, ".devDependencies."+name); v != "" {
		return v
	}

	return m.stringField(ctx, ".dependencies."+name)
}

func IsBranch(version string) bool {
	return branchRegex.MatchString(version)
}

// LibrarianVersion is the librarian dependency of m when it points at a branch, and
// fallback otherwise.
func LibrarianVersion(ctx context.Context, m *Manifest, fallback string) string {
	if m != nil {
		if v := m.Dependency(ctx, LibrarianPackage); IsBranch(v) {
			return v
		}
	}

	return fallback
}
