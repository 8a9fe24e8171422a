package project

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const fakeManifest = `{
	"name": "fake-library",
	"version": "100.200.300",
	"scripts": {"build": "node tasks/build.js", "nested": {"name": "not-this-one"}},
	"keywords": ["name", {"version": "0"}],
	"repository": {"type": "git", "url": "https://fake.repo"},
	"devDependencies": {"react-librarian": "git+https://github.com/someone/react-librarian.git"}
}`

func writeManifest(t *testing.T, dir, contents string) string {
	t.Helper()

	path := filepath.Join(dir, ManifestFileName)

	require.NoError(t, os.WriteFile(path, []byte(contents), 0600))

	return path
}

func TestFindManifest(t *testing.T) {
	root := t.TempDir()
	deep := filepath.Join(root, "peanut", "butter", "jelly", "time")

	require.NoError(t, os.MkdirAll(deep, 0750))

	expected := writeManifest(t, filepath.Join(root, "peanut"), fakeManifest)

	found, err := FindManifest(deep)
	require.NoError(t, err)
	assert.Equal(t, expected, found)
}

func TestFindManifestStopsAtRoot(t *testing.T) {
	dir := t.TempDir()

	if _, err := FindManifest(dir); err == nil {
		t.Skip("a package.json exists above the temporary directory")
	}

	_, err := FindManifest(dir)
	assert.ErrorIs(t, err, ErrManifestNotFound)
}

func TestReadManifest(t *testing.T) {
	dir := t.TempDir()
	path := writeManifest(t, dir, fakeManifest)

	m, err := ReadManifest(context.Background(), path)
	require.NoError(t, err)

	assert.Equal(t, "fake-library", m.Name)
	assert.Equal(t, "100.200.300", m.Version)
	assert.Equal(t, "https://fake.repo", m.RepositoryURL)
	assert.Equal(t, dir, m.Dir)
	assert.Equal(t, "git+https://github.com/someone/react-librarian.git", m.Dependency(context.Background(), LibrarianPackage))
	assert.Equal(t, "", m.Dependency(context.Background(), "react"))
}

func TestReadManifestShorthandRepository(t *testing.T) {
	path := writeManifest(t, t.TempDir(), `{"name": "x", "repository": "github:someone/x", "dependencies": {"react-librarian": "^1.0.0"}}`)

	m, err := ReadManifest(context.Background(), path)
	require.NoError(t, err)

	assert.Equal(t, "github:someone/x", m.RepositoryURL)
	assert.Equal(t, "", m.Version)
	assert.Equal(t, "^1.0.0", m.Dependency(context.Background(), LibrarianPackage))
}

func TestLibrarianVersion(t *testing.T) {
	ctx := context.Background()

	branch, err := ReadManifest(ctx, writeManifest(t, t.TempDir(), fakeManifest))
	require.NoError(t, err)

	pinned, err := ReadManifest(ctx, writeManifest(t, t.TempDir(), `{"devDependencies": {"react-librarian": "1.2.3"}}`))
	require.NoError(t, err)

	assert.Equal(t, "git+https://github.com/someone/react-librarian.git", LibrarianVersion(ctx, branch, "0.9.0"))
	assert.Equal(t, "0.9.0", LibrarianVersion(ctx, pinned, "0.9.0"))
	assert.Equal(t, "0.9.0", LibrarianVersion(ctx, nil, "0.9.0"))
}

func TestIsBranch(t *testing.T) {
	assert.True(t, IsBranch("https://github.com/x/y"))
	assert.True(t, IsBranch("git+https://github.com/x/y.git"))
	assert.True(t, IsBranch("http://example.com"))
	assert.False(t, IsBranch("^1.0.0"))
	assert.False(t, IsBranch(""))
}

func TestLookupField(t *testing.T) {
	var tests = []struct {
		path     string
		expected any
	}{
		{".name", "fake-library"},
		{".scripts.nested.name", "not-this-one"},
		{".repository.url", "https://fake.repo"},
		{".repository", map[string]any{"type": "git", "url": "https://fake.repo"}},
	}

	for _, test := range tests {
		v, err := lookupField(context.Background(), []byte(fakeManifest), test.path)
		require.NoError(t, err, test.path)
		assert.Equal(t, test.expected, v, test.path)
	}

	_, err := lookupField(context.Background(), []byte(fakeManifest), ".missing")
	assert.ErrorIs(t, err, errFieldNotFound)

	_, err = lookupField(context.Background(), []byte(fakeManifest), ".name.first")
	assert.Error(t, err)

	_, err = lookupField(context.Background(), []byte(fakeManifest), "name")
	assert.Error(t, err)
}
