package project

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPaths(t *testing.T) {
	root := t.TempDir()
	cwd := filepath.Join(root, "src")

	paths := NewPaths(root, cwd)

	assert.Equal(t, filepath.Join(root, "peanut", "butter"), paths.Root("peanut", "butter"))
	assert.Equal(t, filepath.Join(cwd, "jelly"), paths.Cwd("jelly"))

	components := paths.Under("src", "components")
	assert.Equal(t, filepath.Join(root, "src", "components", "__tests__", "X.spec.tsx"), components("__tests__", "X.spec.tsx"))
}

func TestManual(t *testing.T) {
	base := t.TempDir()

	assert.Equal(t, filepath.Join(base, "peanut", "butter"), Manual(base, "peanut", "butter"))
	assert.Equal(t, filepath.Join(base, "jelly"), Manual("/ignored", base, "jelly"))
	assert.True(t, filepath.IsAbs(Manual("relative", "path")))
}
