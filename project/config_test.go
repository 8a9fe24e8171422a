package project

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfig(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, DefaultConfig(), cfg)
	assert.Equal(t, []string{"npm", "i"}, cfg.Install)
}

func TestLoadConfig(t *testing.T) {
	dir := t.TempDir()

	contents := `
components_dir = "lib/widgets"
install = ["yarn", "install"]

[answers]
git = true
version = "1.0.0"
`

	require.NoError(t, os.WriteFile(filepath.Join(dir, ConfigFileName), []byte(contents), 0600))

	cfg, err := LoadConfig(dir)
	require.NoError(t, err)

	assert.Equal(t, "lib/widgets", cfg.ComponentsDir)
	assert.Equal(t, "tsx", cfg.Extension)
	assert.Equal(t, []string{"yarn", "install"}, cfg.Install)
	assert.Equal(t, true, cfg.Answers["git"])
	assert.Equal(t, []string{"git", "version"}, cfg.AnswerNames())
}

func TestLoadConfigRejectsUnknownKeys(t *testing.T) {
	dir := t.TempDir()

	require.NoError(t, os.WriteFile(filepath.Join(dir, ConfigFileName), []byte(`colour = "red"`), 0600))

	_, err := LoadConfig(dir)
	assert.ErrorContains(t, err, "colour")
}

func TestLoadConfigRejectsEmptyInstall(t *testing.T) {
	dir := t.TempDir()

	require.NoError(t, os.WriteFile(filepath.Join(dir, ConfigFileName), []byte(`install = []`), 0600))

	_, err := LoadConfig(dir)
	assert.Error(t, err)
}
