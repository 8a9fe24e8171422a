package shell

import (
	"bytes"
	"context"
	"os/exec"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCommandName(t *testing.T) {
	assert.Equal(t, "npm.cmd", CommandName("npm", "windows"))
	assert.Equal(t, "npm", CommandName("npm", "linux"))
	assert.Equal(t, "git", CommandName("git", "darwin"))
}

func TestExecRun(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("relies on sh")
	}

	if _, err := exec.LookPath("sh"); err != nil {
		t.Skip("sh is not available")
	}

	var out bytes.Buffer

	dir := t.TempDir()
	e := &Exec{Stdout: &out, Stderr: &out, GOOS: runtime.GOOS}

	require.NoError(t, e.Run(context.Background(), dir, "sh", "-c", "pwd"))

	resolved, err := filepath.EvalSymlinks(dir)
	require.NoError(t, err)
	assert.Contains(t, out.String(), resolved)

	err = e.Run(context.Background(), dir, "sh", "-c", "exit 3")
	var exitErr *exec.ExitError
	require.ErrorAs(t, err, &exitErr)
	assert.Equal(t, 3, exitErr.ExitCode())
}
