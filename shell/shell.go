// Package shell runs external commands such as git and npm to completion, with the
// operator's standard streams attached.
package shell

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
	"runtime"
	"strings"
)

type (
	Runner interface {
		Run(ctx context.Context, dir, name string, args ...string) error
	}

	// Exec runs commands through os/exec.
	Exec struct {
		Stdin  io.Reader
		Stdout io.Writer
		Stderr io.Writer
		GOOS   string
	}
)

// NewExec returns an Exec wired to the process's standard streams.
func NewExec() *Exec {
	return &Exec{
		Stdin:  os.Stdin,
		Stdout: os.Stdout,
		Stderr: os.Stderr,
		GOOS:   runtime.GOOS,
	}
}

// CommandName appends ".cmd" on Windows, where npm and friends are batch wrappers.
func CommandName(name, goos string) string {
	if strings.HasPrefix(goos, "windows") {
		return name + ".cmd"
	}

	return name
}

// Run executes name in dir and waits for it. The working directory of the current process
// is never changed.
func (e *Exec) Run(ctx context.Context, dir, name string, args ...string) error {
	cmd := exec.CommandContext(ctx, CommandName(name, e.GOOS), args...)
	cmd.Dir = dir
	cmd.Stdin = e.Stdin
	cmd.Stdout = e.Stdout
	cmd.Stderr = e.Stderr

	if err := cmd.Run(); err != nil {
		return fmt.Errorf("failed to run %q in %q: %w", strings.Join(append([]string{name}, args...), " "), dir, err)
	}

	return nil
}
