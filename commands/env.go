// Package commands implements the librarian commands: component generates a React
// component with its test, and initial turns the current package into a library skeleton.
package commands

import (
	"context"
	"embed"
	"fmt"
	"io"
	"io/fs"

	"github.com/charmbracelet/log"
	"github.com/davecgh/go-spew/spew"

	"github.com/kxue43/librarian/inquire"
	"github.com/kxue43/librarian/logging"
	"github.com/kxue43/librarian/scaffold"
	"github.com/kxue43/librarian/shell"
)

type (
	// Env carries everything a command run needs from the outside world.
	Env struct {
		Ctx      context.Context
		Prompter inquire.Prompter
		Runner   shell.Runner
		Stderr   io.Writer
		Cwd      string
		Debug    bool
	}
)

var (
	//go:embed "all:templates"
	templatesFS embed.FS
)

func (e *Env) NewLogger(command string) *log.Logger {
	logger := logging.New(e.Stderr, command)
	logging.SetDebug(logger, e.Debug)

	return logger
}

func (e *Env) dump(answers inquire.Answers) {
	if e.Debug {
		spew.Fdump(e.Stderr, answers)
	}
}

func subFS(dir string) fs.FS {
	sub, err := fs.Sub(templatesFS, "templates/"+dir)
	if err != nil {
		panic(fmt.Sprintf("embedded templates lack %q: %s", dir, err))
	}

	return sub
}

func report(logger logging.Logger, results []scaffold.Result) error {
	for _, r := range results {
		switch r.Action {
		case scaffold.Failed:
			logger.Error(r.Err.Error())
		case scaffold.Skipped:
			logger.Warn(logging.Yellow(fmt.Sprintf("%s %s", r.Action, r.Destination)), "reason", r.Reason)
		default:
			logger.Info(fmt.Sprintf("%s %s", r.Action, r.Destination))
		}
	}

	if err := scaffold.Failures(results); err != nil {
		return fmt.Errorf("failed to write some of the templates: %w", err)
	}

	return nil
}
