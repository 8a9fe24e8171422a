package main

import (
	"context"
	"io"
	"log"
	"os"

	"github.com/alecthomas/kong"
	"github.com/davecgh/go-spew/spew"

	"github.com/kxue43/librarian/commands"
	"github.com/kxue43/librarian/inquire"
	"github.com/kxue43/librarian/logging"
	"github.com/kxue43/librarian/project"
	"github.com/kxue43/librarian/prompt"
)

type dumpingPrompter struct {
	inner inquire.Prompter
	dump  io.Writer
}

func (d dumpingPrompter) Ask(ctx context.Context, p inquire.Prompt) (string, error) {
	spew.Fdump(d.dump, p)

	answer, err := d.inner.Ask(ctx, p)

	spew.Fdump(d.dump, "==> ", answer, err)

	return answer, err
}

func main() {
	var cli struct {
		Initial bool `help:"Ask the initial questions instead of the component ones."`
		Recall  bool `default:"true" negatable:"" help:"Pre-fill answers with their defaults."`
	}

	kong.Parse(&cli, kong.Name("debug-tui"))

	dump, err := os.OpenFile("messages.log", os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0o600)
	if err != nil {
		log.Fatal("failed to open log file messages.log")
	}
	defer dump.Close()

	questions := commands.ComponentQuestions()
	if cli.Initial {
		questions = commands.InitialQuestions(&project.Manifest{Name: "fake-library", Version: "0.1.0"}, false)
	}

	prompter := dumpingPrompter{inner: prompt.NewTUI(os.Stdin, os.Stderr), dump: dump}

	answers, err := inquire.NewResolver(prompter, logging.New(os.Stderr, "Debug")).Resolve(context.Background(), questions, inquire.Options{
		Recall:             cli.Recall,
		PreviousTransforms: commands.InitialPreviousTransforms(),
	})
	if err != nil {
		spew.Fdump(dump, err)
		log.Fatal(err)
	}

	spew.Fdump(dump, answers)
}
