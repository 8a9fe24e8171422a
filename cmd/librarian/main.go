package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/alecthomas/kong"

	"github.com/kxue43/librarian/commands"
	"github.com/kxue43/librarian/prompt"
	"github.com/kxue43/librarian/shell"
	"github.com/kxue43/librarian/version"
)

func main() {
	var cli struct {
		Debug   bool             `help:"Log debug messages and dump the resolved answers."`
		Plain   bool             `help:"Ask questions on plain lines instead of the interactive prompt."`
		Version kong.VersionFlag `help:"Print version information and exit."`

		Component commands.ComponentCmd `cmd:"" aliases:"c,comp" help:"Generate a React component and its test."`
		Initial   commands.InitialCmd   `cmd:"" aliases:"i,init,initialize" help:"Set up the current package as a component library."`
	}

	kctx := kong.Parse(
		&cli,
		kong.Name("librarian"),
		kong.Description("Scaffolding for React component libraries."),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{Compact: true}),
		kong.Vars{"version": version.FromBuildInfo()},
	)

	cwd, err := os.Getwd()
	kctx.FatalIfErrorf(err)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	err = kctx.Run(&commands.Env{
		Ctx:      ctx,
		Prompter: prompt.New(os.Stdin, os.Stderr, cli.Plain),
		Runner:   shell.NewExec(),
		Stderr:   os.Stderr,
		Cwd:      cwd,
		Debug:    cli.Debug,
	})

	stop()
	kctx.FatalIfErrorf(err)
}
