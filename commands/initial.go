package commands

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/mod/semver"

	"github.com/kxue43/librarian/casing"
	"github.com/kxue43/librarian/inquire"
	"github.com/kxue43/librarian/logging"
	"github.com/kxue43/librarian/project"
	"github.com/kxue43/librarian/scaffold"
	"github.com/kxue43/librarian/shell"
	"github.com/kxue43/librarian/version"
)

type (
	InitialCmd struct {
		Recall bool `name:"recall" default:"true" negatable:"" help:"Pre-fill prompts with their default answers."`
	}

	// Initial turns the package around the working directory into a component library.
	Initial struct {
		Logger   logging.Logger
		Prompter inquire.Prompter
		Runner   shell.Runner
		Dump     func(inquire.Answers)
		Cwd      string
		Recall   bool
	}
)

func (c *InitialCmd) Run(env *Env) error {
	cmd := Initial{
		Logger:   env.NewLogger("Initialize"),
		Prompter: env.Prompter,
		Runner:   env.Runner,
		Dump:     env.dump,
		Cwd:      env.Cwd,
		Recall:   c.Recall,
	}

	_, err := cmd.Run(env.Ctx)

	return err
}

func libraryName(value any, _ inquire.Answers) (any, error) {
	s, _ := value.(string)

	name, err := project.CheckNameFormat(s)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", inquire.ErrInvalidAnswer, logging.Red(err.Error()))
	}

	return name, nil
}

func packageName(value any, _ inquire.Answers) (any, error) {
	return project.ExtractPackageName(fmt.Sprint(value)), nil
}

func semanticVersion(value any, _ inquire.Answers) (any, error) {
	s := strings.TrimPrefix(strings.TrimSpace(fmt.Sprint(value)), "v")

	// A full version is its own canonical form; shorthand such as v1.2 is not.
	core, _, _ := strings.Cut(s, "+")
	if !semver.IsValid("v"+s) || semver.Canonical("v"+s) != "v"+core {
		return nil, fmt.Errorf("%w: %q is not a semantic version such as 1.0.0", inquire.ErrInvalidAnswer, s)
	}

	return s, nil
}

func optional(v string) any {
	if v == "" {
		return nil
	}

	return v
}

// InitialQuestions asks for the library metadata. Defaults come from the manifest; the git
// question reflects whether a repository already exists.
func InitialQuestions(manifest *project.Manifest, gitExists bool) []inquire.Question {
	gitDefault, gitText := "Y", "Initialize Git?"
	if gitExists {
		gitDefault, gitText = "N", "Re-initialize Git?"
	}

	versionDefault := manifest.Version
	if versionDefault == "" {
		versionDefault = "0.0.0"
	}

	return []inquire.Question{
		inquire.Prompted{
			Name:      "name",
			Text:      "Library name:",
			Default:   inquire.Static(optional(manifest.Name)),
			Transform: libraryName,
		},
		inquire.Derived{Name: "packageName", Source: "name", Transform: packageName},
		inquire.Derived{Name: "componentName", Source: "packageName", Transform: componentName},
		inquire.Prompted{
			Name:    "repoUrl",
			Text:    "Repository URL:",
			Default: inquire.Static(optional(manifest.RepositoryURL)),
		},
		inquire.Prompted{
			Name:      "version",
			Text:      "Version:",
			Default:   inquire.Static(versionDefault),
			Transform: semanticVersion,
		},
		inquire.Prompted{
			Name: "readmeTitle",
			Text: "README Title:",
			Default: func(answers inquire.Answers) any {
				return optional(casing.DashToWords(answers.String("packageName")))
			},
		},
		inquire.Prompted{
			Name:      "git",
			Text:      gitText,
			Default:   inquire.Static(gitDefault),
			Transform: inquire.YesNo(gitDefault),
		},
	}
}

func InitialPreviousTransforms() map[string]inquire.PreviousTransform {
	return map[string]inquire.PreviousTransform{
		"git": inquire.ConvertYesNo,
	}
}

// InitialTemplates lists the library skeleton written into root. Configuration files are
// always replaced, files a developer is expected to edit are only created, and .gitignore
// keeps everything outside its managed block.
func InitialTemplates(root string) []scaffold.Template {
	onGitHub := func(answers inquire.Answers) bool {
		return strings.Contains(answers.String("repoUrl"), "github.com")
	}

	return scaffold.WithRoot(root,
		scaffold.Template{Name: "configs/tsconfig.build.json", Overwrite: true},
		scaffold.Template{Name: "configs/tsconfig.es2015.json", Overwrite: true},
		scaffold.Template{Name: "configs/tsconfig.es5.json", Overwrite: true},
		scaffold.Template{Name: "configs/webpack.config.js", Overwrite: true},
		scaffold.Template{Name: "example/App.tsx"},
		scaffold.Template{Name: "example/index.html"},
		scaffold.Template{Name: "example/vendor.ts"},
		scaffold.Template{Name: "src/index.ts"},
		scaffold.Template{Name: "tasks/build.js", Overwrite: true},
		scaffold.Template{Name: "tasks/glob-copy.js", Overwrite: true},
		scaffold.Template{Name: "tasks/rollup.js", Overwrite: true},
		scaffold.Template{Name: "tasks/tsc.js", Overwrite: true},
		scaffold.Template{Name: "__gitignore", Destination: filepath.Join(root, ".gitignore"), Update: true},
		scaffold.Template{Name: "package.json", Overwrite: true},
		scaffold.Template{Name: "README.md"},
		scaffold.Template{Name: "tsconfig.json", Overwrite: true},
		scaffold.Template{Name: "tslint.json", Overwrite: true},
		scaffold.Template{Name: "github/workflows/ci.yaml", Destination: filepath.Join(root, ".github", "workflows", "ci.yaml"), Check: onGitHub},
	)
}

func configPreAnswers(cfg project.Config) inquire.Answers {
	pre := make(inquire.Answers, 0, len(cfg.Answers))

	for _, name := range cfg.AnswerNames() {
		pre = append(pre, inquire.Answer{Name: name, Value: cfg.Answers[name]})
	}

	return pre
}

func (c Initial) Run(ctx context.Context) ([]scaffold.Result, error) {
	manifest, err := project.LoadManifest(ctx, c.Cwd)
	if err != nil {
		return nil, err
	}

	cfg, err := project.LoadConfig(manifest.Dir)
	if err != nil {
		return nil, err
	}

	paths := project.NewPaths(manifest.Dir, c.Cwd)
	gitDir := paths.Root(".git")

	_, err = os.Stat(gitDir)
	gitExists := err == nil

	answers, err := inquire.NewResolver(c.Prompter, c.Logger).Resolve(ctx, InitialQuestions(manifest, gitExists), inquire.Options{
		PreAnswers:         configPreAnswers(cfg),
		Recall:             c.Recall,
		PreviousTransforms: InitialPreviousTransforms(),
	})
	if err != nil {
		return nil, err
	}

	answers = answers.With("librarianVersion", project.LibrarianVersion(ctx, manifest, version.Module("latest")))

	if c.Dump != nil {
		c.Dump(answers)
	}

	results, err := scaffold.New(subFS("initial")).Construct(answers, InitialTemplates(paths.Root()))
	if err == nil {
		var more []scaffold.Result

		more, err = scaffold.New(subFS("component")).Construct(answers, ComponentTemplates(paths.Under(cfg.ComponentsDir), "functional", cfg.Extension))
		results = append(results, more...)
	}

	if rerr := report(c.Logger, results); err == nil {
		err = rerr
	}

	if err != nil {
		return results, err
	}

	if inquire.IsYes(answers.String("git")) {
		if err = c.initGit(ctx, paths.Root(), gitDir); err != nil {
			return results, err
		}
	}

	c.Logger.Info(fmt.Sprintf("installing dependencies with %q", strings.Join(cfg.Install, " ")))

	if err = c.Runner.Run(ctx, paths.Root(), cfg.Install[0], cfg.Install[1:]...); err != nil {
		return results, err
	}

	return results, nil
}

func (c Initial) initGit(ctx context.Context, root, gitDir string) error {
	if err := os.RemoveAll(gitDir); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("failed to remove %q: %w", gitDir, err)
	}

	return c.Runner.Run(ctx, root, "git", "init")
}
