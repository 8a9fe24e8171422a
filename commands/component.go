package commands

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/kxue43/librarian/casing"
	"github.com/kxue43/librarian/inquire"
	"github.com/kxue43/librarian/logging"
	"github.com/kxue43/librarian/project"
	"github.com/kxue43/librarian/scaffold"
)

type (
	ComponentCmd struct {
		Args []string `arg:"" optional:"" name:"type-or-tag" help:"Component type (class or functional) and/or dash-case tag, e.g. \"f my-tag\"."`
	}

	// Component generates a component source file and its test.
	Component struct {
		Logger   logging.Logger
		Prompter inquire.Prompter
		Cwd      string
		Dump     func(inquire.Answers)
	}
)

var (
	ErrInvalidInput = errors.New("invalid CLI input")
)

// ComponentType maps the accepted spellings onto "class" or "functional", and anything
// else onto "".
func ComponentType(value string) string {
	switch strings.ToLower(value) {
	case "c", "cl", "class":
		return "class"
	case "f", "func", "function", "functional":
		return "functional"
	default:
		return ""
	}
}

// Non-nil returned error wraps [ErrInvalidInput].
func (c *ComponentCmd) Validate() error {
	if len(c.Args) > 2 {
		return fmt.Errorf("%w: expected at most a type and a tag, got %d arguments", ErrInvalidInput, len(c.Args))
	}

	return nil
}

func (c *ComponentCmd) Run(env *Env) error {
	cmd := Component{
		Logger:   env.NewLogger("Component"),
		Prompter: env.Prompter,
		Cwd:      env.Cwd,
		Dump:     env.dump,
	}

	_, err := cmd.Run(env.Ctx, c.Args...)

	return err
}

func componentTag(value any, _ inquire.Answers) (any, error) {
	s, _ := value.(string)
	if !casing.IsDashCase(s) {
		return nil, fmt.Errorf("%w: %q is not in dash-case, e.g. my-tag", inquire.ErrInvalidAnswer, s)
	}

	return s, nil
}

func componentName(value any, _ inquire.Answers) (any, error) {
	name := casing.DashToPascal(fmt.Sprint(value), "")
	if name == "" {
		return nil, fmt.Errorf("%w: a component name needs a non-empty package name or tag", inquire.ErrInvalidAnswer)
	}

	return name, nil
}

func componentTypeAnswer(value any, _ inquire.Answers) (any, error) {
	s, _ := value.(string)
	if t := ComponentType(s); t != "" {
		return t, nil
	}

	return nil, fmt.Errorf("%w: %q is not a component type, answer class or functional", inquire.ErrInvalidAnswer, s)
}

// ComponentQuestions asks for a dash-case tag and a component type; the PascalCase
// componentName is derived from the tag.
func ComponentQuestions() []inquire.Question {
	return []inquire.Question{
		inquire.Prompted{Name: "tag", Text: "Tag name (in dash-case):", Transform: componentTag},
		inquire.Derived{Name: "componentName", Source: "tag", Transform: componentName},
		inquire.Prompted{Name: "type", Text: "Component type:", Transform: componentTypeAnswer},
	}
}

// ComponentPreAnswers reads the optional type and tag arguments. When the first argument
// is not a type it is taken as the tag. Arguments that fail validation are dropped so that
// the operator is asked instead.
func ComponentPreAnswers(logger logging.Logger, args ...string) inquire.Answers {
	var kind, tag string

	if len(args) > 0 {
		if kind = ComponentType(args[0]); kind != "" {
			args = args[1:]
		}
	}

	if len(args) > 0 {
		tag = args[0]
	}

	if kind == "" && len(args) > 1 {
		kind = ComponentType(args[1])
	}

	var pre inquire.Answers

	switch {
	case tag == "":
	case casing.IsDashCase(tag):
		pre = append(pre, inquire.Answer{Name: "tag", Value: tag})
	default:
		logger.Warn(fmt.Sprintf("%q is not in dash-case; please enter the tag again", tag))
	}

	if kind != "" {
		pre = append(pre, inquire.Answer{Name: "type", Value: kind})
	}

	return pre
}

// ComponentTemplates places the source file in the components directory resolved by at,
// and its test in __tests__ below it.
func ComponentTemplates(at func(...string) string, kind, ext string) []scaffold.Template {
	return []scaffold.Template{
		{Name: kind + ".tsx", Destination: at("{{ componentName }}." + ext)},
		{Name: "spec.tsx", Destination: at("__tests__", "{{ componentName }}.spec."+ext)},
	}
}

func (c Component) Run(ctx context.Context, args ...string) ([]scaffold.Result, error) {
	manifest, err := project.LoadManifest(ctx, c.Cwd)
	if err != nil {
		return nil, err
	}

	cfg, err := project.LoadConfig(manifest.Dir)
	if err != nil {
		return nil, err
	}

	answers, err := inquire.NewResolver(c.Prompter, c.Logger).Resolve(ctx, ComponentQuestions(), inquire.Options{
		PreAnswers: ComponentPreAnswers(c.Logger, args...),
	})
	if err != nil {
		return nil, err
	}

	if c.Dump != nil {
		c.Dump(answers)
	}

	paths := project.NewPaths(manifest.Dir, c.Cwd)
	components := paths.Under(cfg.ComponentsDir)

	results, err := scaffold.New(subFS("component")).Construct(answers, ComponentTemplates(components, answers.String("type"), cfg.Extension))
	if err != nil {
		_ = report(c.Logger, results)

		return results, err
	}

	if err = report(c.Logger, results); err != nil {
		return results, err
	}

	c.notify(answers.String("componentName"), paths.Root("src"), components())

	return results, nil
}

func (c Component) notify(name, src, dir string) {
	rel, err := filepath.Rel(src, dir)
	if err != nil {
		rel = dir
	}

	importPath := filepath.ToSlash(filepath.Join(rel, name))
	if !strings.HasPrefix(importPath, ".") && !filepath.IsAbs(rel) {
		importPath = "./" + importPath
	}

	c.Logger.Info("Don't forget to add the following to src/index.ts:")
	c.Logger.Info(logging.Cyan(fmt.Sprintf("    import { %s } from '%s';", name, importPath)))
	c.Logger.Info("In order for it to be available to consumers.")
}
