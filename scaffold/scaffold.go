package scaffold

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"

	"github.com/kxue43/librarian/inquire"
)

type (
	Template struct {
		// Check gates the template; false skips it regardless of the other policies.
		Check func(answers inquire.Answers) bool
		// Name is the path of the template in the source filesystem.
		Name string
		// Destination may contain {{ answer }} placeholders. Relative destinations are
		// resolved against the current directory.
		Destination string
		Overwrite   bool
		Update      bool
		// Blank creates an empty file instead of rendering Name.
		Blank bool
	}

	Action byte

	Result struct {
		Err         error
		Template    string
		Destination string
		Reason      string
		Action      Action
	}

	WriteHook func(io.Writer) error

	Materializer struct {
		src fs.FS
	}
)

const (
	Created Action = iota
	Overwritten
	Updated
	Skipped
	Failed
)

var (
	ErrUnknownPlaceholder = errors.New("unknown placeholder")
	ErrTemplateNotFound   = errors.New("template not found")

	placeholderRegex = regexp.MustCompile(`\{\{\s*([A-Za-z_$][A-Za-z0-9_$]*)\s*\}\}`)
)

func (a Action) String() string {
	switch a {
	case Created:
		return "created"
	case Overwritten:
		return "overwritten"
	case Updated:
		return "updated"
	case Skipped:
		return "skipped"
	case Failed:
		return "failed"
	default:
		return fmt.Sprintf("action(%d)", byte(a))
	}
}

// WithRoot fills in the destination of every template that has none with root/Name.
func WithRoot(root string, templates ...Template) []Template {
	out := make([]Template, len(templates))

	for i, t := range templates {
		if t.Destination == "" {
			t.Destination = filepath.Join(root, t.Name)
		}

		out[i] = t
	}

	return out
}

func New(src fs.FS) *Materializer {
	return &Materializer{src: src}
}

// Substitute replaces every placeholder that names an answer and leaves the others untouched.
func Substitute(content string, answers inquire.Answers) string {
	return placeholderRegex.ReplaceAllStringFunc(content, func(match string) string {
		name := placeholderRegex.FindStringSubmatch(match)[1]
		if !answers.Has(name) {
			return match
		}

		return answers.String(name)
	})
}

// ResolveDestination substitutes placeholders in dest.
// Non-nil returned error wraps [ErrUnknownPlaceholder].
func ResolveDestination(dest string, answers inquire.Answers) (string, error) {
	for _, m := range placeholderRegex.FindAllStringSubmatch(dest, -1) {
		if !answers.Has(m[1]) {
			return "", fmt.Errorf("%w %q in destination %q", ErrUnknownPlaceholder, m[1], dest)
		}
	}

	return filepath.Clean(Substitute(dest, answers)), nil
}

// Construct handles templates in order. A template that cannot be resolved or rendered is
// reported as [Failed] and the rest still run; a failed filesystem write stops the run and is
// returned together with the results gathered so far.
func (m *Materializer) Construct(answers inquire.Answers, templates []Template) ([]Result, error) {
	results := make([]Result, 0, len(templates))

	for _, t := range templates {
		res, err := m.construct(answers, t)
		results = append(results, res)

		if err != nil {
			return results, err
		}
	}

	return results, nil
}

func (m *Materializer) construct(answers inquire.Answers, t Template) (res Result, err error) {
	res = Result{Template: t.Name, Destination: t.Destination}

	if res.Destination, err = ResolveDestination(t.Destination, answers); err != nil {
		return failed(res, err), nil
	}

	if t.Check != nil && !t.Check(answers) {
		return skipped(res, "check"), nil
	}

	exists, err := fileExists(res.Destination)
	if err != nil {
		return failed(res, err), err
	}

	if t.Blank {
		return m.writeBlank(res, t, exists)
	}

	raw, err := fs.ReadFile(m.src, t.Name)
	if err != nil {
		return failed(res, fmt.Errorf("%w: %q: %w", ErrTemplateNotFound, t.Name, err)), nil
	}

	rendered := Substitute(string(raw), answers)

	switch {
	case t.Overwrite:
		return write(res, rendered, exists)
	case t.Update && exists:
		return m.update(res, rendered)
	case exists:
		return skipped(res, "exists"), nil
	default:
		return write(res, rendered, false)
	}
}

func (m *Materializer) writeBlank(res Result, t Template, exists bool) (Result, error) {
	if exists && !t.Overwrite {
		return skipped(res, "exists"), nil
	}

	if err := touch(res.Destination); err != nil {
		return failed(res, err), err
	}

	res.Action = Created
	if exists {
		res.Action = Overwritten
	}

	return res, nil
}

func (m *Materializer) update(res Result, rendered string) (Result, error) {
	existing, err := os.ReadFile(filepath.Clean(res.Destination))
	if err != nil {
		err = fmt.Errorf("failed to read %q for update: %w", res.Destination, err)

		return failed(res, err), err
	}

	merged, err := MergeBlocks(string(existing), rendered)
	if err != nil {
		return failed(res, fmt.Errorf("failed to merge %q into %q: %w", res.Template, res.Destination, err)), nil
	}

	if merged == string(existing) {
		return skipped(res, "unchanged"), nil
	}

	if err = WriteToFile(res.Destination, writeString(merged)); err != nil {
		return failed(res, err), err
	}

	res.Action = Updated

	return res, nil
}

func write(res Result, contents string, exists bool) (Result, error) {
	if err := WriteToFile(res.Destination, writeString(contents)); err != nil {
		return failed(res, err), err
	}

	res.Action = Created
	if exists {
		res.Action = Overwritten
	}

	return res, nil
}

func failed(res Result, err error) Result {
	res.Action = Failed
	res.Err = err

	return res
}

func skipped(res Result, reason string) Result {
	res.Action = Skipped
	res.Reason = reason

	return res
}

// Failures joins the errors of every failed result.
func Failures(results []Result) error {
	var errs []error

	for _, r := range results {
		if r.Action == Failed {
			errs = append(errs, r.Err)
		}
	}

	return errors.Join(errs...)
}

func fileExists(path string) (bool, error) {
	info, err := os.Stat(path)
	if errors.Is(err, os.ErrNotExist) {
		return false, nil
	}

	if err != nil {
		return false, fmt.Errorf("failed to check %q: %w", path, err)
	}

	if info.IsDir() {
		return false, fmt.Errorf("destination %q is a directory", path)
	}

	return true, nil
}

func writeString(s string) WriteHook {
	return func(w io.Writer) error {
		_, err := io.WriteString(w, s)

		return err
	}
}

// WriteToFile creates or truncates path, creating its parent directories first.
func WriteToFile(path string, hook WriteHook) (err error) {
	path = filepath.Clean(path)

	if err = os.MkdirAll(filepath.Dir(path), 0750); err != nil {
		return fmt.Errorf("failed to create directory for %q: %w", path, err)
	}

	fd, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %q file: %w", path, err)
	}

	defer func() {
		if cerr := fd.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("failed to close %q after writing: %w", path, cerr)
		}
	}()

	if err = hook(fd); err != nil {
		return fmt.Errorf("failed to write to %q: %w", path, err)
	}

	return nil
}

func touch(path string) error {
	return WriteToFile(path, func(io.Writer) error { return nil })
}
