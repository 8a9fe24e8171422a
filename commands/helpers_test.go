package commands

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/kxue43/librarian/inquire"
	"github.com/kxue43/librarian/project"
)

type (
	scriptedPrompter struct {
		inputs []string
		asked  []inquire.Prompt
	}

	call struct {
		dir  string
		name string
		args []string
	}

	recordingRunner struct {
		fail  string
		calls []call
	}
)

func (s *scriptedPrompter) Ask(_ context.Context, p inquire.Prompt) (string, error) {
	s.asked = append(s.asked, p)

	if len(s.inputs) == 0 {
		return "", io.EOF
	}

	input := s.inputs[0]
	s.inputs = s.inputs[1:]

	return input, nil
}

func (s *scriptedPrompter) texts() []string {
	texts := make([]string, len(s.asked))

	for i := range s.asked {
		texts[i] = s.asked[i].Text
	}

	return texts
}

func (r *recordingRunner) Run(_ context.Context, dir, name string, args ...string) error {
	r.calls = append(r.calls, call{dir: dir, name: name, args: args})

	if name == r.fail {
		return errors.New("exit status 1")
	}

	return nil
}

// newLibrary creates a package root holding package.json and returns it together with a
// nested working directory.
func newLibrary(t *testing.T, manifest string) (root, cwd string) {
	t.Helper()

	root = t.TempDir()
	cwd = filepath.Join(root, "src", "deep")

	require.NoError(t, os.MkdirAll(cwd, 0750))
	require.NoError(t, os.WriteFile(filepath.Join(root, project.ManifestFileName), []byte(manifest), 0600))

	return root, cwd
}

func writeConfig(t *testing.T, root, contents string) {
	t.Helper()

	require.NoError(t, os.WriteFile(filepath.Join(root, project.ConfigFileName), []byte(contents), 0600))
}

func readFile(t *testing.T, path string) string {
	t.Helper()

	contents, err := os.ReadFile(path)
	require.NoError(t, err)

	return string(contents)
}

func countFiles(t *testing.T, root string) int {
	t.Helper()

	n := 0

	err := filepath.WalkDir(root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if !d.IsDir() {
			n += 1
		}

		return nil
	})
	require.NoError(t, err)

	return n
}
