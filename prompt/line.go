// Package prompt asks the operator for answers, either line by line or through a small
// terminal UI.
package prompt

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"

	"github.com/kxue43/librarian/inquire"
)

type (
	// Line reads one line of input per question.
	Line struct {
		in  *bufio.Reader
		out io.Writer
	}
)

var (
	ErrAborted = errors.New("aborted by the operator")
)

func NewLine(in io.Reader, out io.Writer) *Line {
	return &Line{in: bufio.NewReader(in), out: out}
}

func (l *Line) Ask(ctx context.Context, p inquire.Prompt) (answer string, err error) {
	if err = ctx.Err(); err != nil {
		return "", err
	}

	text := p.Text

	if p.HasDefault {
		text += " (" + p.Default + ")"
	}

	if _, err = io.WriteString(l.out, text+" "); err != nil {
		return "", fmt.Errorf("failed to write prompt %q: %w", p.Text, err)
	}

	answer, err = l.in.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && answer != "") {
		return "", fmt.Errorf("failed to read answer to %q: %w", p.Text, err)
	}

	return strings.TrimSpace(answer), nil
}

// New picks the terminal UI when in is a terminal and plain is false, and the line
// prompter otherwise.
func New(in *os.File, out io.Writer, plain bool) inquire.Prompter {
	if !plain && isatty.IsTerminal(in.Fd()) {
		return NewTUI(in, out)
	}

	return NewLine(in, out)
}
