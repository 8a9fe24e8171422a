// Package logging builds the per-command loggers used by the librarian commands.
package logging

import (
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
)

type (
	// Logger is the set of channels a command writes to. Debug lines only show up with --debug.
	Logger interface {
		Debug(msg any, keyvals ...any)
		Error(msg any, keyvals ...any)
		Info(msg any, keyvals ...any)
		Print(msg any, keyvals ...any)
		Warn(msg any, keyvals ...any)
	}
)

var (
	palette = struct {
		red    lipgloss.Color
		yellow lipgloss.Color
		cyan   lipgloss.Color
	}{
		red:    lipgloss.Color("9"),
		yellow: lipgloss.Color("184"),
		cyan:   lipgloss.Color("51"),
	}
)

// New returns a logger whose lines are prefixed with "[command]".
func New(w io.Writer, command string) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		Prefix:          "[" + command + "]",
		ReportTimestamp: false,
		ReportCaller:    false,
	})
}

// SetDebug lowers the level of l so that debug lines are emitted.
func SetDebug(l *log.Logger, debug bool) {
	if debug {
		l.SetLevel(log.DebugLevel)
	} else {
		l.SetLevel(log.InfoLevel)
	}
}

func Red(msg string) string {
	return lipgloss.NewStyle().Foreground(palette.red).Render(msg)
}

func Yellow(msg string) string {
	return lipgloss.NewStyle().Foreground(palette.yellow).Render(msg)
}

func Cyan(msg string) string {
	return lipgloss.NewStyle().Foreground(palette.cyan).Render(msg)
}
