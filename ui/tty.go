package ui

import (
	"io"
	"os"

	"github.com/mattn/go-isatty"
)

func SupportsANSICodes() bool {
	return isTerminal(os.Stdout.Fd())
}

// IsTerminalWriter reports whether w is a file attached to a terminal.
func IsTerminalWriter(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && isTerminal(f.Fd())
}

// IsInteractive reports whether prompts can be shown to the user.
func IsInteractive() bool {
	return isTerminal(os.Stdin.Fd()) && isTerminal(os.Stdout.Fd())
}

func isTerminal(fd uintptr) bool {
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
