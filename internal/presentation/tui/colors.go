package tui

import (
	"io"
	"os"
	"strings"

	"github.com/muesli/termenv"
	"golang.org/x/term"

	"github.com/aretw0/sift/pkg/ports"
)

// IsTerminal reports whether w is attached to an interactive terminal.
// Pipes, files and test buffers are not; callers should skip styling then.
func IsTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}

// NewReportRenderer returns a renderer that colorizes validation report
// lines: green for passing inputs, red for failures, yellow for the issue
// detail beneath them. Unrecognized lines pass through unstyled.
func NewReportRenderer() ports.Renderer {
	p := termenv.ColorProfile()
	ok := p.Color("2")
	fail := p.Color("1")
	detail := p.Color("3")

	return func(line string) (string, error) {
		switch {
		case strings.HasPrefix(line, "ok "):
			return termenv.String(line).Foreground(ok).String(), nil
		case strings.HasPrefix(line, "FAIL "):
			return termenv.String(line).Foreground(fail).Bold().String(), nil
		case strings.HasPrefix(line, "  - "):
			return termenv.String(line).Foreground(detail).String(), nil
		default:
			return line, nil
		}
	}
}
