package tui

import (
	"github.com/charmbracelet/glamour"

	"github.com/aretw0/sift/pkg/ports"
)

// NewRenderer returns a renderer that formats markdown using glamour.
// It uses a dark theme by default, but could be configurable.
func NewRenderer() ports.Renderer {
	// Initialize renderer with standard dark style
	// In the future, we can inject style preferences here.
	r, _ := glamour.NewTermRenderer(
		glamour.WithAutoStyle(), // Automatically detect light/dark background
	)

	return func(markdown string) (string, error) {
		return r.Render(markdown)
	}
}
