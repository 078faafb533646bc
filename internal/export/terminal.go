package export

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"

	"github.com/dohr-michael/todo/internal/tasks"
)

// RenderTerminal renders the Markdown form of list for a terminal of the given
// width. style is a glamour standard style name; empty picks one from the terminal.
func RenderTerminal(title string, list []tasks.Task, width int, style string) (string, error) {
	var md strings.Builder
	if err := writeMarkdown(&md, title, list); err != nil {
		return "", err
	}

	styleOpt := glamour.WithAutoStyle()
	if style != "" {
		styleOpt = glamour.WithStandardStyle(style)
	}
	r, err := glamour.NewTermRenderer(styleOpt, glamour.WithWordWrap(width))
	if err != nil {
		return "", fmt.Errorf("create markdown renderer: %w", err)
	}

	out, err := r.Render(md.String())
	if err != nil {
		return "", fmt.Errorf("render markdown: %w", err)
	}
	return strings.TrimRight(out, "\n") + "\n", nil
}
