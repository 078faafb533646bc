package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// StatusBar shows task counts, the storage driver and the last error.
type StatusBar struct {
	width     int
	total     int
	completed int
	driver    string
	hint      string
	err       error
}

// NewStatusBar creates a status bar for the given storage driver.
func NewStatusBar(driver string) *StatusBar {
	return &StatusBar{driver: driver}
}

// SetWidth sets the component width.
func (s *StatusBar) SetWidth(width int) { s.width = width }

// SetCounts sets the task counters.
func (s *StatusBar) SetCounts(total, completed int) {
	s.total = total
	s.completed = completed
}

// SetHint sets the key hint shown on the left.
func (s *StatusBar) SetHint(hint string) { s.hint = hint }

// SetError shows err instead of the hint until cleared with nil.
func (s *StatusBar) SetError(err error) { s.err = err }

// Err returns the error currently shown.
func (s *StatusBar) Err() error { return s.err }

// View renders the status bar on exactly one line, truncating on narrow widths.
func (s *StatusBar) View() string {
	right := fmt.Sprintf("%s · %s", FormatCounts(s.total, s.completed), s.driver)

	inner := max(s.width-2, 0) // StatusBarStyle padding
	leftWidth := max(inner-ansi.StringWidth(right)-1, 0)

	var left string
	if s.err != nil {
		left = StatusErrorStyle.Render(ansi.Truncate("error: "+s.err.Error(), leftWidth, "…"))
	} else {
		left = ansi.Truncate(s.hint, leftWidth, "…")
	}

	padding := max(inner-ansi.StringWidth(left)-ansi.StringWidth(right), 1)
	line := ansi.Truncate(left+strings.Repeat(" ", padding)+right, inner, "…")
	return StatusBarStyle.Width(s.width).MaxHeight(1).Render(line)
}

// FormatCounts renders "n tasks, m done" with singular forms.
func FormatCounts(total, completed int) string {
	noun := "tasks"
	if total == 1 {
		noun = "task"
	}
	return fmt.Sprintf("%d %s, %d done", total, noun, completed)
}
