package components

import (
	"strings"

	"github.com/charmbracelet/x/ansi"

	"github.com/dohr-michael/todo/internal/tasks"
)

// Target is the part of a row a click landed on.
type Target int

const (
	TargetNone   Target = iota
	TargetToggle        // anywhere on the row outside the controls
	TargetEdit
	TargetDelete
)

func (t Target) String() string {
	switch t {
	case TargetToggle:
		return "toggle"
	case TargetEdit:
		return "edit"
	case TargetDelete:
		return "delete"
	default:
		return "none"
	}
}

// Row layout: cursor(2) checkbox(4) text(n) " " EditLabel " " DeleteLabel.
const (
	EditLabel   = "[edit]"
	DeleteLabel = "[del]"

	cursorWidth   = 2
	checkboxWidth = 4
	controlsWidth = 1 + len(EditLabel) + 1 + len(DeleteLabel)
	minTextWidth  = 1
)

// rowLayout holds the column spans of one rendered row.
type rowLayout struct {
	textWidth int
	editStart int
	editEnd   int
	delStart  int
	delEnd    int
}

func layoutFor(width int) rowLayout {
	tw := width - cursorWidth - checkboxWidth - controlsWidth
	if tw < minTextWidth {
		tw = minTextWidth
	}
	editStart := cursorWidth + checkboxWidth + tw + 1
	delStart := editStart + len(EditLabel) + 1
	return rowLayout{
		textWidth: tw,
		editStart: editStart,
		editEnd:   editStart + len(EditLabel),
		delStart:  delStart,
		delEnd:    delStart + len(DeleteLabel),
	}
}

// TaskList renders tasks one per line and maps clicks back to tasks.
// It keeps no state beyond the last rendered snapshot: every Render rebuilds
// the whole list.
type TaskList struct {
	tasks   []tasks.Task
	cursor  int
	offset  int
	width   int
	height  int
	focused bool
}

// NewTaskList creates an empty list.
func NewTaskList() *TaskList {
	return &TaskList{width: 80, height: 10}
}

// SetSize sets the list area in cells.
func (l *TaskList) SetSize(width, height int) {
	l.width = width
	if height < 1 {
		height = 1
	}
	l.height = height
	l.clamp()
}

// SetTasks replaces the snapshot to render.
func (l *TaskList) SetTasks(list []tasks.Task) {
	l.tasks = list
	l.clamp()
}

// SetFocused toggles the cursor highlight.
func (l *TaskList) SetFocused(focused bool) { l.focused = focused }

// Focused reports whether the list has keyboard focus.
func (l *TaskList) Focused() bool { return l.focused }

// Len returns the number of rendered tasks.
func (l *TaskList) Len() int { return len(l.tasks) }

// Cursor returns the selected index.
func (l *TaskList) Cursor() int { return l.cursor }

// SetCursor selects index i (clamped).
func (l *TaskList) SetCursor(i int) {
	l.cursor = i
	l.clamp()
}

// MoveCursor moves the selection by delta rows.
func (l *TaskList) MoveCursor(delta int) {
	l.SetCursor(l.cursor + delta)
}

// Selected returns the task under the cursor.
func (l *TaskList) Selected() (tasks.Task, bool) {
	if l.cursor < 0 || l.cursor >= len(l.tasks) {
		return tasks.Task{}, false
	}
	return l.tasks[l.cursor], true
}

func (l *TaskList) clamp() {
	if l.cursor >= len(l.tasks) {
		l.cursor = len(l.tasks) - 1
	}
	if l.cursor < 0 {
		l.cursor = 0
	}
	if l.cursor < l.offset {
		l.offset = l.cursor
	}
	if l.cursor >= l.offset+l.height {
		l.offset = l.cursor - l.height + 1
	}
	if maxOffset := len(l.tasks) - l.height; l.offset > maxOffset {
		l.offset = max(maxOffset, 0)
	}
}

// HitTest maps a click at column x of visible row to a task and target.
func (l *TaskList) HitTest(x, row int) (tasks.Task, Target) {
	if row < 0 || row >= l.height || x < 0 {
		return tasks.Task{}, TargetNone
	}
	i := l.offset + row
	if i >= len(l.tasks) {
		return tasks.Task{}, TargetNone
	}

	lo := layoutFor(l.width)
	switch {
	case x >= lo.delStart && x < lo.delEnd:
		return l.tasks[i], TargetDelete
	case x >= lo.editStart && x < lo.editEnd:
		return l.tasks[i], TargetEdit
	default:
		return l.tasks[i], TargetToggle
	}
}

// IndexAt returns the list index shown on visible row, or -1.
func (l *TaskList) IndexAt(row int) int {
	if row < 0 || row >= l.height {
		return -1
	}
	if i := l.offset + row; i < len(l.tasks) {
		return i
	}
	return -1
}

// View renders exactly height lines.
func (l *TaskList) View() string {
	lines := make([]string, 0, l.height)
	if len(l.tasks) == 0 {
		lines = append(lines, EmptyListStyle.Render("  Nothing to do. Type a task above and press Enter."))
	}

	lo := layoutFor(l.width)
	end := min(l.offset+l.height, len(l.tasks))
	for i := l.offset; i < end; i++ {
		lines = append(lines, l.renderRow(l.tasks[i], i == l.cursor && l.focused, lo))
	}
	for len(lines) < l.height {
		lines = append(lines, "")
	}
	return strings.Join(lines, "\n")
}

func (l *TaskList) renderRow(t tasks.Task, selected bool, lo rowLayout) string {
	cursor := "  "
	if selected {
		cursor = CursorStyle.Render("❯ ")
	}

	box := CheckboxStyle.Render("[ ] ")
	textStyle := TaskTextStyle
	if t.Completed {
		box = CheckboxDoneStyle.Render("[x] ")
		textStyle = TaskDoneStyle
	}
	if selected {
		textStyle = textStyle.Inherit(SelectedRowStyle)
	}

	text := ansi.Truncate(singleLine(t.Text), lo.textWidth, "…")
	pad := strings.Repeat(" ", max(lo.textWidth-ansi.StringWidth(text), 0))

	return cursor + box + textStyle.Render(text) + pad +
		" " + EditControlStyle.Render(EditLabel) +
		" " + DeleteControlStyle.Render(DeleteLabel)
}

// singleLine folds newlines and tabs so every task takes one row.
func singleLine(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
