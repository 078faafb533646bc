// Package tui is the interactive terminal front end of the task list.
package tui

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/dohr-michael/todo/clients/tui/components"
)

// Screen rows. The list fills everything between the separator and the status bar.
const (
	headerRow = 0
	inputRow  = 1
	listTop   = 3
	chromeH   = 4 // header + input + separator + status bar
)

// addLabel is the submit button at the right end of the input row.
const addLabel = "[add]"

const (
	inputHint = "enter or [add] to add · tab list · ctrl+c quit"
	listHint  = "space toggle · e edit · d delete · tab input · q quit"
)

type focusArea int

const (
	focusInput focusArea = iota
	focusList
)

// Options configures the App.
type Options struct {
	Title       string
	Placeholder string
	Driver      string // shown in the status bar
	Mouse       bool
	Logger      *slog.Logger
}

// App is the bubbletea model: it owns the widgets and forwards every user
// action to the Controller, then rebuilds the list from the store.
type App struct {
	ctx   context.Context
	store TaskStore
	ctl   *Controller

	input  textinput.Model
	list   *components.TaskList
	status *components.StatusBar
	alert  components.Alert

	title    string
	focus    focusArea
	width    int
	height   int
	quitting bool
}

// NewApp creates the model and renders the current store contents.
func NewApp(ctx context.Context, store TaskStore, opts Options) *App {
	ti := textinput.New()
	ti.Prompt = "" // the ❯ prompt is rendered by View
	ti.Placeholder = opts.Placeholder
	ti.CharLimit = 2000
	ti.Width = 76
	ti.Focus()

	a := &App{
		ctx:    ctx,
		store:  store,
		ctl:    NewController(store, opts.Logger),
		input:  ti,
		list:   components.NewTaskList(),
		status: components.NewStatusBar(opts.Driver),
		title:  opts.Title,
		focus:  focusInput,
		width:  80,
		height: 24,
	}
	a.status.SetHint(inputHint)
	a.updateSizes()
	a.refresh()
	return a
}

// Init starts the cursor blink.
func (a *App) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles one message to completion.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.updateSizes()
		return a, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			a.quitting = true
			return a, tea.Quit
		}
		// Drop unparsed SGR mouse escape sequence fragments.
		if msg.Type == tea.KeyRunes && isMouseEscapeFragment(string(msg.Runes)) {
			return a, nil
		}
		if a.alert.Active() {
			return a, a.handleAlertKey(msg)
		}
		if a.focus == focusList {
			return a.handleListKey(msg)
		}
		return a.handleInputKey(msg)

	case tea.MouseMsg:
		return a, a.handleMouse(msg)
	}

	// Cursor blink and other textinput internals.
	var cmd tea.Cmd
	a.input, cmd = a.input.Update(msg)
	return a, cmd
}

func (a *App) handleAlertKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "enter", "esc", " ":
		a.alert.Dismiss()
		return a.focusInput()
	}
	return nil
}

func (a *App) handleInputKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		return a, a.submit()
	case "tab", "esc", "down":
		a.focusList()
		return a, nil
	}

	var cmd tea.Cmd
	a.input, cmd = a.input.Update(msg)
	return a, cmd
}

func (a *App) handleListKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		a.quitting = true
		return a, tea.Quit
	case "tab", "esc", "i", "/":
		return a, a.focusInput()
	case "up", "k":
		a.list.MoveCursor(-1)
	case "down", "j":
		a.list.MoveCursor(1)
	case "home", "g":
		a.list.SetCursor(0)
	case "end", "G":
		a.list.SetCursor(a.list.Len() - 1)
	case " ", "x", "enter":
		if t, ok := a.list.Selected(); ok {
			return a, a.apply(a.ctl.Toggle(a.ctx, t.ID))
		}
	case "e":
		if t, ok := a.list.Selected(); ok {
			return a, a.apply(a.ctl.Edit(a.ctx, t.ID))
		}
	case "d", "delete", "backspace":
		if t, ok := a.list.Selected(); ok {
			return a, a.apply(a.ctl.Delete(a.ctx, t.ID))
		}
	}
	return a, nil
}

func (a *App) handleMouse(msg tea.MouseMsg) tea.Cmd {
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return nil
	}
	if a.alert.Active() {
		a.alert.Dismiss()
		return a.focusInput()
	}

	switch {
	case msg.Y == inputRow && msg.X >= a.addButtonX():
		return a.submit()
	case msg.Y == inputRow:
		return a.focusInput()
	case msg.Y >= listTop && msg.Y < listTop+a.listHeight():
		row := msg.Y - listTop
		t, target := a.list.HitTest(msg.X, row)
		if target == components.TargetNone {
			return nil
		}
		a.list.SetCursor(a.list.IndexAt(row))
		return a.apply(a.ctl.Click(a.ctx, t.ID, target))
	}
	return nil
}

// submit runs the submit action and always hands focus back to the input.
func (a *App) submit() tea.Cmd {
	cmd := a.apply(a.ctl.Submit(a.ctx, a.input.Value()))
	if a.alert.Active() {
		a.input.Blur()
		return cmd
	}
	return tea.Batch(cmd, a.focusInput())
}

// apply reflects an Outcome on the widgets and rebuilds the list.
func (a *App) apply(o Outcome) tea.Cmd {
	a.refresh()
	a.status.SetError(o.Err)
	if o.Warning != "" {
		a.alert.Show(o.Warning)
	}
	if o.Input != nil {
		a.input.SetValue(*o.Input)
		a.input.CursorEnd()
		if !a.alert.Active() {
			return a.focusInput()
		}
	}
	return nil
}

func (a *App) refresh() {
	a.list.SetTasks(a.store.Tasks())
	total, done := a.store.Counts()
	a.status.SetCounts(total, done)
}

func (a *App) focusInput() tea.Cmd {
	a.focus = focusInput
	a.list.SetFocused(false)
	a.status.SetHint(inputHint)
	return a.input.Focus()
}

func (a *App) focusList() {
	a.focus = focusList
	a.input.Blur()
	a.list.SetFocused(true)
	a.status.SetHint(listHint)
}

func (a *App) listHeight() int {
	return max(a.height-chromeH, 1)
}

// addButtonX is the first column of the add button.
func (a *App) addButtonX() int {
	return max(a.width-len(addLabel), 0)
}

func (a *App) updateSizes() {
	a.input.Width = max(a.width-3-len(addLabel)-1, 1) // prompt, cursor, " [add]"
	a.list.SetSize(a.width, a.listHeight())
	a.status.SetWidth(a.width)
}

// View renders HEADER | INPUT [add] | SEPARATOR | LIST | STATUS.
func (a *App) View() string {
	if a.quitting {
		return ""
	}

	total, done := a.store.Counts()
	headerText := ansi.Truncate(
		components.HeaderTitleStyle.Render(a.title)+"  "+
			components.HeaderCountStyle.Render(fmt.Sprintf("%d open", total-done)),
		max(a.width-2, 0), "…") // HeaderStyle padding
	header := components.HeaderStyle.Width(a.width).MaxHeight(1).Render(headerText)

	prompt := components.InputBlurredStyle.Render("❯ ")
	if a.focus == focusInput && !a.alert.Active() {
		prompt = components.InputPromptCharStyle.Render("❯ ")
	}

	field := ansi.Truncate(prompt+a.input.View(), a.addButtonX()-1, "")
	field += strings.Repeat(" ", max(a.addButtonX()-ansi.StringWidth(field), 0))
	inputLine := field + components.AddButtonStyle.Render(addLabel)

	separator := components.InputSeparatorStyle.Render(strings.Repeat("─", max(a.width, 1)))

	body := a.list.View()
	if a.alert.Active() {
		body = a.alert.View(a.width, a.listHeight())
	}

	// Every section keeps its row count so screen rows match handleMouse.
	return lipgloss.JoinVertical(lipgloss.Left,
		fitLines(header, 1),
		fitLines(inputLine, 1),
		fitLines(separator, 1),
		fitLines(body, a.listHeight()),
		fitLines(a.status.View(), 1),
	)
}

// fitLines clips or pads s to exactly n lines.
func fitLines(s string, n int) string {
	lines := strings.Split(s, "\n")
	if len(lines) > n {
		lines = lines[:n]
	}
	for len(lines) < n {
		lines = append(lines, "")
	}
	return strings.Join(lines, "\n")
}

// isMouseEscapeFragment returns true if s looks like one or more unparsed
// SGR mouse escape sequence fragments (e.g. "[<65;80;14M").
func isMouseEscapeFragment(s string) bool {
	if len(s) < 5 || s[0] != '[' || s[1] != '<' {
		return false
	}
	for _, r := range s {
		switch {
		case r >= '0' && r <= '9':
		case r == '[', r == '<', r == ';', r == 'M', r == 'm':
		default:
			return false
		}
	}
	return true
}
