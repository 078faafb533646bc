package tui

import (
	"context"
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/dohr-michael/todo/internal/storage"
	"github.com/dohr-michael/todo/internal/tasks"
)

var errDiskFull = errors.New("disk full")

// failingKV fails every write.
type failingKV struct {
	storage.KV
}

func (failingKV) Set(context.Context, string, []byte) error { return errDiskFull }

func newTestStore(t *testing.T) *tasks.Store {
	t.Helper()
	s := tasks.NewStore(storage.NewMemoryKV())
	if err := s.Load(context.Background()); err != nil {
		t.Fatalf("Load: %v", err)
	}
	return s
}

func newTestApp(t *testing.T) (*App, *tasks.Store) {
	t.Helper()
	s := newTestStore(t)
	a := NewApp(context.Background(), s, Options{Title: "todo", Driver: "memory"})
	a.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	return a, s
}

func typeText(a *App, text string) {
	for _, r := range text {
		a.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
}

func press(a *App, k tea.KeyType) tea.Cmd {
	_, cmd := a.Update(tea.KeyMsg{Type: k})
	return cmd
}

func key(a *App, r rune) tea.Cmd {
	_, cmd := a.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	return cmd
}

func click(a *App, x, y int) {
	a.Update(tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
}

func addTasks(t *testing.T, s *tasks.Store, texts ...string) []tasks.Task {
	t.Helper()
	out := make([]tasks.Task, 0, len(texts))
	for _, text := range texts {
		task, err := s.Add(context.Background(), text)
		if err != nil {
			t.Fatalf("Add(%q): %v", text, err)
		}
		out = append(out, task)
	}
	return out
}
