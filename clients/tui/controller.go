package tui

import (
	"context"
	"errors"
	"log/slog"

	"github.com/dohr-michael/todo/clients/tui/components"
	"github.com/dohr-michael/todo/internal/tasks"
)

// EmptyTaskWarning is shown when the user submits blank text.
const EmptyTaskWarning = "Please enter a task!"

// TaskStore is the subset of tasks.Store the controller drives.
type TaskStore interface {
	Tasks() []tasks.Task
	Counts() (total, completed int)
	Add(ctx context.Context, text string) (tasks.Task, error)
	Toggle(ctx context.Context, id int64) (tasks.Task, bool, error)
	Remove(ctx context.Context, id int64) (bool, error)
	Edit(ctx context.Context, id int64) (string, bool, error)
}

// Outcome tells the view what to change after an action. The list itself is
// always re-rendered from the store.
type Outcome struct {
	Input   *string // new input value; nil keeps the current one
	Warning string  // blocking alert to show
	Err     error   // storage failure to surface
}

// Controller maps user actions to store operations.
type Controller struct {
	store  TaskStore
	logger *slog.Logger
}

// NewController creates a controller over store.
func NewController(store TaskStore, logger *slog.Logger) *Controller {
	if logger == nil {
		logger = slog.Default()
	}
	return &Controller{store: store, logger: logger}
}

// Submit adds text as a new task and clears the input. Blank text keeps the
// input and raises the warning instead.
func (c *Controller) Submit(ctx context.Context, text string) Outcome {
	_, err := c.store.Add(ctx, text)
	if errors.Is(err, tasks.ErrEmptyText) {
		return Outcome{Warning: EmptyTaskWarning}
	}
	cleared := ""
	return Outcome{Input: &cleared, Err: err}
}

// Toggle flips the completion of task id.
func (c *Controller) Toggle(ctx context.Context, id int64) Outcome {
	_, _, err := c.store.Toggle(ctx, id)
	return Outcome{Err: err}
}

// Delete removes task id.
func (c *Controller) Delete(ctx context.Context, id int64) Outcome {
	_, err := c.store.Remove(ctx, id)
	return Outcome{Err: err}
}

// Edit moves the text of task id into the input and deletes the task.
// The task is gone until the user submits the text again.
func (c *Controller) Edit(ctx context.Context, id int64) Outcome {
	text, ok, err := c.store.Edit(ctx, id)
	if !ok {
		return Outcome{Err: err}
	}
	return Outcome{Input: &text, Err: err}
}

// Click dispatches a click on task id according to the target it hit.
func (c *Controller) Click(ctx context.Context, id int64, target components.Target) Outcome {
	c.logger.Debug("item click", "id", id, "target", target.String())
	switch target {
	case components.TargetDelete:
		return c.Delete(ctx, id)
	case components.TargetEdit:
		return c.Edit(ctx, id)
	case components.TargetToggle:
		return c.Toggle(ctx, id)
	default:
		return Outcome{}
	}
}
