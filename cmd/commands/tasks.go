package commands

import (
	"context"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/urfave/cli/v3"

	"github.com/dohr-michael/todo/internal/export"
)

// NewAddCommand returns the add subcommand.
func NewAddCommand() *cli.Command {
	return &cli.Command{
		Name:      "add",
		Usage:     "Add a task",
		ArgsUsage: "<text...>",
		Action:    runAdd,
	}
}

// NewListCommand returns the list subcommand.
func NewListCommand() *cli.Command {
	return &cli.Command{
		Name:    "list",
		Aliases: []string{"ls"},
		Usage:   "List all tasks",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "json",
				Usage: "Print the stored JSON array",
			},
			&cli.BoolFlag{
				Name:  "pretty",
				Usage: "Render the list as styled Markdown",
			},
		},
		Action: runList,
	}
}

// NewToggleCommand returns the toggle subcommand.
func NewToggleCommand() *cli.Command {
	return &cli.Command{
		Name:      "toggle",
		Usage:     "Flip a task between open and done",
		ArgsUsage: "<task_id>",
		Action:    runToggle,
	}
}

// NewRemoveCommand returns the rm subcommand.
func NewRemoveCommand() *cli.Command {
	return &cli.Command{
		Name:      "rm",
		Usage:     "Delete a task",
		ArgsUsage: "<task_id>",
		Action:    runRemove,
	}
}

// NewEditCommand returns the edit subcommand.
func NewEditCommand() *cli.Command {
	return &cli.Command{
		Name:      "edit",
		Usage:     "Print a task's text and delete the task",
		ArgsUsage: "<task_id>",
		Action:    runEdit,
	}
}

func runAdd(ctx context.Context, cmd *cli.Command) error {
	sess, err := openSession(ctx, cmd, false)
	if err != nil {
		return err
	}
	defer sess.Close()

	task, err := sess.store.Add(ctx, strings.Join(cmd.Args().Slice(), " "))
	if err != nil {
		return err
	}
	fmt.Fprintf(stdout(cmd), "added %d\n", task.ID)
	return nil
}

func runList(ctx context.Context, cmd *cli.Command) error {
	sess, err := openSession(ctx, cmd, false)
	if err != nil {
		return err
	}
	defer sess.Close()

	list := sess.store.Tasks()
	out := stdout(cmd)

	if cmd.Bool("json") {
		return export.Write(out, export.FormatJSON, sess.cfg.UI.Title, list)
	}
	if cmd.Bool("pretty") {
		style := ""
		if !isTerminal(out) {
			style = "notty"
		}
		rendered, err := export.RenderTerminal(sess.cfg.UI.Title, list, terminalWidth(out), style)
		if err != nil {
			return err
		}
		_, err = io.WriteString(out, rendered)
		return err
	}

	if len(list) == 0 {
		fmt.Fprintln(out, "No tasks.")
		return nil
	}

	w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tDONE\tTEXT")
	for _, t := range list {
		done := "[ ]"
		if t.Completed {
			done = "[x]"
		}
		fmt.Fprintf(w, "%d\t%s\t%s\n", t.ID, done, t.Text)
	}
	return w.Flush()
}

func runToggle(ctx context.Context, cmd *cli.Command) error {
	id, err := parseTaskID(cmd)
	if err != nil {
		return err
	}
	sess, err := openSession(ctx, cmd, false)
	if err != nil {
		return err
	}
	defer sess.Close()

	task, ok, err := sess.store.Toggle(ctx, id)
	if err != nil {
		return err
	}
	if !ok {
		fmt.Fprintln(stdout(cmd), "nothing changed")
		return nil
	}
	state := "open"
	if task.Completed {
		state = "done"
	}
	fmt.Fprintf(stdout(cmd), "%d is now %s\n", task.ID, state)
	return nil
}

func runRemove(ctx context.Context, cmd *cli.Command) error {
	id, err := parseTaskID(cmd)
	if err != nil {
		return err
	}
	sess, err := openSession(ctx, cmd, false)
	if err != nil {
		return err
	}
	defer sess.Close()

	ok, err := sess.store.Remove(ctx, id)
	if err != nil {
		return err
	}
	if !ok {
		fmt.Fprintln(stdout(cmd), "nothing changed")
		return nil
	}
	fmt.Fprintf(stdout(cmd), "removed %d\n", id)
	return nil
}

func runEdit(ctx context.Context, cmd *cli.Command) error {
	id, err := parseTaskID(cmd)
	if err != nil {
		return err
	}
	sess, err := openSession(ctx, cmd, false)
	if err != nil {
		return err
	}
	defer sess.Close()

	text, ok, err := sess.store.Edit(ctx, id)
	if err != nil {
		return err
	}
	if !ok {
		// stdout carries only task text so it can be piped back into add.
		fmt.Fprintln(stderr(cmd), "nothing changed")
		return nil
	}
	fmt.Fprintln(stdout(cmd), text)
	return nil
}
