package commands

import (
	"context"
	"errors"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/dohr-michael/todo/clients/tui"
)

// NewTUICommand returns the tui subcommand.
func NewTUICommand() *cli.Command {
	return &cli.Command{
		Name:   "tui",
		Usage:  "Launch the interactive TUI",
		Action: runTUI,
	}
}

func runTUI(ctx context.Context, cmd *cli.Command) error {
	if !isTerminal(os.Stdin) || !isTerminal(stdout(cmd)) {
		return errors.New("the interactive UI needs a terminal; use `todo list` or `todo add` instead")
	}

	sess, err := openSession(ctx, cmd, true)
	if err != nil {
		return err
	}
	defer sess.Close()

	driver := sess.cfg.Storage.Driver
	if sess.cfg.Storage.Encrypt {
		driver += "+age"
	}

	return tui.Run(ctx, sess.store, tui.Options{
		Title:       sess.cfg.UI.Title,
		Placeholder: sess.cfg.UI.Placeholder,
		Driver:      driver,
		Mouse:       sess.cfg.UI.MouseEnabled(),
		Logger:      sess.logger,
	})
}
