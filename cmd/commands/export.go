package commands

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/dohr-michael/todo/internal/export"
)

// NewExportCommand returns the export subcommand.
func NewExportCommand() *cli.Command {
	return &cli.Command{
		Name:  "export",
		Usage: "Render the task list as " + strings.Join(export.Formats, ", "),
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "format",
				Aliases: []string{"f"},
				Usage:   "Output format (" + strings.Join(export.Formats, "|") + ")",
				Value:   export.FormatMarkdown,
			},
			&cli.StringFlag{
				Name:    "output",
				Aliases: []string{"o"},
				Usage:   "Write to file instead of stdout",
			},
		},
		Action: runExport,
	}
}

func runExport(ctx context.Context, cmd *cli.Command) error {
	sess, err := openSession(ctx, cmd, false)
	if err != nil {
		return err
	}
	defer sess.Close()

	list := sess.store.Tasks()
	format := cmd.String("format")

	path := cmd.String("output")
	if path == "" {
		return export.Write(stdout(cmd), format, sess.cfg.UI.Title, list)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create export file: %w", err)
	}
	if err := export.Write(f, format, sess.cfg.UI.Title, list); err != nil {
		f.Close()
		os.Remove(path)
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close export file: %w", err)
	}
	sess.logger.Info("exported tasks", "format", format, "path", path, "count", len(list))
	return nil
}
