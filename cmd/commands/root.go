package commands

import (
	"github.com/urfave/cli/v3"

	"github.com/dohr-michael/todo/internal/config"
)

// NewRootCommand returns the top-level CLI command.
func NewRootCommand() *cli.Command {
	return &cli.Command{
		Name:  "todo",
		Usage: "A minimal terminal to-do list",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "Path to config file",
				Value:   config.ConfigPath(),
			},
			&cli.StringFlag{
				Name:    "path",
				Aliases: []string{"p"},
				Usage:   "Storage location (directory for file, database for sqlite)",
			},
			&cli.BoolFlag{
				Name:  "debug",
				Usage: "Enable debug logging",
			},
		},
		DefaultCommand: "tui",
		Commands: []*cli.Command{
			NewTUICommand(),
			NewAddCommand(),
			NewListCommand(),
			NewToggleCommand(),
			NewRemoveCommand(),
			NewEditCommand(),
			NewExportCommand(),
			NewKeyCommand(),
		},
	}
}
