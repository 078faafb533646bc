package commands

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/dohr-michael/todo/internal/config"
	"github.com/dohr-michael/todo/internal/secrets"
)

// NewKeyCommand returns the key subcommand.
func NewKeyCommand() *cli.Command {
	return &cli.Command{
		Name:  "key",
		Usage: "Manage the age identity used to encrypt stored tasks",
		Commands: []*cli.Command{
			{
				Name:   "init",
				Usage:  "Generate the identity if it does not exist",
				Action: runKeyInit,
			},
			{
				Name:   "show",
				Usage:  "Print the public recipient of the identity",
				Action: runKeyShow,
			},
		},
		DefaultCommand: "show",
	}
}

func identityPath(cmd *cli.Command) (string, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return "", err
	}
	if cfg.Storage.IdentityFile != "" {
		return cfg.Storage.IdentityFile, nil
	}
	return config.IdentityPath(), nil
}

func runKeyInit(_ context.Context, cmd *cli.Command) error {
	path, err := identityPath(cmd)
	if err != nil {
		return err
	}

	created, err := secrets.GenerateIdentity(path)
	if err != nil {
		return fmt.Errorf("generate identity: %w", err)
	}
	if !created {
		fmt.Fprintf(stdout(cmd), "identity already exists at %s\n", path)
		return nil
	}
	fmt.Fprintf(stdout(cmd), "created identity at %s\n", path)
	fmt.Fprintln(stdout(cmd), `set "storage": {"encrypt": true} in the config to seal stored tasks`)
	return nil
}

func runKeyShow(_ context.Context, cmd *cli.Command) error {
	path, err := identityPath(cmd)
	if err != nil {
		return err
	}

	identity, err := secrets.LoadIdentity(path)
	if err != nil {
		return fmt.Errorf("load identity: %w (run `todo key init`)", err)
	}
	fmt.Fprintln(stdout(cmd), identity.Recipient().String())
	return nil
}
