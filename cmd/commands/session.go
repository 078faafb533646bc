package commands

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"

	"github.com/urfave/cli/v3"
	"golang.org/x/term"

	"github.com/dohr-michael/todo/internal/config"
	"github.com/dohr-michael/todo/internal/storage"
	"github.com/dohr-michael/todo/internal/tasks"
)

// session bundles what every command needs: config, an open store and logging.
type session struct {
	cfg      *config.Config
	kv       storage.KV
	store    *tasks.Store
	logger   *slog.Logger
	closeLog func() error
}

// openSession loads the config, sets up logging and loads the task list.
// logToFile sends logs to the configured log file instead of stderr.
func openSession(ctx context.Context, cmd *cli.Command, logToFile bool) (*session, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, err
	}

	logger, closeLog, err := setupLogging(cfg.Log, cmd.Bool("debug"), logToFile, stderr(cmd))
	if err != nil {
		return nil, err
	}

	kv, err := storage.Open(ctx, cfg.Storage)
	if err != nil {
		closeLog()
		return nil, fmt.Errorf("open storage: %w", err)
	}

	store := tasks.NewStore(kv, tasks.WithKey(cfg.Storage.Key), tasks.WithLogger(logger))
	if err := store.Load(ctx); err != nil {
		kv.Close()
		closeLog()
		return nil, err
	}
	logger.Debug("store loaded", "driver", cfg.Storage.Driver, "path", cfg.Storage.Path, "tasks", store.Len())

	return &session{cfg: cfg, kv: kv, store: store, logger: logger, closeLog: closeLog}, nil
}

// Close releases the storage backend and the log file.
func (s *session) Close() error {
	err := s.kv.Close()
	if cerr := s.closeLog(); err == nil {
		err = cerr
	}
	return err
}

// loadConfig reads --config and applies the --path override.
func loadConfig(cmd *cli.Command) (*config.Config, error) {
	cfg, err := config.Load(cmd.String("config"))
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	if p := cmd.String("path"); p != "" {
		cfg.Storage.Path = p
	}
	return cfg, nil
}

// setupLogging installs the default slog logger and returns it with a closer.
func setupLogging(cfg config.LogConfig, debug, toFile bool, fallback io.Writer) (*slog.Logger, func() error, error) {
	level := slog.LevelInfo
	if cfg.Level != "" {
		if err := level.UnmarshalText([]byte(cfg.Level)); err != nil {
			return nil, nil, fmt.Errorf("log level: %w", err)
		}
	}
	if debug {
		level = slog.LevelDebug
	}

	w := fallback
	closer := func() error { return nil }
	if toFile && cfg.File != "" {
		if err := os.MkdirAll(filepath.Dir(cfg.File), 0o700); err != nil {
			return nil, nil, fmt.Errorf("create log dir: %w", err)
		}
		f, err := os.OpenFile(cfg.File, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
		if err != nil {
			return nil, nil, fmt.Errorf("open log file: %w", err)
		}
		w = f
		closer = f.Close
	}

	logger := slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)
	return logger, closer, nil
}

// parseTaskID reads the task id from the first positional argument.
func parseTaskID(cmd *cli.Command) (int64, error) {
	arg := cmd.Args().First()
	if arg == "" {
		return 0, errors.New("missing task id")
	}
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid task id %q", arg)
	}
	return id, nil
}

func stdout(cmd *cli.Command) io.Writer {
	if w := cmd.Root().Writer; w != nil {
		return w
	}
	return os.Stdout
}

func stderr(cmd *cli.Command) io.Writer {
	if w := cmd.Root().ErrWriter; w != nil {
		return w
	}
	return os.Stderr
}

type fileDescriptor interface {
	Fd() uintptr
}

// isTerminal reports whether v is an interactive terminal.
func isTerminal(v any) bool {
	f, ok := v.(fileDescriptor)
	return ok && term.IsTerminal(int(f.Fd()))
}

// terminalWidth returns the width of v, or 80 when it is not a terminal.
func terminalWidth(v any) int {
	if f, ok := v.(fileDescriptor); ok {
		if width, _, err := term.GetSize(int(f.Fd())); err == nil && width > 0 {
			return width
		}
	}
	return 80
}
