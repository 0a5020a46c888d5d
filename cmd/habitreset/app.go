package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/garrettladley/habitreset/internal/config"
	"github.com/garrettladley/habitreset/internal/daily"
	"github.com/garrettladley/habitreset/internal/paths"
	"github.com/garrettladley/habitreset/internal/session"
	"github.com/garrettladley/habitreset/internal/storage"
	"github.com/garrettladley/habitreset/internal/xslog"
)

// app is everything one invocation needs, built once and threaded through.
type app struct {
	cfg     config.Config
	ctx     context.Context
	logger  *slog.Logger
	backend storage.Backend
	store   *daily.Store

	closers []io.Closer
}

func readConfig(cmd *cobra.Command) (config.Config, error) {
	cfg, err := config.Read()
	if err != nil {
		return config.Config{}, fmt.Errorf("failed to read config: %w", err)
	}

	if kind, _ := cmd.Flags().GetString(storageFlag); kind != "" {
		cfg, err = cfg.WithStorage(kind)
		if err != nil {
			return config.Config{}, fmt.Errorf("invalid --%s: %w", storageFlag, err)
		}
	}
	return cfg, nil
}

// openApp reads config, sets up logging, opens the backend and loads today's
// snapshot.
func openApp(cmd *cobra.Command) (*app, error) {
	cfg, err := readConfig(cmd)
	if err != nil {
		return nil, err
	}

	a := &app{cfg: cfg}

	logger, err := a.initLogger()
	if err != nil {
		return nil, err
	}

	id := session.NewID()
	a.logger = logger.With(
		xslog.SessionID(id),
		xslog.Version(),
		xslog.Backend(cfg.Storage.String()),
	)
	a.ctx = xslog.WithLogger(session.WithID(cmd.Context(), id), a.logger)

	backend, err := openBackend(a.ctx, cfg)
	if err != nil {
		a.logger.ErrorContext(a.ctx, "failed to open storage", xslog.Error(err))
		_ = a.Close()
		return nil, err
	}
	a.backend = backend
	a.closers = append(a.closers, backend)

	a.store = daily.New(backend,
		daily.WithLogger(a.logger),
		daily.WithStrict(cfg.Env.IsDevelopment()),
	)
	a.store.Load(a.ctx)

	return a, nil
}

func (a *app) initLogger() (*slog.Logger, error) {
	level := a.cfg.Log.Level
	if a.cfg.Log.Stderr {
		return xslog.NewLogger(os.Stderr, level), nil
	}

	if _, err := paths.EnsureDir(a.cfg.DataDir); err != nil {
		return nil, err
	}
	logPath, err := paths.Log(a.cfg.DataDir)
	if err != nil {
		return nil, err
	}

	logger, f, err := xslog.NewFileLogger(logPath, level)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}
	a.closers = append(a.closers, f)
	return logger, nil
}

// Close releases resources in reverse order of acquisition.
func (a *app) Close() error {
	var errs []error
	for i := len(a.closers) - 1; i >= 0; i-- {
		if err := a.closers[i].Close(); err != nil {
			errs = append(errs, err)
		}
	}
	a.closers = nil
	return errors.Join(errs...)
}
