package main

import (
	"context"
	"errors"
	"net/http"

	"github.com/osse101/MealPlanner_Go/internal/bootstrap"
	"github.com/osse101/MealPlanner_Go/internal/config"
	"github.com/osse101/MealPlanner_Go/internal/server"
)

// ServeCommand runs the ops HTTP server until interrupted
type ServeCommand struct {
	cfg *config.Config
}

func (c *ServeCommand) Name() string {
	return "serve"
}

func (c *ServeCommand) Description() string {
	return "Run the ops server (/healthz, /readyz, /metrics) until interrupted"
}

func (c *ServeCommand) Run(ctx context.Context, args []string) error {
	if len(args) != 0 {
		return usageError(c, "")
	}

	store, err := bootstrap.OpenStore(ctx, c.cfg)
	if err != nil {
		return err
	}

	svc := bootstrap.NewPlanner(c.cfg, store)
	srv := server.NewServer(server.Options{
		Port:           c.cfg.OpsPort,
		APIKey:         c.cfg.OpsAPIKey,
		TrustedProxies: c.cfg.TrustedProxies,
		Version:        c.cfg.Version,
	}, store, svc)

	errCh := make(chan error, 1)
	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	PrintInfo("Ops server listening on %s", srv.Addr())

	var serveErr error
	select {
	case <-ctx.Done():
	case serveErr = <-errCh:
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), bootstrap.DefaultShutdownTimeout)
	defer cancel()

	err = bootstrap.GracefulShutdown(shutdownCtx, bootstrap.ShutdownComponents{
		Server: srv,
		Store:  store,
	})
	return errors.Join(serveErr, err)
}
