package bootstrap

import (
	"context"
	"errors"
	"log/slog"

	"github.com/osse101/MealPlanner_Go/internal/database"
	"github.com/osse101/MealPlanner_Go/internal/server"
)

// ShutdownComponents holds all components that need graceful shutdown.
// Either field may be nil.
type ShutdownComponents struct {
	Server *server.Server
	Store  *database.Store
}

// GracefulShutdown stops the ops server first so no probe touches a closing
// store, then releases the store. Every step runs even when an earlier one
// fails; the errors are joined.
func GracefulShutdown(ctx context.Context, components ShutdownComponents) error {
	var errs []error

	if components.Server != nil {
		slog.Info(LogMsgShuttingDownServer)
		if err := components.Server.Stop(ctx); err != nil {
			slog.Error(LogMsgServerForcedShutdown, "error", err)
			errs = append(errs, err)
		}
	}

	if components.Store != nil {
		slog.Info(LogMsgClosingStore)
		if err := components.Store.Close(ctx); err != nil {
			slog.Error(LogMsgStoreCloseFailed, "error", err)
			errs = append(errs, err)
		}
	}

	slog.Info(LogMsgServerStopped)
	return errors.Join(errs...)
}
