package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/osse101/MealPlanner_Go/internal/bootstrap"
	"github.com/osse101/MealPlanner_Go/internal/config"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	cfg, err := config.Load()
	if err != nil {
		PrintError("Failed to load configuration: %v", err)
		return 1
	}

	// Logs go to stderr so command output on stdout stays machine readable
	bootstrap.SetupLogger(cfg, os.Stderr)

	warnings, err := config.ValidateEnvWithWarnings()
	if err != nil {
		PrintError("Invalid environment: %v", err)
		return 1
	}
	for _, warning := range warnings {
		PrintWarning("%s", warning)
	}

	registry := newRegistry(cfg)

	if len(args) < 1 {
		registry.PrintHelp(os.Stdout)
		return 1
	}

	cmd, ok := registry.Get(args[0])
	if !ok {
		PrintError("Unknown command: %s", args[0])
		registry.PrintHelp(os.Stdout)
		return 1
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := cmd.Run(ctx, args[1:]); err != nil {
		PrintError("%s failed: %v", cmd.Name(), err)
		return 1
	}
	return 0
}

func newRegistry(cfg *config.Config) *Registry {
	r := NewRegistry()
	r.Register(&CreateDBCommand{cfg: cfg})
	r.Register(&InitCommand{cfg: cfg})
	r.Register(&MigrateCommand{cfg: cfg})
	r.Register(&HealthCommand{cfg: cfg})
	r.Register(&ResetCommand{cfg: cfg})
	r.Register(&SeedCommand{cfg: cfg})
	r.Register(&StatsCommand{cfg: cfg, out: os.Stdout})
	r.Register(&ServeCommand{cfg: cfg})
	return r
}

// usageError reports a malformed invocation of a command
func usageError(cmd Command, usage string) error {
	return fmt.Errorf("usage: %s %s %s", appName, cmd.Name(), usage)
}
