package main

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/MealPlanner_Go/internal/config"
)

func testConfig() *config.Config {
	return &config.Config{DBName: "mealplanner", OpsPort: 8081, DBMaxConns: 1, CacheSize: 8}
}

func TestRegistry(t *testing.T) {
	r := newRegistry(testConfig())

	names := make([]string, 0)
	for _, cmd := range r.List() {
		names = append(names, cmd.Name())
	}
	assert.Equal(t, []string{"createdb", "health", "init", "migrate", "reset", "seed", "serve", "stats"}, names)

	cmd, ok := r.Get("migrate")
	require.True(t, ok)
	assert.Equal(t, "migrate", cmd.Name())

	_, ok = r.Get("nope")
	assert.False(t, ok)
}

func TestRegistry_PrintHelp(t *testing.T) {
	var buf bytes.Buffer
	newRegistry(testConfig()).PrintHelp(&buf)

	out := buf.String()
	assert.True(t, strings.HasPrefix(out, "Usage: mealplanctl <command>"))
	for _, cmd := range newRegistry(testConfig()).List() {
		assert.Contains(t, out, cmd.Description())
	}
}

func TestCommands_RejectBadArguments(t *testing.T) {
	cfg := testConfig()
	ctx := context.Background()

	tests := []struct {
		name string
		cmd  Command
		args []string
	}{
		{"migrate without subcommand", &MigrateCommand{cfg: cfg}, nil},
		{"migrate unknown subcommand", &MigrateCommand{cfg: cfg}, []string{"sideways"}},
		{"migrate extra args", &MigrateCommand{cfg: cfg}, []string{"up", "5"}},
		{"reset without confirmation", &ResetCommand{cfg: cfg}, nil},
		{"reset with wrong flag", &ResetCommand{cfg: cfg}, []string{"--yes"}},
		{"seed with two files", &SeedCommand{cfg: cfg}, []string{"a.json", "b.json"}},
		{"stats with args", &StatsCommand{cfg: cfg}, []string{"x"}},
		{"serve with args", &ServeCommand{cfg: cfg}, []string{"x"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cmd.Run(ctx, tt.args)
			require.Error(t, err)
			assert.Contains(t, err.Error(), "usage: mealplanctl "+tt.cmd.Name())
		})
	}
}
