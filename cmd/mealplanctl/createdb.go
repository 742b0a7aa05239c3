package main

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/osse101/MealPlanner_Go/internal/config"
)

// CreateDBCommand creates the configured database on the server if it is missing
type CreateDBCommand struct {
	cfg *config.Config
}

func (c *CreateDBCommand) Name() string {
	return "createdb"
}

func (c *CreateDBCommand) Description() string {
	return "Create the configured database if it does not exist"
}

func (c *CreateDBCommand) Run(ctx context.Context, args []string) error {
	PrintHeader("Create Database")

	// Connect to the maintenance database to manage other databases
	serverConnString := fmt.Sprintf("postgres://%s:%s@%s:%s/postgres?sslmode=disable",
		c.cfg.DBUser, c.cfg.DBPassword, c.cfg.DBHost, c.cfg.DBPort)

	conn, err := pgx.Connect(ctx, serverConnString)
	if err != nil {
		return fmt.Errorf("unable to connect to postgres server: %w", err)
	}
	defer conn.Close(ctx)

	var exists bool
	err = conn.QueryRow(ctx, "SELECT EXISTS(SELECT 1 FROM pg_database WHERE datname = $1)", c.cfg.DBName).Scan(&exists)
	if err != nil {
		return fmt.Errorf("failed to check if database exists: %w", err)
	}

	if exists {
		PrintInfo("Database %s already exists", c.cfg.DBName)
		return nil
	}

	if _, err := conn.Exec(ctx, "CREATE DATABASE "+pgx.Identifier{c.cfg.DBName}.Sanitize()); err != nil {
		return fmt.Errorf("failed to create database: %w", err)
	}
	PrintSuccess("Database %s created", c.cfg.DBName)
	return nil
}
