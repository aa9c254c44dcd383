// Command migrate applies, rolls back and reports the embedded schema
// migrations.
//
// Usage:
//
//	migrate up|down|status [--dsn postgres://...]
//
// The DSN defaults to $DATABASE_DSN.
package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib" // pgx driver for database/sql
	"github.com/pressly/goose/v3"
	"github.com/spf13/cobra"

	"github.com/Mbaimbai1985/taskmanagement/migrations"
)

const commandTimeout = 2 * time.Minute

var dsnFlag string

var rootCmd = &cobra.Command{
	Use:           "migrate",
	Short:         "Manage the task tracker database schema",
	SilenceUsage:  true,
	SilenceErrors: true,
}

var upCmd = &cobra.Command{
	Use:   "up",
	Short: "Apply all pending migrations",
	RunE:  runUp,
}

var downCmd = &cobra.Command{
	Use:   "down",
	Short: "Roll back the most recent migration",
	RunE:  runDown,
}

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "List migrations and whether they are applied",
	RunE:  runStatus,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&dsnFlag, "dsn", os.Getenv("DATABASE_DSN"), "PostgreSQL connection string")
	rootCmd.AddCommand(upCmd, downCmd, statusCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "migrate:", err)
		os.Exit(1)
	}
}

// withProvider opens the database and hands a goose provider to fn.
func withProvider(cmd *cobra.Command, fn func(ctx context.Context, p *goose.Provider) error) error {
	if dsnFlag == "" {
		return errors.New("no DSN: pass --dsn or set DATABASE_DSN")
	}

	ctx, cancel := context.WithTimeout(cmd.Context(), commandTimeout)
	defer cancel()

	db, err := sql.Open("pgx", dsnFlag)
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}
	defer db.Close()

	provider, err := goose.NewProvider(goose.DialectPostgres, db, migrations.FS)
	if err != nil {
		return fmt.Errorf("goose provider: %w", err)
	}
	return fn(ctx, provider)
}

func runUp(cmd *cobra.Command, _ []string) error {
	return withProvider(cmd, func(ctx context.Context, p *goose.Provider) error {
		results, err := p.Up(ctx)
		for _, r := range results {
			printResult(cmd.OutOrStdout(), r)
		}
		if err != nil {
			return fmt.Errorf("up: %w", err)
		}
		if len(results) == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), "no pending migrations")
		}
		return nil
	})
}

func runDown(cmd *cobra.Command, _ []string) error {
	return withProvider(cmd, func(ctx context.Context, p *goose.Provider) error {
		result, err := p.Down(ctx)
		if result != nil {
			printResult(cmd.OutOrStdout(), result)
		}
		if err != nil {
			return fmt.Errorf("down: %w", err)
		}
		return nil
	})
}

func runStatus(cmd *cobra.Command, _ []string) error {
	return withProvider(cmd, func(ctx context.Context, p *goose.Provider) error {
		statuses, err := p.Status(ctx)
		if err != nil {
			return fmt.Errorf("status: %w", err)
		}
		out := cmd.OutOrStdout()
		for _, s := range statuses {
			applied := "-"
			if !s.AppliedAt.IsZero() {
				applied = s.AppliedAt.Format(time.RFC3339)
			}
			fmt.Fprintf(out, "%-8s %-25s %s\n", s.State, applied, s.Source.Path)
		}
		return nil
	})
}

func printResult(w io.Writer, r *goose.MigrationResult) {
	fmt.Fprintf(w, "%-5s %s (%s)\n", r.Direction, r.Source.Path, r.Duration.Round(time.Millisecond))
}
