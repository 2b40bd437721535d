package main

import (
	"flag"
	"fmt"
	"os"

	"marketplace/config"
	"marketplace/internal/infra/persistence/postgres"

	"github.com/golang-migrate/migrate/v4"
	"github.com/pkg/errors"
)

// Supported subcommands:
// - up:      Apply all pending migrations
// - down:    Roll back the given number of migrations
// - version: Print the current schema version

func main() {
	upCmd := flag.NewFlagSet("up", flag.ExitOnError)
	upURL := upCmd.String("database-url", "", "PostgreSQL URL (defaults to migration.databaseUrl)")

	downCmd := flag.NewFlagSet("down", flag.ExitOnError)
	downURL := downCmd.String("database-url", "", "PostgreSQL URL (defaults to migration.databaseUrl)")
	downSteps := downCmd.Int("steps", 1, "Number of migrations to roll back")

	versionCmd := flag.NewFlagSet("version", flag.ExitOnError)
	versionURL := versionCmd.String("database-url", "", "PostgreSQL URL (defaults to migration.databaseUrl)")

	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	var err error
	switch os.Args[1] {
	case "up":
		_ = upCmd.Parse(os.Args[2:])
		err = runUp(*upURL)
	case "down":
		_ = downCmd.Parse(os.Args[2:])
		err = runDown(*downURL, *downSteps)
	case "version":
		_ = versionCmd.Parse(os.Args[2:])
		err = runVersion(*versionURL)
	default:
		printUsage()
		os.Exit(1)
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println("Usage: migrate <command> [options]")
	fmt.Println()
	fmt.Println("Commands:")
	fmt.Println("  up       Apply all pending migrations")
	fmt.Println("  down     Roll back migrations (-steps, default 1)")
	fmt.Println("  version  Print the current schema version")
	fmt.Println()
	fmt.Println("Every command accepts -database-url; without it migration.databaseUrl from config.yaml is used.")
}

// resolveURL prefers the flag and falls back to the service configuration.
func resolveURL(flagURL string) (string, error) {
	if flagURL != "" {
		return flagURL, nil
	}

	cfg, err := config.New()
	if err != nil {
		return "", errors.Wrap(err, "failed to load config")
	}
	if cfg.Migration == nil || cfg.Migration.DatabaseURL == "" {
		return "", errors.New("migration.databaseUrl is not configured")
	}

	return cfg.Migration.DatabaseURL, nil
}

func runUp(flagURL string) error {
	databaseURL, err := resolveURL(flagURL)
	if err != nil {
		return err
	}

	version, err := postgres.RunMigrations(databaseURL)
	if err != nil {
		return err
	}
	fmt.Printf("Schema is at version %d\n", version)

	return nil
}

func runDown(flagURL string, steps int) error {
	if steps <= 0 {
		return errors.Errorf("steps must be positive, got %d", steps)
	}

	databaseURL, err := resolveURL(flagURL)
	if err != nil {
		return err
	}

	m, err := postgres.NewMigrator(databaseURL)
	if err != nil {
		return err
	}
	defer m.Close()

	if err := m.Steps(-steps); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return errors.Wrap(err, "failed to roll back migrations")
	}
	fmt.Printf("Rolled back %d migration(s)\n", steps)

	return nil
}

func runVersion(flagURL string) error {
	databaseURL, err := resolveURL(flagURL)
	if err != nil {
		return err
	}

	m, err := postgres.NewMigrator(databaseURL)
	if err != nil {
		return err
	}
	defer m.Close()

	version, dirty, err := m.Version()
	if errors.Is(err, migrate.ErrNilVersion) {
		fmt.Println("No migrations applied")

		return nil
	}
	if err != nil {
		return errors.Wrap(err, "failed to read schema version")
	}
	fmt.Printf("Schema is at version %d (dirty: %t)\n", version, dirty)

	return nil
}
