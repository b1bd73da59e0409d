package main

import (
	"context"
	"fmt"
	"os"

	"checkout_hub/internal/config"
	"checkout_hub/internal/infrastructure/database"
	"checkout_hub/pkg/logger"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

// Applies the embedded goose migrations for the postgres store driver.
func main() {
	_ = godotenv.Load()

	rootCmd := &cobra.Command{
		Use:           "migrate",
		Short:         "Manage the checkout Postgres schema",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(gooseCmd("up", "Apply all pending migrations", cobra.NoArgs))
	rootCmd.AddCommand(gooseCmd("up-to", "Apply migrations up to a version", cobra.ExactArgs(1)))
	rootCmd.AddCommand(gooseCmd("down", "Roll back the latest migration", cobra.NoArgs))
	rootCmd.AddCommand(gooseCmd("down-to", "Roll back to a version", cobra.ExactArgs(1)))
	rootCmd.AddCommand(gooseCmd("redo", "Re-run the latest migration", cobra.NoArgs))
	rootCmd.AddCommand(gooseCmd("reset", "Roll back every migration", cobra.NoArgs))
	rootCmd.AddCommand(gooseCmd("status", "Print migration status", cobra.NoArgs))
	rootCmd.AddCommand(gooseCmd("version", "Print the current schema version", cobra.NoArgs))

	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func gooseCmd(command, short string, args cobra.PositionalArgs) *cobra.Command {
	return &cobra.Command{
		Use:   command,
		Short: short,
		Args:  args,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGoose(cmd.Context(), command, args...)
		},
	}
}

func runGoose(ctx context.Context, command string, args ...string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	logg := logger.New(logger.Options{
		ServiceName: "migrate",
		Level:       logger.ParseLevel(cfg.App.LogLevel),
		Format:      cfg.App.LogFormat,
		WarnStack:   cfg.App.LogWarnStack,
	})
	ctx = logg.WithFields(ctx, map[string]any{
		"env": cfg.App.Env,
		"cmd": command,
	})

	if cfg.Store.Driver != config.StoreDriverPostgres {
		return fmt.Errorf("migrations only apply to the postgres store driver (got %q)", cfg.Store.Driver)
	}

	db, err := database.ConnectPostgres(ctx, cfg.Postgres, logg)
	if err != nil {
		logg.Error(ctx, "resource not working: database", err)
		return err
	}
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("getting sql db handle: %w", err)
	}
	defer sqlDB.Close()

	logg.Info(ctx, "migrate ready")
	return database.Migrate(ctx, sqlDB, command, args...)
}
