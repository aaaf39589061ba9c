package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jakechorley/staff-rota/cmd/cli/commands"
	"github.com/jakechorley/staff-rota/internal/config"
	"github.com/jakechorley/staff-rota/pkg/db"
	"github.com/jakechorley/staff-rota/pkg/postgres"
	"github.com/jakechorley/staff-rota/pkg/utils/logging"
)

var (
	env      string
	app      = &commands.AppContext{}
	pgDB     *postgres.DB
	noDBCmds = map[string]bool{"help": true, "completion": true}
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "rota",
		Short: "Staff Rota CLI - Build weekly shift rotas",
		Long:  `A CLI tool for managing a staff roster, generating weekly shift rotas and projecting monthly hours.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if noDBCmds[cmd.Name()] {
				return nil
			}
			return initApp()
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if pgDB != nil {
				pgDB.Close()
			}
			if app.Logger != nil {
				app.Logger.Sync()
			}
		},
		SilenceUsage: true,
	}

	// Add persistent environment flag
	rootCmd.PersistentFlags().StringVarP(&env, "env", "e", "", "Environment (selects rota_config.<env>.yaml)")

	// Add all commands
	rootCmd.AddCommand(commands.ScheduleCmd(app))
	rootCmd.AddCommand(commands.ProjectHoursCmd(app))
	rootCmd.AddCommand(commands.ListStaffCmd(app))
	rootCmd.AddCommand(commands.AddStaffCmd(app))
	rootCmd.AddCommand(commands.RemoveStaffCmd(app))

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// initApp loads config, then sets up the logger and the roster store
func initApp() error {
	var err error
	app.Ctx = context.Background()

	app.Cfg, err = config.LoadWithEnv(env)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	app.Logger, err = logging.InitLogger(env, app.Cfg.LogDir)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	app.Logger.Info("Starting application", zap.String("environment", env))

	if app.Cfg.DatabaseURL == "" {
		app.Logger.Debug("Using roster file", zap.String("path", app.Cfg.RosterFile))
		app.Database = db.NewDB(app.Cfg.RosterFile)
		return nil
	}

	app.Logger.Info("Connecting to database")
	pgDB, err = postgres.NewDB(app.Ctx, app.Cfg.DatabaseURL)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}

	app.Logger.Debug("Running migrations")
	if err := pgDB.RunMigrations(app.Ctx); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	app.Database = pgDB
	app.Logger.Info("Database initialized successfully")

	return nil
}
