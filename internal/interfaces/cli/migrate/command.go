package migrate

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"fixwise/internal/infrastructure/config"
	"fixwise/internal/infrastructure/database"
	"fixwise/internal/infrastructure/migration"
	"fixwise/internal/shared/constants"
	"fixwise/internal/shared/logger"
)

var (
	env   string
	name  string
	steps int
)

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Database migration tools",
		Long:  `Manage database migrations including running migrations, checking status, and creating new migration files.`,
	}

	cmd.PersistentFlags().StringVarP(&env, "env", "e", "development", "Environment (development, test, production)")

	cmd.AddCommand(
		newUpCommand(),
		newDownCommand(),
		newStatusCommand(),
		newCreateCommand(),
	)

	return cmd
}

func newUpCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "up",
		Short: "Run all pending migrations",
		RunE:  runUp,
	}
}

func newDownCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "down",
		Short: "Rollback migrations",
		RunE:  runDown,
	}

	cmd.Flags().IntVarP(&steps, "steps", "n", 1, "Number of migrations to rollback")

	return cmd
}

func newStatusCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show migration status",
		RunE:  runStatus,
	}
}

func newCreateCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a new migration",
		RunE:  runCreate,
	}

	cmd.Flags().StringVarP(&name, "name", "n", "", "Name of the migration (required)")
	cmd.MarkFlagRequired("name")

	return cmd
}

func setup() error {
	cfg, err := config.Load(env)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if err := logger.Init(&cfg.Logger, env == constants.EnvDevelopment); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	if err := database.Init(&cfg.Database); err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}

	return nil
}

func scriptsPath() (string, error) {
	return filepath.Abs("./internal/infrastructure/migration/scripts")
}

func runUp(cmd *cobra.Command, args []string) error {
	if err := setup(); err != nil {
		return err
	}
	defer database.Close()

	path, err := scriptsPath()
	if err != nil {
		return err
	}

	strategy := migration.NewGolangMigrateStrategy(path)
	if err := strategy.Migrate(database.Get()); err != nil {
		return fmt.Errorf("migration failed: %w", err)
	}

	logger.Info("migrations applied successfully")
	return nil
}

func runDown(cmd *cobra.Command, args []string) error {
	if err := setup(); err != nil {
		return err
	}
	defer database.Close()

	path, err := scriptsPath()
	if err != nil {
		return err
	}

	strategy, ok := migration.NewGolangMigrateStrategy(path).(*migration.GolangMigrateStrategy)
	if !ok {
		return fmt.Errorf("rollback is not supported by this strategy")
	}
	if err := strategy.MigrateDown(database.Get(), steps); err != nil {
		return fmt.Errorf("rollback failed: %w", err)
	}

	logger.Info("migrations rolled back", "steps", steps)
	return nil
}

func runStatus(cmd *cobra.Command, args []string) error {
	if err := setup(); err != nil {
		return err
	}
	defer database.Close()

	path, err := scriptsPath()
	if err != nil {
		return err
	}

	strategy, ok := migration.NewGooseStrategy(path).(*migration.GooseStrategy)
	if !ok {
		return fmt.Errorf("status is not supported by this strategy")
	}
	return strategy.Status(database.Get())
}

func runCreate(cmd *cobra.Command, args []string) error {
	path, err := scriptsPath()
	if err != nil {
		return err
	}

	strategy, ok := migration.NewGooseStrategy(path).(*migration.GooseStrategy)
	if !ok {
		return fmt.Errorf("create is not supported by this strategy")
	}
	if err := strategy.Create(name); err != nil {
		return fmt.Errorf("failed to create migration: %w", err)
	}

	fmt.Printf("created migration %q\n", name)
	return nil
}
