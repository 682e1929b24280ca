package migrate

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mif-gmao/gmao/internal/infrastructure/migration"
	"github.com/mif-gmao/gmao/internal/interfaces/cli/bootstrap"
)

var steps int

func NewCommand(opts *bootstrap.Options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Database migration tools",
		Long:  `Apply, roll back and inspect the embedded goose migrations.`,
	}

	cmd.AddCommand(
		newUpCommand(opts),
		newDownCommand(opts),
		newStatusCommand(opts),
	)

	return cmd
}

func newUpCommand(opts *bootstrap.Options) *cobra.Command {
	return &cobra.Command{
		Use:   "up",
		Short: "Run all pending migrations",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withStrategy(opts, func(rt *bootstrap.Runtime, s *migration.GooseStrategy) error {
				rt.Log.Infow("running up migrations", "driver", rt.Config.Database.Driver)
				if err := s.Migrate(rt.DB); err != nil {
					return fmt.Errorf("migration failed: %w", err)
				}
				rt.Log.Infow("migrations completed successfully")
				return nil
			})
		},
	}
}

func newDownCommand(opts *bootstrap.Options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "down",
		Short: "Rollback migrations",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withStrategy(opts, func(rt *bootstrap.Runtime, s *migration.GooseStrategy) error {
				rt.Log.Infow("rolling back migrations", "steps", steps)
				if err := s.MigrateDown(rt.DB, steps); err != nil {
					return fmt.Errorf("rollback failed: %w", err)
				}
				return nil
			})
		},
	}

	cmd.Flags().IntVarP(&steps, "steps", "n", 1, "Number of migrations to rollback")

	return cmd
}

func newStatusCommand(opts *bootstrap.Options) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show migration status",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withStrategy(opts, func(rt *bootstrap.Runtime, s *migration.GooseStrategy) error {
				version, err := s.GetVersion(rt.DB)
				if err != nil {
					return fmt.Errorf("failed to read version: %w", err)
				}
				rt.Log.Infow("current migration version", "version", version)
				return s.Status(rt.DB)
			})
		},
	}
}

func withStrategy(opts *bootstrap.Options, fn func(*bootstrap.Runtime, *migration.GooseStrategy) error) error {
	rt, err := bootstrap.Init(opts)
	if err != nil {
		return err
	}
	defer rt.Close()

	return fn(rt, migration.NewGooseStrategy(rt.Config.Database.Driver, rt.Log))
}
