package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"gorm.io/gorm"

	"github.com/beesaferoot/blog-api/internal/config"
	"github.com/beesaferoot/blog-api/internal/db"
	"github.com/beesaferoot/blog-api/internal/migration"
	"github.com/beesaferoot/blog-api/internal/models"
)

func openDB() (*gorm.DB, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	return db.Connect(cfg.Database)
}

// MigrateCmd groups the schema migration subcommands.
func MigrateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Manage the database schema",
	}
	cmd.AddCommand(upCmd(), statusCmd())
	return cmd
}

func upCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "up",
		Short: "Apply all pending migrations",
		RunE: func(cmd *cobra.Command, args []string) error {
			gdb, err := openDB()
			if err != nil {
				return err
			}
			if err := migration.RunAll(gdb); err != nil {
				return err
			}
			fmt.Println("Migrations applied")
			return nil
		},
	}
}

func statusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show status of all migrations and model tables",
		RunE: func(cmd *cobra.Command, args []string) error {
			gdb, err := openDB()
			if err != nil {
				return err
			}

			migrator := migration.NewMigrator(gdb)
			applied, err := migrator.GetAppliedVersions()
			if err != nil {
				return fmt.Errorf("failed to get applied migrations: %v", err)
			}

			fmt.Printf("%-16s  %-30s  %-8s\n", "Version", "Name", "Status")
			for _, m := range migration.All() {
				status := "Pending"
				if applied[m.Version] {
					status = "Applied"
				}
				fmt.Printf("%-16s  %-30s  %-8s\n", m.Version, m.Name, status)
			}

			fmt.Printf("\n%-16s  %-8s\n", "Model", "Table")
			for name, model := range models.ModelTypeRegistry {
				present := "Missing"
				if gdb.Migrator().HasTable(model) {
					present = "Present"
				}
				fmt.Printf("%-16s  %-8s\n", name, present)
			}
			return nil
		},
	}
}
