// cmd/orgfeedctl/main.go
package main

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/openorg/orgfeed/internal/auth"
	"github.com/openorg/orgfeed/internal/migrate"
	"github.com/openorg/orgfeed/internal/model"
	"github.com/openorg/orgfeed/internal/repository"
)

var (
	dbConnString string
	verbose      bool
)

func init() {
	rootCmd.PersistentFlags().StringVarP(&dbConnString, "db", "d", "", "Database connection string")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")

	rootCmd.AddCommand(migrateCmd)
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(sweepCmd)
	rootCmd.AddCommand(bootstrapCmd)

	bootstrapCmd.Flags().StringVar(&bootstrapEmail, "email", "", "Administrator email")
	bootstrapCmd.Flags().StringVar(&bootstrapPassword, "password", "", "Administrator password")
	bootstrapCmd.Flags().StringVar(&bootstrapName, "name", "Administrator", "Administrator full name")
	bootstrapCmd.Flags().StringVar(&bootstrapSubunit, "subunit", "Head Office", "Initial subunit name")
}

var rootCmd = &cobra.Command{
	Use:   "orgfeedctl",
	Short: "orgfeedctl manages the organization news feed backend",
	Long:  `orgfeedctl applies database migrations, runs archival sweeps, and bootstraps the first administrator account.`,
}

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply pending database migrations",
	Run: func(cmd *cobra.Command, args []string) {
		db := openSQL()
		defer db.Close()

		migrator := migrate.NewMigrator(db)
		applied, err := migrator.ApplyAll()
		if err != nil {
			log.Fatalf("Failed to apply migrations: %v", err)
		}

		if applied == 0 {
			fmt.Println("Schema already up to date")
			return
		}
		fmt.Printf("Applied %d migration(s)\n", applied)
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show the current schema version",
	Run: func(cmd *cobra.Command, args []string) {
		db := openSQL()
		defer db.Close()

		migrator := migrate.NewMigrator(db)
		if err := migrator.InitializeSchema(); err != nil {
			log.Fatalf("Failed to read schema version: %v", err)
		}
		version, err := migrator.GetCurrentVersion()
		if err != nil {
			log.Fatalf("Failed to read schema version: %v", err)
		}

		fmt.Printf("Schema version: %d\n", version)
	},
}

var sweepCmd = &cobra.Command{
	Use:   "sweep",
	Short: "Archive posts whose archival deadline has passed",
	Run: func(cmd *cobra.Command, args []string) {
		db := openGorm()

		posts := repository.NewPostRepository(db)
		ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
		defer cancel()

		archived, err := posts.ArchiveExpired(ctx)
		if err != nil {
			log.Fatalf("Sweep failed: %v", err)
		}

		fmt.Printf("Archived %d post(s)\n", archived)
	},
}

var (
	bootstrapEmail    string
	bootstrapPassword string
	bootstrapName     string
	bootstrapSubunit  string
)

var bootstrapCmd = &cobra.Command{
	Use:   "bootstrap",
	Short: "Create the initial subunit and administrator account",
	Run: func(cmd *cobra.Command, args []string) {
		if bootstrapEmail == "" || bootstrapPassword == "" {
			log.Fatal("Both --email and --password are required")
		}

		db := openGorm()
		employees := repository.NewEmployeeRepository(db)
		subunits := repository.NewSubunitRepository(db)

		ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
		defer cancel()

		hash, err := auth.NewPasswordHasher().Hash(bootstrapPassword)
		if err != nil {
			log.Fatalf("Failed to hash password: %v", err)
		}

		adminID := uuid.New()
		subunit := &model.Subunit{
			ID:       uuid.New(),
			Name:     bootstrapSubunit,
			LeaderID: adminID,
			Email:    bootstrapEmail,
		}
		if err := subunits.Create(ctx, subunit); err != nil {
			log.Fatalf("Failed to create subunit: %v", err)
		}

		admin := &model.Employee{
			ID:           adminID,
			Email:        bootstrapEmail,
			PasswordHash: hash,
			FullName:     bootstrapName,
			Role:         model.RoleAdmin,
			SubunitID:    subunit.ID,
		}
		if err := employees.Create(ctx, admin); err != nil {
			log.Fatalf("Failed to create administrator: %v", err)
		}

		fmt.Printf("Created subunit %q and administrator %s\n", subunit.Name, admin.Email)
	},
}

func openSQL() *sql.DB {
	if dbConnString == "" {
		log.Fatal("Database connection string is required")
	}
	db, err := migrate.Open(dbConnString)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	return db
}

func openGorm() *gorm.DB {
	if dbConnString == "" {
		log.Fatal("Database connection string is required")
	}

	logLevel := logger.Silent
	if verbose {
		logLevel = logger.Info
	}
	db, err := gorm.Open(postgres.Open(dbConnString), &gorm.Config{
		Logger: logger.Default.LogMode(logLevel),
	})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	return db
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
