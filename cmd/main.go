package main

import (
	"Yoriview-Backend/cmd/config"
	migration "Yoriview-Backend/cmd/database/migrate"
	"Yoriview-Backend/cmd/database/seed"
	"Yoriview-Backend/internal/utils"
	"errors"
	"fmt"
	"os"

	"github.com/gofiber/fiber/v2/log"
	"github.com/spf13/cobra"
	"gorm.io/gorm"
)

var rootCmd = &cobra.Command{
	Use:   "yoriview",
	Short: "Yoriview restaurant review backend",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		utils.LoadConfig()
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return serve()
	},
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API",
	RunE: func(cmd *cobra.Command, args []string) error {
		return serve()
	},
}

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create or update the database schema",
	RunE: func(cmd *cobra.Command, args []string) error {
		db, err := config.ConnectDB()
		if err != nil {
			return err
		}
		return migration.Migrate(db)
	},
}

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Insert locations and review styles",
	RunE: func(cmd *cobra.Command, args []string) error {
		db, err := config.ConnectDB()
		if err != nil {
			return err
		}
		return seed.Seed(db)
	},
}

func serve() error {
	if utils.GetConfig("JWT_SECRET") == "" {
		return errors.New("JWT_SECRET must be set")
	}

	db, err := config.ConnectDB()
	if err != nil {
		return err
	}
	defer closeDB(db)

	app, err := config.NewApp(db)
	if err != nil {
		return err
	}

	port := utils.GetConfig("APP_PORT")
	log.Infof("Yoriview backend listening on :%s", port)
	return app.Listen(":" + port)
}

func closeDB(db *gorm.DB) {
	sqlDB, err := db.DB()
	if err != nil {
		return
	}
	if err := sqlDB.Close(); err != nil {
		log.Warnf("failed to close database: %v", err)
	}
}

func main() {
	rootCmd.AddCommand(serveCmd, migrateCmd, seedCmd)
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
