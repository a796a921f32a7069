package main

import (
	"flag"
	"log"

	"quizdeck/internal/config"
	"quizdeck/internal/database"
	"quizdeck/internal/logger"

	"go.uber.org/zap"
)

func main() {
	migrationsDir := flag.String("dir", "database/migrations", "directory containing migration files")
	flag.Parse()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if err := logger.Initialize(cfg.Logger); err != nil {
		panic(err)
	}
	appLogger := logger.Get()
	defer logger.Sync()

	db, err := database.NewMigrateOracleDB(cfg.GetMigrateDSN())
	if err != nil {
		appLogger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	appLogger.Info("Running migrations", zap.String("dir", *migrationsDir))
	if err := database.RunMigrations(db, *migrationsDir); err != nil {
		appLogger.Fatal("Migration failed", zap.Error(err))
	}
	appLogger.Info("Migrations applied successfully")
}
