package main

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/motmot/nexlink/backend/internal/config"
	"github.com/motmot/nexlink/backend/internal/logger"
	"github.com/motmot/nexlink/backend/internal/persistence"
	"github.com/motmot/nexlink/backend/internal/seed"
	"github.com/motmot/nexlink/backend/internal/store"
	"go.uber.org/zap"
)

func main() {
	_ = godotenv.Load()

	cfg := config.Load()

	if err := logger.Initialize(cfg.LogLevel, cfg.LogFile); err != nil {
		os.Exit(1)
	}
	defer logger.Close()
	log := logger.Log

	log.Info("Seeding development data", zap.String("db", cfg.DatabasePath))

	slot, err := persistence.NewSQLiteSlot(cfg.DatabasePath)
	if err != nil {
		log.Fatal("Failed to open snapshot slot", zap.Error(err))
	}

	st, err := store.New(slot, log)
	if err != nil {
		log.Fatal("Failed to initialize store", zap.Error(err))
	}

	if err := seed.NewSeeder(st, log).SeedDev(); err != nil {
		log.Fatal("Seeding failed", zap.Error(err))
	}
}
