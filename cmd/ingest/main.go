package main

import (
	"context"
	"os"
	"time"

	"flights-service/internal/infrastructure/config"
	"flights-service/internal/infrastructure/persistence"
	"flights-service/internal/interface/repository"
	"flights-service/internal/usecase"
	"flights-service/pkg/logger"
)

// The loader replaces the whole flights table from a CSV snapshot. It
// sleeps briefly before connecting so the database container is up
// when both start together.
func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		panic(err)
	}

	log := logger.NewLogger(cfg.LogLevel)
	log.Info("Starting ingestion", "csv", cfg.CSVPath, "delay", cfg.IngestDelay)

	time.Sleep(cfg.IngestDelay)

	db, err := persistence.NewPostgresDB(cfg.PostgresDSN)
	if err != nil {
		log.Fatal("Failed to connect to PostgreSQL", "error", err)
	}
	if err := persistence.Migrate(db); err != nil {
		log.Fatal("Failed to migrate schema", "error", err)
	}

	file, err := os.Open(cfg.CSVPath)
	if err != nil {
		log.Fatal("Failed to open snapshot", "error", err)
	}
	defer file.Close()

	flightRepo := repository.NewGormFlightRepository(db)
	ingestor := usecase.NewIngestor(flightRepo, log)

	rows, err := ingestor.LoadCSV(context.Background(), file)
	if err != nil {
		log.Fatal("Ingestion failed", "error", err)
	}
	log.Info("Ingestion finished", "rows", rows)
}
