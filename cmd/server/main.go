package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"flights-service/internal/infrastructure/config"
	"flights-service/internal/infrastructure/persistence"
	"flights-service/internal/interface/repository"
	"flights-service/internal/interface/rest"
	"flights-service/internal/usecase"
	"flights-service/pkg/logger"
	"flights-service/pkg/metrics"
)

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		panic(err)
	}

	// Create logger
	log := logger.NewLogger(cfg.LogLevel)
	log.Info("Starting Flights Service", "version", cfg.AppVersion)

	// Set up PostgreSQL connection
	log.Info("Connecting to PostgreSQL")
	db, err := persistence.NewPostgresDB(cfg.PostgresDSN)
	if err != nil {
		log.Fatal("Failed to connect to PostgreSQL", "error", err)
	}
	if err := persistence.Migrate(db); err != nil {
		log.Fatal("Failed to migrate schema", "error", err)
	}

	// Set up repositories
	flightRepo := repository.NewGormFlightRepository(db)
	userRepo := repository.NewGormUserRepository(db)

	// Set up services
	m := metrics.NewMetrics("flights")
	authService := usecase.NewAuthService(userRepo, cfg.JWTSecret, cfg.TokenLifetime, cfg.EmailDomain, cfg.OTPIssuer, log)
	flightService := usecase.NewFlightService(flightRepo, log)

	// Set up HTTP layer
	authHandler := rest.NewAuthHandler(authService, m)
	flightHandler := rest.NewFlightHandler(flightService)
	router := rest.NewRouter(authHandler, flightHandler, cfg.JWTSecret, log, m)

	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	// Start HTTP server in a goroutine
	go func() {
		log.Info("Starting HTTP server", "port", cfg.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("HTTP server error", "error", err)
		}
	}()

	// Wait for interrupt signal
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	sig := <-sigChan
	log.Info("Received signal", "signal", sig)

	// Graceful shutdown
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error("HTTP server shutdown error", "error", err)
	}

	log.Info("Flights Service stopped")
}
