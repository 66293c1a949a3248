package main

import (
	"github.com/joho/godotenv"

	"finance-ledger-go/internal/config"
	"finance-ledger-go/internal/database"
	httpserver "finance-ledger-go/internal/http"
	"finance-ledger-go/internal/localstore"
	"finance-ledger-go/internal/logger"
	"finance-ledger-go/internal/models"
)

func main() {
	_ = godotenv.Load(".env")
	log := logger.New()

	if err := database.Connect(log); err != nil {
		log.Fatal().Err(err).Msg("database connection failed")
	}
	err := database.DB.AutoMigrate(
		&models.User{},
		&models.Profile{},
		&models.Account{},
		&models.Transaction{},
		&models.SalaryEntry{},
		&models.Invoice{},
		&models.InvoiceItem{},
	)
	if err != nil {
		log.Fatal().Err(err).Msg("migration failed")
	}

	cfg := config.Load()
	store, err := localstore.New(cfg.DataDir, log)
	if err != nil {
		log.Fatal().Err(err).Msg("localstore init failed")
	}

	r := httpserver.NewServer(cfg, log, store)
	log.Info().Str("port", cfg.Port).Msg("listening")
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}
