package main

import (
	"database/sql"
	"os"

	_ "github.com/lib/pq"
	"github.com/rs/zerolog/log"

	"factcheck/internal/config"
	"factcheck/internal/infra"
)

// migrate applies the table and row-level-security DDL to POSTGRES_URL.
func main() {
	// Only POSTGRES_URL matters here, so driver validation errors are not fatal.
	cfg, loadErr := config.Load()
	infra.InitLogger(cfg.App.Name+"-migrate", cfg.App.Env, cfg.App.LogLevel)
	if loadErr != nil {
		log.Warn().Err(loadErr).Msg("Config incomplete for serving")
	}

	dsn := cfg.Store.DSN
	if dsn == "" {
		log.Error().Msg("POSTGRES_URL must be set")
		os.Exit(1)
	}

	db, err := sql.Open("postgres", dsn)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to open database")
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to database")
	}

	if err := infra.CreateSchema(db); err != nil {
		log.Fatal().Err(err).Msg("Failed to apply schema")
	}
	log.Info().Msg("Schema applied")
}
