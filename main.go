package main

import (
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/hueguess/go-server/internal/httpserver"
	"github.com/hueguess/go-server/internal/puzzle"
	"github.com/hueguess/go-server/internal/state"
	"os"
)

func main() {
	_ = godotenv.Load()
	if lvl, err := zerolog.ParseLevel(getEnv("LOG_LEVEL", "info")); err == nil {
		zerolog.SetGlobalLevel(lvl)
	}

	puzzles, err := puzzle.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load puzzle catalog")
	}
	source, err := puzzle.NewCatalog(puzzles, getEnv("DAILY_SALT", "local_dev_salt"))
	if err != nil {
		log.Fatal().Err(err).Msg("invalid puzzle catalog")
	}

	db, err := state.OpenDB(getEnv("DB_PATH", "./data/hueguess.db"))
	if err != nil {
		log.Fatal().Err(err).Msg("failed to open database")
	}
	defer func() { _ = db.Close() }()

	srv := httpserver.New(state.NewSQLiteKV(db), source)
	port := getEnv("PORT", "5175")
	log.Info().Str("port", port).Int("puzzles", len(puzzles)).Msg("starting hueguess go-server")
	if err := srv.Start(":" + port); err != nil {
		log.Fatal().Err(err).Msg("server exited")
	}
}

func getEnv(k, def string) string {
	if v := os.Getenv(k); v != "" { return v }
	return def
}
