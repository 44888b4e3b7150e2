package main

import (
	"flag"
	"os"

	"github.com/joho/godotenv"
	"github.com/pressly/goose/v3"
	zlog "github.com/rs/zerolog/log"

	"github.com/openhire/jobboard-service/internal/config"
	"github.com/openhire/jobboard-service/internal/logger"
)

func main() {
	_ = godotenv.Load()

	logger.Init()

	cfg, err := config.Load()
	if err != nil {
		zlog.Fatal().Err(err).Msg("config load failed")
	}

	var migrationsDir string
	flag.StringVar(&migrationsDir, "dir", "./migrations", "directory with migration files")
	flag.Parse()

	db, err := config.NewDB(cfg.DBAddr, cfg.DBDebug)
	if err != nil {
		zlog.Fatal().Err(err).Msg("db connect failed")
	}
	defer func() { _ = db.Close() }()

	goose.SetLogger(goose.NopLogger())

	arguments := flag.Args()
	if len(arguments) == 0 {
		arguments = []string{"up"}
	}

	command := arguments[0]
	var args []string
	if len(arguments) > 1 {
		args = arguments[1:]
	}

	if err := goose.Run(command, db, migrationsDir, args...); err != nil {
		zlog.Fatal().Err(err).Str("command", command).Msg("migration failed")
	}

	zlog.Info().Str("command", command).Msg("migration complete")
	os.Exit(0)
}
