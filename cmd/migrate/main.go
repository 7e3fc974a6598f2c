package main

import (
	"flag"
	"fmt"
	"log"

	"github.com/joho/godotenv"
	"github.com/pressly/goose/v3"

	"binstock/config"
	"binstock/internal/pkg/database"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf("⚠️ Warning: .env file not found or failed to read. Loading configs from system environment only: %v", err)
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("goose: invalid config: %v", err)
	}
	if cfg.StoreDriver != config.StoreDriverPostgres {
		log.Fatalf("goose: migrations require STORE_DRIVER=%s (got %s)", config.StoreDriverPostgres, cfg.StoreDriver)
	}

	var migrationsDir string
	flag.StringVar(&migrationsDir, "dir", cfg.MigrationsDir, "directory with migration files")
	flag.Parse()

	db, err := database.NewPostgresDB(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("goose: failed to connect to DB: %v\n", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Fatalf("goose: failed to close DB: %v\n", err)
		}
	}()

	if err := goose.SetDialect("postgres"); err != nil {
		log.Fatalf("goose: %v", err)
	}

	arguments := flag.Args()
	if len(arguments) == 0 {
		arguments = []string{"up"}
	}
	command, args := arguments[0], arguments[1:]

	if err := goose.Run(command, db.DB, migrationsDir, args...); err != nil {
		log.Fatalf("goose %v: %v", command, err)
	}

	fmt.Printf("goose %s success\n", command)
}
