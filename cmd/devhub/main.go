package main

import (
	"log"
	"os"

	"github.com/devhub/devhub/migrate"
	"github.com/devhub/devhub/seed"
	"github.com/devhub/devhub/server"
	"github.com/devhub/devhub/store"
)

func main() {
	cfg := server.GetConfig()

	dsn := cfg.DatabaseDSN()
	driver := cfg.Database.Driver
	if driver == "" {
		driver = "postgres"
	}

	if cfg.Migrate.OnStart && dsn != "" {
		logger := log.New(os.Stdout, "[migrate] ", log.LstdFlags)
		if err := migrate.Run(migrate.Options{Driver: driver, DSN: dsn, Logger: logger}); err != nil {
			log.Fatalf("migrations failed: %v", err)
		}
	}
	if cfg.Migrate.Seed && dsn != "" {
		logger := log.New(os.Stdout, "[seed] ", log.LstdFlags)
		if err := seed.Run(seed.Options{Driver: driver, DSN: dsn, Logger: logger}); err != nil {
			log.Fatalf("seed failed: %v", err)
		}
	}

	var (
		st  *store.Stores
		err error
	)
	if dsn == "" {
		log.Println("no database DSN configured, using in-memory store")
		st, err = store.NewMemoryStore()
	} else {
		st, err = store.OpenPostgres(dsn)
	}
	if err != nil {
		log.Fatalf("store init failed: %v", err)
	}

	s := server.NewServer(cfg, st)
	r := server.NewGinEngine(s)

	log.Printf("devhub listening on %s (env %s)", cfg.Addr(), cfg.Env)
	if err := r.Run(cfg.Addr()); err != nil {
		log.Fatalf("server exited: %v", err)
	}
}
