package main

import (
	"flag"
	"log"

	"go.uber.org/zap"

	"straightsix/internal/config"
	"straightsix/internal/record"
	"straightsix/internal/server"
)

func main() {
	port := flag.Int("port", 0, "server port (overrides PORT)")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config error: %v", err)
	}
	if *port != 0 {
		cfg.Port = *port
	}

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("logger error: %v", err)
	}
	defer logger.Sync()
	sugar := logger.Sugar()

	var store record.Store
	if cfg.Database != "" {
		db, err := record.Open(cfg.Database)
		if err != nil {
			sugar.Fatalw("database error", "err", err)
		}
		defer db.Close()
		store = db
		sugar.Infow("recording enabled", "database", cfg.Database)
	}

	srv := server.New(cfg.Port, cfg.Rules, store, sugar)
	if err := srv.Start(); err != nil {
		sugar.Fatalw("server error", "err", err)
	}
}
