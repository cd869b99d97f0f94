package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/centavo/centavo/identityd"
)

func main() {
	log := slog.New(slog.NewTextHandler(os.Stderr, nil))

	cfg, err := identityd.ConfigFromEnv()
	if err != nil {
		log.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	var storage identityd.UserStorage
	if cfg.DatabaseURL != "" {
		pool, err := pgxpool.New(context.Background(), cfg.DatabaseURL)
		if err != nil {
			log.Error("could not connect to database", "error", err)
			os.Exit(1)
		}
		defer pool.Close()
		storage = identityd.NewPostgresStorage(pool)
		log.Info("using postgres storage")
	} else {
		storage = identityd.NewMemoryStorage()
		log.Info("using in-memory storage")
	}

	srv := identityd.NewServer(storage, log)

	log.Info("identityd listening", "addr", cfg.Addr)
	if err := srv.Listen(cfg.Addr); err != nil {
		log.Error("server stopped", "error", err)
		os.Exit(1)
	}
}
