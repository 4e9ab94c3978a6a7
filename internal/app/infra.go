package app

import (
	"context"
	"database/sql"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"blog/internal/config"
	"blog/internal/db"
)

type infra struct {
	db    *sql.DB
	redis *redis.Client
}

func setupInfra(ctx context.Context, cfg *config.Config) (*infra, error) {
	database, err := db.Open(ctx, cfg.Database.Driver, cfg.Database.DSN)
	if err != nil {
		return nil, err
	}
	slog.Info("database ready", "driver", cfg.Database.Driver)

	in := &infra{db: database}

	if cfg.Session.Backend == "redis" {
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
		})
		pingCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
		defer cancel()
		if err := client.Ping(pingCtx).Err(); err != nil {
			database.Close()
			return nil, err
		}
		in.redis = client
		slog.Info("redis ready", "addr", cfg.Redis.Addr)
	}

	return in, nil
}

func (in *infra) close() error {
	if in.redis != nil {
		in.redis.Close()
	}
	return in.db.Close()
}
