// Package kv provides the key-value store used for shop settings and client preferences.
package kv

import (
	"context"
	"log/slog"
	"time"

	"brewmenu/config"
	"brewmenu/internal/domain/lifecycle"
	"brewmenu/internal/domain/repository"
	"brewmenu/internal/errors"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

// Params defines the dependencies for the key-value store.
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// New returns a Redis backed store when Redis is enabled and an in-memory store otherwise.
func New(params Params) repository.KeyValueStore {
	cfg := params.Config.Redis
	if cfg == nil || !cfg.Enabled {
		params.Logger.Info("key-value store: in-memory")

		return NewMemoryStore()
	}

	client := redis.NewClient(&redis.Options{
		Addr:         cfg.Addr,
		Password:     cfg.Password,
		DB:           cfg.DB,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
	})

	params.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			if err := client.Ping(ctx).Err(); err != nil {
				return errors.Wrapf(err, "failed to connect to Redis at %s", cfg.Addr)
			}
			params.Logger.Info("key-value store: redis",
				slog.String("addr", cfg.Addr),
				slog.String("prefix", cfg.KeyPrefix),
			)

			return nil
		},
		OnStop: func(_ context.Context) error {
			return client.Close()
		},
	})

	return NewRedisStore(client, cfg.KeyPrefix)
}
