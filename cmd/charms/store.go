package main

import (
	"context"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/KirkDiggler/charm-tracker/internal/config"
	"github.com/KirkDiggler/charm-tracker/internal/errors"
	"github.com/KirkDiggler/charm-tracker/internal/orchestrators/charm"
	"github.com/KirkDiggler/charm-tracker/internal/pkg/clock"
	"github.com/KirkDiggler/charm-tracker/internal/pkg/idgen"
	"github.com/KirkDiggler/charm-tracker/internal/redis"
	charmsnapshot "github.com/KirkDiggler/charm-tracker/internal/repositories/charm_snapshot"
)

// openRepository builds the snapshot repository for the configured backend.
// The returned closers release backend connections.
func openRepository(ctx context.Context, cfg *config.Config) (charmsnapshot.Repository, []func() error, error) {
	switch cfg.Backend {
	case config.BackendMemory:
		return charmsnapshot.NewInMemory(), nil, nil

	case config.BackendSQLite:
		if dir := filepath.Dir(cfg.DBPath); dir != "." {
			if err := os.MkdirAll(dir, 0o750); err != nil {
				return nil, nil, errors.WrapWithCode(err, errors.CodeUnavailable, "failed to create database directory")
			}
		}
		repo, err := charmsnapshot.NewSQLite(ctx, &charmsnapshot.SQLiteConfig{
			Path:  cfg.DBPath,
			Clock: clock.New(),
		})
		if err != nil {
			return nil, nil, err
		}
		return repo, []func() error{repo.Close}, nil

	case config.BackendRedis:
		client, err := redis.NewClient(cfg.RedisAddr, &redis.Options{MaxRetries: 1})
		if err != nil {
			return nil, nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "failed to create redis client")
		}
		repo, err := charmsnapshot.NewRedis(&charmsnapshot.RedisConfig{Client: client})
		if err != nil {
			_ = client.Close()
			return nil, nil, err
		}
		return repo, []func() error{client.Close}, nil

	default:
		return nil, nil, errors.InvalidArgumentf("unknown backend %q", cfg.Backend)
	}
}

// openStore wires the repository into a charm store and loads the snapshot
func openStore(ctx context.Context, cfg *config.Config, logger *zap.Logger) (charm.Service, []func() error, error) {
	repo, closers, err := openRepository(ctx, cfg)
	if err != nil {
		return nil, nil, err
	}

	store, err := charm.NewOrchestrator(ctx, &charm.Config{
		Repository:  repo,
		IDGenerator: idgen.NewTimestamp(clock.New()),
		Key:         cfg.SnapshotKeyOrDefault(),
		Logger:      logger.Named("store"),
	})
	if err != nil {
		for _, closeFn := range closers {
			_ = closeFn()
		}
		return nil, nil, err
	}

	return store, closers, nil
}
