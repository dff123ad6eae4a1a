package db

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Config holds the pool settings read from the environment.
type Config struct {
	Addr        string
	MaxConns    int32
	MinConns    int32
	MaxIdleTime string
	ConnTimeout time.Duration
	AppName     string
}

// New sets up a new pgx connection pool and pings it.
func New(cfg Config) (*pgxpool.Pool, error) {
	config, err := pgxpool.ParseConfig(cfg.Addr)
	if err != nil {
		return nil, fmt.Errorf("parse db addr: %w", err)
	}

	if cfg.MaxConns > 0 {
		config.MaxConns = cfg.MaxConns
	}
	if cfg.MinConns > 0 {
		config.MinConns = cfg.MinConns
	}

	if cfg.MaxIdleTime != "" {
		duration, err := time.ParseDuration(cfg.MaxIdleTime)
		if err != nil {
			return nil, fmt.Errorf("parse DB_MAX_IDLE_TIME: %w", err)
		}
		config.MaxConnIdleTime = duration
	}

	if cfg.AppName != "" {
		config.ConnConfig.RuntimeParams["application_name"] = cfg.AppName
	}

	timeout := cfg.ConnTimeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}

	// Applies to pool creation and the initial ping.
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	dbpool, err := pgxpool.NewWithConfig(ctx, config)
	if err != nil {
		return nil, err
	}

	if err := dbpool.Ping(ctx); err != nil {
		dbpool.Close()
		return nil, err
	}

	return dbpool, nil
}
