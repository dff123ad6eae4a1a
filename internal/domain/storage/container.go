package storage

import (
	"context"
	"fmt"

	"conecta/internal/domain/reviews"
	"conecta/internal/domain/users"

	"github.com/jackc/pgx/v5/pgxpool"
)

type Container struct {
	pool    *pgxpool.Pool
	Users   users.Store
	Reviews reviews.Store
}

func NewContainer(db *pgxpool.Pool) *Container {
	return &Container{
		pool:    db,
		Users:   users.NewRepository(db),
		Reviews: reviews.NewRepository(db),
	}
}

// Ping reports whether the backing pool is reachable. Containers built from
// fakes in tests have no pool and always report healthy.
func (c *Container) Ping(ctx context.Context) error {
	if c.pool == nil {
		return nil
	}
	if err := c.pool.Ping(ctx); err != nil {
		return fmt.Errorf("database ping: %w", err)
	}
	return nil
}
