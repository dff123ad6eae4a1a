package users

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"

	"conecta/internal/infra/dbx"

	"github.com/jackc/pgx/v5"
)

type Store interface {
	EnsureSchema(ctx context.Context) error
	Create(ctx context.Context, user *User) error
	GetByEmail(ctx context.Context, email string) (*User, error)
}

const schema = `
CREATE TABLE IF NOT EXISTS usuarios (
    id        SERIAL PRIMARY KEY,
    nome      VARCHAR(255) NOT NULL,
    email     VARCHAR(255) UNIQUE NOT NULL,
    senha     VARCHAR(255) NOT NULL,
    criado_em TIMESTAMP WITH TIME ZONE DEFAULT CURRENT_TIMESTAMP
)`

type Repository struct {
	db    dbx.Querier
	ready atomic.Bool
}

func NewRepository(db dbx.Querier) *Repository {
	return &Repository{db: db}
}

// EnsureSchema creates the users table on first use. The DDL is idempotent;
// once it succeeds the repository skips it for the rest of the process.
func (r *Repository) EnsureSchema(ctx context.Context) error {
	if r.ready.Load() {
		return nil
	}

	ctx, cancel := context.WithTimeout(ctx, QueryTimeoutDuration)
	defer cancel()

	if _, err := r.db.Exec(ctx, schema); err != nil {
		return fmt.Errorf("create usuarios table: %w", err)
	}
	r.ready.Store(true)
	return nil
}

func (r *Repository) Create(ctx context.Context, user *User) error {
	if err := r.EnsureSchema(ctx); err != nil {
		return err
	}

	query := `
	  INSERT INTO usuarios (nome, email, senha) VALUES ($1, $2, $3) RETURNING id, criado_em
	`

	ctx, cancel := context.WithTimeout(ctx, QueryTimeoutDuration)
	defer cancel()

	err := r.db.QueryRow(
		ctx, query, user.Name, user.Email, string(user.Password.Hash()),
	).Scan(&user.ID, &user.CreatedAt)
	if err != nil {
		if dbx.IsUniqueViolation(err) {
			return ErrDuplicateEmail
		}
		return err
	}
	return nil
}

// GetByEmail matches the email exactly. A users table that was never created
// is reported as ErrNotFound.
func (r *Repository) GetByEmail(ctx context.Context, email string) (*User, error) {
	query := `SELECT id, nome, email, senha, criado_em FROM usuarios WHERE email = $1`

	ctx, cancel := context.WithTimeout(ctx, QueryTimeoutDuration)
	defer cancel()

	var (
		user User
		hash string
	)
	err := r.db.QueryRow(ctx, query, email).Scan(&user.ID, &user.Name, &user.Email, &hash, &user.CreatedAt)
	if err != nil {
		switch {
		case errors.Is(err, pgx.ErrNoRows), dbx.IsUndefinedTable(err):
			return nil, ErrNotFound
		default:
			return nil, err
		}
	}

	user.Password.SetHash([]byte(hash))
	return &user, nil
}
