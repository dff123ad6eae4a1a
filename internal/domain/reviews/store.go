package reviews

import (
	"context"
	"fmt"
	"sync/atomic"

	"conecta/internal/infra/dbx"
)

type Store interface {
	EnsureSchema(ctx context.Context) error
	CreateReview(ctx context.Context, review *Review) error
	GetReviews(ctx context.Context, placeID string) ([]Listing, error)
	GetReviewStats(ctx context.Context, placeID string) (Stats, error)
}

const schema = `
CREATE TABLE IF NOT EXISTS avaliacoes (
    id         SERIAL PRIMARY KEY,
    poi_id     VARCHAR(255) NOT NULL,
    poi_name   VARCHAR(255),
    user_email VARCHAR(255) NOT NULL,
    rating     INT NOT NULL,
    review     TEXT,
    criado_em  TIMESTAMP WITH TIME ZONE DEFAULT CURRENT_TIMESTAMP
);
CREATE INDEX IF NOT EXISTS idx_avaliacoes_poi_id ON avaliacoes (poi_id, criado_em DESC)`

type Repository struct {
	db    dbx.Querier
	ready atomic.Bool
}

func NewRepository(db dbx.Querier) *Repository {
	return &Repository{db: db}
}

// EnsureSchema creates the reviews table the first time a review is written.
func (r *Repository) EnsureSchema(ctx context.Context) error {
	if r.ready.Load() {
		return nil
	}

	ctx, cancel := context.WithTimeout(ctx, QueryTimeoutDuration)
	defer cancel()

	if _, err := r.db.Exec(ctx, schema); err != nil {
		return fmt.Errorf("create avaliacoes table: %w", err)
	}
	r.ready.Store(true)
	return nil
}

func (r *Repository) CreateReview(ctx context.Context, review *Review) error {
	if review.PlaceID == "" {
		return errEmptyPlace
	}
	if err := r.EnsureSchema(ctx); err != nil {
		return err
	}

	query := `
        INSERT INTO avaliacoes (poi_id, poi_name, user_email, rating, review)
        VALUES ($1, $2, $3, $4, $5)
        RETURNING id, criado_em
    `

	ctx, cancel := context.WithTimeout(ctx, QueryTimeoutDuration)
	defer cancel()

	return r.db.QueryRow(ctx, query,
		review.PlaceID,
		review.PlaceName,
		review.UserEmail,
		review.Rating,
		review.Comment,
	).Scan(&review.ID, &review.CreatedAt)
}

// GetReviews lists the reviews of a place, newest first. Callers decide how
// to treat dbx.IsUndefinedTable errors.
func (r *Repository) GetReviews(ctx context.Context, placeID string) ([]Listing, error) {
	query := `
        SELECT rating, review, user_email, criado_em
        FROM avaliacoes
        WHERE poi_id = $1
        ORDER BY criado_em DESC, id DESC
    `

	ctx, cancel := context.WithTimeout(ctx, QueryTimeoutDuration)
	defer cancel()

	rows, err := r.db.Query(ctx, query, placeID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	reviews := []Listing{}
	for rows.Next() {
		var l Listing
		if err := rows.Scan(&l.Rating, &l.Review, &l.UserEmail, &l.CriadoEm); err != nil {
			return nil, err
		}
		reviews = append(reviews, l)
	}
	return reviews, rows.Err()
}

func (r *Repository) GetReviewStats(ctx context.Context, placeID string) (Stats, error) {
	query := `
        SELECT
            COUNT(id) AS total_reviews,
            COALESCE(AVG(rating), 0)::float8 AS average_rating
        FROM avaliacoes
        WHERE poi_id = $1
    `

	ctx, cancel := context.WithTimeout(ctx, QueryTimeoutDuration)
	defer cancel()

	stats := Stats{PlaceID: placeID}
	err := r.db.QueryRow(ctx, query, placeID).Scan(&stats.Total, &stats.Average)
	if err != nil {
		if dbx.IsUndefinedTable(err) {
			return stats, nil
		}
		return stats, err
	}
	stats.Average = RoundAverage(stats.Average)
	return stats, nil
}
