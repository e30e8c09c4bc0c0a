package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"moviereviews/internal/model"
)

type reviewRepository struct {
	db *sqlx.DB
}

func NewReviewRepository(db *sqlx.DB) ReviewRepository {
	return &reviewRepository{db: db}
}

func (r *reviewRepository) ListAll(ctx context.Context) ([]model.Review, error) {
	query := `
		SELECT id, movie_id, username, review, rating, created_at
		FROM reviews
		ORDER BY id
	`

	var reviews []model.Review
	err := r.db.SelectContext(ctx, &reviews, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list reviews: %w", err)
	}

	return reviews, nil
}

func (r *reviewRepository) ListByMovieID(ctx context.Context, movieID int64) ([]model.Review, error) {
	query := `
		SELECT id, movie_id, username, review, rating, created_at
		FROM reviews
		WHERE movie_id = $1
		ORDER BY id
	`

	var reviews []model.Review
	err := r.db.SelectContext(ctx, &reviews, query, movieID)
	if err != nil {
		return nil, fmt.Errorf("failed to list reviews for movie: %w", err)
	}

	return reviews, nil
}

func (r *reviewRepository) Create(ctx context.Context, review *model.Review) error {
	query := `
		INSERT INTO reviews (movie_id, username, review, rating, created_at)
		VALUES ($1, $2, $3, $4, NOW())
		RETURNING id, created_at
	`

	row := r.db.QueryRowxContext(ctx, query,
		review.MovieID,
		review.Username,
		review.Review,
		review.Rating,
	)

	if err := row.Scan(&review.ID, &review.CreatedAt); err != nil {
		return fmt.Errorf("failed to insert review: %w", err)
	}

	return nil
}

func (r *reviewRepository) DeleteByID(ctx context.Context, id int64) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM reviews WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete review: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read delete result: %w", err)
	}
	if affected == 0 {
		return model.ErrReviewNotFound
	}

	return nil
}
