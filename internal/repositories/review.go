package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/gw-movie-reviews/internal/models"
)

const reviewColumns = `id, movie_id, user_id, rating, comment`

// ReviewReadRepository handles review read operations
type ReviewReadRepository struct {
	db *sqlx.DB
}

func NewReviewReadRepository(db *sqlx.DB) *ReviewReadRepository {
	return &ReviewReadRepository{db: db}
}

// GetByID returns the review with the given id, or nil if there is none.
func (r *ReviewReadRepository) GetByID(ctx context.Context, id int64) (*models.ReviewDB, error) {
	query := `SELECT ` + reviewColumns + ` FROM reviews WHERE id = $1`
	return r.getOne(ctx, query, id)
}

// LockByID is GetByID with the row locked until the surrounding transaction ends.
func (r *ReviewReadRepository) LockByID(ctx context.Context, id int64) (*models.ReviewDB, error) {
	query := `SELECT ` + reviewColumns + ` FROM reviews WHERE id = $1 FOR UPDATE`
	return r.getOne(ctx, query, id)
}

func (r *ReviewReadRepository) getOne(ctx context.Context, query string, id int64) (*models.ReviewDB, error) {
	var review models.ReviewDB
	err := executorFor(ctx, r.db).GetContext(ctx, &review, query, id)

	logQuery(ctx, query, []any{id}, review.ID, err)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("select review %d: %w", id, err)
	}
	return &review, nil
}

// ListByMovieID returns every review of a movie ordered by id.
func (r *ReviewReadRepository) ListByMovieID(ctx context.Context, movieID int64) ([]models.ReviewDB, error) {
	query := `SELECT ` + reviewColumns + ` FROM reviews WHERE movie_id = $1 ORDER BY id`

	reviews := []models.ReviewDB{}
	err := executorFor(ctx, r.db).SelectContext(ctx, &reviews, query, movieID)

	logQuery(ctx, query, []any{movieID}, len(reviews), err)

	if err != nil {
		return nil, fmt.Errorf("list reviews of movie %d: %w", movieID, err)
	}
	return reviews, nil
}

// ReviewWriteRepository handles review write operations
type ReviewWriteRepository struct {
	db *sqlx.DB
}

func NewReviewWriteRepository(db *sqlx.DB) *ReviewWriteRepository {
	return &ReviewWriteRepository{db: db}
}

// Save inserts a review written by userID and returns the stored row.
func (r *ReviewWriteRepository) Save(ctx context.Context, movieID, userID int64, in models.ReviewInput) (*models.ReviewDB, error) {
	query := `
		INSERT INTO reviews (movie_id, user_id, rating, comment)
		VALUES ($1, $2, $3, $4)
		RETURNING ` + reviewColumns
	args := []any{movieID, userID, in.Rating, in.Comment}

	var review models.ReviewDB
	err := executorFor(ctx, r.db).GetContext(ctx, &review, query, args...)

	logQuery(ctx, query, args, review.ID, err)

	if err != nil {
		return nil, fmt.Errorf("insert review: %w", err)
	}
	return &review, nil
}

// Update overwrites rating and comment of a review.
func (r *ReviewWriteRepository) Update(ctx context.Context, id int64, in models.ReviewInput) (*models.ReviewDB, error) {
	query := `
		UPDATE reviews
		SET rating = $1, comment = $2
		WHERE id = $3
		RETURNING ` + reviewColumns
	args := []any{in.Rating, in.Comment, id}

	var review models.ReviewDB
	err := executorFor(ctx, r.db).GetContext(ctx, &review, query, args...)

	logQuery(ctx, query, args, review.ID, err)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("update review %d: %w", id, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("update review %d: %w", id, err)
	}
	return &review, nil
}

// Delete removes a review permanently.
func (r *ReviewWriteRepository) Delete(ctx context.Context, id int64) error {
	return deleteByID(ctx, executorFor(ctx, r.db), "reviews", id)
}
