package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/gw-movie-reviews/internal/models"
)

type UserReadRepository struct {
	db *sqlx.DB
}

func NewUserReadRepository(db *sqlx.DB) *UserReadRepository {
	return &UserReadRepository{db: db}
}

// GetByID returns the user with the given id, or nil if there is none.
func (r *UserReadRepository) GetByID(ctx context.Context, id int64) (*models.UserDB, error) {
	const query = `
		SELECT id, username, email, password
		FROM users
		WHERE id = $1
	`
	return r.getOne(ctx, query, id)
}

// GetByEmail returns the user with the given email, or nil if there is none.
func (r *UserReadRepository) GetByEmail(ctx context.Context, email string) (*models.UserDB, error) {
	const query = `
		SELECT id, username, email, password
		FROM users
		WHERE email = $1
		LIMIT 1
	`
	return r.getOne(ctx, query, email)
}

func (r *UserReadRepository) getOne(ctx context.Context, query string, arg any) (*models.UserDB, error) {
	var user models.UserDB
	err := executorFor(ctx, r.db).GetContext(ctx, &user, query, arg)

	logQuery(ctx, query, []any{arg}, user.ID, err)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("select user: %w", err)
	}
	return &user, nil
}

type UserWriteRepository struct {
	db *sqlx.DB
}

func NewUserWriteRepository(db *sqlx.DB) *UserWriteRepository {
	return &UserWriteRepository{db: db}
}

// Save inserts a user and returns the stored row.
func (r *UserWriteRepository) Save(ctx context.Context, userName, email, passwordHash string) (*models.UserDB, error) {
	const query = `
		INSERT INTO users (username, email, password)
		VALUES ($1, $2, $3)
		RETURNING id, username, email, password
	`

	var user models.UserDB
	err := executorFor(ctx, r.db).GetContext(ctx, &user, query, userName, email, passwordHash)

	// password hash is never logged
	logQuery(ctx, query, []any{userName, email}, user.ID, err)

	if err != nil {
		if isUniqueViolation(err) {
			return nil, fmt.Errorf("insert user: %w", ErrDuplicate)
		}
		return nil, fmt.Errorf("insert user: %w", err)
	}
	return &user, nil
}

// UpdatePassword replaces the password hash of a user and returns the updated row.
func (r *UserWriteRepository) UpdatePassword(ctx context.Context, id int64, passwordHash string) (*models.UserDB, error) {
	const query = `
		UPDATE users
		SET password = $1
		WHERE id = $2
		RETURNING id, username, email, password
	`

	var user models.UserDB
	err := executorFor(ctx, r.db).GetContext(ctx, &user, query, passwordHash, id)

	logQuery(ctx, query, []any{id}, user.ID, err)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("update user %d: %w", id, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("update user %d: %w", id, err)
	}
	return &user, nil
}
