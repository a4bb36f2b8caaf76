package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/gw-movie-reviews/internal/models"
)

const movieColumns = `id, movie_name, description, director_name, release_date, user_id`

// movieSortColumns whitelists the columns a listing may be ordered by.
var movieSortColumns = map[string]struct{}{
	"id":            {},
	"movie_name":    {},
	"description":   {},
	"director_name": {},
	"release_date":  {},
}

// MovieReadRepository handles movie read operations
type MovieReadRepository struct {
	db *sqlx.DB
}

func NewMovieReadRepository(db *sqlx.DB) *MovieReadRepository {
	return &MovieReadRepository{db: db}
}

// GetByID returns the movie with the given id, or nil if there is none.
func (r *MovieReadRepository) GetByID(ctx context.Context, id int64) (*models.MovieDB, error) {
	query := `SELECT ` + movieColumns + ` FROM movies WHERE id = $1`
	return r.getOne(ctx, query, id)
}

// LockByID is GetByID with the row locked until the surrounding transaction ends.
func (r *MovieReadRepository) LockByID(ctx context.Context, id int64) (*models.MovieDB, error) {
	query := `SELECT ` + movieColumns + ` FROM movies WHERE id = $1 FOR UPDATE`
	return r.getOne(ctx, query, id)
}

func (r *MovieReadRepository) getOne(ctx context.Context, query string, id int64) (*models.MovieDB, error) {
	var movie models.MovieDB
	err := executorFor(ctx, r.db).GetContext(ctx, &movie, query, id)

	logQuery(ctx, query, []any{id}, movie.ID, err)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("select movie %d: %w", id, err)
	}
	return &movie, nil
}

// List returns a filtered, ordered page of movies.
func (r *MovieReadRepository) List(ctx context.Context, params models.MovieListParams) ([]models.MovieDB, error) {
	var (
		sb   strings.Builder
		args []any
	)
	sb.WriteString(`SELECT ` + movieColumns + ` FROM movies`)

	if params.Filter != "" {
		args = append(args, "%"+escapeLike(params.Filter)+"%")
		sb.WriteString(` WHERE movie_name ILIKE $1 OR director_name ILIKE $1`)
	}

	if params.SortField != "" {
		if _, ok := movieSortColumns[params.SortField]; !ok {
			return nil, fmt.Errorf("list movies: unsupported sort column %q", params.SortField)
		}
		dir := models.SortAsc
		if params.SortDir == models.SortDesc {
			dir = models.SortDesc
		}
		fmt.Fprintf(&sb, ` ORDER BY %s %s, id`, params.SortField, dir)
	} else {
		sb.WriteString(` ORDER BY id`)
	}

	args = append(args, params.Limit, params.Offset)
	fmt.Fprintf(&sb, ` LIMIT $%d OFFSET $%d`, len(args)-1, len(args))

	query := sb.String()
	movies := []models.MovieDB{}
	err := executorFor(ctx, r.db).SelectContext(ctx, &movies, query, args...)

	logQuery(ctx, query, args, len(movies), err)

	if err != nil {
		return nil, fmt.Errorf("list movies: %w", err)
	}
	return movies, nil
}

// escapeLike escapes the ILIKE wildcards so the filter matches literally.
func escapeLike(s string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(s)
}

// MovieWriteRepository handles movie write operations
type MovieWriteRepository struct {
	db *sqlx.DB
}

func NewMovieWriteRepository(db *sqlx.DB) *MovieWriteRepository {
	return &MovieWriteRepository{db: db}
}

// Save inserts a movie owned by ownerID and returns the stored row.
func (r *MovieWriteRepository) Save(ctx context.Context, ownerID int64, in models.MovieInput) (*models.MovieDB, error) {
	query := `
		INSERT INTO movies (movie_name, description, director_name, release_date, user_id)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING ` + movieColumns
	args := []any{in.MovieName, in.Description, in.DirectorName, in.ReleaseDate, ownerID}

	var movie models.MovieDB
	err := executorFor(ctx, r.db).GetContext(ctx, &movie, query, args...)

	logQuery(ctx, query, args, movie.ID, err)

	if err != nil {
		return nil, fmt.Errorf("insert movie: %w", err)
	}
	return &movie, nil
}

// Update overwrites the descriptive fields of a movie. The owner never changes.
func (r *MovieWriteRepository) Update(ctx context.Context, id int64, in models.MovieInput) (*models.MovieDB, error) {
	query := `
		UPDATE movies
		SET movie_name = $1, description = $2, director_name = $3, release_date = $4
		WHERE id = $5
		RETURNING ` + movieColumns
	args := []any{in.MovieName, in.Description, in.DirectorName, in.ReleaseDate, id}

	var movie models.MovieDB
	err := executorFor(ctx, r.db).GetContext(ctx, &movie, query, args...)

	logQuery(ctx, query, args, movie.ID, err)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("update movie %d: %w", id, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("update movie %d: %w", id, err)
	}
	return &movie, nil
}

// Delete removes a movie permanently.
func (r *MovieWriteRepository) Delete(ctx context.Context, id int64) error {
	return deleteByID(ctx, executorFor(ctx, r.db), "movies", id)
}

func deleteByID(ctx context.Context, ex executor, table string, id int64) error {
	query := `DELETE FROM ` + table + ` WHERE id = $1`

	res, err := ex.ExecContext(ctx, query, id)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logQuery(ctx, query, []any{id}, rowsAffected, err)

	if err != nil {
		return fmt.Errorf("delete from %s %d: %w", table, id, err)
	}
	if rowsAffected == 0 {
		return fmt.Errorf("delete from %s %d: %w", table, id, ErrNotFound)
	}
	return nil
}
