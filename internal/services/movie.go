package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/sbilibin2017/gw-movie-reviews/internal/identity"
	"github.com/sbilibin2017/gw-movie-reviews/internal/logger"
	"github.com/sbilibin2017/gw-movie-reviews/internal/models"
	"github.com/sbilibin2017/gw-movie-reviews/internal/repositories"
)

//go:generate mockgen -source=movie.go -destination=mock_movie.go -package=services

// Pagination defaults of ListMovies.
const (
	DefaultPage  = 1
	DefaultLimit = 10
	MaxLimit     = 100
)

// MovieReader defines read operations for movies.
type MovieReader interface {
	GetByID(ctx context.Context, id int64) (*models.MovieDB, error)
	LockByID(ctx context.Context, id int64) (*models.MovieDB, error)
	List(ctx context.Context, params models.MovieListParams) ([]models.MovieDB, error)
}

// MovieWriter defines write operations for movies.
type MovieWriter interface {
	Save(ctx context.Context, ownerID int64, in models.MovieInput) (*models.MovieDB, error)
	Update(ctx context.Context, id int64, in models.MovieInput) (*models.MovieDB, error)
	Delete(ctx context.Context, id int64) error
}

// movieSortFields maps accepted sort field names, API and column spelling, to columns.
var movieSortFields = map[string]string{
	"id":            "id",
	"movieName":     "movie_name",
	"movie_name":    "movie_name",
	"description":   "description",
	"directorName":  "director_name",
	"director_name": "director_name",
	"releaseDate":   "release_date",
	"release_date":  "release_date",
}

// MovieService handles movie reads and owner-gated movie mutations.
type MovieService struct {
	reader    MovieReader
	writer    MovieWriter
	tx        Transactor
	publisher EventPublisher
}

// NewMovieService creates a new MovieService.
func NewMovieService(reader MovieReader, writer MovieWriter, tx Transactor, publisher EventPublisher) *MovieService {
	return &MovieService{
		reader:    reader,
		writer:    writer,
		tx:        tx,
		publisher: publisher,
	}
}

// GetMovie returns the movie with the given id, or nil if there is none.
func (s *MovieService) GetMovie(ctx context.Context, id int64) (*models.MovieDB, error) {
	movie, err := s.reader.GetByID(ctx, id)
	if err != nil {
		logger.FromContext(ctx).Errorw("failed to get movie", "id", id, "error", err)
		return nil, storageFailure(err)
	}
	return movie, nil
}

// ListMovies returns one page of movies. sortBy is "<field>[_asc|_desc]",
// filterBy a substring of the name or director. Zero page or limit select
// the defaults.
func (s *MovieService) ListMovies(ctx context.Context, sortBy, filterBy string, page, limit int) ([]models.MovieDB, error) {
	column, dir, err := parseSortBy(sortBy)
	if err != nil {
		return nil, err
	}

	if page == 0 {
		page = DefaultPage
	}
	if limit == 0 {
		limit = DefaultLimit
	}
	if page < 0 || limit < 0 {
		return nil, newError(ErrValidationFailed, "Page and limit must be positive.")
	}
	if limit > MaxLimit {
		limit = MaxLimit
	}

	movies, err := s.reader.List(ctx, models.MovieListParams{
		Filter:    filterBy,
		SortField: column,
		SortDir:   dir,
		Limit:     limit,
		Offset:    (page - 1) * limit,
	})
	if err != nil {
		logger.FromContext(ctx).Errorw("failed to list movies", "error", err)
		return nil, storageFailure(err)
	}
	return movies, nil
}

func parseSortBy(sortBy string) (string, models.SortDirection, error) {
	if sortBy == "" {
		return "", "", nil
	}

	field, dir := sortBy, models.SortAsc
	if i := strings.LastIndex(sortBy, "_"); i > 0 {
		switch strings.ToUpper(sortBy[i+1:]) {
		case string(models.SortAsc):
			field = sortBy[:i]
		case string(models.SortDesc):
			field, dir = sortBy[:i], models.SortDesc
		}
	}

	column, ok := movieSortFields[field]
	if !ok {
		return "", "", newError(ErrValidationFailed, fmt.Sprintf("Cannot sort movies by %q.", field))
	}
	return column, dir, nil
}

// CreateMovie stores a movie owned by the caller.
func (s *MovieService) CreateMovie(ctx context.Context, in models.MovieInput) (*models.MovieDB, error) {
	caller, err := requireIdentity(ctx, "create a movie")
	if err != nil {
		return nil, err
	}
	if !in.Complete() {
		return nil, newError(ErrValidationFailed, "Movie details are incomplete.")
	}

	movie, err := s.writer.Save(ctx, caller.UserID, in)
	if err != nil {
		logger.FromContext(ctx).Errorw("failed to save movie", "userID", caller.UserID, "error", err)
		return nil, storageFailure(err)
	}

	s.publisher.Publish(ctx, models.EventMovieCreated, movie.ID, caller.UserID)
	return movie, nil
}

// UpdateMovie overwrites a movie owned by the caller.
func (s *MovieService) UpdateMovie(ctx context.Context, id int64, in models.MovieInput) (*models.MovieDB, error) {
	caller, err := requireIdentity(ctx, "update a movie")
	if err != nil {
		return nil, err
	}

	var movie *models.MovieDB
	err = s.tx.WithinTx(ctx, func(ctx context.Context) error {
		if err := s.lockOwned(ctx, caller, id, "update this movie"); err != nil {
			return err
		}
		if !in.Complete() {
			return newError(ErrValidationFailed, "Movie details are incomplete.")
		}

		updated, err := s.writer.Update(ctx, id, in)
		if err != nil {
			return movieWriteErr(err)
		}
		movie = updated
		return nil
	})
	if err != nil {
		logger.FromContext(ctx).Errorw("failed to update movie", "id", id, "userID", caller.UserID, "error", err)
		return nil, passThrough(err)
	}

	s.publisher.Publish(ctx, models.EventMovieUpdated, movie.ID, caller.UserID)
	return movie, nil
}

// DeleteMovie removes a movie owned by the caller.
func (s *MovieService) DeleteMovie(ctx context.Context, id int64) (bool, error) {
	caller, err := requireIdentity(ctx, "delete a movie")
	if err != nil {
		return false, err
	}

	err = s.tx.WithinTx(ctx, func(ctx context.Context) error {
		if err := s.lockOwned(ctx, caller, id, "delete this movie"); err != nil {
			return err
		}
		return movieWriteErr(s.writer.Delete(ctx, id))
	})
	if err != nil {
		logger.FromContext(ctx).Errorw("failed to delete movie", "id", id, "userID", caller.UserID, "error", err)
		return false, passThrough(err)
	}

	s.publisher.Publish(ctx, models.EventMovieDeleted, id, caller.UserID)
	return true, nil
}

// lockOwned locks the movie row, failing with NotFound when it is absent and
// with AuthorizationDenied when the caller does not own it, in that order.
func (s *MovieService) lockOwned(ctx context.Context, caller identity.Identity, id int64, action string) error {
	movie, err := s.reader.LockByID(ctx, id)
	if err != nil {
		return storageFailure(err)
	}
	if movie == nil {
		return newError(ErrNotFound, "Movie not found.")
	}
	return authorize(caller, movie.OwnerID, action)
}

func movieWriteErr(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, repositories.ErrNotFound):
		return newError(ErrNotFound, "Movie not found.")
	default:
		return storageFailure(err)
	}
}
