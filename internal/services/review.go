package services

import (
	"context"
	"errors"

	"github.com/sbilibin2017/gw-movie-reviews/internal/identity"
	"github.com/sbilibin2017/gw-movie-reviews/internal/logger"
	"github.com/sbilibin2017/gw-movie-reviews/internal/models"
	"github.com/sbilibin2017/gw-movie-reviews/internal/repositories"
)

//go:generate mockgen -source=review.go -destination=mock_review.go -package=services

// ReviewReader defines read operations for reviews.
type ReviewReader interface {
	GetByID(ctx context.Context, id int64) (*models.ReviewDB, error)
	LockByID(ctx context.Context, id int64) (*models.ReviewDB, error)
	ListByMovieID(ctx context.Context, movieID int64) ([]models.ReviewDB, error)
}

// ReviewWriter defines write operations for reviews.
type ReviewWriter interface {
	Save(ctx context.Context, movieID, userID int64, in models.ReviewInput) (*models.ReviewDB, error)
	Update(ctx context.Context, id int64, in models.ReviewInput) (*models.ReviewDB, error)
	Delete(ctx context.Context, id int64) error
}

// ReviewService handles review reads and owner-gated review mutations.
type ReviewService struct {
	reader    ReviewReader
	writer    ReviewWriter
	movies    MovieReader
	tx        Transactor
	publisher EventPublisher
}

// NewReviewService creates a new ReviewService.
func NewReviewService(reader ReviewReader, writer ReviewWriter, movies MovieReader, tx Transactor, publisher EventPublisher) *ReviewService {
	return &ReviewService{
		reader:    reader,
		writer:    writer,
		movies:    movies,
		tx:        tx,
		publisher: publisher,
	}
}

// ListForMovie returns the reviews of a movie. An unknown movie has no reviews.
func (s *ReviewService) ListForMovie(ctx context.Context, movieID int64) ([]models.ReviewDB, error) {
	reviews, err := s.reader.ListByMovieID(ctx, movieID)
	if err != nil {
		logger.FromContext(ctx).Errorw("failed to list reviews", "movieID", movieID, "error", err)
		return nil, storageFailure(err)
	}
	return reviews, nil
}

// CreateReview stores a review of an existing movie written by the caller.
func (s *ReviewService) CreateReview(ctx context.Context, movieID int64, in models.ReviewInput) (*models.ReviewDB, error) {
	caller, err := requireIdentity(ctx, "create a review")
	if err != nil {
		return nil, err
	}
	if movieID == 0 || !in.Complete() {
		return nil, newError(ErrValidationFailed, "Review details are incomplete.")
	}

	var review *models.ReviewDB
	err = s.tx.WithinTx(ctx, func(ctx context.Context) error {
		movie, err := s.movies.LockByID(ctx, movieID)
		if err != nil {
			return storageFailure(err)
		}
		if movie == nil {
			return newError(ErrNotFound, "Movie not found.")
		}

		review, err = s.writer.Save(ctx, movieID, caller.UserID, in)
		if err != nil {
			return storageFailure(err)
		}
		return nil
	})
	if err != nil {
		logger.FromContext(ctx).Errorw("failed to create review", "movieID", movieID, "userID", caller.UserID, "error", err)
		return nil, passThrough(err)
	}

	s.publisher.Publish(ctx, models.EventReviewCreated, review.ID, caller.UserID)
	return review, nil
}

// UpdateReview overwrites a review written by the caller.
func (s *ReviewService) UpdateReview(ctx context.Context, id int64, in models.ReviewInput) (*models.ReviewDB, error) {
	caller, err := requireIdentity(ctx, "update a review")
	if err != nil {
		return nil, err
	}

	var review *models.ReviewDB
	err = s.tx.WithinTx(ctx, func(ctx context.Context) error {
		if err := s.lockOwned(ctx, caller, id, "update this review"); err != nil {
			return err
		}
		if !in.Complete() {
			return newError(ErrValidationFailed, "Review details are incomplete.")
		}

		updated, err := s.writer.Update(ctx, id, in)
		if err != nil {
			return reviewWriteErr(err)
		}
		review = updated
		return nil
	})
	if err != nil {
		logger.FromContext(ctx).Errorw("failed to update review", "id", id, "userID", caller.UserID, "error", err)
		return nil, passThrough(err)
	}

	s.publisher.Publish(ctx, models.EventReviewUpdated, review.ID, caller.UserID)
	return review, nil
}

// DeleteReview removes a review written by the caller.
func (s *ReviewService) DeleteReview(ctx context.Context, id int64) (bool, error) {
	caller, err := requireIdentity(ctx, "delete a review")
	if err != nil {
		return false, err
	}

	err = s.tx.WithinTx(ctx, func(ctx context.Context) error {
		if err := s.lockOwned(ctx, caller, id, "delete this review"); err != nil {
			return err
		}
		return reviewWriteErr(s.writer.Delete(ctx, id))
	})
	if err != nil {
		logger.FromContext(ctx).Errorw("failed to delete review", "id", id, "userID", caller.UserID, "error", err)
		return false, passThrough(err)
	}

	s.publisher.Publish(ctx, models.EventReviewDeleted, id, caller.UserID)
	return true, nil
}

func (s *ReviewService) lockOwned(ctx context.Context, caller identity.Identity, id int64, action string) error {
	review, err := s.reader.LockByID(ctx, id)
	if err != nil {
		return storageFailure(err)
	}
	if review == nil {
		return newError(ErrNotFound, "Review not found.")
	}
	return authorize(caller, review.UserID, action)
}

func reviewWriteErr(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, repositories.ErrNotFound):
		return newError(ErrNotFound, "Review not found.")
	default:
		return storageFailure(err)
	}
}
