// Package gql binds the GraphQL schema to the services.
package gql

import (
	"context"

	"github.com/sbilibin2017/gw-movie-reviews/internal/models"
)

//go:generate mockgen -source=resolver.go -destination=mock_resolver.go -package=gql

// UserService defines the user operations exposed through the API.
type UserService interface {
	GetUser(ctx context.Context, id int64) (*models.UserDB, error)
	SignUp(ctx context.Context, userName, email, password string) (*models.UserDB, error)
	Login(ctx context.Context, email, password string) (string, error)
	ChangePassword(ctx context.Context, userID int64, newPassword string) (*models.UserDB, error)
}

// MovieService defines the movie operations exposed through the API.
type MovieService interface {
	GetMovie(ctx context.Context, id int64) (*models.MovieDB, error)
	ListMovies(ctx context.Context, sortBy, filterBy string, page, limit int) ([]models.MovieDB, error)
	CreateMovie(ctx context.Context, in models.MovieInput) (*models.MovieDB, error)
	UpdateMovie(ctx context.Context, id int64, in models.MovieInput) (*models.MovieDB, error)
	DeleteMovie(ctx context.Context, id int64) (bool, error)
}

// ReviewService defines the review operations exposed through the API.
type ReviewService interface {
	ListForMovie(ctx context.Context, movieID int64) ([]models.ReviewDB, error)
	CreateReview(ctx context.Context, movieID int64, in models.ReviewInput) (*models.ReviewDB, error)
	UpdateReview(ctx context.Context, id int64, in models.ReviewInput) (*models.ReviewDB, error)
	DeleteReview(ctx context.Context, id int64) (bool, error)
}

// Resolver is the root resolver serving both Query and Mutation fields.
type Resolver struct {
	users   UserService
	movies  MovieService
	reviews ReviewService
}

// NewResolver creates a new root Resolver.
func NewResolver(users UserService, movies MovieService, reviews ReviewService) *Resolver {
	return &Resolver{
		users:   users,
		movies:  movies,
		reviews: reviews,
	}
}
