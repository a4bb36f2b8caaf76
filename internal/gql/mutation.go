package gql

import (
	"context"

	"github.com/sbilibin2017/gw-movie-reviews/internal/models"
)

type signUpUserArgs struct {
	UserName string
	Email    string
	Password string
}

// SignUpUser resolves Mutation.signUpUser.
func (r *Resolver) SignUpUser(ctx context.Context, args signUpUserArgs) (*userResolver, error) {
	user, err := r.users.SignUp(ctx, args.UserName, args.Email, args.Password)
	if err != nil {
		return nil, toGQLError(ctx, err)
	}
	return &userResolver{u: user}, nil
}

type loginUserArgs struct {
	Email    string
	Password string
}

// LoginUser resolves Mutation.loginUser and returns a bearer token.
func (r *Resolver) LoginUser(ctx context.Context, args loginUserArgs) (string, error) {
	token, err := r.users.Login(ctx, args.Email, args.Password)
	if err != nil {
		return "", toGQLError(ctx, err)
	}
	return token, nil
}

type changePasswordArgs struct {
	UserID      int32
	NewPassword string
}

// ChangePassword resolves Mutation.changePassword.
func (r *Resolver) ChangePassword(ctx context.Context, args changePasswordArgs) (*userResolver, error) {
	user, err := r.users.ChangePassword(ctx, int64(args.UserID), args.NewPassword)
	if err != nil {
		return nil, toGQLError(ctx, err)
	}
	return &userResolver{u: user}, nil
}

type createMovieArgs struct {
	MovieName    string
	Description  string
	DirectorName string
	ReleaseDate  string
}

// CreateMovie resolves Mutation.createMovie.
func (r *Resolver) CreateMovie(ctx context.Context, args createMovieArgs) (*movieResolver, error) {
	movie, err := r.movies.CreateMovie(ctx, models.MovieInput{
		MovieName:    args.MovieName,
		Description:  args.Description,
		DirectorName: args.DirectorName,
		ReleaseDate:  args.ReleaseDate,
	})
	if err != nil {
		return nil, toGQLError(ctx, err)
	}
	return r.newMovie(movie), nil
}

type updateMovieArgs struct {
	ID           int32
	MovieName    *string
	Description  *string
	DirectorName *string
	ReleaseDate  *string
}

// UpdateMovie resolves Mutation.updateMovie. Omitted fields count as empty,
// so the update is rejected unless every field is supplied.
func (r *Resolver) UpdateMovie(ctx context.Context, args updateMovieArgs) (*movieResolver, error) {
	movie, err := r.movies.UpdateMovie(ctx, int64(args.ID), models.MovieInput{
		MovieName:    deref(args.MovieName),
		Description:  deref(args.Description),
		DirectorName: deref(args.DirectorName),
		ReleaseDate:  deref(args.ReleaseDate),
	})
	if err != nil {
		return nil, toGQLError(ctx, err)
	}
	return r.newMovie(movie), nil
}

// DeleteMovie resolves Mutation.deleteMovie.
func (r *Resolver) DeleteMovie(ctx context.Context, args struct{ ID int32 }) (bool, error) {
	ok, err := r.movies.DeleteMovie(ctx, int64(args.ID))
	if err != nil {
		return false, toGQLError(ctx, err)
	}
	return ok, nil
}

type createReviewArgs struct {
	MovieID int32
	Rating  int32
	Comment string
}

// CreateReview resolves Mutation.createReview.
func (r *Resolver) CreateReview(ctx context.Context, args createReviewArgs) (*reviewResolver, error) {
	review, err := r.reviews.CreateReview(ctx, int64(args.MovieID), models.ReviewInput{
		Rating:  int(args.Rating),
		Comment: args.Comment,
	})
	if err != nil {
		return nil, toGQLError(ctx, err)
	}
	return &reviewResolver{r: review}, nil
}

type updateReviewArgs struct {
	ID      int32
	Rating  *int32
	Comment *string
}

// UpdateReview resolves Mutation.updateReview.
func (r *Resolver) UpdateReview(ctx context.Context, args updateReviewArgs) (*reviewResolver, error) {
	review, err := r.reviews.UpdateReview(ctx, int64(args.ID), models.ReviewInput{
		Rating:  int(deref(args.Rating)),
		Comment: deref(args.Comment),
	})
	if err != nil {
		return nil, toGQLError(ctx, err)
	}
	return &reviewResolver{r: review}, nil
}

// DeleteReview resolves Mutation.deleteReview.
func (r *Resolver) DeleteReview(ctx context.Context, args struct{ ID int32 }) (bool, error) {
	ok, err := r.reviews.DeleteReview(ctx, int64(args.ID))
	if err != nil {
		return false, toGQLError(ctx, err)
	}
	return ok, nil
}
