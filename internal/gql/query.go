package gql

import (
	"context"
)

// GetUser resolves Query.getUser. An absent user resolves to null.
func (r *Resolver) GetUser(ctx context.Context, args struct{ ID int32 }) (*userResolver, error) {
	user, err := r.users.GetUser(ctx, int64(args.ID))
	if err != nil {
		return nil, toGQLError(ctx, err)
	}
	if user == nil {
		return nil, nil
	}
	return &userResolver{u: user}, nil
}

// GetMovie resolves Query.getMovie. An absent movie resolves to null.
func (r *Resolver) GetMovie(ctx context.Context, args struct{ ID int32 }) (*movieResolver, error) {
	movie, err := r.movies.GetMovie(ctx, int64(args.ID))
	if err != nil {
		return nil, toGQLError(ctx, err)
	}
	if movie == nil {
		return nil, nil
	}
	return r.newMovie(movie), nil
}

// GetReviewsForMovie resolves Query.getReviewsForMovie.
func (r *Resolver) GetReviewsForMovie(ctx context.Context, args struct{ MovieID int32 }) ([]*reviewResolver, error) {
	return r.reviewsOf(ctx, int64(args.MovieID))
}

type getAllMoviesArgs struct {
	SortBy   *string
	FilterBy *string
	Page     *int32
	Limit    *int32
}

// GetAllMovies resolves Query.getAllMovies.
func (r *Resolver) GetAllMovies(ctx context.Context, args getAllMoviesArgs) ([]*movieResolver, error) {
	movies, err := r.movies.ListMovies(ctx,
		deref(args.SortBy),
		deref(args.FilterBy),
		int(deref(args.Page)),
		int(deref(args.Limit)),
	)
	if err != nil {
		return nil, toGQLError(ctx, err)
	}

	out := make([]*movieResolver, 0, len(movies))
	for i := range movies {
		out = append(out, r.newMovie(&movies[i]))
	}
	return out, nil
}

func deref[T any](p *T) T {
	var zero T
	if p == nil {
		return zero
	}
	return *p
}
