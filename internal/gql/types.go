package gql

import (
	"context"

	"github.com/sbilibin2017/gw-movie-reviews/internal/models"
)

type userResolver struct {
	u *models.UserDB
}

func (r *userResolver) ID() int32        { return int32(r.u.ID) }
func (r *userResolver) UserName() string { return r.u.UserName }
func (r *userResolver) Email() string    { return r.u.Email }

type movieResolver struct {
	m    *models.MovieDB
	root *Resolver
}

func (r *movieResolver) ID() int32            { return int32(r.m.ID) }
func (r *movieResolver) MovieName() string    { return r.m.MovieName }
func (r *movieResolver) Description() string  { return r.m.Description }
func (r *movieResolver) DirectorName() string { return r.m.DirectorName }
func (r *movieResolver) ReleaseDate() string  { return r.m.ReleaseDate }
func (r *movieResolver) OwnerID() int32       { return int32(r.m.OwnerID) }

// Reviews resolves the nested reviews of the movie.
func (r *movieResolver) Reviews(ctx context.Context) ([]*reviewResolver, error) {
	return r.root.reviewsOf(ctx, r.m.ID)
}

type reviewResolver struct {
	r *models.ReviewDB
}

func (r *reviewResolver) ID() int32       { return int32(r.r.ID) }
func (r *reviewResolver) MovieID() int32  { return int32(r.r.MovieID) }
func (r *reviewResolver) UserID() int32   { return int32(r.r.UserID) }
func (r *reviewResolver) Rating() int32   { return int32(r.r.Rating) }
func (r *reviewResolver) Comment() string { return r.r.Comment }

func (r *Resolver) newMovie(m *models.MovieDB) *movieResolver {
	return &movieResolver{m: m, root: r}
}

func (r *Resolver) reviewsOf(ctx context.Context, movieID int64) ([]*reviewResolver, error) {
	reviews, err := r.reviews.ListForMovie(ctx, movieID)
	if err != nil {
		return nil, toGQLError(ctx, err)
	}

	out := make([]*reviewResolver, 0, len(reviews))
	for i := range reviews {
		out = append(out, &reviewResolver{r: &reviews[i]})
	}
	return out, nil
}
