package services_test

import (
	"context"

	"github.com/golang/mock/gomock"
	"github.com/sbilibin2017/gw-movie-reviews/internal/identity"
	"github.com/sbilibin2017/gw-movie-reviews/internal/services"
)

// newTx returns a transactor that runs fn directly on the given context.
func newTx(ctrl *gomock.Controller) *services.MockTransactor {
	tx := services.NewMockTransactor(ctrl)
	tx.EXPECT().
		WithinTx(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(context.Context) error) error {
			return fn(ctx)
		}).
		AnyTimes()
	return tx
}

func asUser(id int64) context.Context {
	return identity.WithIdentity(context.Background(), identity.Identity{UserID: id})
}
