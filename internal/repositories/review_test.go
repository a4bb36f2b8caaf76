package repositories

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/sbilibin2017/gw-movie-reviews/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var reviewRowColumns = []string{"id", "movie_id", "user_id", "rating", "comment"}

func TestReviewReadRepository_GetByID(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectQuery(`SELECT id, movie_id, user_id, rating, comment FROM reviews WHERE id = \$1$`).
		WithArgs(int64(4)).
		WillReturnRows(sqlmock.NewRows(reviewRowColumns).AddRow(4, 1, 7, 5, "great"))

	review, err := NewReviewReadRepository(db).GetByID(context.Background(), 4)
	require.NoError(t, err)
	assert.Equal(t, &models.ReviewDB{ID: 4, MovieID: 1, UserID: 7, Rating: 5, Comment: "great"}, review)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestReviewReadRepository_LockByID_NotFound(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectQuery(`FROM reviews WHERE id = \$1 FOR UPDATE`).
		WithArgs(int64(4)).
		WillReturnRows(sqlmock.NewRows(reviewRowColumns))

	review, err := NewReviewReadRepository(db).LockByID(context.Background(), 4)
	assert.NoError(t, err)
	assert.Nil(t, review)
}

func TestReviewReadRepository_ListByMovieID(t *testing.T) {
	t.Run("Rows", func(t *testing.T) {
		db, mock := newMockDB(t)

		mock.ExpectQuery(`FROM reviews WHERE movie_id = \$1 ORDER BY id`).
			WithArgs(int64(1)).
			WillReturnRows(sqlmock.NewRows(reviewRowColumns).
				AddRow(1, 1, 7, 5, "great").
				AddRow(2, 1, 8, 2, "meh"))

		reviews, err := NewReviewReadRepository(db).ListByMovieID(context.Background(), 1)
		require.NoError(t, err)
		require.Len(t, reviews, 2)
		assert.Equal(t, "meh", reviews[1].Comment)
	})

	t.Run("Empty", func(t *testing.T) {
		db, mock := newMockDB(t)

		mock.ExpectQuery(`FROM reviews WHERE movie_id = \$1`).
			WithArgs(int64(1)).
			WillReturnRows(sqlmock.NewRows(reviewRowColumns))

		reviews, err := NewReviewReadRepository(db).ListByMovieID(context.Background(), 1)
		require.NoError(t, err)
		assert.NotNil(t, reviews)
		assert.Empty(t, reviews)
	})

	t.Run("DBError", func(t *testing.T) {
		db, mock := newMockDB(t)

		mock.ExpectQuery(`FROM reviews WHERE movie_id = \$1`).
			WithArgs(int64(1)).
			WillReturnError(errors.New("db down"))

		_, err := NewReviewReadRepository(db).ListByMovieID(context.Background(), 1)
		assert.Error(t, err)
	})
}

func TestReviewWriteRepository_Save(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectQuery(`INSERT INTO reviews \(movie_id, user_id, rating, comment\)`).
		WithArgs(int64(1), int64(7), 5, "great").
		WillReturnRows(sqlmock.NewRows(reviewRowColumns).AddRow(3, 1, 7, 5, "great"))

	review, err := NewReviewWriteRepository(db).Save(context.Background(), 1, 7, models.ReviewInput{Rating: 5, Comment: "great"})
	require.NoError(t, err)
	assert.Equal(t, int64(3), review.ID)
	assert.Equal(t, int64(7), review.UserID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestReviewWriteRepository_Update(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectQuery(`UPDATE reviews\s+SET rating = \$1, comment = \$2\s+WHERE id = \$3`).
		WithArgs(4, "better", int64(3)).
		WillReturnRows(sqlmock.NewRows(reviewRowColumns).AddRow(3, 1, 7, 4, "better"))

	review, err := NewReviewWriteRepository(db).Update(context.Background(), 3, models.ReviewInput{Rating: 4, Comment: "better"})
	require.NoError(t, err)
	assert.Equal(t, 4, review.Rating)
}

func TestReviewWriteRepository_Delete(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectExec(`DELETE FROM reviews WHERE id = \$1`).
		WithArgs(int64(3)).
		WillReturnError(errors.New("db down"))

	err := NewReviewWriteRepository(db).Delete(context.Background(), 3)
	assert.Error(t, err)
	assert.NotErrorIs(t, err, ErrNotFound)
}
