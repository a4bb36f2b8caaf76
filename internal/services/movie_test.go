package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/sbilibin2017/gw-movie-reviews/internal/models"
	"github.com/sbilibin2017/gw-movie-reviews/internal/repositories"
	"github.com/sbilibin2017/gw-movie-reviews/internal/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type movieMocks struct {
	reader    *services.MockMovieReader
	writer    *services.MockMovieWriter
	publisher *services.MockEventPublisher
}

func newMovieService(t *testing.T) (*services.MovieService, movieMocks) {
	ctrl := gomock.NewController(t)
	m := movieMocks{
		reader:    services.NewMockMovieReader(ctrl),
		writer:    services.NewMockMovieWriter(ctrl),
		publisher: services.NewMockEventPublisher(ctrl),
	}
	return services.NewMovieService(m.reader, m.writer, newTx(ctrl), m.publisher), m
}

var movieInput = models.MovieInput{
	MovieName:    "Inception",
	Description:  "Dreams",
	DirectorName: "Nolan",
	ReleaseDate:  "2010-07-16",
}

func TestMovieService_GetMovie(t *testing.T) {
	svc, m := newMovieService(t)
	m.reader.EXPECT().GetByID(gomock.Any(), int64(1)).Return(&models.MovieDB{ID: 1}, nil)
	m.reader.EXPECT().GetByID(gomock.Any(), int64(2)).Return(nil, nil)

	movie, err := svc.GetMovie(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, int64(1), movie.ID)

	movie, err = svc.GetMovie(context.Background(), 2)
	assert.NoError(t, err)
	assert.Nil(t, movie)
}

func TestMovieService_ListMovies(t *testing.T) {
	tests := []struct {
		name       string
		sortBy     string
		filterBy   string
		page       int
		limit      int
		wantParams models.MovieListParams
		wantErr    error
	}{
		{
			name:       "Defaults",
			wantParams: models.MovieListParams{Limit: 10, Offset: 0},
		},
		{
			name:       "SecondPage",
			page:       2,
			limit:      1,
			wantParams: models.MovieListParams{Limit: 1, Offset: 1},
		},
		{
			name:       "LimitCapped",
			page:       3,
			limit:      1000,
			wantParams: models.MovieListParams{Limit: 100, Offset: 200},
		},
		{
			name:       "SortDescendingByApiName",
			sortBy:     "releaseDate_desc",
			filterBy:   "nolan",
			wantParams: models.MovieListParams{Filter: "nolan", SortField: "release_date", SortDir: models.SortDesc, Limit: 10},
		},
		{
			name:       "SortByColumnName",
			sortBy:     "movie_name",
			wantParams: models.MovieListParams{SortField: "movie_name", SortDir: models.SortAsc, Limit: 10},
		},
		{
			name:       "SortByColumnNameAscending",
			sortBy:     "director_name_ASC",
			wantParams: models.MovieListParams{SortField: "director_name", SortDir: models.SortAsc, Limit: 10},
		},
		{
			name:    "UnknownSortField",
			sortBy:  "rating_desc",
			wantErr: services.ErrValidationFailed,
		},
		{
			name:    "NegativePage",
			page:    -1,
			wantErr: services.ErrValidationFailed,
		},
		{
			name:    "NegativeLimit",
			limit:   -5,
			wantErr: services.ErrValidationFailed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, m := newMovieService(t)
			if tt.wantErr == nil {
				m.reader.EXPECT().List(gomock.Any(), tt.wantParams).Return([]models.MovieDB{{ID: 1}}, nil)
			}

			movies, err := svc.ListMovies(context.Background(), tt.sortBy, tt.filterBy, tt.page, tt.limit)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Len(t, movies, 1)
		})
	}
}

func TestMovieService_ListMovies_StorageFailure(t *testing.T) {
	svc, m := newMovieService(t)
	m.reader.EXPECT().List(gomock.Any(), gomock.Any()).Return(nil, errors.New("db down"))

	_, err := svc.ListMovies(context.Background(), "", "", 0, 0)
	assert.ErrorIs(t, err, services.ErrStorageFailure)
}

func TestMovieService_CreateMovie(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		svc, m := newMovieService(t)
		m.writer.EXPECT().Save(gomock.Any(), int64(7), movieInput).Return(&models.MovieDB{ID: 3, OwnerID: 7}, nil)
		m.publisher.EXPECT().Publish(gomock.Any(), models.EventMovieCreated, int64(3), int64(7))

		movie, err := svc.CreateMovie(asUser(7), movieInput)
		require.NoError(t, err)
		assert.Equal(t, int64(7), movie.OwnerID)
	})

	t.Run("Unauthenticated", func(t *testing.T) {
		svc, _ := newMovieService(t)

		_, err := svc.CreateMovie(context.Background(), movieInput)
		assert.ErrorIs(t, err, services.ErrAuthenticationRequired)
	})

	t.Run("Incomplete", func(t *testing.T) {
		svc, _ := newMovieService(t)
		in := movieInput
		in.DirectorName = ""

		_, err := svc.CreateMovie(asUser(7), in)
		assert.ErrorIs(t, err, services.ErrValidationFailed)
		assert.EqualError(t, err, "Movie details are incomplete.")
	})
}

func TestMovieService_UpdateMovie(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		svc, m := newMovieService(t)
		m.reader.EXPECT().LockByID(gomock.Any(), int64(3)).Return(&models.MovieDB{ID: 3, OwnerID: 7}, nil)
		m.writer.EXPECT().Update(gomock.Any(), int64(3), movieInput).Return(&models.MovieDB{ID: 3, OwnerID: 7, MovieName: "Inception"}, nil)
		m.publisher.EXPECT().Publish(gomock.Any(), models.EventMovieUpdated, int64(3), int64(7))

		movie, err := svc.UpdateMovie(asUser(7), 3, movieInput)
		require.NoError(t, err)
		assert.Equal(t, "Inception", movie.MovieName)
	})

	t.Run("Unauthenticated", func(t *testing.T) {
		svc, _ := newMovieService(t)

		_, err := svc.UpdateMovie(context.Background(), 3, movieInput)
		assert.ErrorIs(t, err, services.ErrAuthenticationRequired)
	})

	t.Run("NotOwner", func(t *testing.T) {
		svc, m := newMovieService(t)
		m.reader.EXPECT().LockByID(gomock.Any(), int64(3)).Return(&models.MovieDB{ID: 3, OwnerID: 7}, nil)

		_, err := svc.UpdateMovie(asUser(8), 3, movieInput)
		assert.ErrorIs(t, err, services.ErrAuthorizationDenied)
	})

	t.Run("NotFound", func(t *testing.T) {
		svc, m := newMovieService(t)
		m.reader.EXPECT().LockByID(gomock.Any(), int64(3)).Return(nil, nil)

		_, err := svc.UpdateMovie(asUser(7), 3, movieInput)
		assert.ErrorIs(t, err, services.ErrNotFound)
	})

	t.Run("OwnershipCheckedBeforeCompleteness", func(t *testing.T) {
		svc, m := newMovieService(t)
		m.reader.EXPECT().LockByID(gomock.Any(), int64(3)).Return(&models.MovieDB{ID: 3, OwnerID: 7}, nil)

		_, err := svc.UpdateMovie(asUser(8), 3, models.MovieInput{})
		assert.ErrorIs(t, err, services.ErrAuthorizationDenied)
	})

	t.Run("Incomplete", func(t *testing.T) {
		svc, m := newMovieService(t)
		m.reader.EXPECT().LockByID(gomock.Any(), int64(3)).Return(&models.MovieDB{ID: 3, OwnerID: 7}, nil)

		_, err := svc.UpdateMovie(asUser(7), 3, models.MovieInput{MovieName: "x"})
		assert.ErrorIs(t, err, services.ErrValidationFailed)
	})

	t.Run("StorageFailure", func(t *testing.T) {
		svc, m := newMovieService(t)
		m.reader.EXPECT().LockByID(gomock.Any(), int64(3)).Return(&models.MovieDB{ID: 3, OwnerID: 7}, nil)
		m.writer.EXPECT().Update(gomock.Any(), int64(3), movieInput).Return(nil, errors.New("db down"))

		_, err := svc.UpdateMovie(asUser(7), 3, movieInput)
		assert.ErrorIs(t, err, services.ErrStorageFailure)
	})
}

func TestMovieService_DeleteMovie(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		svc, m := newMovieService(t)
		m.reader.EXPECT().LockByID(gomock.Any(), int64(3)).Return(&models.MovieDB{ID: 3, OwnerID: 7}, nil)
		m.writer.EXPECT().Delete(gomock.Any(), int64(3)).Return(nil)
		m.publisher.EXPECT().Publish(gomock.Any(), models.EventMovieDeleted, int64(3), int64(7))

		ok, err := svc.DeleteMovie(asUser(7), 3)
		require.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("NotOwner", func(t *testing.T) {
		svc, m := newMovieService(t)
		m.reader.EXPECT().LockByID(gomock.Any(), int64(3)).Return(&models.MovieDB{ID: 3, OwnerID: 7}, nil)

		ok, err := svc.DeleteMovie(asUser(8), 3)
		assert.ErrorIs(t, err, services.ErrAuthorizationDenied)
		assert.False(t, ok)
	})

	t.Run("VanishedBeforeDelete", func(t *testing.T) {
		svc, m := newMovieService(t)
		m.reader.EXPECT().LockByID(gomock.Any(), int64(3)).Return(&models.MovieDB{ID: 3, OwnerID: 7}, nil)
		m.writer.EXPECT().Delete(gomock.Any(), int64(3)).Return(repositories.ErrNotFound)

		_, err := svc.DeleteMovie(asUser(7), 3)
		assert.ErrorIs(t, err, services.ErrNotFound)
	})

	t.Run("Unauthenticated", func(t *testing.T) {
		svc, _ := newMovieService(t)

		_, err := svc.DeleteMovie(context.Background(), 3)
		assert.ErrorIs(t, err, services.ErrAuthenticationRequired)
	})
}
