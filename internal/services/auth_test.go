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
	"golang.org/x/crypto/bcrypt"
)

type authMocks struct {
	reader    *services.MockUserReader
	writer    *services.MockUserWriter
	jwt       *services.MockJWTGenerator
	publisher *services.MockEventPublisher
}

func newAuthService(t *testing.T) (*services.AuthService, authMocks) {
	ctrl := gomock.NewController(t)
	m := authMocks{
		reader:    services.NewMockUserReader(ctrl),
		writer:    services.NewMockUserWriter(ctrl),
		jwt:       services.NewMockJWTGenerator(ctrl),
		publisher: services.NewMockEventPublisher(ctrl),
	}
	return services.NewAuthService(m.reader, m.writer, m.jwt, newTx(ctrl), m.publisher), m
}

func hashOf(t *testing.T, password string) string {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return string(hashed)
}

func TestAuthService_GetUser(t *testing.T) {
	t.Run("Found", func(t *testing.T) {
		svc, m := newAuthService(t)
		m.reader.EXPECT().GetByID(gomock.Any(), int64(1)).Return(&models.UserDB{ID: 1, UserName: "alice"}, nil)

		user, err := svc.GetUser(context.Background(), 1)
		require.NoError(t, err)
		assert.Equal(t, "alice", user.UserName)
	})

	t.Run("Absent", func(t *testing.T) {
		svc, m := newAuthService(t)
		m.reader.EXPECT().GetByID(gomock.Any(), int64(2)).Return(nil, nil)

		user, err := svc.GetUser(context.Background(), 2)
		assert.NoError(t, err)
		assert.Nil(t, user)
	})

	t.Run("StorageFailure", func(t *testing.T) {
		svc, m := newAuthService(t)
		m.reader.EXPECT().GetByID(gomock.Any(), int64(3)).Return(nil, errors.New("db down"))

		_, err := svc.GetUser(context.Background(), 3)
		assert.ErrorIs(t, err, services.ErrStorageFailure)
	})
}

func TestAuthService_SignUp(t *testing.T) {
	tests := []struct {
		name     string
		userName string
		email    string
		password string
		setup    func(m authMocks)
		wantErr  error
	}{
		{
			name:     "Success",
			userName: "alice",
			email:    "a@x.io",
			password: "p1",
			setup: func(m authMocks) {
				m.reader.EXPECT().GetByEmail(gomock.Any(), "a@x.io").Return(nil, nil)
				m.writer.EXPECT().
					Save(gomock.Any(), "alice", "a@x.io", gomock.Any()).
					DoAndReturn(func(_ context.Context, userName, email, hash string) (*models.UserDB, error) {
						assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(hash), []byte("p1")))
						return &models.UserDB{ID: 1, UserName: userName, Email: email, PasswordHash: hash}, nil
					})
				m.publisher.EXPECT().Publish(gomock.Any(), models.EventUserSignedUp, int64(1), int64(1))
			},
		},
		{
			name:     "EmailTaken",
			userName: "bob",
			email:    "a@x.io",
			password: "p2",
			setup: func(m authMocks) {
				m.reader.EXPECT().GetByEmail(gomock.Any(), "a@x.io").Return(&models.UserDB{ID: 1}, nil)
			},
			wantErr: services.ErrDuplicateEmail,
		},
		{
			name:     "ConcurrentSignUpWins",
			userName: "bob",
			email:    "a@x.io",
			password: "p2",
			setup: func(m authMocks) {
				m.reader.EXPECT().GetByEmail(gomock.Any(), "a@x.io").Return(nil, nil)
				m.writer.EXPECT().Save(gomock.Any(), "bob", "a@x.io", gomock.Any()).Return(nil, repositories.ErrDuplicate)
			},
			wantErr: services.ErrDuplicateEmail,
		},
		{
			name:     "MissingField",
			userName: "",
			email:    "a@x.io",
			password: "p1",
			setup:    func(authMocks) {},
			wantErr:  services.ErrValidationFailed,
		},
		{
			name:     "StorageFailure",
			userName: "alice",
			email:    "a@x.io",
			password: "p1",
			setup: func(m authMocks) {
				m.reader.EXPECT().GetByEmail(gomock.Any(), "a@x.io").Return(nil, errors.New("db down"))
			},
			wantErr: services.ErrStorageFailure,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, m := newAuthService(t)
			tt.setup(m)

			user, err := svc.SignUp(context.Background(), tt.userName, tt.email, tt.password)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, user)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, int64(1), user.ID)
			assert.NotEqual(t, tt.password, user.PasswordHash)
		})
	}
}

func TestAuthService_Login(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		svc, m := newAuthService(t)
		m.reader.EXPECT().GetByEmail(gomock.Any(), "a@x.io").Return(&models.UserDB{ID: 1, PasswordHash: hashOf(t, "p1")}, nil)
		m.jwt.EXPECT().Generate(gomock.Any(), int64(1)).Return("token", nil)

		token, err := svc.Login(context.Background(), "a@x.io", "p1")
		require.NoError(t, err)
		assert.Equal(t, "token", token)
	})

	t.Run("UnknownEmailAndWrongPasswordFailAlike", func(t *testing.T) {
		svc, m := newAuthService(t)
		m.reader.EXPECT().GetByEmail(gomock.Any(), "nobody@x.io").Return(nil, nil)
		m.reader.EXPECT().GetByEmail(gomock.Any(), "a@x.io").Return(&models.UserDB{ID: 1, PasswordHash: hashOf(t, "p1")}, nil)

		_, unknownErr := svc.Login(context.Background(), "nobody@x.io", "p1")
		_, wrongErr := svc.Login(context.Background(), "a@x.io", "wrong")

		assert.ErrorIs(t, unknownErr, services.ErrInvalidCredentials)
		assert.ErrorIs(t, wrongErr, services.ErrInvalidCredentials)
		assert.Equal(t, unknownErr.Error(), wrongErr.Error())
	})

	t.Run("StorageFailure", func(t *testing.T) {
		svc, m := newAuthService(t)
		m.reader.EXPECT().GetByEmail(gomock.Any(), "a@x.io").Return(nil, errors.New("db down"))

		_, err := svc.Login(context.Background(), "a@x.io", "p1")
		assert.ErrorIs(t, err, services.ErrStorageFailure)
	})
}

func TestAuthService_ChangePassword(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		svc, m := newAuthService(t)
		m.reader.EXPECT().GetByID(gomock.Any(), int64(1)).Return(&models.UserDB{ID: 1}, nil)
		m.writer.EXPECT().
			UpdatePassword(gomock.Any(), int64(1), gomock.Any()).
			DoAndReturn(func(_ context.Context, id int64, hash string) (*models.UserDB, error) {
				assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(hash), []byte("p3")))
				return &models.UserDB{ID: id, PasswordHash: hash}, nil
			})
		m.publisher.EXPECT().Publish(gomock.Any(), models.EventUserPasswordChange, int64(1), int64(1))

		user, err := svc.ChangePassword(asUser(1), 1, "p3")
		require.NoError(t, err)
		assert.Equal(t, int64(1), user.ID)
	})

	t.Run("Unauthenticated", func(t *testing.T) {
		svc, _ := newAuthService(t)

		_, err := svc.ChangePassword(context.Background(), 1, "p3")
		assert.ErrorIs(t, err, services.ErrAuthenticationRequired)
	})

	t.Run("OtherUser", func(t *testing.T) {
		svc, m := newAuthService(t)
		m.reader.EXPECT().GetByID(gomock.Any(), int64(1)).Return(&models.UserDB{ID: 1}, nil)

		_, err := svc.ChangePassword(asUser(2), 1, "p3")
		assert.ErrorIs(t, err, services.ErrAuthorizationDenied)
	})

	t.Run("UnknownUser", func(t *testing.T) {
		svc, m := newAuthService(t)
		m.reader.EXPECT().GetByID(gomock.Any(), int64(9)).Return(nil, nil)

		_, err := svc.ChangePassword(asUser(9), 9, "p3")
		assert.ErrorIs(t, err, services.ErrNotFound)
	})

	t.Run("EmptyPassword", func(t *testing.T) {
		svc, m := newAuthService(t)
		m.reader.EXPECT().GetByID(gomock.Any(), int64(1)).Return(&models.UserDB{ID: 1}, nil)

		_, err := svc.ChangePassword(asUser(1), 1, "")
		assert.ErrorIs(t, err, services.ErrValidationFailed)
	})
}
