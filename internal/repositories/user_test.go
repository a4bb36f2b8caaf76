package repositories

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var userRowColumns = []string{"id", "username", "email", "password"}

func TestUserReadRepository_GetByEmail(t *testing.T) {
	tests := []struct {
		name      string
		mockSetup func(m sqlmock.Sqlmock)
		wantID    int64
		wantNil   bool
		wantErr   bool
	}{
		{
			name: "Found",
			mockSetup: func(m sqlmock.Sqlmock) {
				m.ExpectQuery(`SELECT id, username, email, password\s+FROM users\s+WHERE email = \$1`).
					WithArgs("alice@example.com").
					WillReturnRows(sqlmock.NewRows(userRowColumns).AddRow(1, "alice", "alice@example.com", "hash"))
			},
			wantID: 1,
		},
		{
			name: "NotFound",
			mockSetup: func(m sqlmock.Sqlmock) {
				m.ExpectQuery(`FROM users\s+WHERE email = \$1`).
					WithArgs("alice@example.com").
					WillReturnRows(sqlmock.NewRows(userRowColumns))
			},
			wantNil: true,
		},
		{
			name: "DBError",
			mockSetup: func(m sqlmock.Sqlmock) {
				m.ExpectQuery(`FROM users\s+WHERE email = \$1`).
					WithArgs("alice@example.com").
					WillReturnError(errors.New("db down"))
			},
			wantNil: true,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock := newMockDB(t)
			tt.mockSetup(mock)

			user, err := NewUserReadRepository(db).GetByEmail(context.Background(), "alice@example.com")
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			if tt.wantNil {
				assert.Nil(t, user)
			} else {
				require.NotNil(t, user)
				assert.Equal(t, tt.wantID, user.ID)
				assert.Equal(t, "alice", user.UserName)
				assert.Equal(t, "hash", user.PasswordHash)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestUserReadRepository_GetByID(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectQuery(`FROM users\s+WHERE id = \$1`).
		WithArgs(int64(3)).
		WillReturnRows(sqlmock.NewRows(userRowColumns).AddRow(3, "carol", "carol@example.com", "hash"))

	user, err := NewUserReadRepository(db).GetByID(context.Background(), 3)
	require.NoError(t, err)
	require.NotNil(t, user)
	assert.Equal(t, "carol@example.com", user.Email)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserWriteRepository_Save(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		db, mock := newMockDB(t)

		mock.ExpectQuery(`INSERT INTO users \(username, email, password\)\s+VALUES \(\$1, \$2, \$3\)\s+RETURNING`).
			WithArgs("alice", "alice@example.com", "hash").
			WillReturnRows(sqlmock.NewRows(userRowColumns).AddRow(1, "alice", "alice@example.com", "hash"))

		user, err := NewUserWriteRepository(db).Save(context.Background(), "alice", "alice@example.com", "hash")
		require.NoError(t, err)
		assert.Equal(t, int64(1), user.ID)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("UniqueViolation", func(t *testing.T) {
		db, mock := newMockDB(t)

		mock.ExpectQuery(`INSERT INTO users`).
			WithArgs("alice", "alice@example.com", "hash").
			WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "users_email_key"})

		user, err := NewUserWriteRepository(db).Save(context.Background(), "alice", "alice@example.com", "hash")
		assert.ErrorIs(t, err, ErrDuplicate)
		assert.Nil(t, user)
	})

	t.Run("DBError", func(t *testing.T) {
		db, mock := newMockDB(t)

		mock.ExpectQuery(`INSERT INTO users`).
			WithArgs("alice", "alice@example.com", "hash").
			WillReturnError(errors.New("db down"))

		_, err := NewUserWriteRepository(db).Save(context.Background(), "alice", "alice@example.com", "hash")
		assert.Error(t, err)
		assert.NotErrorIs(t, err, ErrDuplicate)
	})
}

func TestUserWriteRepository_UpdatePassword(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		db, mock := newMockDB(t)

		mock.ExpectQuery(`UPDATE users\s+SET password = \$1\s+WHERE id = \$2`).
			WithArgs("newhash", int64(1)).
			WillReturnRows(sqlmock.NewRows(userRowColumns).AddRow(1, "alice", "alice@example.com", "newhash"))

		user, err := NewUserWriteRepository(db).UpdatePassword(context.Background(), 1, "newhash")
		require.NoError(t, err)
		assert.Equal(t, "newhash", user.PasswordHash)
	})

	t.Run("NotFound", func(t *testing.T) {
		db, mock := newMockDB(t)

		mock.ExpectQuery(`UPDATE users`).
			WithArgs("newhash", int64(9)).
			WillReturnRows(sqlmock.NewRows(userRowColumns))

		_, err := NewUserWriteRepository(db).UpdatePassword(context.Background(), 9, "newhash")
		assert.ErrorIs(t, err, ErrNotFound)
	})
}
