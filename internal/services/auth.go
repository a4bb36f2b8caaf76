package services

import (
	"context"
	"errors"
	"sync"

	"github.com/sbilibin2017/gw-movie-reviews/internal/logger"
	"github.com/sbilibin2017/gw-movie-reviews/internal/models"
	"github.com/sbilibin2017/gw-movie-reviews/internal/repositories"
	"golang.org/x/crypto/bcrypt"
)

//go:generate mockgen -source=auth.go -destination=mock_auth.go -package=services

// UserReader defines read-only operations for users.
type UserReader interface {
	GetByID(ctx context.Context, id int64) (*models.UserDB, error)
	GetByEmail(ctx context.Context, email string) (*models.UserDB, error)
}

// UserWriter defines write operations for users.
type UserWriter interface {
	Save(ctx context.Context, userName, email, passwordHash string) (*models.UserDB, error)
	UpdatePassword(ctx context.Context, id int64, passwordHash string) (*models.UserDB, error)
}

// JWTGenerator defines an interface for generating JWT tokens.
type JWTGenerator interface {
	Generate(ctx context.Context, userID int64) (string, error)
}

// AuthService handles sign-up, login, password changes and user lookups.
type AuthService struct {
	reader    UserReader
	writer    UserWriter
	jwt       JWTGenerator
	tx        Transactor
	publisher EventPublisher
	hashCost  int
}

// NewAuthService creates a new AuthService instance.
func NewAuthService(reader UserReader, writer UserWriter, jwt JWTGenerator, tx Transactor, publisher EventPublisher) *AuthService {
	return &AuthService{
		reader:    reader,
		writer:    writer,
		jwt:       jwt,
		tx:        tx,
		publisher: publisher,
		hashCost:  bcrypt.DefaultCost,
	}
}

var (
	dummyHashOnce sync.Once
	dummyHash     []byte
)

// compareDummy burns the same bcrypt work as a real comparison so that an
// unknown email cannot be told apart from a wrong password by timing.
func compareDummy(password string) {
	dummyHashOnce.Do(func() {
		dummyHash, _ = bcrypt.GenerateFromPassword([]byte("dummy-password"), bcrypt.DefaultCost)
	})
	_ = bcrypt.CompareHashAndPassword(dummyHash, []byte(password))
}

func (svc *AuthService) hash(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), svc.hashCost)
	if errors.Is(err, bcrypt.ErrPasswordTooLong) {
		return "", newError(ErrValidationFailed, "Password is too long.")
	}
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

// GetUser returns the user with the given id, or nil if there is none.
func (svc *AuthService) GetUser(ctx context.Context, id int64) (*models.UserDB, error) {
	user, err := svc.reader.GetByID(ctx, id)
	if err != nil {
		logger.FromContext(ctx).Errorw("failed to get user", "id", id, "err", err)
		return nil, storageFailure(err)
	}
	return user, nil
}

// SignUp registers a new user. The email must not be taken.
func (svc *AuthService) SignUp(ctx context.Context, userName, email, password string) (*models.UserDB, error) {
	log := logger.FromContext(ctx)

	if userName == "" || email == "" || password == "" {
		return nil, newError(ErrValidationFailed, "User details are incomplete.")
	}

	hashed, err := svc.hash(password)
	if err != nil {
		log.Errorw("failed to hash password", "err", err)
		return nil, err
	}

	var user *models.UserDB
	err = svc.tx.WithinTx(ctx, func(ctx context.Context) error {
		existing, err := svc.reader.GetByEmail(ctx, email)
		if err != nil {
			return storageFailure(err)
		}
		if existing != nil {
			return newError(ErrDuplicateEmail, "Email already exists.")
		}

		user, err = svc.writer.Save(ctx, userName, email, hashed)
		if errors.Is(err, repositories.ErrDuplicate) {
			// lost a race with a concurrent sign-up
			return newError(ErrDuplicateEmail, "Email already exists.")
		}
		if err != nil {
			return storageFailure(err)
		}
		return nil
	})
	if err != nil {
		log.Errorw("failed to sign up user", "email", email, "err", err)
		return nil, passThrough(err)
	}

	svc.publisher.Publish(ctx, models.EventUserSignedUp, user.ID, user.ID)
	return user, nil
}

// Login authenticates a user and returns a JWT token. Unknown emails and
// wrong passwords fail identically.
func (svc *AuthService) Login(ctx context.Context, email, password string) (string, error) {
	log := logger.FromContext(ctx)
	invalid := newError(ErrInvalidCredentials, "Invalid email or password.")

	user, err := svc.reader.GetByEmail(ctx, email)
	if err != nil {
		log.Errorw("failed to get user", "err", err)
		return "", storageFailure(err)
	}
	if user == nil {
		compareDummy(password)
		log.Infow("login failed", "email", email)
		return "", invalid
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		log.Infow("login failed", "email", email)
		return "", invalid
	}

	token, err := svc.jwt.Generate(ctx, user.ID)
	if err != nil {
		log.Errorw("failed to generate JWT", "err", err)
		return "", err
	}

	return token, nil
}

// ChangePassword replaces the password of userID. Only the user itself may do so.
func (svc *AuthService) ChangePassword(ctx context.Context, userID int64, newPassword string) (*models.UserDB, error) {
	log := logger.FromContext(ctx)

	caller, err := requireIdentity(ctx, "change a password")
	if err != nil {
		return nil, err
	}

	var user *models.UserDB
	err = svc.tx.WithinTx(ctx, func(ctx context.Context) error {
		existing, err := svc.reader.GetByID(ctx, userID)
		if err != nil {
			return storageFailure(err)
		}
		if existing == nil {
			return newError(ErrNotFound, "User not found.")
		}
		if err := authorize(caller, existing.ID, "change the password of this user"); err != nil {
			return err
		}
		if newPassword == "" {
			return newError(ErrValidationFailed, "New password must not be empty.")
		}

		hashed, err := svc.hash(newPassword)
		if err != nil {
			return err
		}

		user, err = svc.writer.UpdatePassword(ctx, userID, hashed)
		if errors.Is(err, repositories.ErrNotFound) {
			return newError(ErrNotFound, "User not found.")
		}
		if err != nil {
			return storageFailure(err)
		}
		return nil
	})
	if err != nil {
		log.Errorw("failed to change password", "userID", userID, "err", err)
		return nil, passThrough(err)
	}

	svc.publisher.Publish(ctx, models.EventUserPasswordChange, user.ID, caller.UserID)
	return user, nil
}
