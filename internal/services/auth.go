package services

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-articles-api/internal/logger"
	"github.com/sbilibin2017/gw-articles-api/internal/models"
	"golang.org/x/crypto/bcrypt"
)

// Error variables
var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrUnauthenticated    = errors.New("unauthenticated")
)

// UserReader defines read-only operations for users.
type UserReader interface {
	GetByEmail(ctx context.Context, email string) (*models.UserDB, error)
	GetByID(ctx context.Context, userID uuid.UUID) (*models.UserDB, error)
}

// UserWriter defines write operations for users.
type UserWriter interface {
	Save(ctx context.Context, name, email, passwordHash string) (*models.UserDB, error)
}

// TokenReader defines read-only operations for issued tokens.
type TokenReader interface {
	GetByToken(ctx context.Context, token string) (*models.AuthTokenDB, error)
}

// TokenWriter defines write operations for issued tokens.
type TokenWriter interface {
	Save(ctx context.Context, token string, userID uuid.UUID) error
	Delete(ctx context.Context, token string) (bool, error)
}

// TokenCache caches token -> user id lookups.
type TokenCache interface {
	Get(ctx context.Context, token string) (uuid.UUID, error)
	Set(ctx context.Context, token string, userID uuid.UUID) error
	Delete(ctx context.Context, token string) error
}

// TokenGenerator defines an interface for generating opaque tokens.
type TokenGenerator interface {
	Generate(ctx context.Context) (string, error)
}

// AuthService handles registration, login, logout and token authentication.
type AuthService struct {
	userReader  UserReader
	userWriter  UserWriter
	tokenReader TokenReader
	tokenWriter TokenWriter
	tokenCache  TokenCache
	tokens      TokenGenerator
}

// NewAuthService creates a new AuthService instance.
func NewAuthService(
	userReader UserReader,
	userWriter UserWriter,
	tokenReader TokenReader,
	tokenWriter TokenWriter,
	tokenCache TokenCache,
	tokens TokenGenerator,
) *AuthService {
	return &AuthService{
		userReader:  userReader,
		userWriter:  userWriter,
		tokenReader: tokenReader,
		tokenWriter: tokenWriter,
		tokenCache:  tokenCache,
		tokens:      tokens,
	}
}

// Register validates the input and creates a new user with a hashed password.
func (svc *AuthService) Register(ctx context.Context, name, email, password, passwordConfirmation string) (*models.UserDB, error) {
	if v := validateRegister(name, email, password, passwordConfirmation); v != nil {
		logger.Log.Infow("registration validation failed", "fields", v.Fields)
		return nil, v
	}

	existing, err := svc.userReader.GetByEmail(ctx, email)
	if err != nil {
		logger.Log.Errorw("failed to check user exists", "err", err)
		return nil, err
	}
	if existing != nil {
		logger.Log.Infow("email already registered", "email", email)
		v := models.NewValidationError()
		v.Add("email", "The email has already been taken.")
		return nil, v
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		logger.Log.Errorw("failed to hash password", "err", err)
		return nil, err
	}

	user, err := svc.userWriter.Save(ctx, name, email, string(hashedPassword))
	if err != nil {
		logger.Log.Errorw("failed to save user", "err", err)
		return nil, err
	}

	return user, nil
}

// Login authenticates a user by email and password and issues a fresh opaque
// token. Unknown email and wrong password return the same error.
func (svc *AuthService) Login(ctx context.Context, email, password string) (string, error) {
	if v := validateLogin(email, password); v != nil {
		logger.Log.Infow("login validation failed", "fields", v.Fields)
		return "", v
	}

	user, err := svc.userReader.GetByEmail(ctx, email)
	if err != nil {
		logger.Log.Errorw("failed to get user", "err", err)
		return "", err
	}
	if user == nil {
		logger.Log.Infow("login failed", "email", email)
		return "", ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		logger.Log.Infow("login failed", "email", email)
		return "", ErrInvalidCredentials
	}

	token, err := svc.tokens.Generate(ctx)
	if err != nil {
		logger.Log.Errorw("failed to generate token", "err", err)
		return "", err
	}

	if err := svc.tokenWriter.Save(ctx, token, user.UserID); err != nil {
		logger.Log.Errorw("failed to save token", "err", err)
		return "", err
	}

	if err := svc.tokenCache.Set(ctx, token, user.UserID); err != nil {
		// Cache failures are not fatal: the store remains authoritative.
		logger.Log.Errorw("failed to cache token", "err", err)
	}

	return token, nil
}

// Logout revokes the given token. Subsequent use of the token fails
// authentication.
func (svc *AuthService) Logout(ctx context.Context, token string) error {
	deleted, err := svc.tokenWriter.Delete(ctx, token)
	if err != nil {
		logger.Log.Errorw("failed to delete token", "err", err)
		return err
	}
	if !deleted {
		logger.Log.Infow("logout with unknown token")
		return ErrUnauthenticated
	}

	if err := svc.tokenCache.Delete(ctx, token); err != nil {
		logger.Log.Errorw("failed to invalidate cached token", "err", err)
	}

	return nil
}

// Authenticate resolves a token to its owning user. The cache is consulted
// first; on a miss the token store is the source of truth.
func (svc *AuthService) Authenticate(ctx context.Context, token string) (*models.UserDB, error) {
	userID, err := svc.tokenCache.Get(ctx, token)
	if err != nil {
		record, err := svc.tokenReader.GetByToken(ctx, token)
		if err != nil {
			logger.Log.Errorw("failed to look up token", "err", err)
			return nil, err
		}
		if record == nil {
			return nil, ErrUnauthenticated
		}
		userID = record.UserID

		if err := svc.tokenCache.Set(ctx, token, userID); err != nil {
			logger.Log.Errorw("failed to cache token", "err", err)
		}
	}

	user, err := svc.userReader.GetByID(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to get user", "user_id", userID, "err", err)
		return nil, err
	}
	if user == nil {
		return nil, ErrUnauthenticated
	}

	return user, nil
}
