package service

import (
	"context"
	"time"

	"github.com/MKhiriev/intelli-scan/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// TokenService issues and verifies stateless session tokens.
type TokenService interface {
	// Issue signs a token for subjectID valid for ttl. A non-positive ttl
	// yields a token that is already expired.
	Issue(subjectID int64, ttl time.Duration) (models.Token, error)

	// Validate verifies token and returns its subject. Failures are
	// ErrExpiredToken or ErrInvalidToken.
	Validate(token string) (int64, error)
}

// AuthService authenticates callers with a local password or Google sign-in.
type AuthService interface {
	Register(ctx context.Context, req models.RegisterRequest) (models.AuthResult, error)
	Login(ctx context.Context, credentials models.Credentials) (models.AuthResult, error)

	// OAuthLoginURL stores a fresh state and returns the consent page URL.
	OAuthLoginURL(ctx context.Context) (string, error)

	// OAuthCallback consumes state, exchanges code and signs the Google
	// account in. A Google account whose email belongs to another user is
	// rejected with store.ErrEmailAlreadyExists.
	OAuthCallback(ctx context.Context, code, state string) (models.AuthResult, error)

	ParseToken(ctx context.Context, token string) (int64, error)
}

// UserService manages the authenticated caller's own account.
type UserService interface {
	GetUser(ctx context.Context, userID int64) (models.User, error)
	UpdateUser(ctx context.Context, userID int64, req models.UpdateUserRequest) (models.User, error)
	DeleteUser(ctx context.Context, userID int64) error
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}
