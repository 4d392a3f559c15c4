package store

import (
	"context"
	"time"

	"github.com/MKhiriev/intelli-scan/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// UserRepository persists user accounts.
type UserRepository interface {
	FindUserByEmail(ctx context.Context, email string) (models.User, error)
	FindUserByExternalID(ctx context.Context, googleID string) (models.User, error)
	FindUserByID(ctx context.Context, userID int64) (models.User, error)
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	SaveUser(ctx context.Context, user models.User) (models.User, error)
	DeleteUser(ctx context.Context, userID int64) error
}

// StateStore keeps OAuth state parameters between the consent redirect and
// the callback. A state can be consumed once.
type StateStore interface {
	SaveState(ctx context.Context, state string, ttl time.Duration) error
	ConsumeState(ctx context.Context, state string) error

	// PurgeExpired removes expired states and reports how many were removed.
	// Stores with native expiry return zero.
	PurgeExpired(ctx context.Context) (int, error)
}

// ErrorClassificator decides whether a failed database operation may be
// retried.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}
