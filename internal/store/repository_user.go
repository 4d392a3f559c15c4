package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/intelli-scan/internal/logger"
	"github.com/MKhiriev/intelli-scan/models"
	"github.com/jackc/pgerrcode"
)

// userRepository is the database/sql implementation of [UserRepository].
// It handles user account persistence against the "users" table for both
// the pgx and sqlite3 drivers.
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of database interactions.
type userRepository struct {
	logger *logger.Logger
	db     *DB
	now    func() time.Time
}

// NewUserRepository constructs a [UserRepository] backed by the provided
// database connection and logger.
func NewUserRepository(db *DB, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating user repository")
	return &userRepository{
		db:     db,
		logger: logger,
		now:    func() time.Time { return time.Now().UTC() },
	}
}

// CreateUser persists a new user record and returns it with the
// server-assigned ID and timestamps.
//
// Error handling:
//   - unique violation on email or google_id → [ErrEmailAlreadyExists].
//   - any other driver-level error → wrapped [ErrExecutingQuery].
func (r *userRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	now := r.now()
	user.CreatedAt, user.UpdatedAt = now, now

	query, args, err := r.db.buildCreateUserQuery(user)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error building query")
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	created, err := r.queryUser(ctx, query, args...)
	if err != nil {
		if r.db.isUniqueViolation(err) {
			log.Debug().Str("func", "*userRepository.CreateUser").Msg("email or google id already taken")
			return models.User{}, ErrEmailAlreadyExists
		}
		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error creating user")
		return models.User{}, err
	}

	return created, nil
}

// FindUserByEmail returns the user whose email matches exactly.
func (r *userRepository) FindUserByEmail(ctx context.Context, email string) (models.User, error) {
	return r.findUser(ctx, "*userRepository.FindUserByEmail", columnEmail, email)
}

// FindUserByExternalID returns the user linked to the Google subject.
func (r *userRepository) FindUserByExternalID(ctx context.Context, googleID string) (models.User, error) {
	return r.findUser(ctx, "*userRepository.FindUserByExternalID", columnGoogleID, googleID)
}

// FindUserByID returns the user with the given id.
func (r *userRepository) FindUserByID(ctx context.Context, userID int64) (models.User, error) {
	return r.findUser(ctx, "*userRepository.FindUserByID", columnID, userID)
}

// SaveUser overwrites the mutable fields of an existing user and bumps
// updated_at.
func (r *userRepository) SaveUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	user.UpdatedAt = r.now()

	query, args, err := r.db.buildSaveUserQuery(user)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.SaveUser").Msg("error building query")
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	saved, err := r.queryUser(ctx, query, args...)
	switch {
	case err == nil:
		return saved, nil
	case errors.Is(err, ErrUserNotFound):
		return models.User{}, err
	case r.db.isUniqueViolation(err):
		return models.User{}, ErrEmailAlreadyExists
	default:
		log.Err(err).Str("func", "*userRepository.SaveUser").Msg("error saving user")
		return models.User{}, err
	}
}

// DeleteUser removes the user with the given id.
func (r *userRepository) DeleteUser(ctx context.Context, userID int64) error {
	log := logger.FromContext(ctx)

	query, args, err := r.db.buildDeleteUserQuery(userID)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.DeleteUser").Msg("error building query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var result sql.Result
	err = r.db.withRetry(ctx, func() error {
		var execErr error
		result, execErr = r.db.ExecContext(ctx, query, args...)
		return execErr
	})
	if err != nil {
		log.Err(err).Str("func", "*userRepository.DeleteUser").Msg("error executing delete")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if rowsAffected == 0 {
		return ErrUserNotFound
	}

	return nil
}

func (r *userRepository) findUser(ctx context.Context, funcName, column string, value any) (models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.buildFindUserQuery(column, value)
	if err != nil {
		log.Err(err).Str("func", funcName).Msg("error building query")
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	user, err := r.queryUser(ctx, query, args...)
	if err != nil {
		if !errors.Is(err, ErrUserNotFound) {
			log.Err(err).Str("func", funcName).Msg("error finding user")
		}
		return models.User{}, err
	}

	return user, nil
}

// queryUser runs a statement returning one user row. The raw driver error
// stays in the chain so callers can classify constraint violations.
func (r *userRepository) queryUser(ctx context.Context, query string, args ...any) (models.User, error) {
	var user models.User

	err := r.db.withRetry(ctx, func() error {
		row := r.db.QueryRowContext(ctx, query, args...)
		if err := row.Err(); err != nil {
			return err
		}
		return row.Scan(
			&user.ID,
			&user.Name,
			&user.Email,
			&user.PasswordHash,
			&user.GoogleID,
			&user.CreatedAt,
			&user.UpdatedAt,
		)
	})

	switch {
	case err == nil:
		return user, nil
	case errors.Is(err, sql.ErrNoRows), postgresError(err) == pgerrcode.NoDataFound:
		return models.User{}, ErrUserNotFound
	default:
		return models.User{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
}
