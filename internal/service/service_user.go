package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/intelli-scan/internal/crypto"
	"github.com/MKhiriev/intelli-scan/internal/logger"
	"github.com/MKhiriev/intelli-scan/internal/store"
	"github.com/MKhiriev/intelli-scan/models"
)

type userService struct {
	userRepository store.UserRepository
	hasher         crypto.PasswordHasher

	logger *logger.Logger
}

func NewUserService(userRepository store.UserRepository, hasher crypto.PasswordHasher, logger *logger.Logger) UserService {
	return &userService{userRepository: userRepository, hasher: hasher, logger: logger}
}

// GetUser loads the account of userID, store.ErrUserNotFound when it was
// deleted meanwhile.
func (u *userService) GetUser(ctx context.Context, userID int64) (models.User, error) {
	user, err := u.userRepository.FindUserByID(ctx, userID)
	if err != nil {
		if !errors.Is(err, store.ErrUserNotFound) {
			logger.FromContext(ctx).Err(err).Str("func", "userService.GetUser").Int64("user_id", userID).
				Msg("error loading user")
		}
		return models.User{}, fmt.Errorf("error loading user: %w", err)
	}

	return user, nil
}

// UpdateUser applies the non-nil fields of req. A new password is hashed
// before it is stored; a taken email yields store.ErrEmailAlreadyExists.
// An account left with neither a password nor a Google id is not saved.
func (u *userService) UpdateUser(ctx context.Context, userID int64, req models.UpdateUserRequest) (models.User, error) {
	log := logger.FromContext(ctx)

	if req.IsEmpty() {
		return models.User{}, ErrInvalidDataProvided
	}

	user, err := u.GetUser(ctx, userID)
	if err != nil {
		return models.User{}, err
	}

	if req.Name != nil {
		user.Name = *req.Name
	}
	if req.Email != nil {
		user.Email = *req.Email
	}
	if req.Password != nil {
		digest, err := u.hasher.Hash(*req.Password)
		if err != nil {
			log.Err(err).Str("func", "userService.UpdateUser").Msg("error hashing password")
			return models.User{}, fmt.Errorf("error hashing password: %w", err)
		}
		user.PasswordHash = &digest
	}

	if !user.CanLogin() {
		log.Warn().Str("func", "userService.UpdateUser").Int64("user_id", userID).Msg("update would leave account without login")
		return models.User{}, fmt.Errorf("%w: account has no login method", ErrInvalidDataProvided)
	}

	saved, err := u.userRepository.SaveUser(ctx, user)
	if err != nil {
		if !errors.Is(err, store.ErrEmailAlreadyExists) && !errors.Is(err, store.ErrUserNotFound) {
			log.Err(err).Str("func", "userService.UpdateUser").Int64("user_id", userID).Msg("error saving user")
		}
		return models.User{}, fmt.Errorf("error saving user: %w", err)
	}

	return saved, nil
}

// DeleteUser removes the account permanently.
func (u *userService) DeleteUser(ctx context.Context, userID int64) error {
	if err := u.userRepository.DeleteUser(ctx, userID); err != nil {
		if !errors.Is(err, store.ErrUserNotFound) {
			logger.FromContext(ctx).Err(err).Str("func", "userService.DeleteUser").Int64("user_id", userID).
				Msg("error deleting user")
		}
		return fmt.Errorf("error deleting user: %w", err)
	}

	return nil
}
