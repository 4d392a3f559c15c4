package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/intelli-scan/internal/validators"
	"github.com/MKhiriev/intelli-scan/models"
)

// AuthValidationService checks request payloads before they reach the
// wrapped AuthService.
type AuthValidationService struct {
	inner     AuthService
	validator validators.Validator
}

func NewAuthValidationService(validator validators.Validator) AuthServiceWrapper {
	return &AuthValidationService{validator: validator}
}

func (v *AuthValidationService) Register(ctx context.Context, req models.RegisterRequest) (models.AuthResult, error) {
	if err := v.validator.Validate(ctx, req); err != nil {
		recordAuthOutcome(methodRegister, false, ErrInvalidDataProvided)
		return models.AuthResult{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	return v.inner.Register(ctx, req)
}

func (v *AuthValidationService) Login(ctx context.Context, credentials models.Credentials) (models.AuthResult, error) {
	req := models.LoginRequest{Email: credentials.Email, Password: credentials.Password}
	if err := v.validator.Validate(ctx, req); err != nil {
		recordAuthOutcome(methodPassword, false, ErrInvalidDataProvided)
		return models.AuthResult{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	return v.inner.Login(ctx, credentials)
}

func (v *AuthValidationService) OAuthLoginURL(ctx context.Context) (string, error) {
	return v.inner.OAuthLoginURL(ctx)
}

func (v *AuthValidationService) OAuthCallback(ctx context.Context, code, state string) (models.AuthResult, error) {
	return v.inner.OAuthCallback(ctx, code, state)
}

func (v *AuthValidationService) ParseToken(ctx context.Context, token string) (int64, error) {
	return v.inner.ParseToken(ctx, token)
}

func (v *AuthValidationService) Wrap(inner AuthService) AuthService {
	v.inner = inner
	return v
}

// UserValidationService checks update payloads before they reach the
// wrapped UserService.
type UserValidationService struct {
	inner     UserService
	validator validators.Validator
}

func NewUserValidationService(validator validators.Validator) UserServiceWrapper {
	return &UserValidationService{validator: validator}
}

func (v *UserValidationService) GetUser(ctx context.Context, userID int64) (models.User, error) {
	return v.inner.GetUser(ctx, userID)
}

func (v *UserValidationService) UpdateUser(ctx context.Context, userID int64, req models.UpdateUserRequest) (models.User, error) {
	if err := v.validator.Validate(ctx, req); err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	return v.inner.UpdateUser(ctx, userID, req)
}

func (v *UserValidationService) DeleteUser(ctx context.Context, userID int64) error {
	return v.inner.DeleteUser(ctx, userID)
}

func (v *UserValidationService) Wrap(inner UserService) UserService {
	v.inner = inner
	return v
}
