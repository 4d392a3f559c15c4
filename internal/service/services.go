package service

import (
	"fmt"

	"github.com/MKhiriev/intelli-scan/internal/adapter"
	"github.com/MKhiriev/intelli-scan/internal/config"
	"github.com/MKhiriev/intelli-scan/internal/crypto"
	"github.com/MKhiriev/intelli-scan/internal/logger"
	"github.com/MKhiriev/intelli-scan/internal/store"
	"github.com/MKhiriev/intelli-scan/internal/validators"
)

type Services struct {
	AuthService    AuthService
	UserService    UserService
	TokenService   TokenService
	AppInfoService AppInfoService
}

// NewServices wires the service layer. provider may be nil when Google
// sign-in is not configured.
func NewServices(
	storages *store.Storages,
	hasher crypto.PasswordHasher,
	provider adapter.OAuthProvider,
	validator validators.Validator,
	cfg config.StructuredConfig,
	logger *logger.Logger,
) (*Services, error) {
	appInfoService, err := NewAppInfoService(cfg.App, logger)
	if err != nil {
		return nil, fmt.Errorf("error creating app info service: %w", err)
	}

	tokenService := NewTokenService(cfg.Auth)
	authService := NewAuthService(storages.UserRepository, storages.StateStore, hasher, tokenService, provider, cfg, logger)
	userService := NewUserService(storages.UserRepository, hasher, logger)

	return &Services{
		AuthService:    NewAuthValidationService(validator).Wrap(authService),
		UserService:    NewUserValidationService(validator).Wrap(userService),
		TokenService:   tokenService,
		AppInfoService: appInfoService,
	}, nil
}
