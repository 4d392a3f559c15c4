package service

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/MKhiriev/intelli-scan/internal/adapter"
	"github.com/MKhiriev/intelli-scan/internal/config"
	"github.com/MKhiriev/intelli-scan/internal/crypto"
	"github.com/MKhiriev/intelli-scan/internal/logger"
	"github.com/MKhiriev/intelli-scan/internal/store"
	"github.com/MKhiriev/intelli-scan/models"
)

const stateLength = 32

// authService is the concrete implementation of AuthService.
type authService struct {
	userRepository store.UserRepository
	stateStore     store.StateStore

	hasher crypto.PasswordHasher
	tokens TokenService

	// provider is nil when Google sign-in is not configured.
	provider adapter.OAuthProvider

	tokenDuration time.Duration
	stateTTL      time.Duration

	// random is the entropy source for OAuth states.
	random io.Reader

	logger *logger.Logger
}

// NewAuthService constructs an AuthService. provider may be nil, in which
// case the Google sign-in operations fail with ErrOAuthDisabled.
//
// The returned service is safe for concurrent use; all state is read-only
// after construction.
func NewAuthService(
	userRepository store.UserRepository,
	stateStore store.StateStore,
	hasher crypto.PasswordHasher,
	tokens TokenService,
	provider adapter.OAuthProvider,
	cfg config.StructuredConfig,
	logger *logger.Logger,
) AuthService {
	return &authService{
		userRepository: userRepository,
		stateStore:     stateStore,
		hasher:         hasher,
		tokens:         tokens,
		provider:       provider,
		tokenDuration:  cfg.Auth.TokenDuration,
		stateTTL:       cfg.OAuth.StateTTL,
		random:         rand.Reader,
		logger:         logger,
	}
}

// Register creates a local account and logs it in.
//
// Returns store.ErrEmailAlreadyExists (wrapped) when the email is taken,
// including when a concurrent registration wins the insert.
func (a *authService) Register(ctx context.Context, req models.RegisterRequest) (result models.AuthResult, err error) {
	defer func() { recordAuthOutcome(methodRegister, result.Created, err) }()

	log := logger.FromContext(ctx)

	digest, err := a.hasher.Hash(req.Password)
	if err != nil {
		log.Err(err).Str("func", "authService.Register").Msg("error hashing password")
		return models.AuthResult{}, fmt.Errorf("%w: %w", ErrAuthentication, err)
	}

	user, err := a.userRepository.CreateUser(ctx, models.User{
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: &digest,
	})
	if err != nil {
		if errors.Is(err, store.ErrEmailAlreadyExists) {
			log.Info().Str("func", "authService.Register").Str("email", req.Email).Msg("email already registered")
			return models.AuthResult{}, fmt.Errorf("registration rejected: %w", err)
		}
		log.Err(err).Str("func", "authService.Register").Str("email", req.Email).Msg("user creation ended with error")
		return models.AuthResult{}, fmt.Errorf("%w: %w", ErrAuthentication, err)
	}

	return a.authenticated(ctx, user, true)
}

// Login verifies a local password.
//
// Returns:
//   - store.ErrUserNotFound (wrapped) for an unknown email;
//   - ErrInvalidCredentials for a wrong password or a Google-only account;
//   - ErrAuthentication for storage or signing failures.
func (a *authService) Login(ctx context.Context, credentials models.Credentials) (result models.AuthResult, err error) {
	defer func() { recordAuthOutcome(methodPassword, false, err) }()

	log := logger.FromContext(ctx)

	user, err := a.userRepository.FindUserByEmail(ctx, credentials.Email)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			log.Info().Str("func", "authService.Login").Str("email", credentials.Email).Msg("unknown email")
			return models.AuthResult{}, fmt.Errorf("login rejected: %w", err)
		}
		log.Err(err).Str("func", "authService.Login").Str("email", credentials.Email).Msg("user search by email failed")
		return models.AuthResult{}, fmt.Errorf("%w: %w", ErrAuthentication, err)
	}

	if !user.HasPassword() {
		log.Info().Str("func", "authService.Login").Int64("user_id", user.ID).Msg("account has no password")
		return models.AuthResult{}, ErrInvalidCredentials
	}

	if !a.hasher.Verify(credentials.Password, *user.PasswordHash) {
		log.Info().Str("func", "authService.Login").Int64("user_id", user.ID).Msg("wrong password")
		return models.AuthResult{}, ErrInvalidCredentials
	}

	return a.authenticated(ctx, user, false)
}

// OAuthLoginURL implements AuthService.
func (a *authService) OAuthLoginURL(ctx context.Context) (string, error) {
	log := logger.FromContext(ctx)

	if a.provider == nil {
		return "", ErrOAuthDisabled
	}

	state, err := a.newState()
	if err != nil {
		log.Err(err).Str("func", "authService.OAuthLoginURL").Msg("error generating state")
		return "", fmt.Errorf("%w: %w", ErrAuthentication, err)
	}

	if err = a.stateStore.SaveState(ctx, state, a.stateTTL); err != nil {
		log.Err(err).Str("func", "authService.OAuthLoginURL").Msg("error saving state")
		return "", fmt.Errorf("%w: %w", ErrAuthentication, err)
	}

	return a.provider.AuthCodeURL(state), nil
}

// OAuthCallback implements AuthService. The steps run in a fixed order:
// state, code exchange, lookup by subject, lookup by email, create.
func (a *authService) OAuthCallback(ctx context.Context, code, state string) (result models.AuthResult, err error) {
	defer func() { recordAuthOutcome(methodGoogle, result.Created, err) }()

	log := logger.FromContext(ctx)

	if a.provider == nil {
		return models.AuthResult{}, ErrOAuthDisabled
	}

	if state == "" {
		return models.AuthResult{}, ErrInvalidOAuthState
	}
	if err = a.stateStore.ConsumeState(ctx, state); err != nil {
		if errors.Is(err, store.ErrStateNotFound) {
			log.Info().Str("func", "authService.OAuthCallback").Msg("unknown or reused oauth state")
			return models.AuthResult{}, fmt.Errorf("%w: %w", ErrInvalidOAuthState, err)
		}
		log.Err(err).Str("func", "authService.OAuthCallback").Msg("error consuming oauth state")
		return models.AuthResult{}, fmt.Errorf("%w: %w", ErrAuthentication, err)
	}

	if code == "" {
		return models.AuthResult{}, fmt.Errorf("%w: empty authorization code", ErrOAuthExchange)
	}
	identity, err := a.provider.Exchange(ctx, code)
	if err != nil {
		log.Err(err).Str("func", "authService.OAuthCallback").Msg("provider exchange failed")
		return models.AuthResult{}, fmt.Errorf("%w: %w", ErrOAuthExchange, err)
	}

	user, err := a.userRepository.FindUserByExternalID(ctx, identity.Subject)
	if err == nil {
		return a.authenticated(ctx, user, false)
	}
	if !errors.Is(err, store.ErrUserNotFound) {
		log.Err(err).Str("func", "authService.OAuthCallback").Msg("user search by google id failed")
		return models.AuthResult{}, fmt.Errorf("%w: %w", ErrAuthentication, err)
	}

	existing, err := a.userRepository.FindUserByEmail(ctx, identity.Email)
	if err == nil {
		log.Info().Str("func", "authService.OAuthCallback").Int64("user_id", existing.ID).
			Msg("google account email belongs to another user")
		return models.AuthResult{}, fmt.Errorf("google sign-in rejected: %w", store.ErrEmailAlreadyExists)
	}
	if !errors.Is(err, store.ErrUserNotFound) {
		log.Err(err).Str("func", "authService.OAuthCallback").Msg("user search by email failed")
		return models.AuthResult{}, fmt.Errorf("%w: %w", ErrAuthentication, err)
	}

	subject := identity.Subject
	created, err := a.userRepository.CreateUser(ctx, models.User{
		Name:     strings.TrimSpace(identity.GivenName + " " + identity.FamilyName),
		Email:    identity.Email,
		GoogleID: &subject,
	})
	if err != nil {
		if errors.Is(err, store.ErrEmailAlreadyExists) {
			return models.AuthResult{}, fmt.Errorf("google sign-in rejected: %w", err)
		}
		log.Err(err).Str("func", "authService.OAuthCallback").Msg("user creation ended with error")
		return models.AuthResult{}, fmt.Errorf("%w: %w", ErrAuthentication, err)
	}

	return a.authenticated(ctx, created, true)
}

// ParseToken implements AuthService.
func (a *authService) ParseToken(ctx context.Context, token string) (int64, error) {
	return a.tokens.Validate(token)
}

func (a *authService) authenticated(ctx context.Context, user models.User, created bool) (models.AuthResult, error) {
	token, err := a.tokens.Issue(user.ID, a.tokenDuration)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "authService.authenticated").Int64("user_id", user.ID).
			Msg("error issuing token")
		return models.AuthResult{}, fmt.Errorf("%w: %w", ErrAuthentication, err)
	}

	return models.AuthResult{User: user, Token: token, Created: created}, nil
}

func (a *authService) newState() (string, error) {
	b := make([]byte, stateLength)
	if _, err := io.ReadFull(a.random, b); err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(b), nil
}
