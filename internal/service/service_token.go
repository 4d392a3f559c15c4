// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/intelli-scan/internal/config"
	"github.com/MKhiriev/intelli-scan/internal/utils"
	"github.com/MKhiriev/intelli-scan/models"
	"github.com/golang-jwt/jwt/v5"
)

// tokenService signs HS256 session tokens with the server secret.
type tokenService struct {
	signKey string
	issuer  string

	// now is the clock used for iat/exp and for expiry checks.
	now func() time.Time
}

// NewTokenService constructs a TokenService from the auth configuration.
func NewTokenService(cfg config.Auth) TokenService {
	return newTokenService(cfg, time.Now)
}

func newTokenService(cfg config.Auth, now func() time.Time) *tokenService {
	return &tokenService{signKey: cfg.TokenSignKey, issuer: cfg.TokenIssuer, now: now}
}

// Issue implements TokenService.
func (s *tokenService) Issue(subjectID int64, ttl time.Duration) (models.Token, error) {
	token, err := utils.GenerateJWTToken(s.issuer, subjectID, ttl, s.signKey, s.now())
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

// Validate implements TokenService. A token is valid strictly before exp.
func (s *tokenService) Validate(tokenString string) (int64, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, s.signKey, s.issuer, s.now)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return 0, fmt.Errorf("%w: %w", ErrExpiredToken, err)
		}
		return 0, fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}

	return token.UserID, nil
}
