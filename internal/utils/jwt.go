package utils

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/MKhiriev/intelli-scan/models"
	"github.com/golang-jwt/jwt/v5"
)

// GenerateJWTToken creates a signed HMAC-SHA256 JWT token.
//
// The token includes the following standard claims:
//   - Issuer    (iss): identifies the service that issued the token
//   - Subject   (sub): the user ID encoded as a base-10 string
//   - IssuedAt  (iat): now
//   - ExpiresAt (exp): now plus tokenDuration, rounded up to a whole second
//
// A non-positive tokenDuration is accepted and yields a token that is
// already expired. issuer and signKey must be non-empty.
//
// Example usage:
//
//	token, err := utils.GenerateJWTToken("my-service", 42, time.Hour, "secret", time.Now())
func GenerateJWTToken(issuer string, userID int64, tokenDuration time.Duration, signKey string, now time.Time) (models.Token, error) {
	if issuer == "" || signKey == "" {
		return models.Token{}, errors.New("invalid params for generating JWT Token")
	}

	claims := jwt.RegisteredClaims{
		Issuer:    issuer,
		Subject:   strconv.FormatInt(userID, 10),
		ExpiresAt: jwt.NewNumericDate(expiresAt(now, tokenDuration)),
		IssuedAt:  jwt.NewNumericDate(now),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, &claims)
	tokenString, err := token.SignedString([]byte(signKey))
	if err != nil {
		return models.Token{}, fmt.Errorf("error occurred during singing JWT token: %w", err)
	}

	return models.Token{Token: token, RegisteredClaims: claims, SignedString: tokenString, UserID: userID}, nil
}

// expiresAt returns now+ttl. NumericDate truncates to seconds, so a
// positive ttl is rounded up to keep exp after now.
func expiresAt(now time.Time, ttl time.Duration) time.Time {
	exp := now.Add(ttl)
	if ttl <= 0 {
		return exp
	}
	if truncated := exp.Truncate(time.Second); truncated.Before(exp) {
		return truncated.Add(time.Second)
	}
	return exp
}

// ValidateAndParseJWTToken validates the given JWT token string and extracts its claims.
//
// Validation includes:
//   - HMAC signing method and signature verification with tokenSignKey
//   - Issuer (iss) claim check against tokenIssuer
//   - Expiration (exp) check against now(); a token is valid strictly
//     before its expiry
//   - Subject (sub) presence and conversion to an int64 UserID
//
// Errors wrap the jwt/v5 sentinels, so callers can tell expiry apart with
// errors.Is(err, jwt.ErrTokenExpired).
func ValidateAndParseJWTToken(tokenString, tokenSignKey, tokenIssuer string, now func() time.Time) (models.Token, error) {
	if now == nil {
		now = time.Now
	}

	claims := &jwt.RegisteredClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		return []byte(tokenSignKey), nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(tokenIssuer),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(now),
	)
	if err != nil {
		return models.Token{}, fmt.Errorf("error occurred validating and parsing token: %w", err)
	}

	if claims.Subject == "" {
		return models.Token{}, errors.New("empty subject error")
	}

	userID, err := strconv.ParseInt(claims.Subject, 10, 64)
	if err != nil {
		return models.Token{}, fmt.Errorf("error occurred during converting subject to UserIDCtxKey: %w", err)
	}

	return models.Token{Token: token, RegisteredClaims: *claims, SignedString: tokenString, UserID: userID}, nil
}

const bearerScheme = "Bearer"

// ParseBearerToken extracts the token from an "Authorization" header value
// of the form "Bearer <token>".
//
// It returns [ErrMissingCredentials] for an empty header and
// [ErrMalformedCredentials] when the Bearer scheme is absent or the token
// part is empty.
func ParseBearerToken(authorizationHeader string) (string, error) {
	header := strings.TrimSpace(authorizationHeader)
	if header == "" {
		return "", ErrMissingCredentials
	}

	scheme, token, found := strings.Cut(header, " ")
	if !found || scheme != bearerScheme {
		return "", ErrMalformedCredentials
	}

	token = strings.TrimSpace(token)
	if token == "" || strings.Contains(token, " ") {
		return "", ErrMalformedCredentials
	}

	return token, nil
}
