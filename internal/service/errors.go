package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")

	// ErrInvalidCredentials covers a wrong password and an account that has
	// no password at all.
	ErrInvalidCredentials = errors.New("wrong user credentials")

	ErrExpiredToken        = errors.New("token is expired")
	ErrInvalidToken        = errors.New("token is invalid")
	ErrTokenCreationFailed = errors.New("token creation failed")

	// ErrAuthentication wraps unexpected storage and signing failures. Its
	// message is the only thing a caller gets to see.
	ErrAuthentication = errors.New("authentication failed")

	ErrInvalidOAuthState = errors.New("invalid oauth state")
	ErrOAuthExchange     = errors.New("oauth code exchange failed")
	ErrOAuthDisabled     = errors.New("google sign-in is not configured")

	ErrVersionIsNotSpecified = errors.New("app version is not specified")
)
