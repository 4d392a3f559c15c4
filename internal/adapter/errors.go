package adapter

import "errors"

var (
	ErrOAuthExchange       = errors.New("oauth code exchange failed")
	ErrProviderUnavailable = errors.New("identity provider unavailable")
	ErrIncompleteIdentity  = errors.New("identity provider returned an incomplete profile")
	ErrBadRequest          = errors.New("provider rejected request")
	ErrUnauthorized        = errors.New("provider rejected access token")
)
