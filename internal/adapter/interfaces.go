// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides clients for the third-party identity providers the
// server delegates sign-in to.
//
// The primary abstraction is [OAuthProvider], which decouples the
// authentication service from the provider's wire protocol. The package
// ships a Google OpenID Connect implementation ([NewGoogleProvider]).
//
// Error values defined in errors.go are returned wrapped, so callers can use
// [errors.Is] regardless of the provider (e.g. [ErrOAuthExchange] for a
// rejected authorization code).
package adapter

import (
	"context"

	"github.com/MKhiriev/intelli-scan/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/oauth_provider_mock.go -package=mock

// OAuthProvider runs the authorization-code flow against an external
// identity provider.
type OAuthProvider interface {
	// AuthCodeURL returns the consent page URL carrying state. The state is
	// echoed back to the redirect URL and must be checked by the caller.
	AuthCodeURL(state string) string

	// Exchange trades the authorization code for tokens and returns the
	// identity asserted by the provider. Any failure is reported wrapped in
	// [ErrOAuthExchange].
	Exchange(ctx context.Context, code string) (models.ExternalIdentity, error)
}
