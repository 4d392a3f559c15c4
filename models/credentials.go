// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Credentials are the email and plaintext password of a local login attempt.
// They live for the duration of one request and are never persisted or logged.
type Credentials struct {
	Email    string
	Password string
}

// ExternalIdentity is the identity assertion returned by an OAuth provider
// after a successful authorization-code exchange.
type ExternalIdentity struct {
	// Subject is the provider-issued stable user identifier ("sub").
	Subject    string `json:"sub"`
	Email      string `json:"email"`
	GivenName  string `json:"given_name"`
	FamilyName string `json:"family_name"`
}

// AuthResult is the outcome of a successful authentication.
type AuthResult struct {
	User  User
	Token Token

	// Created is set when the attempt created the account (registration or
	// first Google sign-in).
	Created bool
}
