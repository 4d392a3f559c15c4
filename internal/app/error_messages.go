// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across the
// intelli-scan server handlers and interceptors.
//
// All Msg* constants are human-readable message strings that are written into
// response bodies to describe the outcome of an operation. Keeping them in
// one place ensures consistent wording across HTTP and gRPC.
package app

const (
	// MsgUserCreated is formatted with the new user's name.
	MsgUserCreated = "User %s was created"

	// MsgLoggedInAs is formatted with the user's name.
	MsgLoggedInAs = "Logged in as %s"

	// MsgUserDeleted is formatted with the deleted user's id.
	MsgUserDeleted = "User with id %d was deleted"

	// MsgEmailAlreadyExists is returned when registration, an account update
	// or a first Google sign-in hits an email that is already taken.
	MsgEmailAlreadyExists = "That email address already exists"

	// MsgUserDoesNotExist is returned when no account matches the request.
	MsgUserDoesNotExist = "This user does not exist"

	// MsgWrongCredentials is returned for a wrong password and for a login
	// attempt on an account without a password.
	MsgWrongCredentials = "Wrong user credentials"

	// MsgNotAuthorized is the only message a caller gets for any bearer
	// token failure.
	MsgNotAuthorized = "not authorized, re-authenticate"

	// MsgInvalidDataProvided is returned when the request body cannot be
	// decoded or fails validation.
	MsgInvalidDataProvided = "invalid data provided"

	// MsgInvalidOAuthState is returned when the OAuth state is unknown,
	// expired or already used.
	MsgInvalidOAuthState = "invalid oauth state, restart sign-in"

	// MsgOAuthExchangeFailed is returned when Google rejected the
	// authorization code or could not be reached.
	MsgOAuthExchangeFailed = "google sign-in failed"

	// MsgOAuthDisabled is returned when Google sign-in is not configured.
	MsgOAuthDisabled = "google sign-in is not available"

	// MsgInternalServerError is returned when an unexpected server-side
	// failure occurs that the client cannot resolve.
	MsgInternalServerError = "internal server error"
)
