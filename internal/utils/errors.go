// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import "errors"

// Bearer header errors returned by [ParseBearerToken].
var (
	// ErrMissingCredentials is returned when no "Authorization" value was sent.
	ErrMissingCredentials = errors.New("missing credentials")

	// ErrMalformedCredentials is returned when the value does not follow the
	// "Bearer <token>" form.
	ErrMalformedCredentials = errors.New("malformed credentials")
)
