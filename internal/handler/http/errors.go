// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// errNoUserIDInContext is returned when a protected handler runs without the
// auth middleware having stored a user id.
var errNoUserIDInContext = errors.New("no user id in request context")
