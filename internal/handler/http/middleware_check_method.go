// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// methodNotFound replaces chi's 405 answer with a bare 404, so a caller
// using the wrong method cannot tell an existing route from a missing one.
//
// Routes are matched by exact pattern against the request path. When the
// method turns out to be registered after all, the request is served by
// router as usual.
func methodNotFound(router *chi.Mux) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		for _, route := range router.Routes() {
			if route.Pattern != r.URL.Path {
				continue
			}
			if _, ok := route.Handlers[r.Method]; ok {
				router.ServeHTTP(w, r)
				return
			}
			break
		}

		w.WriteHeader(http.StatusNotFound)
	}
}
