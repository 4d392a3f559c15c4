package http

import (
	"net/http"

	"github.com/MKhiriev/intelli-scan/internal/app"
	"github.com/MKhiriev/intelli-scan/internal/logger"
	"github.com/MKhiriev/intelli-scan/internal/utils"
)

// auth is an HTTP middleware that enforces bearer token authentication.
//
// It reads the "Authorization" header, extracts the token with
// [utils.ParseBearerToken], validates it via
// [service.AuthService.ParseToken] and on success stores the user id in the
// request context under [utils.UserIDCtxKey].
//
// Every failure (missing header, malformed header, expired or invalid
// token) is answered with the same 403 body, so callers cannot tell them
// apart. The actual reason is logged.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		tokenString, err := utils.ParseBearerToken(r.Header.Get("Authorization"))
		if err != nil {
			log.Warn().Err(err).Msg("request rejected by auth middleware")
			notAuthorized(w, r)
			return
		}

		ctx := r.Context()
		userID, err := h.services.AuthService.ParseToken(ctx, tokenString)
		if err != nil {
			log.Warn().Err(err).Msg("request rejected by auth middleware")
			notAuthorized(w, r)
			return
		}

		next.ServeHTTP(w, r.WithContext(utils.WithUserID(ctx, userID)))
	})
}

func notAuthorized(w http.ResponseWriter, r *http.Request) {
	if _, err := utils.WriteMessage(w, app.MsgNotAuthorized, http.StatusForbidden); err != nil {
		logger.FromRequest(r).Err(err).Msg("error writing response")
	}
}
