package http

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/MKhiriev/intelli-scan/internal/app"
	"github.com/MKhiriev/intelli-scan/internal/logger"
	"github.com/MKhiriev/intelli-scan/internal/service"
	"github.com/MKhiriev/intelli-scan/models"
)

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, r, fmt.Errorf("%w: %w", service.ErrInvalidDataProvided, err), "invalid JSON was passed")
		return
	}

	result, err := h.services.AuthService.Register(ctx, req)
	if err != nil {
		writeError(w, r, err, "user registration failed")
		return
	}

	log.Info().Int64("user_id", result.User.ID).Msg("user registered")
	writeAuthResponse(w, r, result, fmt.Sprintf(app.MsgUserCreated, result.User.Name), http.StatusCreated)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, r, fmt.Errorf("%w: %w", service.ErrInvalidDataProvided, err), "invalid JSON was passed")
		return
	}

	result, err := h.services.AuthService.Login(ctx, req.Credentials())
	if err != nil {
		writeError(w, r, err, "user login failed")
		return
	}

	log.Info().Int64("user_id", result.User.ID).Msg("user successfully logged in")
	writeAuthResponse(w, r, result, fmt.Sprintf(app.MsgLoggedInAs, result.User.Name), http.StatusOK)
}

// googleLogin redirects the browser to the Google consent page.
func (h *Handler) googleLogin(w http.ResponseWriter, r *http.Request) {
	url, err := h.services.AuthService.OAuthLoginURL(r.Context())
	if err != nil {
		writeError(w, r, err, "error preparing google sign-in")
		return
	}

	http.Redirect(w, r, url, http.StatusFound)
}

// googleCallback finishes Google sign-in: 201 when the account was created,
// 200 for a returning user.
func (h *Handler) googleCallback(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)
	query := r.URL.Query()

	if providerErr := query.Get("error"); providerErr != "" {
		log.Warn().Str("error", providerErr).Msg("google returned an error to the callback")
	}

	result, err := h.services.AuthService.OAuthCallback(ctx, query.Get("code"), query.Get("state"))
	if err != nil {
		writeError(w, r, err, "google sign-in failed")
		return
	}

	status := http.StatusOK
	if result.Created {
		status = http.StatusCreated
	}

	log.Info().Int64("user_id", result.User.ID).Bool("created", result.Created).Msg("user signed in with google")
	writeAuthResponse(w, r, result, fmt.Sprintf(app.MsgLoggedInAs, result.User.Name), status)
}
