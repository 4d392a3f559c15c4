package http

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/MKhiriev/intelli-scan/internal/app"
	"github.com/MKhiriev/intelli-scan/internal/logger"
	"github.com/MKhiriev/intelli-scan/internal/service"
	"github.com/MKhiriev/intelli-scan/internal/utils"
	"github.com/MKhiriev/intelli-scan/models"
)

func (h *Handler) getUser(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		writeError(w, r, errNoUserIDInContext, "protected route reached without user id")
		return
	}

	user, err := h.services.UserService.GetUser(r.Context(), userID)
	if err != nil {
		writeError(w, r, err, "error loading user")
		return
	}

	if _, err = utils.WriteJSON(w, models.NewUserResponse(user), http.StatusOK); err != nil {
		logger.FromRequest(r).Err(err).Msg("error writing response")
	}
}

func (h *Handler) updateUser(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		writeError(w, r, errNoUserIDInContext, "protected route reached without user id")
		return
	}

	var req models.UpdateUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, r, fmt.Errorf("%w: %w", service.ErrInvalidDataProvided, err), "invalid JSON was passed")
		return
	}

	user, err := h.services.UserService.UpdateUser(r.Context(), userID, req)
	if err != nil {
		writeError(w, r, err, "error updating user")
		return
	}

	logger.FromRequest(r).Info().Int64("user_id", user.ID).Msg("user updated")
	if _, err = utils.WriteJSON(w, models.NewUserResponse(user), http.StatusOK); err != nil {
		logger.FromRequest(r).Err(err).Msg("error writing response")
	}
}

func (h *Handler) deleteUser(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		writeError(w, r, errNoUserIDInContext, "protected route reached without user id")
		return
	}

	if err := h.services.UserService.DeleteUser(r.Context(), userID); err != nil {
		writeError(w, r, err, "error deleting user")
		return
	}

	logger.FromRequest(r).Info().Int64("user_id", userID).Msg("user deleted")
	if _, err := utils.WriteMessage(w, fmt.Sprintf(app.MsgUserDeleted, userID), http.StatusOK); err != nil {
		logger.FromRequest(r).Err(err).Msg("error writing response")
	}
}
