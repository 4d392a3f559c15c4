package http

import (
	"net/http"

	"github.com/MKhiriev/intelli-scan/internal/logger"
	"github.com/MKhiriev/intelli-scan/internal/utils"
	"github.com/MKhiriev/intelli-scan/models"
)

// writeError logs err with the request logger and answers with the status
// and message mapped from it.
func writeError(w http.ResponseWriter, r *http.Request, err error, logMessage string) {
	log := logger.FromRequest(r)
	resp := responseFromError(err)

	if resp.status >= http.StatusInternalServerError {
		log.Err(err).Int("status", resp.status).Msg(logMessage)
	} else {
		log.Warn().Err(err).Int("status", resp.status).Msg(logMessage)
	}

	if _, err := utils.WriteMessage(w, resp.message, resp.status); err != nil {
		log.Err(err).Msg("error writing response")
	}
}

func writeAuthResponse(w http.ResponseWriter, r *http.Request, result models.AuthResult, message string, status int) {
	resp := models.AuthResponse{
		UserID:    result.User.ID,
		Message:   message,
		AuthToken: result.Token.SignedString,
	}

	if _, err := utils.WriteJSON(w, resp, status); err != nil {
		logger.FromRequest(r).Err(err).Msg("error writing response")
	}
}
