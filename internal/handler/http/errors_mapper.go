package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/intelli-scan/internal/app"
	"github.com/MKhiriev/intelli-scan/internal/service"
	"github.com/MKhiriev/intelli-scan/internal/store"
)

type errorResponse struct {
	status  int
	message string
}

// errorResponses is checked in order; the first match wins.
var errorResponses = []struct {
	target error
	errorResponse
}{
	{service.ErrInvalidDataProvided, errorResponse{http.StatusBadRequest, app.MsgInvalidDataProvided}},
	{store.ErrEmailAlreadyExists, errorResponse{http.StatusBadRequest, app.MsgEmailAlreadyExists}},
	{store.ErrUserNotFound, errorResponse{http.StatusNotFound, app.MsgUserDoesNotExist}},
	{service.ErrInvalidCredentials, errorResponse{http.StatusUnauthorized, app.MsgWrongCredentials}},
	{service.ErrInvalidOAuthState, errorResponse{http.StatusBadRequest, app.MsgInvalidOAuthState}},
	{service.ErrOAuthExchange, errorResponse{http.StatusBadGateway, app.MsgOAuthExchangeFailed}},
	{service.ErrOAuthDisabled, errorResponse{http.StatusNotFound, app.MsgOAuthDisabled}},
	{service.ErrExpiredToken, errorResponse{http.StatusForbidden, app.MsgNotAuthorized}},
	{service.ErrInvalidToken, errorResponse{http.StatusForbidden, app.MsgNotAuthorized}},
	{service.ErrAuthentication, errorResponse{http.StatusInternalServerError, app.MsgInternalServerError}},
}

func responseFromError(err error) errorResponse {
	for _, candidate := range errorResponses {
		if errors.Is(err, candidate.target) {
			return candidate.errorResponse
		}
	}
	return errorResponse{http.StatusInternalServerError, app.MsgInternalServerError}
}
