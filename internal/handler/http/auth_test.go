// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"net/http"
	"testing"

	"github.com/MKhiriev/intelli-scan/internal/app"
	"github.com/MKhiriev/intelli-scan/internal/config"
	"github.com/MKhiriev/intelli-scan/internal/service"
	"github.com/MKhiriev/intelli-scan/internal/store"
	"github.com/MKhiriev/intelli-scan/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func authResult(id int64, name string, created bool) models.AuthResult {
	return models.AuthResult{
		User:    models.User{ID: id, Name: name},
		Token:   models.Token{SignedString: "signed.jwt.token"},
		Created: created,
	}
}

func TestRegister(t *testing.T) {
	validBody := `{"name":"Alice","email":"alice@example.com","password":"secret-pw"}`

	tests := []struct {
		name        string
		body        string
		result      models.AuthResult
		err         error
		callService bool
		wantStatus  int
		wantMessage string
	}{
		{
			name:        "created",
			body:        validBody,
			result:      authResult(1, "Alice", true),
			callService: true,
			wantStatus:  http.StatusCreated,
			wantMessage: "User Alice was created",
		},
		{
			name:        "email already exists",
			body:        validBody,
			err:         store.ErrEmailAlreadyExists,
			callService: true,
			wantStatus:  http.StatusBadRequest,
			wantMessage: app.MsgEmailAlreadyExists,
		},
		{
			name:        "invalid data",
			body:        `{"name":"Alice","email":"nope","password":"x"}`,
			err:         service.ErrInvalidDataProvided,
			callService: true,
			wantStatus:  http.StatusBadRequest,
			wantMessage: app.MsgInvalidDataProvided,
		},
		{
			name:        "storage failure is hidden",
			body:        validBody,
			err:         errors.Join(service.ErrAuthentication, errors.New("pq: connection refused")),
			callService: true,
			wantStatus:  http.StatusInternalServerError,
			wantMessage: app.MsgInternalServerError,
		},
		{
			name:        "malformed JSON",
			body:        `{"name":`,
			wantStatus:  http.StatusBadRequest,
			wantMessage: app.MsgInvalidDataProvided,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, m := newMockedHandler(t, config.Server{})
			if tt.callService {
				m.auth.EXPECT().Register(gomock.Any(), gomock.Any()).Return(tt.result, tt.err)
			}

			rec := doRequest(t, h.Init(), http.MethodPost, "/api/user", tt.body, nil)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
			if tt.wantStatus == http.StatusCreated {
				resp := decodeAuth(t, rec)
				assert.Equal(t, tt.wantMessage, resp.Message)
				assert.Equal(t, int64(1), resp.UserID)
				assert.Equal(t, "signed.jwt.token", resp.AuthToken)
				return
			}
			assert.Equal(t, tt.wantMessage, decodeMessage(t, rec))
			assert.NotContains(t, rec.Body.String(), "connection refused")
		})
	}
}

func TestRegister_PassesDecodedRequest(t *testing.T) {
	h, m := newMockedHandler(t, config.Server{})
	want := models.RegisterRequest{Name: "Alice", Email: "alice@example.com", Password: "secret-pw"}
	m.auth.EXPECT().Register(gomock.Any(), want).Return(authResult(1, "Alice", true), nil)

	rec := doRequest(t, h.Init(), http.MethodPost, "/api/user",
		`{"name":"Alice","email":"alice@example.com","password":"secret-pw"}`, nil)
	assert.Equal(t, http.StatusCreated, rec.Code)
}

func TestLogin(t *testing.T) {
	body := `{"email":"bob@example.com","password":"pw-123456"}`

	tests := []struct {
		name        string
		err         error
		wantStatus  int
		wantMessage string
	}{
		{"success", nil, http.StatusOK, "Logged in as Bob"},
		{"unknown email", store.ErrUserNotFound, http.StatusNotFound, app.MsgUserDoesNotExist},
		{"wrong password", service.ErrInvalidCredentials, http.StatusUnauthorized, app.MsgWrongCredentials},
		{"invalid data", service.ErrInvalidDataProvided, http.StatusBadRequest, app.MsgInvalidDataProvided},
		{"internal", service.ErrAuthentication, http.StatusInternalServerError, app.MsgInternalServerError},
	}

	for _, tt := range tests {
		for _, path := range []string{"/api/login", "/login"} {
			t.Run(tt.name+" "+path, func(t *testing.T) {
				h, m := newMockedHandler(t, config.Server{})
				creds := models.Credentials{Email: "bob@example.com", Password: "pw-123456"}
				result := models.AuthResult{}
				if tt.err == nil {
					result = authResult(4, "Bob", false)
				}
				m.auth.EXPECT().Login(gomock.Any(), creds).Return(result, tt.err)

				rec := doRequest(t, h.Init(), http.MethodPost, path, body, nil)

				require.Equal(t, tt.wantStatus, rec.Code)
				if tt.err == nil {
					resp := decodeAuth(t, rec)
					assert.Equal(t, tt.wantMessage, resp.Message)
					assert.Equal(t, int64(4), resp.UserID)
					assert.NotEmpty(t, resp.AuthToken)
					return
				}
				assert.Equal(t, tt.wantMessage, decodeMessage(t, rec))
			})
		}
	}
}

func TestLogin_MalformedJSON(t *testing.T) {
	h, _ := newMockedHandler(t, config.Server{})

	rec := doRequest(t, h.Init(), http.MethodPost, "/api/login", "not json", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGoogleLogin(t *testing.T) {
	for _, path := range []string{"/api/google/login", "/oauth/login"} {
		t.Run(path, func(t *testing.T) {
			h, m := newMockedHandler(t, config.Server{})
			m.auth.EXPECT().OAuthLoginURL(gomock.Any()).Return("https://accounts.google.com/o/oauth2/auth?state=abc", nil)

			rec := doRequest(t, h.Init(), http.MethodGet, path, "", nil)

			assert.Equal(t, http.StatusFound, rec.Code)
			assert.Equal(t, "https://accounts.google.com/o/oauth2/auth?state=abc", rec.Header().Get("Location"))
		})
	}
}

func TestGoogleLogin_Disabled(t *testing.T) {
	h, m := newMockedHandler(t, config.Server{})
	m.auth.EXPECT().OAuthLoginURL(gomock.Any()).Return("", service.ErrOAuthDisabled)

	rec := doRequest(t, h.Init(), http.MethodGet, "/api/google/login", "", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, app.MsgOAuthDisabled, decodeMessage(t, rec))
}

func TestGoogleCallback(t *testing.T) {
	tests := []struct {
		name        string
		result      models.AuthResult
		err         error
		wantStatus  int
		wantMessage string
	}{
		{"first sign-in", authResult(21, "Alice Smith", true), nil, http.StatusCreated, "Logged in as Alice Smith"},
		{"returning user", authResult(21, "Alice Smith", false), nil, http.StatusOK, "Logged in as Alice Smith"},
		{"email collision", models.AuthResult{}, store.ErrEmailAlreadyExists, http.StatusBadRequest, app.MsgEmailAlreadyExists},
		{"invalid state", models.AuthResult{}, service.ErrInvalidOAuthState, http.StatusBadRequest, app.MsgInvalidOAuthState},
		{"exchange failure", models.AuthResult{}, service.ErrOAuthExchange, http.StatusBadGateway, app.MsgOAuthExchangeFailed},
		{"internal", models.AuthResult{}, service.ErrAuthentication, http.StatusInternalServerError, app.MsgInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, m := newMockedHandler(t, config.Server{})
			m.auth.EXPECT().OAuthCallback(gomock.Any(), "the-code", "the-state").Return(tt.result, tt.err)

			rec := doRequest(t, h.Init(), http.MethodGet, "/api/google/auth/callback?code=the-code&state=the-state", "", nil)

			require.Equal(t, tt.wantStatus, rec.Code)
			if tt.err == nil {
				resp := decodeAuth(t, rec)
				assert.Equal(t, tt.wantMessage, resp.Message)
				assert.Equal(t, int64(21), resp.UserID)
				return
			}
			assert.Equal(t, tt.wantMessage, decodeMessage(t, rec))
		})
	}
}

func TestGoogleCallback_Alias(t *testing.T) {
	h, m := newMockedHandler(t, config.Server{})
	m.auth.EXPECT().OAuthCallback(gomock.Any(), "c", "s").Return(authResult(1, "A", false), nil)

	rec := doRequest(t, h.Init(), http.MethodGet, "/oauth/callback?code=c&state=s", "", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
}
