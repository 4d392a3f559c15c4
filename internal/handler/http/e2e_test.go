package http

import (
	"context"
	"net/http"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/MKhiriev/intelli-scan/internal/app"
	"github.com/MKhiriev/intelli-scan/internal/config"
	"github.com/MKhiriev/intelli-scan/internal/crypto"
	"github.com/MKhiriev/intelli-scan/internal/logger"
	"github.com/MKhiriev/intelli-scan/internal/service"
	"github.com/MKhiriev/intelli-scan/internal/store"
	"github.com/MKhiriev/intelli-scan/internal/validators"
	"github.com/MKhiriev/intelli-scan/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// memoryUsers is a UserRepository keeping accounts in a map.
type memoryUsers struct {
	mu     sync.Mutex
	nextID int64
	users  map[int64]models.User
}

func newMemoryUsers() *memoryUsers {
	return &memoryUsers{users: map[int64]models.User{}}
}

func (m *memoryUsers) find(match func(models.User) bool) (models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, u := range m.users {
		if match(u) {
			return u, nil
		}
	}
	return models.User{}, store.ErrUserNotFound
}

func (m *memoryUsers) FindUserByEmail(_ context.Context, email string) (models.User, error) {
	return m.find(func(u models.User) bool { return u.Email == email })
}

func (m *memoryUsers) FindUserByExternalID(_ context.Context, googleID string) (models.User, error) {
	return m.find(func(u models.User) bool { return u.GoogleID != nil && *u.GoogleID == googleID })
}

func (m *memoryUsers) FindUserByID(_ context.Context, userID int64) (models.User, error) {
	return m.find(func(u models.User) bool { return u.ID == userID })
}

func (m *memoryUsers) CreateUser(_ context.Context, user models.User) (models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, u := range m.users {
		if u.Email == user.Email {
			return models.User{}, store.ErrEmailAlreadyExists
		}
	}
	m.nextID++
	user.ID = m.nextID
	user.CreatedAt = time.Now()
	user.UpdatedAt = user.CreatedAt
	m.users[user.ID] = user
	return user, nil
}

func (m *memoryUsers) SaveUser(_ context.Context, user models.User) (models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.users[user.ID]; !ok {
		return models.User{}, store.ErrUserNotFound
	}
	m.users[user.ID] = user
	return user, nil
}

func (m *memoryUsers) DeleteUser(_ context.Context, userID int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.users[userID]; !ok {
		return store.ErrUserNotFound
	}
	delete(m.users, userID)
	return nil
}

// tamperSignature changes the first signature character, which carries six
// significant bits.
func tamperSignature(token string) string {
	i := strings.LastIndex(token, ".") + 1
	replacement := "A"
	if token[i] == 'A' {
		replacement = "B"
	}
	return token[:i] + replacement + token[i+1:]
}

func newE2ERouter(t *testing.T) http.Handler {
	t.Helper()

	cfg := config.StructuredConfig{
		App: config.App{Version: "1.0.0-test"},
		Auth: config.Auth{
			TokenSignKey:  "e2e-sign-key",
			TokenIssuer:   "intelli-scan",
			TokenDuration: time.Hour,
		},
	}
	storages := &store.Storages{UserRepository: newMemoryUsers(), StateStore: store.NewMemoryStateStore()}
	hasher := crypto.NewPasswordHasher(crypto.Argon2Params{Memory: 1024, Iterations: 1, Threads: 1})

	services, err := service.NewServices(storages, hasher, nil, validators.NewRequestValidator(), cfg, logger.Nop())
	require.NoError(t, err)

	return NewHandler(services, cfg.Server, logger.Nop()).Init()
}

func TestE2E_RegisterLoginAndAccess(t *testing.T) {
	router := newE2ERouter(t)

	rec := doRequest(t, router, http.MethodPost, "/api/user",
		`{"name":"Dana","email":"dana@example.com","password":"dana-secret"}`, nil)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	registered := decodeAuth(t, rec)
	assert.Equal(t, "User Dana was created", registered.Message)
	assert.NotEmpty(t, registered.AuthToken)

	rec = doRequest(t, router, http.MethodPost, "/api/user",
		`{"name":"Dana 2","email":"dana@example.com","password":"other-secret"}`, nil)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, app.MsgEmailAlreadyExists, decodeMessage(t, rec))

	rec = doRequest(t, router, http.MethodPost, "/api/login",
		`{"email":"dana@example.com","password":"wrong-secret"}`, nil)
	require.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = doRequest(t, router, http.MethodPost, "/login",
		`{"email":"nobody@example.com","password":"dana-secret"}`, nil)
	require.Equal(t, http.StatusNotFound, rec.Code)

	rec = doRequest(t, router, http.MethodPost, "/api/login",
		`{"email":"dana@example.com","password":"dana-secret"}`, nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	loggedIn := decodeAuth(t, rec)
	assert.Equal(t, "Logged in as Dana", loggedIn.Message)
	assert.Equal(t, registered.UserID, loggedIn.UserID)

	rec = doRequest(t, router, http.MethodGet, "/api/user", "", bearer(loggedIn.AuthToken))
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Contains(t, rec.Body.String(), `"email":"dana@example.com"`)
	assert.NotContains(t, rec.Body.String(), "argon2id")

	tampered := tamperSignature(loggedIn.AuthToken)
	rec = doRequest(t, router, http.MethodGet, "/api/user", "", bearer(tampered))
	require.Equal(t, http.StatusForbidden, rec.Code)
	assert.Equal(t, app.MsgNotAuthorized, decodeMessage(t, rec))
}

func TestE2E_UpdateAndDelete(t *testing.T) {
	router := newE2ERouter(t)

	rec := doRequest(t, router, http.MethodPost, "/api/user",
		`{"name":"Eve","email":"eve@example.com","password":"eve-secret"}`, nil)
	require.Equal(t, http.StatusCreated, rec.Code)
	token := decodeAuth(t, rec).AuthToken

	rec = doRequest(t, router, http.MethodPut, "/api/user", `{"password":"eve-new-secret"}`, bearer(token))
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	rec = doRequest(t, router, http.MethodPost, "/api/login",
		`{"email":"eve@example.com","password":"eve-secret"}`, nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = doRequest(t, router, http.MethodPost, "/api/login",
		`{"email":"eve@example.com","password":"eve-new-secret"}`, nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = doRequest(t, router, http.MethodPut, "/api/user", `{}`, bearer(token))
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = doRequest(t, router, http.MethodDelete, "/api/user", "", bearer(token))
	require.Equal(t, http.StatusOK, rec.Code)

	// The token is still valid, the account is gone.
	rec = doRequest(t, router, http.MethodGet, "/api/user", "", bearer(token))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestE2E_GoogleSignInDisabled(t *testing.T) {
	router := newE2ERouter(t)

	rec := doRequest(t, router, http.MethodGet, "/oauth/login", "", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = doRequest(t, router, http.MethodGet, "/oauth/callback?code=c&state=s", "", nil)
	assert.NotEqual(t, http.StatusOK, rec.Code)
}

func TestE2E_InvalidRegistration(t *testing.T) {
	router := newE2ERouter(t)

	for _, body := range []string{
		`{"name":"","email":"x@example.com","password":"longenough"}`,
		`{"name":"X","email":"not-an-email","password":"longenough"}`,
		`{"name":"X","email":"x@example.com","password":"short"}`,
	} {
		rec := doRequest(t, router, http.MethodPost, "/api/user", body, nil)
		assert.Equal(t, http.StatusBadRequest, rec.Code, body)
	}
}
