package service

import (
	"errors"

	"github.com/MKhiriev/intelli-scan/internal/store"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	methodPassword = "password"
	methodRegister = "register"
	methodGoogle   = "google"
)

var authAttemptsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "intelli_scan_auth_attempts_total",
		Help: "Authentication attempts by method and outcome",
	},
	[]string{"method", "outcome"},
)

func recordAuthOutcome(method string, created bool, err error) {
	authAttemptsTotal.WithLabelValues(method, authOutcome(created, err)).Inc()
}

func authOutcome(created bool, err error) string {
	switch {
	case err == nil && created:
		return "created"
	case err == nil:
		return "success"
	case errors.Is(err, store.ErrUserNotFound):
		return "not_found"
	case errors.Is(err, ErrInvalidCredentials):
		return "invalid_credentials"
	case errors.Is(err, store.ErrEmailAlreadyExists):
		return "email_exists"
	case errors.Is(err, ErrInvalidOAuthState):
		return "invalid_state"
	case errors.Is(err, ErrOAuthExchange):
		return "exchange_failed"
	case errors.Is(err, ErrInvalidDataProvided):
		return "invalid_data"
	default:
		return "error"
	}
}
