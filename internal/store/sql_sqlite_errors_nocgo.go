//go:build !cgo

package store

import "strings"

// Without cgo the driver cannot open databases, so these only see errors
// produced elsewhere.

func isSQLiteUniqueViolation(err error) bool {
	return err != nil && strings.Contains(err.Error(), "UNIQUE constraint failed")
}

func isSQLiteBusy(err error) bool {
	return err != nil && strings.Contains(err.Error(), "database is locked")
}
