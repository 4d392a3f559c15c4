package utils

import "github.com/google/uuid"

// UUIDGenerator produces time-ordered (v7) identifiers, falling back to a
// random v4 when the clock source fails.
type UUIDGenerator struct{}

func NewUUIDGenerator() *UUIDGenerator {
	return &UUIDGenerator{}
}

// Generate returns a new identifier in canonical string form.
func (g *UUIDGenerator) Generate() string {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}

	return v7.String()
}
