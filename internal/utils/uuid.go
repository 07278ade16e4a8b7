package utils

import "github.com/google/uuid"

// UUIDGenerator produces request trace ids.
type UUIDGenerator struct{}

func NewUUIDGenerator() *UUIDGenerator {
	return &UUIDGenerator{}
}

// Generate returns a time-ordered UUIDv7 so trace ids sort with the log.
// It falls back to a random v4 when the clock source fails.
func (g *UUIDGenerator) Generate() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}
	return id.String()
}
