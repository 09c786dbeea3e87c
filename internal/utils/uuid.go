// Package utils provides small general-purpose helpers shared across the
// application, currently record-identifier generation.
package utils

import "github.com/google/uuid"

// UUIDGenerator mints record identifiers. UUIDv7 is preferred because it is
// time-ordered; when v7 generation fails it falls back to a random v4.
type UUIDGenerator struct{}

func NewUUIDGenerator() *UUIDGenerator {
	return &UUIDGenerator{}
}

func (g *UUIDGenerator) Generate() string {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}

	return v7.String()
}
