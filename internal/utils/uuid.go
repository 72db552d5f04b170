package utils

import "github.com/google/uuid"

// UUIDGenerator issues identifiers for vault records and keep-both clones.
// Version 7 UUIDs sort by creation time; the random v4 form is the fallback
// when the system clock refuses to cooperate.
type UUIDGenerator struct {
}

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
