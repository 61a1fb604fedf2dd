package usecase

import "github.com/google/uuid"

// IDGenerator is a function type for generating unique IDs.
type IDGenerator func() string

// NewUUIDGenerator returns an IDGenerator backed by random UUIDs.
func NewUUIDGenerator() IDGenerator {
	return uuid.NewString
}
