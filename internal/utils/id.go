package utils

import "github.com/google/uuid"

// NewID returns a time-ordered identifier (UUIDv7: millisecond timestamp
// followed by random bits).
func NewID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.New().String()
	}
	return id.String()
}
