package pkg

import "github.com/google/uuid"

// NewID returns a globally unique, time-ordered string identifier.
// UUIDv7 values sort by creation time, which keeps insertion order stable
// when ids are used as a tiebreak in listings.
func NewID() (string, error) {
	id, err := uuid.NewV7()
	if err != nil {
		return "", err
	}
	return id.String(), nil
}
