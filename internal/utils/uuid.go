package utils

import "github.com/google/uuid"

// NewObjectKey returns a time-sortable unique identifier used as a blob
// store object key. UUIDv7 keeps object listings roughly chronological;
// on the (unlikely) failure of the v7 source it falls back to a random v4.
func NewObjectKey() string {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}

	return v7.String()
}
