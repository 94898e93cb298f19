package models

import "errors"

// ErrValidation is the sentinel wrapped by every field-level validation
// failure reported by model Validate methods. Callers should match it with
// [errors.Is] and treat it as a client error (HTTP 400).
var ErrValidation = errors.New("validation failed")

// Owned is the shape shared by every portfolio resource record: a document
// that belongs to exactly one user. All mutating operations on an Owned
// record must first verify that the caller's identity equals OwnerID.
//
// The interface is implemented with pointer receivers so that SetOwner can
// stamp the owner on freshly decoded records before persistence.
type Owned interface {
	// RecordID returns the server-assigned primary key (0 before creation).
	RecordID() int64

	// OwnerID returns the identifier of the user the record belongs to.
	OwnerID() int64

	// SetOwner stamps the owning user's identifier on the record.
	SetOwner(id int64)

	// Validate normalizes the record in place and reports the first
	// field-level problem wrapped in [ErrValidation].
	Validate() error
}
