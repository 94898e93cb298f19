// SPDX-License-Identifier: Apache-2.0

package service

import (
	"context"

	"github.com/avetrin/go-folio/internal/store"
	"github.com/avetrin/go-folio/models"
)

// authorizeRecordAccess loads the addressed record and verifies the caller
// owns it. Every read, update, and delete of an owner-scoped record funnels
// through here, so an ownership check can never be forgotten per-resource.
//
// Returns:
//   - [ErrIdentityRequired] when callerID is not a valid user id.
//   - [store.ErrRecordNotFound] when no record has the given id.
//   - [ErrOwnershipMismatch] when the record belongs to another user.
func authorizeRecordAccess[T models.Owned](ctx context.Context, repo store.RecordRepository[T], callerID, recordID int64) (T, error) {
	var zero T

	if callerID <= 0 {
		return zero, ErrIdentityRequired
	}

	record, err := repo.GetByID(ctx, recordID)
	if err != nil {
		return zero, err
	}

	if record.OwnerID() != callerID {
		return zero, ErrOwnershipMismatch
	}

	return record, nil
}
