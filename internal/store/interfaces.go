package store

import (
	"context"

	"github.com/avetrin/go-folio/models"
)

// RowScanner abstracts *sql.Row and *sql.Rows for mapper scan functions.
type RowScanner interface {
	Scan(dest ...any) error
}

// RecordRepository is the generic persistence surface for one collection of
// owner-scoped portfolio records. Ownership is NOT enforced here: the
// service-layer guard loads the record and verifies the caller first, so the
// repository deals purely in record ids.
type RecordRepository[T models.Owned] interface {
	// Create inserts the record with its stamped owner and returns the
	// stored representation with server-assigned id and timestamps.
	Create(ctx context.Context, record T) (T, error)

	// ListByOwner returns all records owned by ownerID, newest first.
	// An empty slice is a valid, non-error result.
	ListByOwner(ctx context.Context, ownerID int64) ([]T, error)

	// GetByID returns the record or ErrRecordNotFound.
	GetByID(ctx context.Context, id int64) (T, error)

	// UpdateByID replaces the record's resource fields and returns the
	// updated representation, or ErrRecordNotFound.
	UpdateByID(ctx context.Context, id int64, record T) (T, error)

	// DeleteByID removes the record, or returns ErrRecordNotFound.
	DeleteByID(ctx context.Context, id int64) error
}

// UserRepository handles account persistence: creation, lookup, and
// profile/credential updates against the "users" table.
type UserRepository interface {
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	FindUserByID(ctx context.Context, userID int64) (models.User, error)
	FindUserByEmail(ctx context.Context, email string) (models.User, error)
	FindUserByUsername(ctx context.Context, username string) (models.User, error)
	UpdateProfile(ctx context.Context, user models.User) (models.User, error)
	UpdatePassword(ctx context.Context, userID int64, passwordHash string) error
}

// PasswordResetRepository persists one-time password-reset codes so reset
// state survives restarts and is shared across instances.
type PasswordResetRepository interface {
	// Create stores a new reset row, superseding (consuming) any previous
	// active row for the same email.
	Create(ctx context.Context, reset models.PasswordReset) (models.PasswordReset, error)

	// FindActiveByEmail returns the newest unconsumed, unexpired row for
	// the email, or ErrResetNotFound.
	FindActiveByEmail(ctx context.Context, email string) (models.PasswordReset, error)

	// Consume marks the row spent; a consumed row never validates again.
	Consume(ctx context.Context, id int64) error
}

// FileRefRepository reports every blob object key referenced by any record
// (certificate documents, project illustrations, user avatars). The
// orphaned-blob sweeper diffs this set against the blob store listing.
type FileRefRepository interface {
	ListReferencedKeys(ctx context.Context) (map[string]bool, error)
}
