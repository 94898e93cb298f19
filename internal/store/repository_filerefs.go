package store

import (
	"context"
	"fmt"

	"github.com/avetrin/go-folio/internal/logger"
)

// fileRefRepository is the PostgreSQL-backed implementation of
// [FileRefRepository].
type fileRefRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewFileRefRepository constructs a [FileRefRepository] backed by the
// provided database connection and logger.
func NewFileRefRepository(db *DB, logger *logger.Logger) FileRefRepository {
	logger.Debug().Msg("creating file reference repository")
	return &fileRefRepository{
		db:     db,
		logger: logger,
	}
}

// ListReferencedKeys returns the set of blob object keys referenced by
// certificates, project illustrations, and user avatars.
func (r *fileRefRepository) ListReferencedKeys(ctx context.Context) (map[string]bool, error) {
	log := logger.FromContext(ctx)

	rows, err := r.db.QueryContext(ctx, listReferencedFileKeys)
	if err != nil {
		log.Err(err).Str("func", "*fileRefRepository.ListReferencedKeys").Msg("error: querying referenced keys")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	keys := make(map[string]bool)
	for rows.Next() {
		var key string
		if err = rows.Scan(&key); err != nil {
			log.Err(err).Str("func", "*fileRefRepository.ListReferencedKeys").Msg("error: scanning key")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		keys[key] = true
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return keys, nil
}
