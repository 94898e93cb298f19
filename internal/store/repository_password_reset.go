package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/avetrin/go-folio/internal/logger"
	"github.com/avetrin/go-folio/models"
)

// passwordResetRepository is the PostgreSQL-backed implementation of
// [PasswordResetRepository]. Reset codes live in their own table so a
// restart or a second server instance never invalidates an emailed code.
type passwordResetRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewPasswordResetRepository constructs a [PasswordResetRepository] backed
// by the provided database connection and logger.
func NewPasswordResetRepository(db *DB, logger *logger.Logger) PasswordResetRepository {
	logger.Debug().Msg("creating password reset repository")
	return &passwordResetRepository{
		db:     db,
		logger: logger,
	}
}

// Create stores a new reset row. Previous active rows for the same email
// are consumed first, inside one transaction, so at most one code is ever
// valid per account.
func (r *passwordResetRepository) Create(ctx context.Context, reset models.PasswordReset) (models.PasswordReset, error) {
	log := logger.FromContext(ctx)

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", "*passwordResetRepository.Create").Msg("error: beginning transaction")
		return models.PasswordReset{}, fmt.Errorf("unexpected DB error: %w", err)
	}
	defer tx.Rollback()

	if _, err = tx.ExecContext(ctx, consumePasswordResetsForEmail, reset.Email); err != nil {
		log.Err(err).Str("func", "*passwordResetRepository.Create").Msg("error: superseding previous resets")
		return models.PasswordReset{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	row := tx.QueryRowContext(ctx, createPasswordReset, reset.Email, reset.OTPHash, reset.ExpiresAt)
	if err = scanPasswordReset(row, &reset); err != nil {
		log.Err(err).Str("func", "*passwordResetRepository.Create").Msg("error: inserting reset")
		return models.PasswordReset{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	if err = tx.Commit(); err != nil {
		log.Err(err).Str("func", "*passwordResetRepository.Create").Msg("error: committing transaction")
		return models.PasswordReset{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return reset, nil
}

// FindActiveByEmail returns the newest unconsumed, unexpired reset for the
// email, or [ErrResetNotFound].
func (r *passwordResetRepository) FindActiveByEmail(ctx context.Context, email string) (models.PasswordReset, error) {
	log := logger.FromContext(ctx)

	var reset models.PasswordReset
	row := r.db.QueryRowContext(ctx, findActivePasswordReset, email)

	if err := scanPasswordReset(row, &reset); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.PasswordReset{}, ErrResetNotFound
		}
		log.Err(err).Str("func", "*passwordResetRepository.FindActiveByEmail").Msg("error: finding reset")
		return models.PasswordReset{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return reset, nil
}

// Consume marks the reset row spent. Consuming an already consumed or
// missing row reports [ErrResetNotFound].
func (r *passwordResetRepository) Consume(ctx context.Context, id int64) error {
	log := logger.FromContext(ctx)

	result, err := r.db.ExecContext(ctx, consumePasswordReset, id)
	if err != nil {
		log.Err(err).Str("func", "*passwordResetRepository.Consume").Msg("error: consuming reset")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrResetNotFound
	}

	return nil
}

func scanPasswordReset(row RowScanner, reset *models.PasswordReset) error {
	return row.Scan(
		&reset.ID,
		&reset.Email,
		&reset.OTPHash,
		&reset.ExpiresAt,
		&reset.Consumed,
		&reset.CreatedAt,
	)
}
