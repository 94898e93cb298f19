// SPDX-License-Identifier: Apache-2.0

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/Masterminds/squirrel"
	"github.com/avetrin/go-folio/models"
	"github.com/jackc/pgerrcode"
)

// SQLRecordRepository is the squirrel-backed implementation of
// [RecordRepository] shared by every portfolio resource. The table layout
// and scan logic come from the injected [RecordMapper].
type SQLRecordRepository[T models.Owned] struct {
	db     *DB
	mapper RecordMapper[T]
}

var _ RecordRepository[*models.Skill] = (*SQLRecordRepository[*models.Skill])(nil)

// NewSQLRecordRepository constructs a repository for the resource described
// by mapper on top of the shared database handle.
func NewSQLRecordRepository[T models.Owned](db *DB, mapper RecordMapper[T]) *SQLRecordRepository[T] {
	return &SQLRecordRepository[T]{db: db, mapper: mapper}
}

// Create implements [RecordRepository.Create].
func (r *SQLRecordRepository[T]) Create(ctx context.Context, record T) (T, error) {
	log := r.db.logger.With().Str("table", r.mapper.Table).Logger()
	var zero T

	query, args, err := squirrel.Insert(r.mapper.Table).
		SetMap(r.mapper.InsertMap(record)).
		Suffix("RETURNING " + strings.Join(r.mapper.Columns, ", ")).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "Create").Msg("error building insert query")
		return zero, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	created, err := r.mapper.Scan(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		if postgresError(err) == pgerrcode.UniqueViolation {
			return zero, fmt.Errorf("%w: %w", ErrDuplicateRecord, err)
		}
		log.Err(err).
			Str("func", "Create").
			Bool("retryable", r.db.errorClassifier.Classify(err) == Retryable).
			Msg("error inserting record")
		return zero, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return created, nil
}

// ListByOwner implements [RecordRepository.ListByOwner].
func (r *SQLRecordRepository[T]) ListByOwner(ctx context.Context, ownerID int64) ([]T, error) {
	log := r.db.logger.With().Str("table", r.mapper.Table).Logger()

	query, args, err := squirrel.Select(r.mapper.Columns...).
		From(r.mapper.Table).
		Where(squirrel.Eq{"user_id": ownerID}).
		OrderBy("created_at DESC", "id DESC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "ListByOwner").Msg("error building select query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "ListByOwner").
			Bool("retryable", r.db.errorClassifier.Classify(err) == Retryable).
			Msg("error querying records")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	records := make([]T, 0)
	for rows.Next() {
		record, err := r.mapper.Scan(rows)
		if err != nil {
			log.Err(err).Str("func", "ListByOwner").Msg("error scanning record row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		records = append(records, record)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return records, nil
}

// GetByID implements [RecordRepository.GetByID].
func (r *SQLRecordRepository[T]) GetByID(ctx context.Context, id int64) (T, error) {
	log := r.db.logger.With().Str("table", r.mapper.Table).Logger()
	var zero T

	query, args, err := squirrel.Select(r.mapper.Columns...).
		From(r.mapper.Table).
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "GetByID").Msg("error building select query")
		return zero, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	record, err := r.mapper.Scan(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return zero, ErrRecordNotFound
		}
		log.Err(err).
			Str("func", "GetByID").
			Bool("retryable", r.db.errorClassifier.Classify(err) == Retryable).
			Msg("error querying record")
		return zero, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return record, nil
}

// UpdateByID implements [RecordRepository.UpdateByID]. The updated_at
// column is bumped here rather than by a trigger so sqlmock-driven tests
// see the full statement.
func (r *SQLRecordRepository[T]) UpdateByID(ctx context.Context, id int64, record T) (T, error) {
	log := r.db.logger.With().Str("table", r.mapper.Table).Logger()
	var zero T

	query, args, err := squirrel.Update(r.mapper.Table).
		SetMap(r.mapper.UpdateMap(record)).
		Set("updated_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"id": id}).
		Suffix("RETURNING " + strings.Join(r.mapper.Columns, ", ")).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "UpdateByID").Msg("error building update query")
		return zero, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	updated, err := r.mapper.Scan(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return zero, ErrRecordNotFound
		}
		if postgresError(err) == pgerrcode.UniqueViolation {
			return zero, fmt.Errorf("%w: %w", ErrDuplicateRecord, err)
		}
		log.Err(err).
			Str("func", "UpdateByID").
			Bool("retryable", r.db.errorClassifier.Classify(err) == Retryable).
			Msg("error updating record")
		return zero, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return updated, nil
}

// DeleteByID implements [RecordRepository.DeleteByID].
func (r *SQLRecordRepository[T]) DeleteByID(ctx context.Context, id int64) error {
	log := r.db.logger.With().Str("table", r.mapper.Table).Logger()

	query, args, err := squirrel.Delete(r.mapper.Table).
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "DeleteByID").Msg("error building delete query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "DeleteByID").
			Bool("retryable", r.db.errorClassifier.Classify(err) == Retryable).
			Msg("error deleting record")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrRecordNotFound
	}

	return nil
}
