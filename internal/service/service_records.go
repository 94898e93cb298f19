package service

import (
	"context"
	"fmt"

	"github.com/avetrin/go-folio/internal/logger"
	"github.com/avetrin/go-folio/internal/store"
	"github.com/avetrin/go-folio/models"
)

// recordService is the concrete implementation of [RecordService] shared by
// skills, experiences, projects, and (via embedding) certificates and
// contact messages.
//
// The owner of every written record is stamped from callerID. Client
// payloads may carry a user_id field; it is ignored.
type recordService[T models.Owned] struct {
	repository store.RecordRepository[T]
	logger     *logger.Logger
}

// NewRecordService constructs a [RecordService] for one resource repository.
func NewRecordService[T models.Owned](repository store.RecordRepository[T], logger *logger.Logger) RecordService[T] {
	return &recordService[T]{
		repository: repository,
		logger:     logger,
	}
}

// Create validates the record, stamps the caller as its owner, and persists it.
func (s *recordService[T]) Create(ctx context.Context, callerID int64, record T) (T, error) {
	log := logger.FromContext(ctx)
	var zero T

	if callerID <= 0 {
		return zero, ErrIdentityRequired
	}

	if err := record.Validate(); err != nil {
		log.Err(err).Msg("record validation failed")
		return zero, err
	}
	record.SetOwner(callerID)

	created, err := s.repository.Create(ctx, record)
	if err != nil {
		log.Err(err).Int64("userID", callerID).Msg("record creation ended with error")
		return zero, fmt.Errorf("record creation ended with error: %w", err)
	}

	return created, nil
}

// List returns the caller's records, newest first.
func (s *recordService[T]) List(ctx context.Context, callerID int64) ([]T, error) {
	log := logger.FromContext(ctx)

	if callerID <= 0 {
		return nil, ErrIdentityRequired
	}

	records, err := s.repository.ListByOwner(ctx, callerID)
	if err != nil {
		log.Err(err).Int64("userID", callerID).Msg("record listing ended with error")
		return nil, fmt.Errorf("record listing ended with error: %w", err)
	}

	return records, nil
}

// Get returns one record after the ownership check.
func (s *recordService[T]) Get(ctx context.Context, callerID int64, recordID int64) (T, error) {
	return authorizeRecordAccess(ctx, s.repository, callerID, recordID)
}

// Update replaces the record's resource fields after the ownership check.
// The owner never changes on update.
func (s *recordService[T]) Update(ctx context.Context, callerID int64, recordID int64, record T) (T, error) {
	log := logger.FromContext(ctx)
	var zero T

	if _, err := authorizeRecordAccess(ctx, s.repository, callerID, recordID); err != nil {
		return zero, err
	}

	if err := record.Validate(); err != nil {
		log.Err(err).Msg("record validation failed")
		return zero, err
	}
	record.SetOwner(callerID)

	updated, err := s.repository.UpdateByID(ctx, recordID, record)
	if err != nil {
		log.Err(err).Int64("userID", callerID).Int64("recordID", recordID).Msg("record update ended with error")
		return zero, fmt.Errorf("record update ended with error: %w", err)
	}

	return updated, nil
}

// Delete removes the record after the ownership check.
func (s *recordService[T]) Delete(ctx context.Context, callerID int64, recordID int64) error {
	log := logger.FromContext(ctx)

	if _, err := authorizeRecordAccess(ctx, s.repository, callerID, recordID); err != nil {
		return err
	}

	if err := s.repository.DeleteByID(ctx, recordID); err != nil {
		log.Err(err).Int64("userID", callerID).Int64("recordID", recordID).Msg("record deletion ended with error")
		return fmt.Errorf("record deletion ended with error: %w", err)
	}

	return nil
}
