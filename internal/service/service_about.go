package service

import (
	"context"
	"fmt"

	"github.com/avetrin/go-folio/internal/logger"
	"github.com/avetrin/go-folio/internal/store"
	"github.com/avetrin/go-folio/models"
)

// aboutService implements [AboutService]. The about section is a singleton
// per owner, so the surface is Get and Put instead of full CRUD.
type aboutService struct {
	repository store.RecordRepository[*models.About]
	logger     *logger.Logger
}

// NewAboutService constructs an [AboutService] on top of the abouts
// repository.
func NewAboutService(repository store.RecordRepository[*models.About], logger *logger.Logger) AboutService {
	return &aboutService{
		repository: repository,
		logger:     logger,
	}
}

// Get returns the caller's about document, or [store.ErrRecordNotFound]
// when none has been written yet.
func (s *aboutService) Get(ctx context.Context, callerID int64) (*models.About, error) {
	if callerID <= 0 {
		return nil, ErrIdentityRequired
	}

	existing, err := s.repository.ListByOwner(ctx, callerID)
	if err != nil {
		return nil, fmt.Errorf("about lookup ended with error: %w", err)
	}
	if len(existing) == 0 {
		return nil, store.ErrRecordNotFound
	}

	return existing[0], nil
}

// Put upserts the caller's about document: the first write creates it,
// every later write replaces the stored data.
func (s *aboutService) Put(ctx context.Context, callerID int64, about *models.About) (*models.About, error) {
	log := logger.FromContext(ctx)

	if callerID <= 0 {
		return nil, ErrIdentityRequired
	}
	if err := about.Validate(); err != nil {
		log.Err(err).Msg("about validation failed")
		return nil, err
	}
	about.SetOwner(callerID)

	existing, err := s.repository.ListByOwner(ctx, callerID)
	if err != nil {
		return nil, fmt.Errorf("about lookup ended with error: %w", err)
	}

	if len(existing) == 0 {
		created, err := s.repository.Create(ctx, about)
		if err != nil {
			log.Err(err).Int64("userID", callerID).Msg("about creation ended with error")
			return nil, fmt.Errorf("about creation ended with error: %w", err)
		}
		return created, nil
	}

	updated, err := s.repository.UpdateByID(ctx, existing[0].RecordID(), about)
	if err != nil {
		log.Err(err).Int64("userID", callerID).Msg("about update ended with error")
		return nil, fmt.Errorf("about update ended with error: %w", err)
	}

	return updated, nil
}
