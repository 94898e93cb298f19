// SPDX-License-Identifier: Apache-2.0

package service

import (
	"context"
	"fmt"

	"github.com/avetrin/go-folio/internal/blob"
	"github.com/avetrin/go-folio/internal/logger"
	"github.com/avetrin/go-folio/internal/store"
	"github.com/avetrin/go-folio/models"
)

// certificateService implements [CertificateService]. It layers the
// blob-backed document lifecycle on top of the generic record service.
//
// Creation is a small saga: the document goes into the blob store first,
// then the record insert happens; if the insert fails the freshly written
// object is removed again. The orphan sweeper covers the window where the
// compensation itself fails.
type certificateService struct {
	RecordService[*models.Certificate]

	repository store.RecordRepository[*models.Certificate]
	blobStore  blob.Store
	logger     *logger.Logger
}

// NewCertificateService constructs a [CertificateService] on top of the
// certificate repository and the blob store.
func NewCertificateService(repository store.RecordRepository[*models.Certificate], blobStore blob.Store, logger *logger.Logger) CertificateService {
	return &certificateService{
		RecordService: NewRecordService(repository, logger),
		repository:    repository,
		blobStore:     blobStore,
		logger:        logger,
	}
}

// Upload stores the certificate document and its metadata record.
func (s *certificateService) Upload(ctx context.Context, callerID int64, certificate *models.Certificate, upload Upload) (*models.Certificate, error) {
	log := logger.FromContext(ctx)

	if callerID <= 0 {
		return nil, ErrIdentityRequired
	}
	if upload.Body == nil {
		return nil, fmt.Errorf("%w: certificate file is required", ErrInvalidDataProvided)
	}

	key, err := s.blobStore.Put(ctx, upload.Body, upload.Size, upload.ContentType)
	if err != nil {
		log.Err(err).Msg("certificate upload ended with error")
		return nil, fmt.Errorf("certificate upload ended with error: %w", err)
	}

	certificate.FileKey = key
	certificate.Filename = upload.Filename
	certificate.ContentType = upload.ContentType

	created, err := s.RecordService.Create(ctx, callerID, certificate)
	if err != nil {
		if cleanupErr := s.blobStore.Delete(ctx, key); cleanupErr != nil {
			log.Err(cleanupErr).Str("key", key).Msg("compensating blob delete failed, object left for sweeper")
		}
		return nil, err
	}

	return created, nil
}

// Update replaces the certificate metadata. The document itself is
// immutable; replacing it means deleting the certificate and uploading a
// new one, so the stored FileKey is carried over before validation.
func (s *certificateService) Update(ctx context.Context, callerID int64, recordID int64, certificate *models.Certificate) (*models.Certificate, error) {
	existing, err := authorizeRecordAccess(ctx, s.repository, callerID, recordID)
	if err != nil {
		return nil, err
	}

	certificate.FileKey = existing.FileKey
	certificate.Filename = existing.Filename
	certificate.ContentType = existing.ContentType

	return s.RecordService.Update(ctx, callerID, recordID, certificate)
}

// Delete removes the certificate record and cascades into the blob store.
// A failed blob delete is logged, not surfaced: the record is already gone
// and the sweeper will collect the orphaned object.
func (s *certificateService) Delete(ctx context.Context, callerID int64, recordID int64) error {
	log := logger.FromContext(ctx)

	certificate, err := authorizeRecordAccess(ctx, s.repository, callerID, recordID)
	if err != nil {
		return err
	}

	if err = s.RecordService.Delete(ctx, callerID, recordID); err != nil {
		return err
	}

	if err = s.blobStore.Delete(ctx, certificate.FileKey); err != nil {
		log.Err(err).Str("key", certificate.FileKey).Msg("cascading blob delete failed, object left for sweeper")
	}

	return nil
}

// GetFile opens the certificate document for public streaming. Documents
// are addressed by their unguessable object key, not by record id, so no
// caller identity is involved.
func (s *certificateService) GetFile(ctx context.Context, fileKey string) (blob.Object, error) {
	if fileKey == "" {
		return blob.Object{}, fmt.Errorf("%w: file key is required", ErrInvalidDataProvided)
	}

	return s.blobStore.Get(ctx, fileKey)
}
