// SPDX-License-Identifier: Apache-2.0

package workers

import (
	"context"
	"time"

	"github.com/avetrin/go-folio/internal/blob"
	"github.com/avetrin/go-folio/internal/logger"
	"github.com/avetrin/go-folio/internal/store"
)

// orphanGracePeriod protects freshly uploaded objects whose referencing
// database record may not be committed yet. Only objects older than this
// are eligible for sweeping.
const orphanGracePeriod = time.Hour

// BlobSweeper periodically deletes blob objects no database record points
// at. Orphans appear when a compensating delete fails mid-saga or the
// process dies between a blob write and the record insert.
type BlobSweeper struct {
	fileRefs  store.FileRefRepository
	blobStore blob.Store
	interval  time.Duration
	logger    *logger.Logger
}

// NewBlobSweeper constructs a [BlobSweeper] sweeping at the given interval.
func NewBlobSweeper(fileRefs store.FileRefRepository, blobStore blob.Store, interval time.Duration, logger *logger.Logger) *BlobSweeper {
	return &BlobSweeper{
		fileRefs:  fileRefs,
		blobStore: blobStore,
		interval:  interval,
		logger:    logger,
	}
}

// Run implements [Worker]. It spawns the sweep loop and returns; the loop
// exits when ctx is cancelled.
func (s *BlobSweeper) Run(ctx context.Context) {
	go func() {
		ticker := time.NewTicker(s.interval)
		defer ticker.Stop()

		s.logger.Info().Dur("interval", s.interval).Msg("blob sweeper started")

		for {
			select {
			case <-ctx.Done():
				s.logger.Info().Msg("blob sweeper stopped")
				return
			case <-ticker.C:
				if err := s.Sweep(ctx); err != nil {
					s.logger.Err(err).Msg("blob sweep failed")
				}
			}
		}
	}()
}

// Sweep performs one pass: list stored objects past the grace period, diff
// against the referenced key set, delete the orphans.
func (s *BlobSweeper) Sweep(ctx context.Context) error {
	keys, err := s.blobStore.ListKeys(ctx, time.Now().Add(-orphanGracePeriod))
	if err != nil {
		return err
	}

	referenced, err := s.fileRefs.ListReferencedKeys(ctx)
	if err != nil {
		return err
	}

	var swept int
	for _, key := range keys {
		if referenced[key] {
			continue
		}
		if err = s.blobStore.Delete(ctx, key); err != nil {
			s.logger.Err(err).Str("key", key).Msg("deleting orphaned object failed")
			continue
		}
		swept++
	}

	if swept > 0 {
		s.logger.Info().Int("swept", swept).Msg("deleted orphaned blob objects")
	}

	return nil
}
