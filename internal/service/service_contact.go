package service

import (
	"context"
	"fmt"

	"github.com/avetrin/go-folio/internal/logger"
	"github.com/avetrin/go-folio/internal/store"
	"github.com/avetrin/go-folio/models"
)

// contactService implements [ContactService]. Submission is public and
// addressed to a username; the resolved account becomes the owner of the
// stored message, so listing and deletion follow the usual ownership rules.
type contactService struct {
	users      store.UserRepository
	records    RecordService[*models.ContactMessage]
	mailer     Mailer
	logger     *logger.Logger
}

// NewContactService constructs a [ContactService].
func NewContactService(users store.UserRepository, repository store.RecordRepository[*models.ContactMessage], mailer Mailer, logger *logger.Logger) ContactService {
	return &contactService{
		users:   users,
		records: NewRecordService(repository, logger),
		mailer:  mailer,
		logger:  logger,
	}
}

// Submit stores a visitor message for the portfolio owner behind username
// and notifies the owner by mail, best-effort.
//
// Returns [store.ErrNoUserWasFound] for an unknown username.
func (s *contactService) Submit(ctx context.Context, username string, message *models.ContactMessage) (*models.ContactMessage, error) {
	log := logger.FromContext(ctx)

	recipient, err := s.users.FindUserByUsername(ctx, username)
	if err != nil {
		return nil, err
	}

	created, err := s.records.Create(ctx, recipient.UserID, message)
	if err != nil {
		return nil, fmt.Errorf("contact message creation ended with error: %w", err)
	}

	if err = s.mailer.SendContactNotification(ctx, recipient, *created); err != nil {
		// The message is stored; the owner still sees it in their inbox.
		log.Err(err).Int64("recipientID", recipient.UserID).Msg("sending contact notification failed")
	}

	return created, nil
}

// List returns the caller's received messages, newest first.
func (s *contactService) List(ctx context.Context, callerID int64) ([]*models.ContactMessage, error) {
	return s.records.List(ctx, callerID)
}

// Delete removes one received message after the ownership check.
func (s *contactService) Delete(ctx context.Context, callerID int64, messageID int64) error {
	return s.records.Delete(ctx, callerID, messageID)
}
