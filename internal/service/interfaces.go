package service

import (
	"context"
	"io"

	"github.com/avetrin/go-folio/internal/blob"
	"github.com/avetrin/go-folio/models"
)

// RecordService is the owner-scoped CRUD surface shared by every portfolio
// resource. callerID is the identity extracted from the verified JWT by the
// HTTP layer; it is never taken from request payloads.
type RecordService[T models.Owned] interface {
	Create(ctx context.Context, callerID int64, record T) (T, error)
	List(ctx context.Context, callerID int64) ([]T, error)
	Get(ctx context.Context, callerID int64, recordID int64) (T, error)
	Update(ctx context.Context, callerID int64, recordID int64, record T) (T, error)
	Delete(ctx context.Context, callerID int64, recordID int64) error
}

// AuthService handles account registration, credential verification, JWT
// lifecycle, and the password-reset flow.
type AuthService interface {
	Register(ctx context.Context, user models.User, password string) (models.User, error)
	Login(ctx context.Context, email, password string) (models.User, error)

	CreateToken(ctx context.Context, user models.User) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)

	RequestPasswordReset(ctx context.Context, email string) error
	ResetPassword(ctx context.Context, email, code, newPassword string) error
}

// CertificateService extends the generic CRUD surface with the blob-backed
// document lifecycle: blob-first creation with compensation, cascading
// deletion, and public document streaming.
type CertificateService interface {
	RecordService[*models.Certificate]

	Upload(ctx context.Context, callerID int64, certificate *models.Certificate, upload Upload) (*models.Certificate, error)
	GetFile(ctx context.Context, fileKey string) (blob.Object, error)
}

// Upload carries one incoming file stream with its metadata.
type Upload struct {
	Body        io.Reader
	Size        int64
	ContentType string
	Filename    string
}

// ProfileService covers the account's own profile, avatar uploads, public
// username lookup, and the aggregated public portfolio view.
type ProfileService interface {
	GetUser(ctx context.Context, callerID int64) (models.User, error)
	UpdateProfile(ctx context.Context, callerID int64, user models.User) (models.User, error)
	UploadAvatar(ctx context.Context, callerID int64, upload Upload) (models.User, error)

	LookupUsername(ctx context.Context, username string) (models.PublicProfile, error)
	Portfolio(ctx context.Context, username string) (models.Portfolio, error)
}

// AboutService exposes the single-document about section. Put is an upsert:
// the first write creates the owner's document, later writes replace it.
type AboutService interface {
	Get(ctx context.Context, callerID int64) (*models.About, error)
	Put(ctx context.Context, callerID int64, about *models.About) (*models.About, error)
}

// ContactService accepts visitor messages addressed to a username and lets
// the recipient review and delete them.
type ContactService interface {
	Submit(ctx context.Context, username string, message *models.ContactMessage) (*models.ContactMessage, error)
	List(ctx context.Context, callerID int64) ([]*models.ContactMessage, error)
	Delete(ctx context.Context, callerID int64, messageID int64) error
}

// Mailer delivers outbound notifications. Implementations are best-effort:
// services log delivery failures but do not fail the triggering operation.
type Mailer interface {
	SendPasswordResetCode(ctx context.Context, email, code string) error
	SendContactNotification(ctx context.Context, recipient models.User, message models.ContactMessage) error
}
