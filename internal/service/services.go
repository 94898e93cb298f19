package service

import (
	"github.com/avetrin/go-folio/internal/blob"
	"github.com/avetrin/go-folio/internal/config"
	"github.com/avetrin/go-folio/internal/logger"
	"github.com/avetrin/go-folio/internal/store"
	"github.com/avetrin/go-folio/models"
)

// Services bundles every service the HTTP layer depends on.
type Services struct {
	AuthService        AuthService
	ProfileService     ProfileService
	AboutService       AboutService
	ContactService     ContactService
	CertificateService CertificateService

	Skills      RecordService[*models.Skill]
	Experiences RecordService[*models.Experience]
	Projects    RecordService[*models.Project]
}

// NewServices wires the full service layer onto the repositories, the blob
// store, and the outbound mailer.
func NewServices(repositories *store.Repositories, blobStore blob.Store, mailer Mailer, cfg config.StructuredConfig, logger *logger.Logger) *Services {
	return &Services{
		AuthService:        NewAuthService(repositories.UserRepository, repositories.PasswordResetRepository, mailer, cfg.App, logger),
		ProfileService:     NewProfileService(repositories, blobStore, logger),
		AboutService:       NewAboutService(repositories.Abouts, logger),
		ContactService:     NewContactService(repositories.UserRepository, repositories.Contacts, mailer, logger),
		CertificateService: NewCertificateService(repositories.Certificates, blobStore, logger),

		Skills:      NewRecordService(repositories.Skills, logger),
		Experiences: NewRecordService(repositories.Experiences, logger),
		Projects:    NewRecordService(repositories.Projects, logger),
	}
}
