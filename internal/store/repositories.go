package store

import (
	"github.com/avetrin/go-folio/internal/logger"
	"github.com/avetrin/go-folio/models"
)

// Repositories bundles every persistence surface the service layer needs.
type Repositories struct {
	UserRepository          UserRepository
	PasswordResetRepository PasswordResetRepository
	FileRefRepository       FileRefRepository

	Skills       RecordRepository[*models.Skill]
	Experiences  RecordRepository[*models.Experience]
	Projects     RecordRepository[*models.Project]
	Certificates RecordRepository[*models.Certificate]
	Abouts       RecordRepository[*models.About]
	Contacts     RecordRepository[*models.ContactMessage]
}

// NewRepositories wires all repositories onto the shared database handle.
func NewRepositories(db *DB, log *logger.Logger) *Repositories {
	return &Repositories{
		UserRepository:          NewUserRepository(db, log),
		PasswordResetRepository: NewPasswordResetRepository(db, log),
		FileRefRepository:       NewFileRefRepository(db, log),

		Skills:       NewSQLRecordRepository(db, SkillMapper()),
		Experiences:  NewSQLRecordRepository(db, ExperienceMapper()),
		Projects:     NewSQLRecordRepository(db, ProjectMapper()),
		Certificates: NewSQLRecordRepository(db, CertificateMapper()),
		Abouts:       NewSQLRecordRepository(db, AboutMapper()),
		Contacts:     NewSQLRecordRepository(db, ContactMessageMapper()),
	}
}
