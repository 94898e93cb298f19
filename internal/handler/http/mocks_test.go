package http

import (
	"context"
	"time"

	"github.com/avetrin/go-folio/internal/blob"
	"github.com/avetrin/go-folio/internal/config"
	"github.com/avetrin/go-folio/internal/logger"
	"github.com/avetrin/go-folio/internal/service"
	"github.com/avetrin/go-folio/models"
)

// ─────────────────────────────────────────────
// Mock AuthService
// ─────────────────────────────────────────────

// mockAuthService implements service.AuthService for unit tests.
// Each method field can be overridden per test case.
type mockAuthService struct {
	registerFn             func(ctx context.Context, user models.User, password string) (models.User, error)
	loginFn                func(ctx context.Context, email, password string) (models.User, error)
	createTokenFn          func(ctx context.Context, user models.User) (models.Token, error)
	parseTokenFn           func(ctx context.Context, tokenString string) (models.Token, error)
	requestPasswordResetFn func(ctx context.Context, email string) error
	resetPasswordFn        func(ctx context.Context, email, code, newPassword string) error
}

func (m *mockAuthService) Register(ctx context.Context, user models.User, password string) (models.User, error) {
	return m.registerFn(ctx, user, password)
}

func (m *mockAuthService) Login(ctx context.Context, email, password string) (models.User, error) {
	return m.loginFn(ctx, email, password)
}

func (m *mockAuthService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	return m.createTokenFn(ctx, user)
}

func (m *mockAuthService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	return m.parseTokenFn(ctx, tokenString)
}

func (m *mockAuthService) RequestPasswordReset(ctx context.Context, email string) error {
	return m.requestPasswordResetFn(ctx, email)
}

func (m *mockAuthService) ResetPassword(ctx context.Context, email, code, newPassword string) error {
	return m.resetPasswordFn(ctx, email, code, newPassword)
}

// ─────────────────────────────────────────────
// Mock RecordService
// ─────────────────────────────────────────────

type mockRecordService[T models.Owned] struct {
	createFn func(ctx context.Context, callerID int64, record T) (T, error)
	listFn   func(ctx context.Context, callerID int64) ([]T, error)
	getFn    func(ctx context.Context, callerID int64, recordID int64) (T, error)
	updateFn func(ctx context.Context, callerID int64, recordID int64, record T) (T, error)
	deleteFn func(ctx context.Context, callerID int64, recordID int64) error
}

func (m *mockRecordService[T]) Create(ctx context.Context, callerID int64, record T) (T, error) {
	return m.createFn(ctx, callerID, record)
}

func (m *mockRecordService[T]) List(ctx context.Context, callerID int64) ([]T, error) {
	return m.listFn(ctx, callerID)
}

func (m *mockRecordService[T]) Get(ctx context.Context, callerID int64, recordID int64) (T, error) {
	return m.getFn(ctx, callerID, recordID)
}

func (m *mockRecordService[T]) Update(ctx context.Context, callerID int64, recordID int64, record T) (T, error) {
	return m.updateFn(ctx, callerID, recordID, record)
}

func (m *mockRecordService[T]) Delete(ctx context.Context, callerID int64, recordID int64) error {
	return m.deleteFn(ctx, callerID, recordID)
}

// ─────────────────────────────────────────────
// Mock CertificateService
// ─────────────────────────────────────────────

type mockCertificateService struct {
	mockRecordService[*models.Certificate]

	uploadFn  func(ctx context.Context, callerID int64, certificate *models.Certificate, upload service.Upload) (*models.Certificate, error)
	getFileFn func(ctx context.Context, fileKey string) (blob.Object, error)
}

func (m *mockCertificateService) Upload(ctx context.Context, callerID int64, certificate *models.Certificate, upload service.Upload) (*models.Certificate, error) {
	return m.uploadFn(ctx, callerID, certificate, upload)
}

func (m *mockCertificateService) GetFile(ctx context.Context, fileKey string) (blob.Object, error) {
	return m.getFileFn(ctx, fileKey)
}

// ─────────────────────────────────────────────
// Mock ProfileService
// ─────────────────────────────────────────────

type mockProfileService struct {
	getUserFn        func(ctx context.Context, callerID int64) (models.User, error)
	updateProfileFn  func(ctx context.Context, callerID int64, user models.User) (models.User, error)
	uploadAvatarFn   func(ctx context.Context, callerID int64, upload service.Upload) (models.User, error)
	lookupUsernameFn func(ctx context.Context, username string) (models.PublicProfile, error)
	portfolioFn      func(ctx context.Context, username string) (models.Portfolio, error)
}

func (m *mockProfileService) GetUser(ctx context.Context, callerID int64) (models.User, error) {
	return m.getUserFn(ctx, callerID)
}

func (m *mockProfileService) UpdateProfile(ctx context.Context, callerID int64, user models.User) (models.User, error) {
	return m.updateProfileFn(ctx, callerID, user)
}

func (m *mockProfileService) UploadAvatar(ctx context.Context, callerID int64, upload service.Upload) (models.User, error) {
	return m.uploadAvatarFn(ctx, callerID, upload)
}

func (m *mockProfileService) LookupUsername(ctx context.Context, username string) (models.PublicProfile, error) {
	return m.lookupUsernameFn(ctx, username)
}

func (m *mockProfileService) Portfolio(ctx context.Context, username string) (models.Portfolio, error) {
	return m.portfolioFn(ctx, username)
}

// ─────────────────────────────────────────────
// Mock AboutService
// ─────────────────────────────────────────────

type mockAboutService struct {
	getFn func(ctx context.Context, callerID int64) (*models.About, error)
	putFn func(ctx context.Context, callerID int64, about *models.About) (*models.About, error)
}

func (m *mockAboutService) Get(ctx context.Context, callerID int64) (*models.About, error) {
	return m.getFn(ctx, callerID)
}

func (m *mockAboutService) Put(ctx context.Context, callerID int64, about *models.About) (*models.About, error) {
	return m.putFn(ctx, callerID, about)
}

// ─────────────────────────────────────────────
// Mock ContactService
// ─────────────────────────────────────────────

type mockContactService struct {
	submitFn func(ctx context.Context, username string, message *models.ContactMessage) (*models.ContactMessage, error)
	listFn   func(ctx context.Context, callerID int64) ([]*models.ContactMessage, error)
	deleteFn func(ctx context.Context, callerID int64, messageID int64) error
}

func (m *mockContactService) Submit(ctx context.Context, username string, message *models.ContactMessage) (*models.ContactMessage, error) {
	return m.submitFn(ctx, username, message)
}

func (m *mockContactService) List(ctx context.Context, callerID int64) ([]*models.ContactMessage, error) {
	return m.listFn(ctx, callerID)
}

func (m *mockContactService) Delete(ctx context.Context, callerID int64, messageID int64) error {
	return m.deleteFn(ctx, callerID, messageID)
}

// ─────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────

// newTestHandler builds a Handler around the given service set. Missing
// services stay nil; tests only populate what the exercised route touches.
func newTestHandler(services *service.Services) *Handler {
	if services.Skills == nil {
		services.Skills = &mockRecordService[*models.Skill]{}
	}
	if services.Experiences == nil {
		services.Experiences = &mockRecordService[*models.Experience]{}
	}
	if services.Projects == nil {
		services.Projects = &mockRecordService[*models.Project]{}
	}

	server := config.Server{
		HTTPAddress:    "localhost:0",
		RequestTimeout: 5 * time.Second,
	}

	return NewHandler(services, server, logger.Nop())
}
