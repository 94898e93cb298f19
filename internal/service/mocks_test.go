package service

import (
	"context"
	"io"
	"time"

	"github.com/avetrin/go-folio/internal/blob"
	"github.com/avetrin/go-folio/models"
)

// ─────────────────────────────────────────────
// Mock: store.RecordRepository[T]
// ─────────────────────────────────────────────

type mockRecordRepository[T models.Owned] struct {
	createFn      func(ctx context.Context, record T) (T, error)
	listByOwnerFn func(ctx context.Context, ownerID int64) ([]T, error)
	getByIDFn     func(ctx context.Context, id int64) (T, error)
	updateByIDFn  func(ctx context.Context, id int64, record T) (T, error)
	deleteByIDFn  func(ctx context.Context, id int64) error
}

func (m *mockRecordRepository[T]) Create(ctx context.Context, record T) (T, error) {
	if m.createFn != nil {
		return m.createFn(ctx, record)
	}
	return record, nil
}

func (m *mockRecordRepository[T]) ListByOwner(ctx context.Context, ownerID int64) ([]T, error) {
	if m.listByOwnerFn != nil {
		return m.listByOwnerFn(ctx, ownerID)
	}
	return nil, nil
}

func (m *mockRecordRepository[T]) GetByID(ctx context.Context, id int64) (T, error) {
	if m.getByIDFn != nil {
		return m.getByIDFn(ctx, id)
	}
	var zero T
	return zero, nil
}

func (m *mockRecordRepository[T]) UpdateByID(ctx context.Context, id int64, record T) (T, error) {
	if m.updateByIDFn != nil {
		return m.updateByIDFn(ctx, id, record)
	}
	return record, nil
}

func (m *mockRecordRepository[T]) DeleteByID(ctx context.Context, id int64) error {
	if m.deleteByIDFn != nil {
		return m.deleteByIDFn(ctx, id)
	}
	return nil
}

// ─────────────────────────────────────────────
// Mock: store.UserRepository
// ─────────────────────────────────────────────

type mockUserRepository struct {
	createUserFn         func(ctx context.Context, user models.User) (models.User, error)
	findUserByIDFn       func(ctx context.Context, userID int64) (models.User, error)
	findUserByEmailFn    func(ctx context.Context, email string) (models.User, error)
	findUserByUsernameFn func(ctx context.Context, username string) (models.User, error)
	updateProfileFn      func(ctx context.Context, user models.User) (models.User, error)
	updatePasswordFn     func(ctx context.Context, userID int64, passwordHash string) error
}

func (m *mockUserRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	if m.createUserFn != nil {
		return m.createUserFn(ctx, user)
	}
	return user, nil
}

func (m *mockUserRepository) FindUserByID(ctx context.Context, userID int64) (models.User, error) {
	if m.findUserByIDFn != nil {
		return m.findUserByIDFn(ctx, userID)
	}
	return models.User{UserID: userID}, nil
}

func (m *mockUserRepository) FindUserByEmail(ctx context.Context, email string) (models.User, error) {
	if m.findUserByEmailFn != nil {
		return m.findUserByEmailFn(ctx, email)
	}
	return models.User{Email: email}, nil
}

func (m *mockUserRepository) FindUserByUsername(ctx context.Context, username string) (models.User, error) {
	if m.findUserByUsernameFn != nil {
		return m.findUserByUsernameFn(ctx, username)
	}
	return models.User{Username: username}, nil
}

func (m *mockUserRepository) UpdateProfile(ctx context.Context, user models.User) (models.User, error) {
	if m.updateProfileFn != nil {
		return m.updateProfileFn(ctx, user)
	}
	return user, nil
}

func (m *mockUserRepository) UpdatePassword(ctx context.Context, userID int64, passwordHash string) error {
	if m.updatePasswordFn != nil {
		return m.updatePasswordFn(ctx, userID, passwordHash)
	}
	return nil
}

// ─────────────────────────────────────────────
// Mock: store.PasswordResetRepository
// ─────────────────────────────────────────────

type mockResetRepository struct {
	createFn            func(ctx context.Context, reset models.PasswordReset) (models.PasswordReset, error)
	findActiveByEmailFn func(ctx context.Context, email string) (models.PasswordReset, error)
	consumeFn           func(ctx context.Context, id int64) error
}

func (m *mockResetRepository) Create(ctx context.Context, reset models.PasswordReset) (models.PasswordReset, error) {
	if m.createFn != nil {
		return m.createFn(ctx, reset)
	}
	reset.ID = 1
	return reset, nil
}

func (m *mockResetRepository) FindActiveByEmail(ctx context.Context, email string) (models.PasswordReset, error) {
	if m.findActiveByEmailFn != nil {
		return m.findActiveByEmailFn(ctx, email)
	}
	return models.PasswordReset{Email: email, ExpiresAt: time.Now().Add(time.Hour)}, nil
}

func (m *mockResetRepository) Consume(ctx context.Context, id int64) error {
	if m.consumeFn != nil {
		return m.consumeFn(ctx, id)
	}
	return nil
}

// ─────────────────────────────────────────────
// Mock: blob.Store
// ─────────────────────────────────────────────

type mockBlobStore struct {
	putFn      func(ctx context.Context, reader io.Reader, size int64, contentType string) (string, error)
	getFn      func(ctx context.Context, key string) (blob.Object, error)
	deleteFn   func(ctx context.Context, key string) error
	listKeysFn func(ctx context.Context, cutoff time.Time) ([]string, error)
}

func (m *mockBlobStore) Put(ctx context.Context, reader io.Reader, size int64, contentType string) (string, error) {
	if m.putFn != nil {
		return m.putFn(ctx, reader, size, contentType)
	}
	return "generated-key", nil
}

func (m *mockBlobStore) Get(ctx context.Context, key string) (blob.Object, error) {
	if m.getFn != nil {
		return m.getFn(ctx, key)
	}
	return blob.Object{Body: io.NopCloser(nil)}, nil
}

func (m *mockBlobStore) Delete(ctx context.Context, key string) error {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, key)
	}
	return nil
}

func (m *mockBlobStore) ListKeys(ctx context.Context, cutoff time.Time) ([]string, error) {
	if m.listKeysFn != nil {
		return m.listKeysFn(ctx, cutoff)
	}
	return nil, nil
}

// ─────────────────────────────────────────────
// Mock: Mailer
// ─────────────────────────────────────────────

type mockMailer struct {
	resetCodes    []string
	resetEmails   []string
	notifications []models.ContactMessage
	failWith      error
}

func (m *mockMailer) SendPasswordResetCode(ctx context.Context, email, code string) error {
	if m.failWith != nil {
		return m.failWith
	}
	m.resetEmails = append(m.resetEmails, email)
	m.resetCodes = append(m.resetCodes, code)
	return nil
}

func (m *mockMailer) SendContactNotification(ctx context.Context, recipient models.User, message models.ContactMessage) error {
	if m.failWith != nil {
		return m.failWith
	}
	m.notifications = append(m.notifications, message)
	return nil
}
