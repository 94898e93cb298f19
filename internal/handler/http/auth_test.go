// SPDX-License-Identifier: Apache-2.0

package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/avetrin/go-folio/internal/service"
	"github.com/avetrin/go-folio/internal/store"
	"github.com/avetrin/go-folio/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubToken returns a models.Token with the given signed string.
func stubToken(signed string) models.Token {
	return models.Token{SignedString: signed}
}

// ─────────────────────────────────────────────
// register
// ─────────────────────────────────────────────

// TestRegister_Success verifies that a valid registration request answers
// 201 Created with the new account and an Authorization header containing
// the issued Bearer token.
func TestRegister_Success(t *testing.T) {
	const signedToken = "signed.jwt.token"

	auth := &mockAuthService{
		registerFn: func(_ context.Context, u models.User, password string) (models.User, error) {
			assert.Equal(t, "s3cret-pass", password)
			u.UserID = 7
			return u, nil
		},
		createTokenFn: func(_ context.Context, u models.User) (models.Token, error) {
			assert.Equal(t, int64(7), u.UserID)
			return stubToken(signedToken), nil
		},
	}

	h := newTestHandler(&service.Services{AuthService: auth})

	body := `{"fullname":"Ada Lovelace","username":"ada","email":"ada@example.com","password":"s3cret-pass"}`
	req := httptest.NewRequest(http.MethodPost, "/api/register", strings.NewReader(body))
	rec := httptest.NewRecorder()

	h.register(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "Bearer "+signedToken, rec.Header().Get("Authorization"))
	assert.Contains(t, rec.Body.String(), `"username":"ada"`)
}

// TestRegister_InvalidJSON verifies that a malformed request body results in
// 400 Bad Request.
func TestRegister_InvalidJSON(t *testing.T) {
	h := newTestHandler(&service.Services{AuthService: &mockAuthService{}})

	req := httptest.NewRequest(http.MethodPost, "/api/register", strings.NewReader("{invalid json}"))
	rec := httptest.NewRecorder()

	h.register(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "Invalid JSON was passed")
}

// TestRegister_DuplicateUsername verifies the 409 mapping for an already
// taken handle.
func TestRegister_DuplicateUsername(t *testing.T) {
	auth := &mockAuthService{
		registerFn: func(_ context.Context, _ models.User, _ string) (models.User, error) {
			return models.User{}, store.ErrUsernameAlreadyExists
		},
	}

	h := newTestHandler(&service.Services{AuthService: auth})

	body := `{"fullname":"Ada","username":"ada","email":"ada@example.com","password":"s3cret-pass"}`
	req := httptest.NewRequest(http.MethodPost, "/api/register", strings.NewReader(body))
	rec := httptest.NewRecorder()

	h.register(rec, req)

	assert.Equal(t, http.StatusConflict, rec.Code)
}

// TestRegister_ValidationError verifies that field-level validation failures
// surface as 400 with the explanation intact.
func TestRegister_ValidationError(t *testing.T) {
	auth := &mockAuthService{
		registerFn: func(_ context.Context, _ models.User, _ string) (models.User, error) {
			return models.User{}, service.ErrInvalidDataProvided
		},
	}

	h := newTestHandler(&service.Services{AuthService: auth})

	req := httptest.NewRequest(http.MethodPost, "/api/register", strings.NewReader(`{"username":"x"}`))
	rec := httptest.NewRecorder()

	h.register(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

// TestRegister_TokenCreationFails verifies that a signing failure after a
// successful registration collapses to an opaque 500.
func TestRegister_TokenCreationFails(t *testing.T) {
	auth := &mockAuthService{
		registerFn: func(_ context.Context, u models.User, _ string) (models.User, error) {
			return u, nil
		},
		createTokenFn: func(_ context.Context, _ models.User) (models.Token, error) {
			return models.Token{}, service.ErrTokenCreationFailed
		},
	}

	h := newTestHandler(&service.Services{AuthService: auth})

	body := `{"fullname":"Ada","username":"ada","email":"ada@example.com","password":"s3cret-pass"}`
	req := httptest.NewRequest(http.MethodPost, "/api/register", strings.NewReader(body))
	rec := httptest.NewRecorder()

	h.register(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

// ─────────────────────────────────────────────
// login
// ─────────────────────────────────────────────

// TestLogin_Success verifies 200 OK, the Bearer header, and that the
// credentials reach the service untouched.
func TestLogin_Success(t *testing.T) {
	const signedToken = "signed.jwt.token"

	auth := &mockAuthService{
		loginFn: func(_ context.Context, email, password string) (models.User, error) {
			assert.Equal(t, "ada@example.com", email)
			assert.Equal(t, "s3cret-pass", password)
			return models.User{UserID: 7, Username: "ada"}, nil
		},
		createTokenFn: func(_ context.Context, _ models.User) (models.Token, error) {
			return stubToken(signedToken), nil
		},
	}

	h := newTestHandler(&service.Services{AuthService: auth})

	body := `{"email":"ada@example.com","password":"s3cret-pass"}`
	req := httptest.NewRequest(http.MethodPost, "/api/login", strings.NewReader(body))
	rec := httptest.NewRecorder()

	h.login(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Bearer "+signedToken, rec.Header().Get("Authorization"))
}

// TestLogin_WrongPassword verifies the 401 mapping. Unknown accounts take
// the same path, so the response does not reveal whether the email exists.
func TestLogin_WrongPassword(t *testing.T) {
	auth := &mockAuthService{
		loginFn: func(_ context.Context, _, _ string) (models.User, error) {
			return models.User{}, service.ErrWrongPassword
		},
	}

	h := newTestHandler(&service.Services{AuthService: auth})

	body := `{"email":"ada@example.com","password":"wrong"}`
	req := httptest.NewRequest(http.MethodPost, "/api/login", strings.NewReader(body))
	rec := httptest.NewRecorder()

	h.login(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Empty(t, rec.Header().Get("Authorization"))
}

// ─────────────────────────────────────────────
// password reset flow
// ─────────────────────────────────────────────

// TestForgotPassword_AlwaysAccepted verifies that a well-formed request is
// answered 202 regardless of whether the email belongs to an account.
func TestForgotPassword_AlwaysAccepted(t *testing.T) {
	var requested string
	auth := &mockAuthService{
		requestPasswordResetFn: func(_ context.Context, email string) error {
			requested = email
			return nil
		},
	}

	h := newTestHandler(&service.Services{AuthService: auth})

	req := httptest.NewRequest(http.MethodPost, "/api/password/forgot", strings.NewReader(`{"email":"nobody@example.com"}`))
	rec := httptest.NewRecorder()

	h.forgotPassword(rec, req)

	assert.Equal(t, http.StatusAccepted, rec.Code)
	assert.Equal(t, "nobody@example.com", requested)
}

// TestResetPassword_Success verifies 204 on a successful reset.
func TestResetPassword_Success(t *testing.T) {
	auth := &mockAuthService{
		resetPasswordFn: func(_ context.Context, email, code, newPassword string) error {
			assert.Equal(t, "ada@example.com", email)
			assert.Equal(t, "123456", code)
			assert.Equal(t, "new-password", newPassword)
			return nil
		},
	}

	h := newTestHandler(&service.Services{AuthService: auth})

	body := `{"email":"ada@example.com","code":"123456","password":"new-password"}`
	req := httptest.NewRequest(http.MethodPost, "/api/password/reset", strings.NewReader(body))
	rec := httptest.NewRecorder()

	h.resetPassword(rec, req)

	assert.Equal(t, http.StatusNoContent, rec.Code)
}

// TestResetPassword_WrongCode verifies the 400 mapping for a code that does
// not match the active reset.
func TestResetPassword_WrongCode(t *testing.T) {
	auth := &mockAuthService{
		resetPasswordFn: func(_ context.Context, _, _, _ string) error {
			return service.ErrInvalidResetCode
		},
	}

	h := newTestHandler(&service.Services{AuthService: auth})

	body := `{"email":"ada@example.com","code":"000000","password":"new-password"}`
	req := httptest.NewRequest(http.MethodPost, "/api/password/reset", strings.NewReader(body))
	rec := httptest.NewRecorder()

	h.resetPassword(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
