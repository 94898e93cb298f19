package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/avetrin/go-folio/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.Handler) *Client {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	client, err := NewClient(srv.URL, time.Second)
	require.NoError(t, err)
	return client
}

// TestNewClient_BaseURL covers address normalization.
func TestNewClient_BaseURL(t *testing.T) {
	client, err := NewClient("localhost:8080", 0)
	require.NoError(t, err)
	assert.NotNil(t, client)

	_, err = NewClient("   ", time.Second)
	assert.Error(t, err)
}

// TestClient_Register verifies that the account payload is sent and the
// issued bearer token is captured for later requests.
func TestClient_Register(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/api/register", r.URL.Path)

		var payload map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
		assert.Equal(t, "ada", payload["username"])
		assert.Equal(t, "s3cret-pass", payload["password"])

		w.Header().Set("Authorization", "Bearer issued-token")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(models.User{UserID: 7, Username: "ada"})
	}))

	user, err := client.Register(context.Background(), models.User{Username: "ada", Email: "ada@example.com"}, "s3cret-pass")
	require.NoError(t, err)
	assert.Equal(t, int64(7), user.UserID)
	assert.Equal(t, "issued-token", client.Token())
}

// TestClient_Login_WrongPassword verifies the 401 sentinel mapping.
func TestClient_Login_WrongPassword(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "wrong password", http.StatusUnauthorized)
	}))

	_, err := client.Login(context.Background(), "ada@example.com", "wrong")
	require.ErrorIs(t, err, ErrUnauthorized)
	assert.Empty(t, client.Token())
}

// TestClient_SkillsCRUD verifies the owner-scoped round trip and that the
// stored token travels on every request.
func TestClient_SkillsCRUD(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "Bearer issued-token", r.Header.Get("Authorization"))

		switch r.Method {
		case http.MethodPost:
			var skill models.Skill
			require.NoError(t, json.NewDecoder(r.Body).Decode(&skill))
			skill.ID = 11
			w.WriteHeader(http.StatusCreated)
			json.NewEncoder(w).Encode(skill)
		case http.MethodGet:
			json.NewEncoder(w).Encode([]models.Skill{{ID: 11, Title: "Go"}})
		case http.MethodPut:
			require.Equal(t, "/api/skills/11", r.URL.Path)
			var skill models.Skill
			require.NoError(t, json.NewDecoder(r.Body).Decode(&skill))
			skill.ID = 11
			json.NewEncoder(w).Encode(skill)
		case http.MethodDelete:
			require.Equal(t, "/api/skills/11", r.URL.Path)
			w.WriteHeader(http.StatusNoContent)
		}
	}))
	client.SetToken("issued-token")

	ctx := context.Background()

	created, err := client.CreateSkill(ctx, models.Skill{Title: "Go", Level: models.SkillLevelExpert})
	require.NoError(t, err)
	assert.Equal(t, int64(11), created.ID)

	skills, err := client.ListSkills(ctx)
	require.NoError(t, err)
	require.Len(t, skills, 1)
	assert.Equal(t, "Go", skills[0].Title)

	updated, err := client.UpdateSkill(ctx, 11, models.Skill{Title: "Go", Level: models.SkillLevelAdvanced})
	require.NoError(t, err)
	assert.Equal(t, models.SkillLevelAdvanced, updated.Level)

	require.NoError(t, client.DeleteSkill(ctx, 11))
}

// TestClient_ForeignRecord verifies the 403 sentinel mapping.
func TestClient_ForeignRecord(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "record belongs to another account", http.StatusForbidden)
	}))
	client.SetToken("issued-token")

	err := client.DeleteSkill(context.Background(), 5)
	assert.ErrorIs(t, err, ErrForbidden)
}

// TestClient_Portfolio verifies the public aggregate fetch without a token.
func TestClient_Portfolio(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/portfolio/ada", r.URL.Path)
		assert.Empty(t, r.Header.Get("Authorization"))
		json.NewEncoder(w).Encode(models.Portfolio{
			Profile: models.PublicProfile{UserID: 7, Username: "ada"},
		})
	}))

	portfolio, err := client.Portfolio(context.Background(), "ada")
	require.NoError(t, err)
	assert.Equal(t, "ada", portfolio.Profile.Username)
}

// TestClient_SubmitContact verifies the public message path and the 404
// mapping for an unknown recipient.
func TestClient_SubmitContact(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var payload map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))

		if payload["username"] != "ada" {
			http.Error(w, "no user was found", http.StatusNotFound)
			return
		}

		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(models.ContactMessage{ID: 9, Name: payload["name"]})
	}))

	message := models.ContactMessage{Name: "Visitor", Email: "visitor@example.com", Message: "Hi"}

	created, err := client.SubmitContact(context.Background(), "ada", message)
	require.NoError(t, err)
	assert.Equal(t, int64(9), created.ID)

	_, err = client.SubmitContact(context.Background(), "ghost", message)
	assert.ErrorIs(t, err, ErrNotFound)
}
