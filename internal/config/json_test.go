package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestParseJSON_FullFile verifies that a JSON config file populates every
// section, including human-readable durations.
func TestParseJSON_FullFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	content := `{
		"app": {"token_sign_key": "secret", "token_issuer": "go-folio", "token_duration": "12h", "otp_duration": "10m"},
		"storage": {"db": {"dsn": "postgres://localhost/folio"}},
		"blob": {"endpoint": "localhost:9000", "bucket": "folio-files", "use_ssl": true},
		"server": {"http_address": "localhost:8080", "request_timeout": "30s"},
		"adapter": {"mail_webhook_url": "https://mail.example.com/send", "request_timeout": "15s"},
		"workers": {"sweep_interval": "1h"}
	}`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	cfg, err := parseJSON(path)
	require.NoError(t, err)

	assert.Equal(t, "secret", cfg.App.TokenSignKey)
	assert.Equal(t, 12*time.Hour, cfg.App.TokenDuration)
	assert.Equal(t, 10*time.Minute, cfg.App.OTPDuration)
	assert.Equal(t, "postgres://localhost/folio", cfg.Storage.DB.DSN)
	assert.True(t, cfg.Blob.UseSSL)
	assert.Equal(t, 30*time.Second, cfg.Server.RequestTimeout)
	assert.Equal(t, "https://mail.example.com/send", cfg.Adapter.MailWebhookURL)
	assert.Equal(t, time.Hour, cfg.Workers.SweepInterval)
}

// TestParseJSON_MissingFile verifies the error path for an absent file.
func TestParseJSON_MissingFile(t *testing.T) {
	_, err := parseJSON(filepath.Join(t.TempDir(), "nope.json"))
	assert.Error(t, err)
}

// TestParseJSON_MalformedFile verifies the error path for invalid JSON.
func TestParseJSON_MalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o600))

	_, err := parseJSON(path)
	assert.Error(t, err)
}

// TestDuration_UnmarshalNumber verifies that numeric nanosecond values are
// accepted alongside duration strings.
func TestDuration_UnmarshalNumber(t *testing.T) {
	var d Duration
	require.NoError(t, d.UnmarshalJSON([]byte("1000000000")))
	assert.Equal(t, time.Second, time.Duration(d))
}
