package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetClientConfig_Defaults(t *testing.T) {
	cfg, err := GetClientConfig(Overrides{BaseURL: "https://example.supabase.co"})
	require.NoError(t, err)

	assert.Equal(t, "en", cfg.App.Lang)
	assert.Equal(t, "madrasa.db", cfg.Storage.DB.DSN)
	assert.Equal(t, "exports", cfg.Storage.Exports.Dir)
	assert.Equal(t, 30*time.Second, cfg.Sync.Interval)
	assert.Equal(t, 15*time.Second, cfg.Remote.RequestTimeout)
}

func TestGetClientConfig_NoBaseURL(t *testing.T) {
	_, err := GetClientConfig(Overrides{})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNoRemoteBaseURL)
}

func TestGetClientConfig_OverridesWin(t *testing.T) {
	cfg, err := GetClientConfig(Overrides{
		BaseURL:      "https://example.supabase.co",
		APIKey:       "anon-key",
		DSN:          "custom.db",
		Lang:         "ur",
		SyncInterval: 5 * time.Second,
	})
	require.NoError(t, err)

	assert.Equal(t, "https://example.supabase.co", cfg.Remote.BaseURL)
	assert.Equal(t, "anon-key", cfg.Remote.APIKey)
	assert.Equal(t, "custom.db", cfg.Storage.DB.DSN)
	assert.Equal(t, "ur", cfg.App.Lang)
	assert.Equal(t, 5*time.Second, cfg.Sync.Interval)
}

func TestGetClientConfig_Env(t *testing.T) {
	t.Setenv("REMOTE_BASE_URL", "https://env.supabase.co")
	t.Setenv("REMOTE_API_KEY", "env-key")
	t.Setenv("SYNC_INTERVAL", "45s")

	cfg, err := GetClientConfig(Overrides{})
	require.NoError(t, err)

	assert.Equal(t, "https://env.supabase.co", cfg.Remote.BaseURL)
	assert.Equal(t, "env-key", cfg.Remote.APIKey)
	assert.Equal(t, 45*time.Second, cfg.Sync.Interval)
}

func TestGetClientConfig_PDFLicenseKey(t *testing.T) {
	t.Setenv("STORAGE_EXPORTS_LICENSE_KEY", "structured-key")

	cfg, err := GetClientConfig(Overrides{BaseURL: "https://example.supabase.co"})
	require.NoError(t, err)
	assert.Equal(t, "structured-key", cfg.Storage.Exports.LicenseKey)
}

func TestGetClientConfig_PDFLicenseKeyFallsBackToUnidocVar(t *testing.T) {
	t.Setenv("STORAGE_EXPORTS_LICENSE_KEY", "")
	t.Setenv("UNIDOC_LICENSE_API_KEY", "metered-key")

	cfg, err := GetClientConfig(Overrides{BaseURL: "https://example.supabase.co"})
	require.NoError(t, err)
	assert.Equal(t, "metered-key", cfg.Storage.Exports.LicenseKey)
}

func TestGetClientConfig_EnvBeatsJSON(t *testing.T) {
	// env is parsed first, so its non-zero fields survive the merge
	path := writeJSONConfig(t, map[string]any{
		"remote": map[string]any{"base_url": "https://file.supabase.co"},
	})
	t.Setenv("REMOTE_BASE_URL", "https://env.supabase.co")

	cfg, err := GetClientConfig(Overrides{JSONFilePath: path})
	require.NoError(t, err)

	assert.Equal(t, "https://env.supabase.co", cfg.Remote.BaseURL)
}

func TestGetClientConfig_JSONFile(t *testing.T) {
	path := writeJSONConfig(t, map[string]any{
		"app": map[string]any{"lang": "ur"},
		"remote": map[string]any{
			"base_url":        "https://file.supabase.co",
			"api_key":         "file-key",
			"request_timeout": "20s",
		},
		"storage": map[string]any{
			"db":      map[string]any{"dsn": "file.db"},
			"exports": map[string]any{"dir": "out"},
		},
		"sync": map[string]any{"interval": "1m"},
	})

	cfg, err := GetClientConfig(Overrides{JSONFilePath: path})
	require.NoError(t, err)

	assert.Equal(t, "ur", cfg.App.Lang)
	assert.Equal(t, "https://file.supabase.co", cfg.Remote.BaseURL)
	assert.Equal(t, "file-key", cfg.Remote.APIKey)
	assert.Equal(t, 20*time.Second, cfg.Remote.RequestTimeout)
	assert.Equal(t, "file.db", cfg.Storage.DB.DSN)
	assert.Equal(t, "out", cfg.Storage.Exports.Dir)
	assert.Equal(t, time.Minute, cfg.Sync.Interval)
}

func TestGetClientConfig_JSONFileMissing(t *testing.T) {
	_, err := GetClientConfig(Overrides{
		BaseURL:      "https://example.supabase.co",
		JSONFilePath: filepath.Join(t.TempDir(), "no-such-file.json"),
	})
	require.Error(t, err)
}

func TestDuration_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    time.Duration
		wantErr bool
	}{
		{name: "string seconds", input: `"30s"`, want: 30 * time.Second},
		{name: "string minutes", input: `"2m"`, want: 2 * time.Minute},
		{name: "number nanoseconds", input: `1000000000`, want: time.Second},
		{name: "garbage string", input: `"soon"`, wantErr: true},
		{name: "bool", input: `true`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var d Duration
			err := json.Unmarshal([]byte(tt.input), &d)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, d.Duration)
		})
	}
}

func writeJSONConfig(t *testing.T, cfg map[string]any) string {
	t.Helper()

	data, err := json.Marshal(cfg)
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, data, 0o600))

	return path
}
