package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// Duration wraps time.Duration to support human-readable JSON values such as
// "30s" or "1m" in the config file.
type Duration struct {
	time.Duration
}

// UnmarshalJSON parses a JSON string or number into a Duration. Strings are
// parsed with time.ParseDuration; numbers are treated as nanoseconds.
func (d *Duration) UnmarshalJSON(data []byte) error {
	var value any
	if err := json.Unmarshal(data, &value); err != nil {
		return fmt.Errorf("error unmarshalling duration: %w", err)
	}

	switch v := value.(type) {
	case float64:
		d.Duration = time.Duration(v)
	case string:
		parsed, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("error parsing duration %q: %w", v, err)
		}
		d.Duration = parsed
	default:
		return fmt.Errorf("%w: unexpected duration value %v", ErrInvalidJSONConfig, value)
	}

	return nil
}

// MarshalJSON encodes a Duration as its string form (e.g. "30s").
func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.Duration.String())
}

// StructuredJSONConfig mirrors [StructuredConfig] for the JSON config file.
// Durations use the [Duration] wrapper so the file can carry values like
// "30s" instead of raw nanoseconds.
type StructuredJSONConfig struct {
	App     AppJSON     `json:"app"`
	Remote  RemoteJSON  `json:"remote"`
	Storage StorageJSON `json:"storage"`
	Sync    SyncJSON    `json:"sync"`
}

type AppJSON struct {
	Lang string `json:"lang"`
}

type RemoteJSON struct {
	BaseURL        string   `json:"base_url"`
	APIKey         string   `json:"api_key"`
	AccessToken    string   `json:"access_token"`
	RequestTimeout Duration `json:"request_timeout"`
}

type StorageJSON struct {
	DB      DBJSON      `json:"db"`
	Exports ExportsJSON `json:"exports"`
}

type DBJSON struct {
	DSN string `json:"dsn"`
}

type ExportsJSON struct {
	Dir        string `json:"dir"`
	FontPath   string `json:"font_path"`
	LicenseKey string `json:"license_key"`
}

type SyncJSON struct {
	Interval Duration `json:"interval"`
}

func (j *StructuredJSONConfig) asConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			Lang: j.App.Lang,
		},
		Remote: Remote{
			BaseURL:        j.Remote.BaseURL,
			APIKey:         j.Remote.APIKey,
			AccessToken:    j.Remote.AccessToken,
			RequestTimeout: j.Remote.RequestTimeout.Duration,
		},
		Storage: Storage{
			DB: DB{
				DSN: j.Storage.DB.DSN,
			},
			Exports: Exports{
				Dir:        j.Storage.Exports.Dir,
				FontPath:   j.Storage.Exports.FontPath,
				LicenseKey: j.Storage.Exports.LicenseKey,
			},
		},
		Sync: Sync{
			Interval: j.Sync.Interval.Duration,
		},
	}
}

// parseJSON reads and decodes the JSON config file at path and converts it
// into a *StructuredConfig suitable for merging.
func parseJSON(path string) (*StructuredConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading json config file %q: %w", path, err)
	}

	jsonCfg := &StructuredJSONConfig{}
	if err := json.Unmarshal(data, jsonCfg); err != nil {
		return nil, fmt.Errorf("error unmarshalling json config file %q: %w", path, err)
	}

	return jsonCfg.asConfig(), nil
}
