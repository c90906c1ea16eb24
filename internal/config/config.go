package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container for the madrasa
// client. It aggregates all sub-configurations and is populated by merging
// values from environment variables, CLI overrides, and an optional JSON
// file.
//
// Struct tags:
//   - envPrefix — prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       — direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings such as UI language and version.
	App App `envPrefix:"APP_"`

	// Remote holds the remote tabular store endpoint and credentials.
	Remote Remote `envPrefix:"REMOTE_"`

	// Storage holds the local persistence settings (offline cache database,
	// export output directory).
	Storage Storage `envPrefix:"STORAGE_"`

	// Sync holds background synchronisation settings.
	Sync Sync `envPrefix:"SYNC_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged on top of the values
	// already loaded from environment variables and CLI overrides.
	// Populated via the CONFIG environment variable or the -c / --config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values.
type App struct {
	// Lang selects the language of user-facing messages: "en" or "ur".
	// Env: APP_LANG
	Lang string `env:"LANG"`

	// Version is the semantic version string of the running application.
	// Env: APP_VERSION
	Version string `env:"VERSION"`
}

// Remote holds connection settings for the remote tabular REST store.
type Remote struct {
	// BaseURL is the root URL of the remote store
	// (e.g. "https://example.supabase.co").
	// Env: REMOTE_BASE_URL
	BaseURL string `env:"BASE_URL"`

	// APIKey is the project API key sent with every request.
	// Env: REMOTE_API_KEY
	APIKey string `env:"API_KEY"`

	// AccessToken is an optional pre-issued bearer token. When set, the
	// client skips the interactive sign-in step.
	// Env: REMOTE_ACCESS_TOKEN
	AccessToken string `env:"ACCESS_TOKEN"`

	// RequestTimeout is the maximum duration of a single outbound request
	// (e.g. "15s").
	// Env: REMOTE_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Storage groups local persistence settings.
type Storage struct {
	// DB holds the local offline database settings.
	DB DB `envPrefix:"DB_"`

	// Exports holds settings for generated PDF reports.
	Exports Exports `envPrefix:"EXPORTS_"`
}

// DB holds connection settings for the local SQLite database that stores
// the offline cache and the sync queue.
type DB struct {
	// DSN is the SQLite file path (e.g. "madrasa.db").
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`
}

// Exports holds file-system settings for generated reports.
type Exports struct {
	// Dir is the directory where PDF reports are written.
	// Env: STORAGE_EXPORTS_DIR
	Dir string `env:"DIR"`

	// FontPath is an optional TTF font file used for Urdu-capable PDF
	// rendering. When empty, a standard Latin font is used.
	// Env: STORAGE_EXPORTS_FONT_PATH
	FontPath string `env:"FONT_PATH"`

	// LicenseKey is the unipdf license key required to write PDF files.
	// Env: STORAGE_EXPORTS_LICENSE_KEY, falling back to the conventional
	// UNIDOC_LICENSE_API_KEY variable when unset.
	LicenseKey string `env:"LICENSE_KEY"`
}

// Sync holds background synchronisation settings.
type Sync struct {
	// Interval is how often the connectivity monitor probes the remote
	// store and attempts a replay (e.g. "30s").
	// Env: SYNC_INTERVAL
	Interval time.Duration `env:"INTERVAL"`
}

// GetStructuredConfig loads and merges the application configuration from
// all available sources in the following priority order (last source wins
// for non-zero fields):
//  1. Environment variables
//  2. CLI overrides
//  3. JSON file (path resolved from sources 1 and 2)
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load.
func GetStructuredConfig(overrides Overrides) (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withOverrides(overrides).
		withJSON().
		build()
}
