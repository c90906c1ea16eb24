package config

import (
	"os"
	"time"
)

const (
	defaultLang           = "en"
	defaultDSN            = "madrasa.db"
	defaultExportsDir     = "exports"
	defaultSyncInterval   = 30 * time.Second
	defaultRequestTimeout = 15 * time.Second
)

// ClientConfig is the validated configuration consumed by the client
// application. It is derived from [StructuredConfig] with defaults applied.
type ClientConfig struct {
	App     ClientApp
	Remote  ClientRemote
	Storage ClientStorage
	Sync    ClientSync
}

// ClientApp holds application-level client settings.
type ClientApp struct {
	// Lang selects the language of user-facing messages: "en" or "ur".
	Lang string
}

// ClientRemote holds the remote store endpoint and credentials.
type ClientRemote struct {
	BaseURL        string
	APIKey         string
	AccessToken    string
	RequestTimeout time.Duration
}

// ClientStorage holds local persistence settings.
type ClientStorage struct {
	DB      ClientDB
	Exports ClientExports
}

// ClientDB holds the local SQLite database settings.
type ClientDB struct {
	DSN string
}

// ClientExports holds settings for generated PDF reports.
type ClientExports struct {
	Dir      string
	FontPath string

	// LicenseKey activates the PDF library; without it report export is
	// refused with a clear error.
	LicenseKey string
}

// ClientSync holds background synchronisation settings.
type ClientSync struct {
	Interval time.Duration
}

// GetClientConfig assembles the client configuration from environment
// variables, CLI overrides, and an optional JSON file, applies defaults for
// unset optional fields, and validates the result.
func GetClientConfig(overrides Overrides) (*ClientConfig, error) {
	structured, err := GetStructuredConfig(overrides)
	if err != nil {
		return nil, err
	}

	cfg := &ClientConfig{
		App: ClientApp{
			Lang: structured.App.Lang,
		},
		Remote: ClientRemote{
			BaseURL:        structured.Remote.BaseURL,
			APIKey:         structured.Remote.APIKey,
			AccessToken:    structured.Remote.AccessToken,
			RequestTimeout: structured.Remote.RequestTimeout,
		},
		Storage: ClientStorage{
			DB: ClientDB{
				DSN: structured.Storage.DB.DSN,
			},
			Exports: ClientExports{
				Dir:        structured.Storage.Exports.Dir,
				FontPath:   structured.Storage.Exports.FontPath,
				LicenseKey: structured.Storage.Exports.LicenseKey,
			},
		},
		Sync: ClientSync{
			Interval: structured.Sync.Interval,
		},
	}
	cfg.applyDefaults()

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *ClientConfig) applyDefaults() {
	if c.App.Lang == "" {
		c.App.Lang = defaultLang
	}
	if c.Storage.DB.DSN == "" {
		c.Storage.DB.DSN = defaultDSN
	}
	if c.Storage.Exports.Dir == "" {
		c.Storage.Exports.Dir = defaultExportsDir
	}
	if c.Storage.Exports.LicenseKey == "" {
		c.Storage.Exports.LicenseKey = os.Getenv("UNIDOC_LICENSE_API_KEY")
	}
	if c.Sync.Interval <= 0 {
		c.Sync.Interval = defaultSyncInterval
	}
	if c.Remote.RequestTimeout <= 0 {
		c.Remote.RequestTimeout = defaultRequestTimeout
	}
}
