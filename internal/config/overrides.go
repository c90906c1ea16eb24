package config

import "time"

// Overrides carries configuration values supplied on the command line.
// The CLI layer owns argument parsing (cobra), so this package receives the
// parsed values instead of reading os.Args itself; an Overrides value acts
// as the "flags" source of the merge chain.
type Overrides struct {
	BaseURL        string
	APIKey         string
	AccessToken    string
	DSN            string
	ExportsDir     string
	FontPath       string
	PDFLicenseKey  string
	Lang           string
	JSONFilePath   string
	SyncInterval   time.Duration
	RequestTimeout time.Duration
}

func (o Overrides) asConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			Lang: o.Lang,
		},
		Remote: Remote{
			BaseURL:        o.BaseURL,
			APIKey:         o.APIKey,
			AccessToken:    o.AccessToken,
			RequestTimeout: o.RequestTimeout,
		},
		Storage: Storage{
			DB: DB{
				DSN: o.DSN,
			},
			Exports: Exports{
				Dir:        o.ExportsDir,
				FontPath:   o.FontPath,
				LicenseKey: o.PDFLicenseKey,
			},
		},
		Sync: Sync{
			Interval: o.SyncInterval,
		},
		JSONFilePath: o.JSONFilePath,
	}
}
