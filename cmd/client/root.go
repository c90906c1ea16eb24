package main

import (
	"context"
	"time"

	"github.com/spf13/cobra"

	"github.com/Tanzeel8246/madrasa/internal/client"
	"github.com/Tanzeel8246/madrasa/internal/config"
	"github.com/Tanzeel8246/madrasa/internal/logger"
)

// Global flag values, merged into the configuration as CLI overrides.
var (
	flagConfig      string
	flagBaseURL     string
	flagAPIKey      string
	flagAccessToken string
	flagDB          string
	flagLang        string
	flagExportsDir  string
	flagFontPath    string
	flagPDFLicense  string
	flagInterval    time.Duration
	flagTimeout     time.Duration
)

// app is the assembled application, initialized by PersistentPreRunE so all
// subcommands can use it.
var app *client.App

var rootCmd = &cobra.Command{
	Use:   "madrasa",
	Short: "Madrasa Management Kit",
	Long:  `Madrasa is an offline-first administration tool for a madrasa:
students, teachers, classes, attendance, courses, fees, and learning reports.

Every record is cached locally. Changes made while offline are queued in a
durable sync queue and replayed against the remote store, in order, once
connectivity returns.`,
	SilenceUsage:      true,
	PersistentPreRunE: initApp,
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		stopApp()
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&flagConfig, "config", "c", "", "path to JSON config file")
	rootCmd.PersistentFlags().StringVar(&flagBaseURL, "base-url", "", "remote store base URL")
	rootCmd.PersistentFlags().StringVar(&flagAPIKey, "api-key", "", "remote store API key")
	rootCmd.PersistentFlags().StringVar(&flagAccessToken, "token", "", "pre-issued access token")
	rootCmd.PersistentFlags().StringVar(&flagDB, "db", "", "local database path (default: madrasa.db)")
	rootCmd.PersistentFlags().StringVar(&flagLang, "lang", "", "message language: en or ur (default: en)")
	rootCmd.PersistentFlags().StringVar(&flagExportsDir, "exports-dir", "", "directory for PDF reports (default: exports)")
	rootCmd.PersistentFlags().StringVar(&flagFontPath, "font", "", "TTF font for Urdu-capable PDF rendering")
	rootCmd.PersistentFlags().StringVar(&flagPDFLicense, "pdf-license-key", "", "PDF library license key (default: UNIDOC_LICENSE_API_KEY)")
	rootCmd.PersistentFlags().DurationVar(&flagInterval, "sync-interval", 0, "connectivity probe interval (default: 30s)")
	rootCmd.PersistentFlags().DurationVar(&flagTimeout, "timeout", 0, "remote request timeout (default: 15s)")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(signInCmd)
	rootCmd.AddCommand(statusCmd)
	rootCmd.AddCommand(syncCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(addCmd)
	rootCmd.AddCommand(updateCmd)
	rootCmd.AddCommand(deleteCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(watchCmd)
}

func overridesFromFlags() config.Overrides {
	return config.Overrides{
		BaseURL:        flagBaseURL,
		APIKey:         flagAPIKey,
		AccessToken:    flagAccessToken,
		DSN:            flagDB,
		ExportsDir:     flagExportsDir,
		FontPath:       flagFontPath,
		PDFLicenseKey:  flagPDFLicense,
		Lang:           flagLang,
		JSONFilePath:   flagConfig,
		SyncInterval:   flagInterval,
		RequestTimeout: flagTimeout,
	}
}

// initApp builds the application graph and probes connectivity once so every
// command starts with the real online/offline state.
func initApp(cmd *cobra.Command, args []string) error {
	if cmd.Name() == "version" {
		return nil
	}

	log := logger.NewClientLogger("madrasa-client")

	cfg, err := config.GetClientConfig(overridesFromFlags())
	if err != nil {
		return err
	}

	app, err = client.NewApp(cfg, log)
	if err != nil {
		return err
	}

	ctx := appContext(cmd)
	if err = app.Services.RestorePending(ctx); err != nil {
		return err
	}
	app.Services.Monitor.ProbeOnce(ctx)

	return nil
}

func stopApp() {
	if app != nil {
		app.Stop()
	}
}

// appContext attaches the application logger to the command's context.
func appContext(cmd *cobra.Command) context.Context {
	return app.Context(cmd.Context())
}
