package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Tanzeel8246/madrasa/internal/i18n"
	"github.com/Tanzeel8246/madrasa/internal/service"
)

var syncCmd = &cobra.Command{
	Use:   "sync",
	Short: "Replay queued offline changes now",
	Long:  `Sync pushes every queued offline change to the remote store in the order
it was made, then refreshes the local cache from the server. Changes that
fail stay queued for the next attempt.`,
	RunE: runSync,
}

func runSync(cmd *cobra.Command, args []string) error {
	ctx := appContext(cmd)
	lang := app.Config.App.Lang

	err := app.Services.Engine.ProcessQueue(ctx)
	switch {
	case err == nil:
		fmt.Println(i18n.T(lang, i18n.KeySyncDone))
		return nil
	case errors.Is(err, service.ErrOffline):
		return errors.New(i18n.T(lang, i18n.KeySyncOffline))
	case errors.Is(err, service.ErrSyncInProgress):
		return errors.New(i18n.T(lang, i18n.KeySyncInFlight))
	default:
		return fmt.Errorf("%s: %w", i18n.T(lang, i18n.KeySyncFailed), err)
	}
}
