package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Tanzeel8246/madrasa/internal/i18n"
)

var statusJSON bool

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show connectivity and pending sync changes",
	RunE:  runStatus,
}

func init() {
	statusCmd.Flags().BoolVar(&statusJSON, "json", false, "output as JSON")
}

func runStatus(cmd *cobra.Command, args []string) error {
	status := app.Services.Status()

	if statusJSON {
		output, err := json.MarshalIndent(status, "", "  ")
		if err != nil {
			return fmt.Errorf("marshal status: %w", err)
		}
		fmt.Println(string(output))
		return nil
	}

	lang := app.Config.App.Lang
	conn := i18n.T(lang, i18n.KeyStatusOffline)
	if status.Online {
		conn = i18n.T(lang, i18n.KeyStatusOnline)
	}

	fmt.Println(conn)
	fmt.Printf("%d %s\n", status.Pending, i18n.T(lang, i18n.KeyPendingCount))
	if status.Syncing {
		fmt.Println(i18n.T(lang, i18n.KeySyncInFlight))
	}
	return nil
}
