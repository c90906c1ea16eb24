package main

import (
	"github.com/spf13/cobra"
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Show a live sync status indicator",
	Long:  `Watch keeps the connectivity monitor running and shows a live indicator:
online/offline state, the replay spinner, and the number of pending offline
changes. Queued changes replay automatically as soon as connectivity
returns. Press q to quit.`,
	RunE: runWatch,
}

func runWatch(cmd *cobra.Command, args []string) error {
	ctx := appContext(cmd)

	app.Services.Monitor.Start(ctx, app.Config.Sync.Interval)
	defer app.Services.Monitor.Stop()

	return app.Indicator.Watch(ctx)
}
