package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var exportDate string

var exportCmd = &cobra.Command{
	Use:   "export {students|fees|attendance}",
	Short: "Render a collection into a PDF report",
	Long:  `Export renders a PDF report from the locally cached data, so it works
offline. Reports land in the exports directory (--exports-dir).

Pass --font with a TTF file to render Urdu text in reports. Writing PDFs
requires a license key, taken from --pdf-license-key or the
UNIDOC_LICENSE_API_KEY environment variable.`,
	Args:      cobra.ExactArgs(1),
	ValidArgs: []string{"students", "fees", "attendance"},
	RunE:      runExport,
}

func init() {
	exportCmd.Flags().StringVar(&exportDate, "date", "", "limit the attendance sheet to one date (YYYY-MM-DD)")
}

func runExport(cmd *cobra.Command, args []string) error {
	ctx := appContext(cmd)

	var (
		path string
		err  error
	)
	switch args[0] {
	case "students":
		path, err = app.Exporter.StudentsRoster(ctx)
	case "fees":
		path, err = app.Exporter.FeesLedger(ctx)
	case "attendance":
		path, err = app.Exporter.AttendanceSheet(ctx, exportDate)
	default:
		return fmt.Errorf("unknown report %q", args[0])
	}
	if err != nil {
		return err
	}

	fmt.Println(path)
	return nil
}
