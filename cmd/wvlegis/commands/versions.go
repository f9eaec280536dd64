package commands

import (
	"os"

	scraper "wvlegis-backend/lib/scrapers/wvlegis"
	"wvlegis-backend/lib/serviceutil"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(versionsCmd)
}

var versionsCmd = &cobra.Command{
	Use:   "versions <session> <chamber> <bill id>",
	Short: "Prints the reconciled version documents of a single bill.",
	Args:  cobra.ExactArgs(3),
	Run: func(cmd *cobra.Command, args []string) {
		session := args[0]
		chamber := parseChamber(args[1])
		billID := args[2]

		e := setup()
		defer e.close()

		index, err := e.scraper.BuildLegacyIndex(cmd.Context(), session, chamber)
		if err != nil {
			serviceutil.Fatal("failed to build index", err)
		}

		ref := scraper.BillRef{
			ID:  billID,
			URL: scraper.BillHistoryURL(session, billID),
		}
		bill, err := e.scraper.ScrapeBill(cmd.Context(), session, chamber, ref, index)
		if err != nil {
			serviceutil.Fatal("failed to scrape bill", err)
		}

		t := table.NewWriter()
		t.SetOutputMirror(os.Stdout)
		t.AppendHeader(table.Row{"Name", "Mimetype", "URL"})
		for _, version := range bill.Versions {
			t.AppendRow(table.Row{version.Name, version.Mimetype, version.URL})
		}
		t.Render()
	},
}
