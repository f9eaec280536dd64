package commands

import (
	"log/slog"
	"os"
	"time"

	"wvlegis-backend/lib/serviceutil"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(scrapeCmd)
}

var scrapeCmd = &cobra.Command{
	Use:   "scrape <session> <chamber>",
	Short: "Scrapes every bill originating in a chamber and writes it to the database.",
	Args:  cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		session := args[0]
		chamber := parseChamber(args[1])

		e := setup()
		defer e.close()

		t1 := time.Now()
		report, err := e.service.ScrapeChamber(cmd.Context(), session, chamber)
		if err != nil {
			serviceutil.Fatal("failed to scrape chamber", err)
		}
		slog.Info("scraping time", "seconds", time.Since(t1).Seconds())

		t := table.NewWriter()
		t.SetOutputMirror(os.Stdout)
		t.AppendHeader(table.Row{"Run", "Bills", "Versions", "Actions", "Votes", "Failed"})
		t.AppendRow(table.Row{
			report.RunID,
			report.Bills,
			report.Versions,
			report.Actions,
			report.Votes,
			report.Failed,
		})
		t.Render()
	},
}
