package commands

import (
	"os"

	scraper "wvlegis-backend/lib/scrapers/wvlegis"
	"wvlegis-backend/lib/serviceutil"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

var indexRebuild *bool

func init() {
	indexRebuild = indexCmd.Flags().Bool("rebuild", false, "Drop the cached index and walk the document listing again.")
	rootCmd.AddCommand(indexCmd)
}

var indexCmd = &cobra.Command{
	Use:   "index <session> <chamber>",
	Short: "Prints the legacy document index for a chamber.",
	Args:  cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		session := args[0]
		chamber := parseChamber(args[1])

		e := setup()
		defer e.close()

		if *indexRebuild {
			err := scraper.InvalidateLegacyIndex(cmd.Context(), e.store, chamber)
			if err != nil {
				serviceutil.Fatal("failed to invalidate cached index", err)
			}
		}

		index, err := e.scraper.BuildLegacyIndex(cmd.Context(), session, chamber)
		if err != nil {
			serviceutil.Fatal("failed to build index", err)
		}

		t := table.NewWriter()
		t.SetOutputMirror(os.Stdout)
		t.AppendHeader(table.Row{"Bill", "Folder", "Filename"})
		for billID, entries := range index {
			for _, entry := range entries {
				t.AppendRow(table.Row{billID, entry.Folder, entry.Filename})
			}
		}
		t.Render()
	},
}
