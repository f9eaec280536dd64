package commands

import (
	"os"

	"wvlegis-backend/lib/serviceutil"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(billsCmd)
}

var billsCmd = &cobra.Command{
	Use:   "bills <session> <chamber>",
	Short: "Prints the bills stored in the database for a session and chamber.",
	Args:  cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		session := args[0]
		chamber := parseChamber(args[1])

		e := setup()
		defer e.close()

		rows, err := e.service.ListBills(cmd.Context(), session, chamber)
		if err != nil {
			serviceutil.Fatal("failed to list bills", err)
		}

		t := table.NewWriter()
		t.SetOutputMirror(os.Stdout)
		t.AppendHeader(table.Row{"Bill", "Type", "Title", "Run"})
		for _, row := range rows {
			t.AppendRow(table.Row{row.BillID, row.BillType, row.Title, row.ScrapeRun})
		}
		t.Render()
	},
}
