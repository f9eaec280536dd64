package wvlegis

import (
	"context"
	"testing"
	"time"

	scraper "wvlegis-backend/lib/scrapers/wvlegis"
	"wvlegis-backend/lib/testutil"
	"wvlegis-backend/services/wvlegis/db"

	"github.com/stretchr/testify/require"
)

func setup(t testing.TB) (Service, func()) {
	res, cleanup := testutil.SetupService(t, testutil.ServiceParams{
		Name:     "services/wvlegis",
		DbSchema: db.Schema,
	})
	return NewService(res.DB, nil), cleanup
}

func testBill() *scraper.Bill {
	return &scraper.Bill{
		Session:  "2012",
		Chamber:  scraper.ChamberLower,
		ID:       "HB 4001",
		Title:    "A bill about roads",
		Type:     scraper.BillTypeBill,
		Subjects: []string{"Roads and Transportation"},
		Sponsors: []string{"Smith", "Jones"},
		Actions: []scraper.Action{
			{
				Actor: scraper.ChamberLower,
				Text:  "Filed for introduction",
				Date:  time.Date(2012, 1, 11, 0, 0, 0, 0, time.UTC),
				Type:  scraper.ActionFiled,
			},
			{
				Actor: scraper.ChamberLower,
				Text:  "Passed House (Roll No. 12)",
				Date:  time.Date(2012, 2, 9, 0, 0, 0, 0, time.UTC),
				Type:  scraper.ActionPassed,
			},
		},
		Versions: []scraper.Version{
			{
				Name:     "Introduced Version",
				URL:      "http://www.legis.state.wv.us/Bill_Status/bills_text.cfm?billdoc=hb4001%20intr.htm&yr=2012&sesstype=RS&i=1",
				Mimetype: scraper.MimetypeHTML,
			},
		},
		Votes: []*scraper.Vote{
			{
				Chamber:    scraper.ChamberLower,
				Date:       time.Date(2012, 2, 9, 0, 0, 0, 0, time.UTC),
				Motion:     "Passed House (Roll No. 12)",
				Passed:     true,
				YesCount:   2,
				NoCount:    1,
				OtherCount: 0,
				YesVotes:   []string{"Smith", "Jones"},
				NoVotes:    []string{"Brown"},
				Source:     "http://www.legis.state.wv.us/legisdocs/2012/RS/votes/house/rc12.pdf",
			},
		},
		Sources: []string{"http://www.legis.state.wv.us/Bill_Status/Bills_history.cfm?input=4001"},
	}
}

func TestSaveBillRoundtrip(t *testing.T) {
	service, cleanup := setup(t)
	defer cleanup()

	ctx := context.Background()
	saved := testBill()
	require.NoError(t, service.SaveBill(ctx, saved, "run1"))

	loaded, err := service.GetBill(ctx, "2012", scraper.ChamberLower, "HB 4001")
	require.NoError(t, err)

	require.Equal(t, saved.Title, loaded.Title)
	require.Equal(t, saved.Type, loaded.Type)
	require.Equal(t, saved.Subjects, loaded.Subjects)
	require.Equal(t, saved.Sponsors, loaded.Sponsors)
	require.Equal(t, saved.Actions, loaded.Actions)
	require.Equal(t, saved.Versions, loaded.Versions)

	require.Len(t, loaded.Votes, 1)
	require.Equal(t, saved.Votes[0].Motion, loaded.Votes[0].Motion)
	require.Equal(t, saved.Votes[0].YesVotes, loaded.Votes[0].YesVotes)
	require.Equal(t, saved.Votes[0].NoVotes, loaded.Votes[0].NoVotes)
	require.True(t, loaded.Votes[0].Passed)
}

func TestSaveBillReplacesExisting(t *testing.T) {
	service, cleanup := setup(t)
	defer cleanup()

	ctx := context.Background()
	require.NoError(t, service.SaveBill(ctx, testBill(), "run1"))

	updated := testBill()
	updated.Title = "A bill about roads (amended)"
	updated.Sponsors = []string{"Smith"}
	require.NoError(t, service.SaveBill(ctx, updated, "run2"))

	rows, err := service.ListBills(ctx, "2012", scraper.ChamberLower)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	require.Equal(t, "A bill about roads (amended)", rows[0].Title)
	require.Equal(t, "run2", rows[0].ScrapeRun)

	loaded, err := service.GetBill(ctx, "2012", scraper.ChamberLower, "HB 4001")
	require.NoError(t, err)
	require.Equal(t, []string{"Smith"}, loaded.Sponsors)
	require.Len(t, loaded.Votes, 1)
}
