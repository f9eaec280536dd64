package wvlegis

import (
	"context"
	"testing"
	"time"

	"wvlegis-backend/lib/kvstore"
	"wvlegis-backend/lib/telemetry"

	"github.com/stretchr/testify/require"
)

func TestClassifyAction(t *testing.T) {
	testCases := []struct {
		action   string
		expected ActionType
	}{
		{"Read 1st time", ActionReading1},
		{"Read 2nd time", ActionReading2},
		{"Read 3rd time", ActionReading3},
		{"Filed for introduction", ActionFiled},
		{"Introduced in Senate", ActionIntroduced},
		{"To Governor 3/20/12", ActionGovernorReceived},
		{"To Governor's Journal", ActionCommitteeReferred},
		{"To Judiciary", ActionCommitteeReferred},
		{"Approved by Governor 3/28/12", ActionGovernorSigned},
		{"Passed Senate (Roll No. 25)", ActionPassed},
		{"Passed House (Roll No. 91)", ActionPassed},
		{"Reported do pass", ActionCommitteePassed},
		{"With amendment, do pass", ActionCommitteePassed},
		{"Rereferred to Finance", ActionOther},
		{"Communicated to Senate", ActionOther},
	}

	for _, test := range testCases {
		require.Equal(
			t, test.expected, ClassifyAction(test.action),
			"action: %s", test.action,
		)
	}
}

func TestBillTypeFromID(t *testing.T) {
	require.Equal(t, BillTypeBill, BillTypeFromID("SB 1"))
	require.Equal(t, BillTypeBill, BillTypeFromID("HB 4001"))
	require.Equal(t, BillTypeResolution, BillTypeFromID("SR 5"))
	require.Equal(t, BillTypeConcurrentResolution, BillTypeFromID("HCR 12"))
	require.Equal(t, BillTypeJointResolution, BillTypeFromID("SJR 2"))
}

const billDetailURL = "http://www.legis.state.wv.us/Bill_Status/Bills_history.cfm?input=1&year=2012&sessiontype=RS&btype=bill"

const billDetailPage = `
<html><body>
<div id="bhistleft">
<a href="Bills_Subject.cfm">Subject</a>
<a href="Bills_Subject.cfm?sub=EDU">Education</a>
<a href="Bills_Sponsors.cfm">Sponsors</a>
<a href="Bills_Sponsors.cfm?s=1">Smith</a>
<a href="Bills_Sponsors.cfm?s=2">Jones</a>
<a href="bills_text.cfm?billdoc=sb1%20intr.htm&yr=2012&sesstype=RS&i=1"
   title="HTML - Introduced Version - SB 1">Introduced Version</a>
<a href="/legisdocs/2012/RS/votes/house/rc12.pdf">Roll Call 12</a>
</div>
<table class="tabborder">
<tr><th>Stage</th><th>Action</th><th>Date</th></tr>
<tr><td>4</td><td>Communicated to Senate</td><td>02/10/12</td></tr>
<tr><td>3</td><td>Passed House (Roll No. 12)</td><td>02/09/12</td></tr>
<tr><td>2</td><td>Read 1st time</td><td>01/15/12</td></tr>
<tr><td>1</td><td>Filed for introduction</td><td>01/11/12</td></tr>
</table>
</body></html>
`

const billVoteText = "Passed House (Roll No. 12)\n\n" +
	"     YEAS: 2   NAYS: 0   NOT VOTING: 0 - PASSED\n\n" +
	"YEAS: 2\nSmith   Jones\n"

func TestScrapeBill(t *testing.T) {
	cleanup := telemetry.SetupForTesting(t, "test:scrapers/wvlegis")
	defer cleanup()

	fetcher := &fakeFetcher{pages: map[string]string{
		billDetailURL: billDetailPage,
		"http://www.legis.state.wv.us/legisdocs/2012/RS/votes/house/rc12.pdf": "%PDF-1.4",
		"http://www.legis.state.wv.us/Bill_Status/bills_text.cfm?billdoc=sb1%20intr.htm&yr=2012&sesstype=RS&i=1": "<html>text</html>",
	}}
	scraper := NewScraper(fetcher, kvstore.NewMemory(), fakeExtractor{text: billVoteText})

	index := LegacyIndex{"sb1": {{Folder: "01-11 Introduced", Filename: "sb1 intr"}}}
	ref := BillRef{ID: "SB 1", Title: "A bill about schools", URL: billDetailURL}

	bill, err := scraper.ScrapeBill(context.Background(), "2012", ChamberLower, ref, index)
	require.NoError(t, err)

	require.Equal(t, "SB 1", bill.ID)
	require.Equal(t, BillTypeBill, bill.Type)
	require.Equal(t, []string{"Education"}, bill.Subjects)
	require.Equal(t, []string{"Smith", "Jones"}, bill.Sponsors)
	require.Equal(t, []string{billDetailURL}, bill.Sources)

	// the linked version and the guessed one share a canonical key,
	// the legacy .wpd does not
	require.Len(t, bill.Versions, 2)
	require.Equal(t, "Introduced Version", bill.Versions[0].Name)
	require.Equal(t, MimetypeHTML, bill.Versions[0].Mimetype)
	require.Equal(t, MimetypeWordPerfect, bill.Versions[1].Mimetype)

	require.Len(t, bill.Votes, 1)
	require.Equal(t, ChamberLower, bill.Votes[0].Chamber)
	require.Equal(t, 2, bill.Votes[0].YesCount)

	require.Len(t, bill.Actions, 4)
	require.Equal(t, Action{
		Actor: ChamberLower,
		Text:  "Filed for introduction",
		Date:  time.Date(2012, 1, 11, 0, 0, 0, 0, time.UTC),
		Type:  ActionFiled,
	}, bill.Actions[0])

	// the bill moves to the senate on transmittal
	last := bill.Actions[len(bill.Actions)-1]
	require.Equal(t, "Communicated to Senate", last.Text)
	require.Equal(t, ChamberUpper, last.Actor)
}

func TestScrapeBillIncompleteResolutionPage(t *testing.T) {
	cleanup := telemetry.SetupForTesting(t, "test:scrapers/wvlegis")
	defer cleanup()

	resURL := "http://www.legis.state.wv.us/Bill_Status/Bills_history.cfm?input=5&year=2012&sessiontype=RS&btype=res"
	fetcher := &fakeFetcher{pages: map[string]string{
		resURL: "<html><body>truncated</body></html>",
	}}
	scraper := NewScraper(fetcher, kvstore.NewMemory(), fakeExtractor{})

	ref := BillRef{ID: "SR 5", Title: "A resolution", URL: resURL}
	_, err := scraper.ScrapeBill(context.Background(), "2012", ChamberUpper, ref, LegacyIndex{})
	require.ErrorIs(t, err, ErrIncompletePage)

	// exactly one retry
	require.Len(t, fetcher.calls, 2)
}

func TestScrapeResolutionSponsorBlock(t *testing.T) {
	cleanup := telemetry.SetupForTesting(t, "test:scrapers/wvlegis")
	defer cleanup()

	resURL := "http://www.legis.state.wv.us/Bill_Status/Bills_history.cfm?input=5&year=2012&sessiontype=RS&btype=res"
	page := `<html><body>
<div id="bhistleft">SPONSOR(S)
SPONSORS: Smith, Jones
</div>
</body></html>`
	fetcher := &fakeFetcher{pages: map[string]string{resURL: page}}
	scraper := NewScraper(fetcher, kvstore.NewMemory(), fakeExtractor{})

	ref := BillRef{ID: "SR 5", Title: "A resolution", URL: resURL}
	bill, err := scraper.ScrapeBill(context.Background(), "2012", ChamberUpper, ref, LegacyIndex{})
	require.NoError(t, err)
	require.Equal(t, []string{"Smith", "Jones"}, bill.Sponsors)
}

func TestListBills(t *testing.T) {
	cleanup := telemetry.SetupForTesting(t, "test:scrapers/wvlegis")
	defer cleanup()

	fetcher := &fakeFetcher{pages: map[string]string{
		"http://www.legis.state.wv.us/Bill_Status/Bills_all_bills.cfm?year=2012&sessiontype=RS&btype=bill&orig=s": `
<table>
<tr><td><a href="Bills_history.cfm?input=1&year=2012">SB 1</a></td><td>A bill about schools</td></tr>
<tr><td><a href="Bills_history.cfm?input=2&year=2012">SB 2</a></td><td>A bill about roads</td></tr>
</table>`,
		"http://www.legis.state.wv.us/Bill_Status/res_list.cfm?year=2012&sessiontype=rs&btype=res": `
<table>
<tr><td><a href="Bills_history.cfm?input=5&year=2012&houseorig=s">SR 5</a></td><td>A resolution</td></tr>
<tr><td><a href="Bills_history.cfm?input=7&year=2012&houseorig=h">HR 7</a></td><td>A house resolution</td></tr>
</table>`,
	}}
	scraper := NewScraper(fetcher, kvstore.NewMemory(), fakeExtractor{})

	refs, err := scraper.ListBills(context.Background(), "2012", ChamberUpper)
	require.NoError(t, err)

	require.Len(t, refs, 3)
	require.Equal(t, "SB 1", refs[0].ID)
	require.Equal(t, "A bill about schools", refs[0].Title)
	require.Equal(t, "http://www.legis.state.wv.us/Bill_Status/Bills_history.cfm?input=1&year=2012", refs[0].URL)
	require.Equal(t, "SR 5", refs[2].ID)
}
