// Package wvlegis scrapes bill metadata from the West Virginia
// legislature's bill status site: identifiers, sponsors, actions,
// version documents and roll-call votes.
package wvlegis

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/url"
	"strings"
	"time"

	"wvlegis-backend/lib/fetch"
	"wvlegis-backend/lib/htmlutil"
	"wvlegis-backend/lib/kvstore"
	"wvlegis-backend/lib/pdftext"

	"github.com/PuerkitoBio/goquery"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

const (
	baseURL        = "http://www.legis.state.wv.us"
	publicDocsRoot = "ftp://www.legis.state.wv.us/publicdocs"
)

// ErrIncompletePage reports that a bill detail page came back without
// its expected structure even after a refetch.
var ErrIncompletePage = errors.New("incomplete bill detail page")

type Scraper struct {
	http fetch.Client
	kv   kvstore.Store
	pdf  pdftext.Extractor
}

func NewScraper(client fetch.Client, store kvstore.Store, extractor pdftext.Extractor) *Scraper {
	return &Scraper{
		http: client,
		kv:   store,
		pdf:  extractor,
	}
}

// BillRef is one row of a listing page: enough to identify a bill and
// fetch its detail page.
type BillRef struct {
	ID    string
	Title string
	URL   string
}

// BillHistoryURL returns the detail page address of a bill identifier
// like "SB 1" or "HCR 12".
func BillHistoryURL(session, billID string) string {
	btype := "bill"
	if BillTypeFromID(billID) != BillTypeBill {
		btype = "res"
	}
	number := billID
	if fields := strings.Fields(billID); len(fields) == 2 {
		number = fields[1]
	}
	return fmt.Sprintf(
		"%s/Bill_Status/Bills_history.cfm?input=%s&year=%s&sessiontype=RS&btype=%s",
		baseURL, number, session, btype,
	)
}

func (s *Scraper) listAnchors(ctx context.Context, listURL, selector string) ([]BillRef, error) {
	page, err := s.http.Text(ctx, listURL)
	if err != nil {
		return nil, err
	}
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(page))
	if err != nil {
		return nil, err
	}
	base, err := url.Parse(listURL)
	if err != nil {
		return nil, err
	}

	var refs []BillRef
	doc.Find(selector).Each(func(_ int, a *goquery.Selection) {
		href, ok := a.Attr("href")
		if !ok {
			return
		}
		link, err := url.Parse(href)
		if err != nil {
			return
		}
		refs = append(refs, BillRef{
			ID:    htmlutil.CleanText(a.Text()),
			Title: htmlutil.CleanText(a.Closest("tr").Find("td").Eq(1).Text()),
			URL:   base.ResolveReference(link).String(),
		})
	})
	return refs, nil
}

// ListBills returns the bills and resolutions originating in a chamber
// for a session.
func (s *Scraper) ListBills(ctx context.Context, session string, chamber Chamber) ([]BillRef, error) {
	ctx, span := tracer.Start(ctx, "ListBills")
	defer span.End()

	billsURL := fmt.Sprintf(
		"%s/Bill_Status/Bills_all_bills.cfm?year=%s&sessiontype=RS&btype=bill&orig=%s",
		baseURL, session, chamber.OriginCode(),
	)
	refs, err := s.listAnchors(ctx, billsURL, `a[href*="Bills_history"]`)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to list bills")
		return nil, err
	}

	resURL := fmt.Sprintf(
		"%s/Bill_Status/res_list.cfm?year=%s&sessiontype=rs&btype=res",
		baseURL, session,
	)
	resRefs, err := s.listAnchors(
		ctx, resURL,
		fmt.Sprintf(`a[href*="houseorig=%s"]`, chamber.OriginCode()),
	)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to list resolutions")
		return nil, err
	}

	return append(refs, resRefs...), nil
}

// ScrapeBill fetches a bill's detail page and assembles the full
// record: subjects, sponsors, actions, reconciled versions and votes.
func (s *Scraper) ScrapeBill(
	ctx context.Context,
	session string,
	chamber Chamber,
	ref BillRef,
	index LegacyIndex,
) (*Bill, error) {
	ctx, span := tracer.Start(ctx, "ScrapeBill")
	defer span.End()
	span.SetAttributes(attribute.String("bill_id", ref.ID))

	pageURL, err := url.Parse(ref.URL)
	if err != nil {
		return nil, err
	}

	page, err := s.http.Text(ctx, ref.URL)
	if err != nil {
		return nil, err
	}

	billType := BillTypeFromID(ref.ID)

	// resolution pages occasionally come back truncated, retry once
	if billType != BillTypeBill && !strings.Contains(page, "SPONSOR(S)") {
		slog.WarnContext(ctx, "incomplete page, trying again", "url", ref.URL)
		page, err = s.http.Text(ctx, ref.URL)
		if err != nil {
			return nil, err
		}
		if !strings.Contains(page, "SPONSOR(S)") {
			return nil, fmt.Errorf("%s: %w", ref.URL, ErrIncompletePage)
		}
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(page))
	if err != nil {
		return nil, err
	}

	bill := &Bill{
		Session: session,
		Chamber: chamber,
		ID:      ref.ID,
		Title:   ref.Title,
		Type:    billType,
		Sources: []string{ref.URL},
	}

	bill.Versions = ReconcileVersions(ctx, s.http, index, session, chamber, ref.ID, doc, pageURL)

	// the first link of each group is the column header
	subjects := htmlutil.GetAnchors(pageURL, doc.Find(`a[href*="Bills_Subject"]`))
	for _, a := range dropFirst(subjects) {
		bill.Subjects = append(bill.Subjects, a.Name)
	}
	sponsors := htmlutil.GetAnchors(pageURL, doc.Find(`a[href*="Bills_Sponsors"]`))
	for _, a := range dropFirst(sponsors) {
		bill.Sponsors = append(bill.Sponsors, a.Name)
	}

	// resolutions don't always hyperlink their sponsors
	if billType != BillTypeBill && len(bill.Sponsors) == 0 {
		bill.Sponsors = parseSponsorBlock(doc)
	}

	for _, a := range htmlutil.GetAnchors(pageURL, doc.Find(`a[href*="votes/house"]`)) {
		vote, err := s.scrapeVote(ctx, a.Href)
		if err != nil {
			slog.WarnContext(
				ctx, "skipping unparseable vote record",
				"bill_id", ref.ID,
				"url", a.Href,
				"err", err,
			)
			continue
		}
		bill.Votes = append(bill.Votes, vote)
	}

	bill.Actions = parseActions(doc, chamber, billType)

	return bill, nil
}

func dropFirst(anchors []htmlutil.Anchor) []htmlutil.Anchor {
	if len(anchors) == 0 {
		return nil
	}
	return anchors[1:]
}

// parseSponsorBlock reads the sponsor names out of the free-text
// "SPONSORS:" block of the bill history pane.
func parseSponsorBlock(doc *goquery.Document) []string {
	block := doc.Find("div#bhistleft").Text()
	_, after, found := strings.Cut(block, "SPONSORS:")
	if !found {
		return nil
	}

	var sponsors []string
	for _, line := range strings.Split(strings.TrimSpace(after), "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			break
		}
		for _, sponsor := range strings.Split(line, ", ") {
			sponsors = append(sponsors, strings.TrimSpace(sponsor))
		}
	}
	return sponsors
}

// parseActions walks the action history table bottom-up (the site
// lists newest first) and tracks which chamber currently holds the
// bill, switching on transmittal actions.
func parseActions(doc *goquery.Document, chamber Chamber, billType BillType) []Action {
	rows := doc.Find("table.tabborder tr")

	// column order varies on resolutions
	dateColumn := 2
	if billType != BillTypeBill {
		dateColumn = 0
	}

	actor := chamber
	var actions []Action
	for i := rows.Length() - 1; i >= 1; i-- {
		tds := rows.Eq(i).Find("td")
		if tds.Length() < 3 {
			continue
		}

		dateText := strings.TrimSpace(tds.Eq(dateColumn).Text())
		date, err := time.Parse("01/02/06", dateText)
		if err != nil {
			continue
		}
		text := htmlutil.CleanText(tds.Eq(1).Text())

		switch {
		case text == "Communicated to Senate",
			strings.HasPrefix(text, "Senate received"),
			strings.HasPrefix(text, "Ordered to Senate"):
			actor = ChamberUpper
		case text == "Communicated to House",
			strings.HasPrefix(text, "House received"),
			strings.HasPrefix(text, "Ordered to House"):
			actor = ChamberLower
		}

		actions = append(actions, Action{
			Actor: actor,
			Text:  text,
			Date:  date,
			Type:  ClassifyAction(text),
		})
	}
	return actions
}

func (s *Scraper) scrapeVote(ctx context.Context, voteURL string) (*Vote, error) {
	ctx, span := tracer.Start(ctx, "scrapeVote")
	defer span.End()
	span.SetAttributes(attribute.String("url", voteURL))

	raw, err := s.http.Bytes(ctx, voteURL)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to fetch vote record")
		return nil, err
	}
	text, err := s.pdf.ExtractText(ctx, raw)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to extract vote text")
		return nil, err
	}

	vote, err := ParseVoteText(text)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to parse vote text")
		return nil, err
	}

	// only house roll calls are published as linked documents
	vote.Chamber = ChamberLower
	vote.Source = voteURL
	return vote, nil
}

// BuildLegacyIndex builds (or loads from cache) the chamber's legacy
// document index with the scraper's own client and store.
func (s *Scraper) BuildLegacyIndex(ctx context.Context, session string, chamber Chamber) (LegacyIndex, error) {
	return BuildLegacyIndex(ctx, s.http, s.kv, session, chamber)
}

// ScrapeChamber scrapes every bill and resolution of a chamber for a
// session. The legacy index is built (or loaded from cache) once up
// front; bills failing to scrape are skipped with a warning rather
// than aborting the run.
func (s *Scraper) ScrapeChamber(ctx context.Context, session string, chamber Chamber) ([]*Bill, error) {
	ctx, span := tracer.Start(ctx, "ScrapeChamber")
	defer span.End()
	span.SetAttributes(
		attribute.String("session", session),
		attribute.String("chamber", string(chamber)),
	)

	index, err := BuildLegacyIndex(ctx, s.http, s.kv, session, chamber)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to build legacy index")
		return nil, err
	}

	refs, err := s.ListBills(ctx, session, chamber)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to list bills")
		return nil, err
	}

	var bills []*Bill
	for _, ref := range refs {
		bill, err := s.ScrapeBill(ctx, session, chamber, ref, index)
		if errors.Is(err, ErrIncompletePage) {
			slog.WarnContext(ctx, "incomplete page, giving up", "bill_id", ref.ID, "url", ref.URL)
			continue
		}
		if err != nil {
			slog.WarnContext(ctx, "failed to scrape bill", "bill_id", ref.ID, "err", err)
			continue
		}
		bills = append(bills, bill)
	}
	return bills, nil
}
