package wvlegis

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/url"
	"regexp"
	"strings"

	"wvlegis-backend/lib/fetch"
	"wvlegis-backend/lib/htmlutil"

	"github.com/PuerkitoBio/goquery"
	"go.opentelemetry.io/otel/attribute"
)

type Mimetype string

const (
	MimetypeHTML        Mimetype = "text/html"
	MimetypeWordPerfect Mimetype = "application/wordperfect"
)

// Version is one rendition of a bill's text, e.g. "Introduced
// Version". Identity for deduplication purposes is the canonical key
// of its URL, not its name.
type Version struct {
	Name     string
	URL      string
	Mimetype Mimetype
}

var quotedTitle = regexp.MustCompile(`"(.+)"`)

// linkedVersions scans the anchors of the bill detail page for version
// documents the legislature hyperlinked directly. HTML links carry a
// title like `HTML - Introduced Version - SB 1`, WordPerfect links
// quote the version name inside the title.
func linkedVersions(doc *goquery.Document, pageURL *url.URL) []Version {
	anchors := htmlutil.GetAnchors(pageURL, doc.Find("a"))

	var out []Version
	for _, a := range anchors {
		if !strings.HasPrefix(a.Title, "HTML -") {
			continue
		}
		parts := strings.Split(a.Title, " - ")
		if len(parts) < 2 {
			continue
		}
		out = append(out, Version{
			Name:     parts[1],
			URL:      a.Href,
			Mimetype: MimetypeHTML,
		})
	}
	for _, a := range anchors {
		if !strings.Contains(a.Title, "WordPerfect") {
			continue
		}
		m := quotedTitle.FindStringSubmatch(a.Title)
		if m == nil {
			continue
		}
		out = append(out, Version{
			Name:     m[1],
			URL:      a.Href,
			Mimetype: MimetypeWordPerfect,
		})
	}
	return out
}

type guessedCandidate struct {
	name string
	url  string
}

// guessedVersions constructs likely document-viewer URLs from the
// filenames listed on the legislature's file server. These are
// candidates only; nothing guarantees a document exists until the URL
// is fetched.
func guessedVersions(index LegacyIndex, session, billID string) []guessedCandidate {
	entries := index.Lookup(billID)
	if len(entries) == 0 {
		return nil
	}

	fields := strings.Fields(billID)
	var number string
	if len(fields) == 2 {
		number = fields[1]
	}

	var out []guessedCandidate
	for _, entry := range entries {
		doc := strings.ReplaceAll(entry.Filename, " ", "%20") + ".htm"
		out = append(out, guessedCandidate{
			name: entry.Filename,
			url: fmt.Sprintf(
				"%s/Bill_Status/bills_text.cfm?billdoc=%s&yr=%s&sesstype=RS&i=%s",
				baseURL, doc, session, number,
			),
		})
	}
	return out
}

// legacyVersions yields the .wpd documents known from the legacy
// index. The index is treated as authoritative, there is no existence
// check against the file server.
func legacyVersions(index LegacyIndex, session string, chamber Chamber, billID string) []Version {
	entries := index.Lookup(billID)
	if len(entries) == 0 {
		return nil
	}

	var out []Version
	for _, entry := range entries {
		link := strings.Join([]string{
			publicDocsRoot,
			session,
			"RS",
			chamber.FolderName(),
			entry.Folder,
			url.PathEscape(entry.Filename + ".wpd"),
		}, "/")
		out = append(out, Version{
			Name:     entry.Filename,
			URL:      link,
			Mimetype: MimetypeWordPerfect,
		})
	}
	return out
}

// phrases from the placeholder page the legislature serves (with a
// 200) when a guessed document doesn't exist
var absenceMarkers = []string{
	"let us know that the text for",
	"is not available",
}

func hasAbsenceMarker(page string) bool {
	page = strings.ToLower(page)
	for _, marker := range absenceMarkers {
		if strings.Contains(page, marker) {
			return true
		}
	}
	return false
}

// ReconcileVersions merges the three version sources for a bill into a
// deduplicated list: documents hyperlinked on the detail page first,
// then confirmed guessed URLs, then legacy .wpd documents. A version
// is dropped when the canonical key of its URL was already seen.
func ReconcileVersions(
	ctx context.Context,
	client fetch.Client,
	index LegacyIndex,
	session string,
	chamber Chamber,
	billID string,
	doc *goquery.Document,
	pageURL *url.URL,
) []Version {
	ctx, span := tracer.Start(ctx, "ReconcileVersions")
	defer span.End()
	span.SetAttributes(attribute.String("bill_id", billID))

	var out []Version
	seen := map[URLKey]struct{}{}

	for _, v := range linkedVersions(doc, pageURL) {
		key := CanonicalKey(v.URL)
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, v)
	}

	for _, candidate := range guessedVersions(index, session, billID) {
		key := CanonicalKey(candidate.url)
		if _, dup := seen[key]; dup {
			continue
		}

		page, err := client.Text(ctx, candidate.url)
		if errors.Is(err, fetch.ErrNotFound) {
			// there wasn't a version document at the expected location
			continue
		}
		if err != nil {
			slog.WarnContext(
				ctx, "failed to confirm guessed version url",
				"bill_id", billID,
				"url", candidate.url,
				"err", err,
			)
			continue
		}
		if hasAbsenceMarker(page) {
			continue
		}

		seen[key] = struct{}{}
		out = append(out, Version{
			Name:     candidate.name,
			URL:      candidate.url,
			Mimetype: MimetypeHTML,
		})
	}

	for _, v := range legacyVersions(index, session, chamber, billID) {
		key := CanonicalKey(v.URL)
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, v)
	}

	return out
}
