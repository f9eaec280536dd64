package wvlegis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"wvlegis-backend/lib/fetch"
	"wvlegis-backend/lib/kvstore"
	"wvlegis-backend/lib/textutil"

	"github.com/antzucaro/matchr"
	"go.opentelemetry.io/otel/attribute"
)

type IndexEntry struct {
	Folder   string `json:"folder"`
	Filename string `json:"filename"`
}

// LegacyIndex maps a normalized bill identifier ("sb1") to the
// document locations known from the legislature's file server. All
// bills have versions, but for those lacking html documents only a
// .wpd file exists there; two of the version sources work off this
// index.
type LegacyIndex map[string][]IndexEntry

// Lookup returns the entries for a bill in display form ("SB 1"). A
// miss yields an empty slice; when a near-identical key exists it is
// logged as a hint, since listing filenames occasionally carry typos.
func (idx LegacyIndex) Lookup(billID string) []IndexEntry {
	key := textutil.NormalizeBillID(billID)
	entries, ok := idx[key]
	if !ok {
		if closest := idx.closestKey(key); closest != "" {
			slog.Debug(
				"no legacy index entry for bill",
				"bill_id", key,
				"closest_known", closest,
			)
		}
	}
	return entries
}

func (idx LegacyIndex) closestKey(key string) string {
	best := ""
	bestScore := 0.0
	for known := range idx {
		score := matchr.JaroWinkler(key, known, false)
		if score > bestScore {
			best = known
			bestScore = score
		}
	}
	if bestScore < 0.9 {
		return ""
	}
	return best
}

func indexCacheKey(chamber Chamber) string {
	return fmt.Sprintf("version_filenames:%s", chamber)
}

// InvalidateLegacyIndex drops the cached index for a chamber so the
// next build walks the document listing again.
func InvalidateLegacyIndex(ctx context.Context, store kvstore.Store, chamber Chamber) error {
	return store.Delete(ctx, indexCacheKey(chamber))
}

// BuildLegacyIndex lists the dated folders of a chamber's document
// directory and records every .wpd file by bill identifier. The built
// index is cached in `store` keyed by chamber; the cache never
// expires, staleness is accepted over re-walking the listing on every
// run. Delete the key to invalidate.
func BuildLegacyIndex(
	ctx context.Context,
	client fetch.Client,
	store kvstore.Store,
	session string,
	chamber Chamber,
) (LegacyIndex, error) {
	ctx, span := tracer.Start(ctx, "BuildLegacyIndex")
	defer span.End()
	span.SetAttributes(
		attribute.String("session", session),
		attribute.String("chamber", string(chamber)),
	)

	cached, err := store.Get(ctx, indexCacheKey(chamber))
	if err == nil {
		var index LegacyIndex
		if jsonErr := json.Unmarshal(cached, &index); jsonErr == nil {
			slog.DebugContext(ctx, "loaded legacy index from cache", "chamber", chamber)
			return index, nil
		}
		slog.WarnContext(ctx, "corrupt legacy index cache, rebuilding", "chamber", chamber)
	} else if !errors.Is(err, kvstore.ErrNotFound) {
		return nil, err
	}

	root := fmt.Sprintf("%s/%s/RS/%s/", publicDocsRoot, session, chamber.FolderName())
	listing, err := client.Text(ctx, root)
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", root, err)
	}

	index := LegacyIndex{}
	for _, line := range strings.Split(listing, "\n") {
		fields := strings.Fields(line)
		if len(fields) < 4 {
			continue
		}
		folder := strings.Join(fields[3:], " ")

		folderURL := strings.ReplaceAll(root+folder+"/", " ", "%20")
		files, err := client.Text(ctx, folderURL)
		if err != nil {
			return nil, fmt.Errorf("list %s: %w", folderURL, err)
		}

		for _, fileLine := range strings.Split(files, "\n") {
			parts := textutil.SplitFieldsN(strings.TrimRight(fileLine, "\r\n"), 4)
			if len(parts) < 4 {
				continue
			}
			filename := parts[3]

			lower := strings.ToLower(filename)
			if !strings.HasSuffix(lower, ".wpd") {
				continue
			}
			filename = filename[:len(filename)-len(".wpd")]

			// filenames look like "SB 1 Introduced"; only the
			// identifier half matters here
			billID, _, ok := strings.Cut(filename, " ")
			if !ok {
				continue
			}
			billID = strings.ToLower(billID)
			index[billID] = append(index[billID], IndexEntry{
				Folder:   folder,
				Filename: filename,
			})
		}
	}

	encoded, err := json.Marshal(index)
	if err != nil {
		return nil, err
	}
	err = store.Set(ctx, indexCacheKey(chamber), encoded)
	if err != nil {
		slog.WarnContext(ctx, "failed to cache legacy index", "chamber", chamber, "err", err)
	}

	return index, nil
}
