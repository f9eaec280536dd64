package wvlegis

import (
	"context"
	"testing"

	"wvlegis-backend/lib/kvstore"
	"wvlegis-backend/lib/telemetry"

	"github.com/stretchr/testify/require"
)

const senateRoot = "ftp://www.legis.state.wv.us/publicdocs/2012/RS/senate/"

func indexTestFetcher() *fakeFetcher {
	return &fakeFetcher{pages: map[string]string{
		senateRoot: "01-11-12  04:30PM       <DIR>          01-11 Introduced\r\n" +
			"02-06-12  05:12PM       <DIR>          02-06 Engrossed\r\n",
		senateRoot + "01-11%20Introduced/": "01-11-12  04:31PM               84511 SB1 INTR.wpd\r\n" +
			"01-11-12  04:31PM               12007 SB2 INTR.wpd\r\n" +
			"01-11-12  04:31PM                1833 readme.txt\r\n",
		senateRoot + "02-06%20Engrossed/": "02-06-12  05:13PM               91042 SB1 ENG.WPD\r\n",
	}}
}

func TestBuildLegacyIndex(t *testing.T) {
	cleanup := telemetry.SetupForTesting(t, "test:scrapers/wvlegis")
	defer cleanup()
	ctx := context.Background()

	index, err := BuildLegacyIndex(ctx, indexTestFetcher(), kvstore.NewMemory(), "2012", ChamberUpper)
	require.NoError(t, err)

	require.Equal(t, []IndexEntry{
		{Folder: "01-11 Introduced", Filename: "SB1 INTR"},
		{Folder: "02-06 Engrossed", Filename: "SB1 ENG"},
	}, index["sb1"])

	require.Equal(t, []IndexEntry{
		{Folder: "01-11 Introduced", Filename: "SB2 INTR"},
	}, index["sb2"])

	// non-.wpd files never make it into the index
	require.Len(t, index, 2)
}

func TestBuildLegacyIndexUsesCache(t *testing.T) {
	cleanup := telemetry.SetupForTesting(t, "test:scrapers/wvlegis")
	defer cleanup()
	ctx := context.Background()
	store := kvstore.NewMemory()

	fetcher := indexTestFetcher()
	first, err := BuildLegacyIndex(ctx, fetcher, store, "2012", ChamberUpper)
	require.NoError(t, err)
	require.NotEmpty(t, fetcher.calls)

	// a second build must come entirely from the cache
	offline := &fakeFetcher{pages: map[string]string{}}
	second, err := BuildLegacyIndex(ctx, offline, store, "2012", ChamberUpper)
	require.NoError(t, err)
	require.Empty(t, offline.calls)
	require.Equal(t, first, second)
}

func TestBuildLegacyIndexCorruptCache(t *testing.T) {
	cleanup := telemetry.SetupForTesting(t, "test:scrapers/wvlegis")
	defer cleanup()
	ctx := context.Background()
	store := kvstore.NewMemory()

	err := store.Set(ctx, indexCacheKey(ChamberUpper), []byte("{not json"))
	require.NoError(t, err)

	index, err := BuildLegacyIndex(ctx, indexTestFetcher(), store, "2012", ChamberUpper)
	require.NoError(t, err)
	require.NotEmpty(t, index)
}

func TestLegacyIndexLookup(t *testing.T) {
	index := LegacyIndex{
		"sb1": {{Folder: "01-11 Introduced", Filename: "SB 1 Introduced"}},
	}

	require.Len(t, index.Lookup("SB 1"), 1)
	require.Len(t, index.Lookup("sb1"), 1)
	require.Empty(t, index.Lookup("HB 4001"))
}
