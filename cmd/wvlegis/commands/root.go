package commands

import (
	"context"
	"fmt"
	"os"
	"time"

	"wvlegis-backend/lib/configutil"
	configlibsql "wvlegis-backend/lib/configutil/libsql"
	"wvlegis-backend/lib/fetch"
	"wvlegis-backend/lib/kvstore"
	"wvlegis-backend/lib/pdftext"
	scraper "wvlegis-backend/lib/scrapers/wvlegis"
	"wvlegis-backend/lib/serviceutil"
	svc "wvlegis-backend/services/wvlegis"
	"wvlegis-backend/services/wvlegis/db"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "wvlegis",
	Short: "wvlegis scrapes bill metadata from the West Virginia legislature.",
}

func ExecuteContext(ctx context.Context) {
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

type Config struct {
	Database          configlibsql.Struct `json:"database"`
	UserAgent         string              `json:"user_agent"`
	RequestsPerSecond float64             `json:"requests_per_second"`
	CacheSize         int                 `json:"cache_size"`
	CacheTTL          string              `json:"cache_ttl"`
}

type env struct {
	service svc.Service
	scraper *scraper.Scraper
	store   kvstore.Store
	close   func()
}

func setup() env {
	cfg, err := configutil.ReadConfig[Config]("config.json5")
	if err != nil {
		serviceutil.Fatal("failed to read config", err)
	}

	database, err := cfg.Database.OpenDB(db.Schema)
	if err != nil {
		serviceutil.Fatal("failed to open database", err)
	}

	cacheTTL := time.Duration(0)
	if cfg.CacheTTL != "" {
		cacheTTL, err = time.ParseDuration(cfg.CacheTTL)
		if err != nil {
			serviceutil.Fatal("failed to parse cache_ttl", err)
		}
	}
	client, err := fetch.NewHTTPClient(fetch.Options{
		UserAgent:         cfg.UserAgent,
		RequestsPerSecond: cfg.RequestsPerSecond,
		CacheSize:         cfg.CacheSize,
		CacheTTL:          cacheTTL,
	})
	if err != nil {
		serviceutil.Fatal("failed to create http client", err)
	}

	store, err := kvstore.NewSqlite(database)
	if err != nil {
		serviceutil.Fatal("failed to create kv store", err)
	}

	sc := scraper.NewScraper(client, store, pdftext.NewCommand())
	return env{
		service: svc.NewService(database, sc),
		scraper: sc,
		store:   store,
		close:   func() { database.Close() },
	}
}

func parseChamber(name string) scraper.Chamber {
	switch name {
	case "upper", "senate":
		return scraper.ChamberUpper
	case "lower", "house":
		return scraper.ChamberLower
	}
	serviceutil.Fatal("unknown chamber", fmt.Errorf("%q is not upper/senate or lower/house", name))
	return ""
}
