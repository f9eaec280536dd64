package fetch

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/cookiejar"
	"time"

	"wvlegis-backend/lib/telemetry"

	cloudflarebp "github.com/DaRealFreak/cloudflare-bp-go"
	"github.com/go-resty/resty/v2"
	"github.com/hashicorp/golang-lru/v2/expirable"
	"golang.org/x/time/rate"
)

// ErrNotFound reports that the server answered but no document exists
// at the requested location.
var ErrNotFound = errors.New("document not found")

type Client interface {
	Text(ctx context.Context, url string) (string, error)
	Bytes(ctx context.Context, url string) ([]byte, error)
}

type Options struct {
	UserAgent string
	Timeout   time.Duration
	// requests per second against the remote host, 0 disables limiting
	RequestsPerSecond float64
	// number of GET responses kept in the page cache, 0 disables caching
	CacheSize int
	CacheTTL  time.Duration
}

type HTTPClient struct {
	http    *resty.Client
	limiter *rate.Limiter
	cache   *expirable.LRU[string, []byte]
}

func NewHTTPClient(opts Options) (*HTTPClient, error) {
	client := resty.New()
	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, err
	}
	client.SetCookieJar(jar)
	client.GetClient().Transport = cloudflarebp.AddCloudFlareByPass(client.GetClient().Transport)

	userAgent := opts.UserAgent
	if userAgent == "" {
		userAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/123.0.0.0 Safari/537.36"
	}
	client.SetHeader("user-agent", userAgent)

	timeout := opts.Timeout
	if timeout == 0 {
		timeout = time.Second * 30
	}
	client.SetTimeout(timeout)

	telemetry.InstrumentResty(client, "lib/fetch")

	limiter := rate.NewLimiter(rate.Inf, 1)
	if opts.RequestsPerSecond > 0 {
		limiter = rate.NewLimiter(rate.Limit(opts.RequestsPerSecond), 1)
	}

	var cache *expirable.LRU[string, []byte]
	if opts.CacheSize > 0 {
		ttl := opts.CacheTTL
		if ttl == 0 {
			ttl = time.Minute * 15
		}
		cache = expirable.NewLRU[string, []byte](opts.CacheSize, nil, ttl)
	}

	return &HTTPClient{
		http:    client,
		limiter: limiter,
		cache:   cache,
	}, nil
}

func (c *HTTPClient) Bytes(ctx context.Context, url string) ([]byte, error) {
	if c.cache != nil {
		if cached, hit := c.cache.Get(url); hit {
			return cached, nil
		}
	}

	err := c.limiter.Wait(ctx)
	if err != nil {
		return nil, err
	}

	res, err := c.http.R().SetContext(ctx).Get(url)
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %w", url, err)
	}
	if res.StatusCode() == http.StatusNotFound {
		return nil, fmt.Errorf("%s: %w", url, ErrNotFound)
	}
	if res.IsError() {
		return nil, fmt.Errorf("fetch %s: unexpected status %s", url, res.Status())
	}

	body := res.Body()
	if c.cache != nil {
		c.cache.Add(url, body)
	}
	return body, nil
}

func (c *HTTPClient) Text(ctx context.Context, url string) (string, error) {
	body, err := c.Bytes(ctx, url)
	if err != nil {
		return "", err
	}
	return string(body), nil
}
