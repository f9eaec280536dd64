package wvlegis

import (
	"context"
	"fmt"

	"wvlegis-backend/lib/fetch"
)

// fakeFetcher serves canned pages and records every requested URL.
// URLs without a page respond with fetch.ErrNotFound.
type fakeFetcher struct {
	pages map[string]string
	calls []string
}

func (f *fakeFetcher) Text(ctx context.Context, url string) (string, error) {
	f.calls = append(f.calls, url)
	page, ok := f.pages[url]
	if !ok {
		return "", fmt.Errorf("%s: %w", url, fetch.ErrNotFound)
	}
	return page, nil
}

func (f *fakeFetcher) Bytes(ctx context.Context, url string) ([]byte, error) {
	page, err := f.Text(ctx, url)
	if err != nil {
		return nil, err
	}
	return []byte(page), nil
}

type fakeExtractor struct {
	text string
}

func (f fakeExtractor) ExtractText(ctx context.Context, doc []byte) (string, error) {
	return f.text, nil
}
