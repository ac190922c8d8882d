package main

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"
)

// fetcher reads source payloads from URLs or local files.
// This is CLI-specific logic and is not part of the core library.
type fetcher struct {
	httpClient *http.Client
	accountKey string
}

// newFetcher creates a fetcher; accountKey is sent as the AccountKey header
// on HTTP requests when set.
func newFetcher(timeout time.Duration, accountKey string) *fetcher {
	return &fetcher{
		httpClient: &http.Client{Timeout: timeout},
		accountKey: accountKey,
	}
}

// fetch returns the raw bytes behind urlOrPath.
func (f *fetcher) fetch(ctx context.Context, urlOrPath string) ([]byte, error) {
	if urlOrPath == "" {
		return nil, fmt.Errorf("no source configured")
	}

	if !strings.HasPrefix(urlOrPath, "http://") && !strings.HasPrefix(urlOrPath, "https://") {
		return os.ReadFile(urlOrPath)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, urlOrPath, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")
	if f.accountKey != "" {
		req.Header.Set("AccountKey", f.accountKey)
	}
	resp, err := f.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch %s: %w", urlOrPath, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("HTTP %d from %s", resp.StatusCode, urlOrPath)
	}

	return io.ReadAll(resp.Body)
}

// fetchAll fetches the rates and gantries payloads.
func (f *fetcher) fetchAll(ctx context.Context, ratesPath, gantriesPath string) ([]byte, []byte, error) {
	r, err := f.fetch(ctx, ratesPath)
	if err != nil {
		return nil, nil, fmt.Errorf("rates: %w", err)
	}

	g, err := f.fetch(ctx, gantriesPath)
	if err != nil {
		return nil, nil, fmt.Errorf("gantries: %w", err)
	}

	return r, g, nil
}
