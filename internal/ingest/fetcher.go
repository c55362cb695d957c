package ingest

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/mkarev/whichmore/internal/cache"
	"github.com/mkarev/whichmore/internal/model"
	"github.com/mkarev/whichmore/internal/util"
	"github.com/mkarev/whichmore/internal/worker"
)

// Fetcher retrieves remote source files. Every request is robots-checked and
// rate-limited per host; responses are cached so repeated runs stay cheap.
// Fetches are pass/fail with no automatic retry: sources are optional
// enrichments and a failed one just contributes zero facts.
type Fetcher struct {
	httpClient *http.Client
	userAgent  string
	maxBytes   int64
	limiter    *worker.Limiter
	robots     *util.RobotsChecker
	store      cache.Cache // nil when caching is disabled
}

// NewFetcher creates a fetcher from the pipeline configuration
func NewFetcher(cfg *model.Config) *Fetcher {
	var store cache.Cache
	if cfg.Cache.Enabled {
		store = cache.NewLayeredCache(cfg.Cache.TTL, cfg.Cache.Dir, cfg.Cache.TTL)
	}

	return &Fetcher{
		httpClient: &http.Client{Timeout: cfg.HTTP.Timeout},
		userAgent:  cfg.HTTP.UserAgent,
		maxBytes:   cfg.HTTP.MaxBodyBytes,
		limiter:    worker.NewLimiter(cfg.Concurrency.RequestsPerSecond, cfg.Concurrency.Burst),
		robots:     util.NewRobotsChecker(cfg.HTTP.UserAgent, 10*time.Second),
		store:      store,
	}
}

// Get fetches a URL, serving from cache when possible
func (f *Fetcher) Get(ctx context.Context, rawURL string) ([]byte, error) {
	key := cache.Key(rawURL)
	if f.store != nil {
		if data, found := f.store.Get(key); found {
			return data, nil
		}
	}

	allowed, crawlDelay, err := f.robots.CanFetch(ctx, rawURL)
	if err == nil && !allowed {
		return nil, fmt.Errorf("disallowed by robots.txt: %s", rawURL)
	}

	if err := f.limiter.Wait(ctx, rawURL); err != nil {
		return nil, fmt.Errorf("rate limit: %w", err)
	}
	if crawlDelay > 0 {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(crawlDelay):
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("User-Agent", f.userAgent)

	resp, err := f.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("unexpected status: %d %s", resp.StatusCode, rawURL)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, f.maxBytes))
	if err != nil {
		return nil, fmt.Errorf("read body: %w", err)
	}

	if f.store != nil {
		_ = f.store.Set(key, body, 0)
	}
	return body, nil
}

// Download fetches a URL into a local file, skipping files that already
// exist so a re-run never re-downloads a completed source.
func (f *Fetcher) Download(ctx context.Context, rawURL, dest string) error {
	if _, err := os.Stat(dest); err == nil {
		return nil
	}

	data, err := f.Get(ctx, rawURL)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(dest), 0755); err != nil {
		return fmt.Errorf("create source dir: %w", err)
	}
	if err := os.WriteFile(dest, data, 0644); err != nil {
		return fmt.Errorf("write %s: %w", dest, err)
	}
	return nil
}
