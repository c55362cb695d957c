package util

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestRobotsChecker_Disallow(t *testing.T) {
	requests := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/robots.txt" {
			t.Errorf("unexpected request path: %s", r.URL.Path)
		}
		requests++
		_, _ = w.Write([]byte("User-agent: *\nDisallow: /private/\nCrawl-delay: 2\n"))
	}))
	defer srv.Close()

	checker := NewRobotsChecker("whichmore/0.1", 5*time.Second)

	allowed, delay, err := checker.CanFetch(context.Background(), srv.URL+"/econ/bps/place_2023a.csv")
	if err != nil {
		t.Fatalf("CanFetch: %v", err)
	}
	if !allowed {
		t.Error("public path should be allowed")
	}
	if delay != 2*time.Second {
		t.Errorf("crawl delay = %v, want 2s", delay)
	}

	allowed, _, err = checker.CanFetch(context.Background(), srv.URL+"/private/data.csv")
	if err != nil {
		t.Fatalf("CanFetch: %v", err)
	}
	if allowed {
		t.Error("disallowed path should be blocked")
	}

	if requests != 1 {
		t.Errorf("robots.txt fetched %d times, want 1 (cached per host)", requests)
	}
}

func TestRobotsChecker_MissingRobotsAllowsAll(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	defer srv.Close()

	checker := NewRobotsChecker("whichmore/0.1", 5*time.Second)
	allowed, _, err := checker.CanFetch(context.Background(), srv.URL+"/anything.csv")
	if err != nil {
		t.Fatalf("CanFetch: %v", err)
	}
	if !allowed {
		t.Error("missing robots.txt must allow fetching")
	}
}

func TestRobotsChecker_UnreachableHostAllowsByDefault(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	srv.Close() // nothing listening anymore

	checker := NewRobotsChecker("whichmore/0.1", time.Second)
	allowed, _, err := checker.CanFetch(context.Background(), srv.URL+"/data.csv")
	if err != nil {
		t.Fatalf("CanFetch: %v", err)
	}
	if !allowed {
		t.Error("unreachable robots.txt must not block downloads")
	}
}
