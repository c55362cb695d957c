package worker

import (
	"context"
	"testing"
	"time"
)

func TestLimiter_AllowWithinBurst(t *testing.T) {
	l := NewLimiter(1, 3)

	allowed := 0
	for i := 0; i < 5; i++ {
		if l.Allow("https://www2.census.gov/econ/bps/Place/2023/") {
			allowed++
		}
	}
	if allowed != 3 {
		t.Errorf("expected burst of 3, got %d", allowed)
	}
}

func TestLimiter_HostsAreIndependent(t *testing.T) {
	l := NewLimiter(1, 1)

	if !l.Allow("https://www2.census.gov/a.csv") {
		t.Error("first census request should pass")
	}
	if l.Allow("https://www2.census.gov/b.csv") {
		t.Error("second census request should be limited")
	}
	if !l.Allow("https://aqs.epa.gov/a.csv") {
		t.Error("epa host has its own budget")
	}
}

func TestLimiter_SetHostRate(t *testing.T) {
	l := NewLimiter(1, 1)
	l.SetHostRate("aqs.epa.gov", 100, 10)

	allowed := 0
	for i := 0; i < 10; i++ {
		if l.Allow("https://aqs.epa.gov/file.csv") {
			allowed++
		}
	}
	if allowed != 10 {
		t.Errorf("override burst not applied, got %d", allowed)
	}
}

func TestLimiter_WaitHonorsContext(t *testing.T) {
	l := NewLimiter(0.001, 1)
	if err := l.Wait(context.Background(), "https://example.com/a"); err != nil {
		t.Fatalf("first wait: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()
	if err := l.Wait(ctx, "https://example.com/b"); err == nil {
		t.Error("expected context deadline error")
	}
}

func TestLimiter_InvalidURL(t *testing.T) {
	l := NewLimiter(1, 1)
	if l.Allow("://bad") {
		t.Error("unparseable URL must not be admitted")
	}
}
