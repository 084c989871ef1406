package service

import (
	"context"
	"testing"
	"time"
)

func TestRateLimiterLocalWindow(t *testing.T) {
	limiter := NewRateLimiter(nil, "presign", time.Hour)

	allowed, err := limiter.Allow(context.Background(), "1.2.3.4")
	if err != nil || !allowed {
		t.Fatalf("first call: allowed=%v err=%v", allowed, err)
	}

	allowed, err = limiter.Allow(context.Background(), "1.2.3.4")
	if err != nil {
		t.Fatalf("second call: %v", err)
	}
	if allowed {
		t.Error("second call within the window should be throttled")
	}

	// Other clients are unaffected.
	allowed, err = limiter.Allow(context.Background(), "5.6.7.8")
	if err != nil || !allowed {
		t.Errorf("different key: allowed=%v err=%v", allowed, err)
	}
}

func TestRateLimiterZeroWindowDisables(t *testing.T) {
	limiter := NewRateLimiter(nil, "presign", 0)

	for i := 0; i < 3; i++ {
		allowed, err := limiter.Allow(context.Background(), "1.2.3.4")
		if err != nil || !allowed {
			t.Fatalf("call %d: allowed=%v err=%v", i, allowed, err)
		}
	}
}
