package ratelimit

import (
	"fmt"
	"sync"
	"testing"
	"time"
)

func TestTokenBucket_Allow(t *testing.T) {
	bucket := newTokenBucket(10, 1.0) // 10 tokens, 1 token per second

	for i := 0; i < 10; i++ {
		if !bucket.allow() {
			t.Errorf("Expected request %d to be allowed", i+1)
		}
	}

	if bucket.allow() {
		t.Error("Expected 11th request to be denied")
	}
}

func TestTokenBucket_Refill(t *testing.T) {
	bucket := newTokenBucket(10, 1.0)

	for i := 0; i < 10; i++ {
		bucket.allow()
	}

	time.Sleep(1100 * time.Millisecond)

	if !bucket.allow() {
		t.Error("Expected request to be allowed after refill")
	}
	if bucket.allow() {
		t.Error("Expected request to be denied after consuming refilled token")
	}
}

func TestTokenBucket_GetStatus(t *testing.T) {
	bucket := newTokenBucket(10, 1.0)

	for i := 0; i < 5; i++ {
		bucket.allow()
	}

	remaining, resetTime := bucket.getStatus()
	if remaining != 5 {
		t.Errorf("Expected 5 remaining tokens, got %d", remaining)
	}
	if resetTime.Before(time.Now()) {
		t.Error("Reset time should be in the future")
	}
}

func TestLimiter_Allow(t *testing.T) {
	config := &Config{
		Enabled:       true,
		DefaultLimit:  10,
		DefaultWindow: time.Minute,
	}
	limiter := NewLimiter(config)
	defer limiter.Stop()

	for i := 0; i < 10; i++ {
		allowed, _ := limiter.Allow("127.0.0.1", "/api/resumes", "GET")
		if !allowed {
			t.Errorf("Expected request %d to be allowed", i+1)
		}
	}

	allowed, info := limiter.Allow("127.0.0.1", "/api/resumes", "GET")
	if allowed {
		t.Error("Expected request over limit to be denied")
	}
	if info.RetryAfter <= 0 {
		t.Error("Expected positive RetryAfter when denied")
	}
}

func TestLimiter_Disabled(t *testing.T) {
	limiter := NewLimiter(&Config{Enabled: false})
	defer limiter.Stop()

	for i := 0; i < 100; i++ {
		if allowed, _ := limiter.Allow("127.0.0.1", "/api/resumes", "GET"); !allowed {
			t.Fatal("Disabled limiter must allow everything")
		}
	}
}

func TestLimiter_ClientsAreIndependent(t *testing.T) {
	config := &Config{
		Enabled:       true,
		DefaultLimit:  2,
		DefaultWindow: time.Minute,
	}
	limiter := NewLimiter(config)
	defer limiter.Stop()

	limiter.Allow("10.0.0.1", "/api/resumes", "GET")
	limiter.Allow("10.0.0.1", "/api/resumes", "GET")
	if allowed, _ := limiter.Allow("10.0.0.1", "/api/resumes", "GET"); allowed {
		t.Error("Expected first client to be limited")
	}

	if allowed, _ := limiter.Allow("10.0.0.2", "/api/resumes", "GET"); !allowed {
		t.Error("Expected second client to be unaffected")
	}
}

func TestLimiter_HealthCheckUnlimited(t *testing.T) {
	config := &Config{
		Enabled:       true,
		DefaultLimit:  1,
		DefaultWindow: time.Minute,
	}
	limiter := NewLimiter(config)
	defer limiter.Stop()

	for i := 0; i < 50; i++ {
		if allowed, _ := limiter.Allow("127.0.0.1", "/health", "GET"); !allowed {
			t.Fatal("Health check must never be rate limited")
		}
	}
}

func TestLimiter_EndpointPrefixMatch(t *testing.T) {
	config := &Config{
		Enabled:       true,
		DefaultLimit:  1000,
		DefaultWindow: time.Minute,
		EndpointConfigs: []EndpointConfig{
			{Path: "/api/ai/", Method: "POST", Limit: 2, Window: time.Hour, Burst: 2},
		},
	}
	limiter := NewLimiter(config)
	defer limiter.Stop()

	limiter.Allow("127.0.0.1", "/api/ai/generate", "POST")
	limiter.Allow("127.0.0.1", "/api/ai/generate", "POST")
	allowed, info := limiter.Allow("127.0.0.1", "/api/ai/generate", "POST")
	if allowed {
		t.Error("Expected AI endpoint to hit its tight limit")
	}
	if info.Limit != 2 {
		t.Errorf("Expected limit 2, got %d", info.Limit)
	}

	// Other POSTs still use the generous default.
	if allowed, _ := limiter.Allow("127.0.0.1", "/other", "POST"); !allowed {
		t.Error("Expected unmatched endpoint to use default limit")
	}
}

func TestLimiter_ConcurrentAccess(t *testing.T) {
	config := &Config{
		Enabled:       true,
		DefaultLimit:  100,
		DefaultWindow: time.Minute,
	}
	limiter := NewLimiter(config)
	defer limiter.Stop()

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			client := fmt.Sprintf("10.0.0.%d", n)
			for j := 0; j < 50; j++ {
				limiter.Allow(client, "/api/resumes", "GET")
			}
		}(i)
	}
	wg.Wait()
}

func TestMatchEndpoint_ExactBeatsPrefix(t *testing.T) {
	configs := []EndpointConfig{
		{Path: "/api/resumes/", Method: "POST", Limit: 60},
		{Path: "/auth/login", Method: "POST", Limit: 30},
	}

	cfg := matchEndpoint("/auth/login", "POST", configs)
	if cfg == nil || cfg.Limit != 30 {
		t.Fatal("Expected exact match for /auth/login")
	}

	cfg = matchEndpoint("/api/resumes/abc/export", "POST", configs)
	if cfg == nil || cfg.Limit != 60 {
		t.Fatal("Expected prefix match for /api/resumes/")
	}

	if matchEndpoint("/api/resumes", "GET", configs) != nil {
		t.Fatal("Expected no match for unlisted method")
	}
}
