package middleware

import (
	"sync"
	"testing"
	"time"
)

func TestRateLimiterAllow(t *testing.T) {
	rl := NewRateLimiter(3, time.Minute, "test")

	for i := 1; i <= 3; i++ {
		if allowed, _ := rl.allow("10.0.0.1"); !allowed {
			t.Fatalf("request %d was rejected under the limit", i)
		}
	}

	if allowed, count := rl.allow("10.0.0.1"); allowed {
		t.Errorf("request %d over the limit was allowed", count)
	}

	// A different client has its own window.
	if allowed, _ := rl.allow("10.0.0.2"); !allowed {
		t.Error("unrelated client was rejected")
	}
}

func TestRateLimiterConcurrentAccess(t *testing.T) {
	rl := NewRateLimiter(1000, time.Minute, "test")

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			ips := []string{"10.0.0.1", "10.0.0.2", "10.0.0.3"}
			for j := 0; j < 100; j++ {
				rl.allow(ips[(n+j)%len(ips)])
			}
		}(i)
	}
	wg.Wait()
}
