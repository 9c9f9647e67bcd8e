package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func TestRateLimiter_AllowsWithinLimit(t *testing.T) {
	rl := NewRateLimiter(3, time.Minute)
	defer rl.Close()
	h := rl.Middleware(okHandler())

	for i := 0; i < 3; i++ {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.RemoteAddr = "1.2.3.4:5678"
		rr := httptest.NewRecorder()
		h.ServeHTTP(rr, req)

		if rr.Code != http.StatusOK {
			t.Fatalf("Request %d: expected 200, got %d", i+1, rr.Code)
		}
	}
}

func TestRateLimiter_BlocksOverLimit(t *testing.T) {
	rl := NewRateLimiter(2, time.Minute)
	defer rl.Close()
	h := rl.Middleware(okHandler())

	var last int
	for i := 0; i < 3; i++ {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.RemoteAddr = "1.2.3.4:5678"
		rr := httptest.NewRecorder()
		h.ServeHTTP(rr, req)
		last = rr.Code
	}

	if last != http.StatusTooManyRequests {
		t.Errorf("Expected 429 after exceeding limit, got %d", last)
	}
}

func TestRateLimiter_SeparatePerIP(t *testing.T) {
	rl := NewRateLimiter(1, time.Minute)
	defer rl.Close()
	h := rl.Middleware(okHandler())

	for _, addr := range []string{"1.1.1.1:1", "2.2.2.2:2"} {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.RemoteAddr = addr
		rr := httptest.NewRecorder()
		h.ServeHTTP(rr, req)

		if rr.Code != http.StatusOK {
			t.Errorf("First request from %s should pass, got %d", addr, rr.Code)
		}
	}
}

func TestRateLimiter_CloseStopsCleanup(t *testing.T) {
	rl := NewRateLimiter(1, 10*time.Millisecond)
	rl.Close()

	rl.mu.Lock()
	rl.visitors["1.2.3.4:5678"] = &visitor{count: 1, lastSeen: time.Now().Add(-time.Hour)}
	rl.mu.Unlock()

	time.Sleep(40 * time.Millisecond)

	rl.mu.Lock()
	_, kept := rl.visitors["1.2.3.4:5678"]
	rl.mu.Unlock()
	if !kept {
		t.Error("Cleanup goroutine kept sweeping after Close")
	}

	// Serving still works after Close.
	h := rl.Middleware(okHandler())
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.RemoteAddr = "9.9.9.9:1"
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	if rr.Code != http.StatusOK {
		t.Errorf("Expected 200 after Close, got %d", rr.Code)
	}
}

func TestCORS_AllowedOrigin(t *testing.T) {
	h := CORS([]string{"https://portal.example"})(okHandler())

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Origin", "https://portal.example")
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)

	if got := rr.Header().Get("Access-Control-Allow-Origin"); got != "https://portal.example" {
		t.Errorf("Expected origin echoed, got %q", got)
	}
}

func TestCORS_DisallowedOrigin(t *testing.T) {
	h := CORS([]string{"https://portal.example"})(okHandler())

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Origin", "https://evil.example")
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)

	if got := rr.Header().Get("Access-Control-Allow-Origin"); got != "" {
		t.Errorf("Expected no CORS header for unknown origin, got %q", got)
	}
}

func TestCORS_PreflightShortCircuits(t *testing.T) {
	called := false
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) { called = true })
	h := CORS([]string{"*"})(next)

	req := httptest.NewRequest(http.MethodOptions, "/", nil)
	req.Header.Set("Origin", "https://anywhere.example")
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Errorf("Expected 200 for preflight, got %d", rr.Code)
	}
	if called {
		t.Error("Preflight should not reach the next handler")
	}
}

func TestRequestID_GeneratedAndEchoed(t *testing.T) {
	h := RequestID(okHandler())

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)

	if rr.Header().Get("X-Request-ID") == "" {
		t.Error("Expected generated X-Request-ID on response")
	}
}

func TestRequestID_ClientValuePreserved(t *testing.T) {
	h := RequestID(okHandler())

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-Request-ID", "client-id-1")
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)

	if got := rr.Header().Get("X-Request-ID"); got != "client-id-1" {
		t.Errorf("Expected client id preserved, got %q", got)
	}
}
