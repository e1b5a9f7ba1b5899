package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func tag(name string, order *[]string) Middleware {
	return func(next http.HandlerFunc) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			*order = append(*order, name)
			next(w, r)
		}
	}
}

func TestChainOrder(t *testing.T) {
	var order []string
	base := New(tag("a", &order))
	extended := base.Use(tag("b", &order), tag("c", &order))

	h := extended.Handle(func(w http.ResponseWriter, r *http.Request) {
		order = append(order, "handler")
	})
	h(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, []string{"a", "b", "c", "handler"}, order)
	assert.Len(t, base, 1, "Use must not modify the original chain")
}

func TestMux(t *testing.T) {
	var order []string
	mux := http.NewServeMux()
	m := WithMux(mux, tag("outer", &order))
	m.With(tag("inner", &order)).HandleFunc("GET /hello", func(w http.ResponseWriter, r *http.Request) {
		order = append(order, "handler")
		_, _ = w.Write([]byte("hi"))
	})

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/hello", nil))

	assert.Equal(t, "hi", rec.Body.String())
	assert.Equal(t, []string{"outer", "inner", "handler"}, order)
}

func TestRateLimiter(t *testing.T) {
	rl := NewRateLimiter(1, 2)
	h := rl.Middleware(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})

	codes := make([]int, 0, 3)
	for range 3 {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.RemoteAddr = "192.0.2.1:1234"
		rec := httptest.NewRecorder()
		h(rec, req)
		codes = append(codes, rec.Code)
	}
	assert.Equal(t, []int{http.StatusNoContent, http.StatusNoContent, http.StatusTooManyRequests}, codes)

	// a different client has its own bucket
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.RemoteAddr = "192.0.2.2:1234"
	rec := httptest.NewRecorder()
	h(rec, req)
	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestRateLimiterDisabled(t *testing.T) {
	rl := NewRateLimiter(0, 0)
	h := rl.Middleware(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})
	for range 10 {
		rec := httptest.NewRecorder()
		h(rec, httptest.NewRequest(http.MethodGet, "/", nil))
		assert.Equal(t, http.StatusNoContent, rec.Code)
	}
}

func TestAccessLog(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	h := AccessLog(zap.New(core))(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusTeapot)
	})

	req := httptest.NewRequest(http.MethodGet, "/api/holidays/uk/2022-06-03?x=1", nil)
	req.RemoteAddr = "198.51.100.7:4321"
	rec := httptest.NewRecorder()
	h(rec, req)

	assert.Equal(t, http.StatusTeapot, rec.Code)
	assert.True(t, strings.Contains(rec.Body.String(), "nope"))

	entries := logs.All()
	if assert.Len(t, entries, 1) {
		fields := entries[0].ContextMap()
		assert.Equal(t, "/api/holidays/uk/2022-06-03", fields["path"])
		assert.Equal(t, "x=1", fields["query"])
		assert.Equal(t, int64(http.StatusTeapot), fields["status"])
		assert.Equal(t, "198.51.100.7", fields["ip"])
	}
}

func TestClientIP(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.RemoteAddr = "[2001:db8::1]:443"
	assert.Equal(t, "2001:db8::1", ClientIP(req))

	req.RemoteAddr = "not-an-addr"
	assert.Equal(t, "not-an-addr", ClientIP(req))
}

func TestRateLimiterZeroBurst(t *testing.T) {
	for _, burst := range []int{0, -3} {
		rl := NewRateLimiter(120, burst)
		h := rl.Middleware(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNoContent)
		})

		rec := httptest.NewRecorder()
		h(rec, httptest.NewRequest(http.MethodGet, "/api/status", nil))
		assert.Equal(t, http.StatusNoContent, rec.Code, "burst %d", burst)
	}
}
