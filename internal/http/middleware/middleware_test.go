package middleware

import (
	"bytes"
	"context"
	"errors"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/bwdtc/bridgewater-dems/internal/metrics"
)

func TestRequestID(t *testing.T) {
	app := fiber.New()
	app.Use(RequestID())

	app.Get("/test", func(c *fiber.Ctx) error {
		return c.SendString(GetRequestID(c))
	})

	t.Run("should generate new request id if not present", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/test", nil)
		resp, _ := app.Test(req)

		assert.Equal(t, fiber.StatusOK, resp.StatusCode)

		ridHeader := resp.Header.Get(RequestIDHeader)
		assert.NotEmpty(t, ridHeader)

		buf := new(bytes.Buffer)
		buf.ReadFrom(resp.Body)
		assert.Equal(t, ridHeader, buf.String())
	})

	t.Run("should preserve existing request id", func(t *testing.T) {
		existingID := "test-id-123"
		req := httptest.NewRequest("GET", "/test", nil)
		req.Header.Set(RequestIDHeader, existingID)

		resp, _ := app.Test(req)

		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
		assert.Equal(t, existingID, resp.Header.Get(RequestIDHeader))

		buf := new(bytes.Buffer)
		buf.ReadFrom(resp.Body)
		assert.Equal(t, existingID, buf.String())
	})

	t.Run("should replace oversized request id", func(t *testing.T) {
		long := strings.Repeat("x", maxRequestIDLen+1)
		req := httptest.NewRequest("GET", "/test", nil)
		req.Header.Set(RequestIDHeader, long)

		resp, _ := app.Test(req)

		got := resp.Header.Get(RequestIDHeader)
		assert.NotEmpty(t, got)
		assert.NotEqual(t, long, got)
	})

	t.Run("should replace id with unsafe characters", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/test", nil)
		req.Header.Set(RequestIDHeader, `abc" injected="1`)

		resp, _ := app.Test(req)

		got := resp.Header.Get(RequestIDHeader)
		assert.NotEmpty(t, got)
		assert.NotContains(t, got, `"`)
	})
}

func TestGetRequestID_Missing(t *testing.T) {
	app := fiber.New()
	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString("[" + GetRequestID(c) + "]")
	})

	resp, _ := app.Test(httptest.NewRequest("GET", "/", nil))
	buf := new(bytes.Buffer)
	buf.ReadFrom(resp.Body)
	assert.Equal(t, "[]", buf.String())
}

func TestLogger(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	app := fiber.New()

	app.Use(RequestID())
	app.Use(Logger(zap.New(core)))

	app.Get("/test", func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusAccepted)
	})
	app.Get("/missing", func(c *fiber.Ctx) error {
		return fiber.ErrNotFound
	})
	app.Get("/boom", func(c *fiber.Ctx) error {
		return errors.New("boom")
	})

	resp, _ := app.Test(httptest.NewRequest("GET", "/test", nil))
	assert.Equal(t, fiber.StatusAccepted, resp.StatusCode)

	require.Equal(t, 1, logs.Len())
	entry := logs.All()[0]
	assert.Equal(t, zapcore.InfoLevel, entry.Level)
	fields := entry.ContextMap()
	assert.NotEmpty(t, fields["request_id"])
	assert.Equal(t, "GET", fields["method"])
	assert.Equal(t, "/test", fields["path"])
	assert.Equal(t, int64(fiber.StatusAccepted), fields["status"])
	assert.Contains(t, fields, "latency")
	assert.Equal(t, "http", fields["component"])

	app.Test(httptest.NewRequest("GET", "/missing", nil))
	app.Test(httptest.NewRequest("GET", "/boom", nil))

	all := logs.All()
	require.Len(t, all, 3)
	assert.Equal(t, zapcore.WarnLevel, all[1].Level)
	assert.Equal(t, int64(404), all[1].ContextMap()["status"])
	assert.Equal(t, zapcore.ErrorLevel, all[2].Level)
	assert.Equal(t, int64(500), all[2].ContextMap()["status"])
}

func TestAdminAuth(t *testing.T) {
	newApp := func(token string) *fiber.App {
		app := fiber.New()
		app.Use(AdminAuth(token))
		app.Get("/admin", func(c *fiber.Ctx) error {
			return c.SendString("ok")
		})
		return app
	}

	t.Run("disabled without token", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/admin", nil)
		req.Header.Set("Authorization", "Bearer anything")
		resp, _ := newApp("").Test(req)
		assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	})

	t.Run("missing header", func(t *testing.T) {
		resp, _ := newApp("s3cret").Test(httptest.NewRequest("GET", "/admin", nil))
		assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
		assert.Contains(t, resp.Header.Get("WWW-Authenticate"), "Bearer")
	})

	t.Run("wrong token", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/admin", nil)
		req.Header.Set("Authorization", "Bearer nope")
		resp, _ := newApp("s3cret").Test(req)
		assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	})

	t.Run("valid token", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/admin", nil)
		req.Header.Set("Authorization", "Bearer s3cret")
		resp, _ := newApp("s3cret").Test(req)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	})
}

func TestRateLimiter(t *testing.T) {
	lim := NewRateLimiter(0.001, 2)
	app := fiber.New()
	app.Use(lim.Handler())
	app.Post("/form", func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusNoContent)
	})

	rejected := testutil.ToFloat64(metrics.RateLimitRejected.WithLabelValues("memory"))

	for i := 0; i < 2; i++ {
		resp, _ := app.Test(httptest.NewRequest("POST", "/form", nil))
		assert.Equal(t, fiber.StatusNoContent, resp.StatusCode)
	}

	resp, _ := app.Test(httptest.NewRequest("POST", "/form", nil))
	assert.Equal(t, fiber.StatusTooManyRequests, resp.StatusCode)
	assert.Equal(t, "1", resp.Header.Get("Retry-After"))
	assert.Equal(t, rejected+1, testutil.ToFloat64(metrics.RateLimitRejected.WithLabelValues("memory")))
}

func TestRateLimiter_SweepDropsIdleClients(t *testing.T) {
	lim := NewRateLimiter(0.001, 1)
	clock := time.Date(2024, 10, 15, 14, 30, 0, 0, time.UTC)
	lim.now = func() time.Time { return clock }

	lim.get("ip:10.0.0.1").Allow()
	clock = clock.Add(defaultLimiterIdle - time.Second)
	lim.get("ip:10.0.0.2").Allow()

	assert.Equal(t, 0, lim.Sweep(), "nothing idle yet")

	clock = clock.Add(2 * time.Second)
	assert.Equal(t, 1, lim.Sweep())
	_, ok := lim.limiters.Load("ip:10.0.0.1")
	assert.False(t, ok)
	_, ok = lim.limiters.Load("ip:10.0.0.2")
	assert.True(t, ok)

	// an evicted client starts over with a full bucket
	assert.True(t, lim.get("ip:10.0.0.1").Allow())
	assert.False(t, lim.get("ip:10.0.0.2").Allow())
}

func TestRateLimiter_RunStopsWithContext(t *testing.T) {
	lim := NewRateLimiter(1, 1)
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		lim.Run(ctx, time.Millisecond)
		close(done)
	}()
	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Run did not return after cancel")
	}
}

func TestRateLimiter_Disabled(t *testing.T) {
	lim := NewRateLimiter(0, 0)
	app := fiber.New()
	app.Use(lim.Handler())
	app.Post("/form", func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusNoContent)
	})

	for i := 0; i < 5; i++ {
		resp, _ := app.Test(httptest.NewRequest("POST", "/form", nil))
		assert.Equal(t, fiber.StatusNoContent, resp.StatusCode)
	}
}
