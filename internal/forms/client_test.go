package forms

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bwdtc/bridgewater-dems/internal/config"
	"github.com/bwdtc/bridgewater-dems/internal/metrics"
)

func TestClient_Submit(t *testing.T) {
	var got url.Values
	var contentType string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		contentType = r.Header.Get("Content-Type")
		b, _ := io.ReadAll(r.Body)
		got, _ = url.ParseQuery(string(b))
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	c := NewClient(config.FormsConfig{Endpoint: srv.URL, Timeout: time.Second})
	before := testutil.ToFloat64(metrics.FormRelay.WithLabelValues("contact", metrics.ResultSuccess))

	fields := url.Values{"name": {"Jane"}, "form-name": {"spoofed"}}
	require.NoError(t, c.Submit(context.Background(), "contact", fields))

	assert.Equal(t, "application/x-www-form-urlencoded", contentType)
	assert.Equal(t, "contact", got.Get(FieldFormName))
	assert.Equal(t, "Jane", got.Get("name"))
	assert.Equal(t, "spoofed", fields.Get("form-name"), "caller values are not mutated")
	assert.Equal(t, before+1, testutil.ToFloat64(metrics.FormRelay.WithLabelValues("contact", metrics.ResultSuccess)))
}

func TestClient_SubmitBackendError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
	}))
	defer srv.Close()

	c := NewClient(config.FormsConfig{Endpoint: srv.URL})
	err := c.Submit(context.Background(), "volunteer", url.Values{})
	assert.ErrorIs(t, err, ErrBackendStatus)
	assert.Contains(t, err.Error(), "422")
}

func TestClient_SubmitUnreachable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	endpoint := srv.URL
	srv.Close()

	c := NewClient(config.FormsConfig{Endpoint: endpoint, Timeout: time.Second})
	err := c.Submit(context.Background(), "contact", url.Values{})
	require.Error(t, err)
	assert.False(t, errors.Is(err, ErrBackendStatus))
}

func TestClient_NotConfigured(t *testing.T) {
	c := NewClient(config.FormsConfig{})
	assert.False(t, c.Configured())
	assert.ErrorIs(t, c.Submit(context.Background(), "contact", nil), ErrNotConfigured)

	var nilClient *Client
	assert.False(t, nilClient.Configured())
}
