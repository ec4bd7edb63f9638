// Package forms relays the public contact and volunteer forms to the hosted
// forms backend, which expects netlify-style url-encoded posts.
package forms

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/bwdtc/bridgewater-dems/internal/config"
	"github.com/bwdtc/bridgewater-dems/internal/metrics"
)

const (
	// FieldFormName tells the backend which form a post belongs to.
	FieldFormName = "form-name"
	// FieldHoneypot is hidden from humans; bots fill it in.
	FieldHoneypot = "bot-field"
)

var (
	ErrNotConfigured = errors.New("forms: backend endpoint not configured")
	ErrBackendStatus = errors.New("forms: backend rejected submission")
)

// Client posts form submissions to the forms backend.
type Client struct {
	endpoint string
	http     *http.Client
}

// NewClient builds a Client with a traced transport.
func NewClient(cfg config.FormsConfig) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Client{
		endpoint: cfg.Endpoint,
		http: &http.Client{
			Transport: otelhttp.NewTransport(http.DefaultTransport),
			Timeout:   timeout,
		},
	}
}

// Configured reports whether an endpoint is set.
func (c *Client) Configured() bool {
	return c != nil && c.endpoint != ""
}

// Submit posts fields under formName. The honeypot field is forwarded as is
// so the backend can apply its own spam filtering.
func (c *Client) Submit(ctx context.Context, formName string, fields url.Values) (err error) {
	defer func() {
		metrics.FormRelay.WithLabelValues(formName, metrics.Result(err)).Inc()
	}()

	if !c.Configured() {
		return ErrNotConfigured
	}

	body := url.Values{}
	for k, vs := range fields {
		body[k] = append([]string(nil), vs...)
	}
	body.Set(FieldFormName, formName)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, strings.NewReader(body.Encode()))
	if err != nil {
		return fmt.Errorf("build form request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Accept", "text/html,application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("post form %s: %w", formName, err)
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 64<<10))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("%w: status %d", ErrBackendStatus, resp.StatusCode)
	}
	return nil
}
