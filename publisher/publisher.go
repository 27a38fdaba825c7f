// Package publisher provides the GRIP publish client. A Client turns
// items into an authenticated POST against the proxy's publish endpoint
// and classifies every failure into the errors package taxonomy.
package publisher

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/xsellco/grip/auth"
	"github.com/xsellco/grip/errors"
	"github.com/xsellco/grip/format"
	"github.com/xsellco/grip/metric"
	"github.com/xsellco/grip/transport"
)

// Client publishes items to a single GRIP proxy endpoint. It is long-lived
// and reusable across many publish calls; a failed call leaves the client
// fully usable.
//
// The URI is immutable after construction. The credential setters are
// intended for one-time configuration before concurrent use and are not
// synchronized against in-flight publishes.
type Client struct {
	uri     string
	auth    auth.Credential
	doer    transport.Doer
	logger  *slog.Logger
	metrics *metric.Metrics
}

// Option configures a Client at construction.
type Option func(*Client)

// WithTransport injects the HTTP-sending collaborator. Defaults to a
// transport.New client with default configuration.
func WithTransport(d transport.Doer) Option {
	return func(c *Client) {
		c.doer = d
	}
}

// WithLogger sets the structured logger. Defaults to a discard logger.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// WithMetrics attaches publish instrumentation. Nil disables recording.
func WithMetrics(m *metric.Metrics) Option {
	return func(c *Client) {
		c.metrics = m
	}
}

// New creates a Client for the given control URI. A single trailing slash
// is stripped, so "https://proxy" and "https://proxy/" address the same
// publish endpoint. The client starts with no credential.
func New(uri string, opts ...Option) *Client {
	c := &Client{
		uri:    canonicalURI(uri),
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.doer == nil {
		// Config{} always validates.
		c.doer, _ = transport.New(transport.Config{})
	}
	return c
}

func canonicalURI(uri string) string {
	if len(uri) > 0 && uri[len(uri)-1] == '/' {
		return uri[:len(uri)-1]
	}
	return uri
}

// URI returns the canonicalized control URI.
func (c *Client) URI() string {
	return c.uri
}

// Endpoint returns the publish endpoint URL.
func (c *Client) Endpoint() string {
	return c.uri + "/publish/"
}

// SetAuthBasic replaces the credential with HTTP basic auth.
func (c *Client) SetAuthBasic(username, password string) {
	c.auth = auth.Basic{Username: username, Password: password}
}

// SetAuthJWT replaces the credential with a claim set signed at
// header-render time.
func (c *Client) SetAuthJWT(claims map[string]any, key []byte) {
	c.auth = auth.NewJWT(claims, key)
}

// SetAuthToken replaces the credential with a pre-signed bearer token.
func (c *Client) SetAuthToken(token string) {
	c.auth = auth.NewToken(token)
}

// Publish sends one-or-more items to the channel and blocks until the
// exchange completes. All items travel in a single HTTP request. A failed
// exchange returns a *errors.PublishError; payload or credential
// construction problems surface as ordinary errors before any request
// is made.
func (c *Client) Publish(ctx context.Context, channel string, items ...format.Item) error {
	return c.publish(ctx, channel, items)
}

// PublishAsync sends one-or-more items to the channel without blocking the
// caller. The returned Receipt resolves exactly once when the exchange
// completes; concurrent calls on the same client are independent and may
// complete in any order.
func (c *Client) PublishAsync(ctx context.Context, channel string, items ...format.Item) *Receipt {
	r := newReceipt()
	go func() {
		r.resolve(c.publish(ctx, channel, items))
	}()
	return r
}

func (c *Client) publish(ctx context.Context, channel string, items []format.Item) error {
	start := time.Now()

	err := c.exchange(ctx, channel, items)
	if err != nil {
		kind := "invalid"
		if pe, ok := errors.As(err); ok {
			kind = pe.Kind.String()
		}
		c.metrics.RecordError(kind)
		c.logger.Warn("publish failed",
			"channel", channel,
			"kind", kind,
			"error", err,
		)
		return err
	}

	c.metrics.RecordPublish(channel, len(items), time.Since(start))
	c.logger.Debug("published",
		"channel", channel,
		"items", len(items),
		"duration", time.Since(start),
	)
	return nil
}

// exchange runs one publish call end-to-end: build payload, attach
// headers, dispatch, classify the outcome.
func (c *Client) exchange(ctx context.Context, channel string, items []format.Item) error {
	body, err := format.Envelope(channel, items)
	if err != nil {
		return err
	}

	var authHeader string
	if c.auth != nil {
		authHeader, err = c.auth.RenderHeader()
		if err != nil {
			return errors.Wrap(err, "Client", "Publish", "render authorization header")
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.Endpoint(), bytes.NewReader(body))
	if err != nil {
		return errors.Wrap(err, "Client", "Publish", "build request")
	}
	req.Header.Set("Content-Type", "application/json")
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}

	resp, err := c.doer.Do(req)
	if err != nil {
		// No response ever existed.
		return errors.Transport(err)
	}
	defer resp.Body.Close()

	respBody, readErr := io.ReadAll(resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		// Non-2xx is an HTTP failure regardless of body readability;
		// an unreadable body still surfaces through its read error.
		msg := string(respBody)
		if msg == "" && readErr != nil {
			msg = readErr.Error()
		}
		return errors.HTTP(resp.StatusCode, msg)
	}

	if readErr != nil {
		return errors.BodyRead(resp.StatusCode, readErr)
	}

	return nil
}
