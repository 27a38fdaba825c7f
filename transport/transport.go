// Package transport provides the HTTP-sending collaborator the publish
// client depends on. The client consumes the Doer abstraction only;
// New builds a production *http.Client from configuration.
package transport

import (
	"crypto/tls"
	stderrors "errors"
	"net/http"
	"time"

	"github.com/xsellco/grip/errors"
)

// Doer issues a single HTTP request and returns the response or a
// transport-level error. *http.Client satisfies Doer; tests inject fakes.
// Implementations must be safe for concurrent use.
type Doer interface {
	Do(req *http.Request) (*http.Response, error)
}

// DefaultTimeout bounds a full request/response exchange when no timeout
// is configured.
const DefaultTimeout = 30 * time.Second

// Config holds transport configuration.
type Config struct {
	// Timeout bounds the full exchange including body read.
	// Zero selects DefaultTimeout.
	Timeout time.Duration

	// TLS is the optional client TLS configuration.
	TLS *tls.Config

	// MaxIdleConns caps the connection pool. Zero keeps the
	// net/http default.
	MaxIdleConns int
}

// Validate checks the configuration for errors.
func (c Config) Validate() error {
	if c.Timeout < 0 || c.Timeout > 5*time.Minute {
		return errors.Wrap(errInvalidTimeout, "Config", "Validate", "check timeout")
	}
	if c.MaxIdleConns < 0 {
		return errors.Wrap(errInvalidPool, "Config", "Validate", "check max idle conns")
	}
	return nil
}

var (
	errInvalidTimeout = stderrors.New("timeout must be between 0 and 5 minutes")
	errInvalidPool    = stderrors.New("max idle conns must not be negative")
)

// New creates an *http.Client from the configuration.
func New(cfg Config) (*http.Client, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = DefaultTimeout
	}

	client := &http.Client{Timeout: timeout}

	if cfg.TLS != nil || cfg.MaxIdleConns > 0 {
		client.Transport = &http.Transport{
			TLSClientConfig: cfg.TLS,
			MaxIdleConns:    cfg.MaxIdleConns,
		}
	}

	return client, nil
}
