// Package httputil provides HTTP client utilities with standard configurations.
package httputil

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

const (
	// Default timeout for HTTP requests
	defaultTimeout = 10 * time.Second

	maxIdleConns        = 10
	maxIdleConnsPerHost = 4
	idleConnTimeout     = 30 * time.Second

	// Upper bound on JSON bodies read from the movies API.
	maxBodyBytes = 10 << 20
)

// NewHTTPClient creates a new HTTP client with the specified timeout.
// The client is configured with connection pooling and idle connection management.
func NewHTTPClient(timeout time.Duration) *http.Client {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &http.Client{
		Timeout: timeout,
		Transport: &http.Transport{
			Proxy:               http.ProxyFromEnvironment,
			MaxIdleConns:        maxIdleConns,
			MaxIdleConnsPerHost: maxIdleConnsPerHost,
			IdleConnTimeout:     idleConnTimeout,
		},
	}
}

// IsSuccess reports whether the status code is in the 2xx range.
func IsSuccess(status int) bool {
	return status >= 200 && status < 300
}

// DecodeJSON decodes a single JSON value from body into dst, reading at most
// maxBodyBytes. Trailing data after the value is rejected.
func DecodeJSON(body io.Reader, dst any) error {
	dec := json.NewDecoder(io.LimitReader(body, maxBodyBytes))
	if err := dec.Decode(dst); err != nil {
		if err == io.EOF {
			return fmt.Errorf("body must not be empty")
		}
		return err
	}
	if dec.More() {
		return fmt.Errorf("body must only contain a single JSON value")
	}
	return nil
}

// Drain discards the rest of body so the connection can be reused, then
// closes it.
func Drain(body io.ReadCloser) {
	io.Copy(io.Discard, io.LimitReader(body, maxBodyBytes))
	body.Close()
}
