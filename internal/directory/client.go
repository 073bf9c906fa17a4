// Package directory reads user records from the remote directory endpoint.
package directory

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"usersearch/internal/domain"
)

// ErrFetchFailed covers every failure to obtain records: transport errors,
// non-2xx responses and undecodable bodies.
var ErrFetchFailed = errors.New("directory fetch failed")

// StatusError is returned for non-2xx responses
type StatusError struct {
	StatusCode int
	Status     string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%v: unexpected response %s", ErrFetchFailed, e.Status)
}

func (e *StatusError) Unwrap() error { return ErrFetchFailed }

// Fetcher returns the directory's records in their original order
type Fetcher interface {
	Fetch(ctx context.Context, query string) ([]domain.User, error)
}

// Client fetches the directory over HTTP
type Client struct {
	client     *http.Client
	endpoint   string
	queryParam string
}

// Option configures a Client
type Option func(*Client)

// WithHTTPClient replaces the underlying http.Client
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.client = hc }
}

// WithTimeout bounds each request
func WithTimeout(d time.Duration) Option {
	return func(c *Client) { c.client.Timeout = d }
}

// WithQueryParam sends the query to the server as the named URL parameter.
// Results are still filtered locally.
func WithQueryParam(name string) Option {
	return func(c *Client) { c.queryParam = name }
}

// NewClient creates a directory client for endpoint
func NewClient(endpoint string, opts ...Option) *Client {
	c := &Client{
		client:   &http.Client{},
		endpoint: endpoint,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Fetch reads the full directory. The query only reaches the server when a
// query parameter is configured.
func (c *Client) Fetch(ctx context.Context, query string) ([]domain.User, error) {
	target, err := c.requestURL(query)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFetchFailed, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFetchFailed, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFetchFailed, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		// Drain so the connection can be reused
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 64<<10))
		return nil, &StatusError{StatusCode: resp.StatusCode, Status: resp.Status}
	}

	var users []domain.User
	if err := json.NewDecoder(resp.Body).Decode(&users); err != nil {
		return nil, fmt.Errorf("%w: decoding response: %v", ErrFetchFailed, err)
	}

	return users, nil
}

func (c *Client) requestURL(query string) (string, error) {
	if c.queryParam == "" {
		return c.endpoint, nil
	}
	u, err := url.Parse(c.endpoint)
	if err != nil {
		return "", err
	}
	values := u.Query()
	values.Set(c.queryParam, query)
	u.RawQuery = values.Encode()
	return u.String(), nil
}
