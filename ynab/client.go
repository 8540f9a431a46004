// Package ynab is a small read-only client for the YNAB v1 REST API.
package ynab

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/carlmjohnson/requests"
	"github.com/charmbracelet/log"
)

const defaultBaseURL = "https://api.youneedabudget.com"

// Options configures a Client beyond its token.
type Options struct {
	// BaseURL overrides the API host, mostly useful in tests.
	BaseURL string
	// HTTPClient performs every request. Defaults to http.DefaultClient.
	HTTPClient *http.Client
	// Logger receives a debug line per request and a warning per non-2xx
	// response. Nil disables logging.
	Logger *log.Logger
}

// Client issues authenticated requests to the YNAB API on behalf of a single
// bearer token.
//
// A Client remembers which budget it operates on. The first budget-scoped
// call resolves it to the account's first budget unless SetBudgetID or
// GetBudgetIDByName ran earlier; once set it stays set for the Client's
// lifetime. The budget cache is read and written without locking, so a
// Client is not safe for concurrent use.
type Client struct {
	baseURL string
	token   string
	http    *http.Client
	logger  *log.Logger

	budgetID  string
	rateLimit string
}

// New returns a Client using default options.
func New(token string) *Client {
	return NewWithOptions(token, Options{})
}

// NewWithOptions returns a Client with explicit options.
func NewWithOptions(token string, o Options) *Client {
	if o.BaseURL == "" {
		o.BaseURL = defaultBaseURL
	}

	if o.HTTPClient == nil {
		o.HTTPClient = http.DefaultClient
	}

	return &Client{
		baseURL: o.BaseURL,
		token:   token,
		http:    o.HTTPClient,
		logger:  o.Logger,
	}
}

// SetBudgetID overrides the cached budget without talking to the server.
// The ID is not validated.
func (c *Client) SetBudgetID(budgetID string) {
	c.budgetID = budgetID
}

// RateLimit returns the X-Rate-Limit value of the most recent response,
// e.g. "36/200", or the empty string before any request completed.
// The API resets the window one hour after the first request it counts.
func (c *Client) RateLimit() string {
	return c.rateLimit
}

func (c *Client) get(ctx context.Context, out any, path string, args ...any) error {
	if c.logger != nil {
		c.logger.Debug("GET", "path", fmt.Sprintf(path, args...))
	}

	err := requests.URL(c.baseURL).
		Pathf(path, args...).
		Header("Authorization", "Bearer "+c.token).
		Client(c.http).
		AddValidator(c.validate).
		ToJSON(out).
		Fetch(ctx)
	if err == nil {
		return nil
	}

	var reqErr *RequestError
	if errors.As(err, &reqErr) {
		if c.logger != nil {
			c.logger.Warn("request failed",
				"path", fmt.Sprintf(path, args...),
				"status", reqErr.StatusCode,
			)
		}

		return reqErr
	}

	return &RequestError{Err: fmt.Errorf("fetching %s: %w", fmt.Sprintf(path, args...), err)}
}

// validate records the rate-limit header and turns non-2xx responses into a
// *RequestError carrying the body.
func (c *Client) validate(res *http.Response) error {
	if v := res.Header.Get("X-Rate-Limit"); v != "" {
		c.rateLimit = v
	}

	if res.StatusCode >= 200 && res.StatusCode < 300 {
		return nil
	}

	body, _ := io.ReadAll(res.Body)

	return &RequestError{StatusCode: res.StatusCode, Body: string(body)}
}
