// Package rest implements core.IdentityStore over the identity store's
// JSON HTTP surface: POST /users and GET /users?username=<u>.
package rest

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/centavo/centavo/core"
)

// DefaultTimeout bounds every identity store call so a dead network
// surfaces as core.ErrStoreUnavailable instead of hanging.
const DefaultTimeout = 15 * time.Second

type Client struct {
	baseURL string
	http    *http.Client
}

var _ core.IdentityStore = (*Client)(nil)

func New(cfg Config) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Client{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		http:    &http.Client{Timeout: timeout},
	}
}

// CreateUser registers a user via POST /users. reg.Password must
// already be a digest; the plaintext never reaches this adapter.
func (c *Client) CreateUser(ctx context.Context, reg core.Registration) (*core.UserRecord, error) {
	body, err := json.Marshal(reg)
	if err != nil {
		return nil, fmt.Errorf("failed to encode registration: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/users", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", core.ErrStoreUnavailable, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusConflict:
		return nil, core.ErrUserExists
	case resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices:
		return nil, fmt.Errorf("%w: unexpected status %d", core.ErrStoreUnavailable, resp.StatusCode)
	}

	var record core.UserRecord
	if err := json.NewDecoder(resp.Body).Decode(&record); err != nil {
		return nil, fmt.Errorf("%w: decoding response: %v", core.ErrStoreUnavailable, err)
	}
	return &record, nil
}

// FindByUsername queries GET /users?username=<u>. An empty array is a
// valid answer, not an error.
func (c *Client) FindByUsername(ctx context.Context, username string) ([]*core.UserRecord, error) {
	target := fmt.Sprintf("%s/users?username=%s", c.baseURL, url.QueryEscape(username))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", core.ErrStoreUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: unexpected status %d", core.ErrStoreUnavailable, resp.StatusCode)
	}

	var records []*core.UserRecord
	if err := json.NewDecoder(resp.Body).Decode(&records); err != nil {
		return nil, fmt.Errorf("%w: decoding response: %v", core.ErrStoreUnavailable, err)
	}
	return records, nil
}
