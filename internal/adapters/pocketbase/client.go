// Package pocketbase adapts the PocketBase REST API to the record store and
// repository ports.
package pocketbase

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"blogapi.app/internal/ports"
	"blogapi.app/pkg/errors"
)

const defaultTimeout = 5 * time.Second

// Client implements the RecordStore port over the PocketBase collections API
type Client struct {
	baseURL string
	token   string
	client  *http.Client
	logger  ports.Logger
}

// ClientParams holds parameters for creating a PocketBase client
type ClientParams struct {
	BaseURL string
	Token   string
	Timeout time.Duration
	// Transport is the round tripper every call goes through. Nil means http.DefaultTransport.
	Transport http.RoundTripper
	Logger    ports.Logger
}

type listResponse struct {
	Page       int            `json:"page"`
	PerPage    int            `json:"perPage"`
	TotalItems int            `json:"totalItems"`
	Items      []ports.Record `json:"items"`
}

// NewClient creates a new PocketBase client
func NewClient(params ClientParams) (*Client, error) {
	if params.BaseURL == "" {
		return nil, errors.NewConfigurationError("PocketBase URL cannot be empty", nil)
	}
	if params.Logger == nil {
		return nil, errors.NewConfigurationError("logger cannot be nil", nil)
	}

	timeout := params.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	transport := params.Transport
	if transport == nil {
		transport = http.DefaultTransport
	}

	return &Client{
		baseURL: strings.TrimRight(params.BaseURL, "/"),
		token:   params.Token,
		client:  &http.Client{Timeout: timeout, Transport: transport},
		logger:  params.Logger,
	}, nil
}

func (c *Client) recordsURL(collection string) string {
	return fmt.Sprintf("%s/api/collections/%s/records", c.baseURL, url.PathEscape(collection))
}

// List returns one page of records matching query
func (c *Client) List(ctx context.Context, collection string, query ports.ListQuery) (*ports.ListResult, error) {
	values := url.Values{}
	if query.Filter != "" {
		values.Set("filter", query.Filter)
	}
	if query.Sort != "" {
		values.Set("sort", query.Sort)
	}
	if query.Fields != "" {
		values.Set("fields", query.Fields)
	}
	if query.Page > 0 {
		values.Set("page", strconv.Itoa(query.Page))
	}
	if query.PerPage > 0 {
		values.Set("perPage", strconv.Itoa(query.PerPage))
	}

	target := c.recordsURL(collection)
	if encoded := values.Encode(); encoded != "" {
		target += "?" + encoded
	}

	var resp listResponse
	if err := c.do(ctx, http.MethodGet, target, nil, &resp); err != nil {
		return nil, err
	}

	return &ports.ListResult{Items: resp.Items, TotalItems: resp.TotalItems}, nil
}

// Create inserts a record and returns it as stored
func (c *Client) Create(ctx context.Context, collection string, payload map[string]interface{}) (ports.Record, error) {
	var rec ports.Record
	if err := c.do(ctx, http.MethodPost, c.recordsURL(collection), payload, &rec); err != nil {
		return nil, err
	}
	return rec, nil
}

// Patch updates the given fields of record id
func (c *Client) Patch(ctx context.Context, collection, id string, payload map[string]interface{}) (ports.Record, error) {
	target := c.recordsURL(collection) + "/" + url.PathEscape(id)

	var rec ports.Record
	if err := c.do(ctx, http.MethodPatch, target, payload, &rec); err != nil {
		return nil, err
	}
	return rec, nil
}

// Health calls the backend health endpoint
func (c *Client) Health(ctx context.Context) error {
	return c.do(ctx, http.MethodGet, c.baseURL+"/api/health", nil, nil)
}

func (c *Client) do(ctx context.Context, method, target string, payload interface{}, out interface{}) error {
	var body io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return errors.NewValidationError(fmt.Sprintf("failed to encode request body: %v", err))
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, target, body)
	if err != nil {
		return errors.NewExternalAPIError("failed to build PocketBase request", err)
	}
	req.Header.Set("Accept", "application/json")
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", c.token)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return errors.NewExternalAPIError(fmt.Sprintf("PocketBase %s %s failed", method, req.URL.Path), err)
	}
	defer func() {
		if closeErr := resp.Body.Close(); closeErr != nil {
			c.logger.Warn("Failed to close PocketBase response body", ports.F("error", closeErr))
		}
	}()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		c.logger.Warn("PocketBase returned non-success status",
			ports.F("method", method),
			ports.F("path", req.URL.Path),
			ports.F("status", resp.StatusCode),
			ports.F("body", string(snippet)))
		if resp.StatusCode == http.StatusNotFound {
			return errors.NewNotFoundError(fmt.Sprintf("PocketBase %s %s returned 404", method, req.URL.Path))
		}
		return errors.NewExternalAPIError(fmt.Sprintf("PocketBase %s %s returned status %d", method, req.URL.Path, resp.StatusCode), nil)
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return errors.NewExternalAPIError("failed to decode PocketBase response", err)
	}
	return nil
}

var _ ports.RecordStore = (*Client)(nil)
