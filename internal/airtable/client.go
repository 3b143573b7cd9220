// Package airtable is a minimal client for the Airtable REST API, covering
// the two operations the site needs: listing the records of a table and
// appending a single record. It never retries; failures are surfaced to the
// caller as typed errors.
package airtable

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

const defaultEndpoint = "https://api.airtable.com/v0"

// Record is a raw Airtable record: an opaque ID, the server-side creation
// time and the column name → value mapping as stored remotely.
type Record struct {
	ID          string         `json:"id"`
	CreatedTime time.Time      `json:"createdTime"`
	Fields      map[string]any `json:"fields"`
}

// QueryOptions narrows a table listing. Zero values are omitted from the
// request.
type QueryOptions struct {
	View            string
	FilterByFormula string
}

// Config carries the credentials and transport settings for a Client.
type Config struct {
	Token    string
	BaseID   string
	Endpoint string        // defaults to the public Airtable API
	Timeout  time.Duration // defaults to 10s
}

type Client struct {
	token    string
	baseID   string
	endpoint string
	hc       *http.Client
}

// NewClient validates the configuration and builds a client. A missing
// token or base ID is a configuration error, not something to retry.
func NewClient(cfg Config) (*Client, error) {
	if cfg.Token == "" || cfg.BaseID == "" {
		return nil, ErrMissingConfig
	}
	endpoint := cfg.Endpoint
	if endpoint == "" {
		endpoint = defaultEndpoint
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Client{
		token:    cfg.Token,
		baseID:   cfg.BaseID,
		endpoint: endpoint,
		hc:       &http.Client{Timeout: timeout},
	}, nil
}

type recordsResponse struct {
	Records []Record `json:"records"`
}

// FetchRecords lists the records of a table, optionally through a view or
// a filterByFormula expression.
func (c *Client) FetchRecords(ctx context.Context, table string, opts QueryOptions) ([]Record, error) {
	u := c.tableURL(table)
	q := url.Values{}
	if opts.View != "" {
		q.Set("view", opts.View)
	}
	if opts.FilterByFormula != "" {
		q.Set("filterByFormula", opts.FilterByFormula)
	}
	if len(q) > 0 {
		u += "?" + q.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("airtable: new request: %w", err)
	}

	body, err := c.do(req)
	if err != nil {
		return nil, err
	}

	var parsed recordsResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return nil, fmt.Errorf("airtable: decode response: %w", err)
	}
	return parsed.Records, nil
}

// CreateRecord appends one record to a table and returns it with its
// remote-assigned ID. This is the only write the client performs; it is
// called at most once per submission.
func (c *Client) CreateRecord(ctx context.Context, table string, fields map[string]any) (Record, error) {
	payload := map[string]any{
		"records":  []map[string]any{{"fields": fields}},
		"typecast": true,
	}
	b, err := json.Marshal(payload)
	if err != nil {
		return Record{}, fmt.Errorf("airtable: marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.tableURL(table), bytes.NewReader(b))
	if err != nil {
		return Record{}, fmt.Errorf("airtable: new request: %w", err)
	}

	body, err := c.do(req)
	if err != nil {
		return Record{}, err
	}

	var parsed recordsResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return Record{}, fmt.Errorf("airtable: decode response: %w", err)
	}
	if len(parsed.Records) == 0 {
		return Record{}, fmt.Errorf("airtable: create returned no records")
	}
	return parsed.Records[0], nil
}

func (c *Client) tableURL(table string) string {
	return fmt.Sprintf("%s/%s/%s", c.endpoint, c.baseID, url.PathEscape(table))
}

// do runs the request and reads the full body. No response at all maps to
// ErrUnreachable, a non-2xx status to *APIError carrying status and body.
func (c *Client) do(req *http.Request) ([]byte, error) {
	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.hc.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnreachable, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnreachable, err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &APIError{StatusCode: resp.StatusCode, Body: string(body)}
	}
	return body, nil
}
