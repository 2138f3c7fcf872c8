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
)

const defaultPerPage = 200

// Client is the HTTP wrapper for a PocketBase-style records API.
type Client struct {
	baseURL    string
	authToken  string
	httpClient *http.Client
}

// NewClient creates a new records API client.
func NewClient(baseURL, authToken string) *Client {
	return &Client{
		baseURL:    baseURL,
		authToken:  authToken,
		httpClient: &http.Client{},
	}
}

// Collection scopes subsequent calls to one collection.
func (c *Client) Collection(name string) *Collection {
	return &Collection{client: c, name: name}
}

// Collection is a handle on one backend collection.
type Collection struct {
	client *Client
	name   string
}

// GetFullList fetches every record matching the options, walking pages
// until the backend reports the last one.
func (col *Collection) GetFullList(ctx context.Context, opt ListOptions) ([]Record, error) {
	perPage := opt.PerPage
	if perPage <= 0 {
		perPage = defaultPerPage
	}

	var all []Record
	for page := 1; ; page++ {
		q := url.Values{}
		q.Set("page", strconv.Itoa(page))
		q.Set("perPage", strconv.Itoa(perPage))
		if opt.Filter != "" {
			q.Set("filter", opt.Filter)
		}
		if opt.Sort != "" {
			q.Set("sort", opt.Sort)
		}
		if opt.Expand != "" {
			q.Set("expand", opt.Expand)
		}

		var resp listResponse
		path := fmt.Sprintf("/api/collections/%s/records?%s", col.name, q.Encode())
		if err := col.client.do(ctx, http.MethodGet, path, nil, &resp); err != nil {
			return nil, err
		}

		all = append(all, resp.Items...)
		if page >= resp.TotalPages || len(resp.Items) == 0 {
			break
		}
	}
	return all, nil
}

// GetOne fetches a single record by id.
func (col *Collection) GetOne(ctx context.Context, id string, opt GetOptions) (Record, error) {
	q := url.Values{}
	if opt.Expand != "" {
		q.Set("expand", opt.Expand)
	}
	path := fmt.Sprintf("/api/collections/%s/records/%s", col.name, id)
	if enc := q.Encode(); enc != "" {
		path += "?" + enc
	}

	var rec Record
	if err := col.client.do(ctx, http.MethodGet, path, nil, &rec); err != nil {
		return nil, err
	}
	return rec, nil
}

// Create inserts a record with the given fields.
func (col *Collection) Create(ctx context.Context, fields map[string]any) (Record, error) {
	path := fmt.Sprintf("/api/collections/%s/records", col.name)

	var rec Record
	if err := col.client.do(ctx, http.MethodPost, path, fields, &rec); err != nil {
		return nil, err
	}
	return rec, nil
}

// Update patches the given fields on a record.
func (col *Collection) Update(ctx context.Context, id string, fields map[string]any) (Record, error) {
	path := fmt.Sprintf("/api/collections/%s/records/%s", col.name, id)

	var rec Record
	if err := col.client.do(ctx, http.MethodPatch, path, fields, &rec); err != nil {
		return nil, err
	}
	return rec, nil
}

// Delete removes a record by id.
func (col *Collection) Delete(ctx context.Context, id string) error {
	path := fmt.Sprintf("/api/collections/%s/records/%s", col.name, id)
	return col.client.do(ctx, http.MethodDelete, path, nil, nil)
}

// do executes one API round trip, encoding body and decoding out when
// non-nil.
func (c *Client) do(ctx context.Context, method, path string, body any, out any) error {
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal %s %s body: %w", method, path, err)
		}
		reader = bytes.NewBuffer(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("failed to build %s %s request: %w", method, path, err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.authToken != "" {
		req.Header.Set("Authorization", c.authToken)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to call records API %s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		raw, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("records API %s %s error %d: %s", method, path, resp.StatusCode, string(raw))
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode %s %s response: %w", method, path, err)
	}
	return nil
}
