// Package client provides a Go client for the graphgen HTTP API.
//
// # Usage
//
//	c, err := client.New("http://localhost:8080")
//	if err != nil {
//	    return err
//	}
//	rec, err := c.Generate(ctx, client.GenerateRequest{Depth: 4, NewVertices: 3, Seed: 42})
//
// # Errors
//
// The server reports failures as a JSON envelope carrying a machine-readable
// code. The client decodes that envelope back into [errors.Error], so coded
// checks work the same against a remote server as against the local store:
//
//	if errors.Is(err, errors.ErrCodeGraphNotFound) { ... }
//
// # Retry
//
// Read calls (Get, List, DOT, Health) retry transient failures with
// exponential backoff. Generate and Delete are sent exactly once, since
// replaying a create or delete that already succeeded would surface a
// misleading conflict or not-found error.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/graphforge/graphgen/pkg/errors"
	"github.com/graphforge/graphgen/pkg/store"
)

const httpTimeout = 10 * time.Second

// Client calls a running graphgen API server.
type Client struct {
	baseURL string
	http    *http.Client
}

// New creates a Client for the server at baseURL.
// The URL must use the http or https scheme; a trailing slash is ignored.
func New(baseURL string) (*Client, error) {
	if err := errors.ValidateBaseURL(baseURL); err != nil {
		return nil, err
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: httpTimeout},
	}, nil
}

// GenerateRequest describes one generation call.
// When Name is set the server persists the result and rejects duplicates.
type GenerateRequest struct {
	Depth       int    `json:"depth"`
	NewVertices int    `json:"new_vertices"`
	Seed        uint64 `json:"seed"`
	Name        string `json:"name,omitempty"`
}

// Health checks that the server is up and reporting healthy.
func (c *Client) Health(ctx context.Context) error {
	var resp struct {
		Status string `json:"status"`
	}
	if err := RetryWithBackoff(ctx, func() error {
		return c.getJSON(ctx, "/healthz", &resp)
	}); err != nil {
		return err
	}
	if resp.Status != "ok" {
		return errors.New(errors.ErrCodeUnavailable, "server reported status %q", resp.Status)
	}
	return nil
}

// Generate asks the server to generate a graph and returns the resulting
// record. The record's Graph field holds the full document.
func (c *Client) Generate(ctx context.Context, req GenerateRequest) (*store.Record, error) {
	var rec store.Record
	if err := c.postJSON(ctx, "/api/v1/graphs", req, &rec); err != nil {
		return nil, err
	}
	return &rec, nil
}

// Get fetches a stored record by name, including its graph document.
func (c *Client) Get(ctx context.Context, name string) (*store.Record, error) {
	var rec store.Record
	err := RetryWithBackoff(ctx, func() error {
		return c.getJSON(ctx, "/api/v1/graphs/"+url.PathEscape(name), &rec)
	})
	if err != nil {
		return nil, err
	}
	return &rec, nil
}

// List fetches all stored records, newest first.
// Graph documents are omitted from listings; use [Client.Get] for the full record.
func (c *Client) List(ctx context.Context) ([]*store.Record, error) {
	var recs []*store.Record
	err := RetryWithBackoff(ctx, func() error {
		return c.getJSON(ctx, "/api/v1/graphs", &recs)
	})
	if err != nil {
		return nil, err
	}
	return recs, nil
}

// DOT fetches the Graphviz DOT rendering of a stored graph.
func (c *Client) DOT(ctx context.Context, name string) (string, error) {
	var text string
	err := RetryWithBackoff(ctx, func() error {
		body, err := c.doRequest(ctx, http.MethodGet, "/api/v1/graphs/"+url.PathEscape(name)+"/dot", nil)
		if err != nil {
			return err
		}
		defer body.Close()
		data, err := io.ReadAll(body)
		text = string(data)
		return err
	})
	return text, err
}

// Delete removes a stored graph by name.
func (c *Client) Delete(ctx context.Context, name string) error {
	body, err := c.doRequest(ctx, http.MethodDelete, "/api/v1/graphs/"+url.PathEscape(name), nil)
	if err != nil {
		return err
	}
	return body.Close()
}

func (c *Client) getJSON(ctx context.Context, path string, v any) error {
	body, err := c.doRequest(ctx, http.MethodGet, path, nil)
	if err != nil {
		return err
	}
	defer body.Close()
	return json.NewDecoder(body).Decode(v)
}

func (c *Client) postJSON(ctx context.Context, path string, payload, v any) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	body, err := c.doRequest(ctx, http.MethodPost, path, bytes.NewReader(data))
	if err != nil {
		return err
	}
	defer body.Close()
	return json.NewDecoder(body).Decode(v)
}

func (c *Client) doRequest(ctx context.Context, method, path string, payload io.Reader) (io.ReadCloser, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, payload)
	if err != nil {
		return nil, err
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, &RetryableError{Err: errors.Wrap(errors.ErrCodeNetwork, err, "%s %s", method, path)}
	}

	if err := checkResponse(resp); err != nil {
		resp.Body.Close()
		return nil, err
	}
	return resp.Body, nil
}

// errorBody mirrors the API's error envelope.
type errorBody struct {
	Error struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

func checkResponse(resp *http.Response) error {
	switch {
	case resp.StatusCode >= 200 && resp.StatusCode < 300:
		return nil
	case resp.StatusCode >= 500:
		return &RetryableError{Err: errors.New(errors.ErrCodeNetwork, "server error: status %d", resp.StatusCode)}
	}

	var body errorBody
	if err := json.NewDecoder(resp.Body).Decode(&body); err == nil && body.Error.Code != "" {
		return errors.New(errors.Code(body.Error.Code), "%s", body.Error.Message)
	}
	return errors.New(errors.ErrCodeNetwork, "unexpected status %d", resp.StatusCode)
}
