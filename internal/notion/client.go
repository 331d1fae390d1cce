// Package notion is a small client for the hosted content store the portfolio
// reads from. It covers the three calls the site needs: retrieving a
// database's data sources, querying a data source, and looking up one asset
// record by name.
package notion

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/bfarth20/malexanderportfolio/internal/platform/timeouts"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const (
	// DefaultBaseURL is the public API root.
	DefaultBaseURL = "https://api.notion.com/v1"
	// DefaultVersion is the API version that exposes data sources.
	DefaultVersion = "2025-09-03"
	// MaxPageSize is the largest page the API returns in one query.
	MaxPageSize = 100

	tracerName    = "github.com/bfarth20/malexanderportfolio/internal/notion"
	maxErrorBody  = 64 << 10
	assetProperty = "Name"
)

// ErrTokenRequired is returned when a client is built without credentials.
var ErrTokenRequired = errors.New("notion token is required")

// APIError is a non-2xx answer from the API.
type APIError struct {
	StatusCode int
	Code       string
	Message    string
}

func (e *APIError) Error() string {
	if e.Code == "" {
		return fmt.Sprintf("notion api status %d: %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("notion api status %d (%s): %s", e.StatusCode, e.Code, e.Message)
}

// Config holds client construction inputs.
type Config struct {
	Token      string
	BaseURL    string
	Version    string
	HTTPClient *http.Client
}

// Client talks to the API over HTTP. It is safe for concurrent use.
type Client struct {
	token      string
	baseURL    string
	version    string
	httpClient *http.Client
	tracer     trace.Tracer
}

// NewClient validates cfg and builds a client.
func NewClient(cfg Config) (*Client, error) {
	token := strings.TrimSpace(cfg.Token)
	if token == "" {
		return nil, ErrTokenRequired
	}
	baseURL := strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if _, err := url.Parse(baseURL); err != nil {
		return nil, fmt.Errorf("parse base url: %w", err)
	}
	version := strings.TrimSpace(cfg.Version)
	if version == "" {
		version = DefaultVersion
	}
	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: timeouts.ContentRequest}
	}
	return &Client{
		token:      token,
		baseURL:    baseURL,
		version:    version,
		httpClient: httpClient,
		tracer:     otel.Tracer(tracerName),
	}, nil
}

// RetrieveDatabase fetches database metadata, including its data sources.
func (c *Client) RetrieveDatabase(ctx context.Context, databaseID string) (Database, error) {
	var db Database
	err := c.do(ctx, "notion.RetrieveDatabase", http.MethodGet, "/databases/"+url.PathEscape(databaseID), nil, &db)
	if err != nil {
		return Database{}, err
	}
	return db, nil
}

// DataSources lists the child data source ids of a database in API order.
func (c *Client) DataSources(ctx context.Context, databaseID string) ([]string, error) {
	db, err := c.RetrieveDatabase(ctx, databaseID)
	if err != nil {
		return nil, err
	}
	ids := make([]string, 0, len(db.DataSources))
	for _, ds := range db.DataSources {
		if id := strings.TrimSpace(ds.ID); id != "" {
			ids = append(ids, id)
		}
	}
	return ids, nil
}

// Query runs one data source query and returns one page of results.
func (c *Client) Query(ctx context.Context, dataSourceID string, req QueryRequest) (QueryResponse, error) {
	if req.PageSize <= 0 || req.PageSize > MaxPageSize {
		req.PageSize = MaxPageSize
	}
	var wire queryResponseWire
	path := "/data_sources/" + url.PathEscape(dataSourceID) + "/query"
	if err := c.do(ctx, "notion.Query", http.MethodPost, path, req, &wire); err != nil {
		return QueryResponse{}, err
	}
	return decodeQueryResponse(wire), nil
}

// QueryAsset looks up the record whose title equals name. It reports false
// when no record matches.
func (c *Client) QueryAsset(ctx context.Context, dataSourceID, name string) (Page, bool, error) {
	resp, err := c.Query(ctx, dataSourceID, QueryRequest{
		Filter:   &Filter{Property: assetProperty, Title: &TextCondition{Equals: name}},
		PageSize: 1,
	})
	if err != nil {
		return Page{}, false, err
	}
	if len(resp.Results) == 0 {
		return Page{}, false, nil
	}
	return resp.Results[0], true, nil
}

func decodeQueryResponse(wire queryResponseWire) QueryResponse {
	resp := QueryResponse{
		Results: make([]Page, 0, len(wire.Results)),
		HasMore: wire.HasMore,
	}
	if wire.NextCursor != nil {
		resp.NextCursor = *wire.NextCursor
	}
	for _, raw := range wire.Results {
		var page Page
		if err := json.Unmarshal(raw, &page); err != nil {
			resp.Malformed++
			continue
		}
		resp.Results = append(resp.Results, page)
	}
	return resp
}

func (c *Client) do(ctx context.Context, spanName, method, path string, body, out any) (err error) {
	ctx, span := c.tracer.Start(ctx, spanName, trace.WithSpanKind(trace.SpanKindClient))
	span.SetAttributes(
		attribute.String("http.request.method", method),
		attribute.String("notion.path", path),
	)
	defer func() {
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		span.End()
	}()

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(payload)
	}
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set("Notion-Version", c.version)
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	res, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer res.Body.Close()
	span.SetAttributes(attribute.Int("http.response.status_code", res.StatusCode))

	if res.StatusCode < 200 || res.StatusCode > 299 {
		return decodeAPIError(res)
	}
	if err := json.NewDecoder(res.Body).Decode(out); err != nil {
		return fmt.Errorf("decode %s response: %w", path, err)
	}
	return nil
}

func decodeAPIError(res *http.Response) error {
	data, _ := io.ReadAll(io.LimitReader(res.Body, maxErrorBody))
	apiErr := &APIError{StatusCode: res.StatusCode}
	var wire errorResponseWire
	if json.Unmarshal(data, &wire) == nil && wire.Object == "error" {
		apiErr.Code = wire.Code
		apiErr.Message = wire.Message
	} else {
		apiErr.Message = strings.TrimSpace(string(data))
	}
	if apiErr.Message == "" {
		apiErr.Message = http.StatusText(res.StatusCode)
	}
	return apiErr
}
