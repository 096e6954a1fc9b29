package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	elastic "github.com/elastic/go-elasticsearch/v8"
	"github.com/elastic/go-elasticsearch/v8/esapi"
)

// Column describes one column of an ES|QL result set.
type Column struct {
	Name string `json:"name"`
	Type string `json:"type"`
}

// QueryResult is the structured body of an ES|QL response. Every row in
// Values has one entry per column; nil is a valid cell.
type QueryResult struct {
	Columns []Column `json:"columns"`
	Values  [][]any  `json:"values"`
}

// queryExecutor runs one ES|QL query. Both transports implement it.
type queryExecutor interface {
	Execute(ctx context.Context, query string) (*QueryResult, error)
}

// indexLister is the cluster lookup the completer depends on.
type indexLister interface {
	ListIndices(ctx context.Context) ([]string, error)
}

// ESClient wraps the official client for the operations this tool needs.
type ESClient struct {
	raw       *elastic.Client
	transport *http.Transport
}

// NewESClient builds a client for the given connection parameters. An empty
// API key yields an unauthenticated connection, which is fine for a local
// cluster with security disabled.
func NewESClient(cfg Config) (*ESClient, error) {
	transport := &http.Transport{
		ResponseHeaderTimeout: 10 * time.Second,
	}

	esCfg := elastic.Config{
		Addresses: []string{cfg.URL},
		Transport: transport,
	}
	if cfg.APIKey != "" {
		esCfg.APIKey = cfg.APIKey
	}

	raw, err := elastic.NewClient(esCfg)
	if err != nil {
		return nil, &ConnectionError{Err: err}
	}
	return &ESClient{raw: raw, transport: transport}, nil
}

// Ping checks that the cluster is reachable and accepts our credentials.
func (c *ESClient) Ping(ctx context.Context) error {
	res, err := c.raw.Ping(c.raw.Ping.WithContext(ctx))
	if err != nil {
		return &ConnectionError{Err: err}
	}
	defer res.Body.Close()

	if res.IsError() {
		body := readBodyText(res.Body)
		if res.StatusCode == 401 || res.StatusCode == 403 {
			return &AuthenticationError{StatusCode: res.StatusCode, Message: body}
		}
		return &ConnectionError{Err: fmt.Errorf("ping returned HTTP %d: %s", res.StatusCode, body)}
	}
	return nil
}

// Execute runs an ES|QL query through the client library and unwraps the
// columns/values body. No retries: a failed attempt is reported immediately.
func (c *ESClient) Execute(ctx context.Context, query string) (*QueryResult, error) {
	payload, err := json.Marshal(map[string]string{"query": query})
	if err != nil {
		return nil, err
	}

	res, err := c.raw.EsqlQuery(
		strings.NewReader(string(payload)),
		c.raw.EsqlQuery.WithContext(ctx),
		c.raw.EsqlQuery.WithFormat("json"),
	)
	if err != nil {
		return nil, &ConnectionError{Err: err}
	}
	defer res.Body.Close()

	if res.IsError() {
		return nil, errorFromResponse(res)
	}

	var result QueryResult
	if err := json.NewDecoder(res.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("failed to parse query response: %v", err)
	}
	return &result, nil
}

// ListIndices returns the names of all indices visible to the user.
func (c *ESClient) ListIndices(ctx context.Context) ([]string, error) {
	res, err := c.raw.Cat.Indices(
		c.raw.Cat.Indices.WithContext(ctx),
		c.raw.Cat.Indices.WithFormat("json"),
		c.raw.Cat.Indices.WithH("index"),
	)
	if err != nil {
		return nil, &ConnectionError{Err: err}
	}
	defer res.Body.Close()

	if res.IsError() {
		return nil, errorFromResponse(res)
	}

	var payload []struct {
		Index string `json:"index"`
	}
	if err := json.NewDecoder(res.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("failed to parse indices response: %v", err)
	}

	names := make([]string, 0, len(payload))
	for _, item := range payload {
		names = append(names, item.Index)
	}
	return names, nil
}

// Close releases the connection pool. Safe to call on every exit path.
func (c *ESClient) Close() {
	c.transport.CloseIdleConnections()
}

func errorFromResponse(res *esapi.Response) error {
	body := readBodyText(res.Body)
	message := body

	var parsed esError
	if err := json.Unmarshal([]byte(body), &parsed); err == nil && parsed.Error.Reason != "" {
		message = parsed.Error.Reason
	}
	return classifyStatus(res.StatusCode, message)
}

func readBodyText(r io.Reader) string {
	data, err := io.ReadAll(r)
	if err != nil {
		return ""
	}
	return strings.TrimSpace(string(data))
}
