package main

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
)

// httpExecutor is the one-shot transport: it posts a single query to
// <base>/_query with an API key header, bypassing the client library.
type httpExecutor struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	debug      bool
}

func newHTTPExecutor(cfg Config, debug bool) *httpExecutor {
	return &httpExecutor{
		httpClient: &http.Client{},
		baseURL:    strings.TrimRight(cfg.URL, "/"),
		apiKey:     cfg.APIKey,
		debug:      debug,
	}
}

// Execute posts the query and unwraps the columns/values body. A non-2xx
// response surfaces as QueryError (or AuthenticationError for 401/403)
// carrying the response body text; any transport failure is a ConnectionError.
func (e *httpExecutor) Execute(ctx context.Context, query string) (*QueryResult, error) {
	payload, err := json.Marshal(map[string]string{"query": query})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal query payload: %v", err)
	}

	url := e.baseURL + "/_query"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "ApiKey "+e.apiKey)

	if e.debug {
		fmt.Printf("Request URL: %s\n", url)
		fmt.Printf("Request payload: %s\n", string(payload))
	}

	resp, err := e.httpClient.Do(req)
	if err != nil {
		return nil, &ConnectionError{Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &ConnectionError{Err: err}
	}

	if e.debug {
		fmt.Printf("Response status: %d\n", resp.StatusCode)
		fmt.Printf("Response body: %s\n", string(body))
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, classifyStatus(resp.StatusCode, strings.TrimSpace(string(body)))
	}

	var result QueryResult
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, fmt.Errorf("failed to parse query response: %v", err)
	}
	return &result, nil
}
