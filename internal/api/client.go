// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package api implements the Context7 HTTP client: library search and
// documentation fetch. It maps transport and HTTP outcomes to a typed
// error and performs no I/O beyond the network calls themselves.
package api

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/meshdocs/c7/internal/httputil"
	"github.com/meshdocs/c7/pkg/types"
)

const (
	searchPath = "/v2/libs/search"
	docsPath   = "/v2/context"

	defaultTimeout = 30 * time.Second

	// maxErrorBody bounds how much of an error response is read while
	// looking for a message.
	maxErrorBody = 64 << 10
)

// Client talks to the Context7 API. Construct with NewClient; the
// configuration is read once and never mutated afterwards.
type Client struct {
	client    *http.Client
	baseURL   string
	apiKey    string
	userAgent string
}

// NewClient builds a Client from cfg. The config package resolves
// defaults before construction; the timeout guard only protects
// directly built test configs.
func NewClient(cfg types.ClientConfig) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Client{
		client:    &http.Client{Timeout: timeout},
		baseURL:   strings.TrimSuffix(cfg.BaseURL, "/"),
		apiKey:    cfg.APIKey,
		userAgent: cfg.UserAgent,
	}
}

type searchResponse struct {
	Results []types.LibraryRecord `json:"results"`
}

// Search queries the search endpoint for libraries matching name,
// ranked by the remote against the context query. An empty result
// slice is a valid outcome, not an error. Callers guarantee both
// arguments are non-empty.
func (c *Client) Search(ctx context.Context, libraryName, query string) ([]types.LibraryRecord, error) {
	params := url.Values{
		"libraryName": {libraryName},
		"query":       {query},
	}
	resp, err := c.get(ctx, searchPath, params)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if apiErr := checkStatus(resp); apiErr != nil {
		return nil, apiErr
	}

	var sr searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&sr); err != nil {
		return nil, &Error{
			Kind:    KindRemote,
			Status:  resp.StatusCode,
			Message: fmt.Sprintf("parsing search response: %v", err),
		}
	}
	return sr.Results, nil
}

// FetchDocs retrieves documentation snippets for a library identifier.
// With FormatJSON the body is decoded and re-encoded with indentation,
// so the returned string is always syntactically valid JSON; with
// FormatText the body is returned verbatim. Identifier validity is the
// remote's concern.
func (c *Client) FetchDocs(ctx context.Context, id, query string, format types.OutputFormat) (string, error) {
	if !format.Valid() {
		format = types.FormatText
	}
	params := url.Values{
		"libraryId": {id},
		"query":     {query},
		"type":      {string(format)},
	}
	resp, err := c.get(ctx, docsPath, params)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if apiErr := checkStatus(resp); apiErr != nil {
		return "", apiErr
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", &Error{Kind: KindTransport, Message: fmt.Sprintf("reading docs response: %v", err)}
	}
	if format == types.FormatJSON {
		return prettyJSON(body, resp.StatusCode)
	}
	return string(body), nil
}

// get issues a single GET to path with params. No retries: every
// failure is reported to the caller exactly once.
func (c *Client) get(ctx context.Context, path string, params url.Values) (*http.Response, error) {
	reqURL := c.baseURL + path + "?" + params.Encode()
	req, err := httputil.NewGet(ctx, reqURL, c.userAgent, c.apiKey)
	if err != nil {
		return nil, &Error{Kind: KindTransport, Message: err.Error()}
	}
	resp, err := c.client.Do(req)
	if err != nil {
		return nil, &Error{Kind: KindTransport, Message: fmt.Sprintf("request failed: %v", err)}
	}
	return resp, nil
}

// checkStatus converts a non-success response into a typed error,
// consuming the body in search of a message. A nil return means the
// response is a success and its body is untouched.
func checkStatus(resp *http.Response) *Error {
	if resp.StatusCode == http.StatusAccepted {
		return &Error{
			Kind:    KindProcessing,
			Status:  resp.StatusCode,
			Message: remoteMessage(resp, "library is still being processed, try again shortly"),
		}
	}
	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return nil
	}
	return &Error{
		Kind:    kindForStatus(resp.StatusCode),
		Status:  resp.StatusCode,
		Message: remoteMessage(resp, fmt.Sprintf("HTTP %d", resp.StatusCode)),
	}
}

// remoteMessage extracts the message or error field from a JSON error
// body, falling back when the body is absent or unparseable.
func remoteMessage(resp *http.Response, fallback string) string {
	body, err := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
	if err != nil || len(body) == 0 {
		return fallback
	}
	var eb struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	if json.Unmarshal(body, &eb) != nil {
		return fallback
	}
	if eb.Message != "" {
		return eb.Message
	}
	if eb.Error != "" {
		return eb.Error
	}
	return fallback
}

// prettyJSON re-encodes body with indentation. The decode/encode round
// trip preserves structure and values while guaranteeing the output is
// valid JSON.
func prettyJSON(body []byte, status int) (string, error) {
	var v any
	if err := json.Unmarshal(body, &v); err != nil {
		return "", &Error{
			Kind:    KindRemote,
			Status:  status,
			Message: fmt.Sprintf("parsing docs response: %v", err),
		}
	}
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return "", &Error{Kind: KindRemote, Status: status, Message: fmt.Sprintf("encoding docs response: %v", err)}
	}
	return string(out), nil
}
