package clients

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"category_admin/internal/domain"

	"github.com/sirupsen/logrus"
)

// APIError is a non-2xx answer from the remote API.
type APIError struct {
	Method     string
	Path       string
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("%s %s: remote API returned status %d", e.Method, e.Path, e.StatusCode)
	}
	return fmt.Sprintf("%s %s: remote API returned status %d: %s", e.Method, e.Path, e.StatusCode, e.Body)
}

func (e *APIError) Unwrap() []error {
	switch e.StatusCode {
	case http.StatusNotFound:
		return []error{domain.ErrRemote, domain.ErrNotFound}
	case http.StatusUnauthorized, http.StatusForbidden:
		return []error{domain.ErrRemote, domain.ErrUnauthorized}
	default:
		return []error{domain.ErrRemote}
	}
}

const maxErrorBody = 512

// TokenSource supplies the bearer token for outgoing requests. An empty
// token sends no Authorization header.
type TokenSource interface {
	Token() string
}

// StaticToken is a TokenSource that never changes.
type StaticToken string

func (t StaticToken) Token() string { return string(t) }

// restClient holds what every remote client shares: base URL, bearer token
// and the underlying http.Client.
type restClient struct {
	baseURL string
	tokens  TokenSource
	client  *http.Client
	log     *logrus.Logger
}

func newRESTClient(baseURL string, tokens TokenSource, timeout time.Duration, logger *logrus.Logger) restClient {
	if tokens == nil {
		tokens = StaticToken("")
	}
	return restClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		tokens:  tokens,
		client: &http.Client{
			Timeout: timeout,
		},
		log: logger,
	}
}

func (c *restClient) newRequest(ctx context.Context, method, path string, body io.Reader, contentType string) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, fmt.Errorf("failed to create %s %s request: %w", method, path, err)
	}
	req.Header.Set("Accept", "application/json")
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	if token := c.tokens.Token(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	return req, nil
}

// doJSON sends payload (if non-nil) as JSON and decodes a 2xx body into out
// (if non-nil and the body is not empty). Transport failures are wrapped with domain.ErrRemote.
func (c *restClient) doJSON(ctx context.Context, method, path string, payload, out interface{}) error {
	var body io.Reader
	contentType := ""
	if payload != nil {
		jsonData, err := json.Marshal(payload)
		if err != nil {
			return fmt.Errorf("failed to encode request body for %s %s: %w", method, path, err)
		}
		body = bytes.NewReader(jsonData)
		contentType = "application/json"
	}

	req, err := c.newRequest(ctx, method, path, body, contentType)
	if err != nil {
		return err
	}
	return c.do(req, out)
}

func (c *restClient) do(req *http.Request, out interface{}) error {
	method, path := req.Method, req.URL.Path

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %s %s: %v", domain.ErrRemote, method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		bodyBytes, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return &APIError{
			Method:     method,
			Path:       path,
			StatusCode: resp.StatusCode,
			Body:       strings.TrimSpace(string(bodyBytes)),
		}
	}

	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	// An empty 2xx body leaves out at its zero value.
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("%w: failed to decode %s %s response: %v", domain.ErrRemote, method, path, err)
	}
	return nil
}
