package httpclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// TokenSource yields the current bearer token, empty when the session is
// anonymous. The session store satisfies this.
type TokenSource interface {
	Token(ctx context.Context) (string, error)
}

// APIError is the uniform failure value for every outbound call. Status 0
// means the request never produced a response (transport failure).
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	if e.Status == 0 {
		return e.Message
	}
	return fmt.Sprintf("%s (status %d)", e.Message, e.Status)
}

// Transient reports whether a retry by the user could plausibly succeed.
func (e *APIError) Transient() bool {
	return e.Status == 0 || e.Status >= 500
}

// Client wraps outbound requests to the booking backend. It attaches bearer
// authorization from the injected token source and converts every failure
// into *APIError. It performs zero automatic retries.
type Client struct {
	baseURL string
	http    *http.Client
	tokens  TokenSource
}

func New(baseURL string, timeout time.Duration, tokens TokenSource) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
		tokens:  tokens,
	}
}

// GetJSON performs a GET and decodes the response body as arbitrary JSON.
func (c *Client) GetJSON(ctx context.Context, path string, query url.Values) (interface{}, error) {
	return c.doJSON(ctx, http.MethodGet, path, query, nil)
}

func (c *Client) PostJSON(ctx context.Context, path string, body interface{}) (interface{}, error) {
	return c.doJSON(ctx, http.MethodPost, path, nil, body)
}

func (c *Client) PutJSON(ctx context.Context, path string, body interface{}) (interface{}, error) {
	return c.doJSON(ctx, http.MethodPut, path, nil, body)
}

func (c *Client) PatchJSON(ctx context.Context, path string, body interface{}) (interface{}, error) {
	return c.doJSON(ctx, http.MethodPatch, path, nil, body)
}

// GetBinary performs a content-negotiated GET and returns the raw body.
func (c *Client) GetBinary(ctx context.Context, path, accept string) ([]byte, error) {
	req, err := c.newRequest(ctx, http.MethodGet, path, nil, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", accept)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, transportError(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		return nil, httpError(resp)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, transportError(err)
	}
	return data, nil
}

func (c *Client) doJSON(ctx context.Context, method, path string, query url.Values, body interface{}) (interface{}, error) {
	req, err := c.newRequest(ctx, method, path, query, body)
	if err != nil {
		return nil, err
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, transportError(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		return nil, httpError(resp)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, transportError(err)
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, nil
	}

	var payload interface{}
	if err := json.Unmarshal(data, &payload); err != nil {
		// Shape problems are the normalizers' concern, not an error here;
		// a body that is not JSON at all degrades to nil payload.
		return nil, nil
	}
	return payload, nil
}

func (c *Client) newRequest(ctx context.Context, method, path string, query url.Values, body interface{}) (*http.Request, error) {
	target := c.baseURL + path
	if len(query) > 0 {
		target += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return nil, &APIError{Message: fmt.Sprintf("encode request body: %v", err)}
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, target, reader)
	if err != nil {
		return nil, &APIError{Message: fmt.Sprintf("build request: %v", err)}
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	if c.tokens != nil {
		token, err := c.tokens.Token(ctx)
		if err == nil && token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}
	return req, nil
}

func transportError(err error) *APIError {
	return &APIError{Message: fmt.Sprintf("network request failed: %v", err)}
}

// httpError extracts the backend's error message when the body carries one.
func httpError(resp *http.Response) *APIError {
	apiErr := &APIError{Status: resp.StatusCode, Message: "request failed"}

	data, err := io.ReadAll(resp.Body)
	if err != nil || len(data) == 0 {
		return apiErr
	}

	var body struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	if json.Unmarshal(data, &body) == nil {
		if body.Message != "" {
			apiErr.Message = body.Message
		} else if body.Error != "" {
			apiErr.Message = body.Error
		}
	}
	return apiErr
}
