package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"strings"
)

// Client talks to the marketplace REST API. It carries no retry or caching
// policy: every failure is terminal for that attempt and surfaced to the
// caller.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

func NewClient(baseURL string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: httpClient,
	}
}

// APIError is a non-2xx answer from the backend. Body is kept raw so the
// message extraction policy can inspect it.
type APIError struct {
	Status int
	Body   []byte
}

func (e *APIError) Error() string {
	return fmt.Sprintf("backend returned status %d", e.Status)
}

// ErrorMessage extracts a user-facing message from a request failure. The
// priority order is fixed: string body, then the body's "error" field, then
// its "message" field, then the transport error text, then the fallback.
func ErrorMessage(err error, fallback string) string {
	var apiErr *APIError
	if errors.As(err, &apiErr) && len(apiErr.Body) > 0 {
		var asString string
		if json.Unmarshal(apiErr.Body, &asString) == nil && asString != "" {
			return asString
		}

		var asObject map[string]any
		if json.Unmarshal(apiErr.Body, &asObject) == nil {
			if msg, ok := asObject["error"].(string); ok && msg != "" {
				return msg
			}
			if msg, ok := asObject["message"].(string); ok && msg != "" {
				return msg
			}
		}

		// Non-JSON bodies are treated as plain text.
		if trimmed := strings.TrimSpace(string(apiErr.Body)); trimmed != "" && !json.Valid(apiErr.Body) {
			return trimmed
		}
	}

	if err != nil && !errors.As(err, &apiErr) {
		if msg := err.Error(); msg != "" {
			return msg
		}
	}

	if fallback != "" {
		return fallback
	}
	return "Request failed"
}

func (c *Client) do(ctx context.Context, method, path, token string, query url.Values, body io.Reader, contentType string, out any) error {
	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, body)
	if err != nil {
		return fmt.Errorf("building %s %s: %w", method, path, err)
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("reading %s %s response: %w", method, path, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &APIError{Status: resp.StatusCode, Body: raw}
	}

	if out != nil && len(raw) > 0 {
		if err := json.Unmarshal(raw, out); err != nil {
			return fmt.Errorf("decoding %s %s response: %w", method, path, err)
		}
	}
	return nil
}

func (c *Client) jsonBody(payload any) (io.Reader, error) {
	if payload == nil {
		return nil, nil
	}
	raw, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("encoding request body: %w", err)
	}
	return bytes.NewReader(raw), nil
}

func (c *Client) GetJSON(ctx context.Context, path, token string, query url.Values, out any) error {
	return c.do(ctx, http.MethodGet, path, token, query, nil, "", out)
}

func (c *Client) PostJSON(ctx context.Context, path, token string, payload, out any) error {
	body, err := c.jsonBody(payload)
	if err != nil {
		return err
	}
	return c.do(ctx, http.MethodPost, path, token, nil, body, "application/json", out)
}

func (c *Client) PatchJSON(ctx context.Context, path, token string, payload, out any) error {
	body, err := c.jsonBody(payload)
	if err != nil {
		return err
	}
	return c.do(ctx, http.MethodPatch, path, token, nil, body, "application/json", out)
}

func (c *Client) PutJSON(ctx context.Context, path, token string, payload, out any) error {
	body, err := c.jsonBody(payload)
	if err != nil {
		return err
	}
	return c.do(ctx, http.MethodPut, path, token, nil, body, "application/json", out)
}

func (c *Client) Delete(ctx context.Context, path, token string) error {
	return c.do(ctx, http.MethodDelete, path, token, nil, nil, "", nil)
}

// FilePart is one file destined for a multipart request.
type FilePart struct {
	Field    string
	Filename string
	Content  []byte
}

// PostMultipart submits files plus plain fields as multipart/form-data.
// Fields are written in slice order since the backend pairs indexed metadata
// fields with their image parts.
func (c *Client) PostMultipart(ctx context.Context, path, token string, files []FilePart, fields [][2]string, out any) error {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	for _, file := range files {
		part, err := writer.CreateFormFile(file.Field, file.Filename)
		if err != nil {
			return fmt.Errorf("creating multipart file %q: %w", file.Field, err)
		}
		if _, err := part.Write(file.Content); err != nil {
			return fmt.Errorf("writing multipart file %q: %w", file.Field, err)
		}
	}
	for _, field := range fields {
		if err := writer.WriteField(field[0], field[1]); err != nil {
			return fmt.Errorf("writing multipart field %q: %w", field[0], err)
		}
	}
	if err := writer.Close(); err != nil {
		return fmt.Errorf("finalizing multipart body: %w", err)
	}

	return c.do(ctx, http.MethodPost, path, token, nil, &buf, writer.FormDataContentType(), out)
}
