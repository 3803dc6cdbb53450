// Package client is a typed HTTP client for the HotelSoft REST backend.
// The backend is the authority on authentication and data; this package
// only shapes requests, injects the bearer token, and maps errors.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
)

const defaultTimeout = 30 * time.Second

// TokenSource supplies the current bearer token, if any. Implemented by
// the session credential store.
type TokenSource interface {
	Token() (string, bool)
}

// Client calls the HotelSoft backend.
type Client struct {
	baseURL string
	http    *http.Client
	log     *slog.Logger
}

// Option configures the Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client. The authorization
// transport is layered on top of its transport.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.http = hc }
}

// WithLogger sets the structured logger. If not set, a JSON logger
// writing to stderr is used.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Client) { c.log = logger }
}

// New creates a client for the backend at baseURL. Every request except
// those targeting login/register paths carries an Authorization bearer
// header when tokens yields one.
func New(baseURL string, tokens TokenSource, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: defaultTimeout},
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.log == nil {
		c.log = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}
	base := c.http.Transport
	if base == nil {
		base = http.DefaultTransport
	}
	// Shallow copy so the caller's client is not mutated.
	hc := *c.http
	hc.Transport = &authTransport{base: base, tokens: tokens}
	c.http = &hc
	return c
}

// authTransport injects the Authorization header and a request ID into
// outgoing requests. Login and register endpoints are exempt: they must
// work without (and never leak) a stale token.
type authTransport struct {
	base   http.RoundTripper
	tokens TokenSource
}

func isPublicPath(u *url.URL) bool {
	return strings.Contains(u.Path, "/login") || strings.Contains(u.Path, "/register")
}

func (t *authTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	req = req.Clone(req.Context())
	req.Header.Set("X-Request-ID", uuid.NewString())
	if t.tokens != nil && !isPublicPath(req.URL) {
		if token, ok := t.tokens.Token(); ok {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}
	return t.base.RoundTrip(req)
}

// do performs a JSON request. A nil out discards the response body.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	var reqBody io.Reader
	if body != nil {
		buf := &bytes.Buffer{}
		if err := json.NewEncoder(buf).Encode(body); err != nil {
			return fmt.Errorf("encoding request body: %w", err)
		}
		reqBody = buf
	}
	req, err := c.newRequest(ctx, method, path, query, reqBody)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	return c.roundTrip(req, out)
}

// doMultipart performs a multipart/form-data request with a JSON part and
// optional file parts.
func (c *Client) doMultipart(ctx context.Context, method, path, jsonPart string, jsonBody any, filePart string, files []RoomImage, out any) error {
	buf := &bytes.Buffer{}
	mw := multipart.NewWriter(buf)

	part, err := mw.CreateFormField(jsonPart)
	if err != nil {
		return fmt.Errorf("creating %s part: %w", jsonPart, err)
	}
	if err := json.NewEncoder(part).Encode(jsonBody); err != nil {
		return fmt.Errorf("encoding %s part: %w", jsonPart, err)
	}
	for _, f := range files {
		fw, err := mw.CreateFormFile(filePart, f.Filename)
		if err != nil {
			return fmt.Errorf("creating %s part: %w", filePart, err)
		}
		if _, err := fw.Write(f.Content); err != nil {
			return fmt.Errorf("writing %s part: %w", filePart, err)
		}
	}
	if err := mw.Close(); err != nil {
		return fmt.Errorf("finalizing multipart body: %w", err)
	}

	req, err := c.newRequest(ctx, method, path, nil, buf)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())
	return c.roundTrip(req, out)
}

func (c *Client) newRequest(ctx context.Context, method, path string, query url.Values, body io.Reader) (*http.Request, error) {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}
	req, err := http.NewRequestWithContext(ctx, method, u, body)
	if err != nil {
		return nil, fmt.Errorf("building request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	return req, nil
}

func (c *Client) roundTrip(req *http.Request, out any) error {
	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		c.log.Warn("request failed",
			slog.String("method", req.Method),
			slog.String("path", req.URL.Path),
			slog.String("error", err.Error()))
		return fmt.Errorf("%w: %v", ErrUnreachable, err)
	}
	defer resp.Body.Close()

	c.log.Debug("request completed",
		slog.String("method", req.Method),
		slog.String("path", req.URL.Path),
		slog.Int("status", resp.StatusCode),
		slog.Duration("elapsed", time.Since(start)))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return errorFromResponse(resp)
	}
	if out == nil {
		io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decoding response: %w", err)
	}
	return nil
}
