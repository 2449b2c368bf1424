// internal/app/system/apiclient/client.go
package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/oauth2"
)

// DefaultLoginPath is the credential exchange endpoint. A 401 from this
// path is a bad-credentials answer, not an expired session.
const DefaultLoginPath = "/auth/login"

// maxBody caps how much of a response body is read into memory.
const maxBody = 32 << 20

// Config configures a Client.
type Config struct {
	BaseURL   string        // e.g. http://localhost:8000/api
	Timeout   time.Duration // per-request ceiling on top of the caller's context
	LoginPath string
	Transport http.RoundTripper
}

// Client talks JSON to the recruitment backend. Safe for concurrent use.
type Client struct {
	baseURL   string
	origin    string
	loginPath string
	http      *http.Client
	log       *zap.Logger
}

// New validates cfg and returns a Client.
func New(cfg Config, logger *zap.Logger) (*Client, error) {
	u, err := url.Parse(strings.TrimSpace(cfg.BaseURL))
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return nil, fmt.Errorf("apiclient: invalid base URL %q", cfg.BaseURL)
	}
	loginPath := cfg.LoginPath
	if loginPath == "" {
		loginPath = DefaultLoginPath
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Client{
		baseURL:   strings.TrimRight(u.String(), "/"),
		origin:    u.Scheme + "://" + u.Host,
		loginPath: loginPath,
		http:      &http.Client{Timeout: cfg.Timeout, Transport: cfg.Transport},
		log:       logger,
	}, nil
}

// BaseURL returns the configured API prefix.
func (c *Client) BaseURL() string { return c.baseURL }

// Close releases idle backend connections.
func (c *Client) Close() { c.http.CloseIdleConnections() }

type callOptions struct {
	public bool
}

// Option adjusts a single call.
type Option func(*callOptions)

// Public marks a call that must not carry the bearer token.
func Public() Option {
	return func(o *callOptions) { o.public = true }
}

// WithQuery appends non-empty query values to path.
func WithQuery(path string, q url.Values) string {
	for k, vs := range q {
		kept := vs[:0]
		for _, v := range vs {
			if strings.TrimSpace(v) != "" {
				kept = append(kept, v)
			}
		}
		if len(kept) == 0 {
			q.Del(k)
		} else {
			q[k] = kept
		}
	}
	if len(q) == 0 {
		return path
	}
	return path + "?" + q.Encode()
}

// Do sends a JSON request and decodes a 2xx JSON body into out (if non-nil).
// Non-2xx answers are returned as *RequestError.
func (c *Client) Do(ctx context.Context, method, path string, body, out any, opts ...Option) error {
	resp, err := c.send(ctx, method, c.baseURL+path, path, body, opts)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxBody))
	if err != nil {
		return c.transportError(method, path, err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return c.failure(method, path, resp.StatusCode, data)
	}
	if out == nil || len(bytes.TrimSpace(data)) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("apiclient: decode %s %s: %w", method, path, err)
	}
	return nil
}

// Blob is a downloaded binary response.
type Blob struct {
	Data        []byte
	ContentType string
	Filename    string
}

// Blob fetches a binary resource such as a generated spreadsheet.
func (c *Client) Blob(ctx context.Context, method, path string, opts ...Option) (*Blob, error) {
	resp, err := c.send(ctx, method, c.baseURL+path, path, nil, opts)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxBody))
	if err != nil {
		return nil, c.transportError(method, path, err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, c.failure(method, path, resp.StatusCode, data)
	}

	b := &Blob{Data: data, ContentType: resp.Header.Get("Content-Type")}
	if cd := resp.Header.Get("Content-Disposition"); cd != "" {
		if _, params, err := mime.ParseMediaType(cd); err == nil {
			b.Filename = params["filename"]
		}
	}
	return b, nil
}

// Ping checks the backend's root /health endpoint.
func (c *Client) Ping(ctx context.Context) error {
	resp, err := c.send(ctx, http.MethodGet, c.origin+"/health", "/health", nil, []Option{Public()})
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 4096))
	if resp.StatusCode != http.StatusOK {
		return &RequestError{Status: resp.StatusCode, Message: genericMessage(resp.StatusCode), Method: http.MethodGet, Path: "/health"}
	}
	return nil
}

func (c *Client) send(ctx context.Context, method, target, path string, body any, opts []Option) (*http.Response, error) {
	var o callOptions
	for _, opt := range opts {
		opt(&o)
	}

	var rdr io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("apiclient: encode %s %s: %w", method, path, err)
		}
		rdr = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, target, rdr)
	if err != nil {
		return nil, fmt.Errorf("apiclient: build %s %s: %w", method, path, err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	reqID := uuid.NewString()
	req.Header.Set("X-Request-ID", reqID)
	if !o.public {
		if tok, ok := TokenFrom(ctx); ok {
			(&oauth2.Token{AccessToken: tok, TokenType: "Bearer"}).SetAuthHeader(req)
		}
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, c.transportError(method, path, err)
	}
	c.log.Debug("backend call",
		zap.String("method", method),
		zap.String("path", path),
		zap.Int("status", resp.StatusCode),
		zap.Duration("took", time.Since(start)),
		zap.String("request_id", reqID),
	)
	return resp, nil
}

func (c *Client) isLoginCall(path string) bool {
	if i := strings.IndexByte(path, '?'); i >= 0 {
		path = path[:i]
	}
	return path == c.loginPath
}

func (c *Client) failure(method, path string, status int, body []byte) error {
	msg := bodyMessage(body)
	re := &RequestError{Status: status, Method: method, Path: path}

	if status == http.StatusUnauthorized {
		if c.isLoginCall(path) {
			if msg == "" {
				msg = "Invalid email or password"
			}
		} else {
			re.sessionExpired = true
			c.log.Info("backend rejected token", zap.String("method", method), zap.String("path", path))
		}
	}
	if msg == "" {
		msg = genericMessage(status)
	}
	re.Message = msg

	if status >= 500 {
		c.log.Warn("backend error", zap.String("method", method), zap.String("path", path),
			zap.Int("status", status), zap.String("message", msg))
	}
	return re
}

func (c *Client) transportError(method, path string, err error) error {
	c.log.Warn("backend unreachable", zap.String("method", method), zap.String("path", path), zap.Error(err))
	return &RequestError{
		Message: "Unable to reach the recruitment service",
		Method:  method,
		Path:    path,
		err:     err,
	}
}
