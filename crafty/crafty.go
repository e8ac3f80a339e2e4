package crafty

import (
	"bytes"
	"context"
	"crypto/tls"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/google/go-querystring/query"
	"go.uber.org/zap"
)

const (
	userAgent     = "go-crafty/" + Version
	mediaTypeJSON = "application/json"
)

// API routes, relative to the client's BaseURL.
const (
	apiRootPath = "api/v2/"
	authPath    = "api/v2/auth"
	serversPath = "api/v2/servers"
	rolesPath   = "api/v2/roles"
	usersPath   = "api/v2/users"
	schemaPath  = "api/v2/jsonschema"
)

// Option represents a function that can configure a Client.
type Option func(*Client) error

// WithUserAgent returns an Option that sets the User-Agent header sent
// with every request.
func WithUserAgent(ua string) Option {
	return func(c *Client) error {
		if ua == "" {
			return fmt.Errorf("user agent cannot be empty")
		}
		c.UserAgent = ua
		return nil
	}
}

// WithLogger returns an Option that sets the logger used for request
// debug logging. The default is a nop logger.
func WithLogger(log *zap.SugaredLogger) Option {
	return func(c *Client) error {
		if log == nil {
			return fmt.Errorf("logger cannot be nil")
		}
		c.log = log
		return nil
	}
}

// WithInsecureSkipVerify returns an Option that disables TLS certificate
// verification. Many self-hosted panels run with self-signed certificates;
// verification stays on unless this option is given. The http.Client
// passed to NewClient is not modified; the Client uses a copy with a
// cloned transport.
func WithInsecureSkipVerify() Option {
	return func(c *Client) error {
		var transport *http.Transport
		switch t := c.client.Transport.(type) {
		case nil:
			transport = http.DefaultTransport.(*http.Transport).Clone()
		case *http.Transport:
			transport = t.Clone()
		default:
			return fmt.Errorf("cannot disable TLS verification on transport of type %T", c.client.Transport)
		}
		if transport.TLSClientConfig == nil {
			transport.TLSClientConfig = &tls.Config{}
		}
		transport.TLSClientConfig.InsecureSkipVerify = true

		clientCopy := *c.client
		clientCopy.Transport = transport
		c.client = &clientCopy
		return nil
	}
}

// A Client manages communication with a Crafty Controller panel.
type Client struct {
	clientMu sync.Mutex
	client   *http.Client

	// Base URL of the panel, e.g. "https://crafty.example.com:8443/".
	// Must have a trailing slash.
	BaseURL *url.URL

	// User agent used when communicating with the panel.
	UserAgent string

	token string
	log   *zap.SugaredLogger

	common service

	// Services used for talking to different parts of the panel API.
	Auth    *AuthService
	Servers *ServersService
	Roles   *RolesService
	Users   *UsersService
	Schemas *SchemasService
}

type service struct {
	client *Client
}

// NewClient returns a new Crafty panel API client talking to the panel at
// baseURL, authenticating with the given API token. The token may be empty
// for a client that is only used to obtain one via Auth.Login. If a nil
// httpClient is provided, a new http.Client with a 30 second timeout will
// be used. The client performs no network I/O at construction time.
func NewClient(baseURL, token string, httpClient *http.Client, opts ...Option) (*Client, error) {
	if httpClient == nil {
		httpClient = &http.Client{
			Timeout: 30 * time.Second,
		}
	}

	if baseURL == "" {
		return nil, fmt.Errorf("base URL cannot be empty")
	}
	parsedURL, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid base URL: %w", err)
	}
	if parsedURL.Scheme != "http" && parsedURL.Scheme != "https" {
		return nil, fmt.Errorf("base URL must use HTTP or HTTPS scheme, got: %s", parsedURL.Scheme)
	}
	// Ensure trailing slash for consistent URL joining
	if !strings.HasSuffix(parsedURL.Path, "/") {
		parsedURL.Path += "/"
	}

	c := &Client{
		client:    httpClient,
		BaseURL:   parsedURL,
		UserAgent: userAgent,
		token:     token,
		log:       zap.NewNop().Sugar(),
	}

	c.common.client = c
	c.Auth = (*AuthService)(&c.common)
	c.Servers = (*ServersService)(&c.common)
	c.Roles = (*RolesService)(&c.common)
	c.Users = (*UsersService)(&c.common)
	c.Schemas = (*SchemasService)(&c.common)

	// Apply provided options
	for _, opt := range opts {
		if err := opt(c); err != nil {
			return nil, err
		}
	}

	return c, nil
}

// NewRequest creates an API request. A relative URL can be provided in urlStr,
// in which case it is resolved relative to the BaseURL of the Client.
// Relative URLs should always be specified without a preceding slash. If
// specified, the value pointed to by body is JSON encoded and included as the
// request body. The client's API token is attached as a bearer credential
// when one is configured.
func (c *Client) NewRequest(method, urlStr string, body any) (*http.Request, error) {
	if !strings.HasSuffix(c.BaseURL.Path, "/") {
		return nil, fmt.Errorf("BaseURL must have a trailing slash, but %q does not", c.BaseURL)
	}

	u, err := c.BaseURL.Parse(urlStr)
	if err != nil {
		return nil, err
	}

	var buf io.ReadWriter
	if body != nil {
		buf = &bytes.Buffer{}
		enc := json.NewEncoder(buf)
		enc.SetEscapeHTML(false)
		if err := enc.Encode(body); err != nil {
			return nil, err
		}
	}

	req, err := http.NewRequest(method, u.String(), buf)
	if err != nil {
		return nil, err
	}

	if body != nil {
		req.Header.Set("Content-Type", mediaTypeJSON)
	}
	req.Header.Set("Accept", mediaTypeJSON)
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}
	if c.UserAgent != "" {
		req.Header.Set("User-Agent", c.UserAgent)
	}

	return req, nil
}

// Response is a panel API response. This wraps the standard http.Response
// so callers can inspect status codes and headers.
type Response struct {
	*http.Response
}

// newResponse creates a new Response for the provided http.Response.
func newResponse(r *http.Response) *Response {
	return &Response{Response: r}
}

// Do sends an API request and returns the API response. The API response is
// JSON decoded and stored in the value pointed to by v, or returned as an
// error if an API error has occurred. If v implements the io.Writer interface,
// the raw response body will be written to v, without attempting to first
// decode it.
//
// The provided ctx must be non-nil. If it is canceled or times out,
// ctx.Err() will be returned.
func (c *Client) Do(ctx context.Context, req *http.Request, v any) (*Response, error) {
	if ctx == nil {
		return nil, fmt.Errorf("context must be non-nil")
	}

	req = req.WithContext(ctx)

	start := time.Now()
	c.clientMu.Lock()
	resp, err := c.client.Do(req)
	c.clientMu.Unlock()
	if err != nil {
		// If we got an error, and the context has been canceled,
		// the context's error is probably more useful.
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}
		return nil, err
	}
	defer resp.Body.Close()

	c.log.Debugw("panel request",
		"method", req.Method,
		"url", req.URL.String(),
		"status", resp.StatusCode,
		"duration", time.Since(start),
	)

	response := newResponse(resp)

	err = CheckResponse(resp)
	if err != nil {
		return response, err
	}

	if v != nil {
		if w, ok := v.(io.Writer); ok {
			io.Copy(w, resp.Body)
		} else {
			decErr := json.NewDecoder(resp.Body).Decode(v)
			if decErr == io.EOF {
				decErr = nil // ignore EOF errors caused by empty response body
			}
			if decErr != nil {
				err = decErr
			}
		}
	}

	return response, err
}

// do sends an API request and unwraps the panel's response envelope.
// The envelope's data field, if present, is decoded into the value pointed
// to by v. A response whose envelope carries status "error" or an error
// code is returned as an *ErrorResponse even when the HTTP status is a
// success, matching the panel's API v2 behavior.
func (c *Client) do(ctx context.Context, req *http.Request, v any) (*Response, error) {
	var env apiEnvelope
	resp, err := c.Do(ctx, req, &env)
	if err != nil {
		return resp, err
	}

	if env.Status == statusError || env.Error != "" {
		return resp, &ErrorResponse{
			Response: resp.Response,
			Code:     env.Error,
			Info:     env.info(),
		}
	}

	if v != nil && len(env.Data) > 0 && !bytes.Equal(env.Data, []byte("null")) {
		if err := json.Unmarshal(env.Data, v); err != nil {
			return resp, err
		}
	}

	return resp, nil
}

// addOptions adds the parameters in opts as URL query parameters to s.
// opts must be a struct whose fields may contain "url" tags.
func addOptions(s string, opts any) (string, error) {
	v, err := query.Values(opts)
	if err != nil {
		return s, err
	}

	u, err := url.Parse(s)
	if err != nil {
		return s, err
	}

	if q := v.Encode(); q != "" {
		if u.RawQuery != "" {
			u.RawQuery = u.RawQuery + "&" + q
		} else {
			u.RawQuery = q
		}
	}

	return u.String(), nil
}

// String returns a pointer to the given string value.
func String(v string) *string { return &v }

// Int returns a pointer to the given int value.
func Int(v int) *int { return &v }

// Bool returns a pointer to the given bool value.
func Bool(v bool) *bool { return &v }

// StringValue returns the value of the string pointer, or "" if nil.
func StringValue(v *string) string {
	if v == nil {
		return ""
	}
	return *v
}

// IntValue returns the value of the int pointer, or 0 if nil.
func IntValue(v *int) int {
	if v == nil {
		return 0
	}
	return *v
}

// BoolValue returns the value of the bool pointer, or false if nil.
func BoolValue(v *bool) bool {
	if v == nil {
		return false
	}
	return *v
}
