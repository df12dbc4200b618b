// Package powerstore is a minimal client for the PowerStore REST API,
// covering exactly the resources the sensor needs.
package powerstore

import (
	"bytes"
	"context"
	"crypto/tls"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"
)

const (
	defaultTimeout = 30 * time.Second

	// tokenHeader carries the session token on the login response and must
	// be echoed on every write-style request.
	tokenHeader = "DELL-EMC-TOKEN"
)

// Config holds the connection settings for one probe run.
type Config struct {
	Host     string
	Username string
	Password string
	// Insecure accepts self-signed or otherwise invalid TLS certificates.
	// It only affects this client's transport, never the process default.
	Insecure bool
	Timeout  time.Duration
}

// Session is the immutable outcome of a successful login: the token and
// cookie required for write-style calls. Read-style calls use basic auth.
type Session struct {
	Token   string
	Cookies []*http.Cookie
}

// Client talks to a single appliance. Login must be called before any
// fetch; the client is not safe for concurrent use.
type Client struct {
	baseURL    string
	username   string
	password   string
	httpClient *http.Client
	session    *Session
}

// NewClient creates a client for the appliance at cfg.Host.
func NewClient(cfg Config) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	var transport http.RoundTripper
	if cfg.Insecure {
		transport = &http.Transport{
			TLSClientConfig: &tls.Config{InsecureSkipVerify: true},
		}
	}

	return &Client{
		baseURL:  fmt.Sprintf("https://%s/api/rest/", cfg.Host),
		username: cfg.Username,
		password: cfg.Password,
		httpClient: &http.Client{
			Timeout:   timeout,
			Transport: transport,
		},
	}
}

// Login performs POST login_session with basic auth and captures the
// session token and cookie from the response headers.
func (c *Client) Login(ctx context.Context) error {
	url := c.baseURL + "login_session"

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, nil)
	if err != nil {
		return &AuthError{Err: err}
	}
	req.SetBasicAuth(c.username, c.password)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &AuthError{Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return &AuthError{Err: fmt.Errorf("login returned %s: %s", resp.Status, errorDetail(resp.Body))}
	}

	token := resp.Header.Get(tokenHeader)
	if token == "" {
		return &AuthError{Err: errors.New("login response carries no session token")}
	}

	c.session = &Session{
		Token:   token,
		Cookies: resp.Cookies(),
	}
	return nil
}

// Session returns the session established by Login, or nil.
func (c *Client) Session() *Session {
	return c.session
}

// fetchRead issues a GET against a resource path using basic auth and
// decodes the JSON response into v.
func (c *Client) fetchRead(ctx context.Context, resource string, v any) error {
	url := c.baseURL + resource

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return &RequestError{URL: url, Message: err.Error()}
	}
	req.SetBasicAuth(c.username, c.password)

	return c.do(req, v)
}

// fetchGenerate issues a POST metrics/generate for the given entity and
// appliance, authenticated with the session token and cookie, and decodes
// the sample list into v.
func (c *Client) fetchGenerate(ctx context.Context, entity, applianceID string, v any) error {
	url := c.baseURL + "metrics/generate"

	if c.session == nil {
		return &RequestError{URL: url, Message: "no session established"}
	}

	body, err := json.Marshal(generateRequest{
		Entity:   entity,
		EntityID: applianceID,
		Interval: "One_Hour",
	})
	if err != nil {
		return &RequestError{URL: url, Message: err.Error()}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return &RequestError{URL: url, Message: err.Error()}
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(tokenHeader, c.session.Token)
	for _, cookie := range c.session.Cookies {
		req.AddCookie(cookie)
	}

	return c.do(req, v)
}

func (c *Client) do(req *http.Request, v any) error {
	url := req.URL.String()

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &RequestError{URL: url, Message: err.Error()}
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return &RequestError{URL: url, Message: fmt.Sprintf("%s: %s", resp.Status, errorDetail(resp.Body))}
	}

	if v != nil {
		if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
			return &RequestError{URL: url, Message: fmt.Sprintf("decode response: %v", err)}
		}
	}

	return nil
}

// errorDetail extracts the appliance's localized error messages from a
// failed response body, falling back to the raw body text.
func errorDetail(r io.Reader) string {
	data, err := io.ReadAll(io.LimitReader(r, 4096))
	if err != nil || len(data) == 0 {
		return "no response body"
	}

	var detail apiError
	if err := json.Unmarshal(data, &detail); err == nil && len(detail.Messages) > 0 {
		msg := detail.Messages[0].Message
		for _, m := range detail.Messages[1:] {
			msg += "; " + m.Message
		}
		if msg != "" {
			return msg
		}
	}

	return string(data)
}
