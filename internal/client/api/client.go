package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/dmitrijs2005/harifurniture/internal/common"
)

// HTTPClient matches the subset of http.Client used by Client.
type HTTPClient interface {
	Do(*http.Request) (*http.Response, error)
}

// TokenSource yields the persisted bearer credential, or "" when there is none.
type TokenSource interface {
	Token(ctx context.Context) (string, error)
}

type Client struct {
	base   *url.URL
	http   HTTPClient
	tokens TokenSource

	onUnauthorized func(ctx context.Context)
}

// NewClient builds a Client for baseURL. A nil httpClient means
// http.DefaultClient; a nil tokens source sends every request anonymously.
func NewClient(baseURL string, httpClient HTTPClient, tokens TokenSource) (*Client, error) {
	if strings.TrimSpace(baseURL) == "" {
		return nil, errors.New("api: base URL is required")
	}
	parsed, err := url.Parse(strings.TrimRight(strings.TrimSpace(baseURL), "/"))
	if err != nil {
		return nil, fmt.Errorf("api: parse base URL: %w", err)
	}
	if parsed.Scheme == "" || parsed.Host == "" {
		return nil, fmt.Errorf("api: base URL %q must be absolute", baseURL)
	}
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{base: parsed, http: httpClient, tokens: tokens}, nil
}

// OnUnauthorized registers fn to run whenever a request that carried a
// bearer credential is rejected with ErrAuth. It must be set before the
// client is shared between goroutines.
func (c *Client) OnUnauthorized(fn func(ctx context.Context)) {
	c.onUnauthorized = fn
}

// BaseURL returns the resolved API root.
func (c *Client) BaseURL() string { return c.base.String() }

func (c *Client) get(ctx context.Context, out any, query url.Values, segments ...string) error {
	req, err := c.newRequest(ctx, http.MethodGet, nil, query, segments...)
	if err != nil {
		return err
	}
	return c.do(req, out)
}

func (c *Client) send(ctx context.Context, method string, payload, out any, segments ...string) error {
	req, err := c.newRequest(ctx, method, payload, nil, segments...)
	if err != nil {
		return err
	}
	return c.do(req, out)
}

func (c *Client) newRequest(ctx context.Context, method string, payload any, query url.Values, segments ...string) (*http.Request, error) {
	escaped := make([]string, len(segments))
	for i, s := range segments {
		escaped[i] = url.PathEscape(s)
	}
	endpoint := c.base.JoinPath(escaped...)
	if len(query) > 0 {
		endpoint.RawQuery = query.Encode()
	}

	var body io.Reader
	if payload != nil {
		var buf bytes.Buffer
		enc := json.NewEncoder(&buf)
		enc.SetEscapeHTML(false)
		if err := enc.Encode(payload); err != nil {
			return nil, fmt.Errorf("api: encode payload: %w", err)
		}
		body = &buf
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint.String(), body)
	if err != nil {
		return nil, fmt.Errorf("api: build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	if c.tokens != nil {
		token, err := c.tokens.Token(ctx)
		if err != nil {
			return nil, fmt.Errorf("api: read credential: %w", err)
		}
		if token != "" {
			req.Header.Set(common.AuthorizationHeader, common.BearerPrefix+token)
		}
	}
	return req, nil
}

func (c *Client) do(req *http.Request, out any) error {
	resp, err := c.http.Do(req)
	if err != nil {
		return &Error{Kind: ErrNetwork, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		apiErr := errorFromResponse(resp)
		if c.onUnauthorized != nil && errors.Is(apiErr, ErrAuth) && req.Header.Get(common.AuthorizationHeader) != "" {
			c.onUnauthorized(context.WithoutCancel(req.Context()))
		}
		return apiErr
	}
	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return &Error{Kind: ErrServer, Status: resp.StatusCode, Message: "malformed response", Err: err}
	}
	return nil
}

func errorFromResponse(resp *http.Response) error {
	body, _ := io.ReadAll(io.LimitReader(resp.Body, 1<<16))

	var payload struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	msg := ""
	if len(body) > 0 {
		if err := json.Unmarshal(body, &payload); err == nil {
			msg = strings.TrimSpace(payload.Message)
			if msg == "" {
				msg = strings.TrimSpace(payload.Error)
			}
		}
	}
	return &Error{Kind: kindForStatus(resp.StatusCode), Status: resp.StatusCode, Message: msg}
}
