package api

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

	"github.com/jasserabdou/Cloudilic-Dragify-AI-Agent-Automation-Platform/internal/client/credstore"
	"github.com/jasserabdou/Cloudilic-Dragify-AI-Agent-Automation-Platform/internal/logging"
)

// RESTClient is the Client implementation speaking to the Dragify backend
// over its JSON REST API. All requests flow through a middleware pipeline:
// request-id stamping, bearer-token attachment, 401 interception.
type RESTClient struct {
	baseURL    string
	httpClient *http.Client
	doer       Doer
	tokens     TokenSource
	logger     logging.Logger
}

// NewRESTClient builds a client for the API rooted at baseURL
// (e.g. "http://localhost:8000/api/v1"). The token source is bound later
// via SetTokenSource because the session that owns the token needs this
// client to exist first.
func NewRESTClient(baseURL string, timeout time.Duration, store credstore.Store, nav Navigator, logger logging.Logger) *RESTClient {
	c := &RESTClient{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
		logger:     logger,
	}
	c.doer = Chain(c.httpClient,
		RequestID(),
		BearerAuth(func() TokenSource { return c.tokens }),
		InterceptUnauthorized(store, nav, logger),
	)
	return c
}

// SetTokenSource binds the live session as the origin of bearer tokens.
func (c *RESTClient) SetTokenSource(ts TokenSource) {
	c.tokens = ts
}

func (c *RESTClient) Close() error {
	c.httpClient.CloseIdleConnections()
	return nil
}

// do runs one request through the pipeline and decodes a JSON response into
// out (when non-nil). A transport-level failure, where no response was
// received at all, is mapped to ErrUnavailable; any non-2xx status becomes
// an *APIError and is returned unmodified beyond that.
func (c *RESTClient) do(ctx context.Context, method, path string, contentType string, body io.Reader, out any) error {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return err
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}

	resp, err := c.doer.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		return decodeAPIError(resp)
	}

	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decoding %s %s response: %w", method, path, err)
	}
	return nil
}

func (c *RESTClient) getJSON(ctx context.Context, path string, out any) error {
	return c.do(ctx, http.MethodGet, path, "", nil, out)
}

func (c *RESTClient) postJSON(ctx context.Context, path string, in, out any) error {
	var body io.Reader
	if in != nil {
		raw, err := json.Marshal(in)
		if err != nil {
			return err
		}
		body = bytes.NewReader(raw)
	}
	return c.do(ctx, http.MethodPost, path, "application/json", body, out)
}

func (c *RESTClient) postForm(ctx context.Context, path string, form url.Values, out any) error {
	body := strings.NewReader(form.Encode())
	return c.do(ctx, http.MethodPost, path, "application/x-www-form-urlencoded", body, out)
}
