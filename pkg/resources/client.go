// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package resources

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/gorilla/websocket"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	httptypes "github.com/canonical/business-access-service/internal/http/types"
	"github.com/canonical/business-access-service/internal/types"
)

var _ Source[Supplier] = (*HTTPSource[Supplier])(nil)

// RequestEditorFn decorates every request, used to authenticate the client.
type RequestEditorFn func(ctx context.Context, req *http.Request) error

type ClientOption func(*clientConfig)

type clientConfig struct {
	http    *http.Client
	dialer  *websocket.Dialer
	editors []RequestEditorFn
}

func WithHTTPClient(c *http.Client) ClientOption {
	return func(cfg *clientConfig) {
		cfg.http = c
	}
}

func WithDialer(d *websocket.Dialer) ClientOption {
	return func(cfg *clientConfig) {
		cfg.dialer = d
	}
}

func WithRequestEditorFn(fn RequestEditorFn) ClientOption {
	return func(cfg *clientConfig) {
		cfg.editors = append(cfg.editors, fn)
	}
}

// WithBearerToken authenticates with an access token.
func WithBearerToken(token string) ClientOption {
	return WithRequestEditorFn(func(_ context.Context, req *http.Request) error {
		req.Header.Set("Authorization", "Bearer "+token)
		return nil
	})
}

// WithIdentity authenticates through the header set by the identity proxy.
func WithIdentity(identityID string) ClientOption {
	return WithRequestEditorFn(func(_ context.Context, req *http.Request) error {
		req.Header.Set("X-Kratos-Authenticated-Identity-Id", identityID)
		return nil
	})
}

type envelope struct {
	Data json.RawMessage `json:"data"`
	httptypes.Response
}

// HTTPSource talks to the API of one entity, endpoint is the API root such
// as http://localhost:8000/api/v0.
type HTTPSource[E any] struct {
	entity   *Entity[E]
	endpoint string
	cfg      clientConfig
}

func (c *HTTPSource[E]) List(ctx context.Context) ([]*E, error) {
	items := make([]*E, 0)
	if err := c.do(ctx, http.MethodGet, "", nil, &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (c *HTTPSource[E]) Create(ctx context.Context, item *E) (*E, error) {
	created := new(E)
	if err := c.do(ctx, http.MethodPost, "", item, created); err != nil {
		return nil, err
	}
	return created, nil
}

func (c *HTTPSource[E]) Update(ctx context.Context, id string, patch Patch) (*E, error) {
	updated := new(E)
	if err := c.do(ctx, http.MethodPatch, "/"+url.PathEscape(id), patch, updated); err != nil {
		return nil, err
	}
	return updated, nil
}

func (c *HTTPSource[E]) Remove(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/"+url.PathEscape(id), nil, nil)
}

// Changes opens the change stream, the returned channel is closed when the
// socket drops or ctx is done.
func (c *HTTPSource[E]) Changes(ctx context.Context) (<-chan struct{}, error) {
	u, err := url.Parse(c.endpoint + "/" + c.entity.Name() + "/changes")
	if err != nil {
		return nil, fmt.Errorf("invalid endpoint: %w", err)
	}

	switch u.Scheme {
	case "https":
		u.Scheme = "wss"
	default:
		u.Scheme = "ws"
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, err
	}

	for _, edit := range c.cfg.editors {
		if err := edit(ctx, req); err != nil {
			return nil, err
		}
	}

	conn, resp, err := c.cfg.dialer.DialContext(ctx, u.String(), req.Header)
	if err != nil {
		if resp != nil && resp.Body != nil {
			defer resp.Body.Close()
			return nil, c.responseError(resp)
		}
		return nil, fmt.Errorf("%w: %v", types.ErrTransientStorage, err)
	}

	out := make(chan struct{}, 1)

	go func() {
		<-ctx.Done()
		conn.Close()
	}()

	go func() {
		defer close(out)

		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}

			select {
			case out <- struct{}{}:
			default:
			}
		}
	}()

	return out, nil
}

func (c *HTTPSource[E]) do(ctx context.Context, method, path string, in, out any) error {
	var body io.Reader
	if in != nil {
		raw, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("failed to marshal request: %w", err)
		}
		body = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.endpoint+"/"+c.entity.Name()+path, body)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}

	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	for _, edit := range c.cfg.editors {
		if err := edit(ctx, req); err != nil {
			return err
		}
	}

	resp, err := c.cfg.http.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", types.ErrTransientStorage, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return c.responseError(resp)
	}

	if out == nil {
		return nil
	}

	env := new(envelope)
	if err := json.NewDecoder(resp.Body).Decode(env); err != nil {
		return fmt.Errorf("%w: failed to decode response: %v", types.ErrTransientStorage, err)
	}

	if err := json.Unmarshal(env.Data, out); err != nil {
		return fmt.Errorf("%w: failed to decode %s: %v", types.ErrTransientStorage, c.entity.Name(), err)
	}

	return nil
}

func (c *HTTPSource[E]) responseError(resp *http.Response) error {
	env := new(envelope)
	if err := json.NewDecoder(resp.Body).Decode(env); err != nil || env.Class == types.ErrorClassNone {
		switch resp.StatusCode {
		case http.StatusUnauthorized:
			return types.ErrNotAuthenticated
		case http.StatusForbidden:
			return types.ErrForbidden
		default:
			return fmt.Errorf("%w: api error (status %d)", types.ErrTransientStorage, resp.StatusCode)
		}
	}

	return httptypes.ErrorFromResponse(&env.Response)
}

func NewHTTPSource[E any](entity *Entity[E], endpoint string, opts ...ClientOption) *HTTPSource[E] {
	if !strings.HasPrefix(endpoint, "http") {
		endpoint = "http://" + endpoint
	}

	c := new(HTTPSource[E])

	c.entity = entity
	c.endpoint = strings.TrimSuffix(endpoint, "/")
	c.cfg = clientConfig{
		http:   &http.Client{Transport: otelhttp.NewTransport(http.DefaultTransport)},
		dialer: websocket.DefaultDialer,
	}

	for _, opt := range opts {
		opt(&c.cfg)
	}

	return c
}
