// Package api is the wire client for the Hypechats service. It owns the
// request envelope, the outbound header/credential injection, and the
// login-family endpoints the auth pipeline consumes.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/nexuzy/hypechats-go/internal/config"
	"github.com/pkg/errors"
)

// Client issues calls against the remote service. All endpoints are POST and
// answer with the shared response envelope.
type Client struct {
	baseURL string
	http    *http.Client
}

// NewClient builds a client from the configuration. tokens supplies the
// current bearer credential per request and may be nil for an anonymous
// client.
func NewClient(cfg config.Config, tokens TokenReader) (*Client, error) {
	if cfg == nil {
		return nil, errors.New("[api.NewClient] config is required")
	}

	timeout := time.Duration(cfg.GetConnectTimeout()) * time.Second
	base, err := newBaseTransport(timeout, cfg.GetCertificatePin())
	if err != nil {
		return nil, errors.Wrap(err, "[api.NewClient] transport")
	}

	return &Client{
		baseURL: strings.TrimSuffix(cfg.GetBaseURL(), "/") + "/",
		http: &http.Client{
			Timeout:   timeout,
			Transport: NewAuthTransport(base, tokens, cfg.GetUserAgent()),
		},
	}, nil
}

func (c *Client) Login(ctx context.Context, req LoginRequest) (*Envelope[LoginResponse], error) {
	return call[LoginResponse](ctx, c, config.EndpointLogin, req)
}

func (c *Client) Signup(ctx context.Context, req SignupRequest) (*Envelope[LoginResponse], error) {
	return call[LoginResponse](ctx, c, config.EndpointSignup, req)
}

func (c *Client) SocialLogin(ctx context.Context, req SocialLoginRequest) (*Envelope[LoginResponse], error) {
	return call[LoginResponse](ctx, c, config.EndpointSocialLogin, req)
}

// Logout invalidates the session server-side. The bearer credential travels
// via the transport like any other authenticated call.
func (c *Client) Logout(ctx context.Context) (*Envelope[struct{}], error) {
	return call[struct{}](ctx, c, config.EndpointLogout, nil)
}

// call posts body to path and decodes the envelope. A reachable service that
// answers with a non-2xx status still yields an envelope (carrying the server
// error text); only an unreachable service or an undecodable body returns an
// error.
func call[T any](ctx context.Context, c *Client, path string, body any) (*Envelope[T], error) {
	var payload io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return nil, errors.Wrapf(err, "[api.call] encode %s", path)
		}
		payload = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, payload)
	if err != nil {
		return nil, errors.Wrapf(err, "[api.call] new request %s", path)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, errors.Wrapf(err, "[api.call] %s", path)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Wrapf(err, "[api.call] read %s", path)
	}

	var env Envelope[T]
	if err := json.Unmarshal(raw, &env); err != nil {
		return nil, errors.Wrapf(err, "[api.call] decode %s", path)
	}
	if env.StatusCode == 0 {
		env.StatusCode = resp.StatusCode
	}
	return &env, nil
}
