package api

import (
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// TokenReader is the read-only view of the credential store the transport
// depends on.
type TokenReader interface {
	Token() string
}

var _ http.RoundTripper = (*AuthTransport)(nil)

// AuthTransport stamps the fixed headers and the current bearer credential
// onto every outbound request. The token is read fresh from the store on each
// request - caching it here would keep serving a stale credential after a
// logout or re-login. AuthTransport itself never fails a request: with no
// token present the Authorization header is simply omitted and the remote
// service answers with its own error code.
type AuthTransport struct {
	base      http.RoundTripper
	tokens    TokenReader
	userAgent string
	log       zerolog.Logger
}

func NewAuthTransport(base http.RoundTripper, tokens TokenReader, userAgent string) *AuthTransport {
	if base == nil {
		base = http.DefaultTransport
	}
	return &AuthTransport{
		base:      base,
		tokens:    tokens,
		userAgent: userAgent,
		log:       log.With().Str("component", "api").Logger(),
	}
}

func (t *AuthTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	// RoundTrippers must not mutate the caller's request
	out := req.Clone(req.Context())
	out.Header.Set("Accept", "application/json")
	out.Header.Set("Content-Type", "application/json")
	out.Header.Set("User-Agent", t.userAgent)
	out.Header.Set("X-Request-ID", uuid.New().String())

	if t.tokens != nil {
		if token := t.tokens.Token(); token != "" {
			out.Header.Set("Authorization", "Bearer "+token)
		}
	}

	start := time.Now()
	resp, err := t.base.RoundTrip(out)
	if err != nil {
		t.log.Error().Err(err).Str("method", out.Method).Stringer("url", out.URL).Msg("request failed")
		return nil, err
	}
	t.log.Debug().
		Str("method", out.Method).
		Stringer("url", out.URL).
		Int("status", resp.StatusCode).
		Dur("duration", time.Since(start)).
		Msg("request")
	return resp, nil
}
