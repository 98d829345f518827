package api_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/nexuzy/hypechats-go/api"
	"github.com/stretchr/testify/require"
)

// mutableTokens flips its token between requests, like a store does across
// logout and re-login.
type mutableTokens struct {
	token string
}

func (t *mutableTokens) Token() string { return t.token }

func TestTransportSetsFixedHeaders(t *testing.T) {
	var got http.Header
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r.Header.Clone()
		w.Write([]byte(`{"status_code":200}`))
	}), "tok-1")

	_, err := client.Logout(context.Background())
	require.NoError(t, err)

	require.Equal(t, "application/json", got.Get("Accept"))
	require.Equal(t, "application/json", got.Get("Content-Type"))
	require.Equal(t, "HypechatsGo/0.0.0-test", got.Get("User-Agent"))
	require.NotEmpty(t, got.Get("X-Request-ID"))
	require.Equal(t, "Bearer tok-1", got.Get("Authorization"))
}

func TestEmptyTokenOmitsAuthorization(t *testing.T) {
	var got http.Header
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r.Header.Clone()
		w.Write([]byte(`{"status_code":200}`))
	}), "")

	_, err := client.Logout(context.Background())
	require.NoError(t, err)
	require.Empty(t, got.Get("Authorization"))
}

func TestTokenIsReadFreshPerRequest(t *testing.T) {
	tokens := &mutableTokens{token: "first"}
	var seen []string

	transport := api.NewAuthTransport(roundTripFunc(func(r *http.Request) (*http.Response, error) {
		seen = append(seen, r.Header.Get("Authorization"))
		return &http.Response{StatusCode: http.StatusOK, Body: http.NoBody, Header: http.Header{}}, nil
	}), tokens, "HypechatsGo/test")

	req, err := http.NewRequest(http.MethodPost, "http://example.invalid/", nil)
	require.NoError(t, err)

	_, err = transport.RoundTrip(req)
	require.NoError(t, err)

	tokens.token = "second"
	_, err = transport.RoundTrip(req)
	require.NoError(t, err)

	require.Equal(t, []string{"Bearer first", "Bearer second"}, seen)
}

func TestTransportDoesNotMutateCallerRequest(t *testing.T) {
	transport := api.NewAuthTransport(roundTripFunc(func(r *http.Request) (*http.Response, error) {
		return &http.Response{StatusCode: http.StatusOK, Body: http.NoBody, Header: http.Header{}}, nil
	}), &mutableTokens{token: "tok"}, "HypechatsGo/test")

	req, err := http.NewRequest(http.MethodPost, "http://example.invalid/", nil)
	require.NoError(t, err)

	_, err = transport.RoundTrip(req)
	require.NoError(t, err)
	require.Empty(t, req.Header.Get("Authorization"))
	require.Empty(t, req.Header.Get("X-Request-ID"))
}

type roundTripFunc func(*http.Request) (*http.Response, error)

func (f roundTripFunc) RoundTrip(r *http.Request) (*http.Response, error) { return f(r) }
