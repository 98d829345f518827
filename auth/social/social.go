// Package social holds the provider-side helpers for social login: OAuth2
// endpoint lookup, code exchange, and local inspection of provider tokens.
// The service-side exchange of a provider token for a session lives in the
// auth package.
package social

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/nexuzy/hypechats-go/internal/config"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/endpoints"
)

var (
	UnknownProviderErr = errors.New("unknown social provider")
	NoExpiryErr        = errors.New("provider token carries no expiry")
)

// x/oauth2 ships no Twitter endpoint; the OAuth2 flow is documented at
// developer.twitter.com.
var twitterEndpoint = oauth2.Endpoint{
	AuthURL:  "https://twitter.com/i/oauth2/authorize",
	TokenURL: "https://api.twitter.com/2/oauth2/token",
}

// Endpoint returns the OAuth2 endpoint for one of the supported providers.
func Endpoint(provider string) (oauth2.Endpoint, error) {
	switch provider {
	case config.GoogleProvider:
		return endpoints.Google, nil
	case config.FacebookProvider:
		return endpoints.Facebook, nil
	case config.LinkedInProvider:
		return endpoints.LinkedIn, nil
	case config.TwitterProvider:
		return twitterEndpoint, nil
	}
	return oauth2.Endpoint{}, UnknownProviderErr
}

// NewConfig builds the OAuth2 config used to obtain a provider token before
// it is handed to the authentication pipeline.
func NewConfig(provider, clientID, clientSecret, redirectURL string, scopes ...string) (*oauth2.Config, error) {
	endpoint, err := Endpoint(provider)
	if err != nil {
		return nil, err
	}
	return &oauth2.Config{
		ClientID:     clientID,
		ClientSecret: clientSecret,
		RedirectURL:  redirectURL,
		Scopes:       scopes,
		Endpoint:     endpoint,
	}, nil
}

// TokenExpiry reads the expiry claim out of a JWT-shaped provider token
// without verifying it. Verification is the remote service's job; this is a
// local diagnostic only. Opaque tokens return an error.
func TokenExpiry(raw string) (time.Time, error) {
	claims := jwt.RegisteredClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(raw, &claims); err != nil {
		return time.Time{}, err
	}
	if claims.ExpiresAt == nil {
		return time.Time{}, NoExpiryErr
	}
	return claims.ExpiresAt.Time, nil
}
