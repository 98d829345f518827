package social

import (
	"context"

	"github.com/coreos/go-oidc/v3/oidc"
	"github.com/pkg/errors"
)

const googleIssuer = "https://accounts.google.com"

// VerifyGoogleIDToken checks the signature, issuer and audience of a Google
// ID token against Google's published keys before the token is forwarded to
// the service.
func VerifyGoogleIDToken(ctx context.Context, clientID, rawIDToken string) (*oidc.IDToken, error) {
	provider, err := oidc.NewProvider(ctx, googleIssuer)
	if err != nil {
		return nil, errors.Wrap(err, "[VerifyGoogleIDToken] discover issuer")
	}
	verifier := provider.Verifier(&oidc.Config{ClientID: clientID})
	idToken, err := verifier.Verify(ctx, rawIDToken)
	if err != nil {
		return nil, errors.Wrap(err, "[VerifyGoogleIDToken] verify")
	}
	return idToken, nil
}
