package api

import (
	"bytes"
	"crypto/sha256"
	"crypto/tls"
	"encoding/base64"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/pkg/errors"
)

var PinMismatchErr = errors.New("certificate pin mismatch")

const pinPrefix = "sha256/"

// newBaseTransport builds the underlying transport with symmetric connect and
// handshake bounds, and optional SPKI pinning of the server certificate.
// pin has the form "sha256/<base64>"; empty disables pinning.
func newBaseTransport(timeout time.Duration, pin string) (*http.Transport, error) {
	dialer := &net.Dialer{Timeout: timeout}
	transport := &http.Transport{
		DialContext:           dialer.DialContext,
		TLSHandshakeTimeout:   timeout,
		ResponseHeaderTimeout: timeout,
		ForceAttemptHTTP2:     true,
	}

	if pin == "" {
		return transport, nil
	}

	expected, err := parsePin(pin)
	if err != nil {
		return nil, err
	}
	transport.TLSClientConfig = &tls.Config{
		VerifyConnection: func(cs tls.ConnectionState) error {
			if len(cs.PeerCertificates) == 0 {
				return PinMismatchErr
			}
			sum := sha256.Sum256(cs.PeerCertificates[0].RawSubjectPublicKeyInfo)
			if !bytes.Equal(sum[:], expected) {
				return PinMismatchErr
			}
			return nil
		},
	}
	return transport, nil
}

func parsePin(pin string) ([]byte, error) {
	if !strings.HasPrefix(pin, pinPrefix) {
		return nil, errors.Errorf("[api.parsePin] pin must start with %q", pinPrefix)
	}
	decoded, err := base64.StdEncoding.DecodeString(strings.TrimPrefix(pin, pinPrefix))
	if err != nil {
		return nil, errors.Wrap(err, "[api.parsePin] decode")
	}
	if len(decoded) != sha256.Size {
		return nil, errors.New("[api.parsePin] pin is not a sha256 digest")
	}
	return decoded, nil
}
