package config

import "os"

type SecurityConfig interface {
	GetKeyringService() string
	GetCertificatePin() string
}

type Security struct{}

var _ SecurityConfig = Security{}

// GetKeyringService is the platform key-store service name under which the
// credential store's master key is saved. Kept distinct from any other entry
// the host application owns.
func (Security) GetKeyringService() string {
	return getEnvDefault("HYPECHATS_KEYRING_SERVICE", "com.nexuzy.hypechats")
}

// GetCertificatePin is an optional "sha256/<base64>" SPKI pin for the API
// domain. Empty disables pinning.
func (Security) GetCertificatePin() string {
	return os.Getenv("HYPECHATS_CERT_PIN")
}

func getEnvDefault(envVar, defaultValue string) string {
	value := os.Getenv(envVar)
	if value == "" {
		return defaultValue
	}
	return value
}
