package credstore

import (
	"crypto/rand"
	"encoding/base64"

	"github.com/pkg/errors"
	"github.com/zalando/go-keyring"
)

// MasterKeySize is the size in bytes of the store's master key.
const MasterKeySize = 32

const keyringUser = "credstore-master-key"

// KeySource supplies the master key protecting the store. The key must never
// live alongside the ciphertext, which is why it is an explicit dependency
// rather than a file next to the store.
type KeySource interface {
	Key() ([]byte, error)
}

var _ KeySource = (*KeyringSource)(nil)

// KeyringSource keeps the master key in the platform's secure key store
// (Keychain, Credential Manager, Secret Service). On first use a fresh random
// key is generated and saved under the configured service name.
type KeyringSource struct {
	service string
}

func NewKeyringSource(service string) *KeyringSource {
	return &KeyringSource{service: service}
}

func (ks *KeyringSource) Key() ([]byte, error) {
	encoded, err := keyring.Get(ks.service, keyringUser)
	if errors.Is(err, keyring.ErrNotFound) {
		return ks.generate()
	}
	if err != nil {
		return nil, errors.Wrap(err, "[KeyringSource.Key] keyring.Get")
	}

	key, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return nil, errors.Wrap(err, "[KeyringSource.Key] corrupt keyring entry")
	}
	if len(key) != MasterKeySize {
		return nil, MasterKeySizeErr
	}
	return key, nil
}

func (ks *KeyringSource) generate() ([]byte, error) {
	key := make([]byte, MasterKeySize)
	if _, err := rand.Read(key); err != nil {
		return nil, errors.Wrap(err, "[KeyringSource.generate] rand.Read")
	}
	if err := keyring.Set(ks.service, keyringUser, base64.StdEncoding.EncodeToString(key)); err != nil {
		return nil, errors.Wrap(err, "[KeyringSource.generate] keyring.Set")
	}
	return key, nil
}
