package keyfakes

import (
	"crypto/rand"

	"github.com/nexuzy/hypechats-go/credstore"
)

var _ credstore.KeySource = (*FakeKeySource)(nil)

// FakeKeySource keeps the master key in memory, for tests and environments
// without a platform key store.
type FakeKeySource struct {
	key []byte
	err error
}

func NewFakeKeySource() *FakeKeySource {
	key := make([]byte, credstore.MasterKeySize)
	if _, err := rand.Read(key); err != nil {
		panic(err)
	}
	return &FakeKeySource{key: key}
}

// NewFakeKeySourceWithKey uses the provided key verbatim.
func NewFakeKeySourceWithKey(key []byte) *FakeKeySource {
	return &FakeKeySource{key: key}
}

// FailWith makes subsequent Key calls return err.
func (ks *FakeKeySource) FailWith(err error) {
	ks.err = err
}

func (ks *FakeKeySource) Key() ([]byte, error) {
	if ks.err != nil {
		return nil, ks.err
	}
	return ks.key, nil
}
