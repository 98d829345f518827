// Package credstore persists the authenticated session encrypted at rest.
// The payload is sealed with XChaCha20-Poly1305 under a key derived from a
// master key held in the platform key store; the ciphertext file alone is
// useless without it.
package credstore

import (
	"crypto/cipher"
	"crypto/rand"
	"crypto/sha256"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"sync"

	"github.com/pkg/errors"
	"golang.org/x/crypto/chacha20poly1305"
	"golang.org/x/crypto/hkdf"
)

// session is the persisted representation. The JSON keys match the preference
// keys earlier client builds stored the same fields under.
type session struct {
	AccessToken string `json:"pref_access_token"`
	UserID      int    `json:"pref_user_id"`
	Username    string `json:"pref_username"`
	Email       string `json:"pref_user_email"`
}

// Store is the secure credential store. Reads never fail and return zero
// values when a field is absent; writes are durable before they return.
// Safe for concurrent use from multiple goroutines.
type Store struct {
	mu      sync.RWMutex
	path    string
	aead    cipher.AEAD
	current session
}

// New opens (or creates) the store at path. Failure to establish the
// encryption key or to decrypt an existing store is fatal here - the store is
// never silently downgraded to plaintext.
func New(path string, keys KeySource) (*Store, error) {
	if keys == nil {
		return nil, errors.New("[credstore.New] key source is required")
	}

	master, err := keys.Key()
	if err != nil {
		return nil, errors.Wrap(err, SecurityInitErr.Error())
	}
	aead, err := newAEAD(master, path)
	if err != nil {
		return nil, errors.Wrap(err, SecurityInitErr.Error())
	}

	s := &Store{path: path, aead: aead}
	if err := s.load(); err != nil {
		return nil, errors.Wrap(err, SecurityInitErr.Error())
	}
	return s, nil
}

// newAEAD derives a per-store key from the master key so two stores sharing a
// keyring entry still encrypt under distinct keys.
func newAEAD(master []byte, path string) (cipher.AEAD, error) {
	if len(master) != MasterKeySize {
		return nil, MasterKeySizeErr
	}
	kdf := hkdf.New(sha256.New, master, nil, []byte("hypechats/credstore/"+filepath.Base(path)))
	key := make([]byte, chacha20poly1305.KeySize)
	if _, err := io.ReadFull(kdf, key); err != nil {
		return nil, errors.Wrap(err, "hkdf")
	}
	return chacha20poly1305.NewX(key)
}

func (s *Store) SetToken(token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	next := s.current
	next.AccessToken = token
	return s.commit(next)
}

func (s *Store) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current.AccessToken
}

func (s *Store) SetUserID(userID int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	next := s.current
	next.UserID = userID
	return s.commit(next)
}

func (s *Store) UserID() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current.UserID
}

func (s *Store) SetUsername(username string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	next := s.current
	next.Username = username
	return s.commit(next)
}

func (s *Store) Username() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current.Username
}

func (s *Store) SetEmail(email string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	next := s.current
	next.Email = email
	return s.commit(next)
}

func (s *Store) Email() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current.Email
}

// ClearAll wipes every session field in a single durable write.
func (s *Store) ClearAll() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.commit(session{})
}

// IsLoggedIn reports whether a complete credential is present. Both fields are
// read under one lock, so a caller never observes a split state.
func (s *Store) IsLoggedIn() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current.AccessToken != "" && s.current.UserID > 0
}

// commit persists next and only then makes it visible to readers, so a failed
// write never advances the in-memory session. Callers hold the write lock.
func (s *Store) commit(next session) error {
	if err := s.persist(next); err != nil {
		return err
	}
	s.current = next
	return nil
}

func (s *Store) persist(sess session) error {
	plaintext, err := json.Marshal(sess)
	if err != nil {
		return errors.Wrap(err, "[Store.persist] marshal")
	}

	nonce := make([]byte, s.aead.NonceSize())
	if _, err := rand.Read(nonce); err != nil {
		return errors.Wrap(err, "[Store.persist] nonce")
	}
	sealed := s.aead.Seal(nonce, nonce, plaintext, nil)

	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return errors.Wrap(err, "[Store.persist] mkdir")
	}

	// Temp file plus rename keeps a crash from leaving a torn store behind,
	// and the fsync makes the write durable before Set returns.
	tmp, err := os.CreateTemp(filepath.Dir(s.path), ".credstore-*")
	if err != nil {
		return errors.Wrap(err, "[Store.persist] create temp")
	}
	defer os.Remove(tmp.Name())

	if err := tmp.Chmod(0o600); err != nil {
		tmp.Close()
		return errors.Wrap(err, "[Store.persist] chmod")
	}
	if _, err := tmp.Write(sealed); err != nil {
		tmp.Close()
		return errors.Wrap(err, "[Store.persist] write")
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return errors.Wrap(err, "[Store.persist] sync")
	}
	if err := tmp.Close(); err != nil {
		return errors.Wrap(err, "[Store.persist] close")
	}
	if err := os.Rename(tmp.Name(), s.path); err != nil {
		return errors.Wrap(err, "[Store.persist] rename")
	}
	return nil
}

func (s *Store) load() error {
	sealed, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		return nil // first run, empty session
	}
	if err != nil {
		return errors.Wrap(err, "[Store.load] read")
	}
	if len(sealed) < s.aead.NonceSize() {
		return errors.New("[Store.load] store file truncated")
	}

	nonce, ciphertext := sealed[:s.aead.NonceSize()], sealed[s.aead.NonceSize():]
	plaintext, err := s.aead.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		return errors.Wrap(err, "[Store.load] decrypt")
	}
	if err := json.Unmarshal(plaintext, &s.current); err != nil {
		return errors.Wrap(err, "[Store.load] unmarshal")
	}
	return nil
}
