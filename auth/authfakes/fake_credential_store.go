package authfakes

import (
	"sync"

	"github.com/nexuzy/hypechats-go/auth"
)

var _ auth.CredentialStore = (*FakeCredentialStore)(nil)

// FakeCredentialStore is an in-memory stand-in for the encrypted store.
type FakeCredentialStore struct {
	mu       sync.RWMutex
	token    string
	userID   int
	username string
	email    string

	// WriteErr makes every write fail when set.
	WriteErr error
}

func NewFakeCredentialStore() *FakeCredentialStore {
	return &FakeCredentialStore{}
}

func (s *FakeCredentialStore) SetToken(token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.WriteErr != nil {
		return s.WriteErr
	}
	s.token = token
	return nil
}

func (s *FakeCredentialStore) SetUserID(userID int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.WriteErr != nil {
		return s.WriteErr
	}
	s.userID = userID
	return nil
}

func (s *FakeCredentialStore) SetUsername(username string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.WriteErr != nil {
		return s.WriteErr
	}
	s.username = username
	return nil
}

func (s *FakeCredentialStore) SetEmail(email string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.WriteErr != nil {
		return s.WriteErr
	}
	s.email = email
	return nil
}

func (s *FakeCredentialStore) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

func (s *FakeCredentialStore) UserID() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.userID
}

func (s *FakeCredentialStore) Username() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.username
}

func (s *FakeCredentialStore) Email() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.email
}

func (s *FakeCredentialStore) ClearAll() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.WriteErr != nil {
		return s.WriteErr
	}
	s.token, s.userID, s.username, s.email = "", 0, "", ""
	return nil
}

func (s *FakeCredentialStore) IsLoggedIn() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token != "" && s.userID > 0
}
