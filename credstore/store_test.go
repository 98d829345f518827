package credstore_test

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/nexuzy/hypechats-go/credstore"
	"github.com/nexuzy/hypechats-go/credstore/keyfakes"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) (*credstore.Store, string, *keyfakes.FakeKeySource) {
	t.Helper()

	path := filepath.Join(t.TempDir(), "session.enc")
	keys := keyfakes.NewFakeKeySource()
	store, err := credstore.New(path, keys)
	require.NoError(t, err)
	return store, path, keys
}

func TestFreshStoreIsEmpty(t *testing.T) {
	store, _, _ := newTestStore(t)

	require.Empty(t, store.Token())
	require.Zero(t, store.UserID())
	require.Empty(t, store.Username())
	require.Empty(t, store.Email())
	require.False(t, store.IsLoggedIn())
}

func TestWritesSurviveReopen(t *testing.T) {
	store, path, keys := newTestStore(t)

	require.NoError(t, store.SetToken("tok-123"))
	require.NoError(t, store.SetUserID(7))
	require.NoError(t, store.SetUsername("bob"))
	require.NoError(t, store.SetEmail("bob@example.com"))

	reopened, err := credstore.New(path, keys)
	require.NoError(t, err)
	require.Equal(t, "tok-123", reopened.Token())
	require.Equal(t, 7, reopened.UserID())
	require.Equal(t, "bob", reopened.Username())
	require.Equal(t, "bob@example.com", reopened.Email())
	require.True(t, reopened.IsLoggedIn())
}

func TestClearAllWipesEveryField(t *testing.T) {
	store, path, keys := newTestStore(t)

	require.NoError(t, store.SetToken("tok"))
	require.NoError(t, store.SetUserID(1))
	require.NoError(t, store.SetUsername("alice"))
	require.NoError(t, store.ClearAll())

	require.False(t, store.IsLoggedIn())
	require.Empty(t, store.Token())
	require.Zero(t, store.UserID())
	require.Empty(t, store.Username())

	reopened, err := credstore.New(path, keys)
	require.NoError(t, err)
	require.False(t, reopened.IsLoggedIn())
}

func TestLoggedInRequiresBothFields(t *testing.T) {
	store, _, _ := newTestStore(t)

	require.NoError(t, store.SetToken("tok"))
	require.False(t, store.IsLoggedIn(), "token alone must not count as logged in")

	require.NoError(t, store.SetUserID(3))
	require.True(t, store.IsLoggedIn())

	require.NoError(t, store.SetToken(""))
	require.False(t, store.IsLoggedIn(), "user id alone must not count as logged in")
}

func TestConcurrentReadersNeverObserveSplitState(t *testing.T) {
	store, _, _ := newTestStore(t)

	var wg sync.WaitGroup
	var splitStates atomic.Int64
	stop := make(chan struct{})

	wg.Add(1)
	go func() {
		defer wg.Done()
		for i := 1; i <= 50; i++ {
			// token first, then user id - the publish order every login follows
			_ = store.SetToken(fmt.Sprintf("tok-%d", i))
			_ = store.SetUserID(i)
		}
		close(stop)
	}()

	wg.Add(1)
	go func() {
		defer wg.Done()
		for {
			select {
			case <-stop:
				return
			default:
			}
			// user id is published after the token, so observing it
			// implies the token write already landed
			if store.UserID() > 0 && store.Token() == "" {
				splitStates.Add(1)
			}
		}
	}()

	wg.Wait()
	require.Zero(t, splitStates.Load(), "observed a user id without a token")
}

func TestCorruptStoreFailsConstruction(t *testing.T) {
	store, path, keys := newTestStore(t)
	require.NoError(t, store.SetToken("tok"))

	require.NoError(t, os.WriteFile(path, []byte("garbage"), 0o600))

	_, err := credstore.New(path, keys)
	require.Error(t, err)
	require.Contains(t, err.Error(), credstore.SecurityInitErr.Error())
}

func TestWrongKeyFailsConstruction(t *testing.T) {
	store, path, _ := newTestStore(t)
	require.NoError(t, store.SetToken("tok"))

	_, err := credstore.New(path, keyfakes.NewFakeKeySource())
	require.Error(t, err)
}

func TestKeySourceFailureIsFatal(t *testing.T) {
	keys := keyfakes.NewFakeKeySource()
	keys.FailWith(os.ErrPermission)

	_, err := credstore.New(filepath.Join(t.TempDir(), "session.enc"), keys)
	require.Error(t, err)
	require.Contains(t, err.Error(), credstore.SecurityInitErr.Error())
}
