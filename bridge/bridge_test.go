package bridge_test

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/nexuzy/hypechats-go/auth/authfakes"
	"github.com/nexuzy/hypechats-go/bridge"
	"github.com/nexuzy/hypechats-go/bridge/hostfakes"
	"github.com/stretchr/testify/require"
)

func newTestBridge(t *testing.T) (*bridge.Bridge, *authfakes.FakeCredentialStore, *hostfakes.FakeHost) {
	t.Helper()

	store := authfakes.NewFakeCredentialStore()
	host := hostfakes.NewFakeHost()
	b, err := bridge.New(store, host, bridge.AppInfo{
		BaseURL:    "https://api.hypechats.test/api/",
		AppVersion: "1.0.0",
	})
	require.NoError(t, err)
	return b, store, host
}

func TestSaveAuthTokenWritesPairedFields(t *testing.T) {
	b, store, host := newTestBridge(t)

	b.SaveAuthToken("T", 7, "bob")

	require.Equal(t, "T", store.Token())
	require.Equal(t, 7, store.UserID())
	require.Equal(t, "bob", store.Username())
	require.True(t, store.IsLoggedIn())
	require.Equal(t, []string{"Authenticated successfully"}, host.Toasts)
}

func TestClearAuthToken(t *testing.T) {
	b, store, host := newTestBridge(t)
	b.SaveAuthToken("T", 7, "bob")

	b.ClearAuthToken()

	require.False(t, store.IsLoggedIn())
	require.Empty(t, store.Token())
	require.Equal(t, "Logged out successfully", host.Toasts[len(host.Toasts)-1])
}

func TestGetDataFromNativeAllowList(t *testing.T) {
	b, store, _ := newTestBridge(t)
	b.SaveAuthToken("T", 7, "bob")
	require.NoError(t, store.SetEmail("bob@example.com"))

	require.Equal(t, "T", b.GetDataFromNative("access_token"))
	require.Equal(t, "bob", b.GetDataFromNative("username"))
	require.Equal(t, "bob@example.com", b.GetDataFromNative("email"))
	require.Equal(t, "7", b.GetDataFromNative("user_id"))
	require.Equal(t, "true", b.GetDataFromNative("is_logged_in"))

	require.Empty(t, b.GetDataFromNative("nonexistent"))
	require.Empty(t, b.GetDataFromNative("password"))
}

func TestSendDataToNative(t *testing.T) {
	b, _, _ := newTestBridge(t)

	require.True(t, b.SendDataToNative(`{"kind":"analytics","payload":{"event":"page_view"}}`))
	require.False(t, b.SendDataToNative(`{not json`))
	require.False(t, b.SendDataToNative(`{"payload":{"event":"untagged"}}`))
	require.False(t, b.SendDataToNative(""))
}

func TestDispatchMalformedPayloadDoesNotPanic(t *testing.T) {
	b, _, _ := newTestBridge(t)

	require.NotPanics(t, func() {
		require.Equal(t, "false", b.Dispatch("sendDataToNative", `{not json`))
	})
}

func TestDispatchUnknownCommand(t *testing.T) {
	b, _, _ := newTestBridge(t)

	require.Empty(t, b.Dispatch("stealCredential"))
	require.Empty(t, b.Dispatch(""))
}

func TestDispatchRoundTrip(t *testing.T) {
	b, _, _ := newTestBridge(t)

	b.Dispatch("saveAuthToken", "T", "7", "bob")
	require.Equal(t, "T", b.Dispatch("getAuthToken"))
	require.Equal(t, "7", b.Dispatch("getUserId"))
	require.Equal(t, "bob", b.Dispatch("getUsername"))
	require.Equal(t, "true", b.Dispatch("isLoggedIn"))
}

func TestDispatchMissingArgsAreEmpty(t *testing.T) {
	b, store, _ := newTestBridge(t)

	require.NotPanics(t, func() {
		b.Dispatch("saveAuthToken", "T")
	})
	require.Equal(t, "T", store.Token())
	require.Zero(t, store.UserID())
	require.False(t, store.IsLoggedIn())
}

func TestDeviceSnapshotNeverLeaksToken(t *testing.T) {
	b, _, _ := newTestBridge(t)
	b.SaveAuthToken("super-secret-token", 7, "bob")

	raw := b.GetDeviceInfo()
	require.NotContains(t, raw, "super-secret-token")

	var snapshot bridge.DeviceSnapshot
	require.NoError(t, json.Unmarshal([]byte(raw), &snapshot))
	require.Equal(t, "1.0.0", snapshot.AppVersion)
	require.NotEmpty(t, snapshot.OS)
}

func TestNavigationGuards(t *testing.T) {
	b, _, host := newTestBridge(t)

	b.GoBack()
	b.GoForward()
	require.Zero(t, host.BackCalls, "no history entry must mean no-op")
	require.Zero(t, host.ForwardCalls)

	host.BackAvailable = true
	host.ForwardAvailable = true
	b.GoBack()
	b.GoForward()
	require.Equal(t, 1, host.BackCalls)
	require.Equal(t, 1, host.ForwardCalls)
}

func TestNavigateToDelegatesToHost(t *testing.T) {
	b, _, host := newTestBridge(t)

	b.Dispatch("navigateTo", "profile", `{"user_id":"7"}`)
	require.Equal(t, []string{"profile"}, host.Navigations)
}

func TestSyncAfterNavigationPushesToken(t *testing.T) {
	b, _, host := newTestBridge(t)

	b.SyncAfterNavigation()
	require.Empty(t, host.Scripts, "no session, nothing to push")

	b.SaveAuthToken("T", 7, "bob")
	b.SyncAfterNavigation()
	require.Len(t, host.Scripts, 1)
	require.True(t, strings.Contains(host.Scripts[0], `"T"`))
}

func TestGetAPIBaseURL(t *testing.T) {
	b, _, _ := newTestBridge(t)
	require.Equal(t, "https://api.hypechats.test/api/", b.Dispatch("getApiBaseUrl"))
}
