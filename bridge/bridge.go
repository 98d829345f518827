// Package bridge is the native capability surface exposed to an embedded,
// not fully trusted, document. Everything here is reachable from loaded web
// content, so every capability returns a safe default instead of propagating
// a fault back into the page, and nothing ever surfaces the raw credential
// except the explicitly credential-scoped calls.
package bridge

import (
	"encoding/json"
	"fmt"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// CredentialStore is the slice of the secure store the bridge needs.
// Satisfied by *credstore.Store.
type CredentialStore interface {
	SetToken(token string) error
	SetUserID(userID int) error
	SetUsername(username string) error
	Token() string
	UserID() int
	Username() string
	Email() string
	ClearAll() error
	IsLoggedIn() bool
}

// AppInfo is the non-sensitive application metadata the bridge may hand to
// the document.
type AppInfo struct {
	BaseURL    string
	AppVersion string
}

// Bridge binds the capability surface to one embedded-document instance. A
// new document gets a new Bridge; instances are never shared across
// documents.
type Bridge struct {
	store    CredentialStore
	host     Host
	info     AppInfo
	log      zerolog.Logger
	commands map[string]command
}

func New(store CredentialStore, host Host, info AppInfo) (*Bridge, error) {
	if store == nil {
		return nil, errors.New("[bridge.New] credential store is required")
	}
	if host == nil {
		return nil, errors.New("[bridge.New] host is required")
	}
	b := &Bridge{
		store: store,
		host:  host,
		info:  info,
		log:   log.With().Str("component", "bridge").Logger(),
	}
	b.commands = b.commandTable()
	return b, nil
}

// SaveAuthToken persists an externally supplied credential. The token is
// published before the user id, matching the ordering every other writer
// follows, so a concurrent reader never sees a split session.
func (b *Bridge) SaveAuthToken(token string, userID int, username string) {
	if err := b.store.SetToken(token); err != nil {
		b.log.Error().Err(err).Msg("save credential: token")
		return
	}
	if err := b.store.SetUserID(userID); err != nil {
		b.log.Error().Err(err).Msg("save credential: user id")
		return
	}
	if err := b.store.SetUsername(username); err != nil {
		b.log.Error().Err(err).Msg("save credential: username")
		return
	}
	b.host.ShowToast("Authenticated successfully", false)
	b.log.Info().Str("username", username).Msg("credential saved from document")
}

func (b *Bridge) GetAuthToken() string { return b.store.Token() }

func (b *Bridge) GetUsername() string { return b.store.Username() }

func (b *Bridge) GetUserID() int { return b.store.UserID() }

func (b *Bridge) IsLoggedIn() bool { return b.store.IsLoggedIn() }

// ClearAuthToken wipes the session unconditionally.
func (b *Bridge) ClearAuthToken() {
	if err := b.store.ClearAll(); err != nil {
		b.log.Error().Err(err).Msg("clear credential")
		return
	}
	b.host.ShowToast("Logged out successfully", false)
	b.log.Info().Msg("credential cleared from document")
}

// ShowToast is best-effort; a rendering problem must never fail the calling
// document.
func (b *Bridge) ShowToast(message, duration string) {
	b.host.ShowToast(message, duration == "LONG")
}

func (b *Bridge) ShowNotification(title, message string) {
	b.log.Info().Str("title", title).Str("message", message).Msg("notification from document")
}

// WebMessage is the schema for document-to-native data transfer. Kind tags
// the message; Payload carries flat string fields.
type WebMessage struct {
	Kind    string            `json:"kind"`
	Payload map[string]string `json:"payload,omitempty"`
}

// SendDataToNative validates an inbound message at the boundary. Malformed
// or untagged input reports false; it never raises back into the document.
func (b *Bridge) SendDataToNative(raw string) bool {
	var msg WebMessage
	if err := json.Unmarshal([]byte(raw), &msg); err != nil {
		b.log.Debug().Err(err).Msg("rejected document message")
		return false
	}
	if msg.Kind == "" {
		b.log.Debug().Msg("rejected untagged document message")
		return false
	}
	b.log.Info().Str("kind", msg.Kind).Int("fields", len(msg.Payload)).Msg("message from document")
	return true
}

// GetDataFromNative is a keyed read limited to a fixed allow-list; any other
// key returns an empty result rather than erroring.
func (b *Bridge) GetDataFromNative(key string) string {
	switch key {
	case "username":
		return b.store.Username()
	case "email":
		return b.store.Email()
	case "user_id":
		return fmt.Sprintf("%d", b.store.UserID())
	case "access_token":
		return b.store.Token()
	case "is_logged_in":
		return fmt.Sprintf("%t", b.store.IsLoggedIn())
	}
	return ""
}

func (b *Bridge) GetAPIBaseURL() string { return b.info.BaseURL }

func (b *Bridge) NavigateTo(destination, params string) {
	b.log.Info().Str("destination", destination).Str("params", params).Msg("navigate")
	b.host.Navigate(destination, params)
}

func (b *Bridge) GoBack() {
	if b.host.CanGoBack() {
		b.host.GoBack()
	}
}

func (b *Bridge) GoForward() {
	if b.host.CanGoForward() {
		b.host.GoForward()
	}
}

func (b *Bridge) LogMessage(tag, message string) {
	b.log.Info().Str("tag", tag).Msg(message)
}

// SyncAfterNavigation pushes the current credential into the freshly loaded
// document, native to document only, so a new page starts up to date without
// polling. With no session present nothing is pushed.
func (b *Bridge) SyncAfterNavigation() {
	token := b.store.Token()
	if token == "" {
		return
	}
	b.host.PushScript(fmt.Sprintf("window.authToken = %q;", token))
}
