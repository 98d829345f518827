// Package auth orchestrates the login-family operations against the remote
// service and keeps the credential store consistent with their outcome.
package auth

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/nexuzy/hypechats-go/api"
	"github.com/nexuzy/hypechats-go/auth/social"
	"github.com/nexuzy/hypechats-go/internal/utils"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// State of a single operation invocation: Idle -> Pending -> Success/Failed.
type State int

const (
	StateIdle State = iota
	StatePending
	StateSuccess
	StateFailed
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StatePending:
		return "pending"
	case StateSuccess:
		return "success"
	case StateFailed:
		return "failed"
	}
	return "unknown"
}

// Result describes the terminal state of one operation. Message carries the
// server's error text verbatim when it supplied one.
type Result struct {
	State      State
	StatusCode int
	Message    string
}

// CredentialStore is the session persistence the pipeline writes through.
// Satisfied by *credstore.Store.
type CredentialStore interface {
	SetToken(token string) error
	SetUserID(userID int) error
	SetUsername(username string) error
	SetEmail(email string) error
	Token() string
	UserID() int
	ClearAll() error
	IsLoggedIn() bool
}

// APIClient is the wire client the pipeline calls. Satisfied by *api.Client.
type APIClient interface {
	Login(ctx context.Context, req api.LoginRequest) (*api.Envelope[api.LoginResponse], error)
	Signup(ctx context.Context, req api.SignupRequest) (*api.Envelope[api.LoginResponse], error)
	SocialLogin(ctx context.Context, req api.SocialLoginRequest) (*api.Envelope[api.LoginResponse], error)
	Logout(ctx context.Context) (*api.Envelope[struct{}], error)
}

// Service runs the authentication operations. Each invocation owns its own
// state machine; the only shared mutable state is the credential store, which
// serializes its own writes.
type Service struct {
	store  CredentialStore
	client APIClient
	log    zerolog.Logger
}

func NewService(store CredentialStore, client APIClient) (*Service, error) {
	if store == nil {
		return nil, errors.New("[NewService] credential store is required")
	}
	if client == nil {
		return nil, errors.New("[NewService] api client is required")
	}
	return &Service{
		store:  store,
		client: client,
		log:    log.With().Str("component", "auth").Logger(),
	}, nil
}

// Login authenticates with username and password. On success the credential
// is persisted before Login returns; on any failure the store is untouched.
func (s *Service) Login(ctx context.Context, username, password string) (*Result, error) {
	if verr := validateLogin(username, password); verr != nil {
		return failed(0, verr.Reason), verr
	}
	username = strings.TrimSpace(username)

	env, err := s.client.Login(ctx, api.LoginRequest{Username: username, Password: password})
	if err != nil {
		return s.transportFailure("login", err)
	}
	if !env.Successful() || env.Data == nil {
		return s.remoteFailure("login", env.StatusCode, env.Error, loginFailedMsg)
	}

	if err := s.persistCredential(env.Data.AccessToken, env.Data.UserID); err != nil {
		return failed(env.StatusCode, err.Error()), err
	}
	if err := s.store.SetUsername(username); err != nil {
		return failed(env.StatusCode, err.Error()), errors.Wrap(err, "[Service.Login] store username")
	}

	s.log.Info().Int("user_id", env.Data.UserID).Msg("login succeeded")
	return succeeded(env.StatusCode), nil
}

// Signup registers a new account. Local validation runs in a fixed order
// before any network call; on success token, user id, username and email are
// all persisted.
func (s *Service) Signup(ctx context.Context, username, email, password, confirmPassword string) (*Result, error) {
	if verr := validateSignup(username, email, password, confirmPassword); verr != nil {
		return failed(0, verr.Reason), verr
	}
	username = strings.TrimSpace(username)
	email = strings.TrimSpace(email)

	env, err := s.client.Signup(ctx, api.SignupRequest{
		Username:        username,
		Email:           email,
		Password:        password,
		ConfirmPassword: confirmPassword,
	})
	if err != nil {
		return s.transportFailure("signup", err)
	}
	if !env.Successful() || env.Data == nil {
		return s.remoteFailure("signup", env.StatusCode, env.Error, signupFailedMsg)
	}

	if err := s.persistCredential(env.Data.AccessToken, env.Data.UserID); err != nil {
		return failed(env.StatusCode, err.Error()), err
	}
	if err := s.store.SetUsername(username); err != nil {
		return failed(env.StatusCode, err.Error()), errors.Wrap(err, "[Service.Signup] store username")
	}
	if err := s.store.SetEmail(email); err != nil {
		return failed(env.StatusCode, err.Error()), errors.Wrap(err, "[Service.Signup] store email")
	}

	s.log.Info().Int("user_id", env.Data.UserID).Msg("signup succeeded")
	return succeeded(env.StatusCode), nil
}

// SocialLogin exchanges a provider-issued token for a service session. Only
// token and user id are persisted; username and email keep whatever value
// they already had.
func (s *Service) SocialLogin(ctx context.Context, providerToken, provider string, providerKey *string) (*Result, error) {
	if exp, err := social.TokenExpiry(providerToken); err == nil && exp.Before(time.Now()) {
		s.log.Warn().Str("provider", provider).Time("expiry", exp).Msg("provider token already expired")
	}

	env, err := s.client.SocialLogin(ctx, api.SocialLoginRequest{
		AccessToken: providerToken,
		Provider:    provider,
		GoogleKey:   providerKey,
	})
	if err != nil {
		return s.transportFailure("social login", err)
	}
	if !env.Successful() || env.Data == nil {
		return s.remoteFailure("social login", env.StatusCode, env.Error, socialLoginFailedMsg)
	}

	if err := s.persistCredential(env.Data.AccessToken, env.Data.UserID); err != nil {
		return failed(env.StatusCode, err.Error()), err
	}

	s.log.Info().Str("provider", provider).Int("user_id", env.Data.UserID).Msg("social login succeeded")
	return succeeded(env.StatusCode), nil
}

// Logout invalidates the session server-side when a token is present, then
// clears the store no matter how the remote call went. A device-local logout
// must always succeed from the user's perspective; the returned result only
// reflects the remote outcome for diagnostics.
func (s *Service) Logout(ctx context.Context) (*Result, error) {
	var env *api.Envelope[struct{}]
	var remoteErr error
	if s.store.Token() != "" {
		env, remoteErr = s.client.Logout(ctx)
	}

	if cerr := s.store.ClearAll(); cerr != nil {
		return failed(0, cerr.Error()), errors.Wrap(cerr, "[Service.Logout] clear store")
	}
	s.log.Info().Msg("session cleared")

	if remoteErr != nil {
		terr := &TransportError{Err: remoteErr}
		return failed(http.StatusInternalServerError, terr.Error()), terr
	}
	if env != nil && !env.Successful() {
		rerr := &RemoteError{StatusCode: env.StatusCode, Message: remoteMessage(env.Error, logoutFailedMsg)}
		return failed(env.StatusCode, rerr.Message), rerr
	}

	status := http.StatusOK
	if env != nil {
		status = env.StatusCode
	}
	return succeeded(status), nil
}

// persistCredential publishes the token before the user id so a concurrent
// reader that observes the user id always observes the token as well.
func (s *Service) persistCredential(token string, userID int) error {
	if err := s.store.SetToken(token); err != nil {
		return errors.Wrap(err, "[Service.persistCredential] store token")
	}
	if err := s.store.SetUserID(userID); err != nil {
		return errors.Wrap(err, "[Service.persistCredential] store user id")
	}
	return nil
}

func (s *Service) transportFailure(op string, err error) (*Result, error) {
	terr := &TransportError{Err: err}
	s.log.Error().Err(err).Str("operation", op).Msg("transport failure")
	return failed(http.StatusInternalServerError, terr.Error()), terr
}

func (s *Service) remoteFailure(op string, status int, apiErr *api.APIError, fallback string) (*Result, error) {
	rerr := &RemoteError{StatusCode: status, Message: remoteMessage(apiErr, fallback)}
	s.log.Warn().Str("operation", op).Int("status", status).Str("message", rerr.Message).Msg("rejected by service")
	return failed(status, rerr.Message), rerr
}

func remoteMessage(apiErr *api.APIError, fallback string) string {
	if text := utils.Value(apiErr).ErrorText; text != "" {
		return text
	}
	return fallback
}

func failed(status int, message string) *Result {
	return &Result{State: StateFailed, StatusCode: status, Message: message}
}

func succeeded(status int) *Result {
	return &Result{State: StateSuccess, StatusCode: status}
}
