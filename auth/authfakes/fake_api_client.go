package authfakes

import (
	"context"
	"sync"

	"github.com/nexuzy/hypechats-go/api"
	"github.com/nexuzy/hypechats-go/auth"
)

var _ auth.APIClient = (*FakeAPIClient)(nil)

// FakeAPIClient records every call and answers with the scripted envelope or
// error per endpoint.
type FakeAPIClient struct {
	mu sync.Mutex

	LoginCalls  []api.LoginRequest
	SignupCalls []api.SignupRequest
	SocialCalls []api.SocialLoginRequest
	LogoutCalls int

	LoginEnvelope  *api.Envelope[api.LoginResponse]
	SignupEnvelope *api.Envelope[api.LoginResponse]
	SocialEnvelope *api.Envelope[api.LoginResponse]
	LogoutEnvelope *api.Envelope[struct{}]

	LoginErr  error
	SignupErr error
	SocialErr error
	LogoutErr error
}

func NewFakeAPIClient() *FakeAPIClient {
	return &FakeAPIClient{}
}

func (c *FakeAPIClient) Login(_ context.Context, req api.LoginRequest) (*api.Envelope[api.LoginResponse], error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.LoginCalls = append(c.LoginCalls, req)
	return c.LoginEnvelope, c.LoginErr
}

func (c *FakeAPIClient) Signup(_ context.Context, req api.SignupRequest) (*api.Envelope[api.LoginResponse], error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.SignupCalls = append(c.SignupCalls, req)
	return c.SignupEnvelope, c.SignupErr
}

func (c *FakeAPIClient) SocialLogin(_ context.Context, req api.SocialLoginRequest) (*api.Envelope[api.LoginResponse], error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.SocialCalls = append(c.SocialCalls, req)
	return c.SocialEnvelope, c.SocialErr
}

func (c *FakeAPIClient) Logout(_ context.Context) (*api.Envelope[struct{}], error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.LogoutCalls++
	return c.LogoutEnvelope, c.LogoutErr
}
