package auth

import "context"

// Task is an explicit handle to an in-flight operation. The caller chooses to
// wait on it or detach; a detached task still runs to completion and its
// credential-store write still applies. There is deliberately no cancellation
// of an in-flight operation: tearing down a UI mid-login must not abort the
// credential write halfway.
type Task struct {
	done   chan struct{}
	result *Result
	err    error
}

// Done is closed when the operation has finished.
func (t *Task) Done() <-chan struct{} { return t.done }

// Result blocks until the operation finishes and returns its outcome.
func (t *Task) Result() (*Result, error) {
	<-t.done
	return t.result, t.err
}

func (s *Service) LoginTask(ctx context.Context, username, password string) *Task {
	return s.start(ctx, func(ctx context.Context) (*Result, error) {
		return s.Login(ctx, username, password)
	})
}

func (s *Service) SignupTask(ctx context.Context, username, email, password, confirmPassword string) *Task {
	return s.start(ctx, func(ctx context.Context) (*Result, error) {
		return s.Signup(ctx, username, email, password, confirmPassword)
	})
}

func (s *Service) SocialLoginTask(ctx context.Context, providerToken, provider string, providerKey *string) *Task {
	return s.start(ctx, func(ctx context.Context) (*Result, error) {
		return s.SocialLogin(ctx, providerToken, provider, providerKey)
	})
}

func (s *Service) LogoutTask(ctx context.Context) *Task {
	return s.start(ctx, func(ctx context.Context) (*Result, error) {
		return s.Logout(ctx)
	})
}

func (s *Service) start(ctx context.Context, op func(context.Context) (*Result, error)) *Task {
	t := &Task{done: make(chan struct{})}
	// Detach from the caller's cancellation so an abandoned task still
	// completes its store write. Values (tracing etc.) are preserved.
	ctx = context.WithoutCancel(ctx)
	go func() {
		defer close(t.done)
		t.result, t.err = op(ctx)
	}()
	return t
}
