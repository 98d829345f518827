package auth

import "fmt"

// Failure taxonomy for the pipeline. A ValidationError never reaches the
// network; a RemoteError means the service was reachable and rejected the
// request (or returned a malformed success); a TransportError means the
// service was unreachable, timed out, or the response was undecodable.

type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string { return e.Reason }

type RemoteError struct {
	StatusCode int
	Message    string
}

func (e *RemoteError) Error() string { return e.Message }

type TransportError struct {
	Err error
}

func (e *TransportError) Error() string { return fmt.Sprintf("transport failure: %v", e.Err) }

func (e *TransportError) Unwrap() error { return e.Err }

// Generic per-operation messages used when the server supplies no error text.
const (
	loginFailedMsg       = "Login failed"
	signupFailedMsg      = "Signup failed"
	socialLoginFailedMsg = "Social login failed"
	logoutFailedMsg      = "Logout failed"
)
