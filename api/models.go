package api

// Envelope is the response wrapper every endpoint returns. StatusCode mirrors
// the HTTP status; Data is nil when the call failed.
type Envelope[T any] struct {
	StatusCode int       `json:"status_code"`
	Data       *T        `json:"data,omitempty"`
	Error      *APIError `json:"error,omitempty"`
}

// Successful reports whether the envelope carries a 2xx status.
func (e Envelope[T]) Successful() bool {
	return e.StatusCode >= 200 && e.StatusCode <= 299
}

type APIError struct {
	StatusCode int    `json:"status_code"`
	ErrorText  string `json:"error_text"`
}

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type SignupRequest struct {
	Username        string `json:"username"`
	Email           string `json:"email"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirm_password"`
}

type SocialLoginRequest struct {
	AccessToken string  `json:"access_token"`
	Provider    string  `json:"provider"`
	GoogleKey   *string `json:"google_key,omitempty"`
}

// LoginResponse is the credential record every login-family endpoint returns.
// It is extracted into the credential store and not kept around otherwise.
type LoginResponse struct {
	UserID      int    `json:"user_id"`
	Username    string `json:"username"`
	Email       string `json:"email"`
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}
