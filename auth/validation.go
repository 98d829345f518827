package auth

import (
	"regexp"

	"github.com/nexuzy/hypechats-go/internal/config"
)

var emailPattern = regexp.MustCompile(`^[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}$`)

func validateLogin(username, password string) *ValidationError {
	if username == "" || password == "" {
		return &ValidationError{Reason: "Username and password required"}
	}
	return nil
}

// validateSignup applies the signup rules in a fixed order; the first failing
// rule wins and nothing later is evaluated.
func validateSignup(username, email, password, confirmPassword string) *ValidationError {
	switch {
	case username == "" || email == "" || password == "":
		return &ValidationError{Reason: "All fields are required"}
	case len(username) < config.MinUsernameLength:
		return &ValidationError{Reason: "Username must be at least 3 characters"}
	case !emailPattern.MatchString(email):
		return &ValidationError{Reason: "Please enter a valid email"}
	case len(password) < config.MinPasswordLength:
		return &ValidationError{Reason: "Password must be at least 6 characters"}
	case password != confirmPassword:
		return &ValidationError{Reason: "Passwords do not match"}
	}
	return nil
}
