package config

// Local validation limits, shared by the auth pipeline and any UI layer.
const (
	MinPasswordLength = 6
	MinUsernameLength = 3
)

// Social login providers accepted by the remote service.
const (
	GoogleProvider   = "google"
	FacebookProvider = "facebook"
	TwitterProvider  = "twitter"
	LinkedInProvider = "linkedin"
)

// API endpoints, relative to the base URL.
const (
	EndpointLogin       = "user_authentication/login"
	EndpointSignup      = "user_authentication/signup"
	EndpointSocialLogin = "user_authentication/social_login"
	EndpointLogout      = "user_authentication/logout"
)
