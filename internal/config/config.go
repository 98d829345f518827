package config

type Config interface {
	EnvConfig
	SecurityConfig
}

type EnvConfig interface {
	GetBaseURL() string
	GetAPIDomain() string
	GetAppName() string
	GetAppVersion() string
	GetUserAgent() string
	GetConnectTimeout() int
	GetEnv() string
}

type mainConfig struct {
	EnvVars
	Security
}

// New parses the environment and returns the client configuration.
// Every variable has a default, so New only fails on a malformed override.
func New() (Config, error) {
	vars, err := parseEnvVars()
	if err != nil {
		return nil, err
	}
	return mainConfig{EnvVars: vars}, nil
}
