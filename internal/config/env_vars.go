package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

type EnvVars struct {
	BaseURL        string `env:"HYPECHATS_BASE_URL" envDefault:"https://api.hypechats.com/api/"`
	APIDomain      string `env:"HYPECHATS_API_DOMAIN" envDefault:"api.hypechats.com"`
	AppName        string `env:"HYPECHATS_APP_NAME" envDefault:"Hypechats"`
	AppVersion     string `env:"HYPECHATS_APP_VERSION" envDefault:"1.0.0"`
	ConnectTimeout int    `env:"HYPECHATS_TIMEOUT_SECONDS" envDefault:"30"`
	Env            string `env:"ENV" envDefault:"DEV"`
}

var _ EnvConfig = EnvVars{}

func parseEnvVars() (EnvVars, error) {
	var vars EnvVars
	if err := env.Parse(&vars); err != nil {
		return EnvVars{}, fmt.Errorf("config.parseEnvVars: %w", err)
	}
	return vars, nil
}

func (e EnvVars) GetBaseURL() string {
	return e.BaseURL
}

func (e EnvVars) GetAPIDomain() string {
	return e.APIDomain
}

func (e EnvVars) GetAppName() string {
	return e.AppName
}

func (e EnvVars) GetAppVersion() string {
	return e.AppVersion
}

// GetUserAgent returns the product identifier attached to every outbound request.
func (e EnvVars) GetUserAgent() string {
	return fmt.Sprintf("HypechatsGo/%s", e.AppVersion)
}

// GetConnectTimeout is the symmetric connect/read/write bound in seconds,
// applied uniformly to every outbound call.
func (e EnvVars) GetConnectTimeout() int {
	return e.ConnectTimeout
}

func (e EnvVars) GetEnv() string {
	return e.Env
}
