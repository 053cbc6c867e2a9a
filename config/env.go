package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"

	"github.com/permitio/permit-golang/infra/perr"
)

// Environment variables understood by FromEnv
const (
	EnvToken    = "PERMIT_TOKEN"
	EnvPDPURL   = "PERMIT_PDP_URL"
	EnvAPIURL   = "PERMIT_API_URL"
	EnvDebug    = "PERMIT_DEBUG"
	EnvLogLevel = "PERMIT_LOG_LEVEL"
	EnvLogJSON  = "PERMIT_LOG_JSON"
)

// FromEnv builds a PermitConfig from the process environment, loading a .env
// file first if one exists in the working directory. Explicit options win
// over environment values.
func FromEnv(opts ...Option) (*PermitConfig, error) {
	// a missing .env file is not an error; the process env may be fully set
	_ = godotenv.Load()

	token := os.Getenv(EnvToken)
	if token == "" {
		return nil, perr.Friendlyf(nil, "%s is not set", EnvToken)
	}

	var envOpts []Option
	if v := os.Getenv(EnvPDPURL); v != "" {
		envOpts = append(envOpts, WithPDP(v))
	}
	if v := os.Getenv(EnvAPIURL); v != "" {
		envOpts = append(envOpts, WithAPIURL(v))
	}
	if v := os.Getenv(EnvDebug); v != "" {
		debug, err := strconv.ParseBool(v)
		if err != nil {
			return nil, perr.Friendlyf(err, "%s must be a boolean, got '%s'", EnvDebug, v)
		}
		envOpts = append(envOpts, WithDebug(debug))
	}

	log := LoggerConfig{Level: "info", Label: "permit"}
	if v := os.Getenv(EnvLogLevel); v != "" {
		log.Level = v
	}
	if v := os.Getenv(EnvLogJSON); v != "" {
		logJSON, err := strconv.ParseBool(v)
		if err != nil {
			return nil, perr.Friendlyf(err, "%s must be a boolean, got '%s'", EnvLogJSON, v)
		}
		log.JSON = logJSON
	}
	envOpts = append(envOpts, WithLogger(log))

	c := NewConfig(token, append(envOpts, opts...)...)
	if err := c.Validate(); err != nil {
		return nil, perr.Wrap(err)
	}
	return c, nil
}
