package config

import (
	"time"

	"github.com/caarlos0/env/v11"
)

// envConfig mirrors Config for environment parsing. Empty values are
// treated as unset so defaults and JSON overlay survive.
type envConfig struct {
	EndpointAddr          string        `env:"ENDPOINT_ADDR"`
	DatabaseDSN           string        `env:"DATABASE_DSN"`
	SecretKey             string        `env:"SECRET_KEY"`
	TokenValidityDuration time.Duration `env:"TOKEN_VALIDITY_DURATION"`
	BcryptCost            int           `env:"BCRYPT_COST"`
}

// parseEnv overlays configuration values from TASKKEEPER_-prefixed
// environment variables onto the provided Config.
func parseEnv(config *Config) {
	c := envConfig{}
	if err := env.ParseWithOptions(&c, env.Options{Prefix: "TASKKEEPER_"}); err != nil {
		panic(err)
	}

	if c.EndpointAddr != "" {
		config.EndpointAddr = c.EndpointAddr
	}
	if c.DatabaseDSN != "" {
		config.DatabaseDSN = c.DatabaseDSN
	}
	if c.SecretKey != "" {
		config.SecretKey = c.SecretKey
	}
	if c.TokenValidityDuration != 0 {
		config.TokenValidityDuration = c.TokenValidityDuration
	}
	if c.BcryptCost != 0 {
		config.BcryptCost = c.BcryptCost
	}
}
