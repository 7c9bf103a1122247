package main

import (
	"errors"
	"time"

	"github.com/joeshaw/envdecode"
)

// Config is read from the environment; flags override it.
type Config struct {
	// RegistryURL is the document read when no input is given.
	RegistryURL string        `env:"OBOFOUNDRY_REGISTRY_URL,default=http://www.obofoundry.org/registry/ontologies.yml"`
	HTTPTimeout time.Duration `env:"OBOFOUNDRY_HTTP_TIMEOUT,default=30s"`
	LogLevel    string        `env:"OBOFOUNDRY_LOG_LEVEL,default=info"`
	Lang        string        `env:"OBOFOUNDRY_LANG,default=en"`
	// MaxBytes caps the size of a fetched document; 0 is unlimited.
	MaxBytes int64 `env:"OBOFOUNDRY_MAX_BYTES,default=0"`
}

// LoadConfig decodes Config from the environment, falling back to the tag
// defaults.
func LoadConfig() (Config, error) {
	var cfg Config
	if err := envdecode.Decode(&cfg); err != nil && !errors.Is(err, envdecode.ErrNoTargetFieldsAreSet) {
		return Config{}, err
	}
	return cfg, nil
}
