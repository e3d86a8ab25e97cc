package e2e

import (
	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	// E2E_KEEP_ARTIFACTS writes fixtures and containers to a surviving
	// directory instead of the test temp dir, for manual inspection
	KeepArtifacts bool `envconfig:"E2E_KEEP_ARTIFACTS" default:"false"`
	// E2E_COLOURS enables colorized output for better log readability
	Colours bool `envconfig:"E2E_COLOURS" default:"true"`
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	return cfg, err
}
