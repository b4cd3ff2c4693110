package config

import (
	"fmt"
	"os"
)

const (
	EnvProduction = "production"
	EnvProd       = "prod"
	EnvStaging    = "staging"
	EnvLocal      = "local"
)

var (
	ErrInvalidEnvironment = fmt.Errorf("invalid environment")
)

// APIConfig carries the execution API endpoint and credentials for one
// named environment.
type APIConfig struct {
	Moniker string
	BaseURL string
	APIKey  string
}

func APIConfigForEnv(env string) (*APIConfig, error) {
	var config *APIConfig
	switch env {
	case EnvProduction, EnvProd:
		config = &APIConfig{Moniker: EnvProduction, BaseURL: ProductionAPIURL}
	case EnvStaging:
		config = &APIConfig{Moniker: EnvStaging, BaseURL: StagingAPIURL}
	case EnvLocal:
		config = &APIConfig{Moniker: EnvLocal, BaseURL: LocalAPIURL}
	default:
		return nil, fmt.Errorf("%w %q, must be one of: %s, %s, %s", ErrInvalidEnvironment, env, EnvProduction, EnvStaging, EnvLocal)
	}

	apiURL := os.Getenv("IONWORKS_API_URL")
	if apiURL != "" {
		config.BaseURL = apiURL
	}
	config.APIKey = os.Getenv("IONWORKS_API_KEY")

	return config, nil
}
