package config

const (
	// Production constants.
	ProductionAPIURL = "https://api.ionworks.com"

	// Staging constants.
	StagingAPIURL = "https://api.staging.ionworks.com"

	// Local constants.
	LocalAPIURL = "http://localhost:8000"
)
