package config

import (
	"fmt"
	"time"
)

// ClientConfig is the notesctl view of [StructuredConfig].
type ClientConfig struct {
	// ServerURL is the base URL of the work-notes server.
	ServerURL string
	// RequestTimeout is the timeout for every outbound request.
	RequestTimeout time.Duration
	// User and Password are sent as basic-auth credentials when User is set.
	User     string
	Password string
}

// GetClientConfig builds the client configuration from defaults, the
// environment and the optional JSON file named by CONFIG. Command-line
// overrides are applied by the cobra commands on top of the result.
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := newConfigBuilder().
		withDefaults().
		withEnv().
		withJSON().
		build()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	return &ClientConfig{
		ServerURL:      cfg.Client.ServerURL,
		RequestTimeout: cfg.Client.RequestTimeout,
		User:           cfg.Client.User,
		Password:       cfg.Client.Password,
	}, nil
}
