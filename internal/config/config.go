// Package config loads the ArchivesSpace connection settings from the
// environment, with an optional .env overlay for local use.
package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds the settings the tool needs to reach ArchivesSpace.
type Config struct {
	BaseURL      string // AS_BASE_URL
	Username     string // AS_USERNAME
	Password     string // AS_PASSWORD
	RepositoryID string // AS_REPOSITORY_ID, defaults to "2"
}

// Load reads configuration from the environment. A .env file in the
// working directory is loaded first when present; real environment
// variables win over it.
func Load() (*Config, error) {
	// Ignore a missing .env; the environment alone is a valid source.
	_ = godotenv.Load()

	cfg := &Config{
		BaseURL:      os.Getenv("AS_BASE_URL"),
		Username:     os.Getenv("AS_USERNAME"),
		Password:     os.Getenv("AS_PASSWORD"),
		RepositoryID: os.Getenv("AS_REPOSITORY_ID"),
	}
	if cfg.RepositoryID == "" {
		cfg.RepositoryID = "2"
	}

	var missing []string
	if cfg.BaseURL == "" {
		missing = append(missing, "AS_BASE_URL")
	}
	if cfg.Username == "" {
		missing = append(missing, "AS_USERNAME")
	}
	if cfg.Password == "" {
		missing = append(missing, "AS_PASSWORD")
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("missing required environment variables: %s", strings.Join(missing, ", "))
	}

	return cfg, nil
}
