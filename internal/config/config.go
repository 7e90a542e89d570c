// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package config assembles the client configuration from a config file,
// the environment, and built-in defaults. The result is read once at
// process start and injected into the API client; no global mutable
// state survives loading.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/meshdocs/c7/pkg/types"
)

// DefaultBaseURL is the production Context7 API root.
const DefaultBaseURL = "https://context7.com/api"

const defaultTimeout = 30 * time.Second

// Load builds the client configuration. A non-empty cfgFile forces
// that exact file; otherwise c7.yaml is looked up in the working
// directory and then ~/.config/c7/, and a missing file is fine. The
// CONTEXT7_API_KEY environment variable supplies the bearer token and
// overrides any api_key from the file.
func Load(cfgFile, version string) (types.ClientConfig, error) {
	v := viper.New()
	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.SetConfigName("c7")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".config", "c7"))
		}
	}

	v.SetDefault("base_url", DefaultBaseURL)
	v.SetDefault("timeout", defaultTimeout)
	v.SetDefault("user_agent", "c7-cli/"+version)

	v.BindEnv("api_key", "CONTEXT7_API_KEY")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile != "" || !errors.As(err, &notFound) {
			return types.ClientConfig{}, fmt.Errorf("reading config: %w", err)
		}
	}

	return types.ClientConfig{
		HTTPConfig: types.HTTPConfig{
			Timeout:   v.GetDuration("timeout"),
			UserAgent: v.GetString("user_agent"),
		},
		BaseURL: v.GetString("base_url"),
		APIKey:  v.GetString("api_key"),
	}, nil
}

// ConfigFlag extracts the --config value from the raw argument vector
// without disturbing the dispatcher's own parsing.
func ConfigFlag(args []string) string {
	for i, a := range args {
		if a == "--config" && i+1 < len(args) {
			return args[i+1]
		}
		if strings.HasPrefix(a, "--config=") {
			return strings.TrimPrefix(a, "--config=")
		}
	}
	return ""
}
