// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "time"

// HTTPConfig holds shared HTTP settings for requests to the remote API.
type HTTPConfig struct {
	// Timeout is the HTTP request timeout.
	Timeout time.Duration `json:"timeout" yaml:"timeout"`

	// UserAgent is the User-Agent header sent with every request
	// (e.g. "c7-cli/0.1").
	UserAgent string `json:"user_agent" yaml:"user_agent"`
}

// ClientConfig holds the settings the API client needs. It is built
// once at process start and injected at construction; nothing mutates
// it afterwards.
type ClientConfig struct {
	HTTPConfig `yaml:",inline"`

	// BaseURL is the API root, e.g. "https://context7.com/api".
	BaseURL string `json:"base_url" yaml:"base_url"`

	// APIKey is the optional bearer token. When empty, requests go out
	// unauthenticated and are subject to stricter remote rate limits.
	APIKey string `json:"api_key,omitempty" yaml:"api_key,omitempty"`
}
