package types

import "time"

// HTTPConfig holds shared HTTP settings for stages that talk to the hub.
type HTTPConfig struct {
	// Timeout is the HTTP request timeout.
	Timeout time.Duration `json:"timeout" yaml:"timeout"`

	// UserAgent is the User-Agent header sent with HTTP requests
	// (e.g. "hub-scout/0.1").
	UserAgent string `json:"user_agent" yaml:"user_agent"`
}

// CatalogConfig holds settings for the catalog client.
type CatalogConfig struct {
	HTTPConfig `yaml:",inline"`

	// Endpoint overrides the Hub API base URL. Empty means the public
	// hub at https://huggingface.co.
	Endpoint string `json:"endpoint,omitempty" yaml:"endpoint,omitempty"`

	// Token is an optional Hub access token sent as a bearer header.
	// Public search works without one; gated repos need it.
	Token string `json:"token,omitempty" yaml:"token,omitempty"`

	// MaxResults is the maximum number of search results to request
	// (default 20).
	MaxResults int `json:"max_results" yaml:"max_results"`
}

// ServerConfig holds settings for the interactive browser.
type ServerConfig struct {
	// Addr is the listen address for the web UI (default ":8080").
	Addr string `json:"addr" yaml:"addr"`

	// DefaultQuery prefills the search form on first load.
	DefaultQuery string `json:"default_query" yaml:"default_query"`

	// DefaultKind preselects the kind radio on first load.
	DefaultKind Kind `json:"default_kind" yaml:"default_kind"`
}

// BrowserConfig groups all stage configurations.
type BrowserConfig struct {
	Catalog CatalogConfig `json:"catalog" yaml:"catalog"`
	Server  ServerConfig  `json:"server" yaml:"server"`
}
