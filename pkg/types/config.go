// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "time"

// HTTPConfig holds shared HTTP settings for stages that make network requests.
type HTTPConfig struct {
	// Timeout is the per-request timeout for document fetches.
	Timeout time.Duration `json:"timeout" yaml:"timeout" mapstructure:"timeout"`

	// UserAgent is the User-Agent header sent with HTTP requests
	// (e.g. "vaxlit/0.1").
	UserAgent string `json:"user_agent" yaml:"user_agent" mapstructure:"user_agent"`
}

// FetchConfig holds settings for the document source.
type FetchConfig struct {
	HTTPConfig `yaml:",inline" mapstructure:",squash"`

	// MaxRetries is the number of retry attempts on HTTP 429 (default 3).
	MaxRetries int `json:"max_retries" yaml:"max_retries" mapstructure:"max_retries"`

	// APIKeys holds per-publisher bearer tokens, keyed by lowercased
	// source name. Requests for a source without a token go out
	// unauthenticated.
	APIKeys map[string]string `json:"api_keys,omitempty" yaml:"api_keys,omitempty" mapstructure:"api_keys"`
}

// BatchConfig holds settings for an orchestrator run. The tag command
// unmarshals the viper config into it; flags override individual fields.
type BatchConfig struct {
	// DBPath is the SQLite database file holding the base table and tracker.
	DBPath string `json:"db_path" yaml:"db_path" mapstructure:"db_path"`

	// BatchSize is the number of records fetched per tracker advance
	// (default 50).
	BatchSize int `json:"batch_size" yaml:"batch_size" mapstructure:"batch_size"`

	// VocabPath optionally overrides the builtin vocabulary with a YAML file.
	VocabPath string `json:"vocab_path,omitempty" yaml:"vocab_path,omitempty" mapstructure:"vocab_path"`

	// SecretsDir optionally names a directory of per-publisher API token
	// files (see internal/secrets).
	SecretsDir string `json:"secrets_dir,omitempty" yaml:"secrets_dir,omitempty" mapstructure:"secrets_dir"`

	Fetch FetchConfig `json:"fetch" yaml:"fetch" mapstructure:"fetch"`
}
