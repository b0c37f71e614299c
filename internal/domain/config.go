// Package domain defines core business entities and value objects for terminai.
package domain

// Provider identifies one of the recognized remote completion services.
type Provider string

const (
	ProviderXAI        Provider = "xai"
	ProviderOpenRouter Provider = "openrouter"
)

// Config mirrors ~/.terminai/config.yaml. It is loaded once per process and
// treated as immutable afterwards.
type Config struct {
	Provider Provider `yaml:"api_provider"`
	APIKey   string   `yaml:"api_key"`
	Model    string   `yaml:"model"`
}

// Validate reports the first missing credential field. Provider recognition is
// the completion client's concern; here we only require the field to be set.
func (c Config) Validate() error {
	switch {
	case c.Provider == "":
		return &ConfigError{Field: "api_provider"}
	case c.APIKey == "":
		return &ConfigError{Field: "api_key"}
	case c.Model == "":
		return &ConfigError{Field: "model"}
	}
	return nil
}
