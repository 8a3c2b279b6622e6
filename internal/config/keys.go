package config

import (
	"net/url"
	"os"
)

const envDatabaseURL = "FINSCOPE_STORE_DATABASE_URL"

// SecretSource represents where a credential comes from.
type SecretSource string

const (
	SourceEnv    SecretSource = "env"
	SourceConfig SecretSource = "config"
	SourceNone   SecretSource = "none"
)

// SecretStatus represents the status of a credential.
type SecretStatus struct {
	Name   string       `json:"name"`
	Source SecretSource `json:"source"`
	IsSet  bool         `json:"is_set"`
	Masked string       `json:"masked,omitempty"` // e.g., "postgres://app:xxxxx@db:5432/finscope"
}

// CheckSecrets returns the status of every credential the process uses.
func CheckSecrets(cfg *Config) []SecretStatus {
	return []SecretStatus{
		checkSecret("Database URL", cfg.Store.DatabaseURL, maskURL, envDatabaseURL, "DATABASE_URL"),
	}
}

// checkSecret checks if a secret is set and where it came from.
func checkSecret(name, value string, mask func(string) string, envVars ...string) SecretStatus {
	status := SecretStatus{Name: name, IsSet: value != "", Source: SourceNone}
	if value == "" {
		return status
	}

	status.Source = SourceConfig
	for _, env := range envVars {
		if os.Getenv(env) == value {
			status.Source = SourceEnv
			break
		}
	}
	status.Masked = mask(value)
	return status
}

// maskURL hides the password of a connection URL. Unparseable values are
// masked entirely.
func maskURL(raw string) string {
	u, err := url.Parse(raw)
	if err != nil || u.Host == "" {
		return maskKey(raw)
	}
	return u.Redacted()
}

// maskKey masks a secret for display, showing only first 3 and last 3 chars.
func maskKey(key string) string {
	if len(key) <= 8 {
		return "***"
	}
	return key[:3] + "..." + key[len(key)-3:]
}
