// Package config loads the optional YAML security policy that overrides
// the compiled-in admin authentication defaults.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// BasicAuthPolicy tunes the env-credential provider.
type BasicAuthPolicy struct {
	MinPasswordLength int      `yaml:"min_password_length"`
	WeakPasswords     []string `yaml:"weak_passwords"`
}

// AuthPolicy selects and configures the authentication provider.
type AuthPolicy struct {
	Provider string          `yaml:"provider"`
	Basic    BasicAuthPolicy `yaml:"basic"`
}

// JWTPolicy configures admin token issuance.
type JWTPolicy struct {
	SecretEnv   string `yaml:"secret_env"`
	ExpiryHours int    `yaml:"expiry_hours"`
}

// SecurityPolicy is the security section of the policy file.
type SecurityPolicy struct {
	Auth            AuthPolicy `yaml:"auth"`
	PublicEndpoints []string   `yaml:"public_endpoints"`
	JWT             JWTPolicy  `yaml:"jwt"`
}

// SecurityConfig holds the security policy loaded from a YAML file. It
// overrides the compiled-in defaults for admin authentication and the list
// of endpoints that skip auth entirely.
type SecurityConfig struct {
	Security SecurityPolicy `yaml:"security"`
}

// LoadSecurityConfig reads and validates a security policy file.
func LoadSecurityConfig(path string) (*SecurityConfig, error) {
	// #nosec G304 -- path comes from SECURITY_CONFIG_PATH, an operator setting
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read security config: %w", err)
	}

	var config SecurityConfig
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("parse security config: %w", err)
	}

	if err := config.Security.validate(); err != nil {
		return nil, fmt.Errorf("invalid security config: %w", err)
	}

	return &config, nil
}

func (p *SecurityPolicy) validate() error {
	if p.Auth.Provider == "" {
		return fmt.Errorf("auth provider is required")
	}

	if p.Auth.Provider == "basic" && p.Auth.Basic.MinPasswordLength < 8 {
		return fmt.Errorf("min_password_length must be at least 8, got %d",
			p.Auth.Basic.MinPasswordLength)
	}

	if p.JWT.SecretEnv == "" {
		return fmt.Errorf("jwt secret_env is required")
	}
	if p.JWT.ExpiryHours <= 0 {
		return fmt.Errorf("jwt expiry_hours must be positive, got %d", p.JWT.ExpiryHours)
	}

	return nil
}

// GetAuthProvider returns the configured authentication provider name.
func (c *SecurityConfig) GetAuthProvider() string {
	return c.Security.Auth.Provider
}

// GetMinPasswordLength returns the minimum admin password length.
func (c *SecurityConfig) GetMinPasswordLength() int {
	return c.Security.Auth.Basic.MinPasswordLength
}

// GetWeakPasswords returns the list of rejected weak passwords.
func (c *SecurityConfig) GetWeakPasswords() []string {
	return c.Security.Auth.Basic.WeakPasswords
}

// GetPublicEndpoints returns the endpoints that bypass authentication.
func (c *SecurityConfig) GetPublicEndpoints() []string {
	return c.Security.PublicEndpoints
}

// GetJWTSecretEnv returns the environment variable name holding the JWT secret.
func (c *SecurityConfig) GetJWTSecretEnv() string {
	return c.Security.JWT.SecretEnv
}

// GetJWTExpiryHours returns the token lifetime in hours.
func (c *SecurityConfig) GetJWTExpiryHours() int {
	return c.Security.JWT.ExpiryHours
}
