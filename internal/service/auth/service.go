// Package auth holds the framework-independent pieces of admin
// authentication: the credential types, the provider contract, and the
// public endpoint policy.
package auth

import (
	"context"
	"strings"
)

// Credentials represents authentication credentials.
type Credentials struct {
	Username string
	Password string
}

// CredentialRequirements defines password policy requirements.
type CredentialRequirements struct {
	MinPasswordLength int
	WeakPasswords     []string
}

// AuthProvider defines the interface for authentication providers.
type AuthProvider interface {
	// ValidateCredentials validates user credentials.
	ValidateCredentials(ctx context.Context, creds Credentials) error

	// GetRequirements returns the credential requirements for this provider.
	GetRequirements() CredentialRequirements

	// Name returns the name of this provider.
	Name() string
}

// AuthService validates credentials through a provider and decides which
// paths skip authentication.
type AuthService struct {
	provider AuthProvider
	public   []string
}

// NewAuthService creates an authentication service over the given provider.
// Trailing slashes on public endpoints are normalized away so "/content/"
// and "/content" configure the same policy.
func NewAuthService(provider AuthProvider, publicEndpoints []string) *AuthService {
	public := make([]string, 0, len(publicEndpoints))
	for _, endpoint := range publicEndpoints {
		if endpoint = strings.TrimSuffix(endpoint, "/"); endpoint != "" {
			public = append(public, endpoint)
		}
	}
	return &AuthService{provider: provider, public: public}
}

// ValidateCredentials validates user credentials via the configured provider.
func (s *AuthService) ValidateCredentials(ctx context.Context, creds Credentials) error {
	return s.provider.ValidateCredentials(ctx, creds)
}

// IsPublicEndpoint reports whether a path skips authentication: either an
// exact match or a sub-path at a segment boundary, so "/portfolio" covers
// "/portfolio/3" but not "/portfolio-admin".
func (s *AuthService) IsPublicEndpoint(path string) bool {
	for _, endpoint := range s.public {
		if path == endpoint || strings.HasPrefix(path, endpoint+"/") {
			return true
		}
	}
	return false
}

// GetProvider returns the current authentication provider.
func (s *AuthService) GetProvider() AuthProvider {
	return s.provider
}
