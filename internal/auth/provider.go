// Package auth supplies bearer tokens for backend calls. The identity
// provider itself (sign-in, refresh) lives outside this client; providers
// here only hand back whatever session credential is currently cached.
package auth

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"storefront-client/internal/domain"
)

// TokenProvider yields the current session's bearer token.
type TokenProvider interface {
	Token(ctx context.Context) (string, error)
}

// Static always returns the same token. Useful for tests and local runs
// against the stub backend.
type Static struct {
	Value string
}

func (s Static) Token(_ context.Context) (string, error) {
	if strings.TrimSpace(s.Value) == "" {
		return "", domain.ErrNotAuthenticated
	}
	return s.Value, nil
}

// File reads the token the identity tooling caches on disk after sign-in.
// A missing or empty file means the shopper is signed out.
type File struct {
	Path string
}

func (f File) Token(_ context.Context) (string, error) {
	raw, err := os.ReadFile(f.Path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", domain.ErrNotAuthenticated
		}
		return "", fmt.Errorf("read token file: %w", err)
	}
	token := strings.TrimSpace(string(raw))
	if token == "" {
		return "", domain.ErrNotAuthenticated
	}
	return token, nil
}
