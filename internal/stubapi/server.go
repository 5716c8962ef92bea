// Package stubapi is an in-memory stand-in for the real storefront
// backend. It serves the same five endpoints with the same wire format so
// the client can be exercised in tests and local development without the
// cloud deployment. It models the backend's contract, not its business
// rules.
package stubapi

import (
	"log/slog"
	"sync"

	"storefront-client/internal/domain"
)

type claims struct {
	UserID string
	Email  string
}

// Server holds all state behind the stub endpoints.
type Server struct {
	logger *slog.Logger

	mu       sync.Mutex
	products []domain.Product
	profiles map[string]domain.Profile
	orders   map[string][]domain.Order
	replays  map[string]domain.Order
	sessions map[string]claims
}

// New builds a Server with the seed catalog and no sessions.
func New(logger *slog.Logger) *Server {
	return &Server{
		logger:   logger,
		products: seedProducts(),
		profiles: make(map[string]domain.Profile),
		orders:   make(map[string][]domain.Order),
		replays:  make(map[string]domain.Order),
		sessions: make(map[string]claims),
	}
}

// AddSession registers a bearer token for a user, standing in for the
// identity provider's token issuance.
func (s *Server) AddSession(token, userID, email string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[token] = claims{UserID: userID, Email: email}
}

func (s *Server) lookupSession(token string) (claims, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c, ok := s.sessions[token]
	return c, ok
}
