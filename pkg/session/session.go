// Package session owns the lifetime of the entity cache. A session starts
// when a user signs in and ends when they sign out; everything cached in
// between belongs to it.
package session

import (
	"sync"

	"github.com/google/uuid"
	"github.com/hashicorp/go-hclog"

	"github.com/hashicorp-forge/docview/pkg/models"
	"github.com/hashicorp-forge/docview/pkg/store"
)

// Session holds the store and the current space permissions for one user.
type Session struct {
	ID     string
	UserID string

	store  *store.Store
	logger hclog.Logger

	mu          sync.RWMutex
	permissions *models.SpacePermission
}

// New starts a session for userID with an empty store.
func New(userID string, logger hclog.Logger) *Session {
	if logger == nil {
		logger = hclog.NewNullLogger()
	}

	id := uuid.NewString()
	logger = logger.Named("session").With("session_id", id)

	s := &Session{
		ID:     id,
		UserID: userID,
		store:  store.New(logger),
		logger: logger,
	}
	s.logger.Debug("session started", "user_id", userID)

	return s
}

// Store returns the session's entity cache.
func (s *Session) Store() *store.Store {
	return s.store
}

// SetSpacePermissions replaces the current space permissions.
func (s *Session) SetSpacePermissions(p *models.SpacePermission) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.permissions = p
}

// SpacePermissions returns the permissions of the most recently loaded
// space, or nil.
func (s *Session) SpacePermissions() *models.SpacePermission {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.permissions
}

// Invalidate drops every cached entity and the current permissions.
func (s *Session) Invalidate() {
	s.store.Clear()
	s.SetSpacePermissions(nil)
}

// Close ends the session. The store remains usable but starts empty.
func (s *Session) Close() {
	s.Invalidate()
	s.logger.Debug("session closed", "user_id", s.UserID)
}
