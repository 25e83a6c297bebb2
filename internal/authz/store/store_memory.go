package store

import (
	"context"
	"fmt"
	"sync"

	"retention/internal/authz"
	id "retention/pkg/domain"
	"retention/pkg/platform/sentinel"
)

type membershipKey struct {
	user     id.UserID
	location id.LocationID
}

// InMemory serves role, location and membership lookups from maps.
type InMemory struct {
	mu          sync.RWMutex
	roles       map[id.UserID]authz.Role
	locations   map[id.LocationID]*authz.Location
	memberships map[membershipKey]struct{}
}

func NewInMemory() *InMemory {
	return &InMemory{
		roles:       make(map[id.UserID]authz.Role),
		locations:   make(map[id.LocationID]*authz.Location),
		memberships: make(map[membershipKey]struct{}),
	}
}

func (s *InMemory) SetUserRole(_ context.Context, userID id.UserID, role authz.Role) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.roles[userID] = role
	return nil
}

func (s *InMemory) FindUserRole(_ context.Context, userID id.UserID) (authz.Role, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if role, ok := s.roles[userID]; ok {
		return role, nil
	}
	return "", fmt.Errorf("role for user %d: %w", userID, sentinel.ErrNotFound)
}

func (s *InMemory) SaveLocation(_ context.Context, loc *authz.Location) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	stored := *loc
	s.locations[loc.ID] = &stored
	return nil
}

func (s *InMemory) FindLocation(_ context.Context, locationID id.LocationID) (*authz.Location, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if loc, ok := s.locations[locationID]; ok {
		found := *loc
		return &found, nil
	}
	return nil, fmt.Errorf("location %d: %w", locationID, sentinel.ErrNotFound)
}

func (s *InMemory) AddMembership(_ context.Context, userID id.UserID, locationID id.LocationID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.memberships[membershipKey{user: userID, location: locationID}] = struct{}{}
	return nil
}

func (s *InMemory) IsUserAtLocation(_ context.Context, userID id.UserID, locationID id.LocationID) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.memberships[membershipKey{user: userID, location: locationID}]
	return ok, nil
}
