// Package authz decides whether a user may act, by role and by location.
// Every decision is a boolean: lookup failures deny rather than propagate.
package authz

import (
	"context"
	"slices"

	id "retention/pkg/domain"
)

// RoleLookup returns the user's role, or an error when the user has none.
type RoleLookup interface {
	FindUserRole(ctx context.Context, userID id.UserID) (Role, error)
}

// LocationLookup returns the location, or an error wrapping
// sentinel.ErrNotFound.
type LocationLookup interface {
	FindLocation(ctx context.Context, locationID id.LocationID) (*Location, error)
}

// MembershipLookup reports whether the user is enrolled at the location.
type MembershipLookup interface {
	IsUserAtLocation(ctx context.Context, userID id.UserID, locationID id.LocationID) (bool, error)
}

// Gate combines the three lookups into access decisions.
type Gate struct {
	roles       RoleLookup
	locations   LocationLookup
	memberships MembershipLookup
}

func NewGate(roles RoleLookup, locations LocationLookup, memberships MembershipLookup) *Gate {
	return &Gate{roles: roles, locations: locations, memberships: memberships}
}

// AuthorizeRole is true iff the user's role equals expected.
func (g *Gate) AuthorizeRole(ctx context.Context, userID id.UserID, expected Role) bool {
	return g.AuthorizeAny(ctx, userID, expected)
}

// AuthorizeAny is true iff the user's role equals one of allowed.
func (g *Gate) AuthorizeAny(ctx context.Context, userID id.UserID, allowed ...Role) bool {
	role, err := g.roles.FindUserRole(ctx, userID)
	if err != nil {
		return false
	}
	return slices.Contains(allowed, role)
}

// CanAccessLocation allows NoLocation and unrestricted locations outright;
// restricted locations require a membership row.
func (g *Gate) CanAccessLocation(ctx context.Context, userID id.UserID, locationID id.LocationID) bool {
	if locationID.IsNone() {
		return true
	}
	loc, err := g.locations.FindLocation(ctx, locationID)
	if err != nil {
		return false
	}
	if !loc.Restricted {
		return true
	}
	member, err := g.memberships.IsUserAtLocation(ctx, userID, locationID)
	if err != nil {
		return false
	}
	return member
}
