package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"retention/internal/authz"
	id "retention/pkg/domain"
	"retention/pkg/platform/sentinel"
	txcontext "retention/pkg/platform/tx"
)

// PostgresStore backs the authorization lookups with the users, locations
// and location_memberships tables. Queries join the transaction carried in
// the context, if any.
type PostgresStore struct {
	db *sql.DB
}

func NewPostgres(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

func (s *PostgresStore) conn(ctx context.Context) txcontext.Querier {
	return txcontext.Conn(ctx, s.db)
}

func (s *PostgresStore) FindUserRole(ctx context.Context, userID id.UserID) (authz.Role, error) {
	var raw sql.NullString
	err := s.conn(ctx).QueryRowContext(ctx, `SELECT role FROM users WHERE id = $1`, int64(userID)).Scan(&raw)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", fmt.Errorf("user %d: %w", userID, sentinel.ErrNotFound)
		}
		return "", fmt.Errorf("find user role: %w", err)
	}
	if !raw.Valid {
		return "", fmt.Errorf("role for user %d: %w", userID, sentinel.ErrNotFound)
	}
	return authz.ParseRole(raw.String)
}

func (s *PostgresStore) FindLocation(ctx context.Context, locationID id.LocationID) (*authz.Location, error) {
	var (
		loc   authz.Location
		rawID int64
	)
	err := s.conn(ctx).QueryRowContext(ctx,
		`SELECT id, code, name, restricted FROM locations WHERE id = $1`, int64(locationID),
	).Scan(&rawID, &loc.Code, &loc.Name, &loc.Restricted)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("location %d: %w", locationID, sentinel.ErrNotFound)
		}
		return nil, fmt.Errorf("find location: %w", err)
	}
	loc.ID = id.LocationID(rawID)
	return &loc, nil
}

func (s *PostgresStore) IsUserAtLocation(ctx context.Context, userID id.UserID, locationID id.LocationID) (bool, error) {
	var exists bool
	err := s.conn(ctx).QueryRowContext(ctx,
		`SELECT EXISTS (SELECT 1 FROM location_memberships WHERE user_id = $1 AND location_id = $2)`,
		int64(userID), int64(locationID),
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("check location membership: %w", err)
	}
	return exists, nil
}

func (s *PostgresStore) SaveLocation(ctx context.Context, loc *authz.Location) error {
	query := `
		INSERT INTO locations (id, code, name, restricted)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (id) DO UPDATE SET
			code = EXCLUDED.code,
			name = EXCLUDED.name,
			restricted = EXCLUDED.restricted
	`
	if _, err := s.conn(ctx).ExecContext(ctx, query, int64(loc.ID), loc.Code, loc.Name, loc.Restricted); err != nil {
		return fmt.Errorf("save location: %w", err)
	}
	return nil
}

func (s *PostgresStore) SetUserRole(ctx context.Context, userID id.UserID, role authz.Role) error {
	query := `
		INSERT INTO users (id, role)
		VALUES ($1, $2)
		ON CONFLICT (id) DO UPDATE SET role = EXCLUDED.role
	`
	if _, err := s.conn(ctx).ExecContext(ctx, query, int64(userID), string(role)); err != nil {
		return fmt.Errorf("set user role: %w", err)
	}
	return nil
}

func (s *PostgresStore) AddMembership(ctx context.Context, userID id.UserID, locationID id.LocationID) error {
	query := `
		INSERT INTO location_memberships (user_id, location_id)
		VALUES ($1, $2)
		ON CONFLICT DO NOTHING
	`
	if _, err := s.conn(ctx).ExecContext(ctx, query, int64(userID), int64(locationID)); err != nil {
		return fmt.Errorf("add location membership: %w", err)
	}
	return nil
}
