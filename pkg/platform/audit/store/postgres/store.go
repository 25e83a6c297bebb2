package postgres

import (
	"context"
	"database/sql"
	"fmt"

	id "retention/pkg/domain"
	audit "retention/pkg/platform/audit"
	txcontext "retention/pkg/platform/tx"

	"github.com/google/uuid"
)

// Store implements audit.Store on the audit_events table. Appends join the
// caller's transaction when one is carried in the context, so a destruction
// and its audit row commit together.
type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

// Append inserts the event. Events without an ID get a fresh UUID; inserts
// are idempotent on ID.
func (s *Store) Append(ctx context.Context, event audit.Event) error {
	if event.ID == "" {
		event.ID = uuid.NewString()
	}
	if event.Category == "" {
		event.Category = audit.AuditEvent(event.Action).Category()
	}

	query := `
		INSERT INTO audit_events (
			id, category, timestamp, user_id, subject, action,
			decision, reason, request_id, actor_id
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		ON CONFLICT (id) DO NOTHING
	`

	var userID sql.NullInt64
	if !event.UserID.IsNil() {
		userID = sql.NullInt64{Int64: int64(event.UserID), Valid: true}
	}

	_, err := txcontext.Conn(ctx, s.db).ExecContext(ctx, query,
		event.ID,
		string(event.Category),
		event.Timestamp,
		userID,
		event.Subject,
		event.Action,
		event.Decision,
		event.Reason,
		event.RequestID,
		event.ActorID,
	)
	if err != nil {
		return fmt.Errorf("insert audit event: %w", err)
	}
	return nil
}

// ListByUser returns events for a specific user, oldest first.
func (s *Store) ListByUser(ctx context.Context, userID id.UserID) ([]audit.Event, error) {
	query := `
		SELECT id, category, timestamp, user_id, subject, action,
			   decision, reason, request_id, actor_id
		FROM audit_events
		WHERE user_id = $1
		ORDER BY timestamp ASC
	`

	rows, err := s.db.QueryContext(ctx, query, int64(userID))
	if err != nil {
		return nil, fmt.Errorf("query audit events: %w", err)
	}
	defer rows.Close()

	return s.scanEvents(rows)
}

// ListRecent returns the N most recent events.
func (s *Store) ListRecent(ctx context.Context, limit int) ([]audit.Event, error) {
	query := `
		SELECT id, category, timestamp, user_id, subject, action,
			   decision, reason, request_id, actor_id
		FROM audit_events
		ORDER BY timestamp DESC
		LIMIT $1
	`

	rows, err := s.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("query audit events: %w", err)
	}
	defer rows.Close()

	return s.scanEvents(rows)
}

func (s *Store) scanEvents(rows *sql.Rows) ([]audit.Event, error) {
	var events []audit.Event

	for rows.Next() {
		var (
			category string
			event    audit.Event
			userID   sql.NullInt64
		)

		err := rows.Scan(
			&event.ID,
			&category,
			&event.Timestamp,
			&userID,
			&event.Subject,
			&event.Action,
			&event.Decision,
			&event.Reason,
			&event.RequestID,
			&event.ActorID,
		)
		if err != nil {
			return nil, fmt.Errorf("scan audit event: %w", err)
		}

		event.Category = audit.EventCategory(category)
		if userID.Valid {
			event.UserID = id.UserID(userID.Int64)
		}

		events = append(events, event)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate audit events: %w", err)
	}

	return events, nil
}
