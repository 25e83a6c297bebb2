package service

import (
	"context"
	"time"

	"retention/internal/authz"
	"retention/internal/records/models"
	id "retention/pkg/domain"
	audit "retention/pkg/platform/audit"
)

//go:generate mockgen -source=ports.go -destination=mocks/mocks.go -package=mocks

// Store is the record register. Lookups return errors wrapping
// sentinel.ErrNotFound for unknown ids.
type Store interface {
	Create(ctx context.Context, r *models.Record) error
	FindByID(ctx context.Context, recordID id.RecordID) (*models.Record, error)
	FindByIDs(ctx context.Context, ids []id.RecordID) ([]*models.Record, error)
	FindByContainer(ctx context.Context, containerID id.ContainerID) ([]*models.Record, error)
	ExistsByNumber(ctx context.Context, number string) (bool, error)
	Close(ctx context.Context, recordID id.RecordID, closedAt time.Time) error
	MarkDestroyed(ctx context.Context, ids []id.RecordID, at time.Time) error
	FindSchedule(ctx context.Context, scheduleID id.ScheduleID) (*models.Schedule, error)
	FindContainer(ctx context.Context, containerID id.ContainerID) (*models.Container, error)
}

// TxRunner runs fn as one unit of work against the store.
type TxRunner interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// ClassificationChecker validates classification paths.
type ClassificationChecker interface {
	Check(ctx context.Context, path []id.ClassificationID) error
}

// Authorizer answers role and location questions for a user.
type Authorizer interface {
	AuthorizeRole(ctx context.Context, userID id.UserID, expected authz.Role) bool
	AuthorizeAny(ctx context.Context, userID id.UserID, allowed ...authz.Role) bool
	CanAccessLocation(ctx context.Context, userID id.UserID, locationID id.LocationID) bool
}

// LocationLookup resolves location codes for number checks.
type LocationLookup interface {
	FindLocation(ctx context.Context, locationID id.LocationID) (*authz.Location, error)
}

// AuditPublisher records audit events.
type AuditPublisher interface {
	Emit(ctx context.Context, event audit.Event) error
}

// AuditReader lists the audit trail.
type AuditReader interface {
	ListRecent(ctx context.Context, limit int) ([]audit.Event, error)
}
