package audit

import (
	"context"
	"time"

	id "retention/pkg/domain"
)

// EventCategory classifies audit events by their primary purpose.
type EventCategory string

const (
	// CategoryCompliance covers events with legal significance: records
	// entering the register, closing, and being destroyed.
	CategoryCompliance EventCategory = "compliance"

	// CategorySecurity covers refused operations.
	CategorySecurity EventCategory = "security"

	// CategoryOperations covers routine reads and number issuance.
	CategoryOperations EventCategory = "operations"
)

// Event is emitted from domain logic to capture key actions. Keep it
// transport-agnostic so stores and sinks can fan out.
type Event struct {
	ID        string
	Category  EventCategory
	Timestamp time.Time
	UserID    id.UserID // acting user
	Subject   string
	Action    string
	Decision  string
	Reason    string
	RequestID string
	ActorID   string // set when acting on behalf of someone else
}

type AuditEvent string

const (
	// Record lifecycle
	EventRecordCreated    AuditEvent = "record_created"
	EventRecordClosed     AuditEvent = "record_closed"
	EventRecordsDestroyed AuditEvent = "records_destroyed"

	// Calculations and issuance
	EventDestructionDateComputed AuditEvent = "destruction_date_computed"
	EventNumberGenerated         AuditEvent = "number_generated"

	// Refusals
	EventAccessDenied AuditEvent = "access_denied"
)

var eventCategories = map[AuditEvent]EventCategory{
	EventRecordCreated:    CategoryCompliance,
	EventRecordClosed:     CategoryCompliance,
	EventRecordsDestroyed: CategoryCompliance,

	EventAccessDenied: CategorySecurity,

	EventDestructionDateComputed: CategoryOperations,
	EventNumberGenerated:         CategoryOperations,
}

// Category returns the EventCategory for this audit event.
// Unknown events default to CategoryOperations.
func (e AuditEvent) Category() EventCategory {
	if cat, ok := eventCategories[e]; ok {
		return cat
	}
	return CategoryOperations
}

// Store persists audit events.
type Store interface {
	Append(ctx context.Context, event Event) error
	ListByUser(ctx context.Context, userID id.UserID) ([]Event, error)
	// ListRecent returns up to limit events, newest first.
	ListRecent(ctx context.Context, limit int) ([]Event, error)
}

// Appender is a write-only audit sink, such as a message broker.
type Appender interface {
	Append(ctx context.Context, event Event) error
}
