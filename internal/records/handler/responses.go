package handler

import (
	"time"

	"retention/internal/numbering"
	"retention/internal/records/models"
	"retention/internal/records/service"
	id "retention/pkg/domain"
	audit "retention/pkg/platform/audit"
)

type ClassificationCheckResponse struct {
	Valid  bool   `json:"valid"`
	Reason string `json:"reason,omitempty"`
}

type PatternResponse struct {
	Name         string `json:"name"`
	Template     string `json:"template"`
	HasLocation  bool   `json:"has_location"`
	AutoFill     bool   `json:"auto_fill"`
	AutoFillSize int    `json:"auto_fill_width,omitempty"`
}

func FromPatterns(patterns []numbering.Pattern) []PatternResponse {
	out := make([]PatternResponse, 0, len(patterns))
	for _, p := range patterns {
		out = append(out, PatternResponse{
			Name:         p.Name(),
			Template:     p.Template(),
			HasLocation:  p.HasLocation(),
			AutoFill:     p.HasAutoFill(),
			AutoFillSize: p.AutoFillWidth(),
		})
	}
	return out
}

type NumberCheckResponse struct {
	Pattern         string `json:"pattern"`
	Matches         bool   `json:"matches"`
	LocationMatches bool   `json:"location_matches"`
}

func FromNumberCheck(c *service.NumberCheck) *NumberCheckResponse {
	return &NumberCheckResponse{
		Pattern:         c.Pattern.Template(),
		Matches:         c.Matches,
		LocationMatches: c.LocationMatches,
	}
}

type GeneratedNumberResponse struct {
	Number string `json:"number"`
}

type RecordResponse struct {
	ID                 id.RecordID           `json:"id"`
	Number             string                `json:"number"`
	Title              string                `json:"title"`
	ContainerID        id.ContainerID        `json:"container_id,omitempty"`
	ScheduleID         id.ScheduleID         `json:"schedule_id"`
	ScheduleYears      int                   `json:"schedule_years"`
	LocationID         id.LocationID         `json:"location_id"`
	ClassificationPath []id.ClassificationID `json:"classification_path"`
	ClosedAt           *time.Time            `json:"closed_at,omitempty"`
	DestroyedAt        *time.Time            `json:"destroyed_at,omitempty"`
	CreatedAt          time.Time             `json:"created_at"`
	UpdatedAt          time.Time             `json:"updated_at"`
}

func FromRecord(r *models.Record) *RecordResponse {
	return &RecordResponse{
		ID:                 r.ID,
		Number:             r.Number,
		Title:              r.Title,
		ContainerID:        r.ContainerID,
		ScheduleID:         r.ScheduleID,
		ScheduleYears:      r.ScheduleYears,
		LocationID:         r.LocationID,
		ClassificationPath: r.ClassificationPath,
		ClosedAt:           r.ClosedAt,
		DestroyedAt:        r.DestroyedAt,
		CreatedAt:          r.CreatedAt,
		UpdatedAt:          r.UpdatedAt,
	}
}

type DestructionDateResponse struct {
	DestructionDate time.Time `json:"destruction_date"`
}

type DestroyResponse struct {
	RecordIDs       []id.RecordID `json:"record_ids"`
	DestructionDate time.Time     `json:"destruction_date"`
	DestroyedAt     time.Time     `json:"destroyed_at"`
}

func FromDestroyResult(r *service.DestroyResult) *DestroyResponse {
	return &DestroyResponse{
		RecordIDs:       r.RecordIDs,
		DestructionDate: r.DestructionDate,
		DestroyedAt:     r.DestroyedAt,
	}
}

type AccessResponse struct {
	LocationID id.LocationID `json:"location_id"`
	Allowed    bool          `json:"allowed"`
}

type AuditEventResponse struct {
	ID        string    `json:"id,omitempty"`
	Category  string    `json:"category"`
	Timestamp time.Time `json:"timestamp"`
	UserID    id.UserID `json:"user_id,omitempty"`
	Subject   string    `json:"subject,omitempty"`
	Action    string    `json:"action"`
	Decision  string    `json:"decision,omitempty"`
	Reason    string    `json:"reason,omitempty"`
	RequestID string    `json:"request_id,omitempty"`
}

type AuditEventsResponse struct {
	Events []AuditEventResponse `json:"events"`
}

func FromAuditEvents(events []audit.Event) *AuditEventsResponse {
	out := make([]AuditEventResponse, 0, len(events))
	for _, e := range events {
		category := e.Category
		if category == "" {
			category = audit.AuditEvent(e.Action).Category()
		}
		out = append(out, AuditEventResponse{
			ID:        e.ID,
			Category:  string(category),
			Timestamp: e.Timestamp,
			UserID:    e.UserID,
			Subject:   e.Subject,
			Action:    e.Action,
			Decision:  e.Decision,
			Reason:    e.Reason,
			RequestID: e.RequestID,
		})
	}
	return &AuditEventsResponse{Events: out}
}
