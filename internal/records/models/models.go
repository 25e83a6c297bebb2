// Package models holds the record register's entities.
package models

import (
	"strings"
	"time"

	"retention/internal/retention"
	id "retention/pkg/domain"
	dErrors "retention/pkg/domain-errors"
)

// Schedule is a retention schedule: how many years a closed record is kept.
type Schedule struct {
	ID    id.ScheduleID `json:"id"`
	Name  string        `json:"name"`
	Years int           `json:"years"`
}

// Container is a box or folder grouping records at one location.
type Container struct {
	ID         id.ContainerID `json:"id"`
	Number     string         `json:"number"`
	LocationID id.LocationID  `json:"location_id"`
}

// Record is one registered record. ScheduleYears is resolved from the
// schedule when the record is loaded.
type Record struct {
	ID                 id.RecordID
	Number             string
	Title              string
	ContainerID        id.ContainerID
	ScheduleID         id.ScheduleID
	ScheduleYears      int
	ClassificationPath []id.ClassificationID
	LocationID         id.LocationID
	ClosedAt           *time.Time
	DestroyedAt        *time.Time
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

func (r *Record) IsClosed() bool {
	return r.ClosedAt != nil
}

func (r *Record) IsDestroyed() bool {
	return r.DestroyedAt != nil
}

// ForRetention projects the record onto the destruction-date calculator's input.
func (r *Record) ForRetention() retention.Record {
	return retention.Record{
		ID:            r.ID,
		ScheduleYears: r.ScheduleYears,
		ClosedAt:      r.ClosedAt,
	}
}

// ForRetentionAll projects a record set.
func ForRetentionAll(records []*Record) []retention.Record {
	out := make([]retention.Record, 0, len(records))
	for _, r := range records {
		out = append(out, r.ForRetention())
	}
	return out
}

// NewRecord validates invariants at construction. The id is assigned by the store.
func NewRecord(number, title string, scheduleID id.ScheduleID, containerID id.ContainerID,
	locationID id.LocationID, path []id.ClassificationID, now time.Time) (*Record, error) {
	number = strings.TrimSpace(number)
	title = strings.TrimSpace(title)
	if number == "" {
		return nil, dErrors.New(dErrors.CodeInvariantViolation, "record number cannot be empty")
	}
	if title == "" {
		return nil, dErrors.New(dErrors.CodeInvariantViolation, "record title cannot be empty")
	}
	if scheduleID <= 0 {
		return nil, dErrors.New(dErrors.CodeInvariantViolation, "record requires a retention schedule")
	}
	return &Record{
		Number:             number,
		Title:              title,
		ContainerID:        containerID,
		ScheduleID:         scheduleID,
		ClassificationPath: append([]id.ClassificationID(nil), path...),
		LocationID:         locationID,
		CreatedAt:          now,
		UpdatedAt:          now,
	}, nil
}

// Clone returns a deep copy safe to hand out of a store.
func (r *Record) Clone() *Record {
	c := *r
	c.ClassificationPath = append([]id.ClassificationID(nil), r.ClassificationPath...)
	if r.ClosedAt != nil {
		t := *r.ClosedAt
		c.ClosedAt = &t
	}
	if r.DestroyedAt != nil {
		t := *r.DestroyedAt
		c.DestroyedAt = &t
	}
	return &c
}
