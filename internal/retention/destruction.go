// Package retention computes when a set of records becomes eligible for
// destruction. Everything here is pure: callers resolve records and their
// schedules before calling in.
package retention

import (
	"fmt"
	"strings"
	"time"

	id "retention/pkg/domain"
)

// Record is the subset of a stored record the calculator reads.
// ScheduleYears is resolved from the record's retention schedule by the caller.
type Record struct {
	ID            id.RecordID
	ScheduleYears int
	ClosedAt      *time.Time
}

// FailureKind names the business rule a record set violated.
type FailureKind string

const (
	MissingClosureDate   FailureKind = "missing_closure_date"
	InconsistentSchedule FailureKind = "inconsistent_schedule"
)

// ValidationFailure is a recoverable business-rule violation. RecordIDs lists
// the offending records: every record without a closure date, or the first
// record whose schedule disagrees.
type ValidationFailure struct {
	Kind      FailureKind
	RecordIDs []id.RecordID
}

func (f *ValidationFailure) Error() string {
	switch f.Kind {
	case MissingClosureDate:
		if len(f.RecordIDs) == 0 {
			return "no records to compute a destruction date from"
		}
		return "records missing closure date: " + joinIDs(f.RecordIDs)
	case InconsistentSchedule:
		return "record has a different retention schedule: " + joinIDs(f.RecordIDs)
	default:
		return fmt.Sprintf("retention validation failed (%s)", f.Kind)
	}
}

// Details exposes the failure kind and offending ids for error responses.
func (f *ValidationFailure) Details() map[string]any {
	ids := f.RecordIDs
	if ids == nil {
		ids = []id.RecordID{}
	}
	return map[string]any{"failure_kind": string(f.Kind), "record_ids": ids}
}

// ComputeDestructionDate returns max(ClosedAt) plus the shared schedule's
// years. It fails with a *ValidationFailure when the set is empty, when any
// record is still open, or when schedules disagree. The schedule check stops
// at the first mismatch.
func ComputeDestructionDate(records []Record) (time.Time, error) {
	var missing []id.RecordID
	for _, r := range records {
		if r.ClosedAt == nil {
			missing = append(missing, r.ID)
		}
	}
	if len(records) == 0 || len(missing) > 0 {
		return time.Time{}, &ValidationFailure{Kind: MissingClosureDate, RecordIDs: missing}
	}

	years := records[0].ScheduleYears
	latest := *records[0].ClosedAt
	for _, r := range records[1:] {
		if r.ScheduleYears != years {
			return time.Time{}, &ValidationFailure{Kind: InconsistentSchedule, RecordIDs: []id.RecordID{r.ID}}
		}
		if r.ClosedAt.After(latest) {
			latest = *r.ClosedAt
		}
	}

	return AddYears(latest, years), nil
}

// IsExpired reports whether the destruction date of records is at or before now.
func IsExpired(records []Record, now time.Time) (bool, time.Time, error) {
	due, err := ComputeDestructionDate(records)
	if err != nil {
		return false, time.Time{}, err
	}
	return !due.After(now), due, nil
}

// AddYears adds whole calendar years keeping month, day and clock time.
// February 29 lands on February 28 when the target year is not a leap year;
// time.AddDate would roll it into March.
func AddYears(t time.Time, years int) time.Time {
	year, month, day := t.Date()
	target := year + years
	if last := daysIn(month, target); day > last {
		day = last
	}
	hour, minute, sec := t.Clock()
	return time.Date(target, month, day, hour, minute, sec, t.Nanosecond(), t.Location())
}

func daysIn(month time.Month, year int) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

func joinIDs(ids []id.RecordID) string {
	parts := make([]string, len(ids))
	for i, rid := range ids {
		parts[i] = rid.String()
	}
	return strings.Join(parts, ", ")
}
