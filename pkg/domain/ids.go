package domain

import (
	"strconv"

	dErrors "retention/pkg/domain-errors"
)

// Typed identifiers. All entities are keyed by positive int64 ids; the
// distinct types keep a RecordID from being passed where a LocationID is
// expected.
type (
	ClassificationID int64
	RecordID         int64
	ContainerID      int64
	ScheduleID       int64
	LocationID       int64
	UserID           int64
)

// NoLocation marks a record or container that is not placed at a location.
// It is always accessible regardless of restriction.
const NoLocation LocationID = 0

func (id ClassificationID) String() string { return strconv.FormatInt(int64(id), 10) }
func (id RecordID) String() string         { return strconv.FormatInt(int64(id), 10) }
func (id ContainerID) String() string      { return strconv.FormatInt(int64(id), 10) }
func (id ScheduleID) String() string       { return strconv.FormatInt(int64(id), 10) }
func (id LocationID) String() string       { return strconv.FormatInt(int64(id), 10) }
func (id UserID) String() string           { return strconv.FormatInt(int64(id), 10) }

func (id UserID) IsNil() bool { return id <= 0 }

// IsNone reports whether the id denotes "no location".
func (id LocationID) IsNone() bool { return id == NoLocation }

func ParseClassificationID(s string) (ClassificationID, error) {
	return parseID[ClassificationID](s, "classification", false)
}

func ParseRecordID(s string) (RecordID, error) {
	return parseID[RecordID](s, "record", false)
}

func ParseContainerID(s string) (ContainerID, error) {
	return parseID[ContainerID](s, "container", false)
}

func ParseScheduleID(s string) (ScheduleID, error) {
	return parseID[ScheduleID](s, "schedule", false)
}

// ParseLocationID accepts "0" as NoLocation.
func ParseLocationID(s string) (LocationID, error) {
	return parseID[LocationID](s, "location", true)
}

func ParseUserID(s string) (UserID, error) {
	return parseID[UserID](s, "user", false)
}

// maxIDLen is the number of decimal digits in math.MaxInt64.
const maxIDLen = 19

func parseID[T ~int64](s, kind string, allowZero bool) (T, error) {
	if s == "" {
		return 0, dErrors.New(dErrors.CodeInvalidInput, kind+" id is required")
	}
	if len(s) > maxIDLen {
		return 0, dErrors.New(dErrors.CodeInvalidInput, "invalid "+kind+" id")
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return 0, dErrors.New(dErrors.CodeInvalidInput, "invalid "+kind+" id")
		}
	}
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, dErrors.New(dErrors.CodeInvalidInput, "invalid "+kind+" id")
	}
	if n == 0 && !allowZero {
		return 0, dErrors.New(dErrors.CodeInvalidInput, kind+" id must be positive")
	}
	return T(n), nil
}
