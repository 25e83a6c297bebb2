package retention

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	id "retention/pkg/domain"
)

func date(y int, m time.Month, d int) *time.Time {
	t := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	return &t
}

func requireFailure(t *testing.T, err error, kind FailureKind) *ValidationFailure {
	t.Helper()
	var failure *ValidationFailure
	require.True(t, errors.As(err, &failure), "expected *ValidationFailure, got %v", err)
	require.Equal(t, kind, failure.Kind)
	return failure
}

func TestComputeDestructionDate(t *testing.T) {
	t.Run("single record adds schedule years", func(t *testing.T) {
		got, err := ComputeDestructionDate([]Record{{ID: 1, ScheduleYears: 5, ClosedAt: date(2020, time.January, 15)}})
		require.NoError(t, err)
		assert.Equal(t, *date(2025, time.January, 15), got)
	})

	t.Run("uses the latest closure date", func(t *testing.T) {
		got, err := ComputeDestructionDate([]Record{
			{ID: 1, ScheduleYears: 7, ClosedAt: date(2019, time.March, 1)},
			{ID: 2, ScheduleYears: 7, ClosedAt: date(2021, time.June, 30)},
			{ID: 3, ScheduleYears: 7, ClosedAt: date(2020, time.December, 31)},
		})
		require.NoError(t, err)
		assert.Equal(t, *date(2028, time.June, 30), got)
	})

	t.Run("zero-year schedule is due at closure", func(t *testing.T) {
		got, err := ComputeDestructionDate([]Record{{ID: 1, ScheduleYears: 0, ClosedAt: date(2022, time.May, 5)}})
		require.NoError(t, err)
		assert.Equal(t, *date(2022, time.May, 5), got)
	})
}

func TestComputeDestructionDate_MissingClosureDate(t *testing.T) {
	t.Run("empty set", func(t *testing.T) {
		_, err := ComputeDestructionDate(nil)
		failure := requireFailure(t, err, MissingClosureDate)
		assert.Empty(t, failure.RecordIDs)
	})

	t.Run("lists exactly the open records", func(t *testing.T) {
		_, err := ComputeDestructionDate([]Record{
			{ID: 10, ScheduleYears: 5, ClosedAt: date(2020, time.January, 1)},
			{ID: 11, ScheduleYears: 5},
			{ID: 12, ScheduleYears: 9},
			{ID: 13, ScheduleYears: 5, ClosedAt: date(2020, time.January, 1)},
		})
		failure := requireFailure(t, err, MissingClosureDate)
		assert.Equal(t, []id.RecordID{11, 12}, failure.RecordIDs)
		assert.Contains(t, failure.Error(), "11, 12")
	})
}

func TestComputeDestructionDate_InconsistentSchedule(t *testing.T) {
	t.Run("identifies the record carrying the odd schedule", func(t *testing.T) {
		_, err := ComputeDestructionDate([]Record{
			{ID: 1, ScheduleYears: 5, ClosedAt: date(2020, time.January, 1)},
			{ID: 2, ScheduleYears: 5, ClosedAt: date(2020, time.January, 1)},
			{ID: 3, ScheduleYears: 7, ClosedAt: date(2020, time.January, 1)},
		})
		failure := requireFailure(t, err, InconsistentSchedule)
		assert.Equal(t, []id.RecordID{3}, failure.RecordIDs)
	})

	t.Run("fails fast on the first mismatch", func(t *testing.T) {
		_, err := ComputeDestructionDate([]Record{
			{ID: 1, ScheduleYears: 5, ClosedAt: date(2020, time.January, 1)},
			{ID: 2, ScheduleYears: 3, ClosedAt: date(2020, time.January, 1)},
			{ID: 3, ScheduleYears: 9, ClosedAt: date(2020, time.January, 1)},
		})
		failure := requireFailure(t, err, InconsistentSchedule)
		assert.Equal(t, []id.RecordID{2}, failure.RecordIDs)
	})

	t.Run("missing closure dates are reported before schedule mismatches", func(t *testing.T) {
		_, err := ComputeDestructionDate([]Record{
			{ID: 1, ScheduleYears: 5, ClosedAt: date(2020, time.January, 1)},
			{ID: 2, ScheduleYears: 7, ClosedAt: date(2020, time.January, 1)},
			{ID: 3, ScheduleYears: 5},
		})
		failure := requireFailure(t, err, MissingClosureDate)
		assert.Equal(t, []id.RecordID{3}, failure.RecordIDs)
	})
}

func TestAddYears(t *testing.T) {
	tests := []struct {
		name  string
		in    time.Time
		years int
		want  time.Time
	}{
		{"plain date", *date(2020, time.January, 15), 5, *date(2025, time.January, 15)},
		{"leap day to non-leap year", *date(2020, time.February, 29), 1, *date(2021, time.February, 28)},
		{"leap day to leap year", *date(2020, time.February, 29), 4, *date(2024, time.February, 29)},
		{"end of year", *date(2019, time.December, 31), 10, *date(2029, time.December, 31)},
		{
			"keeps clock and zone",
			time.Date(2020, time.March, 1, 13, 45, 0, 0, time.FixedZone("PST", -8*3600)),
			3,
			time.Date(2023, time.March, 1, 13, 45, 0, 0, time.FixedZone("PST", -8*3600)),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := AddYears(tt.in, tt.years)
			assert.True(t, tt.want.Equal(got), "want %s, got %s", tt.want, got)
		})
	}
}

func TestIsExpired(t *testing.T) {
	records := []Record{{ID: 1, ScheduleYears: 5, ClosedAt: date(2020, time.January, 15)}}

	expired, due, err := IsExpired(records, *date(2025, time.January, 15))
	require.NoError(t, err)
	assert.True(t, expired)
	assert.Equal(t, *date(2025, time.January, 15), due)

	expired, _, err = IsExpired(records, *date(2025, time.January, 14))
	require.NoError(t, err)
	assert.False(t, expired)

	_, _, err = IsExpired(nil, time.Now())
	requireFailure(t, err, MissingClosureDate)
}

func TestValidationFailureDetails(t *testing.T) {
	f := &ValidationFailure{Kind: MissingClosureDate}
	d := f.Details()
	assert.Equal(t, "missing_closure_date", d["failure_kind"])
	assert.Equal(t, []id.RecordID{}, d["record_ids"])

	f = &ValidationFailure{Kind: InconsistentSchedule, RecordIDs: []id.RecordID{4}}
	assert.Equal(t, []id.RecordID{4}, f.Details()["record_ids"])
}
