package store

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"retention/internal/records/models"
	id "retention/pkg/domain"
	"retention/pkg/platform/sentinel"
)

type InMemorySuite struct {
	suite.Suite
	ctx   context.Context
	store *InMemory
}

func TestInMemorySuite(t *testing.T) {
	suite.Run(t, new(InMemorySuite))
}

func (s *InMemorySuite) SetupTest() {
	s.ctx = context.Background()
	s.store = NewInMemory()
	s.Require().NoError(s.store.SaveSchedule(s.ctx, &models.Schedule{ID: 1, Name: "Finance", Years: 7}))
	s.Require().NoError(s.store.SaveContainer(s.ctx, &models.Container{ID: 1, Number: "LON-BOX-1", LocationID: 1}))
}

func (s *InMemorySuite) newRecord(number string, container id.ContainerID) *models.Record {
	r, err := models.NewRecord(number, "title", 1, container, 1, []id.ClassificationID{1, 2}, time.Now())
	s.Require().NoError(err)
	s.Require().NoError(s.store.Create(s.ctx, r))
	return r
}

func (s *InMemorySuite) TestCreate() {
	s.Run("assigns ids and resolves schedule years", func() {
		r := s.newRecord("LON-ACME", 1)
		s.Equal(id.RecordID(1), r.ID)
		s.Equal(7, r.ScheduleYears)
	})

	s.Run("rejects duplicate numbers case-insensitively", func() {
		r, _ := models.NewRecord("lon-acme", "dup", 1, 0, 0, nil, time.Now())
		err := s.store.Create(s.ctx, r)
		s.ErrorIs(err, sentinel.ErrConflict)
	})

	s.Run("rejects unknown schedule", func() {
		r, _ := models.NewRecord("LON-OTHER", "x", 99, 0, 0, nil, time.Now())
		s.ErrorIs(s.store.Create(s.ctx, r), sentinel.ErrNotFound)
	})

	s.Run("rejects unknown container", func() {
		r, _ := models.NewRecord("LON-OTHER", "x", 1, 42, 0, nil, time.Now())
		s.ErrorIs(s.store.Create(s.ctx, r), sentinel.ErrNotFound)
	})
}

func (s *InMemorySuite) TestFindByIDs() {
	a := s.newRecord("LON-A1", 1)
	b := s.newRecord("LON-B1", 0)

	got, err := s.store.FindByIDs(s.ctx, []id.RecordID{b.ID, 999, a.ID, b.ID})
	s.Require().NoError(err)
	s.Require().Len(got, 2)
	s.Equal(b.ID, got[0].ID)
	s.Equal(a.ID, got[1].ID)
}

func (s *InMemorySuite) TestFindByContainer() {
	s.newRecord("LON-A1", 1)
	s.newRecord("LON-B1", 0)
	s.newRecord("LON-C1", 1)

	got, err := s.store.FindByContainer(s.ctx, 1)
	s.Require().NoError(err)
	s.Require().Len(got, 2)
	s.Less(got[0].ID, got[1].ID)
}

func (s *InMemorySuite) TestReturnedRecordsAreCopies() {
	r := s.newRecord("LON-A1", 1)
	got, err := s.store.FindByID(s.ctx, r.ID)
	s.Require().NoError(err)
	got.Title = "changed"

	again, err := s.store.FindByID(s.ctx, r.ID)
	s.Require().NoError(err)
	s.Equal("title", again.Title)
}

func (s *InMemorySuite) TestCloseAndDestroy() {
	r := s.newRecord("LON-A1", 1)
	closedAt := time.Date(2020, 1, 15, 0, 0, 0, 0, time.UTC)

	s.Require().NoError(s.store.Close(s.ctx, r.ID, closedAt))
	got, err := s.store.FindByID(s.ctx, r.ID)
	s.Require().NoError(err)
	s.Require().NotNil(got.ClosedAt)
	s.Equal(closedAt, *got.ClosedAt)

	s.ErrorIs(s.store.Close(s.ctx, 999, closedAt), sentinel.ErrNotFound)

	destroyedAt := closedAt.AddDate(8, 0, 0)
	s.Require().NoError(s.store.MarkDestroyed(s.ctx, []id.RecordID{r.ID}, destroyedAt))
	s.ErrorIs(s.store.MarkDestroyed(s.ctx, []id.RecordID{r.ID}, destroyedAt), sentinel.ErrInvalidState)
	s.ErrorIs(s.store.Close(s.ctx, r.ID, closedAt), sentinel.ErrInvalidState)
}

func (s *InMemorySuite) TestMarkDestroyedIsAllOrNothing() {
	r := s.newRecord("LON-A1", 1)
	err := s.store.MarkDestroyed(s.ctx, []id.RecordID{r.ID, 999}, time.Now())
	s.ErrorIs(err, sentinel.ErrNotFound)

	got, err := s.store.FindByID(s.ctx, r.ID)
	s.Require().NoError(err)
	s.False(got.IsDestroyed())
}

func (s *InMemorySuite) TestExistsByNumber() {
	s.newRecord("LON-A1", 1)
	ok, err := s.store.ExistsByNumber(s.ctx, "lon-a1")
	s.Require().NoError(err)
	s.True(ok)

	ok, err = s.store.ExistsByNumber(s.ctx, "LON-Z9")
	s.Require().NoError(err)
	s.False(ok)
}

func (s *InMemorySuite) TestSchedulesAndContainers() {
	sched := &models.Schedule{Name: "Mail", Years: 2}
	s.Require().NoError(s.store.SaveSchedule(s.ctx, sched))
	s.Equal(id.ScheduleID(2), sched.ID)

	_, err := s.store.FindSchedule(s.ctx, 77)
	s.ErrorIs(err, sentinel.ErrNotFound)

	c, err := s.store.FindContainer(s.ctx, 1)
	s.Require().NoError(err)
	s.Equal(id.LocationID(1), c.LocationID)
}

func TestMemoryTx(t *testing.T) {
	tx := NewMemoryTx()
	ran := false
	err := tx.RunInTx(context.Background(), func(ctx context.Context) error {
		_, hasDeadline := ctx.Deadline()
		ran = hasDeadline
		return nil
	})
	if err != nil || !ran {
		t.Fatalf("expected fn to run with a deadline, err=%v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := tx.RunInTx(ctx, func(context.Context) error { return nil }); err == nil {
		t.Fatal("expected cancelled context to abort")
	}
}
