//go:build integration

package store_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"retention/internal/records/models"
	"retention/internal/records/store"
	id "retention/pkg/domain"
	"retention/pkg/platform/sentinel"
	"retention/pkg/testutil/containers"
)

type PostgresStoreSuite struct {
	suite.Suite
	postgres *containers.PostgresContainer
	store    *store.PostgresStore
	tx       *store.PostgresTx
}

func TestPostgresStoreSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	suite.Run(t, new(PostgresStoreSuite))
}

func (s *PostgresStoreSuite) SetupSuite() {
	mgr := containers.GetManager()
	s.postgres = mgr.GetPostgres(s.T())
	s.store = store.NewPostgres(s.postgres.DB)
	s.tx = store.NewPostgresTx(s.postgres.DB)
}

func (s *PostgresStoreSuite) SetupTest() {
	ctx := context.Background()
	err := s.postgres.TruncateTables(ctx, "records", "containers", "retention_schedules", "locations")
	s.Require().NoError(err)
	_, err = s.postgres.DB.ExecContext(ctx, `INSERT INTO locations (id, code, name) VALUES (1, 'LON', 'London')`)
	s.Require().NoError(err)
	s.Require().NoError(s.store.SaveSchedule(ctx, &models.Schedule{ID: 1, Name: "Finance", Years: 7}))
	s.Require().NoError(s.store.SaveContainer(ctx, &models.Container{ID: 1, Number: "LON-BOX-1", LocationID: 1}))
}

func (s *PostgresStoreSuite) create(number string) *models.Record {
	r, err := models.NewRecord(number, "title", 1, 1, 1, []id.ClassificationID{1, 2}, time.Now().UTC())
	s.Require().NoError(err)
	s.Require().NoError(s.store.Create(context.Background(), r))
	return r
}

func (s *PostgresStoreSuite) TestCreateAndFind() {
	ctx := context.Background()
	r := s.create("LON-ACME")
	s.NotZero(r.ID)
	s.Equal(7, r.ScheduleYears)

	got, err := s.store.FindByID(ctx, r.ID)
	s.Require().NoError(err)
	s.Equal("LON-ACME", got.Number)
	s.Equal([]id.ClassificationID{1, 2}, got.ClassificationPath)
	s.Equal(id.LocationID(1), got.LocationID)
	s.Nil(got.ClosedAt)

	_, err = s.store.FindByID(ctx, 9999)
	s.ErrorIs(err, sentinel.ErrNotFound)
}

func (s *PostgresStoreSuite) TestDuplicateNumberConflicts() {
	s.create("LON-ACME")
	r, _ := models.NewRecord("lon-acme", "dup", 1, 0, 0, nil, time.Now())
	s.ErrorIs(s.store.Create(context.Background(), r), sentinel.ErrConflict)
}

func (s *PostgresStoreSuite) TestFindByIDsKeepsRequestOrder() {
	a := s.create("LON-A1")
	b := s.create("LON-B1")

	got, err := s.store.FindByIDs(context.Background(), []id.RecordID{b.ID, 9999, a.ID})
	s.Require().NoError(err)
	s.Require().Len(got, 2)
	s.Equal(b.ID, got[0].ID)
	s.Equal(a.ID, got[1].ID)
}

func (s *PostgresStoreSuite) TestCloseAndDestroyInTx() {
	ctx := context.Background()
	r := s.create("LON-A1")
	closedAt := time.Date(2015, 1, 15, 0, 0, 0, 0, time.UTC)
	s.Require().NoError(s.store.Close(ctx, r.ID, closedAt))

	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		return s.store.MarkDestroyed(ctx, []id.RecordID{r.ID}, time.Now())
	})
	s.Require().NoError(err)

	got, err := s.store.FindByID(ctx, r.ID)
	s.Require().NoError(err)
	s.True(got.IsDestroyed())
	s.ErrorIs(s.store.Close(ctx, r.ID, closedAt), sentinel.ErrInvalidState)
}

func (s *PostgresStoreSuite) TestTxRollsBackOnError() {
	ctx := context.Background()
	r := s.create("LON-A1")

	boom := errors.New("boom")
	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		if err := s.store.MarkDestroyed(ctx, []id.RecordID{r.ID}, time.Now()); err != nil {
			return err
		}
		return boom
	})
	s.ErrorIs(err, boom)

	got, err := s.store.FindByID(ctx, r.ID)
	s.Require().NoError(err)
	s.False(got.IsDestroyed())
}

func (s *PostgresStoreSuite) TestMarkDestroyedPartialIsInvalidState() {
	r := s.create("LON-A1")
	err := s.store.MarkDestroyed(context.Background(), []id.RecordID{r.ID, 9999}, time.Now())
	s.ErrorIs(err, sentinel.ErrInvalidState)
}
