package service_test

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"retention/internal/authz"
	"retention/internal/records/models"
	"retention/internal/records/service"
	"retention/internal/records/service/mocks"
	id "retention/pkg/domain"
	dErrors "retention/pkg/domain-errors"
	audit "retention/pkg/platform/audit"
	txcontext "retention/pkg/platform/tx"
	"retention/pkg/requestcontext"
)

type mockDeps struct {
	store   *mocks.MockStore
	tx      *mocks.MockTxRunner
	checker *mocks.MockClassificationChecker
	gate    *mocks.MockAuthorizer
	locs    *mocks.MockLocationLookup
	auditor *mocks.MockAuditPublisher
}

func newMockedService(t *testing.T) (*service.Service, mockDeps) {
	t.Helper()
	ctrl := gomock.NewController(t)
	d := mockDeps{
		store:   mocks.NewMockStore(ctrl),
		tx:      mocks.NewMockTxRunner(ctrl),
		checker: mocks.NewMockClassificationChecker(ctrl),
		gate:    mocks.NewMockAuthorizer(ctrl),
		locs:    mocks.NewMockLocationLookup(ctrl),
		auditor: mocks.NewMockAuditPublisher(ctrl),
	}
	svc, err := service.New(d.store, d.tx, d.checker, d.gate, d.locs, service.WithAuditPublisher(d.auditor))
	require.NoError(t, err)
	return svc, d
}

func TestStoreFailuresAreInternal(t *testing.T) {
	svc, d := newMockedService(t)
	ctx := requestcontext.WithUserID(context.Background(), 1)

	d.store.EXPECT().FindByID(gomock.Any(), id.RecordID(5)).Return(nil, errors.New("connection reset"))

	_, err := svc.GetRecord(ctx, 5)
	assert.True(t, dErrors.HasCode(err, dErrors.CodeInternal))
}

func TestCloseRecordChecksEitherRole(t *testing.T) {
	svc, d := newMockedService(t)
	ctx := requestcontext.WithUserID(context.Background(), 9)

	d.gate.EXPECT().
		AuthorizeAny(gomock.Any(), id.UserID(9), authz.RoleAdministrator, authz.RoleRecordsManager).
		Return(false)
	d.auditor.EXPECT().Emit(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, e audit.Event) error {
		assert.Equal(t, string(audit.EventAccessDenied), e.Action)
		assert.Equal(t, "record:5", e.Subject)
		return nil
	})

	_, err := svc.CloseRecord(ctx, 5, nil)
	assert.True(t, dErrors.HasCode(err, dErrors.CodeForbidden))
}

func TestDestroyRecordsAuditFailureAbortsTransaction(t *testing.T) {
	svc, d := newMockedService(t)
	ctx := requestcontext.WithUserID(context.Background(), 1)
	closed := *date(2000, 1, 1)
	records := []*models.Record{{ID: 3, ScheduleYears: 1, ClosedAt: &closed}}

	d.store.EXPECT().FindByIDs(gomock.Any(), []id.RecordID{3}).Return(records, nil).Times(2)
	d.gate.EXPECT().AuthorizeRole(gomock.Any(), id.UserID(1), authz.RoleRecordsManager).Return(true)
	d.gate.EXPECT().CanAccessLocation(gomock.Any(), id.UserID(1), id.NoLocation).Return(true)
	d.tx.EXPECT().RunInTx(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, fn func(context.Context) error) error { return fn(ctx) })
	d.store.EXPECT().MarkDestroyed(gomock.Any(), []id.RecordID{3}, gomock.Any()).Return(nil)
	d.auditor.EXPECT().Emit(gomock.Any(), gomock.Any()).Return(errors.New("audit store down"))

	_, err := svc.DestroyRecords(ctx, []id.RecordID{3})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "audit store down")
}

func TestLocationChecksInsideTransactionRunInOrder(t *testing.T) {
	svc, d := newMockedService(t)
	ctx := requestcontext.WithUserID(context.Background(), 4)
	ctx = txcontext.WithTx(ctx, &sql.Tx{})
	records := []*models.Record{{ID: 1, LocationID: 1}, {ID: 2, LocationID: 2}}

	d.store.EXPECT().FindByIDs(gomock.Any(), []id.RecordID{1, 2}).Return(records, nil)
	d.gate.EXPECT().CanAccessLocation(gomock.Any(), id.UserID(4), id.LocationID(1)).Return(false)
	d.auditor.EXPECT().Emit(gomock.Any(), gomock.Any()).Return(nil)

	_, err := svc.DestructionDate(ctx, []id.RecordID{1, 2})
	assert.True(t, dErrors.HasCode(err, dErrors.CodeForbidden))
}
