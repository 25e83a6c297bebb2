package service

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"retention/internal/authz"
	"retention/internal/records/models"
	"retention/internal/retention"
	id "retention/pkg/domain"
	dErrors "retention/pkg/domain-errors"
	audit "retention/pkg/platform/audit"
	txcontext "retention/pkg/platform/tx"
	"retention/pkg/requestcontext"
)

// DestroyResult reports a completed destruction.
type DestroyResult struct {
	RecordIDs       []id.RecordID
	DestructionDate time.Time
	DestroyedAt     time.Time
}

// DestructionDate computes when the given records become eligible for
// destruction. Every id must exist and sit at a location the caller can
// access.
func (s *Service) DestructionDate(ctx context.Context, ids []id.RecordID) (_ time.Time, err error) {
	ctx, finish := s.startSpan(ctx, "destruction_date")
	defer finish(&err)

	records, err := s.loadAll(ctx, ids)
	if err != nil {
		return time.Time{}, err
	}
	if err := s.checkLocations(ctx, "destruction_date", locationsOf(records)...); err != nil {
		return time.Time{}, err
	}
	return s.compute(ctx, "records:"+joinRecordIDs(ids), records)
}

// ContainerDestructionDate computes the destruction date of the records in a
// container that have not been destroyed yet.
func (s *Service) ContainerDestructionDate(ctx context.Context, containerID id.ContainerID) (_ time.Time, err error) {
	ctx, finish := s.startSpan(ctx, "container_destruction_date")
	defer finish(&err)

	container, err := s.store.FindContainer(ctx, containerID)
	if err != nil {
		return time.Time{}, translate(err, "container "+containerID.String())
	}
	records, err := s.store.FindByContainer(ctx, containerID)
	if err != nil {
		return time.Time{}, translate(err, "container records")
	}
	live := slices.DeleteFunc(records, func(r *models.Record) bool { return r.IsDestroyed() })

	locations := append(locationsOf(live), container.LocationID)
	if err := s.checkLocations(ctx, "container_destruction_date", locations...); err != nil {
		return time.Time{}, err
	}
	return s.compute(ctx, "container:"+containerID.String(), live)
}

// DestroyRecords marks the given records destroyed. The caller must be a
// records manager with access to every record's location, and the set's
// destruction date must have passed. The records are re-read and updated in
// one transaction; the compliance audit event is written inside it and only
// mirrored once the transaction commits.
func (s *Service) DestroyRecords(ctx context.Context, ids []id.RecordID) (_ *DestroyResult, err error) {
	ctx, finish := s.startSpan(ctx, "destroy_records")
	defer finish(&err)

	userID := requestcontext.UserID(ctx)
	records, err := s.loadAll(ctx, ids)
	if err != nil {
		return nil, err
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		if !s.gate.AuthorizeRole(gctx, userID, authz.RoleRecordsManager) {
			return s.deny(gctx, userID, "destroy_records", "records:"+joinRecordIDs(ids),
				"destroying records requires records manager role")
		}
		return nil
	})
	g.Go(func() error {
		return s.checkLocations(gctx, "destroy_records", locationsOf(records)...)
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	now := requestcontext.Now(ctx)
	result := &DestroyResult{DestroyedAt: now}
	err = s.runInTx(ctx, func(ctx context.Context) error {
		current, err := s.loadAll(ctx, ids)
		if err != nil {
			return err
		}
		for _, r := range current {
			if r.IsDestroyed() {
				return dErrors.New(dErrors.CodeInvalidState, "record "+r.ID.String()+" has already been destroyed")
			}
		}
		expired, due, err := retention.IsExpired(models.ForRetentionAll(current), now)
		if err != nil {
			return asValidation(err)
		}
		if !expired {
			return dErrors.New(dErrors.CodeInvalidState,
				"retention has not expired; records may be destroyed from "+due.Format(time.DateOnly))
		}
		ordered := recordIDsOf(current)
		if err := s.store.MarkDestroyed(ctx, ordered, now); err != nil {
			return translate(err, "records")
		}
		result.RecordIDs = ordered
		result.DestructionDate = due
		return s.emit(ctx, audit.Event{
			UserID:   userID,
			Subject:  "records:" + joinRecordIDs(ordered),
			Action:   string(audit.EventRecordsDestroyed),
			Decision: "destroyed",
			Reason:   "retention expired " + due.Format(time.RFC3339),
		})
	})
	if err != nil {
		return nil, err
	}

	s.metrics.AddRecordsDestroyed(len(result.RecordIDs))
	s.logger.InfoContext(ctx, "records destroyed",
		"record_ids", result.RecordIDs,
		"user_id", userID,
		"destruction_date", result.DestructionDate,
	)
	return result, nil
}

func (s *Service) compute(ctx context.Context, subject string, records []*models.Record) (time.Time, error) {
	due, err := retention.ComputeDestructionDate(models.ForRetentionAll(records))
	if err != nil {
		s.metrics.IncDestructionDate("rejected")
		return time.Time{}, asValidation(err)
	}
	s.metrics.IncDestructionDate("computed")
	_ = s.emit(ctx, audit.Event{
		UserID:   requestcontext.UserID(ctx),
		Subject:  subject,
		Action:   string(audit.EventDestructionDateComputed),
		Decision: "computed",
		Reason:   due.Format(time.RFC3339),
	})
	return due, nil
}

// loadAll fetches every id or fails with CodeNotFound naming the missing ones.
func (s *Service) loadAll(ctx context.Context, ids []id.RecordID) ([]*models.Record, error) {
	if len(ids) == 0 {
		return nil, dErrors.New(dErrors.CodeInvalidArgument, "record_ids cannot be empty")
	}
	records, err := s.store.FindByIDs(ctx, ids)
	if err != nil {
		return nil, translate(err, "records")
	}
	found := make(map[id.RecordID]struct{}, len(records))
	for _, r := range records {
		found[r.ID] = struct{}{}
	}
	var missing []id.RecordID
	for _, rid := range ids {
		if _, ok := found[rid]; !ok && !slices.Contains(missing, rid) {
			missing = append(missing, rid)
		}
	}
	if len(missing) > 0 {
		return nil, dErrors.New(dErrors.CodeNotFound, "records not found: "+joinRecordIDs(missing))
	}
	return records, nil
}

// checkLocations verifies the caller can access every distinct location.
// Lookups run concurrently, except inside a SQL transaction where they share
// its single connection and run in order.
func (s *Service) checkLocations(ctx context.Context, operation string, locations ...id.LocationID) error {
	userID := requestcontext.UserID(ctx)
	distinct := slices.Compact(slices.Sorted(slices.Values(locations)))
	check := func(ctx context.Context, locationID id.LocationID) error {
		if !s.gate.CanAccessLocation(ctx, userID, locationID) {
			return s.deny(ctx, userID, operation, "location:"+locationID.String(),
				"user cannot access location "+locationID.String())
		}
		return nil
	}

	if _, inTx := txcontext.From(ctx); inTx || len(distinct) == 1 {
		for _, locationID := range distinct {
			if err := check(ctx, locationID); err != nil {
				return err
			}
		}
		return nil
	}

	g, gctx := errgroup.WithContext(ctx)
	for _, locationID := range distinct {
		g.Go(func() error { return check(gctx, locationID) })
	}
	return g.Wait()
}

// asValidation maps a calculator failure onto CodeValidation, keeping the
// *retention.ValidationFailure in the chain for error details.
func asValidation(err error) error {
	var failure *retention.ValidationFailure
	if errors.As(err, &failure) {
		return dErrors.Wrap(err, dErrors.CodeValidation, fmt.Sprintf("cannot compute destruction date (%s)", failure.Kind))
	}
	return dErrors.Wrap(err, dErrors.CodeInternal, "failed to compute destruction date")
}

func locationsOf(records []*models.Record) []id.LocationID {
	out := make([]id.LocationID, 0, len(records))
	for _, r := range records {
		out = append(out, r.LocationID)
	}
	return out
}

func recordIDsOf(records []*models.Record) []id.RecordID {
	out := make([]id.RecordID, 0, len(records))
	for _, r := range records {
		out = append(out, r.ID)
	}
	return out
}

func joinRecordIDs(ids []id.RecordID) string {
	parts := make([]string, len(ids))
	for i, rid := range ids {
		parts[i] = rid.String()
	}
	return strings.Join(parts, ",")
}
