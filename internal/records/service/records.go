package service

import (
	"context"
	"fmt"
	"time"

	"retention/internal/authz"
	"retention/internal/numbering"
	"retention/internal/records/models"
	id "retention/pkg/domain"
	dErrors "retention/pkg/domain-errors"
	audit "retention/pkg/platform/audit"
	"retention/pkg/requestcontext"
)

// CreateRecordInput carries a new record. LocationID may be left zero when
// the container supplies it.
type CreateRecordInput struct {
	Number             string
	Title              string
	Pattern            string
	ContainerID        id.ContainerID
	ScheduleID         id.ScheduleID
	LocationID         id.LocationID
	ClassificationPath []id.ClassificationID
}

// CreateRecord registers a record after the caller's location access, the
// number format and the classification path have been checked.
func (s *Service) CreateRecord(ctx context.Context, in CreateRecordInput) (_ *models.Record, err error) {
	ctx, finish := s.startSpan(ctx, "create_record")
	defer finish(&err)

	userID := requestcontext.UserID(ctx)

	locationID, err := s.placement(ctx, in.ContainerID, in.LocationID)
	if err != nil {
		return nil, err
	}
	if !s.gate.CanAccessLocation(ctx, userID, locationID) {
		return nil, s.deny(ctx, userID, "create_record", "location:"+locationID.String(),
			"user cannot access location "+locationID.String())
	}

	if err := s.checkNumber(ctx, in.Pattern, in.Number, locationID); err != nil {
		return nil, err
	}
	if err := s.ValidateClassification(ctx, in.ClassificationPath); err != nil {
		return nil, err
	}
	if _, err := s.store.FindSchedule(ctx, in.ScheduleID); err != nil {
		return nil, translate(err, "retention schedule")
	}

	record, err := models.NewRecord(in.Number, in.Title, in.ScheduleID, in.ContainerID,
		locationID, in.ClassificationPath, requestcontext.Now(ctx))
	if err != nil {
		return nil, err
	}
	if err := s.store.Create(ctx, record); err != nil {
		return nil, translate(err, "record "+record.Number)
	}

	s.logger.InfoContext(ctx, "record created",
		"record_id", record.ID,
		"number", record.Number,
		"user_id", userID,
	)
	_ = s.emit(ctx, audit.Event{
		UserID:   userID,
		Subject:  "record:" + record.ID.String(),
		Action:   string(audit.EventRecordCreated),
		Decision: "created",
		Reason:   record.Number,
	})
	return record, nil
}

// placement resolves a record's location. A container's location wins when
// none is given; an explicit location must agree with the container's.
func (s *Service) placement(ctx context.Context, containerID id.ContainerID, locationID id.LocationID) (id.LocationID, error) {
	if containerID == 0 {
		return locationID, nil
	}
	container, err := s.store.FindContainer(ctx, containerID)
	if err != nil {
		return 0, translate(err, "container "+containerID.String())
	}
	if locationID.IsNone() {
		return container.LocationID, nil
	}
	if container.LocationID != locationID {
		return 0, dErrors.New(dErrors.CodeInvalidArgument,
			fmt.Sprintf("record location %d differs from container location %d", locationID, container.LocationID))
	}
	return locationID, nil
}

func (s *Service) checkNumber(ctx context.Context, template, number string, locationID id.LocationID) error {
	p, err := numbering.ParsePattern(template)
	if err != nil {
		return err
	}
	if !p.Match(number) {
		s.metrics.IncNumberCheck(p.Name(), "mismatch")
		return dErrors.New(dErrors.CodeValidation,
			fmt.Sprintf("number %q does not match pattern %s", number, p.Template()))
	}
	s.metrics.IncNumberCheck(p.Name(), "match")
	if !p.HasLocation() {
		return nil
	}
	if locationID.IsNone() {
		return dErrors.New(dErrors.CodeValidation,
			fmt.Sprintf("pattern %s requires a location", p.Template()))
	}
	loc, err := s.locations.FindLocation(ctx, locationID)
	if err != nil {
		return translate(err, "location "+locationID.String())
	}
	if !p.MatchesLocation(loc.Code, number) {
		return dErrors.New(dErrors.CodeValidation,
			fmt.Sprintf("number %q does not start with location code %s", number, loc.Code))
	}
	return nil
}

// GetRecord loads a record the caller may see.
func (s *Service) GetRecord(ctx context.Context, recordID id.RecordID) (_ *models.Record, err error) {
	ctx, finish := s.startSpan(ctx, "get_record")
	defer finish(&err)

	record, err := s.store.FindByID(ctx, recordID)
	if err != nil {
		return nil, translate(err, "record "+recordID.String())
	}
	if err := s.checkLocations(ctx, "get_record", record.LocationID); err != nil {
		return nil, err
	}
	return record, nil
}

// CloseRecord sets the closure date of an open record. Only administrators
// and records managers may close records. A nil closedAt means now.
func (s *Service) CloseRecord(ctx context.Context, recordID id.RecordID, closedAt *time.Time) (_ *models.Record, err error) {
	ctx, finish := s.startSpan(ctx, "close_record")
	defer finish(&err)

	userID := requestcontext.UserID(ctx)
	subject := "record:" + recordID.String()
	if !s.gate.AuthorizeAny(ctx, userID, authz.RoleAdministrator, authz.RoleRecordsManager) {
		return nil, s.deny(ctx, userID, "close_record", subject, "closing records requires administrator or records manager role")
	}

	now := requestcontext.Now(ctx)
	at := now
	if closedAt != nil {
		if closedAt.After(now) {
			return nil, dErrors.New(dErrors.CodeInvalidArgument, "closure date cannot be in the future")
		}
		at = *closedAt
	}

	var closed *models.Record
	err = s.runInTx(ctx, func(ctx context.Context) error {
		record, err := s.store.FindByID(ctx, recordID)
		if err != nil {
			return translate(err, "record "+recordID.String())
		}
		if err := s.checkLocations(ctx, "close_record", record.LocationID); err != nil {
			return err
		}
		if record.IsDestroyed() {
			return dErrors.New(dErrors.CodeInvalidState, "record "+recordID.String()+" has been destroyed")
		}
		if record.IsClosed() {
			return dErrors.New(dErrors.CodeInvalidState, "record "+recordID.String()+" is already closed")
		}
		if err := s.store.Close(ctx, recordID, at); err != nil {
			return translate(err, "record "+recordID.String())
		}
		record.ClosedAt = &at
		record.UpdatedAt = now
		closed = record
		return nil
	})
	if err != nil {
		return nil, err
	}

	_ = s.emit(ctx, audit.Event{
		UserID:   userID,
		Subject:  subject,
		Action:   string(audit.EventRecordClosed),
		Decision: "closed",
		Reason:   at.Format(time.RFC3339),
	})
	return closed, nil
}

// CanAccessLocation reports whether the caller may access locationID.
func (s *Service) CanAccessLocation(ctx context.Context, locationID id.LocationID) bool {
	return s.gate.CanAccessLocation(ctx, requestcontext.UserID(ctx), locationID)
}
