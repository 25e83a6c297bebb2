package service

import (
	"context"

	"retention/internal/authz"
	dErrors "retention/pkg/domain-errors"
	audit "retention/pkg/platform/audit"
	"retention/pkg/requestcontext"
)

const (
	DefaultAuditPageSize = 50
	MaxAuditPageSize     = 500
)

// RecentAuditEvents returns the newest audit events for administrators.
// A non-positive limit means DefaultAuditPageSize; larger limits are capped
// at MaxAuditPageSize.
func (s *Service) RecentAuditEvents(ctx context.Context, limit int) (events []audit.Event, err error) {
	ctx, finish := s.startSpan(ctx, "recent_audit_events")
	defer func() { finish(&err) }()

	userID := requestcontext.UserID(ctx)
	if !s.gate.AuthorizeRole(ctx, userID, authz.RoleAdministrator) {
		return nil, s.deny(ctx, userID, "recent_audit_events", "audit", "only administrators may read the audit trail")
	}
	if s.auditReader == nil {
		return nil, dErrors.New(dErrors.CodeInternal, "audit trail is not configured")
	}

	switch {
	case limit <= 0:
		limit = DefaultAuditPageSize
	case limit > MaxAuditPageSize:
		limit = MaxAuditPageSize
	}
	events, err = s.auditReader.ListRecent(ctx, limit)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to read audit trail")
	}
	return events, nil
}
