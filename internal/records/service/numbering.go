package service

import (
	"context"
	"fmt"

	"retention/internal/numbering"
	dErrors "retention/pkg/domain-errors"
	audit "retention/pkg/platform/audit"
	"retention/pkg/requestcontext"
)

// NumberCheck is the outcome of matching a number against a pattern.
type NumberCheck struct {
	Pattern         numbering.Pattern
	Matches         bool
	LocationMatches bool
}

// ValidateNumber matches number against the pattern named by template and,
// for location-bearing patterns, checks the leading code against
// locationCode.
func (s *Service) ValidateNumber(ctx context.Context, template, number, locationCode string) (_ *NumberCheck, err error) {
	_, finish := s.startSpan(ctx, "validate_number")
	defer finish(&err)

	p, err := numbering.ParsePattern(template)
	if err != nil {
		return nil, err
	}
	check := &NumberCheck{
		Pattern:         p,
		Matches:         p.Match(number),
		LocationMatches: p.MatchesLocation(locationCode, number),
	}
	outcome := "match"
	if !check.Matches {
		outcome = "mismatch"
	}
	s.metrics.IncNumberCheck(p.Name(), outcome)
	return check, nil
}

// GenerateNumber fills the auto-generated field of base and returns a number
// not yet used by any stored record. Collisions are retried up to the
// configured attempt limit.
func (s *Service) GenerateNumber(ctx context.Context, template, base string) (_ string, err error) {
	ctx, finish := s.startSpan(ctx, "generate_number")
	defer finish(&err)

	p, err := numbering.ParsePattern(template)
	if err != nil {
		return "", err
	}
	if !p.HasAutoFill() {
		return "", dErrors.New(dErrors.CodeInvalidArgument,
			fmt.Sprintf("pattern %s has no generated field", p.Template()))
	}

	for attempt := 1; attempt <= s.maxAttempts; attempt++ {
		candidate := p.FillAutoGenField(base, s.random)
		if !p.Match(candidate) {
			return "", dErrors.New(dErrors.CodeInvalidArgument,
				fmt.Sprintf("base %q does not produce a %s number", base, p.Template()))
		}
		taken, err := s.store.ExistsByNumber(ctx, candidate)
		if err != nil {
			return "", translate(err, "record number")
		}
		if taken {
			s.metrics.IncNumberCollision()
			s.logger.DebugContext(ctx, "generated number collided",
				"pattern", p.Name(),
				"attempt", attempt,
			)
			continue
		}

		s.metrics.IncNumberGenerated(p.Name())
		_ = s.emit(ctx, audit.Event{
			UserID:   requestcontext.UserID(ctx),
			Subject:  candidate,
			Action:   string(audit.EventNumberGenerated),
			Decision: "issued",
		})
		return candidate, nil
	}

	return "", dErrors.New(dErrors.CodeConflict,
		fmt.Sprintf("no free %s number after %d attempts", p.Template(), s.maxAttempts))
}
