package service

import (
	"context"

	id "retention/pkg/domain"
)

// ValidateClassification checks a classification path against the stored
// hierarchy. A nil error means the path is acceptable.
func (s *Service) ValidateClassification(ctx context.Context, path []id.ClassificationID) (err error) {
	ctx, finish := s.startSpan(ctx, "validate_classification")
	defer finish(&err)

	err = s.classifications.Check(ctx, path)
	if err != nil {
		s.metrics.IncClassificationCheck("invalid")
		return err
	}
	s.metrics.IncClassificationCheck("valid")
	return nil
}
