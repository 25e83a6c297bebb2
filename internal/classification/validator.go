// Package classification validates classification paths against the stored
// hierarchy. The validator performs no writes and holds no state beyond the
// lookup it is handed.
package classification

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"retention/internal/classification/models"
	id "retention/pkg/domain"
	dErrors "retention/pkg/domain-errors"
	"retention/pkg/platform/sentinel"
)

// MinPathLength is the number of levels a record's classification must carry.
const MinPathLength = 2

// Lookup is the read side of the classification store.
// FindByID returns an error wrapping sentinel.ErrNotFound for unknown ids.
type Lookup interface {
	FindByID(ctx context.Context, classificationID id.ClassificationID) (*models.Classification, error)
	FindChildren(ctx context.Context, classificationID id.ClassificationID) ([]id.ClassificationID, error)
}

// Validator checks classification paths.
type Validator struct {
	lookup Lookup
}

func NewValidator(lookup Lookup) *Validator {
	return &Validator{lookup: lookup}
}

// Validate reports whether path is an acceptable classification path.
func (v *Validator) Validate(ctx context.Context, path []id.ClassificationID) bool {
	return v.Check(ctx, path) == nil
}

// Check applies the path rules in order and returns the first violation:
//  1. at least MinPathLength elements (CodeInvalidArgument)
//  2. every id resolves (CodeNotFound, or CodeInternal on lookup failure)
//  3. the first element is a root classification (CodeValidation)
//
// Subsequent elements are not required to descend from their predecessor;
// see CheckLineage for that stricter rule.
func (v *Validator) Check(ctx context.Context, path []id.ClassificationID) error {
	if len(path) < MinPathLength {
		return dErrors.New(dErrors.CodeInvalidArgument,
			fmt.Sprintf("classification path must have at least %d levels", MinPathLength))
	}

	resolved, err := v.resolve(ctx, path)
	if err != nil {
		return err
	}

	if !resolved[0].IsRoot() {
		return dErrors.New(dErrors.CodeValidation,
			fmt.Sprintf("classification %d is not a root classification", path[0]))
	}
	return nil
}

// CheckLineage runs Check and additionally requires every element to be a
// stored child of the element before it.
func (v *Validator) CheckLineage(ctx context.Context, path []id.ClassificationID) error {
	if err := v.Check(ctx, path); err != nil {
		return err
	}
	for i := 1; i < len(path); i++ {
		children, err := v.lookup.FindChildren(ctx, path[i-1])
		if err != nil {
			return dErrors.Wrap(err, dErrors.CodeInternal, "failed to load classification children")
		}
		if !slices.Contains(children, path[i]) {
			return dErrors.New(dErrors.CodeValidation,
				fmt.Sprintf("classification %d is not a child of %d", path[i], path[i-1]))
		}
	}
	return nil
}

func (v *Validator) resolve(ctx context.Context, path []id.ClassificationID) ([]*models.Classification, error) {
	resolved := make([]*models.Classification, 0, len(path))
	for _, classificationID := range path {
		c, err := v.lookup.FindByID(ctx, classificationID)
		if err != nil {
			if errors.Is(err, sentinel.ErrNotFound) {
				return nil, dErrors.New(dErrors.CodeNotFound,
					fmt.Sprintf("classification %d not found", classificationID))
			}
			return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to load classification")
		}
		resolved = append(resolved, c)
	}
	return resolved, nil
}
