package models

import (
	"strings"

	id "retention/pkg/domain"
	dErrors "retention/pkg/domain-errors"
)

// Type flags whether a classification may head a path.
type Type string

const (
	TypeRoot Type = "root"
	TypeLeaf Type = "leaf"
)

// ParseType normalizes and validates a stored or submitted type flag.
func ParseType(s string) (Type, error) {
	switch t := Type(strings.ToLower(strings.TrimSpace(s))); t {
	case TypeRoot, TypeLeaf:
		return t, nil
	default:
		return "", dErrors.New(dErrors.CodeInvalidInput, "unknown classification type: "+s)
	}
}

// Classification is one node of the topic taxonomy. The parent/child relation
// lives in the store as an adjacency lookup, never on the entity.
type Classification struct {
	ID   id.ClassificationID `json:"id"`
	Name string              `json:"name"`
	Type Type                `json:"type"`
}

func (c *Classification) IsRoot() bool {
	return c.Type == TypeRoot
}

// NewClassification validates invariants at construction.
func NewClassification(classificationID id.ClassificationID, name string, t Type) (*Classification, error) {
	name = strings.TrimSpace(name)
	if classificationID <= 0 {
		return nil, dErrors.New(dErrors.CodeInvariantViolation, "classification id must be positive")
	}
	if name == "" {
		return nil, dErrors.New(dErrors.CodeInvariantViolation, "classification name cannot be empty")
	}
	if t != TypeRoot && t != TypeLeaf {
		return nil, dErrors.New(dErrors.CodeInvariantViolation, "classification type must be root or leaf")
	}
	return &Classification{ID: classificationID, Name: name, Type: t}, nil
}
