package handler

import (
	"strings"
	"time"

	id "retention/pkg/domain"
	dErrors "retention/pkg/domain-errors"
)

// maxBatch bounds the number of record ids in one request.
const maxBatch = 500

// ValidateClassificationRequest is the body of POST /classifications/validate.
type ValidateClassificationRequest struct {
	Path []id.ClassificationID `json:"path" validate:"required,max=32"`
}

// ValidateNumberRequest is the body of POST /numbering/validate.
type ValidateNumberRequest struct {
	Pattern      string `json:"pattern" validate:"required,max=32"`
	Number       string `json:"number" validate:"required,max=64"`
	LocationCode string `json:"location_code,omitempty" validate:"omitempty,len=3"`
}

func (r *ValidateNumberRequest) Normalize() {
	r.Pattern = strings.TrimSpace(r.Pattern)
	r.Number = strings.TrimSpace(r.Number)
	r.LocationCode = strings.TrimSpace(r.LocationCode)
}

// GenerateNumberRequest is the body of POST /numbering/generate.
type GenerateNumberRequest struct {
	Pattern string `json:"pattern" validate:"required,max=32"`
	Base    string `json:"base" validate:"required,max=48"`
}

func (r *GenerateNumberRequest) Normalize() {
	r.Pattern = strings.TrimSpace(r.Pattern)
	r.Base = strings.TrimSpace(r.Base)
}

// CreateRecordRequest is the body of POST /records.
type CreateRecordRequest struct {
	Number             string                `json:"number" validate:"required,max=64"`
	Title              string                `json:"title" validate:"required,max=255"`
	Pattern            string                `json:"pattern" validate:"required,max=32"`
	ContainerID        id.ContainerID        `json:"container_id,omitempty" validate:"gte=0"`
	ScheduleID         id.ScheduleID         `json:"schedule_id" validate:"required,gt=0"`
	LocationID         id.LocationID         `json:"location_id,omitempty" validate:"gte=0"`
	ClassificationPath []id.ClassificationID `json:"classification_path" validate:"required,max=32"`
}

func (r *CreateRecordRequest) Normalize() {
	r.Number = strings.TrimSpace(r.Number)
	r.Title = strings.TrimSpace(r.Title)
	r.Pattern = strings.TrimSpace(r.Pattern)
}

// CloseRecordRequest is the body of POST /records/{id}/close. An absent
// closed_at closes the record as of the request time.
type CloseRecordRequest struct {
	ClosedAt *time.Time `json:"closed_at,omitempty"`
}

// RecordIDsRequest is the body of the destruction endpoints.
type RecordIDsRequest struct {
	RecordIDs []id.RecordID `json:"record_ids" validate:"required"`
}

// Validate enforces the batch bound and rejects non-positive ids.
func (r *RecordIDsRequest) Validate() error {
	if len(r.RecordIDs) == 0 {
		return dErrors.New(dErrors.CodeBadRequest, "record_ids is required")
	}
	if len(r.RecordIDs) > maxBatch {
		return dErrors.New(dErrors.CodeBadRequest, "too many record_ids")
	}
	for _, rid := range r.RecordIDs {
		if rid <= 0 {
			return dErrors.New(dErrors.CodeBadRequest, "record_ids must be positive")
		}
	}
	return nil
}
