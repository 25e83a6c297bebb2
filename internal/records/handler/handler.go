// Package handler exposes the record register over HTTP.
package handler

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"retention/internal/numbering"
	"retention/internal/records/models"
	"retention/internal/records/service"
	id "retention/pkg/domain"
	dErrors "retention/pkg/domain-errors"
	audit "retention/pkg/platform/audit"
	"retention/pkg/platform/httputil"
	"retention/pkg/requestcontext"
)

//go:generate mockgen -source=handler.go -destination=mocks/mocks.go -package=mocks

// Service defines the record operations the handler drives.
type Service interface {
	ValidateClassification(ctx context.Context, path []id.ClassificationID) error
	ValidateNumber(ctx context.Context, template, number, locationCode string) (*service.NumberCheck, error)
	GenerateNumber(ctx context.Context, template, base string) (string, error)
	CreateRecord(ctx context.Context, in service.CreateRecordInput) (*models.Record, error)
	GetRecord(ctx context.Context, recordID id.RecordID) (*models.Record, error)
	CloseRecord(ctx context.Context, recordID id.RecordID, closedAt *time.Time) (*models.Record, error)
	DestructionDate(ctx context.Context, ids []id.RecordID) (time.Time, error)
	ContainerDestructionDate(ctx context.Context, containerID id.ContainerID) (time.Time, error)
	DestroyRecords(ctx context.Context, ids []id.RecordID) (*service.DestroyResult, error)
	CanAccessLocation(ctx context.Context, locationID id.LocationID) bool
	RecentAuditEvents(ctx context.Context, limit int) ([]audit.Event, error)
}

// Handler wires record endpoints to the records service.
type Handler struct {
	service Service
	logger  *slog.Logger
}

func New(service Service, logger *slog.Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Register mounts the record endpoints. Authentication is applied by the
// router around this group.
func (h *Handler) Register(r chi.Router) {
	r.Post("/classifications/validate", h.HandleValidateClassification)
	r.Get("/numbering/patterns", h.HandleListPatterns)
	r.Post("/numbering/validate", h.HandleValidateNumber)
	r.Post("/numbering/generate", h.HandleGenerateNumber)
	r.Post("/records", h.HandleCreateRecord)
	r.Post("/records/destruction-date", h.HandleDestructionDate)
	r.Post("/records/destroy", h.HandleDestroy)
	r.Get("/records/{id}", h.HandleGetRecord)
	r.Post("/records/{id}/close", h.HandleCloseRecord)
	r.Get("/containers/{id}/destruction-date", h.HandleContainerDestructionDate)
	r.Get("/locations/{id}/access", h.HandleLocationAccess)
	r.Get("/audit/events", h.HandleRecentAuditEvents)
}

// HandleValidateClassification answers with valid=false and the reason for
// rule violations; lookup failures are errors.
func (h *Handler) HandleValidateClassification(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)

	req, ok := httputil.DecodeAndPrepare[ValidateClassificationRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}

	err := h.service.ValidateClassification(ctx, req.Path)
	switch dErrors.CodeOf(err) {
	case dErrors.CodeInvalidArgument, dErrors.CodeNotFound, dErrors.CodeValidation:
		httputil.WriteJSON(w, http.StatusOK, &ClassificationCheckResponse{Valid: false, Reason: err.Error()})
		return
	}
	if err != nil {
		h.fail(ctx, w, "classification check failed", err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, &ClassificationCheckResponse{Valid: true})
}

func (h *Handler) HandleListPatterns(w http.ResponseWriter, _ *http.Request) {
	httputil.WriteJSON(w, http.StatusOK, FromPatterns(numbering.Patterns()))
}

func (h *Handler) HandleValidateNumber(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	req, ok := httputil.DecodeAndPrepare[ValidateNumberRequest](w, r, h.logger, ctx, requestcontext.RequestID(ctx))
	if !ok {
		return
	}

	check, err := h.service.ValidateNumber(ctx, req.Pattern, req.Number, req.LocationCode)
	if err != nil {
		h.fail(ctx, w, "number validation failed", err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, FromNumberCheck(check))
}

func (h *Handler) HandleGenerateNumber(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	req, ok := httputil.DecodeAndPrepare[GenerateNumberRequest](w, r, h.logger, ctx, requestcontext.RequestID(ctx))
	if !ok {
		return
	}

	number, err := h.service.GenerateNumber(ctx, req.Pattern, req.Base)
	if err != nil {
		h.fail(ctx, w, "number generation failed", err)
		return
	}
	httputil.WriteJSON(w, http.StatusCreated, &GeneratedNumberResponse{Number: number})
}

func (h *Handler) HandleCreateRecord(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)
	start := time.Now()

	req, ok := httputil.DecodeAndPrepare[CreateRecordRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}

	record, err := h.service.CreateRecord(ctx, service.CreateRecordInput{
		Number:             req.Number,
		Title:              req.Title,
		Pattern:            req.Pattern,
		ContainerID:        req.ContainerID,
		ScheduleID:         req.ScheduleID,
		LocationID:         req.LocationID,
		ClassificationPath: req.ClassificationPath,
	})
	if err != nil {
		h.fail(ctx, w, "record creation failed", err)
		return
	}

	h.logger.InfoContext(ctx, "record registered",
		"request_id", requestID,
		"record_id", record.ID,
		"duration_ms", time.Since(start).Milliseconds(),
	)
	httputil.WriteJSON(w, http.StatusCreated, FromRecord(record))
}

func (h *Handler) HandleGetRecord(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	recordID, err := id.ParseRecordID(chi.URLParam(r, "id"))
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	record, err := h.service.GetRecord(ctx, recordID)
	if err != nil {
		h.fail(ctx, w, "record lookup failed", err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, FromRecord(record))
}

func (h *Handler) HandleCloseRecord(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	recordID, err := id.ParseRecordID(chi.URLParam(r, "id"))
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	var closedAt *time.Time
	if r.ContentLength != 0 {
		req, ok := httputil.DecodeAndPrepare[CloseRecordRequest](w, r, h.logger, ctx, requestcontext.RequestID(ctx))
		if !ok {
			return
		}
		closedAt = req.ClosedAt
	}

	record, err := h.service.CloseRecord(ctx, recordID, closedAt)
	if err != nil {
		h.fail(ctx, w, "record close failed", err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, FromRecord(record))
}

func (h *Handler) HandleDestructionDate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	req, ok := httputil.DecodeAndPrepare[RecordIDsRequest](w, r, h.logger, ctx, requestcontext.RequestID(ctx))
	if !ok {
		return
	}

	due, err := h.service.DestructionDate(ctx, req.RecordIDs)
	if err != nil {
		h.fail(ctx, w, "destruction date failed", err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, &DestructionDateResponse{DestructionDate: due})
}

func (h *Handler) HandleContainerDestructionDate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	containerID, err := id.ParseContainerID(chi.URLParam(r, "id"))
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	due, err := h.service.ContainerDestructionDate(ctx, containerID)
	if err != nil {
		h.fail(ctx, w, "container destruction date failed", err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, &DestructionDateResponse{DestructionDate: due})
}

func (h *Handler) HandleDestroy(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)
	req, ok := httputil.DecodeAndPrepare[RecordIDsRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}

	result, err := h.service.DestroyRecords(ctx, req.RecordIDs)
	if err != nil {
		h.fail(ctx, w, "record destruction failed", err)
		return
	}
	h.logger.InfoContext(ctx, "records destroyed",
		"request_id", requestID,
		"count", len(result.RecordIDs),
	)
	httputil.WriteJSON(w, http.StatusOK, FromDestroyResult(result))
}

func (h *Handler) HandleLocationAccess(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	locationID, err := id.ParseLocationID(chi.URLParam(r, "id"))
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, &AccessResponse{
		LocationID: locationID,
		Allowed:    h.service.CanAccessLocation(ctx, locationID),
	})
}

// HandleRecentAuditEvents lists the newest audit events. The optional limit
// query parameter defaults and caps in the service.
func (h *Handler) HandleRecentAuditEvents(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			httputil.WriteError(w, dErrors.New(dErrors.CodeBadRequest, "limit must be an integer"))
			return
		}
		limit = n
	}

	events, err := h.service.RecentAuditEvents(ctx, limit)
	if err != nil {
		h.fail(ctx, w, "audit trail read failed", err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, FromAuditEvents(events))
}

// fail logs at a level matching the error class and writes the response.
func (h *Handler) fail(ctx context.Context, w http.ResponseWriter, msg string, err error) {
	attrs := []any{
		"request_id", requestcontext.RequestID(ctx),
		"user_id", requestcontext.UserID(ctx),
		"code", dErrors.CodeOf(err),
		"error", err,
	}
	if httputil.StatusFor(dErrors.CodeOf(err)) >= http.StatusInternalServerError {
		h.logger.ErrorContext(ctx, msg, attrs...)
	} else {
		h.logger.WarnContext(ctx, msg, attrs...)
	}
	httputil.WriteError(w, err)
}
