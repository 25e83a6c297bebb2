package httputil

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	dErrors "retention/pkg/domain-errors"
)

type detailedErr struct{}

func (detailedErr) Error() string { return "records lack closure" }
func (detailedErr) Details() map[string]any {
	return map[string]any{"failure_kind": "missing_closure_date", "record_ids": []int{3, 9}}
}

func TestWriteError(t *testing.T) {
	t.Run("internal error omits description", func(t *testing.T) {
		w := httptest.NewRecorder()
		WriteError(w, dErrors.New(dErrors.CodeInternal, "db failed"))

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		var body map[string]string
		require.NoError(t, json.NewDecoder(w.Body).Decode(&body))
		assert.Equal(t, "internal_error", body["error"])
		_, ok := body["error_description"]
		assert.False(t, ok, "expected error_description to be omitted for internal errors")
	})

	t.Run("bad request includes description", func(t *testing.T) {
		w := httptest.NewRecorder()
		WriteError(w, dErrors.New(dErrors.CodeBadRequest, "invalid input"))

		assert.Equal(t, http.StatusBadRequest, w.Code)
		var body map[string]string
		require.NoError(t, json.NewDecoder(w.Body).Decode(&body))
		assert.Equal(t, "bad_request", body["error"])
		assert.Equal(t, "invalid input", body["error_description"])
	})

	t.Run("uncoded error is internal", func(t *testing.T) {
		w := httptest.NewRecorder()
		WriteError(w, io.ErrUnexpectedEOF)
		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})

	t.Run("validation error carries details", func(t *testing.T) {
		w := httptest.NewRecorder()
		WriteError(w, dErrors.Wrap(detailedErr{}, dErrors.CodeValidation, "cannot compute destruction date"))

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
		var body map[string]any
		require.NoError(t, json.NewDecoder(w.Body).Decode(&body))
		assert.Equal(t, "validation_failed", body["error"])
		assert.Equal(t, "cannot compute destruction date", body["error_description"])
		assert.Equal(t, "missing_closure_date", body["failure_kind"])
		assert.Equal(t, []any{float64(3), float64(9)}, body["record_ids"])
	})
}

func TestStatusFor(t *testing.T) {
	cases := map[dErrors.Code]int{
		dErrors.CodeInvalidArgument: http.StatusBadRequest,
		dErrors.CodeInvalidInput:    http.StatusBadRequest,
		dErrors.CodeValidation:      http.StatusUnprocessableEntity,
		dErrors.CodeNotFound:        http.StatusNotFound,
		dErrors.CodeForbidden:       http.StatusForbidden,
		dErrors.CodeUnauthorized:    http.StatusUnauthorized,
		dErrors.CodeConflict:        http.StatusConflict,
		dErrors.CodeInvalidState:    http.StatusConflict,
		dErrors.CodeInternal:        http.StatusInternalServerError,
	}
	for code, want := range cases {
		assert.Equal(t, want, StatusFor(code), code)
	}
}

type sampleRequest struct {
	Name  string `json:"name" validate:"required,max=10"`
	Count int    `json:"count" validate:"gte=0"`
}

func (r *sampleRequest) Normalize() { r.Name = strings.TrimSpace(r.Name) }

func (r *sampleRequest) Validate() error {
	if r.Name == "forbidden" {
		return dErrors.New(dErrors.CodeInvalidArgument, "name is reserved")
	}
	return nil
}

func TestDecodeAndPrepare(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	decode := func(body string) (*sampleRequest, *httptest.ResponseRecorder, bool) {
		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
		req, ok := DecodeAndPrepare[sampleRequest](w, r, logger, r.Context(), "req-1")
		return req, w, ok
	}

	t.Run("valid body is normalised", func(t *testing.T) {
		req, _, ok := decode(`{"name":"  box  ","count":2}`)
		require.True(t, ok)
		assert.Equal(t, "box", req.Name)
	})

	t.Run("malformed json", func(t *testing.T) {
		_, w, ok := decode(`{"name":`)
		assert.False(t, ok)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("unknown field", func(t *testing.T) {
		_, w, ok := decode(`{"name":"a","extra":1}`)
		assert.False(t, ok)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("struct tag failure", func(t *testing.T) {
		_, w, ok := decode(`{"name":"   "}`)
		assert.False(t, ok)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "name failed required")
	})

	t.Run("request validate failure", func(t *testing.T) {
		_, w, ok := decode(`{"name":"forbidden"}`)
		assert.False(t, ok)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "name is reserved")
	})
}
