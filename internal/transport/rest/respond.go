package rest

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/leadwind/dopebook-backend/internal/domain"
	"github.com/leadwind/dopebook-backend/pkg/ctxutil"
)

type errorResponse struct {
	Error  string               `json:"error"`
	Fields []fieldErrorResponse `json:"fields,omitempty"`
}

type fieldErrorResponse struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

type pageResponse struct {
	Page       int `json:"page"`
	Limit      int `json:"limit"`
	Total      int `json:"total"`
	TotalPages int `json:"totalPages"`
}

func toPageResponse(p domain.PageInfo) pageResponse {
	return pageResponse{
		Page:       p.Page,
		Limit:      p.Limit,
		Total:      p.Total,
		TotalPages: p.TotalPages,
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v) //nolint:errcheck
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, errorResponse{Error: message})
}

// handleError maps service errors onto HTTP statuses. Typed errors carry
// their details into the response body; anything unrecognized is logged and
// reported as a bare 500.
func handleError(w http.ResponseWriter, r *http.Request, log *slog.Logger, err error) {
	var (
		valErr   *domain.ValidationError
		refErr   *domain.ReferenceError
		conflict *domain.ConflictError
	)

	switch {
	case errors.As(err, &valErr):
		fields := make([]fieldErrorResponse, len(valErr.Errors))
		for i, fe := range valErr.Errors {
			fields[i] = fieldErrorResponse{Field: fe.Field, Message: fe.Message}
		}
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "validation failed", Fields: fields})
	case errors.As(err, &refErr):
		writeJSON(w, http.StatusUnprocessableEntity, errorResponse{
			Error:  "invalid reference",
			Fields: []fieldErrorResponse{{Field: refErr.Field, Message: "no such record"}},
		})
	case errors.As(err, &conflict):
		writeError(w, http.StatusConflict, conflict.Error())
	case errors.Is(err, domain.ErrNotFound):
		writeError(w, http.StatusNotFound, "not found")
	case errors.Is(err, domain.ErrAlreadyExists):
		writeError(w, http.StatusConflict, "already exists")
	case errors.Is(err, domain.ErrUnauthorized):
		writeError(w, http.StatusUnauthorized, "unauthorized")
	default:
		log.ErrorContext(r.Context(), "internal error", slog.String("error", err.Error()))
		writeError(w, http.StatusInternalServerError, "internal server error")
	}
}

// userIDFrom returns the authenticated user ID set by the auth middleware.
// Protected routes are only reachable through that middleware, so a missing
// ID is a wiring bug, reported as unauthorized rather than a panic.
func userIDFrom(r *http.Request) (uuid.UUID, bool) {
	return ctxutil.UserIDFromCtx(r.Context())
}

func pathID(r *http.Request) (uuid.UUID, error) {
	return uuid.Parse(r.PathValue("id"))
}

// queryReader accumulates the first parse failure across a set of query
// parameters so handlers can report it with the offending key.
type queryReader struct {
	values url.Values
	err    error
	badKey string
}

func newQueryReader(values url.Values) *queryReader {
	return &queryReader{values: values}
}

func (q *queryReader) fail(key string, err error) {
	if q.err == nil {
		q.err = err
		q.badKey = key
	}
}

func (q *queryReader) String(key string) *string {
	if !q.values.Has(key) {
		return nil
	}
	v := q.values.Get(key)
	return &v
}

func (q *queryReader) Int(key string, def int) int {
	if !q.values.Has(key) {
		return def
	}
	v, err := strconv.Atoi(q.values.Get(key))
	if err != nil {
		q.fail(key, err)
		return def
	}
	return v
}

func (q *queryReader) Float(key string) *float64 {
	if !q.values.Has(key) {
		return nil
	}
	v, err := strconv.ParseFloat(q.values.Get(key), 64)
	if err != nil {
		q.fail(key, err)
		return nil
	}
	return &v
}

func (q *queryReader) UUID(key string) *uuid.UUID {
	if !q.values.Has(key) {
		return nil
	}
	v, err := uuid.Parse(q.values.Get(key))
	if err != nil {
		q.fail(key, err)
		return nil
	}
	return &v
}

func (q *queryReader) Time(key string) *time.Time {
	if !q.values.Has(key) {
		return nil
	}
	v, err := time.Parse(time.RFC3339, q.values.Get(key))
	if err != nil {
		q.fail(key, err)
		return nil
	}
	return &v
}

func (q *queryReader) Err() error { return q.err }

func (q *queryReader) writeBadQuery(w http.ResponseWriter) {
	writeError(w, http.StatusBadRequest, "invalid query parameter: "+q.badKey)
}
