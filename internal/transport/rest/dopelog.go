package rest

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/leadwind/dopebook-backend/internal/domain"
	"github.com/leadwind/dopebook-backend/internal/service/dopelog"
)

// dopeLogService defines the minimal interface needed by DopeLogHandler.
type dopeLogService interface {
	Create(ctx context.Context, userID uuid.UUID, input dopelog.CreateInput) (*domain.DopeLog, error)
	Get(ctx context.Context, userID, logID uuid.UUID) (*domain.DopeLog, error)
	Update(ctx context.Context, userID, logID uuid.UUID, input dopelog.UpdateInput) (*domain.DopeLog, error)
	Delete(ctx context.Context, userID, logID uuid.UUID) error
	List(ctx context.Context, userID uuid.UUID, input dopelog.ListInput) (*dopelog.ListResult, error)
	Card(ctx context.Context, userID, rifleID, ammoID uuid.UUID) (*domain.DopeCard, error)
}

// DopeLogHandler serves DOPE log and DOPE card REST endpoints.
type DopeLogHandler struct {
	svc dopeLogService
	log *slog.Logger
}

// NewDopeLogHandler creates a DopeLogHandler.
func NewDopeLogHandler(svc dopeLogService, logger *slog.Logger) *DopeLogHandler {
	return &DopeLogHandler{svc: svc, log: logger.With("handler", "dopelog")}
}

type createDopeLogRequest struct {
	RifleID             string     `json:"rifleId"`
	AmmoID              string     `json:"ammoId"`
	EnvironmentID       string     `json:"environmentId"`
	Distance            float64    `json:"distance"`
	DistanceUnit        string     `json:"distanceUnit"`
	ElevationCorrection float64    `json:"elevationCorrection"`
	WindageCorrection   float64    `json:"windageCorrection"`
	CorrectionUnit      string     `json:"correctionUnit"`
	TargetType          string     `json:"targetType"`
	GroupSize           *float64   `json:"groupSize"`
	HitCount            *int       `json:"hitCount"`
	ShotCount           *int       `json:"shotCount"`
	Notes               *string    `json:"notes"`
	ShotAt              *time.Time `json:"shotAt"`
}

type updateDopeLogRequest struct {
	RifleID             *string    `json:"rifleId"`
	AmmoID              *string    `json:"ammoId"`
	EnvironmentID       *string    `json:"environmentId"`
	Distance            *float64   `json:"distance"`
	DistanceUnit        *string    `json:"distanceUnit"`
	ElevationCorrection *float64   `json:"elevationCorrection"`
	WindageCorrection   *float64   `json:"windageCorrection"`
	CorrectionUnit      *string    `json:"correctionUnit"`
	TargetType          *string    `json:"targetType"`
	GroupSize           *float64   `json:"groupSize"`
	HitCount            *int       `json:"hitCount"`
	ShotCount           *int       `json:"shotCount"`
	Notes               *string    `json:"notes"`
	ShotAt              *time.Time `json:"shotAt"`
}

type dopeLogResponse struct {
	ID                  string     `json:"id"`
	RifleID             string     `json:"rifleId"`
	AmmoID              string     `json:"ammoId"`
	EnvironmentID       string     `json:"environmentId"`
	Distance            float64    `json:"distance"`
	DistanceUnit        string     `json:"distanceUnit"`
	DistanceYards       float64    `json:"distanceYards"`
	ElevationCorrection float64    `json:"elevationCorrection"`
	WindageCorrection   float64    `json:"windageCorrection"`
	CorrectionUnit      string     `json:"correctionUnit"`
	TargetType          string     `json:"targetType"`
	GroupSize           *float64   `json:"groupSize,omitempty"`
	HitCount            *int       `json:"hitCount,omitempty"`
	ShotCount           *int       `json:"shotCount,omitempty"`
	HitPercentage       *float64   `json:"hitPercentage,omitempty"`
	Notes               *string    `json:"notes,omitempty"`
	ShotAt              time.Time  `json:"shotAt"`
	CreatedAt           time.Time  `json:"createdAt"`
	UpdatedAt           time.Time  `json:"updatedAt"`
}

type dopeLogListResponse struct {
	Logs []dopeLogResponse `json:"logs"`
	Page pageResponse      `json:"page"`
}

type dopeCardResponse struct {
	Rifle       rifleResponse           `json:"rifle"`
	Ammo        ammoResponse            `json:"ammo"`
	Entries     []dopeCardEntryResponse `json:"entries"`
	GeneratedAt time.Time               `json:"generatedAt"`
}

type dopeCardEntryResponse struct {
	Distance            float64  `json:"distance"`
	DistanceUnit        string   `json:"distanceUnit"`
	DistanceYards       float64  `json:"distanceYards"`
	ElevationCorrection float64  `json:"elevationCorrection"`
	WindageCorrection   float64  `json:"windageCorrection"`
	CorrectionUnit      string   `json:"correctionUnit"`
	HitPercentage       *float64 `json:"hitPercentage,omitempty"`
	GroupSize           *float64 `json:"groupSize,omitempty"`
}

// Create handles POST /api/v1/dope-logs.
func (h *DopeLogHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFrom(r)
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	var req createDopeLogRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	// Unparseable parent IDs fall through as uuid.Nil; the input validator
	// reports the field.
	rifleID, _ := uuid.Parse(req.RifleID)
	ammoID, _ := uuid.Parse(req.AmmoID)
	envID, _ := uuid.Parse(req.EnvironmentID)

	created, err := h.svc.Create(r.Context(), userID, dopelog.CreateInput{
		RifleID:             rifleID,
		AmmoID:              ammoID,
		EnvironmentID:       envID,
		Distance:            req.Distance,
		DistanceUnit:        domain.DistanceUnit(req.DistanceUnit),
		ElevationCorrection: req.ElevationCorrection,
		WindageCorrection:   req.WindageCorrection,
		CorrectionUnit:      domain.ClickUnit(req.CorrectionUnit),
		TargetType:          domain.TargetType(req.TargetType),
		GroupSize:           req.GroupSize,
		HitCount:            req.HitCount,
		ShotCount:           req.ShotCount,
		Notes:               req.Notes,
		ShotAt:              req.ShotAt,
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusCreated, toDopeLogResponse(created))
}

// Get handles GET /api/v1/dope-logs/{id}.
func (h *DopeLogHandler) Get(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFrom(r)
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	id, err := pathID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid id")
		return
	}

	entry, err := h.svc.Get(r.Context(), userID, id)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toDopeLogResponse(entry))
}

// Update handles PATCH /api/v1/dope-logs/{id}.
func (h *DopeLogHandler) Update(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFrom(r)
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	id, err := pathID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid id")
		return
	}

	var req updateDopeLogRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	input := dopelog.UpdateInput{
		Distance:            req.Distance,
		ElevationCorrection: req.ElevationCorrection,
		WindageCorrection:   req.WindageCorrection,
		GroupSize:           req.GroupSize,
		HitCount:            req.HitCount,
		ShotCount:           req.ShotCount,
		Notes:               req.Notes,
		ShotAt:              req.ShotAt,
	}
	if req.RifleID != nil {
		v, err := uuid.Parse(*req.RifleID)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid rifleId")
			return
		}
		input.RifleID = &v
	}
	if req.AmmoID != nil {
		v, err := uuid.Parse(*req.AmmoID)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid ammoId")
			return
		}
		input.AmmoID = &v
	}
	if req.EnvironmentID != nil {
		v, err := uuid.Parse(*req.EnvironmentID)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid environmentId")
			return
		}
		input.EnvironmentID = &v
	}
	if req.DistanceUnit != nil {
		v := domain.DistanceUnit(*req.DistanceUnit)
		input.DistanceUnit = &v
	}
	if req.CorrectionUnit != nil {
		v := domain.ClickUnit(*req.CorrectionUnit)
		input.CorrectionUnit = &v
	}
	if req.TargetType != nil {
		v := domain.TargetType(*req.TargetType)
		input.TargetType = &v
	}

	updated, err := h.svc.Update(r.Context(), userID, id, input)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toDopeLogResponse(updated))
}

// Delete handles DELETE /api/v1/dope-logs/{id}.
func (h *DopeLogHandler) Delete(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFrom(r)
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	id, err := pathID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid id")
		return
	}

	if err := h.svc.Delete(r.Context(), userID, id); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// List handles GET /api/v1/dope-logs.
func (h *DopeLogHandler) List(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFrom(r)
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	q := newQueryReader(r.URL.Query())
	input := dopelog.ListInput{
		RifleID:     q.UUID("rifle_id"),
		AmmoID:      q.UUID("ammo_id"),
		DistanceMin: q.Float("distance_min"),
		DistanceMax: q.Float("distance_max"),
		Page:        q.Int("page", 0),
		Limit:       q.Int("limit", 0),
	}
	if v := q.String("target_type"); v != nil {
		t := domain.TargetType(*v)
		input.TargetType = &t
	}
	if v := q.String("sort"); v != nil {
		input.Sort = domain.DopeLogSort(*v)
	}
	if q.Err() != nil {
		q.writeBadQuery(w)
		return
	}

	result, err := h.svc.List(r.Context(), userID, input)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	logs := make([]dopeLogResponse, len(result.Logs))
	for i := range result.Logs {
		logs[i] = toDopeLogResponse(&result.Logs[i])
	}

	writeJSON(w, http.StatusOK, dopeLogListResponse{
		Logs: logs,
		Page: toPageResponse(result.Page),
	})
}

// Card handles GET /api/v1/dope-card. Requires rifle_id and ammo_id query
// parameters and returns the distance-ordered correction table for the pair.
func (h *DopeLogHandler) Card(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFrom(r)
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	q := newQueryReader(r.URL.Query())
	rifleID := q.UUID("rifle_id")
	ammoID := q.UUID("ammo_id")
	if q.Err() != nil {
		q.writeBadQuery(w)
		return
	}
	if rifleID == nil {
		writeError(w, http.StatusBadRequest, "missing query parameter: rifle_id")
		return
	}
	if ammoID == nil {
		writeError(w, http.StatusBadRequest, "missing query parameter: ammo_id")
		return
	}

	card, err := h.svc.Card(r.Context(), userID, *rifleID, *ammoID)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	entries := make([]dopeCardEntryResponse, len(card.Entries))
	for i, e := range card.Entries {
		entries[i] = dopeCardEntryResponse{
			Distance:            e.Distance,
			DistanceUnit:        string(e.DistanceUnit),
			DistanceYards:       e.DistanceYards,
			ElevationCorrection: e.ElevationCorrection,
			WindageCorrection:   e.WindageCorrection,
			CorrectionUnit:      string(e.CorrectionUnit),
			HitPercentage:       e.HitPercentage,
			GroupSize:           e.GroupSize,
		}
	}

	writeJSON(w, http.StatusOK, dopeCardResponse{
		Rifle:       toRifleResponse(&card.Rifle),
		Ammo:        toAmmoResponse(&card.Ammo),
		Entries:     entries,
		GeneratedAt: card.GeneratedAt,
	})
}

func toDopeLogResponse(d *domain.DopeLog) dopeLogResponse {
	return dopeLogResponse{
		ID:                  d.ID.String(),
		RifleID:             d.RifleID.String(),
		AmmoID:              d.AmmoID.String(),
		EnvironmentID:       d.EnvironmentID.String(),
		Distance:            d.Distance,
		DistanceUnit:        string(d.DistanceUnit),
		DistanceYards:       d.DistanceYards,
		ElevationCorrection: d.ElevationCorrection,
		WindageCorrection:   d.WindageCorrection,
		CorrectionUnit:      string(d.CorrectionUnit),
		TargetType:          string(d.TargetType),
		GroupSize:           d.GroupSize,
		HitCount:            d.HitCount,
		ShotCount:           d.ShotCount,
		HitPercentage:       d.HitPercentage,
		Notes:               d.Notes,
		ShotAt:              d.ShotAt,
		CreatedAt:           d.CreatedAt,
		UpdatedAt:           d.UpdatedAt,
	}
}
