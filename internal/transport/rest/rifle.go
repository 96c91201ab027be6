package rest

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/leadwind/dopebook-backend/internal/domain"
	"github.com/leadwind/dopebook-backend/internal/service/rifle"
)

// rifleService defines the minimal interface needed by RifleHandler.
type rifleService interface {
	Create(ctx context.Context, userID uuid.UUID, input rifle.CreateInput) (*domain.RifleProfile, error)
	Get(ctx context.Context, userID, rifleID uuid.UUID) (*domain.RifleProfile, error)
	Update(ctx context.Context, userID, rifleID uuid.UUID, input rifle.UpdateInput) (*domain.RifleProfile, error)
	Delete(ctx context.Context, userID, rifleID uuid.UUID) error
	List(ctx context.Context, userID uuid.UUID, input rifle.ListInput) (*rifle.ListResult, error)
	Stats(ctx context.Context, userID, rifleID uuid.UUID) (domain.RifleStats, error)
}

// RifleHandler serves rifle profile REST endpoints.
type RifleHandler struct {
	svc rifleService
	log *slog.Logger
}

// NewRifleHandler creates a RifleHandler.
func NewRifleHandler(svc rifleService, logger *slog.Logger) *RifleHandler {
	return &RifleHandler{svc: svc, log: logger.With("handler", "rifle")}
}

type createRifleRequest struct {
	Name              string  `json:"name"`
	Caliber           string  `json:"caliber"`
	BarrelLength      float64 `json:"barrelLength"`
	TwistRate         string  `json:"twistRate"`
	ZeroDistance      float64 `json:"zeroDistance"`
	OpticManufacturer *string `json:"opticManufacturer"`
	OpticModel        *string `json:"opticModel"`
	ReticleType       *string `json:"reticleType"`
	ClickUnit         string  `json:"clickUnit"`
	ClickValue        float64 `json:"clickValue"`
	ScopeHeight       float64 `json:"scopeHeight"`
	Notes             *string `json:"notes"`
}

type updateRifleRequest struct {
	Name              *string  `json:"name"`
	Caliber           *string  `json:"caliber"`
	BarrelLength      *float64 `json:"barrelLength"`
	TwistRate         *string  `json:"twistRate"`
	ZeroDistance      *float64 `json:"zeroDistance"`
	OpticManufacturer *string  `json:"opticManufacturer"`
	OpticModel        *string  `json:"opticModel"`
	ReticleType       *string  `json:"reticleType"`
	ClickUnit         *string  `json:"clickUnit"`
	ClickValue        *float64 `json:"clickValue"`
	ScopeHeight       *float64 `json:"scopeHeight"`
	Notes             *string  `json:"notes"`
}

type rifleResponse struct {
	ID                string    `json:"id"`
	Name              string    `json:"name"`
	Caliber           string    `json:"caliber"`
	BarrelLength      float64   `json:"barrelLength"`
	TwistRate         string    `json:"twistRate"`
	ZeroDistance      float64   `json:"zeroDistance"`
	OpticManufacturer *string   `json:"opticManufacturer,omitempty"`
	OpticModel        *string   `json:"opticModel,omitempty"`
	ReticleType       *string   `json:"reticleType,omitempty"`
	ClickUnit         string    `json:"clickUnit"`
	ClickValue        float64   `json:"clickValue"`
	ScopeHeight       float64   `json:"scopeHeight"`
	Notes             *string   `json:"notes,omitempty"`
	CreatedAt         time.Time `json:"createdAt"`
	UpdatedAt         time.Time `json:"updatedAt"`
}

type rifleListResponse struct {
	Rifles []rifleResponse `json:"rifles"`
	Page   pageResponse    `json:"page"`
}

type rifleStatsResponse struct {
	AmmoCount        int      `json:"ammoCount"`
	DopeCount        int      `json:"dopeCount"`
	MinDistanceYards *float64 `json:"minDistanceYards"`
	MaxDistanceYards *float64 `json:"maxDistanceYards"`
	AvgHitPercentage *float64 `json:"avgHitPercentage"`
}

// Create handles POST /api/v1/rifles.
func (h *RifleHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFrom(r)
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	var req createRifleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	created, err := h.svc.Create(r.Context(), userID, rifle.CreateInput{
		Name:              req.Name,
		Caliber:           req.Caliber,
		BarrelLength:      req.BarrelLength,
		TwistRate:         req.TwistRate,
		ZeroDistance:      req.ZeroDistance,
		OpticManufacturer: req.OpticManufacturer,
		OpticModel:        req.OpticModel,
		ReticleType:       req.ReticleType,
		ClickUnit:         domain.ClickUnit(req.ClickUnit),
		ClickValue:        req.ClickValue,
		ScopeHeight:       req.ScopeHeight,
		Notes:             req.Notes,
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusCreated, toRifleResponse(created))
}

// Get handles GET /api/v1/rifles/{id}.
func (h *RifleHandler) Get(w http.ResponseWriter, r *http.Request) {
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

	profile, err := h.svc.Get(r.Context(), userID, id)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toRifleResponse(profile))
}

// Update handles PATCH /api/v1/rifles/{id}.
func (h *RifleHandler) Update(w http.ResponseWriter, r *http.Request) {
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

	var req updateRifleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	input := rifle.UpdateInput{
		Name:              req.Name,
		Caliber:           req.Caliber,
		BarrelLength:      req.BarrelLength,
		TwistRate:         req.TwistRate,
		ZeroDistance:      req.ZeroDistance,
		OpticManufacturer: req.OpticManufacturer,
		OpticModel:        req.OpticModel,
		ReticleType:       req.ReticleType,
		ClickValue:        req.ClickValue,
		ScopeHeight:       req.ScopeHeight,
		Notes:             req.Notes,
	}
	if req.ClickUnit != nil {
		unit := domain.ClickUnit(*req.ClickUnit)
		input.ClickUnit = &unit
	}

	updated, err := h.svc.Update(r.Context(), userID, id, input)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toRifleResponse(updated))
}

// Delete handles DELETE /api/v1/rifles/{id}.
func (h *RifleHandler) Delete(w http.ResponseWriter, r *http.Request) {
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

// List handles GET /api/v1/rifles.
func (h *RifleHandler) List(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFrom(r)
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	q := newQueryReader(r.URL.Query())
	input := rifle.ListInput{
		Caliber: q.String("caliber"),
		Search:  q.String("search"),
		Page:    q.Int("page", 0),
		Limit:   q.Int("limit", 0),
	}
	if v := q.String("sort_by"); v != nil {
		input.SortBy = *v
	}
	if v := q.String("sort_order"); v != nil {
		input.SortOrder = domain.SortOrder(*v)
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

	rifles := make([]rifleResponse, len(result.Rifles))
	for i := range result.Rifles {
		rifles[i] = toRifleResponse(&result.Rifles[i])
	}

	writeJSON(w, http.StatusOK, rifleListResponse{
		Rifles: rifles,
		Page:   toPageResponse(result.Page),
	})
}

// Stats handles GET /api/v1/rifles/{id}/stats.
func (h *RifleHandler) Stats(w http.ResponseWriter, r *http.Request) {
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

	stats, err := h.svc.Stats(r.Context(), userID, id)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, rifleStatsResponse{
		AmmoCount:        stats.AmmoCount,
		DopeCount:        stats.DopeCount,
		MinDistanceYards: stats.MinDistanceYards,
		MaxDistanceYards: stats.MaxDistanceYards,
		AvgHitPercentage: stats.AvgHitPercentage,
	})
}

func toRifleResponse(p *domain.RifleProfile) rifleResponse {
	return rifleResponse{
		ID:                p.ID.String(),
		Name:              p.Name,
		Caliber:           p.Caliber,
		BarrelLength:      p.BarrelLength,
		TwistRate:         p.TwistRate,
		ZeroDistance:      p.ZeroDistance,
		OpticManufacturer: p.OpticManufacturer,
		OpticModel:        p.OpticModel,
		ReticleType:       p.ReticleType,
		ClickUnit:         string(p.ClickUnit),
		ClickValue:        p.ClickValue,
		ScopeHeight:       p.ScopeHeight,
		Notes:             p.Notes,
		CreatedAt:         p.CreatedAt,
		UpdatedAt:         p.UpdatedAt,
	}
}
