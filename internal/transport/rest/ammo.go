package rest

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/leadwind/dopebook-backend/internal/domain"
	"github.com/leadwind/dopebook-backend/internal/service/ammo"
)

// ammoService defines the minimal interface needed by AmmoHandler.
type ammoService interface {
	Create(ctx context.Context, userID uuid.UUID, input ammo.CreateInput) (*domain.AmmoProfile, error)
	Get(ctx context.Context, userID, ammoID uuid.UUID) (*domain.AmmoProfile, error)
	Update(ctx context.Context, userID, ammoID uuid.UUID, input ammo.UpdateInput) (*domain.AmmoProfile, error)
	Delete(ctx context.Context, userID, ammoID uuid.UUID) error
	List(ctx context.Context, userID uuid.UUID, input ammo.ListInput) (*ammo.ListResult, error)
	Stats(ctx context.Context, userID, ammoID uuid.UUID) (domain.AmmoStats, error)
}

// AmmoHandler serves ammo profile REST endpoints.
type AmmoHandler struct {
	svc ammoService
	log *slog.Logger
}

// NewAmmoHandler creates an AmmoHandler.
func NewAmmoHandler(svc ammoService, logger *slog.Logger) *AmmoHandler {
	return &AmmoHandler{svc: svc, log: logger.With("handler", "ammo")}
}

type createAmmoRequest struct {
	RifleID                string   `json:"rifleId"`
	Name                   string   `json:"name"`
	Manufacturer           string   `json:"manufacturer"`
	BulletWeight           float64  `json:"bulletWeight"`
	BulletType             string   `json:"bulletType"`
	BallisticCoefficientG1 *float64 `json:"ballisticCoefficientG1"`
	BallisticCoefficientG7 *float64 `json:"ballisticCoefficientG7"`
	MuzzleVelocity         float64  `json:"muzzleVelocity"`
	PowderType             *string  `json:"powderType"`
	PowderWeight           *float64 `json:"powderWeight"`
	LotNumber              *string  `json:"lotNumber"`
	Notes                  *string  `json:"notes"`
}

type updateAmmoRequest struct {
	RifleID                *string  `json:"rifleId"`
	Name                   *string  `json:"name"`
	Manufacturer           *string  `json:"manufacturer"`
	BulletWeight           *float64 `json:"bulletWeight"`
	BulletType             *string  `json:"bulletType"`
	BallisticCoefficientG1 *float64 `json:"ballisticCoefficientG1"`
	BallisticCoefficientG7 *float64 `json:"ballisticCoefficientG7"`
	MuzzleVelocity         *float64 `json:"muzzleVelocity"`
	PowderType             *string  `json:"powderType"`
	PowderWeight           *float64 `json:"powderWeight"`
	LotNumber              *string  `json:"lotNumber"`
	Notes                  *string  `json:"notes"`
}

type ammoResponse struct {
	ID                     string    `json:"id"`
	RifleID                string    `json:"rifleId"`
	Name                   string    `json:"name"`
	Manufacturer           string    `json:"manufacturer"`
	BulletWeight           float64   `json:"bulletWeight"`
	BulletType             string    `json:"bulletType"`
	BallisticCoefficientG1 *float64  `json:"ballisticCoefficientG1,omitempty"`
	BallisticCoefficientG7 *float64  `json:"ballisticCoefficientG7,omitempty"`
	MuzzleVelocity         float64   `json:"muzzleVelocity"`
	MuzzleEnergyFtLb       float64   `json:"muzzleEnergyFtLb"`
	PowderType             *string   `json:"powderType,omitempty"`
	PowderWeight           *float64  `json:"powderWeight,omitempty"`
	LotNumber              *string   `json:"lotNumber,omitempty"`
	Notes                  *string   `json:"notes,omitempty"`
	CreatedAt              time.Time `json:"createdAt"`
	UpdatedAt              time.Time `json:"updatedAt"`
}

type ammoListResponse struct {
	Ammo []ammoResponse `json:"ammo"`
	Page pageResponse   `json:"page"`
}

type ammoStatsResponse struct {
	DopeCount        int      `json:"dopeCount"`
	MinDistanceYards *float64 `json:"minDistanceYards"`
	MaxDistanceYards *float64 `json:"maxDistanceYards"`
	AvgHitPercentage *float64 `json:"avgHitPercentage"`
	AvgGroupSize     *float64 `json:"avgGroupSize"`
}

// Create handles POST /api/v1/ammo.
func (h *AmmoHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFrom(r)
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	var req createAmmoRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	// An unparseable rifle ID gets the same treatment as an absent one; the
	// input validator reports the field.
	rifleID, _ := uuid.Parse(req.RifleID)

	created, err := h.svc.Create(r.Context(), userID, ammo.CreateInput{
		RifleID:                rifleID,
		Name:                   req.Name,
		Manufacturer:           req.Manufacturer,
		BulletWeight:           req.BulletWeight,
		BulletType:             req.BulletType,
		BallisticCoefficientG1: req.BallisticCoefficientG1,
		BallisticCoefficientG7: req.BallisticCoefficientG7,
		MuzzleVelocity:         req.MuzzleVelocity,
		PowderType:             req.PowderType,
		PowderWeight:           req.PowderWeight,
		LotNumber:              req.LotNumber,
		Notes:                  req.Notes,
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusCreated, toAmmoResponse(created))
}

// Get handles GET /api/v1/ammo/{id}.
func (h *AmmoHandler) Get(w http.ResponseWriter, r *http.Request) {
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

	writeJSON(w, http.StatusOK, toAmmoResponse(profile))
}

// Update handles PATCH /api/v1/ammo/{id}.
func (h *AmmoHandler) Update(w http.ResponseWriter, r *http.Request) {
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

	var req updateAmmoRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	input := ammo.UpdateInput{
		Name:                   req.Name,
		Manufacturer:           req.Manufacturer,
		BulletWeight:           req.BulletWeight,
		BulletType:             req.BulletType,
		BallisticCoefficientG1: req.BallisticCoefficientG1,
		BallisticCoefficientG7: req.BallisticCoefficientG7,
		MuzzleVelocity:         req.MuzzleVelocity,
		PowderType:             req.PowderType,
		PowderWeight:           req.PowderWeight,
		LotNumber:              req.LotNumber,
		Notes:                  req.Notes,
	}
	if req.RifleID != nil {
		rifleID, err := uuid.Parse(*req.RifleID)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid rifleId")
			return
		}
		input.RifleID = &rifleID
	}

	updated, err := h.svc.Update(r.Context(), userID, id, input)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toAmmoResponse(updated))
}

// Delete handles DELETE /api/v1/ammo/{id}.
func (h *AmmoHandler) Delete(w http.ResponseWriter, r *http.Request) {
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

// List handles GET /api/v1/ammo.
func (h *AmmoHandler) List(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFrom(r)
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	q := newQueryReader(r.URL.Query())
	input := ammo.ListInput{
		RifleID:      q.UUID("rifle_id"),
		Manufacturer: q.String("manufacturer"),
		Search:       q.String("search"),
		Page:         q.Int("page", 0),
		Limit:        q.Int("limit", 0),
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

	list := make([]ammoResponse, len(result.Ammo))
	for i := range result.Ammo {
		list[i] = toAmmoResponse(&result.Ammo[i])
	}

	writeJSON(w, http.StatusOK, ammoListResponse{
		Ammo: list,
		Page: toPageResponse(result.Page),
	})
}

// Stats handles GET /api/v1/ammo/{id}/stats.
func (h *AmmoHandler) Stats(w http.ResponseWriter, r *http.Request) {
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

	writeJSON(w, http.StatusOK, ammoStatsResponse{
		DopeCount:        stats.DopeCount,
		MinDistanceYards: stats.MinDistanceYards,
		MaxDistanceYards: stats.MaxDistanceYards,
		AvgHitPercentage: stats.AvgHitPercentage,
		AvgGroupSize:     stats.AvgGroupSize,
	})
}

func toAmmoResponse(p *domain.AmmoProfile) ammoResponse {
	return ammoResponse{
		ID:                     p.ID.String(),
		RifleID:                p.RifleID.String(),
		Name:                   p.Name,
		Manufacturer:           p.Manufacturer,
		BulletWeight:           p.BulletWeight,
		BulletType:             p.BulletType,
		BallisticCoefficientG1: p.BallisticCoefficientG1,
		BallisticCoefficientG7: p.BallisticCoefficientG7,
		MuzzleVelocity:         p.MuzzleVelocity,
		MuzzleEnergyFtLb:       p.MuzzleEnergyFtLb(),
		PowderType:             p.PowderType,
		PowderWeight:           p.PowderWeight,
		LotNumber:              p.LotNumber,
		Notes:                  p.Notes,
		CreatedAt:              p.CreatedAt,
		UpdatedAt:              p.UpdatedAt,
	}
}
