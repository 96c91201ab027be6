package rest

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/leadwind/dopebook-backend/internal/domain"
	"github.com/leadwind/dopebook-backend/internal/service/environment"
)

// environmentService defines the minimal interface needed by EnvironmentHandler.
type environmentService interface {
	Create(ctx context.Context, userID uuid.UUID, input environment.CreateInput) (*domain.EnvironmentSnapshot, error)
	Get(ctx context.Context, userID, envID uuid.UUID) (*domain.EnvironmentSnapshot, error)
	Current(ctx context.Context, userID uuid.UUID) (*domain.EnvironmentSnapshot, error)
	Update(ctx context.Context, userID, envID uuid.UUID, input environment.UpdateInput) (*domain.EnvironmentSnapshot, error)
	Delete(ctx context.Context, userID, envID uuid.UUID) error
	List(ctx context.Context, userID uuid.UUID, input environment.ListInput) (*environment.ListResult, error)
	Averages(ctx context.Context, userID uuid.UUID, input environment.AveragesInput) (domain.EnvironmentAverages, error)
}

// EnvironmentHandler serves environment snapshot REST endpoints.
type EnvironmentHandler struct {
	svc environmentService
	log *slog.Logger
}

// NewEnvironmentHandler creates an EnvironmentHandler.
func NewEnvironmentHandler(svc environmentService, logger *slog.Logger) *EnvironmentHandler {
	return &EnvironmentHandler{svc: svc, log: logger.With("handler", "environment")}
}

type createEnvironmentRequest struct {
	Temperature     float64    `json:"temperature"`
	Humidity        float64    `json:"humidity"`
	Pressure        float64    `json:"pressure"`
	Altitude        float64    `json:"altitude"`
	DensityAltitude *int       `json:"densityAltitude"`
	WindSpeed       float64    `json:"windSpeed"`
	WindDirection   float64    `json:"windDirection"`
	Latitude        *float64   `json:"latitude"`
	Longitude       *float64   `json:"longitude"`
	TakenAt         *time.Time `json:"takenAt"`
}

type updateEnvironmentRequest struct {
	Temperature   *float64   `json:"temperature"`
	Humidity      *float64   `json:"humidity"`
	Pressure      *float64   `json:"pressure"`
	Altitude      *float64   `json:"altitude"`
	WindSpeed     *float64   `json:"windSpeed"`
	WindDirection *float64   `json:"windDirection"`
	Latitude      *float64   `json:"latitude"`
	Longitude     *float64   `json:"longitude"`
	TakenAt       *time.Time `json:"takenAt"`
}

type environmentResponse struct {
	ID              string    `json:"id"`
	Temperature     float64   `json:"temperature"`
	Humidity        float64   `json:"humidity"`
	Pressure        float64   `json:"pressure"`
	Altitude        float64   `json:"altitude"`
	DensityAltitude int       `json:"densityAltitude"`
	WindSpeed       float64   `json:"windSpeed"`
	WindDirection   float64   `json:"windDirection"`
	WindBearing     string    `json:"windBearing"`
	Latitude        *float64  `json:"latitude,omitempty"`
	Longitude       *float64  `json:"longitude,omitempty"`
	TakenAt         time.Time `json:"takenAt"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

type environmentListResponse struct {
	Environments []environmentResponse `json:"environments"`
	Page         pageResponse          `json:"page"`
}

type environmentAveragesResponse struct {
	Count              int      `json:"count"`
	AvgTemperature     *float64 `json:"avgTemperature"`
	MinTemperature     *float64 `json:"minTemperature"`
	MaxTemperature     *float64 `json:"maxTemperature"`
	AvgHumidity        *float64 `json:"avgHumidity"`
	AvgPressure        *float64 `json:"avgPressure"`
	AvgAltitude        *float64 `json:"avgAltitude"`
	AvgDensityAltitude *float64 `json:"avgDensityAltitude"`
	AvgWindSpeed       *float64 `json:"avgWindSpeed"`
}

// Create handles POST /api/v1/environments.
func (h *EnvironmentHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFrom(r)
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	var req createEnvironmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	created, err := h.svc.Create(r.Context(), userID, environment.CreateInput{
		Temperature:     req.Temperature,
		Humidity:        req.Humidity,
		Pressure:        req.Pressure,
		Altitude:        req.Altitude,
		DensityAltitude: req.DensityAltitude,
		WindSpeed:       req.WindSpeed,
		WindDirection:   req.WindDirection,
		Latitude:        req.Latitude,
		Longitude:       req.Longitude,
		TakenAt:         req.TakenAt,
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusCreated, toEnvironmentResponse(created))
}

// Get handles GET /api/v1/environments/{id}.
func (h *EnvironmentHandler) Get(w http.ResponseWriter, r *http.Request) {
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

	snap, err := h.svc.Get(r.Context(), userID, id)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toEnvironmentResponse(snap))
}

// Current handles GET /api/v1/environments/current. Returns the user's most
// recently taken snapshot; 404 when none exist yet.
func (h *EnvironmentHandler) Current(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFrom(r)
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	snap, err := h.svc.Current(r.Context(), userID)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toEnvironmentResponse(snap))
}

// Update handles PATCH /api/v1/environments/{id}.
func (h *EnvironmentHandler) Update(w http.ResponseWriter, r *http.Request) {
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

	var req updateEnvironmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	updated, err := h.svc.Update(r.Context(), userID, id, environment.UpdateInput{
		Temperature:   req.Temperature,
		Humidity:      req.Humidity,
		Pressure:      req.Pressure,
		Altitude:      req.Altitude,
		WindSpeed:     req.WindSpeed,
		WindDirection: req.WindDirection,
		Latitude:      req.Latitude,
		Longitude:     req.Longitude,
		TakenAt:       req.TakenAt,
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toEnvironmentResponse(updated))
}

// Delete handles DELETE /api/v1/environments/{id}. Blocked with 409 while
// any DOPE log still references the snapshot.
func (h *EnvironmentHandler) Delete(w http.ResponseWriter, r *http.Request) {
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

// List handles GET /api/v1/environments.
func (h *EnvironmentHandler) List(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFrom(r)
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	q := newQueryReader(r.URL.Query())
	input := environment.ListInput{
		TemperatureMin: q.Float("temperature_min"),
		TemperatureMax: q.Float("temperature_max"),
		TakenFrom:      q.Time("taken_from"),
		TakenTo:        q.Time("taken_to"),
		Page:           q.Int("page", 0),
		Limit:          q.Int("limit", 0),
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

	envs := make([]environmentResponse, len(result.Environments))
	for i := range result.Environments {
		envs[i] = toEnvironmentResponse(&result.Environments[i])
	}

	writeJSON(w, http.StatusOK, environmentListResponse{
		Environments: envs,
		Page:         toPageResponse(result.Page),
	})
}

// Averages handles GET /api/v1/environments/averages. Both from and to are
// required RFC 3339 timestamps.
func (h *EnvironmentHandler) Averages(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFrom(r)
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	q := newQueryReader(r.URL.Query())
	var input environment.AveragesInput
	if v := q.Time("from"); v != nil {
		input.From = *v
	}
	if v := q.Time("to"); v != nil {
		input.To = *v
	}
	if q.Err() != nil {
		q.writeBadQuery(w)
		return
	}

	avg, err := h.svc.Averages(r.Context(), userID, input)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, environmentAveragesResponse{
		Count:              avg.Count,
		AvgTemperature:     avg.AvgTemperature,
		MinTemperature:     avg.MinTemperature,
		MaxTemperature:     avg.MaxTemperature,
		AvgHumidity:        avg.AvgHumidity,
		AvgPressure:        avg.AvgPressure,
		AvgAltitude:        avg.AvgAltitude,
		AvgDensityAltitude: avg.AvgDensityAltitude,
		AvgWindSpeed:       avg.AvgWindSpeed,
	})
}

func toEnvironmentResponse(e *domain.EnvironmentSnapshot) environmentResponse {
	return environmentResponse{
		ID:              e.ID.String(),
		Temperature:     e.Temperature,
		Humidity:        e.Humidity,
		Pressure:        e.Pressure,
		Altitude:        e.Altitude,
		DensityAltitude: e.DensityAltitude,
		WindSpeed:       e.WindSpeed,
		WindDirection:   e.WindDirection,
		WindBearing:     e.WindBearingLabel(),
		Latitude:        e.Latitude,
		Longitude:       e.Longitude,
		TakenAt:         e.TakenAt,
		CreatedAt:       e.CreatedAt,
		UpdatedAt:       e.UpdatedAt,
	}
}
