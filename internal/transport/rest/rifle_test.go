package rest

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/leadwind/dopebook-backend/internal/domain"
	"github.com/leadwind/dopebook-backend/internal/service/rifle"
)

func storedRifle(userID uuid.UUID) *domain.RifleProfile {
	return &domain.RifleProfile{
		ID:           uuid.New(),
		UserID:       userID,
		Name:         "PRS Rifle",
		Caliber:      "6.5 Creedmoor",
		BarrelLength: 26,
		TwistRate:    "1:8",
		ZeroDistance: 100,
		ClickUnit:    domain.ClickUnitMIL,
		ClickValue:   0.1,
		ScopeHeight:  1.8,
		CreatedAt:    time.Now().UTC(),
		UpdatedAt:    time.Now().UTC(),
	}
}

func TestRifleGet_Success(t *testing.T) {
	t.Parallel()

	userID := uuid.New()
	stored := storedRifle(userID)

	svc := &rifleServiceMock{
		GetFunc: func(_ context.Context, gotUser, gotRifle uuid.UUID) (*domain.RifleProfile, error) {
			if gotUser != userID {
				t.Errorf("expected user %s, got %s", userID, gotUser)
			}
			if gotRifle != stored.ID {
				t.Errorf("expected rifle %s, got %s", stored.ID, gotRifle)
			}
			return stored, nil
		},
	}

	h := NewRifleHandler(svc, slog.Default())

	req := authedRequest(http.MethodGet, "/api/v1/rifles/"+stored.ID.String(), "", userID)
	req.SetPathValue("id", stored.ID.String())
	rec := httptest.NewRecorder()

	h.Get(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var resp rifleResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}

	if resp.ID != stored.ID.String() {
		t.Errorf("expected id %s, got %s", stored.ID, resp.ID)
	}
	if resp.ClickUnit != "MIL" {
		t.Errorf("expected click unit MIL, got %q", resp.ClickUnit)
	}
}

func TestRifleGet_InvalidID(t *testing.T) {
	t.Parallel()

	h := NewRifleHandler(&rifleServiceMock{}, slog.Default())

	req := authedRequest(http.MethodGet, "/api/v1/rifles/not-a-uuid", "", uuid.New())
	req.SetPathValue("id", "not-a-uuid")
	rec := httptest.NewRecorder()

	h.Get(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", rec.Code)
	}
}

func TestRifleCreate_ValidationError(t *testing.T) {
	t.Parallel()

	svc := &rifleServiceMock{
		CreateFunc: func(_ context.Context, _ uuid.UUID, _ rifle.CreateInput) (*domain.RifleProfile, error) {
			return nil, domain.NewValidationErrors([]domain.FieldError{
				{Field: "name", Message: "required"},
				{Field: "twist_rate", Message: `must match "1:<integer>"`},
			})
		},
	}

	h := NewRifleHandler(svc, slog.Default())

	req := authedRequest(http.MethodPost, "/api/v1/rifles", `{}`, uuid.New())
	rec := httptest.NewRecorder()

	h.Create(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", rec.Code)
	}

	var resp errorResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}

	if len(resp.Fields) != 2 {
		t.Fatalf("expected 2 field errors, got %d", len(resp.Fields))
	}
}

func TestRifleUpdate_PassesSuppliedFieldsOnly(t *testing.T) {
	t.Parallel()

	userID := uuid.New()
	stored := storedRifle(userID)

	svc := &rifleServiceMock{
		UpdateFunc: func(_ context.Context, _, _ uuid.UUID, input rifle.UpdateInput) (*domain.RifleProfile, error) {
			if input.Name == nil || *input.Name != "Match Rifle" {
				t.Errorf("expected name update, got %v", input.Name)
			}
			if input.Caliber != nil {
				t.Errorf("expected caliber untouched, got %v", *input.Caliber)
			}
			stored.Name = *input.Name
			return stored, nil
		},
	}

	h := NewRifleHandler(svc, slog.Default())

	req := authedRequest(http.MethodPatch, "/api/v1/rifles/"+stored.ID.String(), `{"name":"Match Rifle"}`, userID)
	req.SetPathValue("id", stored.ID.String())
	rec := httptest.NewRecorder()

	h.Update(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", rec.Code, rec.Body.String())
	}
}

func TestRifleDelete_Success(t *testing.T) {
	t.Parallel()

	svc := &rifleServiceMock{
		DeleteFunc: func(_ context.Context, _, _ uuid.UUID) error {
			return nil
		},
	}

	h := NewRifleHandler(svc, slog.Default())

	id := uuid.New()
	req := authedRequest(http.MethodDelete, "/api/v1/rifles/"+id.String(), "", uuid.New())
	req.SetPathValue("id", id.String())
	rec := httptest.NewRecorder()

	h.Delete(rec, req)

	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected status 204, got %d", rec.Code)
	}
}

func TestRifleList_ForwardsFilter(t *testing.T) {
	t.Parallel()

	userID := uuid.New()
	svc := &rifleServiceMock{
		ListFunc: func(_ context.Context, _ uuid.UUID, input rifle.ListInput) (*rifle.ListResult, error) {
			if input.Caliber == nil || *input.Caliber != "6.5 Creedmoor" {
				t.Errorf("expected caliber filter, got %v", input.Caliber)
			}
			if input.SortBy != "name" || input.SortOrder != domain.SortAsc {
				t.Errorf("expected sort name/ASC, got %q/%q", input.SortBy, input.SortOrder)
			}
			return &rifle.ListResult{
				Rifles: []domain.RifleProfile{*storedRifle(userID)},
				Page:   domain.PageInfo{Page: 1, Limit: 10, Total: 1, TotalPages: 1},
			}, nil
		},
	}

	h := NewRifleHandler(svc, slog.Default())

	req := authedRequest(http.MethodGet, "/api/v1/rifles?caliber=6.5+Creedmoor&sort_by=name&sort_order=ASC", "", userID)
	rec := httptest.NewRecorder()

	h.List(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var resp rifleListResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}

	if len(resp.Rifles) != 1 {
		t.Fatalf("expected 1 rifle, got %d", len(resp.Rifles))
	}
}

func TestRifleStats_Success(t *testing.T) {
	t.Parallel()

	avgHit := 82.5
	svc := &rifleServiceMock{
		StatsFunc: func(_ context.Context, _, _ uuid.UUID) (domain.RifleStats, error) {
			return domain.RifleStats{
				AmmoCount:        2,
				DopeCount:        14,
				AvgHitPercentage: &avgHit,
			}, nil
		},
	}

	h := NewRifleHandler(svc, slog.Default())

	id := uuid.New()
	req := authedRequest(http.MethodGet, "/api/v1/rifles/"+id.String()+"/stats", "", uuid.New())
	req.SetPathValue("id", id.String())
	rec := httptest.NewRecorder()

	h.Stats(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var resp rifleStatsResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}

	if resp.AmmoCount != 2 || resp.DopeCount != 14 {
		t.Errorf("unexpected counts: %+v", resp)
	}
	if resp.AvgHitPercentage == nil || *resp.AvgHitPercentage != 82.5 {
		t.Errorf("expected avg hit percentage 82.5, got %v", resp.AvgHitPercentage)
	}
}

func TestRifleDelete_ConflictMapsTo409(t *testing.T) {
	t.Parallel()

	svc := &rifleServiceMock{
		DeleteFunc: func(_ context.Context, _, _ uuid.UUID) error {
			return &domain.ConflictError{Message: "snapshot is referenced", References: 3}
		},
	}

	h := NewRifleHandler(svc, slog.Default())

	id := uuid.New()
	req := authedRequest(http.MethodDelete, "/api/v1/rifles/"+id.String(), "", uuid.New())
	req.SetPathValue("id", id.String())
	rec := httptest.NewRecorder()

	h.Delete(rec, req)

	if rec.Code != http.StatusConflict {
		t.Fatalf("expected status 409, got %d", rec.Code)
	}
}
