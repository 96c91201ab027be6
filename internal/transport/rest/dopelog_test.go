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
	"github.com/leadwind/dopebook-backend/internal/service/dopelog"
)

func TestDopeLogCreate_Success(t *testing.T) {
	t.Parallel()

	userID := uuid.New()
	rifleID := uuid.New()

	svc := &dopeLogServiceMock{
		CreateFunc: func(_ context.Context, gotUser uuid.UUID, input dopelog.CreateInput) (*domain.DopeLog, error) {
			if gotUser != userID {
				t.Errorf("expected user %s, got %s", userID, gotUser)
			}
			if input.RifleID != rifleID {
				t.Errorf("expected rifle %s, got %s", rifleID, input.RifleID)
			}
			entry := &domain.DopeLog{
				ID:                  uuid.New(),
				UserID:              gotUser,
				RifleID:             input.RifleID,
				AmmoID:              input.AmmoID,
				EnvironmentID:       input.EnvironmentID,
				Distance:            input.Distance,
				DistanceUnit:        input.DistanceUnit,
				ElevationCorrection: input.ElevationCorrection,
				WindageCorrection:   input.WindageCorrection,
				CorrectionUnit:      input.CorrectionUnit,
				TargetType:          input.TargetType,
				HitCount:            input.HitCount,
				ShotCount:           input.ShotCount,
				ShotAt:              time.Now().UTC(),
			}
			entry.Derive()
			return entry, nil
		},
	}

	h := NewDopeLogHandler(svc, slog.Default())

	body := `{
		"rifleId": "` + rifleID.String() + `",
		"ammoId": "` + uuid.NewString() + `",
		"environmentId": "` + uuid.NewString() + `",
		"distance": 500,
		"distanceUnit": "meters",
		"elevationCorrection": 3.4,
		"windageCorrection": 0.3,
		"correctionUnit": "MIL",
		"targetType": "steel",
		"hitCount": 7,
		"shotCount": 10
	}`
	req := authedRequest(http.MethodPost, "/api/v1/dope-logs", body, userID)
	rec := httptest.NewRecorder()

	h.Create(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected status 201, got %d: %s", rec.Code, rec.Body.String())
	}

	var resp dopeLogResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}

	if resp.DistanceYards < 546 || resp.DistanceYards > 547 {
		t.Errorf("expected 500 m normalized to ~546.8 yards, got %v", resp.DistanceYards)
	}
	if resp.HitPercentage == nil || *resp.HitPercentage != 70 {
		t.Errorf("expected hit percentage 70, got %v", resp.HitPercentage)
	}
}

func TestDopeLogCreate_NoUser(t *testing.T) {
	t.Parallel()

	h := NewDopeLogHandler(&dopeLogServiceMock{}, slog.Default())

	req := httptest.NewRequest(http.MethodPost, "/api/v1/dope-logs", nil)
	rec := httptest.NewRecorder()

	h.Create(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected status 401, got %d", rec.Code)
	}
}

func TestDopeLogCreate_ReferenceErrorMapsTo422(t *testing.T) {
	t.Parallel()

	svc := &dopeLogServiceMock{
		CreateFunc: func(_ context.Context, _ uuid.UUID, _ dopelog.CreateInput) (*domain.DopeLog, error) {
			return nil, domain.NewReferenceError("ammo_id", uuid.New())
		},
	}

	h := NewDopeLogHandler(svc, slog.Default())

	body := `{"rifleId":"` + uuid.NewString() + `","ammoId":"` + uuid.NewString() + `","environmentId":"` + uuid.NewString() + `","distance":500,"distanceUnit":"yards","correctionUnit":"MIL","targetType":"steel"}`
	req := authedRequest(http.MethodPost, "/api/v1/dope-logs", body, uuid.New())
	rec := httptest.NewRecorder()

	h.Create(rec, req)

	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected status 422, got %d", rec.Code)
	}

	var resp errorResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}

	if len(resp.Fields) != 1 || resp.Fields[0].Field != "ammo_id" {
		t.Errorf("expected ammo_id field in response, got %+v", resp.Fields)
	}
}

func TestDopeLogList_BadQueryParam(t *testing.T) {
	t.Parallel()

	h := NewDopeLogHandler(&dopeLogServiceMock{}, slog.Default())

	req := authedRequest(http.MethodGet, "/api/v1/dope-logs?distance_min=abc", "", uuid.New())
	rec := httptest.NewRecorder()

	h.List(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d: %s", rec.Code, rec.Body.String())
	}
}

func TestDopeLogList_Success(t *testing.T) {
	t.Parallel()

	userID := uuid.New()
	svc := &dopeLogServiceMock{
		ListFunc: func(_ context.Context, _ uuid.UUID, input dopelog.ListInput) (*dopelog.ListResult, error) {
			if input.Sort != domain.DopeLogSortDistanceAsc {
				t.Errorf("expected sort distance_asc, got %q", input.Sort)
			}
			entry := domain.DopeLog{ID: uuid.New(), UserID: userID, Distance: 600, DistanceUnit: domain.DistanceUnitYards}
			entry.Derive()
			return &dopelog.ListResult{
				Logs: []domain.DopeLog{entry},
				Page: domain.PageInfo{Page: 1, Limit: 10, Total: 1, TotalPages: 1},
			}, nil
		},
	}

	h := NewDopeLogHandler(svc, slog.Default())

	req := authedRequest(http.MethodGet, "/api/v1/dope-logs?sort=distance_asc", "", userID)
	rec := httptest.NewRecorder()

	h.List(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var resp dopeLogListResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}

	if len(resp.Logs) != 1 {
		t.Fatalf("expected 1 log, got %d", len(resp.Logs))
	}
	if resp.Page.Total != 1 || resp.Page.TotalPages != 1 {
		t.Errorf("unexpected page info: %+v", resp.Page)
	}
}

func TestDopeLogDelete_NotFound(t *testing.T) {
	t.Parallel()

	svc := &dopeLogServiceMock{
		DeleteFunc: func(_ context.Context, _, _ uuid.UUID) error {
			return domain.ErrNotFound
		},
	}

	h := NewDopeLogHandler(svc, slog.Default())

	id := uuid.New()
	req := authedRequest(http.MethodDelete, "/api/v1/dope-logs/"+id.String(), "", uuid.New())
	req.SetPathValue("id", id.String())
	rec := httptest.NewRecorder()

	h.Delete(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected status 404, got %d", rec.Code)
	}
}

func TestDopeCard_MissingRifleID(t *testing.T) {
	t.Parallel()

	h := NewDopeLogHandler(&dopeLogServiceMock{}, slog.Default())

	req := authedRequest(http.MethodGet, "/api/v1/dope-card?ammo_id="+uuid.NewString(), "", uuid.New())
	rec := httptest.NewRecorder()

	h.Card(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", rec.Code)
	}
}

func TestDopeCard_Success(t *testing.T) {
	t.Parallel()

	userID := uuid.New()
	rifleID := uuid.New()
	ammoID := uuid.New()

	svc := &dopeLogServiceMock{
		CardFunc: func(_ context.Context, gotUser, gotRifle, gotAmmo uuid.UUID) (*domain.DopeCard, error) {
			if gotUser != userID || gotRifle != rifleID || gotAmmo != ammoID {
				t.Errorf("unexpected card arguments: %s %s %s", gotUser, gotRifle, gotAmmo)
			}
			return &domain.DopeCard{
				Rifle: domain.RifleProfile{ID: rifleID, Name: "PRS Rifle", ClickUnit: domain.ClickUnitMIL},
				Ammo:  domain.AmmoProfile{ID: ammoID, RifleID: rifleID, Name: "140 ELD-M", BulletWeight: 140, MuzzleVelocity: 2710},
				Entries: []domain.DopeCardEntry{
					{Distance: 300, DistanceUnit: domain.DistanceUnitYards, DistanceYards: 300, ElevationCorrection: 1.1, CorrectionUnit: domain.ClickUnitMIL},
					{Distance: 800, DistanceUnit: domain.DistanceUnitYards, DistanceYards: 800, ElevationCorrection: 5.8, CorrectionUnit: domain.ClickUnitMIL},
				},
				GeneratedAt: time.Now().UTC(),
			}, nil
		},
	}

	h := NewDopeLogHandler(svc, slog.Default())

	req := authedRequest(http.MethodGet, "/api/v1/dope-card?rifle_id="+rifleID.String()+"&ammo_id="+ammoID.String(), "", userID)
	rec := httptest.NewRecorder()

	h.Card(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var resp dopeCardResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}

	if resp.Rifle.Name != "PRS Rifle" {
		t.Errorf("expected rifle name in card, got %q", resp.Rifle.Name)
	}
	if len(resp.Entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(resp.Entries))
	}
	if resp.Entries[0].DistanceYards != 300 || resp.Entries[1].DistanceYards != 800 {
		t.Errorf("expected entries in repo order 300/800, got %v/%v",
			resp.Entries[0].DistanceYards, resp.Entries[1].DistanceYards)
	}
	if resp.GeneratedAt.IsZero() {
		t.Error("expected non-zero generatedAt")
	}
}
