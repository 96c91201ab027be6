package ammo

import (
	"context"

	"github.com/google/uuid"

	"github.com/leadwind/dopebook-backend/internal/domain"
)

var (
	_ ammoRepo  = &ammoRepoMock{}
	_ rifleRepo = &rifleRepoMock{}
)

type ammoRepoMock struct {
	CreateFunc  func(ctx context.Context, ammo *domain.AmmoProfile) (*domain.AmmoProfile, error)
	GetByIDFunc func(ctx context.Context, userID, ammoID uuid.UUID) (*domain.AmmoProfile, error)
	UpdateFunc  func(ctx context.Context, ammo *domain.AmmoProfile) error
	DeleteFunc  func(ctx context.Context, userID, ammoID uuid.UUID) error
	ListFunc    func(ctx context.Context, userID uuid.UUID, f domain.AmmoFilter) ([]domain.AmmoProfile, int, error)
	StatsFunc   func(ctx context.Context, userID, ammoID uuid.UUID) (domain.AmmoStats, error)
}

func (m *ammoRepoMock) Create(ctx context.Context, ammo *domain.AmmoProfile) (*domain.AmmoProfile, error) {
	return m.CreateFunc(ctx, ammo)
}

func (m *ammoRepoMock) GetByID(ctx context.Context, userID, ammoID uuid.UUID) (*domain.AmmoProfile, error) {
	return m.GetByIDFunc(ctx, userID, ammoID)
}

func (m *ammoRepoMock) Update(ctx context.Context, ammo *domain.AmmoProfile) error {
	return m.UpdateFunc(ctx, ammo)
}

func (m *ammoRepoMock) Delete(ctx context.Context, userID, ammoID uuid.UUID) error {
	return m.DeleteFunc(ctx, userID, ammoID)
}

func (m *ammoRepoMock) List(ctx context.Context, userID uuid.UUID, f domain.AmmoFilter) ([]domain.AmmoProfile, int, error) {
	return m.ListFunc(ctx, userID, f)
}

func (m *ammoRepoMock) Stats(ctx context.Context, userID, ammoID uuid.UUID) (domain.AmmoStats, error) {
	return m.StatsFunc(ctx, userID, ammoID)
}

type rifleRepoMock struct {
	GetByIDFunc func(ctx context.Context, userID, rifleID uuid.UUID) (*domain.RifleProfile, error)
}

func (m *rifleRepoMock) GetByID(ctx context.Context, userID, rifleID uuid.UUID) (*domain.RifleProfile, error) {
	return m.GetByIDFunc(ctx, userID, rifleID)
}
