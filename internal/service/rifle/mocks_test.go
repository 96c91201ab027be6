package rifle

import (
	"context"

	"github.com/google/uuid"

	"github.com/leadwind/dopebook-backend/internal/domain"
)

var _ rifleRepo = &rifleRepoMock{}

type rifleRepoMock struct {
	CreateFunc  func(ctx context.Context, rifle *domain.RifleProfile) (*domain.RifleProfile, error)
	GetByIDFunc func(ctx context.Context, userID, rifleID uuid.UUID) (*domain.RifleProfile, error)
	UpdateFunc  func(ctx context.Context, rifle *domain.RifleProfile) error
	DeleteFunc  func(ctx context.Context, userID, rifleID uuid.UUID) error
	ListFunc    func(ctx context.Context, userID uuid.UUID, f domain.RifleFilter) ([]domain.RifleProfile, int, error)
	StatsFunc   func(ctx context.Context, userID, rifleID uuid.UUID) (domain.RifleStats, error)
}

func (m *rifleRepoMock) Create(ctx context.Context, rifle *domain.RifleProfile) (*domain.RifleProfile, error) {
	return m.CreateFunc(ctx, rifle)
}

func (m *rifleRepoMock) GetByID(ctx context.Context, userID, rifleID uuid.UUID) (*domain.RifleProfile, error) {
	return m.GetByIDFunc(ctx, userID, rifleID)
}

func (m *rifleRepoMock) Update(ctx context.Context, rifle *domain.RifleProfile) error {
	return m.UpdateFunc(ctx, rifle)
}

func (m *rifleRepoMock) Delete(ctx context.Context, userID, rifleID uuid.UUID) error {
	return m.DeleteFunc(ctx, userID, rifleID)
}

func (m *rifleRepoMock) List(ctx context.Context, userID uuid.UUID, f domain.RifleFilter) ([]domain.RifleProfile, int, error) {
	return m.ListFunc(ctx, userID, f)
}

func (m *rifleRepoMock) Stats(ctx context.Context, userID, rifleID uuid.UUID) (domain.RifleStats, error) {
	return m.StatsFunc(ctx, userID, rifleID)
}
