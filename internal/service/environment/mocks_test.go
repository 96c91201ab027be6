package environment

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/leadwind/dopebook-backend/internal/domain"
)

var (
	_ environmentRepo = &environmentRepoMock{}
	_ txManager       = &txManagerMock{}
)

type environmentRepoMock struct {
	CreateFunc          func(ctx context.Context, env *domain.EnvironmentSnapshot) (*domain.EnvironmentSnapshot, error)
	GetByIDFunc         func(ctx context.Context, userID, envID uuid.UUID) (*domain.EnvironmentSnapshot, error)
	LatestFunc          func(ctx context.Context, userID uuid.UUID) (*domain.EnvironmentSnapshot, error)
	UpdateFunc          func(ctx context.Context, env *domain.EnvironmentSnapshot) error
	CountReferencesFunc func(ctx context.Context, userID, envID uuid.UUID) (int, error)
	DeleteFunc          func(ctx context.Context, userID, envID uuid.UUID) error
	ListFunc            func(ctx context.Context, userID uuid.UUID, f domain.EnvironmentFilter) ([]domain.EnvironmentSnapshot, int, error)
	AveragesFunc        func(ctx context.Context, userID uuid.UUID, from, to time.Time) (domain.EnvironmentAverages, error)
}

func (m *environmentRepoMock) Create(ctx context.Context, env *domain.EnvironmentSnapshot) (*domain.EnvironmentSnapshot, error) {
	return m.CreateFunc(ctx, env)
}

func (m *environmentRepoMock) GetByID(ctx context.Context, userID, envID uuid.UUID) (*domain.EnvironmentSnapshot, error) {
	return m.GetByIDFunc(ctx, userID, envID)
}

func (m *environmentRepoMock) Latest(ctx context.Context, userID uuid.UUID) (*domain.EnvironmentSnapshot, error) {
	return m.LatestFunc(ctx, userID)
}

func (m *environmentRepoMock) Update(ctx context.Context, env *domain.EnvironmentSnapshot) error {
	return m.UpdateFunc(ctx, env)
}

func (m *environmentRepoMock) CountReferences(ctx context.Context, userID, envID uuid.UUID) (int, error) {
	return m.CountReferencesFunc(ctx, userID, envID)
}

func (m *environmentRepoMock) Delete(ctx context.Context, userID, envID uuid.UUID) error {
	return m.DeleteFunc(ctx, userID, envID)
}

func (m *environmentRepoMock) List(ctx context.Context, userID uuid.UUID, f domain.EnvironmentFilter) ([]domain.EnvironmentSnapshot, int, error) {
	return m.ListFunc(ctx, userID, f)
}

func (m *environmentRepoMock) Averages(ctx context.Context, userID uuid.UUID, from, to time.Time) (domain.EnvironmentAverages, error) {
	return m.AveragesFunc(ctx, userID, from, to)
}

// txManagerMock runs the callback inline, no transaction semantics.
type txManagerMock struct{}

func (m *txManagerMock) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}
