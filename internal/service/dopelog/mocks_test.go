package dopelog

import (
	"context"

	"github.com/google/uuid"

	"github.com/leadwind/dopebook-backend/internal/domain"
)

var (
	_ dopeLogRepo     = &dopeLogRepoMock{}
	_ rifleRepo       = &rifleRepoMock{}
	_ ammoRepo        = &ammoRepoMock{}
	_ environmentRepo = &environmentRepoMock{}
	_ txManager       = &txManagerMock{}
)

type dopeLogRepoMock struct {
	CreateFunc      func(ctx context.Context, log *domain.DopeLog) (*domain.DopeLog, error)
	GetByIDFunc     func(ctx context.Context, userID, logID uuid.UUID) (*domain.DopeLog, error)
	UpdateFunc      func(ctx context.Context, log *domain.DopeLog) error
	DeleteFunc      func(ctx context.Context, userID, logID uuid.UUID) error
	ListFunc        func(ctx context.Context, userID uuid.UUID, f domain.DopeLogFilter) ([]domain.DopeLog, int, error)
	ListForCardFunc func(ctx context.Context, userID, rifleID, ammoID uuid.UUID) ([]domain.DopeLog, error)
}

func (m *dopeLogRepoMock) Create(ctx context.Context, log *domain.DopeLog) (*domain.DopeLog, error) {
	return m.CreateFunc(ctx, log)
}

func (m *dopeLogRepoMock) GetByID(ctx context.Context, userID, logID uuid.UUID) (*domain.DopeLog, error) {
	return m.GetByIDFunc(ctx, userID, logID)
}

func (m *dopeLogRepoMock) Update(ctx context.Context, log *domain.DopeLog) error {
	return m.UpdateFunc(ctx, log)
}

func (m *dopeLogRepoMock) Delete(ctx context.Context, userID, logID uuid.UUID) error {
	return m.DeleteFunc(ctx, userID, logID)
}

func (m *dopeLogRepoMock) List(ctx context.Context, userID uuid.UUID, f domain.DopeLogFilter) ([]domain.DopeLog, int, error) {
	return m.ListFunc(ctx, userID, f)
}

func (m *dopeLogRepoMock) ListForCard(ctx context.Context, userID, rifleID, ammoID uuid.UUID) ([]domain.DopeLog, error) {
	return m.ListForCardFunc(ctx, userID, rifleID, ammoID)
}

type rifleRepoMock struct {
	GetByIDFunc func(ctx context.Context, userID, rifleID uuid.UUID) (*domain.RifleProfile, error)
}

func (m *rifleRepoMock) GetByID(ctx context.Context, userID, rifleID uuid.UUID) (*domain.RifleProfile, error) {
	return m.GetByIDFunc(ctx, userID, rifleID)
}

type ammoRepoMock struct {
	GetByIDFunc func(ctx context.Context, userID, ammoID uuid.UUID) (*domain.AmmoProfile, error)
}

func (m *ammoRepoMock) GetByID(ctx context.Context, userID, ammoID uuid.UUID) (*domain.AmmoProfile, error) {
	return m.GetByIDFunc(ctx, userID, ammoID)
}

type environmentRepoMock struct {
	GetByIDFunc func(ctx context.Context, userID, envID uuid.UUID) (*domain.EnvironmentSnapshot, error)
}

func (m *environmentRepoMock) GetByID(ctx context.Context, userID, envID uuid.UUID) (*domain.EnvironmentSnapshot, error) {
	return m.GetByIDFunc(ctx, userID, envID)
}

// txManagerMock runs the callback inline, no transaction semantics.
type txManagerMock struct{}

func (m *txManagerMock) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}
