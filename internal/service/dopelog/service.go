// Package dopelog implements DOPE log business logic and card assembly.
package dopelog

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/leadwind/dopebook-backend/internal/domain"
)

// ---------------------------------------------------------------------------
// Consumer-defined interfaces (private)
// ---------------------------------------------------------------------------

type dopeLogRepo interface {
	Create(ctx context.Context, log *domain.DopeLog) (*domain.DopeLog, error)
	GetByID(ctx context.Context, userID, logID uuid.UUID) (*domain.DopeLog, error)
	Update(ctx context.Context, log *domain.DopeLog) error
	Delete(ctx context.Context, userID, logID uuid.UUID) error
	List(ctx context.Context, userID uuid.UUID, f domain.DopeLogFilter) ([]domain.DopeLog, int, error)
	ListForCard(ctx context.Context, userID, rifleID, ammoID uuid.UUID) ([]domain.DopeLog, error)
}

type rifleRepo interface {
	GetByID(ctx context.Context, userID, rifleID uuid.UUID) (*domain.RifleProfile, error)
}

type ammoRepo interface {
	GetByID(ctx context.Context, userID, ammoID uuid.UUID) (*domain.AmmoProfile, error)
}

type environmentRepo interface {
	GetByID(ctx context.Context, userID, envID uuid.UUID) (*domain.EnvironmentSnapshot, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// ---------------------------------------------------------------------------
// Service
// ---------------------------------------------------------------------------

// Service implements DOPE log business logic.
type Service struct {
	logs   dopeLogRepo
	rifles rifleRepo
	ammo   ammoRepo
	envs   environmentRepo
	tx     txManager
	log    *slog.Logger
}

// NewService creates a new dopelog service.
func NewService(log *slog.Logger, logs dopeLogRepo, rifles rifleRepo, ammo ammoRepo, envs environmentRepo, tx txManager) *Service {
	return &Service{
		logs:   logs,
		rifles: rifles,
		ammo:   ammo,
		envs:   envs,
		tx:     tx,
		log:    log.With("service", "dopelog"),
	}
}
