// Package environment implements environment snapshot business logic.
package environment

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/leadwind/dopebook-backend/internal/domain"
)

// ---------------------------------------------------------------------------
// Consumer-defined interfaces (private)
// ---------------------------------------------------------------------------

type environmentRepo interface {
	Create(ctx context.Context, env *domain.EnvironmentSnapshot) (*domain.EnvironmentSnapshot, error)
	GetByID(ctx context.Context, userID, envID uuid.UUID) (*domain.EnvironmentSnapshot, error)
	Latest(ctx context.Context, userID uuid.UUID) (*domain.EnvironmentSnapshot, error)
	Update(ctx context.Context, env *domain.EnvironmentSnapshot) error
	CountReferences(ctx context.Context, userID, envID uuid.UUID) (int, error)
	Delete(ctx context.Context, userID, envID uuid.UUID) error
	List(ctx context.Context, userID uuid.UUID, f domain.EnvironmentFilter) ([]domain.EnvironmentSnapshot, int, error)
	Averages(ctx context.Context, userID uuid.UUID, from, to time.Time) (domain.EnvironmentAverages, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// ---------------------------------------------------------------------------
// Service
// ---------------------------------------------------------------------------

// Service implements environment snapshot business logic.
type Service struct {
	envs environmentRepo
	tx   txManager
	log  *slog.Logger
}

// NewService creates a new environment service.
func NewService(log *slog.Logger, envs environmentRepo, tx txManager) *Service {
	return &Service{
		envs: envs,
		tx:   tx,
		log:  log.With("service", "environment"),
	}
}
