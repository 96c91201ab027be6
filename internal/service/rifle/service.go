// Package rifle implements rifle profile business logic.
package rifle

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/leadwind/dopebook-backend/internal/domain"
)

// ---------------------------------------------------------------------------
// Consumer-defined interfaces (private)
// ---------------------------------------------------------------------------

type rifleRepo interface {
	Create(ctx context.Context, rifle *domain.RifleProfile) (*domain.RifleProfile, error)
	GetByID(ctx context.Context, userID, rifleID uuid.UUID) (*domain.RifleProfile, error)
	Update(ctx context.Context, rifle *domain.RifleProfile) error
	Delete(ctx context.Context, userID, rifleID uuid.UUID) error
	List(ctx context.Context, userID uuid.UUID, f domain.RifleFilter) ([]domain.RifleProfile, int, error)
	Stats(ctx context.Context, userID, rifleID uuid.UUID) (domain.RifleStats, error)
}

// ---------------------------------------------------------------------------
// Service
// ---------------------------------------------------------------------------

// Service implements rifle profile business logic.
type Service struct {
	rifles rifleRepo
	log    *slog.Logger
}

// NewService creates a new rifle service.
func NewService(log *slog.Logger, rifles rifleRepo) *Service {
	return &Service{
		rifles: rifles,
		log:    log.With("service", "rifle"),
	}
}
