// Package ammo implements ammunition profile business logic.
package ammo

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/leadwind/dopebook-backend/internal/domain"
)

// ---------------------------------------------------------------------------
// Consumer-defined interfaces (private)
// ---------------------------------------------------------------------------

type ammoRepo interface {
	Create(ctx context.Context, ammo *domain.AmmoProfile) (*domain.AmmoProfile, error)
	GetByID(ctx context.Context, userID, ammoID uuid.UUID) (*domain.AmmoProfile, error)
	Update(ctx context.Context, ammo *domain.AmmoProfile) error
	Delete(ctx context.Context, userID, ammoID uuid.UUID) error
	List(ctx context.Context, userID uuid.UUID, f domain.AmmoFilter) ([]domain.AmmoProfile, int, error)
	Stats(ctx context.Context, userID, ammoID uuid.UUID) (domain.AmmoStats, error)
}

type rifleRepo interface {
	GetByID(ctx context.Context, userID, rifleID uuid.UUID) (*domain.RifleProfile, error)
}

// ---------------------------------------------------------------------------
// Service
// ---------------------------------------------------------------------------

// Service implements ammunition profile business logic.
type Service struct {
	ammo   ammoRepo
	rifles rifleRepo
	log    *slog.Logger
}

// NewService creates a new ammo service.
func NewService(log *slog.Logger, ammo ammoRepo, rifles rifleRepo) *Service {
	return &Service{
		ammo:   ammo,
		rifles: rifles,
		log:    log.With("service", "ammo"),
	}
}
