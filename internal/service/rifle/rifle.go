package rifle

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/leadwind/dopebook-backend/internal/domain"
)

// Create validates the input and stores a new rifle profile for userID.
func (s *Service) Create(ctx context.Context, userID uuid.UUID, input CreateInput) (*domain.RifleProfile, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	profile := &domain.RifleProfile{
		ID:                uuid.New(),
		UserID:            userID,
		Name:              input.Name,
		Caliber:           input.Caliber,
		BarrelLength:      input.BarrelLength,
		TwistRate:         input.TwistRate,
		ZeroDistance:      input.ZeroDistance,
		OpticManufacturer: input.OpticManufacturer,
		OpticModel:        input.OpticModel,
		ReticleType:       input.ReticleType,
		ClickUnit:         input.ClickUnit,
		ClickValue:        input.ClickValue,
		ScopeHeight:       input.ScopeHeight,
		Notes:             input.Notes,
		CreatedAt:         now,
		UpdatedAt:         now,
	}

	created, err := s.rifles.Create(ctx, profile)
	if err != nil {
		return nil, fmt.Errorf("create rifle: %w", err)
	}

	s.log.InfoContext(ctx, "rifle created",
		slog.String("user_id", userID.String()),
		slog.String("rifle_id", created.ID.String()),
	)

	return created, nil
}

// Get returns the user's rifle profile by ID. A profile owned by another
// user is indistinguishable from a missing one.
func (s *Service) Get(ctx context.Context, userID, rifleID uuid.UUID) (*domain.RifleProfile, error) {
	profile, err := s.rifles.GetByID(ctx, userID, rifleID)
	if err != nil {
		return nil, fmt.Errorf("get rifle: %w", err)
	}
	return profile, nil
}

// Update merges the supplied fields onto the stored profile, re-validates and
// writes the full record back. An empty input is a no-op on stored values.
func (s *Service) Update(ctx context.Context, userID, rifleID uuid.UUID, input UpdateInput) (*domain.RifleProfile, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	profile, err := s.rifles.GetByID(ctx, userID, rifleID)
	if err != nil {
		return nil, fmt.Errorf("get rifle: %w", err)
	}

	applyUpdate(profile, input)
	profile.UpdatedAt = time.Now().UTC()

	if err := s.rifles.Update(ctx, profile); err != nil {
		return nil, fmt.Errorf("update rifle: %w", err)
	}

	s.log.InfoContext(ctx, "rifle updated",
		slog.String("user_id", userID.String()),
		slog.String("rifle_id", rifleID.String()),
	)

	return profile, nil
}

func applyUpdate(p *domain.RifleProfile, input UpdateInput) {
	if input.Name != nil {
		p.Name = *input.Name
	}
	if input.Caliber != nil {
		p.Caliber = *input.Caliber
	}
	if input.BarrelLength != nil {
		p.BarrelLength = *input.BarrelLength
	}
	if input.TwistRate != nil {
		p.TwistRate = *input.TwistRate
	}
	if input.ZeroDistance != nil {
		p.ZeroDistance = *input.ZeroDistance
	}
	if input.OpticManufacturer != nil {
		p.OpticManufacturer = input.OpticManufacturer
	}
	if input.OpticModel != nil {
		p.OpticModel = input.OpticModel
	}
	if input.ReticleType != nil {
		p.ReticleType = input.ReticleType
	}
	if input.ClickUnit != nil {
		p.ClickUnit = *input.ClickUnit
	}
	if input.ClickValue != nil {
		p.ClickValue = *input.ClickValue
	}
	if input.ScopeHeight != nil {
		p.ScopeHeight = *input.ScopeHeight
	}
	if input.Notes != nil {
		p.Notes = input.Notes
	}
}

// Delete removes the profile. Dependent ammo profiles and DOPE logs go with
// it via the storage cascade.
func (s *Service) Delete(ctx context.Context, userID, rifleID uuid.UUID) error {
	if err := s.rifles.Delete(ctx, userID, rifleID); err != nil {
		return fmt.Errorf("delete rifle: %w", err)
	}

	s.log.InfoContext(ctx, "rifle deleted",
		slog.String("user_id", userID.String()),
		slog.String("rifle_id", rifleID.String()),
	)

	return nil
}

// List returns a page of the user's rifle profiles matching the filter.
func (s *Service) List(ctx context.Context, userID uuid.UUID, input ListInput) (*ListResult, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	f := domain.RifleFilter{
		Caliber:   input.Caliber,
		Search:    input.Search,
		SortBy:    input.SortBy,
		SortOrder: input.SortOrder,
		PageRequest: domain.PageRequest{
			Page:  input.Page,
			Limit: input.Limit,
		},
	}
	f.Normalize()

	rifles, total, err := s.rifles.List(ctx, userID, f)
	if err != nil {
		return nil, fmt.Errorf("list rifles: %w", err)
	}

	return &ListResult{
		Rifles: rifles,
		Page:   domain.NewPageInfo(f.PageRequest, total),
	}, nil
}

// Stats returns aggregate usage numbers for one rifle profile.
func (s *Service) Stats(ctx context.Context, userID, rifleID uuid.UUID) (domain.RifleStats, error) {
	// Existence (and ownership) check first so an unknown rifle is an error,
	// not an all-zero aggregate.
	if _, err := s.rifles.GetByID(ctx, userID, rifleID); err != nil {
		return domain.RifleStats{}, fmt.Errorf("get rifle: %w", err)
	}

	stats, err := s.rifles.Stats(ctx, userID, rifleID)
	if err != nil {
		return domain.RifleStats{}, fmt.Errorf("rifle stats: %w", err)
	}

	return stats, nil
}
