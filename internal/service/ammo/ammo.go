package ammo

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/leadwind/dopebook-backend/internal/domain"
)

// checkRifleOwned verifies the rifle exists and belongs to userID. A rifle
// that is absent or owned by someone else surfaces as a reference error on
// rifle_id, never as a bare not-found.
func (s *Service) checkRifleOwned(ctx context.Context, userID, rifleID uuid.UUID) error {
	if _, err := s.rifles.GetByID(ctx, userID, rifleID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.NewReferenceError("rifle_id", rifleID)
		}
		return fmt.Errorf("check rifle: %w", err)
	}
	return nil
}

// Create validates the input, verifies rifle ownership and stores a new
// ammo profile for userID.
func (s *Service) Create(ctx context.Context, userID uuid.UUID, input CreateInput) (*domain.AmmoProfile, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	if err := s.checkRifleOwned(ctx, userID, input.RifleID); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	profile := &domain.AmmoProfile{
		ID:                     uuid.New(),
		UserID:                 userID,
		RifleID:                input.RifleID,
		Name:                   input.Name,
		Manufacturer:           input.Manufacturer,
		BulletWeight:           input.BulletWeight,
		BulletType:             input.BulletType,
		BallisticCoefficientG1: input.BallisticCoefficientG1,
		BallisticCoefficientG7: input.BallisticCoefficientG7,
		MuzzleVelocity:         input.MuzzleVelocity,
		PowderType:             input.PowderType,
		PowderWeight:           input.PowderWeight,
		LotNumber:              input.LotNumber,
		Notes:                  input.Notes,
		CreatedAt:              now,
		UpdatedAt:              now,
	}

	created, err := s.ammo.Create(ctx, profile)
	if err != nil {
		return nil, fmt.Errorf("create ammo: %w", err)
	}

	s.log.InfoContext(ctx, "ammo created",
		slog.String("user_id", userID.String()),
		slog.String("ammo_id", created.ID.String()),
		slog.String("rifle_id", created.RifleID.String()),
	)

	return created, nil
}

// Get returns the user's ammo profile by ID.
func (s *Service) Get(ctx context.Context, userID, ammoID uuid.UUID) (*domain.AmmoProfile, error) {
	profile, err := s.ammo.GetByID(ctx, userID, ammoID)
	if err != nil {
		return nil, fmt.Errorf("get ammo: %w", err)
	}
	return profile, nil
}

// Update merges the supplied fields onto the stored profile. A changed
// rifle_id is checked for same-user ownership before the write.
func (s *Service) Update(ctx context.Context, userID, ammoID uuid.UUID, input UpdateInput) (*domain.AmmoProfile, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	profile, err := s.ammo.GetByID(ctx, userID, ammoID)
	if err != nil {
		return nil, fmt.Errorf("get ammo: %w", err)
	}

	if input.RifleID != nil && *input.RifleID != profile.RifleID {
		if err := s.checkRifleOwned(ctx, userID, *input.RifleID); err != nil {
			return nil, err
		}
	}

	applyUpdate(profile, input)
	profile.UpdatedAt = time.Now().UTC()

	if err := s.ammo.Update(ctx, profile); err != nil {
		return nil, fmt.Errorf("update ammo: %w", err)
	}

	s.log.InfoContext(ctx, "ammo updated",
		slog.String("user_id", userID.String()),
		slog.String("ammo_id", ammoID.String()),
	)

	return profile, nil
}

func applyUpdate(p *domain.AmmoProfile, input UpdateInput) {
	if input.RifleID != nil {
		p.RifleID = *input.RifleID
	}
	if input.Name != nil {
		p.Name = *input.Name
	}
	if input.Manufacturer != nil {
		p.Manufacturer = *input.Manufacturer
	}
	if input.BulletWeight != nil {
		p.BulletWeight = *input.BulletWeight
	}
	if input.BulletType != nil {
		p.BulletType = *input.BulletType
	}
	if input.BallisticCoefficientG1 != nil {
		p.BallisticCoefficientG1 = input.BallisticCoefficientG1
	}
	if input.BallisticCoefficientG7 != nil {
		p.BallisticCoefficientG7 = input.BallisticCoefficientG7
	}
	if input.MuzzleVelocity != nil {
		p.MuzzleVelocity = *input.MuzzleVelocity
	}
	if input.PowderType != nil {
		p.PowderType = input.PowderType
	}
	if input.PowderWeight != nil {
		p.PowderWeight = input.PowderWeight
	}
	if input.LotNumber != nil {
		p.LotNumber = input.LotNumber
	}
	if input.Notes != nil {
		p.Notes = input.Notes
	}
}

// Delete removes the ammo profile. Dependent DOPE logs go with it via the
// storage cascade.
func (s *Service) Delete(ctx context.Context, userID, ammoID uuid.UUID) error {
	if err := s.ammo.Delete(ctx, userID, ammoID); err != nil {
		return fmt.Errorf("delete ammo: %w", err)
	}

	s.log.InfoContext(ctx, "ammo deleted",
		slog.String("user_id", userID.String()),
		slog.String("ammo_id", ammoID.String()),
	)

	return nil
}

// List returns a page of the user's ammo profiles matching the filter.
func (s *Service) List(ctx context.Context, userID uuid.UUID, input ListInput) (*ListResult, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	f := domain.AmmoFilter{
		RifleID:      input.RifleID,
		Manufacturer: input.Manufacturer,
		Search:       input.Search,
		SortBy:       input.SortBy,
		SortOrder:    input.SortOrder,
		PageRequest: domain.PageRequest{
			Page:  input.Page,
			Limit: input.Limit,
		},
	}
	f.Normalize()

	profiles, total, err := s.ammo.List(ctx, userID, f)
	if err != nil {
		return nil, fmt.Errorf("list ammo: %w", err)
	}

	return &ListResult{
		Ammo: profiles,
		Page: domain.NewPageInfo(f.PageRequest, total),
	}, nil
}

// Stats returns aggregate usage numbers for one ammo profile.
func (s *Service) Stats(ctx context.Context, userID, ammoID uuid.UUID) (domain.AmmoStats, error) {
	if _, err := s.ammo.GetByID(ctx, userID, ammoID); err != nil {
		return domain.AmmoStats{}, fmt.Errorf("get ammo: %w", err)
	}

	stats, err := s.ammo.Stats(ctx, userID, ammoID)
	if err != nil {
		return domain.AmmoStats{}, fmt.Errorf("ammo stats: %w", err)
	}

	return stats, nil
}
