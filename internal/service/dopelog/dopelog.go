package dopelog

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/leadwind/dopebook-backend/internal/domain"
)

// checkParentsOwned verifies all three foreign keys resolve to records owned
// by userID. The first failing reference is reported by field name; cross-user
// parents are indistinguishable from missing ones.
func (s *Service) checkParentsOwned(ctx context.Context, userID, rifleID, ammoID, envID uuid.UUID) error {
	if _, err := s.rifles.GetByID(ctx, userID, rifleID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.NewReferenceError("rifle_id", rifleID)
		}
		return fmt.Errorf("check rifle: %w", err)
	}
	if _, err := s.ammo.GetByID(ctx, userID, ammoID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.NewReferenceError("ammo_id", ammoID)
		}
		return fmt.Errorf("check ammo: %w", err)
	}
	if _, err := s.envs.GetByID(ctx, userID, envID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.NewReferenceError("environment_id", envID)
		}
		return fmt.Errorf("check environment: %w", err)
	}
	return nil
}

// Create validates the input, verifies ownership of all three parents and
// stores a new entry. The ownership checks and the insert run in one
// transaction so the derived fields land with their sources.
func (s *Service) Create(ctx context.Context, userID uuid.UUID, input CreateInput) (*domain.DopeLog, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	shotAt := now
	if input.ShotAt != nil {
		shotAt = input.ShotAt.UTC()
	}

	entry := &domain.DopeLog{
		ID:                  uuid.New(),
		UserID:              userID,
		RifleID:             input.RifleID,
		AmmoID:              input.AmmoID,
		EnvironmentID:       input.EnvironmentID,
		Distance:            input.Distance,
		DistanceUnit:        input.DistanceUnit,
		ElevationCorrection: input.ElevationCorrection,
		WindageCorrection:   input.WindageCorrection,
		CorrectionUnit:      input.CorrectionUnit,
		TargetType:          input.TargetType,
		GroupSize:           input.GroupSize,
		HitCount:            input.HitCount,
		ShotCount:           input.ShotCount,
		Notes:               input.Notes,
		ShotAt:              shotAt,
		CreatedAt:           now,
		UpdatedAt:           now,
	}
	entry.Derive()

	var created *domain.DopeLog
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if err := s.checkParentsOwned(txCtx, userID, entry.RifleID, entry.AmmoID, entry.EnvironmentID); err != nil {
			return err
		}

		var createErr error
		created, createErr = s.logs.Create(txCtx, entry)
		if createErr != nil {
			return fmt.Errorf("create dope log: %w", createErr)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "dope log created",
		slog.String("user_id", userID.String()),
		slog.String("dope_log_id", created.ID.String()),
		slog.Float64("distance_yards", created.DistanceYards),
	)

	return created, nil
}

// Get returns the user's DOPE entry by ID.
func (s *Service) Get(ctx context.Context, userID, logID uuid.UUID) (*domain.DopeLog, error) {
	entry, err := s.logs.GetByID(ctx, userID, logID)
	if err != nil {
		return nil, fmt.Errorf("get dope log: %w", err)
	}
	return entry, nil
}

// Update merges the supplied fields onto the stored entry, re-checks
// ownership of any changed foreign key, re-validates the count invariant
// against the merged record and recomputes derived fields before the write.
func (s *Service) Update(ctx context.Context, userID, logID uuid.UUID, input UpdateInput) (*domain.DopeLog, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	entry, err := s.logs.GetByID(ctx, userID, logID)
	if err != nil {
		return nil, fmt.Errorf("get dope log: %w", err)
	}

	applyUpdate(entry, input)

	if entry.HitCount != nil && entry.ShotCount != nil && *entry.HitCount > *entry.ShotCount {
		return nil, domain.NewValidationError("hit_count", "must not exceed shot_count")
	}

	entry.Derive()
	entry.UpdatedAt = time.Now().UTC()

	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if input.RifleID != nil || input.AmmoID != nil || input.EnvironmentID != nil {
			if err := s.checkParentsOwned(txCtx, userID, entry.RifleID, entry.AmmoID, entry.EnvironmentID); err != nil {
				return err
			}
		}

		if err := s.logs.Update(txCtx, entry); err != nil {
			return fmt.Errorf("update dope log: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "dope log updated",
		slog.String("user_id", userID.String()),
		slog.String("dope_log_id", logID.String()),
	)

	return entry, nil
}

func applyUpdate(d *domain.DopeLog, input UpdateInput) {
	if input.RifleID != nil {
		d.RifleID = *input.RifleID
	}
	if input.AmmoID != nil {
		d.AmmoID = *input.AmmoID
	}
	if input.EnvironmentID != nil {
		d.EnvironmentID = *input.EnvironmentID
	}
	if input.Distance != nil {
		d.Distance = *input.Distance
	}
	if input.DistanceUnit != nil {
		d.DistanceUnit = *input.DistanceUnit
	}
	if input.ElevationCorrection != nil {
		d.ElevationCorrection = *input.ElevationCorrection
	}
	if input.WindageCorrection != nil {
		d.WindageCorrection = *input.WindageCorrection
	}
	if input.CorrectionUnit != nil {
		d.CorrectionUnit = *input.CorrectionUnit
	}
	if input.TargetType != nil {
		d.TargetType = *input.TargetType
	}
	if input.GroupSize != nil {
		d.GroupSize = input.GroupSize
	}
	if input.HitCount != nil {
		d.HitCount = input.HitCount
	}
	if input.ShotCount != nil {
		d.ShotCount = input.ShotCount
	}
	if input.Notes != nil {
		d.Notes = input.Notes
	}
	if input.ShotAt != nil {
		shotAt := input.ShotAt.UTC()
		d.ShotAt = shotAt
	}
}

// Delete removes the entry. Nothing depends on a DOPE log, so this is a
// plain hard delete.
func (s *Service) Delete(ctx context.Context, userID, logID uuid.UUID) error {
	if err := s.logs.Delete(ctx, userID, logID); err != nil {
		return fmt.Errorf("delete dope log: %w", err)
	}

	s.log.InfoContext(ctx, "dope log deleted",
		slog.String("user_id", userID.String()),
		slog.String("dope_log_id", logID.String()),
	)

	return nil
}

// List returns a page of the user's DOPE entries matching the filter.
func (s *Service) List(ctx context.Context, userID uuid.UUID, input ListInput) (*ListResult, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	f := domain.DopeLogFilter{
		RifleID:     input.RifleID,
		AmmoID:      input.AmmoID,
		DistanceMin: input.DistanceMin,
		DistanceMax: input.DistanceMax,
		TargetType:  input.TargetType,
		Sort:        input.Sort,
		PageRequest: domain.PageRequest{
			Page:  input.Page,
			Limit: input.Limit,
		},
	}
	f.Normalize()

	logs, total, err := s.logs.List(ctx, userID, f)
	if err != nil {
		return nil, fmt.Errorf("list dope logs: %w", err)
	}

	return &ListResult{
		Logs: logs,
		Page: domain.NewPageInfo(f.PageRequest, total),
	}, nil
}
