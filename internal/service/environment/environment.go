package environment

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/leadwind/dopebook-backend/internal/domain"
)

// Create validates the input and stores a new snapshot. density_altitude is
// computed from temperature, pressure and altitude unless the caller
// supplied an explicit value.
func (s *Service) Create(ctx context.Context, userID uuid.UUID, input CreateInput) (*domain.EnvironmentSnapshot, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	now := time.Now().UTC()

	takenAt := now
	if input.TakenAt != nil {
		takenAt = input.TakenAt.UTC()
	}

	densityAltitude := domain.CalcDensityAltitude(input.Temperature, input.Pressure, input.Altitude)
	if input.DensityAltitude != nil {
		densityAltitude = *input.DensityAltitude
	}

	snap := &domain.EnvironmentSnapshot{
		ID:              uuid.New(),
		UserID:          userID,
		Temperature:     input.Temperature,
		Humidity:        input.Humidity,
		Pressure:        input.Pressure,
		Altitude:        input.Altitude,
		DensityAltitude: densityAltitude,
		WindSpeed:       input.WindSpeed,
		WindDirection:   input.WindDirection,
		Latitude:        input.Latitude,
		Longitude:       input.Longitude,
		TakenAt:         takenAt,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	created, err := s.envs.Create(ctx, snap)
	if err != nil {
		return nil, fmt.Errorf("create environment: %w", err)
	}

	s.log.InfoContext(ctx, "environment recorded",
		slog.String("user_id", userID.String()),
		slog.String("environment_id", created.ID.String()),
		slog.Int("density_altitude", created.DensityAltitude),
	)

	return created, nil
}

// Get returns the user's snapshot by ID.
func (s *Service) Get(ctx context.Context, userID, envID uuid.UUID) (*domain.EnvironmentSnapshot, error) {
	snap, err := s.envs.GetByID(ctx, userID, envID)
	if err != nil {
		return nil, fmt.Errorf("get environment: %w", err)
	}
	return snap, nil
}

// Current returns the user's most recent snapshot by taken_at.
func (s *Service) Current(ctx context.Context, userID uuid.UUID) (*domain.EnvironmentSnapshot, error) {
	snap, err := s.envs.Latest(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("latest environment: %w", err)
	}
	return snap, nil
}

// Update merges the supplied fields onto the stored snapshot and recomputes
// density_altitude from the merged inputs. The recompute only runs when one
// of its source fields changed, so an update that leaves them alone keeps a
// stored creation-time override. The write carries source and derived values
// in one statement.
func (s *Service) Update(ctx context.Context, userID, envID uuid.UUID, input UpdateInput) (*domain.EnvironmentSnapshot, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	snap, err := s.envs.GetByID(ctx, userID, envID)
	if err != nil {
		return nil, fmt.Errorf("get environment: %w", err)
	}

	applyUpdate(snap, input)
	if input.Temperature != nil || input.Pressure != nil || input.Altitude != nil {
		snap.DensityAltitude = domain.CalcDensityAltitude(snap.Temperature, snap.Pressure, snap.Altitude)
	}
	snap.UpdatedAt = time.Now().UTC()

	if err := s.envs.Update(ctx, snap); err != nil {
		return nil, fmt.Errorf("update environment: %w", err)
	}

	s.log.InfoContext(ctx, "environment updated",
		slog.String("user_id", userID.String()),
		slog.String("environment_id", envID.String()),
	)

	return snap, nil
}

func applyUpdate(e *domain.EnvironmentSnapshot, input UpdateInput) {
	if input.Temperature != nil {
		e.Temperature = *input.Temperature
	}
	if input.Humidity != nil {
		e.Humidity = *input.Humidity
	}
	if input.Pressure != nil {
		e.Pressure = *input.Pressure
	}
	if input.Altitude != nil {
		e.Altitude = *input.Altitude
	}
	if input.WindSpeed != nil {
		e.WindSpeed = *input.WindSpeed
	}
	if input.WindDirection != nil {
		e.WindDirection = *input.WindDirection
	}
	if input.Latitude != nil {
		e.Latitude = input.Latitude
	}
	if input.Longitude != nil {
		e.Longitude = input.Longitude
	}
	if input.TakenAt != nil {
		e.TakenAt = input.TakenAt.UTC()
	}
}

// Delete removes a snapshot, refusing while any DOPE log still references
// it. The reference count and the delete run in one transaction; the FK's
// ON DELETE RESTRICT backs the check against a concurrent insert.
func (s *Service) Delete(ctx context.Context, userID, envID uuid.UUID) error {
	if _, err := s.envs.GetByID(ctx, userID, envID); err != nil {
		return fmt.Errorf("get environment: %w", err)
	}

	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		refs, err := s.envs.CountReferences(txCtx, userID, envID)
		if err != nil {
			return fmt.Errorf("count references: %w", err)
		}
		if refs > 0 {
			return &domain.ConflictError{
				Message:    "environment snapshot is referenced by dope logs",
				References: refs,
			}
		}

		if err := s.envs.Delete(txCtx, userID, envID); err != nil {
			return fmt.Errorf("delete environment: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.log.InfoContext(ctx, "environment deleted",
		slog.String("user_id", userID.String()),
		slog.String("environment_id", envID.String()),
	)

	return nil
}

// List returns a page of the user's snapshots matching the filter.
func (s *Service) List(ctx context.Context, userID uuid.UUID, input ListInput) (*ListResult, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	f := domain.EnvironmentFilter{
		TemperatureMin: input.TemperatureMin,
		TemperatureMax: input.TemperatureMax,
		TakenFrom:      input.TakenFrom,
		TakenTo:        input.TakenTo,
		SortOrder:      input.SortOrder,
		PageRequest: domain.PageRequest{
			Page:  input.Page,
			Limit: input.Limit,
		},
	}
	f.Normalize()

	snaps, total, err := s.envs.List(ctx, userID, f)
	if err != nil {
		return nil, fmt.Errorf("list environments: %w", err)
	}

	return &ListResult{
		Environments: snaps,
		Page:         domain.NewPageInfo(f.PageRequest, total),
	}, nil
}

// Averages aggregates the user's snapshots over [from,to] inclusive.
// An empty window yields count 0 with nil aggregates, not an error.
func (s *Service) Averages(ctx context.Context, userID uuid.UUID, input AveragesInput) (domain.EnvironmentAverages, error) {
	if err := input.Validate(); err != nil {
		return domain.EnvironmentAverages{}, err
	}

	avgs, err := s.envs.Averages(ctx, userID, input.From, input.To)
	if err != nil {
		return domain.EnvironmentAverages{}, fmt.Errorf("environment averages: %w", err)
	}

	return avgs, nil
}
