package dopelog

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/leadwind/dopebook-backend/internal/domain"
)

// Card assembles the distance-ordered correction table for one rifle/ammo
// pair. Both parents are verified before any entry is fetched; a missing or
// foreign parent fails the whole card. Read-only.
func (s *Service) Card(ctx context.Context, userID, rifleID, ammoID uuid.UUID) (*domain.DopeCard, error) {
	// Both parents are checked up front so a bad pair fails fast and names
	// the entity, instead of quietly producing an empty card.
	rifle, rifleErr := s.rifles.GetByID(ctx, userID, rifleID)
	ammo, ammoErr := s.ammo.GetByID(ctx, userID, ammoID)
	if rifleErr != nil {
		return nil, fmt.Errorf("get rifle: %w", rifleErr)
	}
	if ammoErr != nil {
		return nil, fmt.Errorf("get ammo: %w", ammoErr)
	}

	logs, err := s.logs.ListForCard(ctx, userID, rifleID, ammoID)
	if err != nil {
		return nil, fmt.Errorf("list card entries: %w", err)
	}

	entries := make([]domain.DopeCardEntry, len(logs))
	for i, l := range logs {
		entries[i] = domain.DopeCardEntry{
			Distance:            l.Distance,
			DistanceUnit:        l.DistanceUnit,
			DistanceYards:       l.DistanceYards,
			ElevationCorrection: l.ElevationCorrection,
			WindageCorrection:   l.WindageCorrection,
			CorrectionUnit:      l.CorrectionUnit,
			HitPercentage:       l.HitPercentage,
			GroupSize:           l.GroupSize,
		}
	}

	return &domain.DopeCard{
		Rifle:       *rifle,
		Ammo:        *ammo,
		Entries:     entries,
		GeneratedAt: time.Now().UTC(),
	}, nil
}
