// Package rifle implements the rifle profile repository using PostgreSQL.
package rifle

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/leadwind/dopebook-backend/internal/adapter/postgres"
	"github.com/leadwind/dopebook-backend/internal/domain"
)

// rifleColumns lists the columns of rifle_profiles in scan order.
var rifleColumns = []string{
	"id", "user_id", "name", "caliber", "barrel_length", "twist_rate",
	"zero_distance", "optic_manufacturer", "optic_model", "reticle_type",
	"click_unit", "click_value", "scope_height", "notes", "created_at", "updated_at",
}

// row mirrors one rifle_profiles row for scany.
type row struct {
	ID                uuid.UUID `db:"id"`
	UserID            uuid.UUID `db:"user_id"`
	Name              string    `db:"name"`
	Caliber           string    `db:"caliber"`
	BarrelLength      float64   `db:"barrel_length"`
	TwistRate         string    `db:"twist_rate"`
	ZeroDistance      float64   `db:"zero_distance"`
	OpticManufacturer *string   `db:"optic_manufacturer"`
	OpticModel        *string   `db:"optic_model"`
	ReticleType       *string   `db:"reticle_type"`
	ClickUnit         string    `db:"click_unit"`
	ClickValue        float64   `db:"click_value"`
	ScopeHeight       float64   `db:"scope_height"`
	Notes             *string   `db:"notes"`
	CreatedAt         time.Time `db:"created_at"`
	UpdatedAt         time.Time `db:"updated_at"`
}

func (r row) toDomain() domain.RifleProfile {
	return domain.RifleProfile{
		ID:                r.ID,
		UserID:            r.UserID,
		Name:              r.Name,
		Caliber:           r.Caliber,
		BarrelLength:      r.BarrelLength,
		TwistRate:         r.TwistRate,
		ZeroDistance:      r.ZeroDistance,
		OpticManufacturer: r.OpticManufacturer,
		OpticModel:        r.OpticModel,
		ReticleType:       r.ReticleType,
		ClickUnit:         domain.ClickUnit(r.ClickUnit),
		ClickValue:        r.ClickValue,
		ScopeHeight:       r.ScopeHeight,
		Notes:             r.Notes,
		CreatedAt:         r.CreatedAt,
		UpdatedAt:         r.UpdatedAt,
	}
}

// Repo provides rifle profile persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new rifle profile repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// Create inserts a new rifle profile and returns the persisted record.
func (r *Repo) Create(ctx context.Context, rifle *domain.RifleProfile) (*domain.RifleProfile, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := postgres.Builder().
		Insert("rifle_profiles").
		Columns(rifleColumns...).
		Values(rifle.ID, rifle.UserID, rifle.Name, rifle.Caliber, rifle.BarrelLength,
			rifle.TwistRate, rifle.ZeroDistance, rifle.OpticManufacturer, rifle.OpticModel,
			rifle.ReticleType, rifle.ClickUnit.String(), rifle.ClickValue, rifle.ScopeHeight,
			rifle.Notes, rifle.CreatedAt, rifle.UpdatedAt).
		Suffix("RETURNING " + strings.Join(rifleColumns, ", ")).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build insert rifle_profile: %w", err)
	}

	var stored row
	if err := pgxscan.Get(ctx, q, &stored, sql, args...); err != nil {
		return nil, postgres.MapError(err, "rifle_profile", rifle.ID)
	}

	result := stored.toDomain()
	return &result, nil
}

// GetByID returns a rifle profile by primary key filtered by user_id.
// A profile owned by another user is indistinguishable from a missing one.
func (r *Repo) GetByID(ctx context.Context, userID, rifleID uuid.UUID) (*domain.RifleProfile, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := postgres.Builder().
		Select(rifleColumns...).
		From("rifle_profiles").
		Where(squirrel.Eq{"id": rifleID, "user_id": userID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build select rifle_profile: %w", err)
	}

	var stored row
	if err := pgxscan.Get(ctx, q, &stored, sql, args...); err != nil {
		return nil, postgres.MapError(err, "rifle_profile", rifleID)
	}

	result := stored.toDomain()
	return &result, nil
}

// Update writes all mutable columns of an existing rifle profile.
// Returns domain.ErrNotFound when the row is absent or owned by another user.
func (r *Repo) Update(ctx context.Context, rifle *domain.RifleProfile) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := postgres.Builder().
		Update("rifle_profiles").
		Set("name", rifle.Name).
		Set("caliber", rifle.Caliber).
		Set("barrel_length", rifle.BarrelLength).
		Set("twist_rate", rifle.TwistRate).
		Set("zero_distance", rifle.ZeroDistance).
		Set("optic_manufacturer", rifle.OpticManufacturer).
		Set("optic_model", rifle.OpticModel).
		Set("reticle_type", rifle.ReticleType).
		Set("click_unit", rifle.ClickUnit.String()).
		Set("click_value", rifle.ClickValue).
		Set("scope_height", rifle.ScopeHeight).
		Set("notes", rifle.Notes).
		Set("updated_at", rifle.UpdatedAt).
		Where(squirrel.Eq{"id": rifle.ID, "user_id": rifle.UserID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build update rifle_profile: %w", err)
	}

	tag, err := q.Exec(ctx, sql, args...)
	if err != nil {
		return postgres.MapError(err, "rifle_profile", rifle.ID)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("rifle_profile %s: %w", rifle.ID, domain.ErrNotFound)
	}

	return nil
}

// Delete removes a rifle profile. Dependent ammo profiles and DOPE logs are
// removed by the schema's ON DELETE CASCADE.
func (r *Repo) Delete(ctx context.Context, userID, rifleID uuid.UUID) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := q.Exec(ctx,
		`DELETE FROM rifle_profiles WHERE id = $1 AND user_id = $2`, rifleID, userID)
	if err != nil {
		return postgres.MapError(err, "rifle_profile", rifleID)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("rifle_profile %s: %w", rifleID, domain.ErrNotFound)
	}

	return nil
}

// List returns a page of the user's rifle profiles matching the filter,
// plus the total matching count.
func (r *Repo) List(ctx context.Context, userID uuid.UUID, f domain.RifleFilter) ([]domain.RifleProfile, int, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	where := squirrel.And{squirrel.Eq{"user_id": userID}}
	if f.Caliber != nil {
		where = append(where, squirrel.Eq{"caliber": *f.Caliber})
	}
	if f.Search != nil && *f.Search != "" {
		pattern := "%" + *f.Search + "%"
		where = append(where, squirrel.Or{
			squirrel.ILike{"name": pattern},
			squirrel.ILike{"caliber": pattern},
		})
	}

	countSQL, countArgs, err := postgres.Builder().
		Select("count(*)").From("rifle_profiles").Where(where).ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build count rifle_profiles: %w", err)
	}

	var total int
	if err := q.QueryRow(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count rifle_profiles: %w", err)
	}

	sql, args, err := postgres.Builder().
		Select(rifleColumns...).
		From("rifle_profiles").
		Where(where).
		OrderBy(orderClause(f)).
		Limit(uint64(f.Limit)).
		Offset(uint64(f.Offset())).
		ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build list rifle_profiles: %w", err)
	}

	var rows []row
	if err := pgxscan.Select(ctx, q, &rows, sql, args...); err != nil {
		return nil, 0, fmt.Errorf("list rifle_profiles: %w", err)
	}

	rifles := make([]domain.RifleProfile, len(rows))
	for i, stored := range rows {
		rifles[i] = stored.toDomain()
	}

	return rifles, total, nil
}

const statsSQL = `
SELECT
  (SELECT count(*) FROM ammo_profiles a
    WHERE a.user_id = $1 AND a.rifle_id = $2)      AS ammo_count,
  count(d.id)                                      AS dope_count,
  min(d.distance_yards)                            AS min_distance_yards,
  max(d.distance_yards)                            AS max_distance_yards,
  avg(d.hit_percentage)                            AS avg_hit_percentage
FROM dope_logs d
WHERE d.user_id = $1 AND d.rifle_id = $2`

// Stats aggregates the user's ammo profiles and DOPE logs for one rifle.
// avg(hit_percentage) skips NULL percentages; a rifle with no logs yields
// count 0 and nil min/max/avg.
func (r *Repo) Stats(ctx context.Context, userID, rifleID uuid.UUID) (domain.RifleStats, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	var stats domain.RifleStats
	err := q.QueryRow(ctx, statsSQL, userID, rifleID).Scan(
		&stats.AmmoCount, &stats.DopeCount,
		&stats.MinDistanceYards, &stats.MaxDistanceYards, &stats.AvgHitPercentage)
	if err != nil {
		return domain.RifleStats{}, fmt.Errorf("rifle stats: %w", err)
	}

	return stats, nil
}

func orderClause(f domain.RifleFilter) string {
	column := "created_at"
	if f.SortBy == "name" {
		column = "name"
	}
	order := domain.SortDesc
	if f.SortOrder.IsValid() {
		order = f.SortOrder
	}
	return fmt.Sprintf("%s %s", column, order)
}
