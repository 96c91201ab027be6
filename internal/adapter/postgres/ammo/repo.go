// Package ammo implements the ammo profile repository using PostgreSQL.
package ammo

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

var ammoColumns = []string{
	"id", "user_id", "rifle_id", "name", "manufacturer", "bullet_weight",
	"bullet_type", "ballistic_coefficient_g1", "ballistic_coefficient_g7",
	"muzzle_velocity", "powder_type", "powder_weight", "lot_number", "notes",
	"created_at", "updated_at",
}

// row mirrors one ammo_profiles row for scany.
type row struct {
	ID                     uuid.UUID `db:"id"`
	UserID                 uuid.UUID `db:"user_id"`
	RifleID                uuid.UUID `db:"rifle_id"`
	Name                   string    `db:"name"`
	Manufacturer           string    `db:"manufacturer"`
	BulletWeight           float64   `db:"bullet_weight"`
	BulletType             string    `db:"bullet_type"`
	BallisticCoefficientG1 *float64  `db:"ballistic_coefficient_g1"`
	BallisticCoefficientG7 *float64  `db:"ballistic_coefficient_g7"`
	MuzzleVelocity         float64   `db:"muzzle_velocity"`
	PowderType             *string   `db:"powder_type"`
	PowderWeight           *float64  `db:"powder_weight"`
	LotNumber              *string   `db:"lot_number"`
	Notes                  *string   `db:"notes"`
	CreatedAt              time.Time `db:"created_at"`
	UpdatedAt              time.Time `db:"updated_at"`
}

func (r row) toDomain() domain.AmmoProfile {
	return domain.AmmoProfile{
		ID:                     r.ID,
		UserID:                 r.UserID,
		RifleID:                r.RifleID,
		Name:                   r.Name,
		Manufacturer:           r.Manufacturer,
		BulletWeight:           r.BulletWeight,
		BulletType:             r.BulletType,
		BallisticCoefficientG1: r.BallisticCoefficientG1,
		BallisticCoefficientG7: r.BallisticCoefficientG7,
		MuzzleVelocity:         r.MuzzleVelocity,
		PowderType:             r.PowderType,
		PowderWeight:           r.PowderWeight,
		LotNumber:              r.LotNumber,
		Notes:                  r.Notes,
		CreatedAt:              r.CreatedAt,
		UpdatedAt:              r.UpdatedAt,
	}
}

// Repo provides ammo profile persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new ammo profile repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// Create inserts a new ammo profile and returns the persisted record.
// The service layer has already verified rifle ownership; the FK constraint
// is only the final safety net.
func (r *Repo) Create(ctx context.Context, ammo *domain.AmmoProfile) (*domain.AmmoProfile, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := postgres.Builder().
		Insert("ammo_profiles").
		Columns(ammoColumns...).
		Values(ammo.ID, ammo.UserID, ammo.RifleID, ammo.Name, ammo.Manufacturer,
			ammo.BulletWeight, ammo.BulletType, ammo.BallisticCoefficientG1,
			ammo.BallisticCoefficientG7, ammo.MuzzleVelocity, ammo.PowderType,
			ammo.PowderWeight, ammo.LotNumber, ammo.Notes, ammo.CreatedAt, ammo.UpdatedAt).
		Suffix("RETURNING " + strings.Join(ammoColumns, ", ")).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build insert ammo_profile: %w", err)
	}

	var stored row
	if err := pgxscan.Get(ctx, q, &stored, sql, args...); err != nil {
		return nil, postgres.MapError(err, "ammo_profile", ammo.ID)
	}

	result := stored.toDomain()
	return &result, nil
}

// GetByID returns an ammo profile by primary key filtered by user_id.
func (r *Repo) GetByID(ctx context.Context, userID, ammoID uuid.UUID) (*domain.AmmoProfile, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := postgres.Builder().
		Select(ammoColumns...).
		From("ammo_profiles").
		Where(squirrel.Eq{"id": ammoID, "user_id": userID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build select ammo_profile: %w", err)
	}

	var stored row
	if err := pgxscan.Get(ctx, q, &stored, sql, args...); err != nil {
		return nil, postgres.MapError(err, "ammo_profile", ammoID)
	}

	result := stored.toDomain()
	return &result, nil
}

// Update writes all mutable columns of an existing ammo profile.
func (r *Repo) Update(ctx context.Context, ammo *domain.AmmoProfile) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := postgres.Builder().
		Update("ammo_profiles").
		Set("rifle_id", ammo.RifleID).
		Set("name", ammo.Name).
		Set("manufacturer", ammo.Manufacturer).
		Set("bullet_weight", ammo.BulletWeight).
		Set("bullet_type", ammo.BulletType).
		Set("ballistic_coefficient_g1", ammo.BallisticCoefficientG1).
		Set("ballistic_coefficient_g7", ammo.BallisticCoefficientG7).
		Set("muzzle_velocity", ammo.MuzzleVelocity).
		Set("powder_type", ammo.PowderType).
		Set("powder_weight", ammo.PowderWeight).
		Set("lot_number", ammo.LotNumber).
		Set("notes", ammo.Notes).
		Set("updated_at", ammo.UpdatedAt).
		Where(squirrel.Eq{"id": ammo.ID, "user_id": ammo.UserID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build update ammo_profile: %w", err)
	}

	tag, err := q.Exec(ctx, sql, args...)
	if err != nil {
		return postgres.MapError(err, "ammo_profile", ammo.ID)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("ammo_profile %s: %w", ammo.ID, domain.ErrNotFound)
	}

	return nil
}

// Delete removes an ammo profile. Dependent DOPE logs cascade.
func (r *Repo) Delete(ctx context.Context, userID, ammoID uuid.UUID) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := q.Exec(ctx,
		`DELETE FROM ammo_profiles WHERE id = $1 AND user_id = $2`, ammoID, userID)
	if err != nil {
		return postgres.MapError(err, "ammo_profile", ammoID)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("ammo_profile %s: %w", ammoID, domain.ErrNotFound)
	}

	return nil
}

// List returns a page of the user's ammo profiles matching the filter,
// plus the total matching count.
func (r *Repo) List(ctx context.Context, userID uuid.UUID, f domain.AmmoFilter) ([]domain.AmmoProfile, int, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	where := squirrel.And{squirrel.Eq{"user_id": userID}}
	if f.RifleID != nil {
		where = append(where, squirrel.Eq{"rifle_id": *f.RifleID})
	}
	if f.Manufacturer != nil {
		where = append(where, squirrel.Eq{"manufacturer": *f.Manufacturer})
	}
	if f.Search != nil && *f.Search != "" {
		pattern := "%" + *f.Search + "%"
		where = append(where, squirrel.Or{
			squirrel.ILike{"name": pattern},
			squirrel.ILike{"manufacturer": pattern},
			squirrel.ILike{"bullet_type": pattern},
		})
	}

	countSQL, countArgs, err := postgres.Builder().
		Select("count(*)").From("ammo_profiles").Where(where).ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build count ammo_profiles: %w", err)
	}

	var total int
	if err := q.QueryRow(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count ammo_profiles: %w", err)
	}

	sql, args, err := postgres.Builder().
		Select(ammoColumns...).
		From("ammo_profiles").
		Where(where).
		OrderBy(orderClause(f)).
		Limit(uint64(f.Limit)).
		Offset(uint64(f.Offset())).
		ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build list ammo_profiles: %w", err)
	}

	var rows []row
	if err := pgxscan.Select(ctx, q, &rows, sql, args...); err != nil {
		return nil, 0, fmt.Errorf("list ammo_profiles: %w", err)
	}

	profiles := make([]domain.AmmoProfile, len(rows))
	for i, stored := range rows {
		profiles[i] = stored.toDomain()
	}

	return profiles, total, nil
}

const statsSQL = `
SELECT
  count(d.id)           AS dope_count,
  min(d.distance_yards) AS min_distance_yards,
  max(d.distance_yards) AS max_distance_yards,
  avg(d.hit_percentage) AS avg_hit_percentage,
  avg(d.group_size)     AS avg_group_size
FROM dope_logs d
WHERE d.user_id = $1 AND d.ammo_id = $2`

// Stats aggregates the user's DOPE logs for one load. NULL hit percentages
// and group sizes are skipped by avg(); a load with no logs yields count 0
// and nil aggregates.
func (r *Repo) Stats(ctx context.Context, userID, ammoID uuid.UUID) (domain.AmmoStats, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	var stats domain.AmmoStats
	err := q.QueryRow(ctx, statsSQL, userID, ammoID).Scan(
		&stats.DopeCount, &stats.MinDistanceYards, &stats.MaxDistanceYards,
		&stats.AvgHitPercentage, &stats.AvgGroupSize)
	if err != nil {
		return domain.AmmoStats{}, fmt.Errorf("ammo stats: %w", err)
	}

	return stats, nil
}

func orderClause(f domain.AmmoFilter) string {
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
