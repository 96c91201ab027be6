// Package dopelog implements the DOPE log repository using PostgreSQL.
package dopelog

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

var logColumns = []string{
	"id", "user_id", "rifle_id", "ammo_id", "environment_id",
	"distance", "distance_unit", "distance_yards",
	"elevation_correction", "windage_correction", "correction_unit",
	"target_type", "group_size", "hit_count", "shot_count", "hit_percentage",
	"notes", "shot_at", "created_at", "updated_at",
}

// row mirrors one dope_logs row for scany.
type row struct {
	ID                  uuid.UUID `db:"id"`
	UserID              uuid.UUID `db:"user_id"`
	RifleID             uuid.UUID `db:"rifle_id"`
	AmmoID              uuid.UUID `db:"ammo_id"`
	EnvironmentID       uuid.UUID `db:"environment_id"`
	Distance            float64   `db:"distance"`
	DistanceUnit        string    `db:"distance_unit"`
	DistanceYards       float64   `db:"distance_yards"`
	ElevationCorrection float64   `db:"elevation_correction"`
	WindageCorrection   float64   `db:"windage_correction"`
	CorrectionUnit      string    `db:"correction_unit"`
	TargetType          string    `db:"target_type"`
	GroupSize           *float64  `db:"group_size"`
	HitCount            *int      `db:"hit_count"`
	ShotCount           *int      `db:"shot_count"`
	HitPercentage       *float64  `db:"hit_percentage"`
	Notes               *string   `db:"notes"`
	ShotAt              time.Time `db:"shot_at"`
	CreatedAt           time.Time `db:"created_at"`
	UpdatedAt           time.Time `db:"updated_at"`
}

func (r row) toDomain() domain.DopeLog {
	return domain.DopeLog{
		ID:                  r.ID,
		UserID:              r.UserID,
		RifleID:             r.RifleID,
		AmmoID:              r.AmmoID,
		EnvironmentID:       r.EnvironmentID,
		Distance:            r.Distance,
		DistanceUnit:        domain.DistanceUnit(r.DistanceUnit),
		DistanceYards:       r.DistanceYards,
		ElevationCorrection: r.ElevationCorrection,
		WindageCorrection:   r.WindageCorrection,
		CorrectionUnit:      domain.ClickUnit(r.CorrectionUnit),
		TargetType:          domain.TargetType(r.TargetType),
		GroupSize:           r.GroupSize,
		HitCount:            r.HitCount,
		ShotCount:           r.ShotCount,
		HitPercentage:       r.HitPercentage,
		Notes:               r.Notes,
		ShotAt:              r.ShotAt,
		CreatedAt:           r.CreatedAt,
		UpdatedAt:           r.UpdatedAt,
	}
}

// Repo provides DOPE log persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new DOPE log repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// Create inserts a new log entry and returns the persisted record.
// Derived fields (distance_yards, hit_percentage) were computed by the
// service; they land in the same INSERT as their source fields so no reader
// can ever observe them out of sync.
func (r *Repo) Create(ctx context.Context, log *domain.DopeLog) (*domain.DopeLog, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := postgres.Builder().
		Insert("dope_logs").
		Columns(logColumns...).
		Values(log.ID, log.UserID, log.RifleID, log.AmmoID, log.EnvironmentID,
			log.Distance, log.DistanceUnit.String(), log.DistanceYards,
			log.ElevationCorrection, log.WindageCorrection, log.CorrectionUnit.String(),
			log.TargetType.String(), log.GroupSize, log.HitCount, log.ShotCount,
			log.HitPercentage, log.Notes, log.ShotAt, log.CreatedAt, log.UpdatedAt).
		Suffix("RETURNING " + strings.Join(logColumns, ", ")).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build insert dope_log: %w", err)
	}

	var stored row
	if err := pgxscan.Get(ctx, q, &stored, sql, args...); err != nil {
		return nil, postgres.MapError(err, "dope_log", log.ID)
	}

	result := stored.toDomain()
	return &result, nil
}

// GetByID returns a log entry by primary key filtered by user_id.
func (r *Repo) GetByID(ctx context.Context, userID, logID uuid.UUID) (*domain.DopeLog, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := postgres.Builder().
		Select(logColumns...).
		From("dope_logs").
		Where(squirrel.Eq{"id": logID, "user_id": userID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build select dope_log: %w", err)
	}

	var stored row
	if err := pgxscan.Get(ctx, q, &stored, sql, args...); err != nil {
		return nil, postgres.MapError(err, "dope_log", logID)
	}

	result := stored.toDomain()
	return &result, nil
}

// Update writes all mutable columns of an existing log entry in one
// statement, derived fields included.
func (r *Repo) Update(ctx context.Context, log *domain.DopeLog) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := postgres.Builder().
		Update("dope_logs").
		Set("rifle_id", log.RifleID).
		Set("ammo_id", log.AmmoID).
		Set("environment_id", log.EnvironmentID).
		Set("distance", log.Distance).
		Set("distance_unit", log.DistanceUnit.String()).
		Set("distance_yards", log.DistanceYards).
		Set("elevation_correction", log.ElevationCorrection).
		Set("windage_correction", log.WindageCorrection).
		Set("correction_unit", log.CorrectionUnit.String()).
		Set("target_type", log.TargetType.String()).
		Set("group_size", log.GroupSize).
		Set("hit_count", log.HitCount).
		Set("shot_count", log.ShotCount).
		Set("hit_percentage", log.HitPercentage).
		Set("notes", log.Notes).
		Set("shot_at", log.ShotAt).
		Set("updated_at", log.UpdatedAt).
		Where(squirrel.Eq{"id": log.ID, "user_id": log.UserID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build update dope_log: %w", err)
	}

	tag, err := q.Exec(ctx, sql, args...)
	if err != nil {
		return postgres.MapError(err, "dope_log", log.ID)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("dope_log %s: %w", log.ID, domain.ErrNotFound)
	}

	return nil
}

// Delete removes a log entry. Nothing depends on dope_logs, so this is
// always a plain hard delete.
func (r *Repo) Delete(ctx context.Context, userID, logID uuid.UUID) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := q.Exec(ctx,
		`DELETE FROM dope_logs WHERE id = $1 AND user_id = $2`, logID, userID)
	if err != nil {
		return postgres.MapError(err, "dope_log", logID)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("dope_log %s: %w", logID, domain.ErrNotFound)
	}

	return nil
}

// List returns a page of the user's log entries matching the filter, plus
// the total matching count. Distance bounds apply to distance_yards.
func (r *Repo) List(ctx context.Context, userID uuid.UUID, f domain.DopeLogFilter) ([]domain.DopeLog, int, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	where := squirrel.And{squirrel.Eq{"user_id": userID}}
	if f.RifleID != nil {
		where = append(where, squirrel.Eq{"rifle_id": *f.RifleID})
	}
	if f.AmmoID != nil {
		where = append(where, squirrel.Eq{"ammo_id": *f.AmmoID})
	}
	if f.DistanceMin != nil {
		where = append(where, squirrel.GtOrEq{"distance_yards": *f.DistanceMin})
	}
	if f.DistanceMax != nil {
		where = append(where, squirrel.LtOrEq{"distance_yards": *f.DistanceMax})
	}
	if f.TargetType != nil {
		where = append(where, squirrel.Eq{"target_type": f.TargetType.String()})
	}

	countSQL, countArgs, err := postgres.Builder().
		Select("count(*)").From("dope_logs").Where(where).ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build count dope_logs: %w", err)
	}

	var total int
	if err := q.QueryRow(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count dope_logs: %w", err)
	}

	sql, args, err := postgres.Builder().
		Select(logColumns...).
		From("dope_logs").
		Where(where).
		OrderBy(orderClause(f.Sort)).
		Limit(uint64(f.Limit)).
		Offset(uint64(f.Offset())).
		ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build list dope_logs: %w", err)
	}

	var rows []row
	if err := pgxscan.Select(ctx, q, &rows, sql, args...); err != nil {
		return nil, 0, fmt.Errorf("list dope_logs: %w", err)
	}

	logs := make([]domain.DopeLog, len(rows))
	for i, stored := range rows {
		logs[i] = stored.toDomain()
	}

	return logs, total, nil
}

// ListForCard returns every log entry for one rifle/ammo pair, ordered
// ascending by the normalized distance. Ordering by distance_yards rather
// than the raw distance is what keeps mixed yard/meter entries in true
// range order.
func (r *Repo) ListForCard(ctx context.Context, userID, rifleID, ammoID uuid.UUID) ([]domain.DopeLog, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := postgres.Builder().
		Select(logColumns...).
		From("dope_logs").
		Where(squirrel.Eq{"user_id": userID, "rifle_id": rifleID, "ammo_id": ammoID}).
		OrderBy("distance_yards ASC", "shot_at ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build card dope_logs: %w", err)
	}

	var rows []row
	if err := pgxscan.Select(ctx, q, &rows, sql, args...); err != nil {
		return nil, fmt.Errorf("card dope_logs: %w", err)
	}

	logs := make([]domain.DopeLog, len(rows))
	for i, stored := range rows {
		logs[i] = stored.toDomain()
	}

	return logs, nil
}

func orderClause(sort domain.DopeLogSort) string {
	switch sort {
	case domain.DopeLogSortDistanceAsc:
		return "distance_yards ASC"
	case domain.DopeLogSortDistanceDesc:
		return "distance_yards DESC"
	case domain.DopeLogSortHitPercentage:
		return "hit_percentage DESC NULLS LAST"
	default:
		return "shot_at DESC"
	}
}
