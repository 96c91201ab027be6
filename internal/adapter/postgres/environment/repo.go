// Package environment implements the environment snapshot repository using
// PostgreSQL.
package environment

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

var envColumns = []string{
	"id", "user_id", "temperature", "humidity", "pressure", "altitude",
	"density_altitude", "wind_speed", "wind_direction", "latitude", "longitude",
	"taken_at", "created_at", "updated_at",
}

// row mirrors one environment_snapshots row for scany.
type row struct {
	ID              uuid.UUID `db:"id"`
	UserID          uuid.UUID `db:"user_id"`
	Temperature     float64   `db:"temperature"`
	Humidity        float64   `db:"humidity"`
	Pressure        float64   `db:"pressure"`
	Altitude        float64   `db:"altitude"`
	DensityAltitude int       `db:"density_altitude"`
	WindSpeed       float64   `db:"wind_speed"`
	WindDirection   float64   `db:"wind_direction"`
	Latitude        *float64  `db:"latitude"`
	Longitude       *float64  `db:"longitude"`
	TakenAt         time.Time `db:"taken_at"`
	CreatedAt       time.Time `db:"created_at"`
	UpdatedAt       time.Time `db:"updated_at"`
}

func (r row) toDomain() domain.EnvironmentSnapshot {
	return domain.EnvironmentSnapshot{
		ID:              r.ID,
		UserID:          r.UserID,
		Temperature:     r.Temperature,
		Humidity:        r.Humidity,
		Pressure:        r.Pressure,
		Altitude:        r.Altitude,
		DensityAltitude: r.DensityAltitude,
		WindSpeed:       r.WindSpeed,
		WindDirection:   r.WindDirection,
		Latitude:        r.Latitude,
		Longitude:       r.Longitude,
		TakenAt:         r.TakenAt,
		CreatedAt:       r.CreatedAt,
		UpdatedAt:       r.UpdatedAt,
	}
}

// Repo provides environment snapshot persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new environment snapshot repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// Create inserts a new snapshot and returns the persisted record.
func (r *Repo) Create(ctx context.Context, env *domain.EnvironmentSnapshot) (*domain.EnvironmentSnapshot, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := postgres.Builder().
		Insert("environment_snapshots").
		Columns(envColumns...).
		Values(env.ID, env.UserID, env.Temperature, env.Humidity, env.Pressure,
			env.Altitude, env.DensityAltitude, env.WindSpeed, env.WindDirection,
			env.Latitude, env.Longitude, env.TakenAt, env.CreatedAt, env.UpdatedAt).
		Suffix("RETURNING " + strings.Join(envColumns, ", ")).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build insert environment_snapshot: %w", err)
	}

	var stored row
	if err := pgxscan.Get(ctx, q, &stored, sql, args...); err != nil {
		return nil, postgres.MapError(err, "environment_snapshot", env.ID)
	}

	result := stored.toDomain()
	return &result, nil
}

// GetByID returns a snapshot by primary key filtered by user_id.
func (r *Repo) GetByID(ctx context.Context, userID, envID uuid.UUID) (*domain.EnvironmentSnapshot, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := postgres.Builder().
		Select(envColumns...).
		From("environment_snapshots").
		Where(squirrel.Eq{"id": envID, "user_id": userID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build select environment_snapshot: %w", err)
	}

	var stored row
	if err := pgxscan.Get(ctx, q, &stored, sql, args...); err != nil {
		return nil, postgres.MapError(err, "environment_snapshot", envID)
	}

	result := stored.toDomain()
	return &result, nil
}

// Latest returns the user's most recent snapshot by taken_at.
func (r *Repo) Latest(ctx context.Context, userID uuid.UUID) (*domain.EnvironmentSnapshot, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := postgres.Builder().
		Select(envColumns...).
		From("environment_snapshots").
		Where(squirrel.Eq{"user_id": userID}).
		OrderBy("taken_at DESC").
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build latest environment_snapshot: %w", err)
	}

	var stored row
	if err := pgxscan.Get(ctx, q, &stored, sql, args...); err != nil {
		return nil, postgres.MapError(err, "environment_snapshot", uuid.Nil)
	}

	result := stored.toDomain()
	return &result, nil
}

// Update writes all mutable columns of an existing snapshot.
func (r *Repo) Update(ctx context.Context, env *domain.EnvironmentSnapshot) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := postgres.Builder().
		Update("environment_snapshots").
		Set("temperature", env.Temperature).
		Set("humidity", env.Humidity).
		Set("pressure", env.Pressure).
		Set("altitude", env.Altitude).
		Set("density_altitude", env.DensityAltitude).
		Set("wind_speed", env.WindSpeed).
		Set("wind_direction", env.WindDirection).
		Set("latitude", env.Latitude).
		Set("longitude", env.Longitude).
		Set("taken_at", env.TakenAt).
		Set("updated_at", env.UpdatedAt).
		Where(squirrel.Eq{"id": env.ID, "user_id": env.UserID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build update environment_snapshot: %w", err)
	}

	tag, err := q.Exec(ctx, sql, args...)
	if err != nil {
		return postgres.MapError(err, "environment_snapshot", env.ID)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("environment_snapshot %s: %w", env.ID, domain.ErrNotFound)
	}

	return nil
}

// CountReferences returns the number of the user's DOPE logs that still
// reference the snapshot. The service checks this inside the same
// transaction as the delete.
func (r *Repo) CountReferences(ctx context.Context, userID, envID uuid.UUID) (int, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	var count int
	err := q.QueryRow(ctx,
		`SELECT count(*) FROM dope_logs WHERE user_id = $1 AND environment_id = $2`,
		userID, envID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count environment references: %w", err)
	}

	return count, nil
}

// Delete removes a snapshot. The ON DELETE RESTRICT constraint on dope_logs
// is the final safety net behind the service's reference check.
func (r *Repo) Delete(ctx context.Context, userID, envID uuid.UUID) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := q.Exec(ctx,
		`DELETE FROM environment_snapshots WHERE id = $1 AND user_id = $2`, envID, userID)
	if err != nil {
		return postgres.MapError(err, "environment_snapshot", envID)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("environment_snapshot %s: %w", envID, domain.ErrNotFound)
	}

	return nil
}

// List returns a page of the user's snapshots matching the filter, plus the
// total matching count. Sorted by taken_at, newest first by default.
func (r *Repo) List(ctx context.Context, userID uuid.UUID, f domain.EnvironmentFilter) ([]domain.EnvironmentSnapshot, int, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	where := squirrel.And{squirrel.Eq{"user_id": userID}}
	if f.TemperatureMin != nil {
		where = append(where, squirrel.GtOrEq{"temperature": *f.TemperatureMin})
	}
	if f.TemperatureMax != nil {
		where = append(where, squirrel.LtOrEq{"temperature": *f.TemperatureMax})
	}
	if f.TakenFrom != nil {
		where = append(where, squirrel.GtOrEq{"taken_at": *f.TakenFrom})
	}
	if f.TakenTo != nil {
		where = append(where, squirrel.LtOrEq{"taken_at": *f.TakenTo})
	}

	countSQL, countArgs, err := postgres.Builder().
		Select("count(*)").From("environment_snapshots").Where(where).ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build count environment_snapshots: %w", err)
	}

	var total int
	if err := q.QueryRow(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count environment_snapshots: %w", err)
	}

	order := domain.SortDesc
	if f.SortOrder.IsValid() {
		order = f.SortOrder
	}

	sql, args, err := postgres.Builder().
		Select(envColumns...).
		From("environment_snapshots").
		Where(where).
		OrderBy("taken_at " + string(order)).
		Limit(uint64(f.Limit)).
		Offset(uint64(f.Offset())).
		ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build list environment_snapshots: %w", err)
	}

	var rows []row
	if err := pgxscan.Select(ctx, q, &rows, sql, args...); err != nil {
		return nil, 0, fmt.Errorf("list environment_snapshots: %w", err)
	}

	snapshots := make([]domain.EnvironmentSnapshot, len(rows))
	for i, stored := range rows {
		snapshots[i] = stored.toDomain()
	}

	return snapshots, total, nil
}

const averagesSQL = `
SELECT
  count(*)              AS count,
  avg(temperature)      AS avg_temperature,
  min(temperature)      AS min_temperature,
  max(temperature)      AS max_temperature,
  avg(humidity)         AS avg_humidity,
  avg(pressure)         AS avg_pressure,
  avg(altitude)         AS avg_altitude,
  avg(density_altitude) AS avg_density_altitude,
  avg(wind_speed)       AS avg_wind_speed
FROM environment_snapshots
WHERE user_id = $1 AND taken_at >= $2 AND taken_at <= $3`

// Averages aggregates the user's snapshots taken within [from,to] inclusive.
// No matching rows yields count 0 and nil aggregates, never an error.
func (r *Repo) Averages(ctx context.Context, userID uuid.UUID, from, to time.Time) (domain.EnvironmentAverages, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	var avg domain.EnvironmentAverages
	err := q.QueryRow(ctx, averagesSQL, userID, from, to).Scan(
		&avg.Count,
		&avg.AvgTemperature, &avg.MinTemperature, &avg.MaxTemperature,
		&avg.AvgHumidity, &avg.AvgPressure, &avg.AvgAltitude,
		&avg.AvgDensityAltitude, &avg.AvgWindSpeed)
	if err != nil {
		return domain.EnvironmentAverages{}, fmt.Errorf("environment averages: %w", err)
	}

	return avg, nil
}
