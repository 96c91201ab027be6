package testhelper

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

// SeedUser inserts a user row and returns its ID.
func SeedUser(t *testing.T, pool *pgxpool.Pool, email string) uuid.UUID {
	t.Helper()

	id := uuid.New()
	now := time.Now().UTC()
	_, err := pool.Exec(context.Background(), `
		INSERT INTO users (id, email, username, password_hash, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $5)`,
		id, email, "user-"+id.String()[:8], "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy", now)
	if err != nil {
		t.Fatalf("seed user: %v", err)
	}
	return id
}

// SeedRifle inserts a rifle profile for userID and returns its ID.
func SeedRifle(t *testing.T, pool *pgxpool.Pool, userID uuid.UUID, name string) uuid.UUID {
	t.Helper()

	id := uuid.New()
	now := time.Now().UTC()
	_, err := pool.Exec(context.Background(), `
		INSERT INTO rifle_profiles (
			id, user_id, name, caliber, barrel_length, twist_rate,
			zero_distance, click_unit, click_value, scope_height,
			created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $11)`,
		id, userID, name, "6.5 Creedmoor", 24.0, "1:8", 100.0, "MIL", 0.1, 1.8, now)
	if err != nil {
		t.Fatalf("seed rifle: %v", err)
	}
	return id
}

// SeedAmmo inserts an ammo profile tied to rifleID and returns its ID.
func SeedAmmo(t *testing.T, pool *pgxpool.Pool, userID, rifleID uuid.UUID, name string) uuid.UUID {
	t.Helper()

	id := uuid.New()
	now := time.Now().UTC()
	_, err := pool.Exec(context.Background(), `
		INSERT INTO ammo_profiles (
			id, user_id, rifle_id, name, manufacturer, bullet_weight,
			bullet_type, ballistic_coefficient_g7, muzzle_velocity,
			created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $10)`,
		id, userID, rifleID, name, "Hornady", 140.0, "ELD-M", 0.295, 2710.0, now)
	if err != nil {
		t.Fatalf("seed ammo: %v", err)
	}
	return id
}

// SeedEnvironment inserts an environment snapshot and returns its ID.
func SeedEnvironment(t *testing.T, pool *pgxpool.Pool, userID uuid.UUID, takenAt time.Time) uuid.UUID {
	t.Helper()

	id := uuid.New()
	now := time.Now().UTC()
	_, err := pool.Exec(context.Background(), `
		INSERT INTO environment_snapshots (
			id, user_id, temperature, humidity, pressure, altitude,
			density_altitude, wind_speed, wind_direction, taken_at,
			created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $11)`,
		id, userID, 70.0, 50.0, 29.92, 0.0, 1320, 5.0, 90.0, takenAt, now)
	if err != nil {
		t.Fatalf("seed environment: %v", err)
	}
	return id
}

// SeedDopeLog inserts a DOPE log entry at the given distance (yards) and
// returns its ID. Derived columns are written directly so tests can assert
// on raw stored values.
func SeedDopeLog(t *testing.T, pool *pgxpool.Pool, userID, rifleID, ammoID, envID uuid.UUID, distanceYards float64) uuid.UUID {
	t.Helper()

	id := uuid.New()
	now := time.Now().UTC()
	_, err := pool.Exec(context.Background(), `
		INSERT INTO dope_logs (
			id, user_id, rifle_id, ammo_id, environment_id,
			distance, distance_unit, distance_yards,
			elevation_correction, windage_correction, correction_unit,
			target_type, hit_count, shot_count, hit_percentage,
			shot_at, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $17)`,
		id, userID, rifleID, ammoID, envID,
		distanceYards, "yards", distanceYards,
		3.2, 0.4, "MIL",
		"steel", 8, 10, 80.0,
		now, now)
	if err != nil {
		t.Fatalf("seed dope log: %v", err)
	}
	return id
}
