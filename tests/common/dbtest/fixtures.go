//go:build unit || e2e

package dbtest

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"rentride/tests/common/builder"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

func CreateTestVehicle(t *testing.T, db DBLike, name, city string) uuid.UUID {
	t.Helper()

	vehicleID := uuid.New()
	ctx := context.Background()

	_, err := db.Exec(ctx,
		"INSERT INTO vehicles (id, name, city, is_active) VALUES ($1, $2, $3, true)",
		vehicleID, name, city)
	require.NoError(t, err)

	return vehicleID
}

// CreateTestSlot persists the builder's slot for the given vehicle and returns
// its ID. The builder's own VehicleID is ignored in favor of the argument so
// fixtures compose naturally with CreateTestVehicle.
func CreateTestSlot(t *testing.T, db DBLike, vehicleID uuid.UUID, b *builder.SlotBuilder) uuid.UUID {
	t.Helper()

	ctx := context.Background()
	var dailyRate *int64
	if b.DailyRate != nil {
		v := *b.DailyRate
		dailyRate = &v
	}

	_, err := db.Exec(ctx, `
		INSERT INTO availability_slots
		    (id, vehicle_id, start_datetime, end_datetime, hourly_rate, daily_rate,
		     min_rental_hours, max_rental_hours, is_active)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		b.ID, vehicleID, b.Start, b.End, b.HourlyRate, dailyRate,
		b.MinRentalHours, b.MaxRentalHours, b.IsActive)
	require.NoError(t, err)

	return b.ID
}

func CountBookings(t *testing.T, db DBLike, vehicleID uuid.UUID) int {
	t.Helper()

	var count int
	err := db.QueryRow(context.Background(),
		"SELECT COUNT(*) FROM bookings WHERE vehicle_id = $1", vehicleID).Scan(&count)
	require.NoError(t, err)
	return count
}

// SeedReferenceData exists for parity with ResetDB; the schema has no shared
// reference rows, every fixture is created per test.
func SeedReferenceData(_ *pgxpool.Pool) error {
	return nil
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// truncates all tables and reseeds reference data
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	buildTruncateOnce.Do(func() {
		rows, err := pool.Query(ctx, `
		  SELECT 'public.' || quote_ident(tablename)
		  FROM pg_tables
		  WHERE schemaname = 'public'
		    AND tablename NOT IN ('schema_migrations')`)
		if err != nil {
			truncateSQL.Store("")
			return
		}
		defer rows.Close()
		var tables []string
		for rows.Next() {
			var t string
			if err := rows.Scan(&t); err != nil {
				truncateSQL.Store("")
				return
			}
			tables = append(tables, t)
		}
		if rows.Err() != nil {
			truncateSQL.Store("")
			return
		}
		if len(tables) == 0 {
			truncateSQL.Store("SELECT 1")
			return
		}
		truncateSQL.Store("TRUNCATE " + strings.Join(tables, ", ") + " RESTART IDENTITY CASCADE;")
	})
	sqlAny := truncateSQL.Load()
	if sqlAny == nil || sqlAny.(string) == "" {
		return fmt.Errorf("failed to build TRUNCATE SQL")
	}
	if _, err := pool.Exec(ctx, sqlAny.(string)); err != nil {
		return err
	}

	return SeedReferenceData(pool)
}
