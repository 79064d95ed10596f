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

	sqlc "coworking-booking/internal/infra/sqlc/generated"
	"coworking-booking/internal/pkg/password"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

// DBLike is whatever the repositories run on, so fixtures work on the pool
// and inside a test transaction alike.
type DBLike = sqlc.DBTX

// DefaultPassword is the plain password of every profile created by CreateTestProfile.
const DefaultPassword = "password123"

var (
	hashOnce    sync.Once
	defaultHash string
	hashErr     error
)

func passwordHash(t *testing.T) string {
	t.Helper()
	hashOnce.Do(func() {
		defaultHash, hashErr = password.HashPassword(DefaultPassword)
	})
	require.NoError(t, hashErr)
	return defaultHash
}

type ProfileOpts struct {
	FullName string
	Company  *string
	Unit     *string
	Quota    *float64
	Admin    bool
	Pending  bool
}

// CreateTestProfile inserts an approved member unless opts say otherwise. An
// existing profile with the same email is reused.
func CreateTestProfile(t *testing.T, db DBLike, email string, opts ProfileOpts) uuid.UUID {
	t.Helper()

	if opts.FullName == "" {
		opts.FullName = "Test " + strings.SplitN(email, "@", 2)[0]
	}
	id := uuid.New()
	ctx := context.Background()

	tag, err := db.Exec(ctx, `
		INSERT INTO profiles (id, email, password_hash, full_name, company_name, assigned_room, monthly_hours_quota, is_admin, is_approved)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		ON CONFLICT (email) DO NOTHING`,
		id, email, passwordHash(t), opts.FullName, opts.Company, opts.Unit, opts.Quota, opts.Admin, !opts.Pending)
	require.NoError(t, err)

	if tag.RowsAffected() == 0 {
		require.NoError(t, db.QueryRow(ctx, "SELECT id FROM profiles WHERE email = $1", email).Scan(&id))
	}
	return id
}

// CreateTestBooking inserts a booking directly, bypassing admission rules.
func CreateTestBooking(t *testing.T, db DBLike, ownerID uuid.UUID, room string, start, end time.Time) uuid.UUID {
	t.Helper()

	id := uuid.New()
	_, err := db.Exec(context.Background(), `
		INSERT INTO bookings (id, user_id, room_id, title, start_time, end_time)
		VALUES ($1, $2, $3, $4, $5, $6)`,
		id, ownerID, room, "Seeded booking", start, end)
	require.NoError(t, err)
	return id
}

func CountRows(t *testing.T, db DBLike, table, where string, args ...any) int {
	t.Helper()

	query := "SELECT count(*) FROM " + table
	if where != "" {
		query += " WHERE " + where
	}
	var n int
	require.NoError(t, db.QueryRow(context.Background(), query, args...).Scan(&n))
	return n
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// ResetDB truncates every table in the public schema.
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	buildTruncateOnce.Do(func() {
		rows, err := pool.Query(ctx, `
		  SELECT 'public.' || quote_ident(tablename)
		  FROM pg_tables
		  WHERE schemaname = 'public'
		    AND tablename NOT IN ('atlas_schema_revisions')`)
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
	_, err := pool.Exec(ctx, sqlAny.(string))
	return err
}
