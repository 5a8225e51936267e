//go:build e2e

package dbtest

import (
	"context"
	"testing"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

// ResetDB truncates all tables so each subtest starts from an empty store.
func ResetDB(pool *pgxpool.Pool) error {
	_, err := pool.Exec(context.Background(), "TRUNCATE lessons, orders")
	return err
}

func LessonSpaces(t *testing.T, pool *pgxpool.Pool, lessonID int64) int32 {
	t.Helper()

	var spaces int32
	err := pool.QueryRow(context.Background(),
		"SELECT spaces FROM lessons WHERE id = $1", lessonID).Scan(&spaces)
	require.NoError(t, err, "Failed to read lesson spaces")
	return spaces
}

func CountOrders(t *testing.T, pool *pgxpool.Pool) int {
	t.Helper()

	var count int
	err := pool.QueryRow(context.Background(),
		"SELECT COUNT(*) FROM orders").Scan(&count)
	require.NoError(t, err, "Failed to count orders")
	return count
}
