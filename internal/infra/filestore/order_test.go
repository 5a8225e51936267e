//go:build unit

package filestore_test

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"course-booking-api/internal/domain/order"
	"course-booking-api/internal/infra/filestore"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestOrder(name string, createdAt time.Time) *order.Order {
	return order.ReconstructOrder(
		uuid.New(),
		name,
		"07123456789",
		[]order.LineItem{{LessonID: 1, Title: "Art & Painting", Price: 10, Quantity: 2}},
		20,
		createdAt,
	)
}

func TestOrderStore_MissingFileReadsAsEmpty(t *testing.T) {
	ctx := context.Background()
	store, err := filestore.NewOrderStore(filepath.Join(t.TempDir(), "orders.json"), discardLogger())
	require.NoError(t, err)

	orders, err := store.ListAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, orders)
}

func TestOrderStore_EmptyFileReadsAsEmpty(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "orders.json")
	require.NoError(t, os.WriteFile(path, nil, 0o644))

	store, err := filestore.NewOrderStore(path, discardLogger())
	require.NoError(t, err)

	orders, err := store.ListAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, orders)
}

func TestOrderStore_AppendAndListNewestFirst(t *testing.T) {
	ctx := context.Background()
	store, err := filestore.NewOrderStore(filepath.Join(t.TempDir(), "orders.json"), discardLogger())
	require.NoError(t, err)

	base := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)
	require.NoError(t, store.Append(ctx, newTestOrder("Alice Aardvark", base)))
	require.NoError(t, store.Append(ctx, newTestOrder("Bob Badger", base.Add(time.Hour))))
	require.NoError(t, store.Append(ctx, newTestOrder("Carol Cat", base.Add(30*time.Minute))))

	orders, err := store.ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, orders, 3)

	assert.Equal(t, "Bob Badger", orders[0].Name())
	assert.Equal(t, "Carol Cat", orders[1].Name())
	assert.Equal(t, "Alice Aardvark", orders[2].Name())
}

func TestOrderStore_RoundTripPreservesOrderFields(t *testing.T) {
	ctx := context.Background()
	store, err := filestore.NewOrderStore(filepath.Join(t.TempDir(), "orders.json"), discardLogger())
	require.NoError(t, err)

	created := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)
	original := newTestOrder("Jo Smith", created)
	require.NoError(t, store.Append(ctx, original))

	orders, err := store.ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, orders, 1)

	got := orders[0]
	assert.Equal(t, original.ID(), got.ID())
	assert.Equal(t, "Jo Smith", got.Name())
	assert.Equal(t, "07123456789", got.Phone())
	assert.Equal(t, 20.0, got.Total())
	assert.True(t, got.CreatedAt().Equal(created))
	require.Len(t, got.Items(), 1)
	assert.Equal(t, int64(1), got.Items()[0].LessonID)
}

func TestOrderStore_CreatesParentDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "orders.json")
	_, err := filestore.NewOrderStore(path, discardLogger())
	require.NoError(t, err)
	assert.DirExists(t, filepath.Dir(path))
}
