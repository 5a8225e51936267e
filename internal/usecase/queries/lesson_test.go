//go:build unit

package queries_test

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"course-booking-api/internal/domain/lesson"
	"course-booking-api/internal/infra/filestore"
	"course-booking-api/internal/usecase/queries"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func TestLessonQueries_List(t *testing.T) {
	ctx := context.Background()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	seed := []lesson.Lesson{
		{ID: 1, Title: "Art & Painting", Description: "Watercolour basics", Location: "Hendon", Price: 10, Spaces: 5, Rating: 4.5, Image: "images/art.jpg"},
		{ID: 2, Title: "Chess", Description: "Openings and tactics", Location: "Golders Green", Price: 8, Spaces: 3, Rating: 4.6, Image: "images/chess.jpg"},
	}
	q := queries.NewLessonQueries(filestore.NewCatalogStore(seed, logger))

	t.Run("maps every lesson field onto the view", func(t *testing.T) {
		views, err := q.List(ctx, lesson.NewQuery("paint", "", ""))
		require.NoError(t, err)
		require.Len(t, views, 1)

		want := queries.LessonView{
			ID:          1,
			Title:       "Art & Painting",
			Description: "Watercolour basics",
			Location:    "Hendon",
			Price:       10,
			Spaces:      5,
			Rating:      4.5,
			Image:       "images/art.jpg",
		}
		if diff := cmp.Diff(want, views[0]); diff != "" {
			t.Errorf("view mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("empty result stays an empty slice", func(t *testing.T) {
		views, err := q.List(ctx, lesson.NewQuery("no such course", "", ""))
		require.NoError(t, err)
		require.Empty(t, views)
	})

	t.Run("sort order flows through to the store", func(t *testing.T) {
		views, err := q.List(ctx, lesson.NewQuery("", "price", "desc"))
		require.NoError(t, err)
		require.Len(t, views, 2)
		require.Equal(t, int64(1), views[0].ID)
		require.Equal(t, int64(2), views[1].ID)
	})
}
