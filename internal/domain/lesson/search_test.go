//go:build unit

package lesson_test

import (
	"testing"

	"course-booking-api/internal/domain/lesson"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
)

func TestParseSortField(t *testing.T) {
	testCases := []struct {
		raw  string
		want lesson.SortField
	}{
		{"title", lesson.SortByTitle},
		{"Location", lesson.SortByLocation},
		{"PRICE", lesson.SortByPrice},
		{"spaces", lesson.SortBySpaces},
		{"id", lesson.SortByID},
		{"", lesson.SortByID},
		{"rating", lesson.SortByID},       // not in the allow-list
		{"created_at; --", lesson.SortByID}, // junk falls back too
	}
	for _, tc := range testCases {
		assert.Equal(t, tc.want, lesson.ParseSortField(tc.raw), "raw=%q", tc.raw)
	}
}

func TestParseSortOrder(t *testing.T) {
	assert.False(t, lesson.ParseSortOrder(""))
	assert.False(t, lesson.ParseSortOrder("asc"))
	assert.False(t, lesson.ParseSortOrder("descending"))
	assert.True(t, lesson.ParseSortOrder("desc"))
	assert.True(t, lesson.ParseSortOrder("DESC"))
}

func TestQuery_Matches(t *testing.T) {
	art := lesson.Lesson{ID: 1, Title: "Art & Painting", Description: "Watercolour basics", Location: "Hendon", Price: 10, Spaces: 5}
	chess := lesson.Lesson{ID: 2, Title: "Chess", Description: "Openings and tactics", Location: "Golders Green", Price: 8, Spaces: 3}

	testCases := []struct {
		name      string
		term      string
		wantArt   bool
		wantChess bool
	}{
		{"empty term matches all", "", true, true},
		{"title substring, case-insensitive", "paint", true, false},
		{"description substring", "tactics", false, true},
		{"location substring", "hendon", true, false},
		{"numeric matches price", "8", false, true},
		{"numeric matches spaces", "5", true, false},
		{"numeric with no equal field", "99", false, false},
		{"text with no match", "swimming", false, false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			q := lesson.NewQuery(tc.term, "", "")
			assert.Equal(t, tc.wantArt, q.Matches(art), "art")
			assert.Equal(t, tc.wantChess, q.Matches(chess), "chess")
		})
	}
}

func TestSortLessons(t *testing.T) {
	lessons := func() []lesson.Lesson {
		return []lesson.Lesson{
			{ID: 2, Title: "Chess", Price: 8, Spaces: 3},
			{ID: 1, Title: "art", Price: 10, Spaces: 5},
			{ID: 3, Title: "Ballet", Price: 8, Spaces: 4},
		}
	}

	t.Run("by title ascending, case-insensitive", func(t *testing.T) {
		ls := lessons()
		lesson.SortLessons(ls, lesson.NewQuery("", "title", ""))
		got := []int64{ls[0].ID, ls[1].ID, ls[2].ID}
		assert.Empty(t, cmp.Diff([]int64{1, 3, 2}, got))
	})

	t.Run("by price descending", func(t *testing.T) {
		ls := lessons()
		lesson.SortLessons(ls, lesson.NewQuery("", "price", "desc"))
		assert.Equal(t, int64(1), ls[0].ID)
	})

	t.Run("stable for equal keys", func(t *testing.T) {
		ls := lessons()
		lesson.SortLessons(ls, lesson.NewQuery("", "price", ""))
		// two lessons at price 8 keep their input order
		assert.Equal(t, int64(2), ls[0].ID)
		assert.Equal(t, int64(3), ls[1].ID)
	})

	t.Run("unknown field falls back to id", func(t *testing.T) {
		ls := lessons()
		lesson.SortLessons(ls, lesson.NewQuery("", "bogus", ""))
		got := []int64{ls[0].ID, ls[1].ID, ls[2].ID}
		assert.Empty(t, cmp.Diff([]int64{1, 2, 3}, got))
	})
}

func TestLesson_DecrementSpaces_Clamps(t *testing.T) {
	l := lesson.Lesson{ID: 1, Spaces: 5}

	l.DecrementSpaces(2)
	assert.Equal(t, int32(3), l.Spaces)

	l.DecrementSpaces(10)
	assert.Equal(t, int32(0), l.Spaces)

	l.DecrementSpaces(1)
	assert.Equal(t, int32(0), l.Spaces)
}
