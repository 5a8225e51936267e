package lesson

import (
	"sort"
	"strconv"
	"strings"
)

type SortField string

const (
	SortByID       SortField = "id"
	SortByTitle    SortField = "title"
	SortByLocation SortField = "location"
	SortByPrice    SortField = "price"
	SortBySpaces   SortField = "spaces"
)

// ParseSortField maps a raw query value onto the sortable-column allow-list.
// Anything outside the list falls back to id.
func ParseSortField(raw string) SortField {
	switch SortField(strings.ToLower(strings.TrimSpace(raw))) {
	case SortByTitle:
		return SortByTitle
	case SortByLocation:
		return SortByLocation
	case SortByPrice:
		return SortByPrice
	case SortBySpaces:
		return SortBySpaces
	default:
		return SortByID
	}
}

// ParseSortOrder returns true for a descending sort. Ascending unless the
// caller asked for exactly "desc".
func ParseSortOrder(raw string) bool {
	return strings.EqualFold(strings.TrimSpace(raw), "desc")
}

// Query describes a catalog listing: an optional search term plus sort
// field and direction.
type Query struct {
	Term string
	Sort SortField
	Desc bool
}

func NewQuery(term, sortField, sortOrder string) Query {
	return Query{
		Term: strings.TrimSpace(term),
		Sort: ParseSortField(sortField),
		Desc: ParseSortOrder(sortOrder),
	}
}

// NumericTerm reports whether the search term parses as a number, and its
// value. Numeric terms additionally match price/spaces equality.
func (q Query) NumericTerm() (float64, bool) {
	if q.Term == "" {
		return 0, false
	}
	n, err := strconv.ParseFloat(q.Term, 64)
	if err != nil {
		return 0, false
	}
	return n, true
}

// Matches applies the search term to a single lesson: case-insensitive
// substring over title/description/location, plus exact price/spaces match
// when the term is numeric. An empty term matches everything.
func (q Query) Matches(l Lesson) bool {
	if q.Term == "" {
		return true
	}
	term := strings.ToLower(q.Term)
	if strings.Contains(strings.ToLower(l.Title), term) ||
		strings.Contains(strings.ToLower(l.Description), term) ||
		strings.Contains(strings.ToLower(l.Location), term) {
		return true
	}
	if n, ok := q.NumericTerm(); ok {
		return l.Price == n || float64(l.Spaces) == n
	}
	return false
}

// SortLessons orders lessons in place according to the query.
func SortLessons(lessons []Lesson, q Query) {
	less := func(a, b Lesson) bool {
		switch q.Sort {
		case SortByTitle:
			return strings.ToLower(a.Title) < strings.ToLower(b.Title)
		case SortByLocation:
			return strings.ToLower(a.Location) < strings.ToLower(b.Location)
		case SortByPrice:
			return a.Price < b.Price
		case SortBySpaces:
			return a.Spaces < b.Spaces
		default:
			return a.ID < b.ID
		}
	}
	sort.SliceStable(lessons, func(i, j int) bool {
		if q.Desc {
			return less(lessons[j], lessons[i])
		}
		return less(lessons[i], lessons[j])
	})
}
