//go:build e2e

package booking_test

import (
	"net/http"
	"testing"

	"course-booking-api/tests/common/builder"
	"course-booking-api/tests/common/dbtest"
	"course-booking-api/tests/common/httptest"
	"course-booking-api/tests/e2e"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	coursesURL       = "/courses"
	coursesImportURL = "/courses/import"
	ordersURL        = "/orders"
)

type BookingSuite struct {
	e2e.SharedSuite
}

func (s *BookingSuite) SetupSubTest() {
	s.SharedSuite.SetupSubTest()
}

func TestBookingSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(BookingSuite))
}

func (s *BookingSuite) seedCatalog(t *testing.T) {
	w := httptest.PerformRequest(t, s.Router, http.MethodPost, coursesImportURL, nil)
	require.Equal(t, http.StatusOK, w.Code, "Catalog import should succeed")
}

// =============================================================================
// TestCourses - catalog listing and reseed
// =============================================================================

func (s *BookingSuite) TestCourses() {
	s.Run("Normal case: import seeds the catalog and list returns it", func() {
		t := s.T()

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, coursesImportURL, nil)
		require.Equal(t, http.StatusOK, w.Code)
		body := httptest.DecodeBody(t, w)
		require.Equal(t, 10.0, body["count"])

		w = httptest.PerformRequest(t, s.Router, http.MethodGet, coursesURL, nil)
		require.Equal(t, http.StatusOK, w.Code)
		body = httptest.DecodeBody(t, w)
		courses, ok := body["courses"].([]any)
		require.True(t, ok)
		require.Len(t, courses, 10)
	})

	s.Run("Normal case: empty catalog lists as an empty array", func() {
		t := s.T()

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, coursesURL, nil)
		require.Equal(t, http.StatusOK, w.Code)
		body := httptest.DecodeBody(t, w)
		courses, ok := body["courses"].([]any)
		require.True(t, ok)
		require.Empty(t, courses)
	})

	s.Run("Normal case: search narrows and sort orders the result", func() {
		t := s.T()
		s.seedCatalog(t)

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, coursesURL+"?q=hendon", nil)
		require.Equal(t, http.StatusOK, w.Code)
		body := httptest.DecodeBody(t, w)
		courses := body["courses"].([]any)
		require.NotEmpty(t, courses)
		for _, c := range courses {
			course := c.(map[string]any)
			require.Equal(t, "Hendon", course["location"])
		}

		w = httptest.PerformRequest(t, s.Router, http.MethodGet, coursesURL+"?sortField=price&sortOrder=desc", nil)
		require.Equal(t, http.StatusOK, w.Code)
		body = httptest.DecodeBody(t, w)
		courses = body["courses"].([]any)
		require.Len(t, courses, 10)
		prev := courses[0].(map[string]any)["price"].(float64)
		for _, c := range courses[1:] {
			price := c.(map[string]any)["price"].(float64)
			require.LessOrEqual(t, price, prev, "Prices should be descending")
			prev = price
		}
	})

	s.Run("Normal case: reimport restores consumed spaces", func() {
		t := s.T()
		s.seedCatalog(t)

		reqBody := builder.NewOrderBuilder().BuildRequestDTO()
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, ordersURL, reqBody)
		require.Equal(t, http.StatusCreated, w.Code)
		require.Equal(t, int32(3), dbtest.LessonSpaces(t, s.DB, 1))

		s.seedCatalog(t)
		require.Equal(t, int32(5), dbtest.LessonSpaces(t, s.DB, 1))
	})
}

// =============================================================================
// TestPlaceOrder - checkout flow against a live store
// =============================================================================

func (s *BookingSuite) TestPlaceOrder() {
	s.Run("Normal case: order persists and spaces are decremented", func() {
		t := s.T()
		s.seedCatalog(t)

		reqBody := builder.NewOrderBuilder().BuildRequestDTO()
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, ordersURL, reqBody)
		require.Equal(t, http.StatusCreated, w.Code)

		body := httptest.DecodeBody(t, w)
		require.Contains(t, body["message"], "Jo Smith")
		orderBody, ok := body["order"].(map[string]any)
		require.True(t, ok)
		require.Equal(t, 20.0, orderBody["total"])

		require.Equal(t, int32(3), dbtest.LessonSpaces(t, s.DB, 1))
		require.Equal(t, 1, dbtest.CountOrders(t, s.DB))
	})

	s.Run("Edge case: quantity beyond availability clamps spaces at zero", func() {
		t := s.T()
		s.seedCatalog(t)

		reqBody := builder.NewOrderBuilder().With(func(b *builder.OrderBuilder) {
			b.Items[0].Quantity = 10
		}).BuildRequestDTO()

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, ordersURL, reqBody)
		require.Equal(t, http.StatusCreated, w.Code)
		require.Equal(t, int32(0), dbtest.LessonSpaces(t, s.DB, 1))
	})

	s.Run("Edge case: unknown lesson is reported but does not fail the order", func() {
		t := s.T()
		s.seedCatalog(t)

		price := 7.0
		reqBody := builder.NewOrderBuilder().With(func(b *builder.OrderBuilder) {
			b.Items[0].ID = 999
			b.Items[0].Price = &price
		}).BuildRequestDTO()

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, ordersURL, reqBody)
		require.Equal(t, http.StatusCreated, w.Code)

		body := httptest.DecodeBody(t, w)
		missing, ok := body["missing_lessons"].([]any)
		require.True(t, ok)
		require.Equal(t, []any{999.0}, missing)
		require.Equal(t, 1, dbtest.CountOrders(t, s.DB))
	})

	s.Run("Error case: invalid phone is rejected and nothing is stored", func() {
		t := s.T()
		s.seedCatalog(t)

		reqBody := builder.NewOrderBuilder().With(func(b *builder.OrderBuilder) {
			b.Phone = "12345"
		}).BuildRequestDTO()

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, ordersURL, reqBody)
		require.Equal(t, http.StatusBadRequest, w.Code)

		require.Equal(t, int32(5), dbtest.LessonSpaces(t, s.DB, 1))
		require.Equal(t, 0, dbtest.CountOrders(t, s.DB))
	})
}

// =============================================================================
// TestListOrders - retrieval in placement order
// =============================================================================

func (s *BookingSuite) TestListOrders() {
	s.Run("Normal case: orders come back newest first", func() {
		t := s.T()
		s.seedCatalog(t)

		first := builder.NewOrderBuilder().With(func(b *builder.OrderBuilder) {
			b.Name = "First Customer"
		}).BuildRequestDTO()
		second := builder.NewOrderBuilder().With(func(b *builder.OrderBuilder) {
			b.Name = "Second Customer"
		}).BuildRequestDTO()

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, ordersURL, first)
		require.Equal(t, http.StatusCreated, w.Code)
		w = httptest.PerformRequest(t, s.Router, http.MethodPost, ordersURL, second)
		require.Equal(t, http.StatusCreated, w.Code)

		w = httptest.PerformRequest(t, s.Router, http.MethodGet, ordersURL, nil)
		require.Equal(t, http.StatusOK, w.Code)

		body := httptest.DecodeBody(t, w)
		orders, ok := body["orders"].([]any)
		require.True(t, ok)
		require.Len(t, orders, 2)
		require.Equal(t, "Second Customer", orders[0].(map[string]any)["name"])
		require.Equal(t, "First Customer", orders[1].(map[string]any)["name"])
	})
}
