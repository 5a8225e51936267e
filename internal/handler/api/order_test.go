//go:build unit

package api_test

import (
	"net/http"
	"testing"
	"time"

	"course-booking-api/internal/domain/order"
	"course-booking-api/internal/handler/api"
	"course-booking-api/internal/pkg/errs"
	"course-booking-api/internal/usecase/commands"
	"course-booking-api/internal/usecase/queries"
	"course-booking-api/tests/common/builder"
	"course-booking-api/tests/common/httptest"
	commandsmock "course-booking-api/tests/mock/commands"
	queriesmock "course-booking-api/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type OrderHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockOrderCommands
	mockQueries  *queriesmock.MockOrderQueries
	handler      *api.OrderHandler
}

func (s *OrderHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockOrderCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockOrderQueries(s.mockCtrl)
	s.handler = api.NewOrderHandler(s.mockCommands, s.mockQueries)

	s.router.POST("/orders", s.handler.CreateOrder)
	s.router.GET("/orders", s.handler.ListOrders)
	s.router.GET("/orders/test", s.handler.TestOrder)
}

func (s *OrderHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestOrderHandlerSuite(t *testing.T) {
	suite.Run(t, new(OrderHandlerTestSuite))
}

func placeOrderResult(t *testing.T) *commands.PlaceOrderResult {
	t.Helper()

	b := builder.NewOrderBuilder()
	draft, err := order.NewDraft(b.Name, b.Phone, b.BuildDraftItems(), b.Total)
	require.NoError(t, err)
	draft.FillItem(0, "Art & Painting", 10)

	return &commands.PlaceOrderResult{
		Order: draft.Finalize(time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)),
	}
}

// ================================================================================
// TestCreateOrder
// ================================================================================

func (s *OrderHandlerTestSuite) TestCreateOrder() {
	url := "/orders"

	s.Run("success: returns 201 with order and message", func() {
		result := placeOrderResult(s.T())
		s.mockCommands.EXPECT().PlaceOrder(gomock.Any(), gomock.Any()).
			Return(result, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, builder.NewOrderBuilder().BuildRequestDTO())

		s.Equal(http.StatusCreated, rec.Code)
		body := httptest.DecodeBody(s.T(), rec)
		s.Equal("Order received! Thank you, Jo Smith.", body["message"])

		orderBody, ok := body["order"].(map[string]any)
		s.Require().True(ok)
		s.Equal(20.0, orderBody["total"])
	})

	s.Run("success: surfaces missing lessons on the response", func() {
		result := placeOrderResult(s.T())
		result.MissingLessons = []int64{42}
		s.mockCommands.EXPECT().PlaceOrder(gomock.Any(), gomock.Any()).
			Return(result, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, builder.NewOrderBuilder().BuildRequestDTO())

		s.Equal(http.StatusCreated, rec.Code)
		body := httptest.DecodeBody(s.T(), rec)
		s.Contains(body, "missing_lessons")
	})

	s.Run("validation: binding failures return 400 without reaching the usecase", func() {
		bindCases := []map[string]any{
			{"phone": "07123456789", "items": []map[string]any{{"id": 1, "quantity": 1}}}, // no name
			{"name": "Jo Smith", "items": []map[string]any{{"id": 1, "quantity": 1}}},     // no phone
			{"name": "Jo Smith", "phone": "07123456789"},                                  // no items
			{"name": "Jo Smith", "phone": "07123456789", "items": []map[string]any{}},     // empty items
		}
		for _, payload := range bindCases {
			rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, payload)
			s.Equal(http.StatusBadRequest, rec.Code)
		}
	})

	s.Run("validation: zero quantity passes binding and gets the quantity message", func() {
		s.mockCommands.EXPECT().PlaceOrder(gomock.Any(), gomock.Any()).
			Return(nil, errs.ErrInvalidQuantity).Times(1)

		req := builder.NewOrderBuilder().With(func(b *builder.OrderBuilder) {
			b.Items[0].Quantity = 0
		}).BuildRequestDTO()
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, req)

		s.Equal(http.StatusBadRequest, rec.Code)
		s.Contains(rec.Body.String(), "quantity must be at least 1")
	})

	s.Run("validation: domain sentinel maps to a field-specific 400", func() {
		s.mockCommands.EXPECT().PlaceOrder(gomock.Any(), gomock.Any()).
			Return(nil, errs.ErrInvalidName).Times(1)

		req := builder.NewOrderBuilder().With(func(b *builder.OrderBuilder) {
			b.Name = "J0hn"
		}).BuildRequestDTO()
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, req)

		s.Equal(http.StatusBadRequest, rec.Code)
		s.Contains(rec.Body.String(), "letters and spaces")
	})

	s.Run("error: storage failure returns 500", func() {
		s.mockCommands.EXPECT().PlaceOrder(gomock.Any(), gomock.Any()).
			Return(nil, errs.ErrStorageFailure).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, builder.NewOrderBuilder().BuildRequestDTO())

		s.Equal(http.StatusInternalServerError, rec.Code)
	})
}

// ================================================================================
// TestListOrders
// ================================================================================

func (s *OrderHandlerTestSuite) TestListOrders() {
	url := "/orders"

	s.Run("success: returns orders newest first as given by the query side", func() {
		views := []queries.OrderView{
			{ID: uuid.New(), Name: "Bob Badger", Total: 30, CreatedAt: time.Now()},
			{ID: uuid.New(), Name: "Alice Aardvark", Total: 20, CreatedAt: time.Now().Add(-time.Hour)},
		}
		s.mockQueries.EXPECT().ListAll(gomock.Any()).Return(views, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil)

		s.Equal(http.StatusOK, rec.Code)
		body := httptest.DecodeBody(s.T(), rec)
		orders, ok := body["orders"].([]any)
		s.Require().True(ok)
		s.Len(orders, 2)
		first, ok := orders[0].(map[string]any)
		s.Require().True(ok)
		s.Equal("Bob Badger", first["name"])
	})

	s.Run("error: storage failure returns 500", func() {
		s.mockQueries.EXPECT().ListAll(gomock.Any()).
			Return(nil, errs.ErrStorageFailure).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil)

		s.Equal(http.StatusInternalServerError, rec.Code)
	})
}

func (s *OrderHandlerTestSuite) TestTestOrder() {
	rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/orders/test", nil)

	s.Equal(http.StatusOK, rec.Code)
	body := httptest.DecodeBody(s.T(), rec)
	s.Equal("Jo Smith", body["name"])
	s.Equal(20.0, body["total"])
}
