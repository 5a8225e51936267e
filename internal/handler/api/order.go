package api

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	reqdto "course-booking-api/internal/handler/dto/request"
	resdto "course-booking-api/internal/handler/dto/response"
	"course-booking-api/internal/handler/httperr"
	"course-booking-api/internal/pkg/errs"
	"course-booking-api/internal/usecase/commands"
	"course-booking-api/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type OrderHandler struct {
	orderCommands commands.OrderCommands
	orderQueries  queries.OrderQueries
}

func NewOrderHandler(orderCommands commands.OrderCommands, orderQueries queries.OrderQueries) *OrderHandler {
	return &OrderHandler{
		orderCommands: orderCommands,
		orderQueries:  orderQueries,
	}
}

// @Summary Place order
// @Description Validate a checkout request, decrement lesson seats and store the order
// @Tags orders
// @Accept json
// @Produce json
// @Param request body reqdto.PlaceOrderRequest true "Checkout request"
// @Success 201 {object} resdto.PlaceOrderResponse
// @Failure 400 {object} httperr.Response
// @Failure 500 {object} httperr.Response
// @Router /orders [post]
func (h *OrderHandler) CreateOrder(c *gin.Context) {
	var req reqdto.PlaceOrderRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr,
			"Name, phone and at least one item are required", nil)
		return
	}

	result, err := h.orderCommands.PlaceOrder(c.Request.Context(), req)
	if err != nil {
		if msg, ok := validationMessage(err); ok {
			httperr.AbortWithError(c, http.StatusBadRequest, err, msg, nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to place order", nil)
		return
	}

	view := queries.OrderToView(result.Order)
	c.JSON(http.StatusCreated, resdto.PlaceOrderResponse{
		Message:        fmt.Sprintf("Order received! Thank you, %s.", result.Order.Name()),
		Order:          resdto.FromOrderView(view),
		MissingLessons: result.MissingLessons,
	})
}

// @Summary List orders
// @Description List all orders, most recent first
// @Tags orders
// @Produce json
// @Success 200 {object} resdto.OrderListResponse
// @Failure 500 {object} httperr.Response
// @Router /orders [get]
func (h *OrderHandler) ListOrders(c *gin.Context) {
	views, err := h.orderQueries.ListAll(c.Request.Context())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to list orders", nil)
		return
	}

	c.JSON(http.StatusOK, resdto.FromOrderViews(views))
}

// @Summary Example order
// @Description Static example payload used by frontend development
// @Tags orders
// @Produce json
// @Success 200 {object} resdto.OrderResponse
// @Router /orders/test [get]
func (h *OrderHandler) TestOrder(c *gin.Context) {
	c.JSON(http.StatusOK, resdto.OrderResponse{
		ID:    uuid.MustParse("00000000-0000-0000-0000-000000000001"),
		Name:  "Jo Smith",
		Phone: "07123456789",
		Items: []resdto.OrderItemResponse{
			{LessonID: 1, Title: "Art & Painting", Price: 10, Quantity: 2},
		},
		Total:     20,
		CreatedAt: time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC),
	})
}

// validationMessage maps domain validation sentinels onto the
// field-specific messages surfaced to the caller.
func validationMessage(err error) (string, bool) {
	for _, m := range []struct {
		target error
		msg    string
	}{
		{errs.ErrNameRequired, "Name is required"},
		{errs.ErrInvalidName, "Name must contain letters and spaces only"},
		{errs.ErrPhoneRequired, "Phone is required"},
		{errs.ErrInvalidPhone, "Phone must contain 10 to 15 digits"},
		{errs.ErrNoItems, "At least one item is required"},
		{errs.ErrInvalidQuantity, "Item quantity must be at least 1"},
		{errs.ErrNegativePrice, "Item price cannot be negative"},
		{errs.ErrNegativeTotal, "Total cannot be negative"},
	} {
		if errors.Is(err, m.target) {
			return m.msg, true
		}
	}
	return "", false
}
