package request

import (
	"course-booking-api/internal/domain/order"
)

type PlaceOrderRequest struct {
	Name  string           `json:"name" binding:"required"`
	Phone string           `json:"phone" binding:"required"`
	Items []PlaceOrderItem `json:"items" binding:"required,min=1,dive"`
	Total *float64         `json:"total,omitempty"`
}

// Quantity is deliberately unconstrained at bind time: the order factory
// validates it and reports the offending field, which a bare binding
// failure cannot.
type PlaceOrderItem struct {
	ID       int64    `json:"id" binding:"required"`
	Quantity int32    `json:"quantity"`
	Price    *float64 `json:"price,omitempty"`
}

func (r PlaceOrderRequest) ToDraftItems() []order.DraftItem {
	items := make([]order.DraftItem, len(r.Items))
	for i, it := range r.Items {
		items[i] = order.DraftItem{
			LessonID: it.ID,
			Quantity: it.Quantity,
			Price:    it.Price,
		}
	}
	return items
}
