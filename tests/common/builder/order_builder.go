//go:build unit || e2e

package builder

import (
	"course-booking-api/internal/domain/order"
	reqdto "course-booking-api/internal/handler/dto/request"
)

type OrderBuilder struct {
	Name  string
	Phone string
	Items []reqdto.PlaceOrderItem
	Total *float64
}

func NewOrderBuilder() *OrderBuilder {
	price := 10.0
	return &OrderBuilder{
		Name:  "Jo Smith",
		Phone: "07123456789",
		Items: []reqdto.PlaceOrderItem{
			{ID: 1, Quantity: 2, Price: &price},
		},
	}
}

func (b *OrderBuilder) With(mutate func(*OrderBuilder)) *OrderBuilder {
	mutate(b)
	return b
}

func (b *OrderBuilder) BuildRequestDTO() reqdto.PlaceOrderRequest {
	return reqdto.PlaceOrderRequest{
		Name:  b.Name,
		Phone: b.Phone,
		Items: b.Items,
		Total: b.Total,
	}
}

func (b *OrderBuilder) BuildDraftItems() []order.DraftItem {
	return b.BuildRequestDTO().ToDraftItems()
}
