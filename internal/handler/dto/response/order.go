package response

import (
	"time"

	"course-booking-api/internal/usecase/queries"

	"github.com/google/uuid"
)

type OrderResponse struct {
	ID        uuid.UUID           `json:"id"`
	Name      string              `json:"name"`
	Phone     string              `json:"phone"`
	Items     []OrderItemResponse `json:"items"`
	Total     float64             `json:"total"`
	CreatedAt time.Time           `json:"createdAt"`
}

type OrderItemResponse struct {
	LessonID int64   `json:"lessonId"`
	Title    string  `json:"title"`
	Price    float64 `json:"price"`
	Quantity int32   `json:"quantity"`
}

type OrderListResponse struct {
	Orders []OrderResponse `json:"orders"`
}

type PlaceOrderResponse struct {
	Message        string        `json:"message"`
	Order          OrderResponse `json:"order"`
	MissingLessons []int64       `json:"missing_lessons,omitempty"`
}

func FromOrderView(view queries.OrderView) OrderResponse {
	items := make([]OrderItemResponse, len(view.Items))
	for i, it := range view.Items {
		items[i] = OrderItemResponse{
			LessonID: it.LessonID,
			Title:    it.Title,
			Price:    it.Price,
			Quantity: it.Quantity,
		}
	}
	return OrderResponse{
		ID:        view.ID,
		Name:      view.Name,
		Phone:     view.Phone,
		Items:     items,
		Total:     view.Total,
		CreatedAt: view.CreatedAt,
	}
}

func FromOrderViews(views []queries.OrderView) OrderListResponse {
	orders := make([]OrderResponse, len(views))
	for i, v := range views {
		orders[i] = FromOrderView(v)
	}
	return OrderListResponse{Orders: orders}
}
