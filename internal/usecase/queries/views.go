package queries

import (
	"time"

	"github.com/google/uuid"
)

// Read models (DTO for read side)
type LessonView struct {
	ID          int64   `json:"id"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Location    string  `json:"location"`
	Price       float64 `json:"price"`
	Spaces      int32   `json:"spaces"`
	Rating      float64 `json:"rating"`
	Image       string  `json:"image"`
}

type OrderView struct {
	ID        uuid.UUID       `json:"id"`
	Name      string          `json:"name"`
	Phone     string          `json:"phone"`
	Items     []OrderItemView `json:"items"`
	Total     float64         `json:"total"`
	CreatedAt time.Time       `json:"created_at"`
}

type OrderItemView struct {
	LessonID int64   `json:"lesson_id"`
	Title    string  `json:"title"`
	Price    float64 `json:"price"`
	Quantity int32   `json:"quantity"`
}
