package order

import (
	"time"

	"github.com/google/uuid"
)

// LineItem is one checkout cart entry. Title and price are copied from the
// referenced lesson at placement time (weak reference, not a foreign key).
type LineItem struct {
	LessonID int64
	Title    string
	Price    float64
	Quantity int32
}

// Order is an immutable record of a completed checkout.
type Order struct {
	id        uuid.UUID
	name      string
	phone     string
	items     []LineItem
	total     float64
	createdAt time.Time
}

func ReconstructOrder(
	id uuid.UUID,
	name, phone string,
	items []LineItem,
	total float64,
	createdAt time.Time,
) *Order {
	return &Order{
		id:        id,
		name:      name,
		phone:     phone,
		items:     items,
		total:     total,
		createdAt: createdAt,
	}
}

func (o *Order) ID() uuid.UUID        { return o.id }
func (o *Order) Name() string         { return o.name }
func (o *Order) Phone() string        { return o.phone }
func (o *Order) Total() float64       { return o.total }
func (o *Order) CreatedAt() time.Time { return o.createdAt }

func (o *Order) Items() []LineItem {
	items := make([]LineItem, len(o.items))
	copy(items, o.items)
	return items
}
