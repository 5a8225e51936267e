package queries

import (
	"context"

	"course-booking-api/internal/domain/order"
	"course-booking-api/internal/pkg/errs"
)

type OrderQueries interface {
	ListAll(ctx context.Context) ([]OrderView, error)
}

// OrderReadStore returns stored orders most recent first.
type OrderReadStore interface {
	ListAll(ctx context.Context) ([]*order.Order, error)
}

type orderQueriesImpl struct {
	store OrderReadStore
}

func NewOrderQueries(store OrderReadStore) OrderQueries {
	return &orderQueriesImpl{store: store}
}

func (q *orderQueriesImpl) ListAll(ctx context.Context) ([]OrderView, error) {
	orders, err := q.store.ListAll(ctx)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrStorageFailure)
	}

	views := make([]OrderView, len(orders))
	for i, o := range orders {
		views[i] = OrderToView(o)
	}
	return views, nil
}

func OrderToView(o *order.Order) OrderView {
	items := o.Items()
	itemViews := make([]OrderItemView, len(items))
	for i, it := range items {
		itemViews[i] = OrderItemView{
			LessonID: it.LessonID,
			Title:    it.Title,
			Price:    it.Price,
			Quantity: it.Quantity,
		}
	}
	return OrderView{
		ID:        o.ID(),
		Name:      o.Name(),
		Phone:     o.Phone(),
		Items:     itemViews,
		Total:     o.Total(),
		CreatedAt: o.CreatedAt(),
	}
}
