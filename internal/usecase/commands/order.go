package commands

import (
	"context"
	"log/slog"

	"course-booking-api/internal/domain/lesson"
	"course-booking-api/internal/domain/order"
	reqdto "course-booking-api/internal/handler/dto/request"
	"course-booking-api/internal/infra"
	"course-booking-api/internal/pkg/clock"
	"course-booking-api/internal/pkg/errs"
)

// CatalogRepository is the write side of the lesson catalog.
type CatalogRepository interface {
	// DecrementSpaces performs an atomic bounded subtract: the stored value
	// becomes max(spaces - quantity, 0) in a single conditional update, so
	// concurrent checkouts against the same lesson cannot lose updates.
	DecrementSpaces(ctx context.Context, lessonID int64, quantity int32) (*lesson.Lesson, error)
	ReplaceAll(ctx context.Context, lessons []lesson.Lesson) (int64, error)
}

type OrderRepository interface {
	Append(ctx context.Context, o *order.Order) error
}

type PlaceOrderResult struct {
	Order *order.Order
	// MissingLessons lists line-item lesson ids that had no catalog record.
	// A missing lesson is a warning, not a failure: the order is still stored.
	MissingLessons []int64
}

type OrderCommands interface {
	PlaceOrder(ctx context.Context, req reqdto.PlaceOrderRequest) (*PlaceOrderResult, error)
}

type orderUseCaseImpl struct {
	catalogRepo CatalogRepository
	orderRepo   OrderRepository
	clock       clock.Clock
	logger      *slog.Logger
}

func NewOrderUseCase(
	catalogRepo CatalogRepository,
	orderRepo OrderRepository,
	clock clock.Clock,
	logger *slog.Logger,
) OrderCommands {
	return &orderUseCaseImpl{
		catalogRepo: catalogRepo,
		orderRepo:   orderRepo,
		clock:       clock,
		logger:      logger,
	}
}

// PlaceOrder turns a checkout request into a stored order while keeping the
// catalog's seat counts consistent with it. Validation happens entirely up
// front: a rejected request never touches the catalog or the order store.
//
// Seat decrements are atomic per lesson but sequential across line items, so
// a storage failure partway through leaves earlier lessons already
// decremented. The original system had the same gap; it is surfaced here as
// a terminal storage error rather than hidden.
func (u *orderUseCaseImpl) PlaceOrder(ctx context.Context, req reqdto.PlaceOrderRequest) (*PlaceOrderResult, error) {
	draft, err := order.NewDraft(req.Name, req.Phone, req.ToDraftItems(), req.Total)
	if err != nil {
		return nil, err
	}

	var missing []int64
	for i, item := range draft.Items() {
		updated, err := u.catalogRepo.DecrementSpaces(ctx, item.LessonID, item.Quantity)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				u.logger.Warn("order references unknown lesson, skipping seat decrement",
					slog.Int64("lesson_id", item.LessonID))
				missing = append(missing, item.LessonID)
				continue
			}
			return nil, errs.Mark(err, errs.ErrStorageFailure)
		}
		draft.FillItem(i, updated.Title, updated.Price)
	}

	stored := draft.Finalize(u.clock.Now())
	if err := u.orderRepo.Append(ctx, stored); err != nil {
		return nil, errs.Mark(err, errs.ErrStorageFailure)
	}

	u.logger.Info("order placed",
		slog.String("order_id", stored.ID().String()),
		slog.Int("items", len(stored.Items())),
		slog.Float64("total", stored.Total()))

	return &PlaceOrderResult{Order: stored, MissingLessons: missing}, nil
}
