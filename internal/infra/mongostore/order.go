package mongostore

import (
	"context"
	"log/slog"
	"time"

	"course-booking-api/internal/domain/order"
	"course-booking-api/internal/infra"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type orderItemDoc struct {
	LessonID int64   `bson:"lesson_id"`
	Title    string  `bson:"title"`
	Price    float64 `bson:"price"`
	Quantity int32   `bson:"quantity"`
}

type orderDoc struct {
	ID        string         `bson:"_id"`
	Name      string         `bson:"name"`
	Phone     string         `bson:"phone"`
	Items     []orderItemDoc `bson:"items"`
	Total     float64        `bson:"total"`
	CreatedAt time.Time      `bson:"created_at"`
}

type OrderRepository struct {
	coll   *mongo.Collection
	logger *slog.Logger
}

func NewOrderRepository(db *mongo.Database, logger *slog.Logger) *OrderRepository {
	return &OrderRepository{
		coll:   db.Collection("orders"),
		logger: logger,
	}
}

func (r *OrderRepository) Append(ctx context.Context, o *order.Order) error {
	items := o.Items()
	docs := make([]orderItemDoc, len(items))
	for i, it := range items {
		docs[i] = orderItemDoc(it)
	}

	doc := orderDoc{
		ID:        o.ID().String(),
		Name:      o.Name(),
		Phone:     o.Phone(),
		Items:     docs,
		Total:     o.Total(),
		CreatedAt: o.CreatedAt(),
	}

	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		return infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to insert order", err)
	}
	return nil
}

func (r *OrderRepository) ListAll(ctx context.Context) ([]*order.Order, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})

	cur, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to query orders", err)
	}
	defer cur.Close(ctx)

	var docs []orderDoc
	if err := cur.All(ctx, &docs); err != nil {
		return nil, infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to decode orders", err)
	}

	orders := make([]*order.Order, len(docs))
	for i, d := range docs {
		id, err := uuid.Parse(d.ID)
		if err != nil {
			return nil, infra.WrapRepoErr(r.logger, infra.KindDBFailure, "invalid order id in store", err)
		}
		items := make([]order.LineItem, len(d.Items))
		for j, it := range d.Items {
			items[j] = order.LineItem(it)
		}
		orders[i] = order.ReconstructOrder(id, d.Name, d.Phone, items, d.Total, d.CreatedAt)
	}

	return orders, nil
}
