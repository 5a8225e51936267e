package mongostore

import (
	"context"
	"errors"
	"log/slog"
	"regexp"

	"course-booking-api/internal/domain/lesson"
	"course-booking-api/internal/infra"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type lessonDoc struct {
	ID          int64   `bson:"_id"`
	Title       string  `bson:"title"`
	Description string  `bson:"description"`
	Location    string  `bson:"location"`
	Price       float64 `bson:"price"`
	Spaces      int32   `bson:"spaces"`
	Rating      float64 `bson:"rating"`
	Image       string  `bson:"image"`
}

func (d lessonDoc) toDomain() lesson.Lesson {
	return lesson.Lesson{
		ID:          d.ID,
		Title:       d.Title,
		Description: d.Description,
		Location:    d.Location,
		Price:       d.Price,
		Spaces:      d.Spaces,
		Rating:      d.Rating,
		Image:       d.Image,
	}
}

func fromDomainLesson(l lesson.Lesson) lessonDoc {
	return lessonDoc{
		ID:          l.ID,
		Title:       l.Title,
		Description: l.Description,
		Location:    l.Location,
		Price:       l.Price,
		Spaces:      l.Spaces,
		Rating:      l.Rating,
		Image:       l.Image,
	}
}

type LessonRepository struct {
	coll   *mongo.Collection
	logger *slog.Logger
}

func NewLessonRepository(db *mongo.Database, logger *slog.Logger) *LessonRepository {
	return &LessonRepository{
		coll:   db.Collection("lessons"),
		logger: logger,
	}
}

func (r *LessonRepository) Search(ctx context.Context, q lesson.Query) ([]lesson.Lesson, error) {
	filter := bson.M{}
	if q.Term != "" {
		re := primitive.Regex{Pattern: regexp.QuoteMeta(q.Term), Options: "i"}
		or := bson.A{
			bson.M{"title": re},
			bson.M{"description": re},
			bson.M{"location": re},
		}
		if n, ok := q.NumericTerm(); ok {
			or = append(or, bson.M{"price": n}, bson.M{"spaces": n})
		}
		filter["$or"] = or
	}

	dir := 1
	if q.Desc {
		dir = -1
	}
	sortKey := string(q.Sort)
	if q.Sort == lesson.SortByID {
		sortKey = "_id"
	}
	opts := options.Find().SetSort(bson.D{{Key: sortKey, Value: dir}})

	cur, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to search lessons", err)
	}
	defer cur.Close(ctx)

	var docs []lessonDoc
	if err := cur.All(ctx, &docs); err != nil {
		return nil, infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to decode lessons", err)
	}

	lessons := make([]lesson.Lesson, len(docs))
	for i, d := range docs {
		lessons[i] = d.toDomain()
	}
	return lessons, nil
}

// DecrementSpaces uses an aggregation-pipeline update so the clamp happens
// server-side in a single document operation: spaces becomes
// max(0, spaces - quantity).
func (r *LessonRepository) DecrementSpaces(ctx context.Context, lessonID int64, quantity int32) (*lesson.Lesson, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$set", Value: bson.M{
			"spaces": bson.M{"$max": bson.A{0, bson.M{"$subtract": bson.A{"$spaces", quantity}}}},
		}}},
	}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var doc lessonDoc
	err := r.coll.FindOneAndUpdate(ctx, bson.M{"_id": lessonID}, pipeline, opts).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, infra.WrapRepoErr(r.logger, infra.KindNotFound, "lesson not found", err)
		}
		return nil, infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to decrement spaces", err)
	}

	l := doc.toDomain()
	return &l, nil
}

func (r *LessonRepository) ReplaceAll(ctx context.Context, lessons []lesson.Lesson) (int64, error) {
	if _, err := r.coll.DeleteMany(ctx, bson.M{}); err != nil {
		return 0, infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to clear lessons", err)
	}

	docs := make([]any, len(lessons))
	for i, l := range lessons {
		docs[i] = fromDomainLesson(l)
	}

	res, err := r.coll.InsertMany(ctx, docs)
	if err != nil {
		return 0, infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to insert lessons", err)
	}

	return int64(len(res.InsertedIDs)), nil
}
