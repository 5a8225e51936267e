package queries

import (
	"context"

	"course-booking-api/internal/domain/lesson"
	"course-booking-api/internal/pkg/errs"

	"github.com/jinzhu/copier"
)

type LessonQueries interface {
	List(ctx context.Context, q lesson.Query) ([]LessonView, error)
}

// LessonReadStore is implemented per storage backend. Search applies the
// query's filter and sort server-side where the backend can.
type LessonReadStore interface {
	Search(ctx context.Context, q lesson.Query) ([]lesson.Lesson, error)
}

type lessonQueriesImpl struct {
	store LessonReadStore
}

func NewLessonQueries(store LessonReadStore) LessonQueries {
	return &lessonQueriesImpl{store: store}
}

func (q *lessonQueriesImpl) List(ctx context.Context, query lesson.Query) ([]LessonView, error) {
	lessons, err := q.store.Search(ctx, query)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrStorageFailure)
	}

	views := make([]LessonView, len(lessons))
	for i := range lessons {
		if err := copier.Copy(&views[i], &lessons[i]); err != nil {
			return nil, errs.Wrap(err, "failed to map lesson view")
		}
	}
	return views, nil
}
