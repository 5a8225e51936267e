package filestore

import (
	"context"
	"log/slog"
	"sync"

	"course-booking-api/internal/domain/lesson"
	"course-booking-api/internal/infra"
	"course-booking-api/internal/pkg/errs"
)

// CatalogStore is the flat-file variant's catalog: an in-memory slice seeded
// at startup. The mutex makes the bounded subtract atomic for this backend
// the same way the conditional update does for the database ones.
type CatalogStore struct {
	mu      sync.RWMutex
	lessons []lesson.Lesson
	logger  *slog.Logger
}

func NewCatalogStore(seed []lesson.Lesson, logger *slog.Logger) *CatalogStore {
	lessons := make([]lesson.Lesson, len(seed))
	copy(lessons, seed)
	return &CatalogStore{lessons: lessons, logger: logger}
}

func (s *CatalogStore) Search(_ context.Context, q lesson.Query) ([]lesson.Lesson, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []lesson.Lesson
	for _, l := range s.lessons {
		if q.Matches(l) {
			out = append(out, l)
		}
	}
	lesson.SortLessons(out, q)
	return out, nil
}

func (s *CatalogStore) DecrementSpaces(_ context.Context, lessonID int64, quantity int32) (*lesson.Lesson, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.lessons {
		if s.lessons[i].ID == lessonID {
			s.lessons[i].DecrementSpaces(quantity)
			updated := s.lessons[i]
			return &updated, nil
		}
	}

	return nil, infra.WrapRepoErr(s.logger, infra.KindNotFound, "lesson not found", errs.ErrLessonNotFound)
}

func (s *CatalogStore) ReplaceAll(_ context.Context, lessons []lesson.Lesson) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.lessons = make([]lesson.Lesson, len(lessons))
	copy(s.lessons, lessons)
	return int64(len(lessons)), nil
}
