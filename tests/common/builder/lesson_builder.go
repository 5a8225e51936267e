//go:build unit || e2e

package builder

import (
	"course-booking-api/internal/domain/lesson"
	"course-booking-api/internal/usecase/queries"
)

type LessonBuilder struct {
	ID          int64
	Title       string
	Description string
	Location    string
	Price       float64
	Spaces      int32
	Rating      float64
	Image       string
}

func NewLessonBuilder() *LessonBuilder {
	return &LessonBuilder{
		ID:          1,
		Title:       "Art & Painting",
		Description: "Watercolour and acrylic basics for beginners",
		Location:    "Hendon",
		Price:       10,
		Spaces:      5,
		Rating:      4.5,
		Image:       "images/art.jpg",
	}
}

func (b *LessonBuilder) With(mutate func(*LessonBuilder)) *LessonBuilder {
	mutate(b)
	return b
}

func (b *LessonBuilder) Build() lesson.Lesson {
	return lesson.Lesson{
		ID:          b.ID,
		Title:       b.Title,
		Description: b.Description,
		Location:    b.Location,
		Price:       b.Price,
		Spaces:      b.Spaces,
		Rating:      b.Rating,
		Image:       b.Image,
	}
}

func (b *LessonBuilder) BuildView() queries.LessonView {
	return queries.LessonView{
		ID:          b.ID,
		Title:       b.Title,
		Description: b.Description,
		Location:    b.Location,
		Price:       b.Price,
		Spaces:      b.Spaces,
		Rating:      b.Rating,
		Image:       b.Image,
	}
}
