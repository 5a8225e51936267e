package response

import (
	"course-booking-api/internal/usecase/queries"

	"github.com/jinzhu/copier"
)

type CourseResponse struct {
	ID          int64   `json:"id"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Location    string  `json:"location"`
	Price       float64 `json:"price"`
	Spaces      int32   `json:"spaces"`
	Rating      float64 `json:"rating"`
	Image       string  `json:"image"`
}

type CourseListResponse struct {
	Courses []CourseResponse `json:"courses"`
}

type ImportResponse struct {
	Message string `json:"message"`
	Count   int64  `json:"count"`
}

func FromLessonViews(views []queries.LessonView) (CourseListResponse, error) {
	courses := make([]CourseResponse, len(views))
	for i := range views {
		if err := copier.Copy(&courses[i], &views[i]); err != nil {
			return CourseListResponse{}, err
		}
	}
	return CourseListResponse{Courses: courses}, nil
}
