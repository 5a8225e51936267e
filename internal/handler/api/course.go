package api

import (
	"net/http"

	"course-booking-api/internal/domain/lesson"
	resdto "course-booking-api/internal/handler/dto/response"
	"course-booking-api/internal/handler/httperr"
	"course-booking-api/internal/seed"
	"course-booking-api/internal/usecase/commands"
	"course-booking-api/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type CourseHandler struct {
	catalogCommands commands.CatalogCommands
	lessonQueries   queries.LessonQueries
}

func NewCourseHandler(catalogCommands commands.CatalogCommands, lessonQueries queries.LessonQueries) *CourseHandler {
	return &CourseHandler{
		catalogCommands: catalogCommands,
		lessonQueries:   lessonQueries,
	}
}

// @Summary List courses
// @Description List lessons with optional search and sort
// @Tags courses
// @Produce json
// @Param q query string false "Search term (substring or numeric match)"
// @Param sortField query string false "One of id, title, location, price, spaces"
// @Param sortOrder query string false "asc (default) or desc"
// @Success 200 {object} resdto.CourseListResponse
// @Failure 500 {object} httperr.Response
// @Router /courses [get]
func (h *CourseHandler) ListCourses(c *gin.Context) {
	query := lesson.NewQuery(c.Query("q"), c.Query("sortField"), c.Query("sortOrder"))

	views, err := h.lessonQueries.List(c.Request.Context(), query)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to list courses", nil)
		return
	}

	resp, err := resdto.FromLessonViews(views)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to list courses", nil)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// @Summary Import courses
// @Description Destructively reseed the catalog from the static seed list
// @Tags courses
// @Produce json
// @Success 200 {object} resdto.ImportResponse
// @Failure 500 {object} httperr.Response
// @Router /courses/import [post]
func (h *CourseHandler) ImportCourses(c *gin.Context) {
	count, err := h.catalogCommands.Import(c.Request.Context(), seed.Lessons())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to import courses", nil)
		return
	}

	c.JSON(http.StatusOK, resdto.ImportResponse{
		Message: "Catalog reseeded",
		Count:   count,
	})
}
