package handler

import (
	"github.com/deppfellow/student-records/internal/model"
	"github.com/deppfellow/student-records/internal/server"
	"github.com/deppfellow/student-records/internal/service"
	"github.com/labstack/echo/v4"
)

type CourseHandler struct {
	Handler
	courseService *service.CourseService
}

func NewCourseHandler(s *server.Server, courseService *service.CourseService) *CourseHandler {
	return &CourseHandler{
		Handler:       NewHandler(s),
		courseService: courseService,
	}
}

func (h *CourseHandler) ListCourses(c echo.Context, _ *model.ListRequest) ([]model.CourseResponse, error) {
	return h.courseService.ListCourses(c.Request().Context())
}

func (h *CourseHandler) GetCourse(c echo.Context, req *model.IDParam) (*model.CourseResponse, error) {
	return h.courseService.GetCourse(c.Request().Context(), req.ID)
}

func (h *CourseHandler) CreateCourse(c echo.Context, req *model.CreateCourseRequest) (*model.CourseResponse, error) {
	return h.courseService.CreateCourse(c.Request().Context(), req)
}

func (h *CourseHandler) UpdateCourse(c echo.Context, req *model.UpdateCourseRequest) (*model.CourseResponse, error) {
	return h.courseService.UpdateCourse(c.Request().Context(), req)
}

func (h *CourseHandler) DeleteCourse(c echo.Context, req *model.IDParam) (*model.MessageResponse, error) {
	return h.courseService.DeleteCourse(c.Request().Context(), req.ID)
}

func (h *CourseHandler) ListCourseStudents(c echo.Context, req *model.IDParam) ([]model.StudentResponse, error) {
	return h.courseService.ListCourseStudents(c.Request().Context(), req.ID)
}
