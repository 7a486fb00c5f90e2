package handler

import (
	"github.com/deppfellow/student-records/internal/model"
	"github.com/deppfellow/student-records/internal/server"
	"github.com/deppfellow/student-records/internal/service"
	"github.com/labstack/echo/v4"
)

type StudentHandler struct {
	Handler
	studentService *service.StudentService
}

func NewStudentHandler(s *server.Server, studentService *service.StudentService) *StudentHandler {
	return &StudentHandler{
		Handler:        NewHandler(s),
		studentService: studentService,
	}
}

func (h *StudentHandler) ListStudents(c echo.Context, _ *model.ListRequest) ([]model.StudentResponse, error) {
	return h.studentService.ListStudents(c.Request().Context())
}

func (h *StudentHandler) GetStudent(c echo.Context, req *model.IDParam) (*model.StudentResponse, error) {
	return h.studentService.GetStudent(c.Request().Context(), req.ID)
}

func (h *StudentHandler) CreateStudent(c echo.Context, req *model.CreateStudentRequest) (*model.StudentResponse, error) {
	return h.studentService.CreateStudent(c.Request().Context(), req)
}

func (h *StudentHandler) UpdateStudent(c echo.Context, req *model.UpdateStudentRequest) (*model.StudentResponse, error) {
	return h.studentService.UpdateStudent(c.Request().Context(), req)
}

func (h *StudentHandler) DeleteStudent(c echo.Context, req *model.IDParam) (*model.MessageResponse, error) {
	return h.studentService.DeleteStudent(c.Request().Context(), req.ID)
}

func (h *StudentHandler) ListStudentCourses(c echo.Context, req *model.IDParam) ([]model.CourseResponse, error) {
	return h.studentService.ListStudentCourses(c.Request().Context(), req.ID)
}
