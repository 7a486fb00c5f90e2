package handler

import (
	"github.com/deppfellow/student-records/internal/model"
	"github.com/deppfellow/student-records/internal/server"
	"github.com/deppfellow/student-records/internal/service"
	"github.com/labstack/echo/v4"
)

type EnrollmentHandler struct {
	Handler
	enrollmentService *service.EnrollmentService
}

func NewEnrollmentHandler(s *server.Server, enrollmentService *service.EnrollmentService) *EnrollmentHandler {
	return &EnrollmentHandler{
		Handler:           NewHandler(s),
		enrollmentService: enrollmentService,
	}
}

func (h *EnrollmentHandler) ListEnrollments(c echo.Context, _ *model.ListRequest) ([]model.EnrollmentResponse, error) {
	return h.enrollmentService.ListEnrollments(c.Request().Context())
}

func (h *EnrollmentHandler) GetEnrollment(c echo.Context, req *model.IDParam) (*model.EnrollmentResponse, error) {
	return h.enrollmentService.GetEnrollment(c.Request().Context(), req.ID)
}

func (h *EnrollmentHandler) CreateEnrollment(c echo.Context, req *model.CreateEnrollmentRequest) (*model.EnrollmentResponse, error) {
	return h.enrollmentService.CreateEnrollment(c.Request().Context(), req)
}

func (h *EnrollmentHandler) UpdateEnrollment(c echo.Context, req *model.UpdateEnrollmentRequest) (*model.EnrollmentResponse, error) {
	return h.enrollmentService.UpdateEnrollment(c.Request().Context(), req)
}

func (h *EnrollmentHandler) DeleteEnrollment(c echo.Context, req *model.IDParam) (*model.MessageResponse, error) {
	return h.enrollmentService.DeleteEnrollment(c.Request().Context(), req.ID)
}
