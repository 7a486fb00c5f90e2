// Package handler is the HTTP layer: it binds and validates requests
// through the validation package and calls the service layer.
package handler

import (
	"github.com/deppfellow/student-records/internal/server"
	"github.com/deppfellow/student-records/internal/service"
)

// Handlers groups every HTTP handler so the router receives one value.
type Handlers struct {
	Health      *HealthHandler
	OpenAPI     *OpenAPIHandler
	Auth        *AuthHandler
	Students    *StudentHandler
	Courses     *CourseHandler
	Enrollments *EnrollmentHandler
}

// NewHandlers constructs the handler container.
func NewHandlers(s *server.Server, services *service.Services) *Handlers {
	return &Handlers{
		Health:      NewHealthHandler(s),
		OpenAPI:     NewOpenAPIHandler(s),
		Auth:        NewAuthHandler(s, services.Auth),
		Students:    NewStudentHandler(s, services.Students),
		Courses:     NewCourseHandler(s, services.Courses),
		Enrollments: NewEnrollmentHandler(s, services.Enrollments),
	}
}
