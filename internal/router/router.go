// Package router initializes the HTTP router (using Echo).
//
// It registers the middlewares and defines the API route groups,
// mapping specific paths to their corresponding handlers.
package router

import (
	"net/http"

	"github.com/deppfellow/student-records/internal/handler"
	"github.com/deppfellow/student-records/internal/middleware"
	"github.com/deppfellow/student-records/internal/model"
	"github.com/deppfellow/student-records/internal/server"
	"github.com/deppfellow/student-records/internal/service"
	"github.com/labstack/echo/v4"
)

func NewRouter(s *server.Server, h *handler.Handlers, services *service.Services) *echo.Echo {
	middlewares := middleware.NewMiddlewares(s, services.Auth)

	router := echo.New()
	router.HideBanner = true
	router.HidePort = true
	router.HTTPErrorHandler = middlewares.Global.GlobalErrorHandler

	router.Use(
		middlewares.Global.CORS(),
		middlewares.Global.Secure(),
		middleware.RequestID(),
		middlewares.Tracing.NewRelicMiddleware(),
		middlewares.Tracing.EnhanceTracing(),
		middlewares.ContextEnhancer.EnhanceContext(),
		middlewares.Global.RequestLogger(),
		middlewares.Global.Recover(),
	)

	registerSystemRoutes(router, h)

	router.POST("/auth/login",
		handler.Handle(h.Auth.Handler, h.Auth.Login, http.StatusOK, &model.LoginRequest{}),
		middlewares.RateLimit.LoginRateLimiter(),
	)

	// Auth is attached per resource group: a group-level middleware on the
	// root prefix would also guard the not-found catch-all.
	requireAuth := middlewares.Auth.RequireAuth
	registerStudentRoutes(router.Group("/students", requireAuth), h.Students)
	registerCourseRoutes(router.Group("/courses", requireAuth), h.Courses)
	registerEnrollmentRoutes(router.Group("/enrollments", requireAuth), h.Enrollments)

	return router
}

func registerStudentRoutes(g *echo.Group, h *handler.StudentHandler) {
	g.GET("", handler.Handle(h.Handler, h.ListStudents, http.StatusOK, &model.ListRequest{}))
	g.POST("", handler.Handle(h.Handler, h.CreateStudent, http.StatusCreated, &model.CreateStudentRequest{}))
	g.GET("/:id", handler.Handle(h.Handler, h.GetStudent, http.StatusOK, &model.IDParam{}))
	g.PUT("/:id", handler.Handle(h.Handler, h.UpdateStudent, http.StatusOK, &model.UpdateStudentRequest{}))
	g.DELETE("/:id", handler.Handle(h.Handler, h.DeleteStudent, http.StatusOK, &model.IDParam{}))
	g.GET("/:id/courses", handler.Handle(h.Handler, h.ListStudentCourses, http.StatusOK, &model.IDParam{}))
}

func registerCourseRoutes(g *echo.Group, h *handler.CourseHandler) {
	g.GET("", handler.Handle(h.Handler, h.ListCourses, http.StatusOK, &model.ListRequest{}))
	g.POST("", handler.Handle(h.Handler, h.CreateCourse, http.StatusCreated, &model.CreateCourseRequest{}))
	g.GET("/:id", handler.Handle(h.Handler, h.GetCourse, http.StatusOK, &model.IDParam{}))
	g.PUT("/:id", handler.Handle(h.Handler, h.UpdateCourse, http.StatusOK, &model.UpdateCourseRequest{}))
	g.DELETE("/:id", handler.Handle(h.Handler, h.DeleteCourse, http.StatusOK, &model.IDParam{}))
	g.GET("/:id/students", handler.Handle(h.Handler, h.ListCourseStudents, http.StatusOK, &model.IDParam{}))
}

func registerEnrollmentRoutes(g *echo.Group, h *handler.EnrollmentHandler) {
	g.GET("", handler.Handle(h.Handler, h.ListEnrollments, http.StatusOK, &model.ListRequest{}))
	g.POST("", handler.Handle(h.Handler, h.CreateEnrollment, http.StatusCreated, &model.CreateEnrollmentRequest{}))
	g.GET("/:id", handler.Handle(h.Handler, h.GetEnrollment, http.StatusOK, &model.IDParam{}))
	g.PUT("/:id", handler.Handle(h.Handler, h.UpdateEnrollment, http.StatusOK, &model.UpdateEnrollmentRequest{}))
	g.DELETE("/:id", handler.Handle(h.Handler, h.DeleteEnrollment, http.StatusOK, &model.IDParam{}))
}
