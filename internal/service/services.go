package service

import (
	"github.com/deppfellow/student-records/internal/config"
	"github.com/deppfellow/student-records/internal/lib/token"
	"github.com/deppfellow/student-records/internal/repository"
	"github.com/deppfellow/student-records/internal/server"
)

// Services groups every business service handed to the handlers.
type Services struct {
	Auth        *AuthService
	Students    *StudentService
	Courses     *CourseService
	Enrollments *EnrollmentService
}

// Stores is the set of repositories the services are built on.
type Stores struct {
	Users       UserRepository
	Students    StudentRepository
	Courses     CourseRepository
	Enrollments EnrollmentRepository
}

// NewService wires the services on top of the database repositories.
func NewService(s *server.Server, repos *repository.Repositories) (*Services, error) {
	stores := Stores{
		Users:       repos.Users,
		Students:    repos.Students,
		Courses:     repos.Courses,
		Enrollments: repos.Enrollments,
	}

	var jobs Enqueuer
	if s.Job != nil {
		jobs = s.Job
	}

	return NewServicesWithStores(s.Config, stores, jobs), nil
}

// NewServicesWithStores wires the services on arbitrary stores. jobs may be
// nil.
func NewServicesWithStores(cfg *config.Config, stores Stores, jobs Enqueuer) *Services {
	tokens := token.NewManager(cfg.Auth.JWTSecret, config.ServiceName, cfg.Auth.TokenTTL)

	return &Services{
		Auth:        NewAuthService(stores.Users, tokens),
		Students:    NewStudentService(stores.Students, jobs),
		Courses:     NewCourseService(stores.Courses),
		Enrollments: NewEnrollmentService(stores.Enrollments, stores.Students, stores.Courses, jobs),
	}
}
