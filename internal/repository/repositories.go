package repository

import (
	"github.com/deppfellow/student-records/internal/server"
)

// Repositories is a container for all repository instances.
type Repositories struct {
	Users       *UserRepository
	Students    *StudentRepository
	Courses     *CourseRepository
	Enrollments *EnrollmentRepository
}

// NewRepositories builds every repository on top of the server's pool.
func NewRepositories(s *server.Server) *Repositories {
	return NewRepositoriesWithQuerier(s.DB.Pool)
}

// NewRepositoriesWithQuerier builds the repositories on any Querier.
func NewRepositoriesWithQuerier(db Querier) *Repositories {
	return &Repositories{
		Users:       NewUserRepository(db),
		Students:    NewStudentRepository(db),
		Courses:     NewCourseRepository(db),
		Enrollments: NewEnrollmentRepository(db),
	}
}
