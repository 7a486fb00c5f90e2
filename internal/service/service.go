// Package service contains the business logic.
//
// It sits between the handler and repository layers. It receives
// validated requests from the handlers, enforces the record invariants
// and calls the repositories. Every returned error is either an
// *errs.HTTPError or an unexpected failure the global error handler turns
// into a 500.
package service

import (
	"context"

	"github.com/deppfellow/student-records/internal/lib/job"
	"github.com/deppfellow/student-records/internal/model"
)

// The repository interfaces report a missing row as pgx.ErrNoRows.

type UserRepository interface {
	GetUserByUsername(ctx context.Context, username string) (*model.User, error)
	CreateUserIfNotExists(ctx context.Context, username, passwordHash string) (bool, error)
}

type StudentRepository interface {
	ListStudents(ctx context.Context) ([]model.Student, error)
	GetStudentByID(ctx context.Context, id int64) (*model.Student, error)
	ExistsByStudentID(ctx context.Context, studentID string) (bool, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	CreateStudent(ctx context.Context, s *model.Student) (*model.Student, error)
	UpdateStudent(ctx context.Context, s *model.Student) (*model.Student, error)
	DeleteStudent(ctx context.Context, id int64) error
	ListStudentCourses(ctx context.Context, id int64) ([]model.Course, error)
}

type CourseRepository interface {
	ListCourses(ctx context.Context) ([]model.Course, error)
	GetCourseByID(ctx context.Context, id int64) (*model.Course, error)
	ExistsByCourseCode(ctx context.Context, code string) (bool, error)
	CreateCourse(ctx context.Context, c *model.Course) (*model.Course, error)
	UpdateCourse(ctx context.Context, c *model.Course) (*model.Course, error)
	DeleteCourse(ctx context.Context, id int64) error
	ListCourseStudents(ctx context.Context, id int64) ([]model.Student, error)
}

type EnrollmentRepository interface {
	ListEnrollments(ctx context.Context) ([]model.EnrollmentDetail, error)
	GetEnrollmentByID(ctx context.Context, id int64) (*model.EnrollmentDetail, error)
	ExistsByStudentAndCourse(ctx context.Context, studentID, courseID int64) (bool, error)
	CreateEnrollment(ctx context.Context, e *model.Enrollment) (*model.EnrollmentDetail, error)
	UpdateEnrollmentGrade(ctx context.Context, id int64, grade *string) (*model.EnrollmentDetail, error)
	DeleteEnrollment(ctx context.Context, id int64) error
}

// Enqueuer schedules notification emails. *job.JobService implements it.
type Enqueuer interface {
	EnqueueWelcomeEmail(ctx context.Context, p job.WelcomeEmailPayload) error
	EnqueueEnrollmentConfirmation(ctx context.Context, p job.EnrollmentConfirmationPayload) error
}
