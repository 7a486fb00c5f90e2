package service

import (
	"context"

	"github.com/deppfellow/student-records/internal/errs"
	"github.com/deppfellow/student-records/internal/lib/job"
	"github.com/deppfellow/student-records/internal/model"
	"github.com/rs/zerolog"
)

type EnrollmentService struct {
	enrollments EnrollmentRepository
	students    StudentRepository
	courses     CourseRepository
	jobs        Enqueuer
}

func NewEnrollmentService(enrollments EnrollmentRepository, students StudentRepository, courses CourseRepository, jobs Enqueuer) *EnrollmentService {
	return &EnrollmentService{
		enrollments: enrollments,
		students:    students,
		courses:     courses,
		jobs:        jobs,
	}
}

func (s *EnrollmentService) ListEnrollments(ctx context.Context) ([]model.EnrollmentResponse, error) {
	enrollments, err := s.enrollments.ListEnrollments(ctx)
	if err != nil {
		return nil, err
	}
	return model.EnrollmentsToResponse(enrollments), nil
}

func (s *EnrollmentService) GetEnrollment(ctx context.Context, id int64) (*model.EnrollmentResponse, error) {
	enrollment, err := s.enrollments.GetEnrollmentByID(ctx, id)
	if err != nil {
		return nil, notFound(err, errEnrollmentNotFound)
	}
	resp := enrollment.ToResponse()
	return &resp, nil
}

// CreateEnrollment enrolls a student in a course. Both must exist and the
// pair must not be enrolled already.
func (s *EnrollmentService) CreateEnrollment(ctx context.Context, req *model.CreateEnrollmentRequest) (*model.EnrollmentResponse, error) {
	studentID, courseID := *req.StudentID, *req.CourseID

	student, err := s.students.GetStudentByID(ctx, studentID)
	if err != nil {
		return nil, notFound(err, errStudentNotFound)
	}

	course, err := s.courses.GetCourseByID(ctx, courseID)
	if err != nil {
		return nil, notFound(err, errCourseNotFound)
	}

	enrolled, err := s.enrollments.ExistsByStudentAndCourse(ctx, studentID, courseID)
	if err != nil {
		return nil, err
	}
	if enrolled {
		return nil, errConflict("Student already enrolled in this course", errs.CodeAlreadyEnrolled)
	}

	enrollment, err := s.enrollments.CreateEnrollment(ctx, &model.Enrollment{
		StudentID: studentID,
		CourseID:  courseID,
		Grade:     emptyToNil(req.Grade),
	})
	if err != nil {
		return nil, err
	}

	zerolog.Ctx(ctx).Info().
		Int64("enrollment_id", enrollment.ID).
		Int64("student_pk", studentID).
		Int64("course_pk", courseID).
		Msg("student enrolled")

	s.enqueueConfirmation(ctx, student, course)

	resp := enrollment.ToResponse()
	return &resp, nil
}

// UpdateEnrollment changes the grade. An empty grade clears it.
func (s *EnrollmentService) UpdateEnrollment(ctx context.Context, req *model.UpdateEnrollmentRequest) (*model.EnrollmentResponse, error) {
	if _, err := s.enrollments.GetEnrollmentByID(ctx, req.ID); err != nil {
		return nil, notFound(err, errEnrollmentNotFound)
	}

	if req.IsEmpty() {
		return nil, errNoDataProvided()
	}

	enrollment, err := s.enrollments.UpdateEnrollmentGrade(ctx, req.ID, emptyToNil(req.Grade))
	if err != nil {
		return nil, notFound(err, errEnrollmentNotFound)
	}

	resp := enrollment.ToResponse()
	return &resp, nil
}

func (s *EnrollmentService) DeleteEnrollment(ctx context.Context, id int64) (*model.MessageResponse, error) {
	if err := s.enrollments.DeleteEnrollment(ctx, id); err != nil {
		return nil, notFound(err, errEnrollmentNotFound)
	}

	zerolog.Ctx(ctx).Info().Int64("enrollment_id", id).Msg("enrollment deleted")

	return &model.MessageResponse{Message: "Enrollment deleted successfully"}, nil
}

func (s *EnrollmentService) enqueueConfirmation(ctx context.Context, student *model.Student, course *model.Course) {
	if s.jobs == nil {
		return
	}

	err := s.jobs.EnqueueEnrollmentConfirmation(ctx, job.EnrollmentConfirmationPayload{
		To:          student.Email,
		StudentName: student.Name,
		CourseCode:  course.CourseCode,
		CourseName:  course.Name,
	})
	if err != nil {
		zerolog.Ctx(ctx).Error().Err(err).
			Str("student_id", student.StudentID).
			Str("course_code", course.CourseCode).
			Msg("failed to enqueue enrollment confirmation email")
	}
}

func emptyToNil(s *string) *string {
	if s == nil || *s == "" {
		return nil
	}
	return s
}
