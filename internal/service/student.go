package service

import (
	"context"

	"github.com/deppfellow/student-records/internal/errs"
	"github.com/deppfellow/student-records/internal/lib/job"
	"github.com/deppfellow/student-records/internal/model"
	"github.com/rs/zerolog"
)

type StudentService struct {
	students StudentRepository
	jobs     Enqueuer
}

// NewStudentService builds the service. jobs may be nil, in which case no
// welcome email is scheduled.
func NewStudentService(students StudentRepository, jobs Enqueuer) *StudentService {
	return &StudentService{
		students: students,
		jobs:     jobs,
	}
}

func (s *StudentService) ListStudents(ctx context.Context) ([]model.StudentResponse, error) {
	students, err := s.students.ListStudents(ctx)
	if err != nil {
		return nil, err
	}
	return model.StudentsToResponse(students), nil
}

func (s *StudentService) GetStudent(ctx context.Context, id int64) (*model.StudentResponse, error) {
	student, err := s.students.GetStudentByID(ctx, id)
	if err != nil {
		return nil, notFound(err, errStudentNotFound)
	}
	resp := student.ToResponse()
	return &resp, nil
}

func (s *StudentService) CreateStudent(ctx context.Context, req *model.CreateStudentRequest) (*model.StudentResponse, error) {
	if err := s.ensureUnique(ctx, req.StudentID, req.Email); err != nil {
		return nil, err
	}

	dob, err := model.ParseOptionalDate(req.DateOfBirth)
	if err != nil {
		return nil, errInvalidDate()
	}

	student, err := s.students.CreateStudent(ctx, &model.Student{
		StudentID:   req.StudentID,
		Name:        req.Name,
		Email:       req.Email,
		Phone:       req.Phone,
		DateOfBirth: dob,
		Address:     req.Address,
	})
	if err != nil {
		return nil, err
	}

	zerolog.Ctx(ctx).Info().
		Int64("student_pk", student.ID).
		Str("student_id", student.StudentID).
		Msg("student created")

	s.enqueueWelcome(ctx, student)

	resp := student.ToResponse()
	return &resp, nil
}

// UpdateStudent applies the fields present in req. A missing student wins
// over an empty body. Uniqueness is only re-checked for values that
// actually change.
func (s *StudentService) UpdateStudent(ctx context.Context, req *model.UpdateStudentRequest) (*model.StudentResponse, error) {
	student, err := s.students.GetStudentByID(ctx, req.ID)
	if err != nil {
		return nil, notFound(err, errStudentNotFound)
	}

	if req.IsEmpty() {
		return nil, errNoDataProvided()
	}

	var newStudentID, newEmail string
	if req.StudentID != nil && *req.StudentID != student.StudentID {
		newStudentID = *req.StudentID
	}
	if req.Email != nil && *req.Email != student.Email {
		newEmail = *req.Email
	}
	if err := s.ensureUnique(ctx, newStudentID, newEmail); err != nil {
		return nil, err
	}

	if req.StudentID != nil {
		student.StudentID = *req.StudentID
	}
	if req.Name != nil {
		student.Name = *req.Name
	}
	if req.Email != nil {
		student.Email = *req.Email
	}
	if req.Phone != nil {
		student.Phone = req.Phone
	}
	if req.Address != nil {
		student.Address = req.Address
	}
	if req.DateOfBirth != nil {
		dob, err := model.ParseOptionalDate(req.DateOfBirth)
		if err != nil {
			return nil, errInvalidDate()
		}
		student.DateOfBirth = dob
	}

	updated, err := s.students.UpdateStudent(ctx, student)
	if err != nil {
		return nil, notFound(err, errStudentNotFound)
	}

	resp := updated.ToResponse()
	return &resp, nil
}

func (s *StudentService) DeleteStudent(ctx context.Context, id int64) (*model.MessageResponse, error) {
	if err := s.students.DeleteStudent(ctx, id); err != nil {
		return nil, notFound(err, errStudentNotFound)
	}

	zerolog.Ctx(ctx).Info().Int64("student_pk", id).Msg("student deleted")

	return &model.MessageResponse{Message: "Student deleted successfully"}, nil
}

// ListStudentCourses returns the courses a student is enrolled in. An
// unknown student is a 404, not an empty list.
func (s *StudentService) ListStudentCourses(ctx context.Context, id int64) ([]model.CourseResponse, error) {
	if _, err := s.students.GetStudentByID(ctx, id); err != nil {
		return nil, notFound(err, errStudentNotFound)
	}

	courses, err := s.students.ListStudentCourses(ctx, id)
	if err != nil {
		return nil, err
	}
	return model.CoursesToResponse(courses), nil
}

// ensureUnique checks the non-empty values against existing students.
func (s *StudentService) ensureUnique(ctx context.Context, studentID, email string) error {
	if studentID != "" {
		taken, err := s.students.ExistsByStudentID(ctx, studentID)
		if err != nil {
			return err
		}
		if taken {
			return errConflict("Student ID already exists", errs.CodeStudentIDExists)
		}
	}

	if email != "" {
		taken, err := s.students.ExistsByEmail(ctx, email)
		if err != nil {
			return err
		}
		if taken {
			return errConflict("Email already exists", errs.CodeStudentEmailExists)
		}
	}

	return nil
}

func (s *StudentService) enqueueWelcome(ctx context.Context, student *model.Student) {
	if s.jobs == nil {
		return
	}

	err := s.jobs.EnqueueWelcomeEmail(ctx, job.WelcomeEmailPayload{
		To:          student.Email,
		StudentName: student.Name,
		StudentID:   student.StudentID,
	})
	if err != nil {
		zerolog.Ctx(ctx).Error().Err(err).
			Str("student_id", student.StudentID).
			Msg("failed to enqueue welcome email")
	}
}
