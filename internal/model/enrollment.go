package model

import (
	"time"

	"github.com/deppfellow/student-records/internal/validation"
)

// Enrollment links a student to a course.
type Enrollment struct {
	ID             int64     `db:"id"`
	StudentID      int64     `db:"student_id"`
	CourseID       int64     `db:"course_id"`
	EnrollmentDate time.Time `db:"enrollment_date"`
	Grade          *string   `db:"grade"`
	Base
}

// EnrollmentDetail is an enrollment joined with the names it points at.
type EnrollmentDetail struct {
	Enrollment
	StudentName string `db:"student_name"`
	CourseName  string `db:"course_name"`
}

type EnrollmentResponse struct {
	ID             int64   `json:"id"`
	StudentID      int64   `json:"student_id"`
	CourseID       int64   `json:"course_id"`
	EnrollmentDate *string `json:"enrollment_date"`
	Grade          *string `json:"grade"`
	StudentName    *string `json:"student_name"`
	CourseName     *string `json:"course_name"`
}

func (e *EnrollmentDetail) ToResponse() EnrollmentResponse {
	return EnrollmentResponse{
		ID:             e.ID,
		StudentID:      e.StudentID,
		CourseID:       e.CourseID,
		EnrollmentDate: FormatDate(&e.EnrollmentDate),
		Grade:          e.Grade,
		StudentName:    &e.StudentName,
		CourseName:     &e.CourseName,
	}
}

func EnrollmentsToResponse(enrollments []EnrollmentDetail) []EnrollmentResponse {
	out := make([]EnrollmentResponse, 0, len(enrollments))
	for i := range enrollments {
		out = append(out, enrollments[i].ToResponse())
	}
	return out
}

type CreateEnrollmentRequest struct {
	StudentID *int64  `json:"student_id" validate:"required"`
	CourseID  *int64  `json:"course_id" validate:"required"`
	Grade     *string `json:"grade" validate:"omitempty,max=5"`
}

func (r *CreateEnrollmentRequest) Validate() error {
	return validation.Struct(r)
}

func (r *CreateEnrollmentRequest) RequiredMessage() string {
	return "student_id and course_id are required"
}

// UpdateEnrollmentRequest only allows changing the grade. An empty grade
// clears it.
type UpdateEnrollmentRequest struct {
	IDParam
	Grade *string `json:"grade" validate:"omitempty,max=5"`
}

func (r *UpdateEnrollmentRequest) Validate() error {
	return validation.Struct(r)
}

func (r *UpdateEnrollmentRequest) IsEmpty() bool {
	return r.Grade == nil
}
