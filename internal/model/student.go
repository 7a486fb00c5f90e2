package model

import (
	"time"

	"github.com/deppfellow/student-records/internal/validation"
)

// Student is a row of the students table.
type Student struct {
	ID             int64      `db:"id"`
	StudentID      string     `db:"student_id"`
	Name           string     `db:"name"`
	Email          string     `db:"email"`
	Phone          *string    `db:"phone"`
	DateOfBirth    *time.Time `db:"date_of_birth"`
	Address        *string    `db:"address"`
	EnrollmentDate time.Time  `db:"enrollment_date"`
	Base
}

type StudentResponse struct {
	ID             int64   `json:"id"`
	StudentID      string  `json:"student_id"`
	Name           string  `json:"name"`
	Email          string  `json:"email"`
	Phone          *string `json:"phone"`
	DateOfBirth    *string `json:"date_of_birth"`
	Address        *string `json:"address"`
	EnrollmentDate *string `json:"enrollment_date"`
}

func (s *Student) ToResponse() StudentResponse {
	return StudentResponse{
		ID:             s.ID,
		StudentID:      s.StudentID,
		Name:           s.Name,
		Email:          s.Email,
		Phone:          s.Phone,
		DateOfBirth:    FormatDate(s.DateOfBirth),
		Address:        s.Address,
		EnrollmentDate: FormatDate(&s.EnrollmentDate),
	}
}

func StudentsToResponse(students []Student) []StudentResponse {
	out := make([]StudentResponse, 0, len(students))
	for i := range students {
		out = append(out, students[i].ToResponse())
	}
	return out
}

type CreateStudentRequest struct {
	StudentID   string  `json:"student_id" validate:"required,max=20"`
	Name        string  `json:"name" validate:"required,max=100"`
	Email       string  `json:"email" validate:"required,email,max=120"`
	Phone       *string `json:"phone" validate:"omitempty,max=20"`
	DateOfBirth *string `json:"date_of_birth" validate:"omitempty,datetime=2006-01-02"`
	Address     *string `json:"address"`
}

func (r *CreateStudentRequest) Validate() error {
	return validation.Struct(r)
}

func (r *CreateStudentRequest) RequiredMessage() string {
	return "student_id, name, and email are required"
}

// UpdateStudentRequest is a partial update: only fields present in the body
// are changed. An empty date_of_birth clears it.
type UpdateStudentRequest struct {
	IDParam
	StudentID   *string `json:"student_id" validate:"omitempty,min=1,max=20"`
	Name        *string `json:"name" validate:"omitempty,min=1,max=100"`
	Email       *string `json:"email" validate:"omitempty,email,max=120"`
	Phone       *string `json:"phone" validate:"omitempty,max=20"`
	DateOfBirth *string `json:"date_of_birth" validate:"omitempty,datetime=2006-01-02"`
	Address     *string `json:"address"`
}

func (r *UpdateStudentRequest) Validate() error {
	return validation.Struct(r)
}

// IsEmpty reports whether the body carried no updatable field.
func (r *UpdateStudentRequest) IsEmpty() bool {
	return r.StudentID == nil && r.Name == nil && r.Email == nil &&
		r.Phone == nil && r.DateOfBirth == nil && r.Address == nil
}
