package model

import "github.com/deppfellow/student-records/internal/validation"

// Course is a row of the courses table.
type Course struct {
	ID          int64   `db:"id"`
	CourseCode  string  `db:"course_code"`
	Name        string  `db:"name"`
	Description *string `db:"description"`
	Credits     int     `db:"credits"`
	Instructor  *string `db:"instructor"`
	Semester    *string `db:"semester"`
	Base
}

type CourseResponse struct {
	ID          int64   `json:"id"`
	CourseCode  string  `json:"course_code"`
	Name        string  `json:"name"`
	Description *string `json:"description"`
	Credits     int     `json:"credits"`
	Instructor  *string `json:"instructor"`
	Semester    *string `json:"semester"`
}

func (c *Course) ToResponse() CourseResponse {
	return CourseResponse{
		ID:          c.ID,
		CourseCode:  c.CourseCode,
		Name:        c.Name,
		Description: c.Description,
		Credits:     c.Credits,
		Instructor:  c.Instructor,
		Semester:    c.Semester,
	}
}

func CoursesToResponse(courses []Course) []CourseResponse {
	out := make([]CourseResponse, 0, len(courses))
	for i := range courses {
		out = append(out, courses[i].ToResponse())
	}
	return out
}

type CreateCourseRequest struct {
	CourseCode  string  `json:"course_code" validate:"required,max=20"`
	Name        string  `json:"name" validate:"required,max=100"`
	Description *string `json:"description"`
	// Credits is a pointer so an explicit 0 is told apart from a missing
	// field.
	Credits    *int    `json:"credits" validate:"required,min=0"`
	Instructor *string `json:"instructor" validate:"omitempty,max=100"`
	Semester   *string `json:"semester" validate:"omitempty,max=20"`
}

func (r *CreateCourseRequest) Validate() error {
	return validation.Struct(r)
}

func (r *CreateCourseRequest) RequiredMessage() string {
	return "course_code, name, and credits are required"
}

type UpdateCourseRequest struct {
	IDParam
	CourseCode  *string `json:"course_code" validate:"omitempty,min=1,max=20"`
	Name        *string `json:"name" validate:"omitempty,min=1,max=100"`
	Description *string `json:"description"`
	Credits     *int    `json:"credits" validate:"omitempty,min=0"`
	Instructor  *string `json:"instructor" validate:"omitempty,max=100"`
	Semester    *string `json:"semester" validate:"omitempty,max=20"`
}

func (r *UpdateCourseRequest) Validate() error {
	return validation.Struct(r)
}

func (r *UpdateCourseRequest) IsEmpty() bool {
	return r.CourseCode == nil && r.Name == nil && r.Description == nil &&
		r.Credits == nil && r.Instructor == nil && r.Semester == nil
}
