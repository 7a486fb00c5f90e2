package repository

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/deppfellow/student-records/internal/model"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var studentColumnNames = []string{
	"id", "student_id", "name", "email", "phone", "date_of_birth", "address",
	"enrollment_date", "created_at", "updated_at",
}

func TestCreateStudent(t *testing.T) {
	mock := newMock(t)
	repo := NewStudentRepository(mock)

	now := time.Date(2024, 9, 1, 8, 0, 0, 0, time.UTC)
	dob := time.Date(1815, 12, 10, 0, 0, 0, 0, time.UTC)
	in := &model.Student{
		StudentID:   "S001",
		Name:        "Ada Lovelace",
		Email:       "ada@example.com",
		Phone:       ptr("555-0100"),
		DateOfBirth: &dob,
	}

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO students")).
		WithArgs(pgx.NamedArgs{
			"student_id":    "S001",
			"name":          "Ada Lovelace",
			"email":         "ada@example.com",
			"phone":         ptr("555-0100"),
			"date_of_birth": &dob,
			"address":       (*string)(nil),
		}).
		WillReturnRows(mock.NewRows(studentColumnNames).
			AddRow(int64(1), "S001", "Ada Lovelace", "ada@example.com", ptr("555-0100"), &dob, nil, now, now, now))

	created, err := repo.CreateStudent(context.Background(), in)
	require.NoError(t, err)

	assert.Equal(t, int64(1), created.ID)
	assert.Equal(t, "S001", created.StudentID)
	assert.Equal(t, "ada@example.com", created.Email)
	require.NotNil(t, created.Phone)
	assert.Equal(t, "555-0100", *created.Phone)
	require.NotNil(t, created.DateOfBirth)
	assert.True(t, dob.Equal(*created.DateOfBirth))
	assert.Nil(t, created.Address)
	assert.Equal(t, now, created.EnrollmentDate)
	assert.Equal(t, now, created.CreatedAt)
	assert.Equal(t, now, created.UpdatedAt)
}

func TestUpdateStudent(t *testing.T) {
	mock := newMock(t)
	repo := NewStudentRepository(mock)

	enrolled := time.Date(2024, 9, 1, 8, 0, 0, 0, time.UTC)
	updatedAt := enrolled.Add(48 * time.Hour)
	in := &model.Student{
		ID:        3,
		StudentID: "S003",
		Name:      "Grace Hopper",
		Email:     "grace@example.com",
		Address:   ptr("Arlington"),
	}

	mock.ExpectQuery(regexp.QuoteMeta("UPDATE students")).
		WithArgs(pgx.NamedArgs{
			"id":            int64(3),
			"student_id":    "S003",
			"name":          "Grace Hopper",
			"email":         "grace@example.com",
			"phone":         (*string)(nil),
			"date_of_birth": (*time.Time)(nil),
			"address":       ptr("Arlington"),
		}).
		WillReturnRows(mock.NewRows(studentColumnNames).
			AddRow(int64(3), "S003", "Grace Hopper", "grace@example.com", nil, nil, ptr("Arlington"), enrolled, enrolled, updatedAt))

	updated, err := repo.UpdateStudent(context.Background(), in)
	require.NoError(t, err)

	assert.Equal(t, int64(3), updated.ID)
	assert.Equal(t, "Grace Hopper", updated.Name)
	assert.Nil(t, updated.Phone)
	assert.Nil(t, updated.DateOfBirth)
	require.NotNil(t, updated.Address)
	assert.Equal(t, "Arlington", *updated.Address)
	assert.Equal(t, enrolled, updated.CreatedAt)
	assert.Equal(t, updatedAt, updated.UpdatedAt)
}

func TestUpdateStudentMissingRow(t *testing.T) {
	mock := newMock(t)
	repo := NewStudentRepository(mock)

	mock.ExpectQuery(regexp.QuoteMeta("UPDATE students")).
		WithArgs(pgx.NamedArgs{
			"id":            int64(42),
			"student_id":    "S042",
			"name":          "Nobody",
			"email":         "nobody@example.com",
			"phone":         (*string)(nil),
			"date_of_birth": (*time.Time)(nil),
			"address":       (*string)(nil),
		}).
		WillReturnRows(mock.NewRows(studentColumnNames))

	_, err := repo.UpdateStudent(context.Background(), &model.Student{
		ID: 42, StudentID: "S042", Name: "Nobody", Email: "nobody@example.com",
	})
	assert.ErrorIs(t, err, pgx.ErrNoRows)
}

func TestListStudentCourses(t *testing.T) {
	mock := newMock(t)
	repo := NewStudentRepository(mock)

	now := time.Date(2024, 9, 1, 8, 0, 0, 0, time.UTC)

	mock.ExpectQuery(regexp.QuoteMeta("JOIN enrollments e ON e.course_id = c.id")).
		WithArgs(pgx.NamedArgs{"id": int64(1)}).
		WillReturnRows(mock.NewRows(courseColumnNames).
			AddRow(int64(10), "CS101", "Intro to CS", ptr("Basics"), 3, ptr("Dr. Knuth"), ptr("Fall 2024"), now, now).
			AddRow(int64(11), "MA201", "Linear Algebra", nil, 4, nil, nil, now, now))

	courses, err := repo.ListStudentCourses(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, courses, 2)

	assert.Equal(t, int64(10), courses[0].ID)
	assert.Equal(t, "CS101", courses[0].CourseCode)
	assert.Equal(t, 3, courses[0].Credits)
	require.NotNil(t, courses[0].Instructor)
	assert.Equal(t, "Dr. Knuth", *courses[0].Instructor)

	assert.Equal(t, "MA201", courses[1].CourseCode)
	assert.Equal(t, 4, courses[1].Credits)
	assert.Nil(t, courses[1].Description)
	assert.Nil(t, courses[1].Semester)
}
