package service

import (
	"context"
	"errors"
	"testing"

	"github.com/deppfellow/student-records/internal/errs"
	"github.com/deppfellow/student-records/internal/model"
	"github.com/deppfellow/student-records/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixture struct {
	store    *testutil.Store
	jobs     *testutil.Enqueuer
	services *Services
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	store := testutil.NewStore()
	jobs := &testutil.Enqueuer{}
	services := NewServicesWithStores(testutil.Config(), Stores{
		Users:       store,
		Students:    store,
		Courses:     store,
		Enrollments: store,
	}, jobs)
	return &fixture{store: store, jobs: jobs, services: services}
}

func requireHTTPError(t *testing.T, err error, status int, message string) *errs.HTTPError {
	t.Helper()
	var httpErr *errs.HTTPError
	require.True(t, errors.As(err, &httpErr), "expected *errs.HTTPError, got %v", err)
	assert.Equal(t, status, httpErr.Status)
	assert.Equal(t, message, httpErr.Message)
	return httpErr
}

func ptr[T any](v T) *T {
	return &v
}

func (f *fixture) createStudent(t *testing.T, studentID, email string) *model.StudentResponse {
	t.Helper()
	s, err := f.services.Students.CreateStudent(context.Background(), &model.CreateStudentRequest{
		StudentID: studentID,
		Name:      "Student " + studentID,
		Email:     email,
	})
	require.NoError(t, err)
	return s
}

func (f *fixture) createCourse(t *testing.T, code string) *model.CourseResponse {
	t.Helper()
	c, err := f.services.Courses.CreateCourse(context.Background(), &model.CreateCourseRequest{
		CourseCode: code,
		Name:       "Course " + code,
		Credits:    ptr(3),
	})
	require.NoError(t, err)
	return c
}
