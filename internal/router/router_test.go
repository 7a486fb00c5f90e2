package router

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/deppfellow/student-records/internal/config"
	"github.com/deppfellow/student-records/internal/errs"
	"github.com/deppfellow/student-records/internal/handler"
	"github.com/deppfellow/student-records/internal/model"
	"github.com/deppfellow/student-records/internal/server"
	"github.com/deppfellow/student-records/internal/service"
	"github.com/deppfellow/student-records/internal/testutil"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type api struct {
	t      *testing.T
	router *echo.Echo
	store  *testutil.Store
	jobs   *testutil.Enqueuer
	token  string
}

func newAPI(t *testing.T, configure ...func(*config.Config)) *api {
	t.Helper()

	cfg := testutil.Config()
	for _, fn := range configure {
		fn(cfg)
	}

	logger := zerolog.Nop()
	s := &server.Server{Config: cfg, Logger: &logger}

	store := testutil.NewStore()
	store.AddUser("admin", "admin123")
	jobs := &testutil.Enqueuer{}

	services := service.NewServicesWithStores(cfg, service.Stores{
		Users:       store,
		Students:    store,
		Courses:     store,
		Enrollments: store,
	}, jobs)

	return &api{
		t:      t,
		router: NewRouter(s, handler.NewHandlers(s, services), services),
		store:  store,
		jobs:   jobs,
	}
}

func (a *api) do(method, path string, body any) *httptest.ResponseRecorder {
	a.t.Helper()

	var reader *bytes.Reader
	switch b := body.(type) {
	case nil:
		reader = bytes.NewReader(nil)
	case string:
		reader = bytes.NewReader([]byte(b))
	default:
		raw, err := json.Marshal(b)
		require.NoError(a.t, err)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	if a.token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+a.token)
	}

	rec := httptest.NewRecorder()
	a.router.ServeHTTP(rec, req)
	return rec
}

func (a *api) login() {
	a.t.Helper()
	rec := a.do(http.MethodPost, "/auth/login", map[string]string{
		"username": "admin",
		"password": "admin123",
	})
	require.Equal(a.t, http.StatusOK, rec.Code, rec.Body.String())

	var resp model.LoginResponse
	decode(a.t, rec, &resp)
	require.NotEmpty(a.t, resp.AccessToken)
	a.token = resp.AccessToken
}

func decode(t *testing.T, rec *httptest.ResponseRecorder, v any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), v), rec.Body.String())
}

func requireError(t *testing.T, rec *httptest.ResponseRecorder, status int, message string) {
	t.Helper()
	require.Equal(t, status, rec.Code, rec.Body.String())

	var body errs.HTTPError
	decode(t, rec, &body)
	assert.Equal(t, status, body.Status)
	assert.Equal(t, message, body.Message)
}

func TestLogin(t *testing.T) {
	a := newAPI(t)

	rec := a.do(http.MethodPost, "/auth/login", map[string]string{"username": "admin", "password": "wrong"})
	requireError(t, rec, http.StatusUnauthorized, "Invalid credentials")

	rec = a.do(http.MethodPost, "/auth/login", map[string]string{"username": "ghost", "password": "admin123"})
	requireError(t, rec, http.StatusUnauthorized, "Invalid credentials")

	rec = a.do(http.MethodPost, "/auth/login", map[string]string{"username": "admin"})
	requireError(t, rec, http.StatusBadRequest, "Username and password required")

	rec = a.do(http.MethodPost, "/auth/login", "{not json")
	require.Equal(t, http.StatusBadRequest, rec.Code)

	rec = a.do(http.MethodPost, "/auth/login", map[string]string{"username": "admin", "password": "admin123"})
	require.Equal(t, http.StatusOK, rec.Code)

	var resp model.LoginResponse
	decode(t, rec, &resp)
	assert.NotEmpty(t, resp.AccessToken)
	assert.Equal(t, "Bearer", resp.TokenType)
	assert.Equal(t, int64(15*60), resp.ExpiresIn)
	assert.Equal(t, "admin", resp.User.Username)
}

func TestLoginRateLimit(t *testing.T) {
	a := newAPI(t, func(cfg *config.Config) {
		cfg.Auth.LoginRateLimit = 0.001
	})

	var last *httptest.ResponseRecorder
	for i := 0; i < 10; i++ {
		last = a.do(http.MethodPost, "/auth/login", map[string]string{"username": "admin", "password": "wrong"})
		if last.Code == http.StatusTooManyRequests {
			break
		}
	}
	assert.Equal(t, http.StatusTooManyRequests, last.Code)
}

func TestRequireAuth(t *testing.T) {
	a := newAPI(t)

	tests := []struct {
		name    string
		header  string
		message string
	}{
		{name: "no header", header: "", message: "Missing authorization header"},
		{name: "wrong scheme", header: "Basic YWRtaW46YWRtaW4xMjM=", message: "Missing authorization header"},
		{name: "empty token", header: "Bearer ", message: "Missing authorization header"},
		{name: "garbage token", header: "Bearer not-a-jwt", message: "Invalid token"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/students", nil)
			if tt.header != "" {
				req.Header.Set(echo.HeaderAuthorization, tt.header)
			}
			rec := httptest.NewRecorder()
			a.router.ServeHTTP(rec, req)

			requireError(t, rec, http.StatusUnauthorized, tt.message)
		})
	}

	for _, path := range []string{"/students", "/courses", "/enrollments", "/students/1/courses", "/courses/1/students"} {
		rec := a.do(http.MethodGet, path, nil)
		assert.Equal(t, http.StatusUnauthorized, rec.Code, path)
	}
}

func TestHealthIsPublic(t *testing.T) {
	a := newAPI(t)

	rec := a.do(http.MethodGet, "/health", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var body map[string]any
	decode(t, rec, &body)
	assert.Equal(t, "healthy", body["status"])
	assert.Equal(t, "test", body["environment"])
}

func TestUnknownRoute(t *testing.T) {
	a := newAPI(t)

	rec := a.do(http.MethodGet, "/nope", nil)
	requireError(t, rec, http.StatusNotFound, "Route not found")
}

func TestStudentLifecycle(t *testing.T) {
	a := newAPI(t)
	a.login()

	rec := a.do(http.MethodGet, "/students", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, "[]", rec.Body.String())

	rec = a.do(http.MethodPost, "/students", map[string]string{
		"student_id":    "S001",
		"name":          "Ada Lovelace",
		"email":         "ada@example.com",
		"date_of_birth": "1815-12-10",
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var created model.StudentResponse
	decode(t, rec, &created)
	assert.Equal(t, "S001", created.StudentID)
	require.NotNil(t, created.DateOfBirth)
	assert.Equal(t, "1815-12-10", *created.DateOfBirth)
	assert.Len(t, a.jobs.Welcome, 1)

	path := fmt.Sprintf("/students/%d", created.ID)

	t.Run("missing fields", func(t *testing.T) {
		rec := a.do(http.MethodPost, "/students", map[string]string{"name": "No Id"})
		requireError(t, rec, http.StatusBadRequest, "student_id, name, and email are required")
	})

	t.Run("duplicate student id", func(t *testing.T) {
		rec := a.do(http.MethodPost, "/students", map[string]string{
			"student_id": "S001", "name": "Other", "email": "other@example.com",
		})
		requireError(t, rec, http.StatusBadRequest, "Student ID already exists")
	})

	t.Run("duplicate email", func(t *testing.T) {
		rec := a.do(http.MethodPost, "/students", map[string]string{
			"student_id": "S002", "name": "Other", "email": "ada@example.com",
		})
		requireError(t, rec, http.StatusBadRequest, "Email already exists")
	})

	t.Run("bad date", func(t *testing.T) {
		rec := a.do(http.MethodPost, "/students", map[string]string{
			"student_id": "S003", "name": "Other", "email": "s3@example.com", "date_of_birth": "12/10/1815",
		})
		requireError(t, rec, http.StatusBadRequest, "Invalid date format. Use YYYY-MM-DD")
	})

	t.Run("get", func(t *testing.T) {
		rec := a.do(http.MethodGet, path, nil)
		require.Equal(t, http.StatusOK, rec.Code)

		var got model.StudentResponse
		decode(t, rec, &got)
		assert.Equal(t, created, got)

		rec = a.do(http.MethodGet, "/students/999", nil)
		requireError(t, rec, http.StatusNotFound, "Student not found")
	})

	t.Run("update", func(t *testing.T) {
		rec := a.do(http.MethodPut, path, map[string]string{"name": "Augusta Ada King"})
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

		var got model.StudentResponse
		decode(t, rec, &got)
		assert.Equal(t, "Augusta Ada King", got.Name)
		assert.Equal(t, "ada@example.com", got.Email)

		rec = a.do(http.MethodPut, path, map[string]string{})
		requireError(t, rec, http.StatusBadRequest, "No data provided")

		rec = a.do(http.MethodPut, "/students/999", map[string]string{"name": "Ghost"})
		requireError(t, rec, http.StatusNotFound, "Student not found")
	})

	rec = a.do(http.MethodDelete, path, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var msg model.MessageResponse
	decode(t, rec, &msg)
	assert.Equal(t, "Student deleted successfully", msg.Message)

	rec = a.do(http.MethodDelete, path, nil)
	requireError(t, rec, http.StatusNotFound, "Student not found")
}

func TestCourseLifecycle(t *testing.T) {
	a := newAPI(t)
	a.login()

	rec := a.do(http.MethodPost, "/courses", map[string]any{
		"course_code": "CS101",
		"name":        "Intro to CS",
		"credits":     3,
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var created model.CourseResponse
	decode(t, rec, &created)
	path := fmt.Sprintf("/courses/%d", created.ID)

	rec = a.do(http.MethodPost, "/courses", map[string]any{"course_code": "CS102", "name": "Missing credits"})
	requireError(t, rec, http.StatusBadRequest, "course_code, name, and credits are required")

	rec = a.do(http.MethodPost, "/courses", map[string]any{"course_code": "CS101", "name": "Dup", "credits": 1})
	requireError(t, rec, http.StatusBadRequest, "Course code already exists")

	rec = a.do(http.MethodPut, path, map[string]any{"credits": 4})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var updated model.CourseResponse
	decode(t, rec, &updated)
	assert.Equal(t, 4, updated.Credits)
	assert.Equal(t, "CS101", updated.CourseCode)

	rec = a.do(http.MethodDelete, path, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = a.do(http.MethodDelete, path, nil)
	requireError(t, rec, http.StatusNotFound, "Course not found")
}

func TestEnrollmentFlow(t *testing.T) {
	a := newAPI(t)
	a.login()

	rec := a.do(http.MethodPost, "/students", map[string]string{
		"student_id": "S001", "name": "Ada Lovelace", "email": "ada@example.com",
	})
	require.Equal(t, http.StatusCreated, rec.Code)
	var student model.StudentResponse
	decode(t, rec, &student)

	rec = a.do(http.MethodPost, "/courses", map[string]any{"course_code": "CS101", "name": "Intro to CS", "credits": 3})
	require.Equal(t, http.StatusCreated, rec.Code)
	var course model.CourseResponse
	decode(t, rec, &course)

	t.Run("missing fields", func(t *testing.T) {
		rec := a.do(http.MethodPost, "/enrollments", map[string]any{"student_id": student.ID})
		requireError(t, rec, http.StatusBadRequest, "student_id and course_id are required")
	})

	t.Run("zero ids are looked up", func(t *testing.T) {
		rec := a.do(http.MethodPost, "/enrollments", map[string]any{"student_id": 0, "course_id": 0})
		requireError(t, rec, http.StatusNotFound, "Student not found")

		rec = a.do(http.MethodPost, "/enrollments", map[string]any{"student_id": student.ID, "course_id": 0})
		requireError(t, rec, http.StatusNotFound, "Course not found")
	})

	t.Run("unknown references", func(t *testing.T) {
		rec := a.do(http.MethodPost, "/enrollments", map[string]any{"student_id": 999, "course_id": course.ID})
		requireError(t, rec, http.StatusNotFound, "Student not found")

		rec = a.do(http.MethodPost, "/enrollments", map[string]any{"student_id": student.ID, "course_id": 999})
		requireError(t, rec, http.StatusNotFound, "Course not found")
	})

	rec = a.do(http.MethodPost, "/enrollments", map[string]any{
		"student_id": student.ID,
		"course_id":  course.ID,
		"grade":      "A",
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var enrollment model.EnrollmentResponse
	decode(t, rec, &enrollment)
	require.NotNil(t, enrollment.Grade)
	assert.Equal(t, "A", *enrollment.Grade)
	require.NotNil(t, enrollment.StudentName)
	assert.Equal(t, "Ada Lovelace", *enrollment.StudentName)
	assert.Len(t, a.jobs.Confirmations, 1)

	rec = a.do(http.MethodPost, "/enrollments", map[string]any{"student_id": student.ID, "course_id": course.ID})
	requireError(t, rec, http.StatusBadRequest, "Student already enrolled in this course")

	rec = a.do(http.MethodGet, fmt.Sprintf("/students/%d/courses", student.ID), nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var courses []model.CourseResponse
	decode(t, rec, &courses)
	require.Len(t, courses, 1)
	assert.Equal(t, "CS101", courses[0].CourseCode)

	rec = a.do(http.MethodGet, fmt.Sprintf("/courses/%d/students", course.ID), nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var students []model.StudentResponse
	decode(t, rec, &students)
	require.Len(t, students, 1)
	assert.Equal(t, "S001", students[0].StudentID)

	rec = a.do(http.MethodGet, "/students/999/courses", nil)
	requireError(t, rec, http.StatusNotFound, "Student not found")

	enrollmentPath := fmt.Sprintf("/enrollments/%d", enrollment.ID)
	rec = a.do(http.MethodPut, enrollmentPath, map[string]string{"grade": "B+"})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	decode(t, rec, &enrollment)
	assert.Equal(t, "B+", *enrollment.Grade)

	// Deleting the student removes its enrollments.
	rec = a.do(http.MethodDelete, fmt.Sprintf("/students/%d", student.ID), nil)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = a.do(http.MethodGet, "/enrollments", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, "[]", rec.Body.String())

	rec = a.do(http.MethodDelete, enrollmentPath, nil)
	requireError(t, rec, http.StatusNotFound, "Enrollment not found")
}

func TestUpdateMissingRowWithEmptyBody(t *testing.T) {
	a := newAPI(t)
	a.login()

	tests := []struct {
		path    string
		message string
	}{
		{path: "/students/999", message: "Student not found"},
		{path: "/courses/999", message: "Course not found"},
		{path: "/enrollments/999", message: "Enrollment not found"},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			rec := a.do(http.MethodPut, tt.path, map[string]string{})
			requireError(t, rec, http.StatusNotFound, tt.message)
		})
	}
}

func TestDatabaseFailureIsHidden(t *testing.T) {
	a := newAPI(t)
	a.login()
	a.store.Err = errors.New("connection reset by peer")

	rec := a.do(http.MethodGet, "/students", nil)
	requireError(t, rec, http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError))
	assert.NotContains(t, rec.Body.String(), "connection reset")
}

func TestRequestIDIsEchoed(t *testing.T) {
	a := newAPI(t)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set("X-Request-ID", "req-123")
	rec := httptest.NewRecorder()
	a.router.ServeHTTP(rec, req)

	assert.Equal(t, "req-123", rec.Header().Get("X-Request-ID"))
}
