package sqlerr

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/deppfellow/student-records/internal/errs"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func asHTTPError(t *testing.T, err error) *errs.HTTPError {
	t.Helper()
	var httpErr *errs.HTTPError
	require.True(t, errors.As(err, &httpErr), "expected *errs.HTTPError, got %T", err)
	return httpErr
}

func TestHandleErrorKnownConstraints(t *testing.T) {
	tests := []struct {
		constraint string
		sqlState   string
		status     int
		message    string
	}{
		{"students_student_id_key", "23505", http.StatusBadRequest, "Student ID already exists"},
		{"students_email_key", "23505", http.StatusBadRequest, "Email already exists"},
		{"courses_course_code_key", "23505", http.StatusBadRequest, "Course code already exists"},
		{"unique_enrollments_student_course", "23505", http.StatusBadRequest, "Student already enrolled in this course"},
		{"enrollments_student_id_fkey", "23503", http.StatusNotFound, "Student not found"},
		{"enrollments_course_id_fkey", "23503", http.StatusNotFound, "Course not found"},
	}
	for _, tt := range tests {
		t.Run(tt.constraint, func(t *testing.T) {
			pgErr := &pgconn.PgError{Code: tt.sqlState, Severity: "ERROR", ConstraintName: tt.constraint}
			httpErr := asHTTPError(t, HandleError(fmt.Errorf("insert: %w", pgErr)))
			assert.Equal(t, tt.status, httpErr.Status)
			assert.Equal(t, tt.message, httpErr.Message)
		})
	}
}

func TestHandleErrorGenericUniqueViolation(t *testing.T) {
	pgErr := &pgconn.PgError{
		Code:           "23505",
		Severity:       "ERROR",
		TableName:      "users",
		ConstraintName: "users_username_key",
	}

	httpErr := asHTTPError(t, HandleError(pgErr))
	assert.Equal(t, http.StatusBadRequest, httpErr.Status)
	assert.Equal(t, "USER_ALREADY_EXISTS", httpErr.Code)
	assert.Equal(t, "A User with this Username already exists", httpErr.Message)
}

func TestHandleErrorNotNull(t *testing.T) {
	pgErr := &pgconn.PgError{Code: "23502", TableName: "courses", ColumnName: "name"}

	httpErr := asHTTPError(t, HandleError(pgErr))
	assert.Equal(t, http.StatusBadRequest, httpErr.Status)
	assert.Equal(t, "COURSE_REQUIRED", httpErr.Code)
	require.Len(t, httpErr.Errors, 1)
	assert.Equal(t, "name", httpErr.Errors[0].Field)
}

func TestHandleErrorNoRows(t *testing.T) {
	httpErr := asHTTPError(t, HandleError(fmt.Errorf("get student: %w", pgx.ErrNoRows)))
	assert.Equal(t, http.StatusNotFound, httpErr.Status)
}

func TestHandleErrorPassesHTTPErrorThrough(t *testing.T) {
	original := errs.NewNotFoundError("Course not found", true, nil)
	assert.Same(t, original, HandleError(original))
}

func TestHandleErrorUnknown(t *testing.T) {
	httpErr := asHTTPError(t, HandleError(errors.New("connection reset")))
	assert.Equal(t, http.StatusInternalServerError, httpErr.Status)

	httpErr = asHTTPError(t, HandleError(&pgconn.PgError{Code: "40001"}))
	assert.Equal(t, http.StatusInternalServerError, httpErr.Status)
}

func TestErrCode(t *testing.T) {
	assert.Equal(t, UniqueViolation, ErrCode(&pgconn.PgError{Code: "23505"}))
	assert.Equal(t, UniqueViolation, ErrCode(ConvertPgError(&pgconn.PgError{Code: "23505"})))
	assert.Equal(t, Other, ErrCode(errors.New("boom")))
}

func TestExtractColumnForUniqueViolation(t *testing.T) {
	assert.Equal(t, "email", extractColumnForUniqueViolation("unique_users_email"))
	assert.Equal(t, "email", extractColumnForUniqueViolation("users_email_key"))
	assert.Equal(t, "", extractColumnForUniqueViolation("pk"))
}
