package service

import (
	"errors"

	"github.com/deppfellow/student-records/internal/errs"
	"github.com/jackc/pgx/v5"
)

func errStudentNotFound() error {
	return errs.NewNotFoundError("Student not found", true, errs.Code(errs.CodeStudentNotFound))
}

func errCourseNotFound() error {
	return errs.NewNotFoundError("Course not found", true, errs.Code(errs.CodeCourseNotFound))
}

func errEnrollmentNotFound() error {
	return errs.NewNotFoundError("Enrollment not found", true, errs.Code(errs.CodeEnrollmentNotFound))
}

func errNoDataProvided() error {
	return errs.NewBadRequestError("No data provided", true, errs.Code(errs.CodeNoDataProvided), nil, nil)
}

func errInvalidDate() error {
	return errs.NewBadRequestError("Invalid date format. Use YYYY-MM-DD", true, errs.Code(errs.CodeInvalidDateFormat), nil, nil)
}

func errConflict(message, code string) error {
	return errs.NewBadRequestError(message, true, errs.Code(code), nil, nil)
}

// notFound replaces pgx.ErrNoRows with the given not-found error and
// passes everything else through.
func notFound(err error, notFoundErr func() error) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return notFoundErr()
	}
	return err
}
