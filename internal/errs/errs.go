// Package errs defines the error types returned to API clients.
//
// Every failure leaving the HTTP layer is rendered as an *HTTPError so
// clients always receive the same JSON shape:
//
//	{"code": "...", "message": "...", "status": 400, "override": false, "errors": [], "action": null}
package errs

// Machine-readable codes for record-level failures. Generic failures use
// the upper-cased HTTP status text instead (e.g. "NOT_FOUND").
const (
	CodeStudentNotFound       = "STUDENT_NOT_FOUND"
	CodeCourseNotFound        = "COURSE_NOT_FOUND"
	CodeEnrollmentNotFound    = "ENROLLMENT_NOT_FOUND"
	CodeStudentIDExists       = "STUDENT_ID_ALREADY_EXISTS"
	CodeStudentEmailExists    = "STUDENT_EMAIL_ALREADY_EXISTS"
	CodeCourseCodeExists      = "COURSE_CODE_ALREADY_EXISTS"
	CodeAlreadyEnrolled       = "ENROLLMENT_ALREADY_EXISTS"
	CodeInvalidCredentials    = "INVALID_CREDENTIALS"
	CodeNoDataProvided        = "NO_DATA_PROVIDED"
	CodeInvalidDateFormat     = "INVALID_DATE_FORMAT"
	CodeMissingRequiredFields = "MISSING_REQUIRED_FIELDS"
)
