package validation

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/deppfellow/student-records/internal/errs"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type samplePayload struct {
	ID    int64   `param:"id" json:"-" validate:"required,min=1"`
	Code  string  `json:"code" validate:"required,max=5"`
	Email string  `json:"email" validate:"omitempty,email"`
	Born  *string `json:"born" validate:"omitempty,datetime=2006-01-02"`
}

func (p *samplePayload) Validate() error {
	return Struct(p)
}

func (p *samplePayload) RequiredMessage() string {
	return "code is required"
}

func newContext(method, body, id string) echo.Context {
	e := echo.New()
	req := httptest.NewRequest(method, "/samples/"+id, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	c := e.NewContext(req, httptest.NewRecorder())
	c.SetPath("/samples/:id")
	c.SetParamNames("id")
	c.SetParamValues(id)
	return c
}

func requireHTTPError(t *testing.T, err error) *errs.HTTPError {
	t.Helper()
	var httpErr *errs.HTTPError
	require.True(t, errors.As(err, &httpErr), "expected *errs.HTTPError, got %T", err)
	return httpErr
}

func TestBindAndValidate(t *testing.T) {
	t.Run("valid payload", func(t *testing.T) {
		c := newContext(http.MethodPut, `{"code":"CS101","email":"a@b.co","born":"2001-02-03"}`, "7")
		p := &samplePayload{}
		require.NoError(t, BindAndValidate(c, p))
		assert.Equal(t, int64(7), p.ID)
		assert.Equal(t, "CS101", p.Code)
		require.NotNil(t, p.Born)
	})

	t.Run("missing required field uses custom message", func(t *testing.T) {
		c := newContext(http.MethodPut, `{}`, "7")
		httpErr := requireHTTPError(t, BindAndValidate(c, &samplePayload{}))
		assert.Equal(t, http.StatusBadRequest, httpErr.Status)
		assert.Equal(t, "code is required", httpErr.Message)
		require.Len(t, httpErr.Errors, 1)
		assert.Equal(t, "code", httpErr.Errors[0].Field)
		assert.Equal(t, "is required", httpErr.Errors[0].Error)
	})

	t.Run("bad date", func(t *testing.T) {
		c := newContext(http.MethodPut, `{"code":"X","born":"03/02/2001"}`, "7")
		httpErr := requireHTTPError(t, BindAndValidate(c, &samplePayload{}))
		assert.Equal(t, InvalidDateMessage, httpErr.Message)
		require.Len(t, httpErr.Errors, 1)
		assert.Equal(t, "born", httpErr.Errors[0].Field)
	})

	t.Run("too long and bad email", func(t *testing.T) {
		c := newContext(http.MethodPut, `{"code":"TOOLONG","email":"nope"}`, "7")
		httpErr := requireHTTPError(t, BindAndValidate(c, &samplePayload{}))
		assert.Equal(t, "Validation failed", httpErr.Message)
		assert.Len(t, httpErr.Errors, 2)
	})

	t.Run("malformed json", func(t *testing.T) {
		c := newContext(http.MethodPut, `{"code":`, "7")
		httpErr := requireHTTPError(t, BindAndValidate(c, &samplePayload{}))
		assert.Equal(t, http.StatusBadRequest, httpErr.Status)
		assert.NotEmpty(t, httpErr.Message)
	})

	t.Run("non numeric id", func(t *testing.T) {
		c := newContext(http.MethodPut, `{"code":"X"}`, "abc")
		httpErr := requireHTTPError(t, BindAndValidate(c, &samplePayload{}))
		assert.Equal(t, http.StatusBadRequest, httpErr.Status)
		assert.Contains(t, httpErr.Message, "abc")
	})
}
