// Package model holds the persisted entities, the request payloads the
// handlers bind into and the JSON shapes returned to clients.
package model

import (
	"time"

	"github.com/deppfellow/student-records/internal/validation"
)

// Base carries the bookkeeping columns every table has.
type Base struct {
	CreatedAt time.Time `json:"-" db:"created_at"`
	UpdatedAt time.Time `json:"-" db:"updated_at"`
}

// MessageResponse is returned by operations that have nothing else to say,
// e.g. a successful delete.
type MessageResponse struct {
	Message string `json:"message"`
}

// IDParam binds the :id path segment.
type IDParam struct {
	ID int64 `param:"id" json:"-" validate:"required,min=1"`
}

func (p *IDParam) Validate() error {
	return validation.Struct(p)
}

// ListRequest is the payload for list endpoints. They take no input.
type ListRequest struct{}

func (r *ListRequest) Validate() error {
	return nil
}

// FormatDate renders t as YYYY-MM-DD. A nil time renders as nil.
func FormatDate(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format(validation.DateLayout)
	return &s
}

// ParseDate parses a YYYY-MM-DD string.
func ParseDate(s string) (time.Time, error) {
	return time.Parse(validation.DateLayout, s)
}

// ParseOptionalDate parses s when it is set. An empty string clears the
// date.
func ParseOptionalDate(s *string) (*time.Time, error) {
	if s == nil || *s == "" {
		return nil, nil
	}
	t, err := ParseDate(*s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
