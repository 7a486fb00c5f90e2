package testutil

import (
	"context"
	"sync"

	"github.com/deppfellow/student-records/internal/lib/job"
)

// Enqueuer records the email jobs it is asked to schedule.
type Enqueuer struct {
	// Err, when set, is returned by every call.
	Err error

	mu            sync.Mutex
	Welcome       []job.WelcomeEmailPayload
	Confirmations []job.EnrollmentConfirmationPayload
}

func (e *Enqueuer) EnqueueWelcomeEmail(_ context.Context, p job.WelcomeEmailPayload) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.Err != nil {
		return e.Err
	}
	e.Welcome = append(e.Welcome, p)
	return nil
}

func (e *Enqueuer) EnqueueEnrollmentConfirmation(_ context.Context, p job.EnrollmentConfirmationPayload) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.Err != nil {
		return e.Err
	}
	e.Confirmations = append(e.Confirmations, p)
	return nil
}
