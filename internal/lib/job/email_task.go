package job

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/hibiken/asynq"
)

const (
	QueueCritical = "critical"
	QueueDefault  = "default"
	QueueLow      = "low"
)

const (
	TaskWelcome                = "email:welcome"
	TaskEnrollmentConfirmation = "email:enrollment_confirmation"
)

type WelcomeEmailPayload struct {
	To          string `json:"to"`
	StudentName string `json:"student_name"`
	StudentID   string `json:"student_id"`
}

type EnrollmentConfirmationPayload struct {
	To          string `json:"to"`
	StudentName string `json:"student_name"`
	CourseCode  string `json:"course_code"`
	CourseName  string `json:"course_name"`
}

// NewWelcomeEmailTask builds the task sent after a student is created.
func NewWelcomeEmailTask(p WelcomeEmailPayload) (*asynq.Task, error) {
	payload, err := json.Marshal(p)
	if err != nil {
		return nil, err
	}

	return asynq.NewTask(
		TaskWelcome,
		payload,
		asynq.MaxRetry(3),
		asynq.Queue(QueueDefault),
		asynq.Timeout(30*time.Second),
	), nil
}

// NewEnrollmentConfirmationTask builds the task sent after an enrollment is
// created.
func NewEnrollmentConfirmationTask(p EnrollmentConfirmationPayload) (*asynq.Task, error) {
	payload, err := json.Marshal(p)
	if err != nil {
		return nil, err
	}

	return asynq.NewTask(
		TaskEnrollmentConfirmation,
		payload,
		asynq.MaxRetry(3),
		asynq.Queue(QueueLow),
		asynq.Timeout(30*time.Second),
	), nil
}

// EnqueueWelcomeEmail schedules a welcome email.
func (j *JobService) EnqueueWelcomeEmail(ctx context.Context, p WelcomeEmailPayload) error {
	task, err := NewWelcomeEmailTask(p)
	if err != nil {
		return fmt.Errorf("failed to build welcome email task: %w", err)
	}
	return j.enqueue(ctx, task)
}

// EnqueueEnrollmentConfirmation schedules an enrollment confirmation email.
func (j *JobService) EnqueueEnrollmentConfirmation(ctx context.Context, p EnrollmentConfirmationPayload) error {
	task, err := NewEnrollmentConfirmationTask(p)
	if err != nil {
		return fmt.Errorf("failed to build enrollment confirmation task: %w", err)
	}
	return j.enqueue(ctx, task)
}

func (j *JobService) enqueue(ctx context.Context, task *asynq.Task) error {
	info, err := j.Client.EnqueueContext(ctx, task)
	if err != nil {
		return fmt.Errorf("failed to enqueue %s: %w", task.Type(), err)
	}

	j.logger.Debug().
		Str("task_id", info.ID).
		Str("type", task.Type()).
		Str("queue", info.Queue).
		Msg("task enqueued")

	return nil
}
