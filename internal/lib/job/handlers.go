package job

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/deppfellow/student-records/internal/config"
	"github.com/deppfellow/student-records/internal/lib/email"
	"github.com/hibiken/asynq"
	"github.com/rs/zerolog"
)

// InitHandlers builds the dependencies the task handlers use.
func (j *JobService) InitHandlers(cfg *config.Config, logger *zerolog.Logger) {
	j.email = email.NewClient(cfg, logger)
}

func (j *JobService) handleWelcomeEmailTask(ctx context.Context, t *asynq.Task) error {
	var p WelcomeEmailPayload
	if err := json.Unmarshal(t.Payload(), &p); err != nil {
		return fmt.Errorf("failed to unmarshal welcome email payload: %w", err)
	}

	j.logger.Info().
		Str("type", "welcome").
		Str("to", p.To).
		Msg("processing welcome email task")

	if err := j.email.SendWelcomeEmail(p.To, p.StudentName, p.StudentID); err != nil {
		j.logger.Error().
			Str("type", "welcome").
			Str("to", p.To).
			Err(err).
			Msg("failed to send welcome email")
		return err
	}

	j.logger.Info().
		Str("type", "welcome").
		Str("to", p.To).
		Msg("successfully sent welcome email")

	return nil
}

func (j *JobService) handleEnrollmentConfirmationTask(ctx context.Context, t *asynq.Task) error {
	var p EnrollmentConfirmationPayload
	if err := json.Unmarshal(t.Payload(), &p); err != nil {
		return fmt.Errorf("failed to unmarshal enrollment confirmation payload: %w", err)
	}

	j.logger.Info().
		Str("type", "enrollment_confirmation").
		Str("to", p.To).
		Str("course_code", p.CourseCode).
		Msg("processing enrollment confirmation task")

	if err := j.email.SendEnrollmentConfirmationEmail(p.To, p.StudentName, p.CourseCode, p.CourseName); err != nil {
		j.logger.Error().
			Str("type", "enrollment_confirmation").
			Str("to", p.To).
			Err(err).
			Msg("failed to send enrollment confirmation email")
		return err
	}

	j.logger.Info().
		Str("type", "enrollment_confirmation").
		Str("to", p.To).
		Msg("successfully sent enrollment confirmation email")

	return nil
}
