// Package job provides background job processing using Asynq.
//
// Tasks are enqueued on Redis through an asynq.Client and consumed by the
// asynq.Server started alongside the HTTP server.
package job

import (
	"github.com/deppfellow/student-records/internal/config"
	"github.com/hibiken/asynq"
	"github.com/rs/zerolog"
)

// emailSender is the part of *email.Client the task handlers need.
type emailSender interface {
	SendWelcomeEmail(to, studentName, studentID string) error
	SendEnrollmentConfirmationEmail(to, studentName, courseCode, courseName string) error
}

// JobService holds the Asynq client (enqueue) and server (worker execution).
type JobService struct {
	Client *asynq.Client
	server *asynq.Server
	logger *zerolog.Logger
	email  emailSender
}

// NewJobService creates a JobService backed by the configured Redis.
func NewJobService(logger *zerolog.Logger, cfg *config.Config) *JobService {
	redisAddr := cfg.Redis.Address

	client := asynq.NewClient(asynq.RedisClientOpt{
		Addr: redisAddr,
	})

	server := asynq.NewServer(
		asynq.RedisClientOpt{Addr: redisAddr},
		asynq.Config{
			Concurrency: 10,
			Queues: map[string]int{
				QueueCritical: 6,
				QueueDefault:  3,
				QueueLow:      1,
			},
			Logger:   newAsynqLogger(logger),
			LogLevel: asynq.WarnLevel,
		},
	)

	return &JobService{
		Client: client,
		server: server,
		logger: logger,
	}
}

// Start registers the task handlers and starts the workers. It does not
// block.
func (j *JobService) Start() error {
	mux := asynq.NewServeMux()
	mux.HandleFunc(TaskWelcome, j.handleWelcomeEmailTask)
	mux.HandleFunc(TaskEnrollmentConfirmation, j.handleEnrollmentConfirmationTask)

	j.logger.Info().Msg("starting background job server")

	return j.server.Start(mux)
}

// Stop waits for running tasks and closes the enqueue client.
func (j *JobService) Stop() {
	j.logger.Info().Msg("stopping background job server")
	j.server.Shutdown()
	if err := j.Client.Close(); err != nil {
		j.logger.Error().Err(err).Msg("failed to close job client")
	}
}
