package jobs

import (
	"fmt"

	"selfstorage-backend/internal/config"
	"selfstorage-backend/internal/logger"
	"selfstorage-backend/internal/repository"
	"selfstorage-backend/internal/service"
)

// JobRunner coordinates all scheduled jobs. Repositories are held as
// interfaces so tests can substitute fakes.
type JobRunner struct {
	rentalRepo   repository.RentalRepository
	userRepo     repository.UserRepository
	boxRepo      repository.BoxRepository
	emailLogRepo repository.EmailLogRepository
	email        service.EmailService
	config       *config.Config
}

// NewJobRunner creates a new job runner with all dependencies
func NewJobRunner(
	rentalRepo repository.RentalRepository,
	userRepo repository.UserRepository,
	boxRepo repository.BoxRepository,
	emailLogRepo repository.EmailLogRepository,
	email service.EmailService,
	cfg *config.Config,
) *JobRunner {
	return &JobRunner{
		rentalRepo:   rentalRepo,
		userRepo:     userRepo,
		boxRepo:      boxRepo,
		emailLogRepo: emailLogRepo,
		email:        email,
		config:       cfg,
	}
}

// Config exposes the loaded configuration to the scheduler.
func (jr *JobRunner) Config() *config.Config {
	return jr.config
}

// runWithRecovery wraps job execution with panic recovery. A panic surfaces
// as an error so a run-once invocation can exit non-zero.
func (jr *JobRunner) runWithRecovery(jobName string, jobFunc func() error) (err error) {
	defer func() {
		if r := recover(); r != nil {
			logger.Error("Job panicked", "job", jobName, "panic", r)
			err = fmt.Errorf("job %s panicked: %v", jobName, r)
		}
	}()

	logger.Info("Starting job", "job", jobName)
	if err := jobFunc(); err != nil {
		logger.Error("Job failed", "job", jobName, "error", err)
		return err
	}
	logger.Info("Job completed", "job", jobName)
	return nil
}

// RunAllNightlyJobs runs all nightly jobs (for manual execution)
func (jr *JobRunner) RunAllNightlyJobs() error {
	if err := jr.RefreshRentalStatuses(); err != nil {
		return err
	}
	return jr.SendRentalReminders()
}
