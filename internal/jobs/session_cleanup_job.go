package jobs

import (
	"context"
	"log/slog"
	"time"

	"pratofit/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// SessionCleanupJob reaps abandoned sessions on a schedule. Live sessions
// are never touched; only sessions idle past the TTL are removed.
type SessionCleanupJob struct {
	handler commands.CleanupSessionsCommandHandler
	ttl     time.Duration
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewSessionCleanupJob creates a job that removes sessions idle longer
// than ttl, checking every minute.
func NewSessionCleanupJob(
	handler commands.CleanupSessionsCommandHandler,
	ttl time.Duration,
	logger *slog.Logger,
) *SessionCleanupJob {
	return &SessionCleanupJob{
		handler: handler,
		ttl:     ttl,
		cron:    cron.New(),
		logger:  logger.With("component", "session_cleanup_job"),
	}
}

// Start begins the cleanup job on a one-minute cadence.
func (j *SessionCleanupJob) Start() error {
	_, err := j.cron.AddFunc("@every 1m", func() {
		ctx := context.Background()

		cmd, cmdErr := commands.NewCleanupSessionsCommand(j.ttl)
		if cmdErr != nil {
			j.logger.ErrorContext(ctx, "Session cleanup job misconfigured", "error", cmdErr)
			return
		}

		removed, handleErr := j.handler.Handle(ctx, cmd)
		if handleErr != nil {
			j.logger.ErrorContext(ctx, "Session cleanup job failed", "error", handleErr)
			return
		}

		if removed > 0 {
			j.logger.InfoContext(ctx, "Reaped idle sessions", "count", removed)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Session cleanup job started (running every minute)")
	return nil
}

// Stop stops the cleanup job.
func (j *SessionCleanupJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Session cleanup job stopped")
}
