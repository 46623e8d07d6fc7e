package jobs

import (
	"context"
	"errors"
	"log/slog"

	"fulfillment/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// dispatchSchedule runs the sweep every ten seconds.
const dispatchSchedule = "*/10 * * * * *"

// DispatchJob periodically assigns delivery partners to paid orders that
// have none yet.
type DispatchJob struct {
	handler commands.DispatchOrdersCommandHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewDispatchJob creates the scheduled dispatch sweep.
func NewDispatchJob(handler commands.DispatchOrdersCommandHandler, logger *slog.Logger) *DispatchJob {
	return &DispatchJob{
		handler: handler,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "dispatch_job"),
	}
}

// Start begins the dispatch sweep on its schedule.
func (j *DispatchJob) Start() error {
	_, err := j.cron.AddFunc(dispatchSchedule, func() {
		ctx := context.Background()
		cmd := commands.NewDispatchOrdersCommand()

		if err := j.handler.Handle(ctx, cmd); err != nil {
			// An empty queue is the normal idle state, not a failure
			if !errors.Is(err, commands.ErrNothingToDispatch) {
				j.logger.ErrorContext(ctx, "Dispatch sweep failed", "error", err)
			}
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Dispatch job started")
	return nil
}

// Stop stops the dispatch sweep.
func (j *DispatchJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Dispatch job stopped")
}
