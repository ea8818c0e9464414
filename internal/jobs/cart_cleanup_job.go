package jobs

import (
	"context"
	"log/slog"
	"time"

	"teashop/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// cartCleanupSchedule runs the sweep hourly at minute zero.
const cartCleanupSchedule = "0 * * * *"

// CartCleanupJob deletes abandoned carts on a schedule. A cart counts as
// abandoned when its last write is older than the retention window.
type CartCleanupJob struct {
	handler   commands.RemoveStaleCartsCommandHandler
	retention time.Duration
	cron      *cron.Cron
	logger    *slog.Logger
}

// NewCartCleanupJob creates a new job for sweeping abandoned carts.
func NewCartCleanupJob(
	handler commands.RemoveStaleCartsCommandHandler,
	retention time.Duration,
	logger *slog.Logger,
) *CartCleanupJob {
	return &CartCleanupJob{
		handler:   handler,
		retention: retention,
		cron:      cron.New(),
		logger:    logger.With("component", "cart_cleanup_job"),
	}
}

// Start schedules the hourly cart sweep.
func (j *CartCleanupJob) Start() error {
	_, err := j.cron.AddFunc(cartCleanupSchedule, func() {
		ctx := context.Background()

		cmd, err := commands.NewRemoveStaleCartsCommand(j.retention)
		if err != nil {
			j.logger.ErrorContext(ctx, "Cart cleanup job misconfigured", "error", err)
			return
		}

		removed, err := j.handler.Handle(ctx, cmd)
		if err != nil {
			j.logger.ErrorContext(ctx, "Cart cleanup job failed", "error", err)
			return
		}

		if removed > 0 {
			j.logger.InfoContext(ctx, "Removed stale carts", "count", removed)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Cart cleanup job started (running hourly)")
	return nil
}

// Stop stops the cart cleanup job.
func (j *CartCleanupJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Cart cleanup job stopped")
}
