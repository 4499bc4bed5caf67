package jobs

import (
	"fmt"
	"time"

	"checkout/internal/clock"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

type OrderPruner interface {
	PruneCreatedBefore(cutoff time.Time) int
}

// OrderRetentionJob periodically drops in-memory orders older than the retention window.
type OrderRetentionJob struct {
	pruner    OrderPruner
	schedule  string
	retention time.Duration
	clock     clock.Clock
	cron      *cron.Cron
	logger    *zap.Logger
}

func NewOrderRetentionJob(pruner OrderPruner, schedule string, retention time.Duration, clk clock.Clock, logger *zap.Logger) *OrderRetentionJob {
	return &OrderRetentionJob{
		pruner:    pruner,
		schedule:  schedule,
		retention: retention,
		clock:     clk,
		cron:      cron.New(),
		logger:    logger.Named("order_retention_job"),
	}
}

func (j *OrderRetentionJob) Start() error {
	if _, err := j.cron.AddFunc(j.schedule, j.Run); err != nil {
		return fmt.Errorf("scheduling order retention job %q: %w", j.schedule, err)
	}

	j.cron.Start()
	j.logger.Info("order retention job started", zap.String("schedule", j.schedule), zap.Duration("retention", j.retention))
	return nil
}

// Run prunes once. Start calls it on schedule.
func (j *OrderRetentionJob) Run() {
	cutoff := j.clock.Now().Add(-j.retention)
	removed := j.pruner.PruneCreatedBefore(cutoff)
	if removed > 0 {
		j.logger.Info("pruned expired orders", zap.Int("removed", removed), zap.Time("cutoff", cutoff))
	}
}

// Stop waits for a running prune to finish.
func (j *OrderRetentionJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.Info("order retention job stopped")
}
