package jobs

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"pizzeria/internal/core/application/usecases/commands"
	"pizzeria/internal/core/domain/model/order"
	"pizzeria/internal/pkg/metrics"

	"github.com/robfig/cron/v3"
)

// KitchenJobName labels the kitchen job in logs and metrics.
const KitchenJobName = "kitchen"

// Results of a single kitchen job run.
const (
	ResultClaimed = "claimed"
	ResultIdle    = "idle"
	ResultFailed  = "failed"
)

type claimNextOrderHandler interface {
	Handle(ctx context.Context, cmd commands.ClaimNextOrderCommand) (*order.Order, error)
}

// KitchenJob takes the oldest pending order off the queue on a cron schedule,
// the way a kitchen worker calling POST /api/orders/claim would.
type KitchenJob struct {
	handler  claimNextOrderHandler
	schedule string
	cmd      commands.ClaimNextOrderCommand
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewKitchenJob creates a job that claims one order per tick of schedule, a
// six-field cron expression with seconds. Claimed orders move to status, or to
// order.InProgress when status is empty.
func NewKitchenJob(
	handler claimNextOrderHandler,
	schedule string,
	status order.Status,
	logger *slog.Logger,
) (*KitchenJob, error) {
	cmd, err := commands.NewClaimNextOrderCommand(status)
	if err != nil {
		return nil, err
	}

	return &KitchenJob{
		handler:  handler,
		schedule: schedule,
		cmd:      cmd,
		cron:     cron.New(cron.WithSeconds()),
		logger:   logger.With("component", "kitchen_job"),
	}, nil
}

// Start schedules the job and starts the cron runner.
func (j *KitchenJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		j.Run(context.Background())
	})
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Kitchen job started",
		slog.String("schedule", j.schedule),
		slog.String("status", j.cmd.Status().String()))
	return nil
}

// Run performs one claim and returns its result. An empty queue is not an error.
func (j *KitchenJob) Run(ctx context.Context) string {
	start := time.Now()

	claimed, err := j.handler.Handle(ctx, j.cmd)

	var result string
	switch {
	case err == nil:
		result = ResultClaimed
		metrics.OrdersClaimed.WithLabelValues(metrics.SourceJob).Inc()
		j.logger.InfoContext(ctx, "Order claimed",
			slog.Int64("order_id", int64(claimed.ID())),
			slog.String("status", claimed.Status().String()))
	case errors.Is(err, commands.ErrNoPendingOrder):
		result = ResultIdle
	default:
		result = ResultFailed
		j.logger.ErrorContext(ctx, "Kitchen job failed", "error", err)
	}

	metrics.RecordJobRun(KitchenJobName, result, start)
	return result
}

// Stop stops the cron runner and waits for a running claim to finish.
func (j *KitchenJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Kitchen job stopped")
}
