package jobs

import (
	"context"
	"log/slog"
	"time"

	"requisitions/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// DefaultOutboxSchedule runs the relay every five seconds.
const DefaultOutboxSchedule = "*/5 * * * * *"

// OutboxRelayer is implemented by commands.RelayOutboxCommandHandler.
type OutboxRelayer interface {
	Handle(ctx context.Context, cmd commands.RelayOutboxCommand) (int, error)
}

// RelayMetrics receives the outcome of every run.
type RelayMetrics interface {
	Relayed(n int)
	RelayFailed()
}

// OutboxRelayJob publishes pending order events on a cron schedule.
// A failed run leaves its messages in the outbox for the next run.
type OutboxRelayJob struct {
	relayer  OutboxRelayer
	metrics  RelayMetrics
	schedule string
	cmd      commands.RelayOutboxCommand
	timeout  time.Duration
	cron     *cron.Cron
	logger   *slog.Logger
}

func NewOutboxRelayJob(
	relayer OutboxRelayer,
	metrics RelayMetrics,
	schedule string,
	cmd commands.RelayOutboxCommand,
	logger *slog.Logger,
) *OutboxRelayJob {
	if schedule == "" {
		schedule = DefaultOutboxSchedule
	}
	return &OutboxRelayJob{
		relayer:  relayer,
		metrics:  metrics,
		schedule: schedule,
		cmd:      cmd,
		timeout:  30 * time.Second,
		cron:     cron.New(cron.WithSeconds(), cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger))),
		logger:   logger.With("component", "outbox_relay_job"),
	}
}

func (j *OutboxRelayJob) Name() string {
	return "outbox relay"
}

// Start registers the run and starts the scheduler.
func (j *OutboxRelayJob) Start() error {
	if _, err := j.cron.AddFunc(j.schedule, func() { j.RunOnce(context.Background()) }); err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Outbox relay job started", "schedule", j.schedule)
	return nil
}

// RunOnce relays one batch and reports how many messages went out.
func (j *OutboxRelayJob) RunOnce(ctx context.Context) int {
	ctx, cancel := context.WithTimeout(ctx, j.timeout)
	defer cancel()

	n, err := j.relayer.Handle(ctx, j.cmd)
	if err != nil {
		j.metrics.RelayFailed()
		j.logger.ErrorContext(ctx, "Outbox relay failed", "error", err)
		return 0
	}

	j.metrics.Relayed(n)
	if n > 0 {
		j.logger.DebugContext(ctx, "Outbox messages relayed", "count", n)
	}
	return n
}

// Stop waits for a running relay to finish.
func (j *OutboxRelayJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Outbox relay job stopped")
}
