package blast

import (
	"context"
	"fmt"
	"time"

	"github.com/jvilar-bio/blastq/pkg/models"
)

// DefaultPollInterval is the cadence the service asks polling clients to
// respect.
const DefaultPollInterval = 5 * time.Second

// PollConfig controls the wait loop between submission and retrieval.
type PollConfig struct {
	// Interval between consecutive status queries.
	Interval time.Duration
	// MaxWait bounds the total time spent waiting on the job. Zero keeps
	// the legacy behavior of waiting as long as the service keeps
	// answering WAITING.
	MaxWait time.Duration
}

// DefaultPollConfig returns the polling cadence the service documents,
// with no waiting ceiling.
func DefaultPollConfig() PollConfig {
	return PollConfig{Interval: DefaultPollInterval}
}

// InitialDelay returns how long to wait before the first status query:
// half the service's completion estimate.
func InitialDelay(rtoeSeconds int) time.Duration {
	return time.Duration(rtoeSeconds) * time.Second / 2
}

// WaitReady blocks until the job reaches READY. The loop first sleeps half
// the service's completion estimate, then probes on the configured
// interval. WAITING answers keep the loop going; FAILED, UNKNOWN and
// unrecognized bodies stop it with a StatusError.
func (c *Client) WaitReady(ctx context.Context, handle models.JobHandle, cfg PollConfig) error {
	if cfg.Interval <= 0 {
		cfg.Interval = DefaultPollInterval
	}

	var deadline time.Time
	if cfg.MaxWait > 0 {
		deadline = time.Now().Add(cfg.MaxWait)
	}

	c.logger.Info(fmt.Sprintf("Polling job %s, estimated completion in %d sec", handle.RID, handle.RTOE))

	if err := sleep(ctx, capToDeadline(InitialDelay(handle.RTOE), deadline)); err != nil {
		return err
	}

	for {
		if err := sleep(ctx, capToDeadline(cfg.Interval, deadline)); err != nil {
			return err
		}

		status, err := c.CheckStatus(ctx, handle.RID)
		if err != nil {
			return err
		}

		switch status {
		case models.JobStatusWaiting:
			c.logger.Info("Searching...")
		case models.JobStatusReady:
			c.logger.Info("Search complete, retrieving results...")
			return nil
		default:
			return &StatusError{RID: handle.RID, Status: status}
		}

		if !deadline.IsZero() && !time.Now().Before(deadline) {
			return fmt.Errorf("gave up on job %s after %s", handle.RID, cfg.MaxWait)
		}
	}
}

// capToDeadline shortens a wait so the last status probe lands on the
// deadline instead of overshooting it.
func capToDeadline(d time.Duration, deadline time.Time) time.Duration {
	if deadline.IsZero() {
		return d
	}
	if remaining := time.Until(deadline); remaining < d {
		return remaining
	}
	return d
}

// sleep blocks for the full duration unless the context ends first.
func sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-time.After(d):
		return nil
	}
}
