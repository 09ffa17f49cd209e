package scheduler

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/sokochat/sokochat/ent"
	"github.com/sokochat/sokochat/ent/scheduledmessage"
)

// orphanState tracks orphan recovery metrics (thread-safe).
type orphanState struct {
	mu               sync.Mutex
	lastOrphanScan   time.Time
	orphansRecovered int
}

// runOrphanRecovery periodically releases claims abandoned by crashed pods.
// All pods run this independently — releasing a claim is idempotent.
func (p *WorkerPool) runOrphanRecovery(ctx context.Context) {
	ticker := time.NewTicker(p.config.OrphanDetectionInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-p.stopCh:
			return
		case <-ticker.C:
			if err := p.recoverOrphanedClaims(ctx); err != nil {
				slog.Error("Orphan claim recovery failed", "error", err)
			}
		}
	}
}

// recoverOrphanedClaims finds pending rows whose claim has gone stale and
// releases them back to the queue. A row claimed by a live worker reaches a
// terminal status well inside the threshold.
func (p *WorkerPool) recoverOrphanedClaims(ctx context.Context) error {
	threshold := time.Now().Add(-p.config.OrphanThreshold)

	released, err := p.client.ScheduledMessage.Update().
		Where(
			scheduledmessage.StatusEQ(scheduledmessage.StatusPending),
			scheduledmessage.ClaimedAtNotNil(),
			scheduledmessage.ClaimedAtLT(threshold),
		).
		ClearClaimedBy().
		ClearClaimedAt().
		Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to release orphaned claims: %w", err)
	}

	p.orphans.mu.Lock()
	p.orphans.lastOrphanScan = time.Now()
	p.orphans.orphansRecovered += released
	p.orphans.mu.Unlock()

	if released > 0 {
		slog.Warn("Released orphaned scheduled-message claims", "count", released)
	}
	return nil
}

// ReleaseStartupClaims releases claims held by this pod from a previous run.
// Called once during startup, before the worker pool begins processing.
func ReleaseStartupClaims(ctx context.Context, client *ent.Client, podID string) error {
	released, err := client.ScheduledMessage.Update().
		Where(
			scheduledmessage.StatusEQ(scheduledmessage.StatusPending),
			scheduledmessage.ClaimedBy(podID),
		).
		ClearClaimedBy().
		ClearClaimedAt().
		Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to release startup claims: %w", err)
	}
	if released > 0 {
		slog.Warn("Released claims from previous run", "pod_id", podID, "count", released)
	}
	return nil
}
