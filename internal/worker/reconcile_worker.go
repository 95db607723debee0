package worker

import (
	"context"
	"math"
	"time"

	"go.uber.org/zap"

	"lifeTracker/internal/logger"
	"lifeTracker/internal/priority"
	rep "lifeTracker/internal/repository"
)

const defaultInterval = 5 * time.Minute
const defaultBatchSize = 100

// scoreEpsilon bounds the float comparison when checking stored scores.
const scoreEpsilon = 1e-9

// ReconcileWorker enforces the derived-field invariant in the
// background: stored priority_score/quadrant/is_high_impact must always
// equal what the pure functions produce from impact/urgency/effort.
// The write path already guarantees this; the worker repairs any drift
// that slips in anyway (manual edits, partial migrations).
type ReconcileWorker struct {
	repo      rep.TaskRepository
	policy    priority.Policy
	interval  time.Duration
	batchSize int
}

func NewReconcileWorker(repo rep.TaskRepository, policy priority.Policy, interval time.Duration, batchSize int) *ReconcileWorker {
	if interval <= 0 {
		interval = defaultInterval
	}
	if batchSize <= 0 {
		batchSize = defaultBatchSize
	}
	return &ReconcileWorker{
		repo:      repo,
		policy:    policy,
		interval:  interval,
		batchSize: batchSize,
	}
}

func (w *ReconcileWorker) Start(ctx context.Context) {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			logger.Info("Worker: derived-field reconcile started", zap.Time("started_at", time.Now()))
			w.Check(ctx)
		case <-ctx.Done():
			logger.Info("Worker: derived-field reconcile stopping")
			return
		}
	}
}

func (w *ReconcileWorker) Check(ctx context.Context) {
	start := time.Now()

	checked := 0
	repaired := 0

	for offset := 0; ; offset += w.batchSize {
		tasks, err := w.repo.ListAll(ctx, offset, w.batchSize)
		if err != nil {
			logger.Warn("Worker: failed to list tasks", zap.Error(err))
			return
		}
		if len(tasks) == 0 {
			break
		}

		for _, t := range tasks {
			checked++

			score, err := priority.Score(t.Impact, t.Urgency, t.Effort)
			if err != nil {
				// A stored rating outside [1,10] cannot be repaired here;
				// it needs a human.
				logger.Warn("Worker: task has invalid ratings",
					zap.String("task_id", t.ID.String()),
					zap.Error(err))
				continue
			}
			quadrant, err := w.policy.Classify(t.Impact, t.Urgency)
			if err != nil {
				continue
			}
			highImpact, err := w.policy.IsHighImpact(t.Impact, t.Effort)
			if err != nil {
				continue
			}

			if math.Abs(t.PriorityScore-score) <= scoreEpsilon &&
				t.Quadrant == quadrant &&
				t.IsHighImpact == highImpact {
				continue
			}

			t.PriorityScore = score
			t.Quadrant = quadrant
			t.IsHighImpact = highImpact

			if err := w.repo.Update(ctx, t); err != nil {
				logger.Warn("Worker: failed to repair task",
					zap.String("task_id", t.ID.String()),
					zap.Error(err))
				continue
			}
			repaired++
		}

		if len(tasks) < w.batchSize {
			break
		}
	}

	logger.Info("Worker: derived-field reconcile finished",
		zap.Duration("ms", time.Since(start)),
		zap.Int("checked", checked),
		zap.Int("repaired", repaired),
	)
}
