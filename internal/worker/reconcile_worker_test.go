package worker_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lifeTracker/internal/logger"
	"lifeTracker/internal/models/task"
	"lifeTracker/internal/priority"
	"lifeTracker/internal/repository/task/inmemory"
	"lifeTracker/internal/worker"
)

func TestMain(m *testing.M) {
	logger.Init(true)
	m.Run()
}

func storeTask(t *testing.T, storage *inmemory.TaskStorage, impact, urgency, effort int) *task.Task {
	t.Helper()

	score, err := priority.Score(impact, urgency, effort)
	require.NoError(t, err)
	quadrant, err := priority.Classify(impact, urgency)
	require.NoError(t, err)
	highImpact, err := priority.IsHighImpact(impact, effort)
	require.NoError(t, err)

	created := &task.Task{
		ID:            uuid.New(),
		UserID:        uuid.New(),
		Title:         "stored",
		LifeArea:      task.AreaLearning,
		Impact:        impact,
		Urgency:       urgency,
		Effort:        effort,
		PriorityScore: score,
		Quadrant:      quadrant,
		IsHighImpact:  highImpact,
		Status:        task.StatusTodo,
	}
	require.NoError(t, storage.Create(context.Background(), created))
	return created
}

func TestReconcileWorker_RepairsDrift(t *testing.T) {
	storage := inmemory.NewTaskStorage()

	healthy := storeTask(t, storage, 5, 5, 5)

	drifted := storeTask(t, storage, 9, 9, 1)
	drifted.PriorityScore = 1.0
	drifted.Quadrant = task.QuadrantEliminate
	drifted.IsHighImpact = false

	w := worker.NewReconcileWorker(storage, priority.DefaultPolicy(), 0, 2)
	w.Check(context.Background())

	got, err := storage.GetByID(context.Background(), drifted.UserID, drifted.ID)
	require.NoError(t, err)
	assert.InDelta(t, 31.0, got.PriorityScore, 1e-9)
	assert.Equal(t, task.QuadrantDo, got.Quadrant)
	assert.True(t, got.IsHighImpact)
	assert.Equal(t, 1, got.Version)

	untouched, err := storage.GetByID(context.Background(), healthy.UserID, healthy.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, untouched.Version)
}

// Tasks whose stored ratings fall outside the valid range are skipped,
// not clobbered.
func TestReconcileWorker_SkipsInvalidRatings(t *testing.T) {
	storage := inmemory.NewTaskStorage()

	broken := storeTask(t, storage, 5, 5, 5)
	broken.Impact = 42

	w := worker.NewReconcileWorker(storage, priority.DefaultPolicy(), 0, 10)
	w.Check(context.Background())

	got, err := storage.GetByID(context.Background(), broken.UserID, broken.ID)
	require.NoError(t, err)
	assert.Equal(t, 42, got.Impact)
	assert.Equal(t, 0, got.Version)
}

func TestReconcileWorker_Empty(t *testing.T) {
	storage := inmemory.NewTaskStorage()

	w := worker.NewReconcileWorker(storage, priority.DefaultPolicy(), 0, 10)
	w.Check(context.Background())
}
