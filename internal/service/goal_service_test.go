package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lifeTracker/internal/models/goal"
	"lifeTracker/internal/models/problem"
	"lifeTracker/internal/models/task"
	goalmem "lifeTracker/internal/repository/goal/inmemory"
	problemmem "lifeTracker/internal/repository/problem/inmemory"
	"lifeTracker/internal/service"
)

func TestGoalService_CreateAndList(t *testing.T) {
	svc := service.NewGoalService(goalmem.NewGoalStorage())
	ctx := context.Background()
	userID := uuid.New()

	first, err := svc.CreateGoal(ctx, userID, service.CreateGoalInput{
		Title:    "crack placements",
		LifeArea: task.AreaPlacementPrep,
		Impact:   10,
	})
	require.NoError(t, err)
	assert.Equal(t, goal.StatusActive, first.Status)

	// force distinct createdAt for a deterministic listing order
	first.CreatedAt = first.CreatedAt.Add(-time.Minute)

	second, err := svc.CreateGoal(ctx, userID, service.CreateGoalInput{
		Title:    "read 12 books",
		LifeArea: task.AreaLearning,
	})
	require.NoError(t, err)
	assert.Equal(t, 5, second.Impact)

	listed, err := svc.ListGoals(ctx, userID)
	require.NoError(t, err)
	require.Len(t, listed, 2)
	assert.Equal(t, second.ID, listed[0].ID)
	assert.Equal(t, first.ID, listed[1].ID)
}

func TestGoalService_CreateGoal_Validation(t *testing.T) {
	svc := service.NewGoalService(goalmem.NewGoalStorage())
	ctx := context.Background()

	_, err := svc.CreateGoal(ctx, uuid.New(), service.CreateGoalInput{LifeArea: task.AreaHealth})
	requireBusinessCode(t, err, "VALIDATION_ERROR")

	_, err = svc.CreateGoal(ctx, uuid.New(), service.CreateGoalInput{Title: "x", LifeArea: "chores"})
	requireBusinessCode(t, err, "VALIDATION_ERROR")
}

func TestGoalService_UpdateGoal(t *testing.T) {
	svc := service.NewGoalService(goalmem.NewGoalStorage())
	ctx := context.Background()
	userID := uuid.New()

	created, err := svc.CreateGoal(ctx, userID, service.CreateGoalInput{
		Title:    "run 5k",
		LifeArea: task.AreaHealth,
	})
	require.NoError(t, err)

	updated, err := svc.UpdateGoal(ctx, userID, created.ID, goal.WithStatus(goal.StatusCompleted))
	require.NoError(t, err)
	assert.Equal(t, goal.StatusCompleted, updated.Status)
	require.NotNil(t, updated.UpdatedAt)

	_, err = svc.UpdateGoal(ctx, userID, created.ID, goal.WithStatus("abandoned"))
	requireBusinessCode(t, err, "VALIDATION_ERROR")

	_, err = svc.UpdateGoal(ctx, userID, uuid.New(), goal.WithTitle("ghost"))
	requireBusinessCode(t, err, "NOT_FOUND")
}

func TestGoalService_DeleteGoal(t *testing.T) {
	svc := service.NewGoalService(goalmem.NewGoalStorage())
	ctx := context.Background()
	userID := uuid.New()

	created, err := svc.CreateGoal(ctx, userID, service.CreateGoalInput{
		Title:    "save for trip",
		LifeArea: task.AreaTravel,
	})
	require.NoError(t, err)

	require.NoError(t, svc.DeleteGoal(ctx, userID, created.ID))

	listed, err := svc.ListGoals(ctx, userID)
	require.NoError(t, err)
	assert.Empty(t, listed)

	err = svc.DeleteGoal(ctx, userID, created.ID)
	requireBusinessCode(t, err, "NOT_FOUND")
}

func TestProblemService_CreateAndList(t *testing.T) {
	svc := service.NewProblemService(problemmem.NewProblemStorage())
	ctx := context.Background()
	userID := uuid.New()

	minor, err := svc.CreateProblem(ctx, userID, service.CreateProblemInput{
		Title:    "squeaky chair",
		LifeArea: task.AreaPersonal,
		Priority: problem.PriorityLow,
	})
	require.NoError(t, err)
	assert.Equal(t, problem.StatusOpen, minor.Status)

	critical, err := svc.CreateProblem(ctx, userID, service.CreateProblemInput{
		Title:    "visa expiring",
		LifeArea: task.AreaTravel,
		Priority: problem.PriorityCritical,
	})
	require.NoError(t, err)

	defaulted, err := svc.CreateProblem(ctx, userID, service.CreateProblemInput{
		Title:    "slow laptop",
		LifeArea: task.AreaPersonal,
	})
	require.NoError(t, err)
	assert.Equal(t, problem.PriorityMedium, defaulted.Priority)

	listed, err := svc.ListProblems(ctx, userID)
	require.NoError(t, err)
	require.Len(t, listed, 3)
	assert.Equal(t, critical.ID, listed[0].ID)
	assert.Equal(t, defaulted.ID, listed[1].ID)
	assert.Equal(t, minor.ID, listed[2].ID)
}

func TestProblemService_UpdateProblem_Solution(t *testing.T) {
	svc := service.NewProblemService(problemmem.NewProblemStorage())
	ctx := context.Background()
	userID := uuid.New()

	created, err := svc.CreateProblem(ctx, userID, service.CreateProblemInput{
		Title:    "no gym nearby",
		LifeArea: task.AreaHealth,
		Priority: problem.PriorityHigh,
	})
	require.NoError(t, err)
	assert.False(t, created.HasSolution)

	updated, err := svc.UpdateProblem(ctx, userID, created.ID,
		problem.WithSolution("home workout plan"),
		problem.WithStatus(problem.StatusResolved))
	require.NoError(t, err)
	assert.True(t, updated.HasSolution)
	assert.Equal(t, problem.StatusResolved, updated.Status)

	_, err = svc.UpdateProblem(ctx, userID, created.ID, problem.WithPriority("apocalyptic"))
	requireBusinessCode(t, err, "VALIDATION_ERROR")
}

func requireBusinessCode(t *testing.T, err error, code string) {
	t.Helper()
	require.Error(t, err)

	var businessErr *service.BusinessError
	require.True(t, errors.As(err, &businessErr))
	assert.Equal(t, code, businessErr.Code)
}
