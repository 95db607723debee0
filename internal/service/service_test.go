package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"lifeTracker/internal/logger"
	"lifeTracker/internal/models/task"
	"lifeTracker/internal/priority"
	"lifeTracker/internal/repository"
	"lifeTracker/internal/service"
)

func TestMain(m *testing.M) {
	logger.Init(true)
	m.Run()
}

// MockTaskRepository mocks the task repository.
type MockTaskRepository struct {
	mock.Mock
}

func (m *MockTaskRepository) HealthCheck(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockTaskRepository) Create(ctx context.Context, t *task.Task) error {
	args := m.Called(ctx, t)
	return args.Error(0)
}

func (m *MockTaskRepository) Update(ctx context.Context, t *task.Task) error {
	args := m.Called(ctx, t)
	return args.Error(0)
}

func (m *MockTaskRepository) GetByID(ctx context.Context, userID, id uuid.UUID) (*task.Task, error) {
	args := m.Called(ctx, userID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*task.Task), args.Error(1)
}

func (m *MockTaskRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]*task.Task, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*task.Task), args.Error(1)
}

func (m *MockTaskRepository) ListAll(ctx context.Context, offset, limit int) ([]*task.Task, error) {
	args := m.Called(ctx, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*task.Task), args.Error(1)
}

func (m *MockTaskRepository) DeleteSoft(ctx context.Context, t *task.Task) error {
	args := m.Called(ctx, t)
	return args.Error(0)
}

var _ repository.TaskRepository = (*MockTaskRepository)(nil)

func newService(repo repository.TaskRepository) service.TaskService {
	return service.NewTaskService(repo, priority.DefaultPolicy())
}

// TestTaskService_CreateTask_DerivesFields: the write seam must fill
// score, quadrant and the high-impact flag before the repo sees the task.
func TestTaskService_CreateTask_DerivesFields(t *testing.T) {
	mockRepo := new(MockTaskRepository)
	mockRepo.On("Create", mock.Anything, mock.Anything).Return(nil)

	svc := newService(mockRepo)
	userID := uuid.New()

	created, err := svc.CreateTask(context.Background(), userID, service.CreateTaskInput{
		Title:    "prep system design round",
		LifeArea: task.AreaPlacementPrep,
		Impact:   9,
		Urgency:  2,
		Effort:   3,
	})
	require.NoError(t, err)

	assert.Equal(t, userID, created.UserID)
	assert.InDelta(t, 19.5, created.PriorityScore, 1e-9)
	assert.Equal(t, task.QuadrantSchedule, created.Quadrant)
	assert.True(t, created.IsHighImpact)
	assert.Equal(t, task.StatusTodo, created.Status)
	assert.Nil(t, created.CompletedAt)

	mockRepo.AssertExpectations(t)
}

// Omitted ratings default to the midpoint 5.
func TestTaskService_CreateTask_DefaultRatings(t *testing.T) {
	mockRepo := new(MockTaskRepository)
	mockRepo.On("Create", mock.Anything, mock.Anything).Return(nil)

	svc := newService(mockRepo)

	created, err := svc.CreateTask(context.Background(), uuid.New(), service.CreateTaskInput{
		Title:    "untitled ratings",
		LifeArea: task.AreaPersonal,
	})
	require.NoError(t, err)

	assert.Equal(t, 5, created.Impact)
	assert.Equal(t, 5, created.Urgency)
	assert.Equal(t, 5, created.Effort)
	assert.Equal(t, task.QuadrantEliminate, created.Quadrant)
	assert.False(t, created.IsHighImpact)
}

func TestTaskService_CreateTask_Validation(t *testing.T) {
	tests := []struct {
		name  string
		input service.CreateTaskInput
	}{
		{
			name:  "empty title",
			input: service.CreateTaskInput{LifeArea: task.AreaHealth, Impact: 5, Urgency: 5, Effort: 5},
		},
		{
			name:  "unknown life area",
			input: service.CreateTaskInput{Title: "x", LifeArea: "chores", Impact: 5, Urgency: 5, Effort: 5},
		},
		{
			name:  "impact out of range",
			input: service.CreateTaskInput{Title: "x", LifeArea: task.AreaHealth, Impact: 11, Urgency: 5, Effort: 5},
		},
		{
			name:  "negative urgency",
			input: service.CreateTaskInput{Title: "x", LifeArea: task.AreaHealth, Impact: 5, Urgency: -1, Effort: 5},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockTaskRepository)
			svc := newService(mockRepo)

			_, err := svc.CreateTask(context.Background(), uuid.New(), tt.input)
			require.Error(t, err)

			var businessErr *service.BusinessError
			require.True(t, errors.As(err, &businessErr))
			assert.Equal(t, "VALIDATION_ERROR", businessErr.Code)

			mockRepo.AssertNotCalled(t, "Create")
		})
	}
}

func storedTask(userID uuid.UUID) *task.Task {
	score, _ := priority.Score(5, 5, 5)
	return &task.Task{
		ID:            uuid.New(),
		UserID:        userID,
		Title:         "stored",
		LifeArea:      task.AreaLearning,
		Impact:        5,
		Urgency:       5,
		Effort:        5,
		PriorityScore: score,
		Quadrant:      task.QuadrantEliminate,
		Status:        task.StatusTodo,
		CreatedAt:     time.Now(),
	}
}

// TestTaskService_UpdateTask_Recomputes: touching a rating re-runs the
// scoring functions before persisting.
func TestTaskService_UpdateTask_Recomputes(t *testing.T) {
	userID := uuid.New()
	stored := storedTask(userID)

	mockRepo := new(MockTaskRepository)
	mockRepo.On("GetByID", mock.Anything, userID, stored.ID).Return(stored, nil)
	mockRepo.On("Update", mock.Anything, mock.Anything).Return(nil)

	svc := newService(mockRepo)

	updated, err := svc.UpdateTask(context.Background(), userID, stored.ID,
		task.WithImpact(10), task.WithUrgency(9), task.WithEffort(1))
	require.NoError(t, err)

	assert.InDelta(t, 33.0, updated.PriorityScore, 1e-9)
	assert.Equal(t, task.QuadrantDo, updated.Quadrant)
	assert.True(t, updated.IsHighImpact)

	mockRepo.AssertExpectations(t)
}

func TestTaskService_UpdateTask_RejectsBadRating(t *testing.T) {
	userID := uuid.New()
	stored := storedTask(userID)

	mockRepo := new(MockTaskRepository)
	mockRepo.On("GetByID", mock.Anything, userID, stored.ID).Return(stored, nil)

	svc := newService(mockRepo)

	_, err := svc.UpdateTask(context.Background(), userID, stored.ID, task.WithEffort(0))
	require.Error(t, err)

	var businessErr *service.BusinessError
	require.True(t, errors.As(err, &businessErr))
	assert.Equal(t, "VALIDATION_ERROR", businessErr.Code)

	mockRepo.AssertNotCalled(t, "Update")
}

// Completing a task stamps completed_at; leaving completed clears it.
func TestTaskService_CompletionStamping(t *testing.T) {
	userID := uuid.New()
	stored := storedTask(userID)

	mockRepo := new(MockTaskRepository)
	mockRepo.On("GetByID", mock.Anything, userID, stored.ID).Return(stored, nil)
	mockRepo.On("Update", mock.Anything, mock.Anything).Return(nil)

	svc := newService(mockRepo)

	completed, err := svc.CompleteTask(context.Background(), userID, stored.ID)
	require.NoError(t, err)
	require.NotNil(t, completed.CompletedAt)
	assert.Equal(t, task.StatusCompleted, completed.Status)

	reopened, err := svc.UpdateTask(context.Background(), userID, stored.ID, task.WithStatus(task.StatusInProgress))
	require.NoError(t, err)
	assert.Nil(t, reopened.CompletedAt)
}

func TestTaskService_GetTaskByID_NotFound(t *testing.T) {
	userID := uuid.New()
	id := uuid.New()

	mockRepo := new(MockTaskRepository)
	mockRepo.On("GetByID", mock.Anything, userID, id).Return(nil, repository.ErrNotFound)

	svc := newService(mockRepo)

	_, err := svc.GetTaskByID(context.Background(), userID, id)
	require.Error(t, err)

	var businessErr *service.BusinessError
	require.True(t, errors.As(err, &businessErr))
	assert.Equal(t, "NOT_FOUND", businessErr.Code)
}

func TestTaskService_UpdateTask_VersionConflict(t *testing.T) {
	userID := uuid.New()
	stored := storedTask(userID)

	mockRepo := new(MockTaskRepository)
	mockRepo.On("GetByID", mock.Anything, userID, stored.ID).Return(stored, nil)
	mockRepo.On("Update", mock.Anything, mock.Anything).Return(repository.ErrVersionConflict)

	svc := newService(mockRepo)

	_, err := svc.UpdateTask(context.Background(), userID, stored.ID, task.WithTitle("renamed"))
	require.Error(t, err)

	var businessErr *service.BusinessError
	require.True(t, errors.As(err, &businessErr))
	assert.Equal(t, "VERSION_CONFLICT", businessErr.Code)
}

func TestTaskService_ListTasks_RanksAndFilters(t *testing.T) {
	userID := uuid.New()

	low := storedTask(userID)
	high := storedTask(userID)
	high.Impact, high.Urgency, high.Effort = 10, 9, 1
	high.PriorityScore, _ = priority.Score(10, 9, 1)

	mockRepo := new(MockTaskRepository)
	mockRepo.On("ListByUser", mock.Anything, userID).Return([]*task.Task{low, high}, nil)

	svc := newService(mockRepo)

	ranked, err := svc.ListTasks(context.Background(), userID, priority.Filter{})
	require.NoError(t, err)
	require.Len(t, ranked, 2)
	assert.Equal(t, high.ID, ranked[0].ID)
}

func TestTaskService_ListTasks_UnknownSortKey(t *testing.T) {
	userID := uuid.New()

	mockRepo := new(MockTaskRepository)
	mockRepo.On("ListByUser", mock.Anything, userID).Return([]*task.Task{}, nil)

	svc := newService(mockRepo)

	_, err := svc.ListTasks(context.Background(), userID, priority.Filter{SortBy: "magic"})
	require.Error(t, err)

	var businessErr *service.BusinessError
	require.True(t, errors.As(err, &businessErr))
	assert.Equal(t, "VALIDATION_ERROR", businessErr.Code)
}

// TodayFocus returns at most three open tasks, best score first.
func TestTaskService_TodayFocus(t *testing.T) {
	userID := uuid.New()

	tasks := []*task.Task{}
	for _, impact := range []int{3, 9, 6, 8, 2} {
		tt := storedTask(userID)
		tt.Impact = impact
		tt.PriorityScore, _ = priority.Score(impact, 5, 5)
		tasks = append(tasks, tt)
	}
	done := storedTask(userID)
	done.Status = task.StatusCompleted
	done.Impact = 10
	done.PriorityScore, _ = priority.Score(10, 5, 5)
	tasks = append(tasks, done)

	mockRepo := new(MockTaskRepository)
	mockRepo.On("ListByUser", mock.Anything, userID).Return(tasks, nil)

	svc := newService(mockRepo)

	focus, err := svc.TodayFocus(context.Background(), userID)
	require.NoError(t, err)
	require.Len(t, focus, 3)

	assert.Equal(t, 9, focus[0].Impact)
	assert.Equal(t, 8, focus[1].Impact)
	assert.Equal(t, 6, focus[2].Impact)
}

func TestTaskService_DeleteTask(t *testing.T) {
	userID := uuid.New()
	stored := storedTask(userID)

	mockRepo := new(MockTaskRepository)
	mockRepo.On("GetByID", mock.Anything, userID, stored.ID).Return(stored, nil)
	mockRepo.On("DeleteSoft", mock.Anything, stored).Return(nil)

	svc := newService(mockRepo)

	err := svc.DeleteTask(context.Background(), userID, stored.ID)
	require.NoError(t, err)
	mockRepo.AssertExpectations(t)
}
