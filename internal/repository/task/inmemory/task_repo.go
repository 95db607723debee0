package inmemory

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"lifeTracker/internal/models/task"
	repo "lifeTracker/internal/repository"
)

// TaskStorage is the in-memory repository: a map guarded by a RWMutex
// plus an insertion-order id slice so listings are stable.
type TaskStorage struct {
	storage map[uuid.UUID]*task.Task
	mtx     *sync.RWMutex
	ids     []uuid.UUID
}

func NewTaskStorage() *TaskStorage {
	return &TaskStorage{
		storage: make(map[uuid.UUID]*task.Task),
		mtx:     &sync.RWMutex{},
		ids:     []uuid.UUID{},
	}
}

func (s *TaskStorage) HealthCheck(ctx context.Context) error {
	return nil
}

func (s *TaskStorage) Create(ctx context.Context, taskToCreate *task.Task) error {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	if taskToCreate.CreatedAt.IsZero() {
		taskToCreate.CreatedAt = time.Now()
	}

	s.storage[taskToCreate.ID] = taskToCreate
	s.ids = append(s.ids, taskToCreate.ID)
	return nil
}

func (s *TaskStorage) Update(ctx context.Context, taskToUpdate *task.Task) error {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	existing, ok := s.storage[taskToUpdate.ID]
	if !ok {
		return repo.ErrNotFound
	}
	if existing.Version != taskToUpdate.Version {
		return repo.ErrVersionConflict
	}

	now := time.Now()
	taskToUpdate.UpdatedAt = &now
	taskToUpdate.Version++
	s.storage[taskToUpdate.ID] = taskToUpdate

	return nil
}

func (s *TaskStorage) GetByID(ctx context.Context, userID, id uuid.UUID) (*task.Task, error) {
	s.mtx.RLock()
	defer s.mtx.RUnlock()

	taskToGet, ok := s.storage[id]
	if !ok || taskToGet.UserID != userID || taskToGet.DeletedAt != nil {
		return nil, repo.ErrNotFound
	}
	return taskToGet, nil
}

func (s *TaskStorage) ListByUser(ctx context.Context, userID uuid.UUID) ([]*task.Task, error) {
	s.mtx.RLock()
	defer s.mtx.RUnlock()

	res := []*task.Task{}
	for _, id := range s.ids {
		t := s.storage[id]
		if t.UserID != userID || t.DeletedAt != nil {
			continue
		}
		res = append(res, t)
	}
	return res, nil
}

func (s *TaskStorage) ListAll(ctx context.Context, offset, limit int) ([]*task.Task, error) {
	s.mtx.RLock()
	defer s.mtx.RUnlock()

	res := []*task.Task{}
	skipped := 0
	for _, id := range s.ids {
		t := s.storage[id]
		if t.DeletedAt != nil {
			continue
		}
		if skipped < offset {
			skipped++
			continue
		}
		if len(res) >= limit {
			break
		}
		res = append(res, t)
	}
	return res, nil
}

// DeleteSoft marks the task deleted; reads skip it afterwards.
func (s *TaskStorage) DeleteSoft(ctx context.Context, taskToDelete *task.Task) error {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	existing, ok := s.storage[taskToDelete.ID]
	if !ok {
		return repo.ErrNotFound
	}

	now := time.Now()
	existing.UpdatedAt = &now
	existing.DeletedAt = &now

	return nil
}
