package inmemory

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"lifeTracker/internal/models/goal"
	repo "lifeTracker/internal/repository"
)

type GoalStorage struct {
	storage map[uuid.UUID]*goal.Goal
	mtx     *sync.RWMutex
	ids     []uuid.UUID
}

func NewGoalStorage() *GoalStorage {
	return &GoalStorage{
		storage: make(map[uuid.UUID]*goal.Goal),
		mtx:     &sync.RWMutex{},
		ids:     []uuid.UUID{},
	}
}

func (s *GoalStorage) Create(ctx context.Context, goalToCreate *goal.Goal) error {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	if goalToCreate.CreatedAt.IsZero() {
		goalToCreate.CreatedAt = time.Now()
	}

	s.storage[goalToCreate.ID] = goalToCreate
	s.ids = append(s.ids, goalToCreate.ID)
	return nil
}

func (s *GoalStorage) Update(ctx context.Context, goalToUpdate *goal.Goal) error {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	if _, ok := s.storage[goalToUpdate.ID]; !ok {
		return repo.ErrNotFound
	}

	now := time.Now()
	goalToUpdate.UpdatedAt = &now
	s.storage[goalToUpdate.ID] = goalToUpdate
	return nil
}

func (s *GoalStorage) GetByID(ctx context.Context, userID, id uuid.UUID) (*goal.Goal, error) {
	s.mtx.RLock()
	defer s.mtx.RUnlock()

	goalToGet, ok := s.storage[id]
	if !ok || goalToGet.UserID != userID {
		return nil, repo.ErrNotFound
	}
	return goalToGet, nil
}

func (s *GoalStorage) ListByUser(ctx context.Context, userID uuid.UUID) ([]*goal.Goal, error) {
	s.mtx.RLock()
	defer s.mtx.RUnlock()

	res := []*goal.Goal{}
	for _, id := range s.ids {
		g := s.storage[id]
		if g.UserID != userID {
			continue
		}
		res = append(res, g)
	}
	return res, nil
}

func (s *GoalStorage) Delete(ctx context.Context, userID, id uuid.UUID) error {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	g, ok := s.storage[id]
	if !ok || g.UserID != userID {
		return repo.ErrNotFound
	}

	delete(s.storage, id)
	for ind, val := range s.ids {
		if val == id {
			s.ids = append(s.ids[:ind], s.ids[ind+1:]...)
			break
		}
	}
	return nil
}
