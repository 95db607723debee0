package inmemory

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"lifeTracker/internal/models/problem"
	repo "lifeTracker/internal/repository"
)

type ProblemStorage struct {
	storage map[uuid.UUID]*problem.Problem
	mtx     *sync.RWMutex
	ids     []uuid.UUID
}

func NewProblemStorage() *ProblemStorage {
	return &ProblemStorage{
		storage: make(map[uuid.UUID]*problem.Problem),
		mtx:     &sync.RWMutex{},
		ids:     []uuid.UUID{},
	}
}

func (s *ProblemStorage) Create(ctx context.Context, problemToCreate *problem.Problem) error {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	if problemToCreate.CreatedAt.IsZero() {
		problemToCreate.CreatedAt = time.Now()
	}

	s.storage[problemToCreate.ID] = problemToCreate
	s.ids = append(s.ids, problemToCreate.ID)
	return nil
}

func (s *ProblemStorage) Update(ctx context.Context, problemToUpdate *problem.Problem) error {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	if _, ok := s.storage[problemToUpdate.ID]; !ok {
		return repo.ErrNotFound
	}

	now := time.Now()
	problemToUpdate.UpdatedAt = &now
	s.storage[problemToUpdate.ID] = problemToUpdate
	return nil
}

func (s *ProblemStorage) GetByID(ctx context.Context, userID, id uuid.UUID) (*problem.Problem, error) {
	s.mtx.RLock()
	defer s.mtx.RUnlock()

	problemToGet, ok := s.storage[id]
	if !ok || problemToGet.UserID != userID {
		return nil, repo.ErrNotFound
	}
	return problemToGet, nil
}

func (s *ProblemStorage) ListByUser(ctx context.Context, userID uuid.UUID) ([]*problem.Problem, error) {
	s.mtx.RLock()
	defer s.mtx.RUnlock()

	res := []*problem.Problem{}
	for _, id := range s.ids {
		p := s.storage[id]
		if p.UserID != userID {
			continue
		}
		res = append(res, p)
	}
	return res, nil
}
