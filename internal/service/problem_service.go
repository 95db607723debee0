package service

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"

	"lifeTracker/internal/models/problem"
	"lifeTracker/internal/models/task"
	rep "lifeTracker/internal/repository"
)

type ProblemService struct {
	repo rep.ProblemRepository
}

func NewProblemService(repo rep.ProblemRepository) ProblemService {
	return ProblemService{repo: repo}
}

type CreateProblemInput struct {
	Title       string
	Description string
	LifeArea    task.LifeArea
	Priority    problem.Priority
}

func (s *ProblemService) CreateProblem(ctx context.Context, userID uuid.UUID, in CreateProblemInput) (*problem.Problem, error) {
	if in.Title == "" {
		return nil, NewValidationError("title", "must not be empty")
	}
	if !in.LifeArea.Valid() {
		return nil, NewValidationError("life_area", fmt.Sprintf("unknown life area %q", in.LifeArea))
	}

	prio := in.Priority
	if prio == "" {
		prio = problem.PriorityMedium
	}
	if !prio.Valid() {
		return nil, NewValidationError("priority", fmt.Sprintf("unknown priority %q", prio))
	}

	p := &problem.Problem{
		ID:          uuid.New(),
		UserID:      userID,
		Title:       in.Title,
		Description: in.Description,
		LifeArea:    in.LifeArea,
		Priority:    prio,
		Status:      problem.StatusOpen,
		CreatedAt:   time.Now(),
	}

	if err := s.repo.Create(ctx, p); err != nil {
		return nil, fmt.Errorf("creating problem: %w", err)
	}
	return p, nil
}

// ListProblems returns the user's problems, most severe first, then
// most recent.
func (s *ProblemService) ListProblems(ctx context.Context, userID uuid.UUID) ([]*problem.Problem, error) {
	problems, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("listing problems: %w", err)
	}

	sort.SliceStable(problems, func(i, j int) bool {
		if problems[i].Priority.Rank() != problems[j].Priority.Rank() {
			return problems[i].Priority.Rank() > problems[j].Priority.Rank()
		}
		return problems[i].CreatedAt.After(problems[j].CreatedAt)
	})
	return problems, nil
}

func (s *ProblemService) UpdateProblem(ctx context.Context, userID, id uuid.UUID, options ...problem.ProblemOption) (*problem.Problem, error) {
	p, err := s.repo.GetByID(ctx, userID, id)
	if err != nil {
		if errors.Is(err, rep.ErrNotFound) {
			return nil, NewNotFound("problem", id.String())
		}
		return nil, fmt.Errorf("getting problem: %w", err)
	}

	for _, opt := range options {
		opt(p)
	}

	if !p.Status.Valid() {
		return nil, NewValidationError("status", fmt.Sprintf("unknown status %q", p.Status))
	}
	if !p.Priority.Valid() {
		return nil, NewValidationError("priority", fmt.Sprintf("unknown priority %q", p.Priority))
	}

	if err := s.repo.Update(ctx, p); err != nil {
		return nil, fmt.Errorf("updating problem: %w", err)
	}
	return p, nil
}
