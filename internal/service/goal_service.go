package service

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"

	"lifeTracker/internal/models/goal"
	"lifeTracker/internal/models/task"
	rep "lifeTracker/internal/repository"
)

type GoalService struct {
	repo rep.GoalRepository
}

func NewGoalService(repo rep.GoalRepository) GoalService {
	return GoalService{repo: repo}
}

type CreateGoalInput struct {
	Title             string
	Description       string
	LifeArea          task.LifeArea
	TargetDate        *time.Time
	Impact            int
	SharedWithPartner bool
}

func (s *GoalService) CreateGoal(ctx context.Context, userID uuid.UUID, in CreateGoalInput) (*goal.Goal, error) {
	if in.Title == "" {
		return nil, NewValidationError("title", "must not be empty")
	}
	if !in.LifeArea.Valid() {
		return nil, NewValidationError("life_area", fmt.Sprintf("unknown life area %q", in.LifeArea))
	}

	g := &goal.Goal{
		ID:                uuid.New(),
		UserID:            userID,
		Title:             in.Title,
		Description:       in.Description,
		LifeArea:          in.LifeArea,
		TargetDate:        in.TargetDate,
		Status:            goal.StatusActive,
		Impact:            ratingOrDefault(in.Impact),
		SharedWithPartner: in.SharedWithPartner,
		CreatedAt:         time.Now(),
	}

	if err := s.repo.Create(ctx, g); err != nil {
		return nil, fmt.Errorf("creating goal: %w", err)
	}
	return g, nil
}

// ListGoals returns the user's goals, most recently created first.
func (s *GoalService) ListGoals(ctx context.Context, userID uuid.UUID) ([]*goal.Goal, error) {
	goals, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("listing goals: %w", err)
	}

	sort.SliceStable(goals, func(i, j int) bool {
		return goals[i].CreatedAt.After(goals[j].CreatedAt)
	})
	return goals, nil
}

func (s *GoalService) UpdateGoal(ctx context.Context, userID, id uuid.UUID, options ...goal.GoalOption) (*goal.Goal, error) {
	g, err := s.repo.GetByID(ctx, userID, id)
	if err != nil {
		if errors.Is(err, rep.ErrNotFound) {
			return nil, NewNotFound("goal", id.String())
		}
		return nil, fmt.Errorf("getting goal: %w", err)
	}

	for _, opt := range options {
		opt(g)
	}

	if !g.Status.Valid() {
		return nil, NewValidationError("status", fmt.Sprintf("unknown status %q", g.Status))
	}
	if !g.LifeArea.Valid() {
		return nil, NewValidationError("life_area", fmt.Sprintf("unknown life area %q", g.LifeArea))
	}

	if err := s.repo.Update(ctx, g); err != nil {
		return nil, fmt.Errorf("updating goal: %w", err)
	}
	return g, nil
}

func (s *GoalService) DeleteGoal(ctx context.Context, userID, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, userID, id); err != nil {
		if errors.Is(err, rep.ErrNotFound) {
			return NewNotFound("goal", id.String())
		}
		return fmt.Errorf("deleting goal: %w", err)
	}
	return nil
}
