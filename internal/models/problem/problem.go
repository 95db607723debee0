package problem

import (
	"time"

	"github.com/google/uuid"

	"lifeTracker/internal/models/task"
)

type Problem struct {
	ID          uuid.UUID     `json:"id" db:"id"`
	UserID      uuid.UUID     `json:"user_id" db:"user_id"`
	Title       string        `json:"title" db:"title"`
	Description string        `json:"description" db:"description"`
	LifeArea    task.LifeArea `json:"life_area" db:"life_area"`
	Priority    Priority      `json:"priority" db:"priority"`
	Status      Status        `json:"status" db:"status"`
	HasSolution bool          `json:"has_solution" db:"has_solution"`
	Solution    string        `json:"solution,omitempty" db:"solution"`
	CreatedAt   time.Time     `json:"created_at" db:"created_at"`
	UpdatedAt   *time.Time    `json:"updated_at,omitempty" db:"updated_at"`
}

type Status string
type Priority string

const StatusOpen Status = "open"
const StatusInProgress Status = "in-progress"
const StatusResolved Status = "resolved"

const PriorityLow Priority = "low"
const PriorityMedium Priority = "medium"
const PriorityHigh Priority = "high"
const PriorityCritical Priority = "critical"

func (s Status) Valid() bool {
	switch s {
	case StatusOpen, StatusInProgress, StatusResolved:
		return true
	}
	return false
}

func (p Priority) Valid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh, PriorityCritical:
		return true
	}
	return false
}

// Rank orders priorities for sorting, critical highest.
func (p Priority) Rank() int {
	switch p {
	case PriorityCritical:
		return 4
	case PriorityHigh:
		return 3
	case PriorityMedium:
		return 2
	case PriorityLow:
		return 1
	}
	return 0
}

type ProblemOption func(*Problem)

func WithTitle(title string) ProblemOption {
	return func(p *Problem) {
		p.Title = title
	}
}

func WithDescription(description string) ProblemOption {
	return func(p *Problem) {
		p.Description = description
	}
}

func WithStatus(status Status) ProblemOption {
	return func(p *Problem) {
		p.Status = status
	}
}

func WithPriority(priority Priority) ProblemOption {
	return func(p *Problem) {
		p.Priority = priority
	}
}

func WithSolution(solution string) ProblemOption {
	return func(p *Problem) {
		p.Solution = solution
		p.HasSolution = solution != ""
	}
}
