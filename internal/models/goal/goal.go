package goal

import (
	"time"

	"github.com/google/uuid"

	"lifeTracker/internal/models/task"
)

type Goal struct {
	ID                uuid.UUID     `json:"id" db:"id"`
	UserID            uuid.UUID     `json:"user_id" db:"user_id"`
	Title             string        `json:"title" db:"title"`
	Description       string        `json:"description" db:"description"`
	LifeArea          task.LifeArea `json:"life_area" db:"life_area"`
	TargetDate        *time.Time    `json:"target_date,omitempty" db:"target_date"`
	Status            Status        `json:"status" db:"status"`
	Impact            int           `json:"impact" db:"impact"`
	SharedWithPartner bool          `json:"shared_with_partner" db:"shared_with_partner"`
	CreatedAt         time.Time     `json:"created_at" db:"created_at"`
	UpdatedAt         *time.Time    `json:"updated_at,omitempty" db:"updated_at"`
}

type Status string

const StatusActive Status = "active"
const StatusCompleted Status = "completed"
const StatusPaused Status = "paused"

func (s Status) Valid() bool {
	switch s {
	case StatusActive, StatusCompleted, StatusPaused:
		return true
	}
	return false
}

type GoalOption func(*Goal)

func WithTitle(title string) GoalOption {
	return func(g *Goal) {
		g.Title = title
	}
}

func WithDescription(description string) GoalOption {
	return func(g *Goal) {
		g.Description = description
	}
}

func WithLifeArea(area task.LifeArea) GoalOption {
	return func(g *Goal) {
		g.LifeArea = area
	}
}

func WithTargetDate(targetDate *time.Time) GoalOption {
	return func(g *Goal) {
		g.TargetDate = targetDate
	}
}

func WithStatus(status Status) GoalOption {
	return func(g *Goal) {
		g.Status = status
	}
}

func WithImpact(impact int) GoalOption {
	return func(g *Goal) {
		g.Impact = impact
	}
}

func WithSharedWithPartner(shared bool) GoalOption {
	return func(g *Goal) {
		g.SharedWithPartner = shared
	}
}
