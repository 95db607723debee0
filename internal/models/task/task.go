package task

import (
	"time"

	"github.com/google/uuid"
)

type Task struct {
	ID            uuid.UUID  `json:"id" db:"id"`
	UserID        uuid.UUID  `json:"user_id" db:"user_id"`
	Title         string     `json:"title" db:"title"`
	Description   string     `json:"description" db:"description"`
	LifeArea      LifeArea   `json:"life_area" db:"life_area"`
	GoalID        *uuid.UUID `json:"goal_id,omitempty" db:"goal_id"`
	Impact        int        `json:"impact" db:"impact"`
	Urgency       int        `json:"urgency" db:"urgency"`
	Effort        int        `json:"effort" db:"effort"`
	Quadrant      Quadrant   `json:"quadrant" db:"quadrant"`
	IsHighImpact  bool       `json:"is_high_impact" db:"is_high_impact"`
	PriorityScore float64    `json:"priority_score" db:"priority_score"`
	DueDate       *time.Time `json:"due_date,omitempty" db:"due_date"`
	ScheduledFor  *time.Time `json:"scheduled_for,omitempty" db:"scheduled_for"`
	Status        Status     `json:"status" db:"status"`
	CompletedAt   *time.Time `json:"completed_at,omitempty" db:"completed_at"`
	CreatedAt     time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt     *time.Time `json:"updated_at,omitempty" db:"updated_at"`
	Version       int        `json:"version" db:"version"`
	DeletedAt     *time.Time `json:"deleted_at,omitempty" db:"deleted_at"`
}

type Status string
type LifeArea string
type Quadrant string

const StatusTodo Status = "todo"
const StatusInProgress Status = "in-progress"
const StatusCompleted Status = "completed"
const StatusCancelled Status = "cancelled"

const AreaPlacementPrep LifeArea = "placement-prep"
const AreaLearning LifeArea = "learning"
const AreaHealth LifeArea = "health"
const AreaFinance LifeArea = "finance"
const AreaBuyList LifeArea = "buy-list"
const AreaTravel LifeArea = "travel"
const AreaPersonal LifeArea = "personal"

// Eisenhower matrix buckets.
const QuadrantDo Quadrant = "do"
const QuadrantSchedule Quadrant = "schedule"
const QuadrantDelegate Quadrant = "delegate"
const QuadrantEliminate Quadrant = "eliminate"

func (s Status) Valid() bool {
	switch s {
	case StatusTodo, StatusInProgress, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

func (a LifeArea) Valid() bool {
	switch a {
	case AreaPlacementPrep, AreaLearning, AreaHealth, AreaFinance, AreaBuyList, AreaTravel, AreaPersonal:
		return true
	}
	return false
}
