package dto

import (
	"time"

	"github.com/google/uuid"

	"lifeTracker/internal/models/goal"
	"lifeTracker/internal/models/problem"
	"lifeTracker/internal/models/task"
)

type CreateTaskRequest struct {
	Title        string     `json:"title"`
	Description  string     `json:"description"`
	LifeArea     string     `json:"life_area"`
	GoalID       *uuid.UUID `json:"goal_id,omitempty"`
	Impact       int        `json:"impact"`
	Urgency      int        `json:"urgency"`
	Effort       int        `json:"effort"`
	DueDate      *time.Time `json:"due_date,omitempty"`
	ScheduledFor *time.Time `json:"scheduled_for,omitempty"`
}

type UpdateTaskRequest struct {
	Title        *string     `json:"title,omitempty"`
	Description  *string     `json:"description,omitempty"`
	LifeArea     *string     `json:"life_area,omitempty"`
	GoalID       *uuid.UUID  `json:"goal_id,omitempty"`
	Status       *string     `json:"status,omitempty"`
	Impact       *int        `json:"impact,omitempty"`
	Urgency      *int        `json:"urgency,omitempty"`
	Effort       *int        `json:"effort,omitempty"`
	DueDate      *time.Time  `json:"due_date,omitempty"`
	ScheduledFor *time.Time  `json:"scheduled_for,omitempty"`
}

type TaskResponse struct {
	ID            uuid.UUID  `json:"id"`
	Title         string     `json:"title"`
	Description   string     `json:"description"`
	LifeArea      string     `json:"life_area"`
	GoalID        *uuid.UUID `json:"goal_id,omitempty"`
	Impact        int        `json:"impact"`
	Urgency       int        `json:"urgency"`
	Effort        int        `json:"effort"`
	Quadrant      string     `json:"quadrant"`
	IsHighImpact  bool       `json:"is_high_impact"`
	PriorityScore float64    `json:"priority_score"`
	DueDate       *time.Time `json:"due_date,omitempty"`
	ScheduledFor  *time.Time `json:"scheduled_for,omitempty"`
	Status        string     `json:"status"`
	CompletedAt   *time.Time `json:"completed_at,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     *time.Time `json:"updated_at,omitempty"`
	IsOverdue     bool       `json:"is_overdue"`
}

func FromTask(t *task.Task) TaskResponse {
	return TaskResponse{
		ID:            t.ID,
		Title:         t.Title,
		Description:   t.Description,
		LifeArea:      string(t.LifeArea),
		GoalID:        t.GoalID,
		Impact:        t.Impact,
		Urgency:       t.Urgency,
		Effort:        t.Effort,
		Quadrant:      string(t.Quadrant),
		IsHighImpact:  t.IsHighImpact,
		PriorityScore: t.PriorityScore,
		DueDate:       t.DueDate,
		ScheduledFor:  t.ScheduledFor,
		Status:        string(t.Status),
		CompletedAt:   t.CompletedAt,
		CreatedAt:     t.CreatedAt,
		UpdatedAt:     t.UpdatedAt,
		IsOverdue: t.DueDate != nil &&
			t.Status != task.StatusCompleted &&
			t.Status != task.StatusCancelled &&
			t.DueDate.Before(time.Now()),
	}
}

func FromTaskList(tasks []*task.Task) []TaskResponse {
	result := make([]TaskResponse, len(tasks))
	for i, t := range tasks {
		result[i] = FromTask(t)
	}
	return result
}

type CreateGoalRequest struct {
	Title             string     `json:"title"`
	Description       string     `json:"description"`
	LifeArea          string     `json:"life_area"`
	TargetDate        *time.Time `json:"target_date,omitempty"`
	Impact            int        `json:"impact"`
	SharedWithPartner bool       `json:"shared_with_partner"`
}

type UpdateGoalRequest struct {
	Title             *string    `json:"title,omitempty"`
	Description       *string    `json:"description,omitempty"`
	LifeArea          *string    `json:"life_area,omitempty"`
	TargetDate        *time.Time `json:"target_date,omitempty"`
	Status            *string    `json:"status,omitempty"`
	Impact            *int       `json:"impact,omitempty"`
	SharedWithPartner *bool      `json:"shared_with_partner,omitempty"`
}

type GoalResponse struct {
	ID                uuid.UUID  `json:"id"`
	Title             string     `json:"title"`
	Description       string     `json:"description"`
	LifeArea          string     `json:"life_area"`
	TargetDate        *time.Time `json:"target_date,omitempty"`
	Status            string     `json:"status"`
	Impact            int        `json:"impact"`
	SharedWithPartner bool       `json:"shared_with_partner"`
	CreatedAt         time.Time  `json:"created_at"`
	UpdatedAt         *time.Time `json:"updated_at,omitempty"`
}

func FromGoal(g *goal.Goal) GoalResponse {
	return GoalResponse{
		ID:                g.ID,
		Title:             g.Title,
		Description:       g.Description,
		LifeArea:          string(g.LifeArea),
		TargetDate:        g.TargetDate,
		Status:            string(g.Status),
		Impact:            g.Impact,
		SharedWithPartner: g.SharedWithPartner,
		CreatedAt:         g.CreatedAt,
		UpdatedAt:         g.UpdatedAt,
	}
}

func FromGoalList(goals []*goal.Goal) []GoalResponse {
	result := make([]GoalResponse, len(goals))
	for i, g := range goals {
		result[i] = FromGoal(g)
	}
	return result
}

type CreateProblemRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	LifeArea    string `json:"life_area"`
	Priority    string `json:"priority"`
}

type UpdateProblemRequest struct {
	Title       *string `json:"title,omitempty"`
	Description *string `json:"description,omitempty"`
	Status      *string `json:"status,omitempty"`
	Priority    *string `json:"priority,omitempty"`
	Solution    *string `json:"solution,omitempty"`
}

type ProblemResponse struct {
	ID          uuid.UUID  `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	LifeArea    string     `json:"life_area"`
	Priority    string     `json:"priority"`
	Status      string     `json:"status"`
	HasSolution bool       `json:"has_solution"`
	Solution    string     `json:"solution,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   *time.Time `json:"updated_at,omitempty"`
}

func FromProblem(p *problem.Problem) ProblemResponse {
	return ProblemResponse{
		ID:          p.ID,
		Title:       p.Title,
		Description: p.Description,
		LifeArea:    string(p.LifeArea),
		Priority:    string(p.Priority),
		Status:      string(p.Status),
		HasSolution: p.HasSolution,
		Solution:    p.Solution,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

func FromProblemList(problems []*problem.Problem) []ProblemResponse {
	result := make([]ProblemResponse, len(problems))
	for i, p := range problems {
		result[i] = FromProblem(p)
	}
	return result
}

// FinanceSummary is presentation-only; the ledger behind it is mocked.
type FinanceSummary struct {
	Balance        float64 `json:"balance"`
	MonthlyIncome  float64 `json:"monthly_income"`
	MonthlyExpense float64 `json:"monthly_expense"`
	Invested       float64 `json:"invested"`
	SavingsRate    float64 `json:"savings_rate"`
}
