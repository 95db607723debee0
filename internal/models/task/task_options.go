package task

import (
	"time"

	"github.com/google/uuid"
)

type TaskOption func(*Task)

func WithTitle(title string) TaskOption {
	return func(task *Task) {
		task.Title = title
	}
}

func WithDescription(description string) TaskOption {
	return func(task *Task) {
		task.Description = description
	}
}

func WithLifeArea(area LifeArea) TaskOption {
	return func(task *Task) {
		task.LifeArea = area
	}
}

func WithGoalID(goalID *uuid.UUID) TaskOption {
	return func(task *Task) {
		task.GoalID = goalID
	}
}

func WithStatus(status Status) TaskOption {
	return func(task *Task) {
		task.Status = status
	}
}

func WithImpact(impact int) TaskOption {
	return func(task *Task) {
		task.Impact = impact
	}
}

func WithUrgency(urgency int) TaskOption {
	return func(task *Task) {
		task.Urgency = urgency
	}
}

func WithEffort(effort int) TaskOption {
	return func(task *Task) {
		task.Effort = effort
	}
}

func WithDueDate(dueDate *time.Time) TaskOption {
	return func(task *Task) {
		task.DueDate = dueDate
	}
}

func WithScheduledFor(scheduledFor *time.Time) TaskOption {
	return func(task *Task) {
		task.ScheduledFor = scheduledFor
	}
}
