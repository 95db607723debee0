package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"lifeTracker/internal/logger"
	"lifeTracker/internal/models/task"
	repo "lifeTracker/internal/repository"
)

const slowQuery = 100 * time.Millisecond

type Storage struct {
	pool *pgxpool.Pool
}

func New(ctx context.Context, connString string) (*Storage, error) {
	config, err := pgxpool.ParseConfig(connString)
	if err != nil {
		logger.Error("Repository: failed to parse pool config", err)
		return nil, fmt.Errorf("parsing pool config: %w", err)
	}

	config.MaxConns = 10
	config.MinConns = 2
	config.MaxConnIdleTime = time.Minute * 5

	pool, err := pgxpool.NewWithConfig(ctx, config)
	if err != nil {
		logger.Error("Repository: failed to create pool", err)
		return nil, fmt.Errorf("creating pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		logger.Error("Repository: ping failed", err)
		return nil, fmt.Errorf("pinging database: %w", err)
	}

	logger.Info("Repository: connected to PostgreSQL")
	return &Storage{pool: pool}, nil
}

func (s *Storage) Close() {
	s.pool.Close()
	logger.Info("Repository: closed PostgreSQL connections")
}

func (s *Storage) HealthCheck(ctx context.Context) error {
	if err := s.pool.Ping(ctx); err != nil {
		logger.Error("Repository: ping failed", err)
		return fmt.Errorf("pinging database: %w", err)
	}
	return nil
}

const taskColumns = `id, user_id, title, description, life_area, goal_id,
		impact, urgency, effort, quadrant, is_high_impact, priority_score,
		due_date, scheduled_for, status, completed_at,
		created_at, updated_at, version, deleted_at`

func scanTask(row pgx.Row) (*task.Task, error) {
	t := &task.Task{}
	err := row.Scan(
		&t.ID, &t.UserID, &t.Title, &t.Description, &t.LifeArea, &t.GoalID,
		&t.Impact, &t.Urgency, &t.Effort, &t.Quadrant, &t.IsHighImpact, &t.PriorityScore,
		&t.DueDate, &t.ScheduledFor, &t.Status, &t.CompletedAt,
		&t.CreatedAt, &t.UpdatedAt, &t.Version, &t.DeletedAt,
	)
	if err != nil {
		return nil, err
	}
	return t, nil
}

func (s *Storage) Create(ctx context.Context, taskToCreate *task.Task) error {
	start := time.Now()

	query := `INSERT INTO tasks
			(id, user_id, title, description, life_area, goal_id,
			 impact, urgency, effort, quadrant, is_high_impact, priority_score,
			 due_date, scheduled_for, status, completed_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)
		RETURNING created_at, version`

	err := s.pool.QueryRow(ctx, query,
		taskToCreate.ID,
		taskToCreate.UserID,
		taskToCreate.Title,
		taskToCreate.Description,
		taskToCreate.LifeArea,
		taskToCreate.GoalID,
		taskToCreate.Impact,
		taskToCreate.Urgency,
		taskToCreate.Effort,
		taskToCreate.Quadrant,
		taskToCreate.IsHighImpact,
		taskToCreate.PriorityScore,
		taskToCreate.DueDate,
		taskToCreate.ScheduledFor,
		taskToCreate.Status,
		taskToCreate.CompletedAt,
	).Scan(&taskToCreate.CreatedAt, &taskToCreate.Version)

	if err != nil {
		logger.Error("Repository: failed to insert task", err, zap.Duration("ms", time.Since(start)))
		return fmt.Errorf("inserting task: %w", err)
	}

	if time.Since(start) > slowQuery {
		logger.Warn("Repository: slow query", zap.String("query", "insert task"), zap.Duration("ms", time.Since(start)))
	}
	return nil
}

func (s *Storage) Update(ctx context.Context, taskToUpdate *task.Task) error {
	start := time.Now()

	query := `UPDATE tasks
		SET title = $1,
			description = $2,
			life_area = $3,
			goal_id = $4,
			impact = $5,
			urgency = $6,
			effort = $7,
			quadrant = $8,
			is_high_impact = $9,
			priority_score = $10,
			due_date = $11,
			scheduled_for = $12,
			status = $13,
			completed_at = $14,
			version = version + 1,
			updated_at = NOW()
		WHERE id = $15 AND version = $16 AND deleted_at IS NULL
		RETURNING updated_at, version`

	err := s.pool.QueryRow(ctx, query,
		taskToUpdate.Title,
		taskToUpdate.Description,
		taskToUpdate.LifeArea,
		taskToUpdate.GoalID,
		taskToUpdate.Impact,
		taskToUpdate.Urgency,
		taskToUpdate.Effort,
		taskToUpdate.Quadrant,
		taskToUpdate.IsHighImpact,
		taskToUpdate.PriorityScore,
		taskToUpdate.DueDate,
		taskToUpdate.ScheduledFor,
		taskToUpdate.Status,
		taskToUpdate.CompletedAt,
		taskToUpdate.ID,
		taskToUpdate.Version,
	).Scan(&taskToUpdate.UpdatedAt, &taskToUpdate.Version)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			logger.Warn("Repository: version conflict on update",
				zap.String("task_id", taskToUpdate.ID.String()),
				zap.Int("expected_version", taskToUpdate.Version))
			return repo.ErrVersionConflict
		}
		logger.Error("Repository: failed to update task", err)
		return fmt.Errorf("updating task: %w", err)
	}

	if time.Since(start) > slowQuery {
		logger.Warn("Repository: slow query", zap.String("query", "update task"), zap.Duration("ms", time.Since(start)))
	}
	return nil
}

func (s *Storage) GetByID(ctx context.Context, userID, id uuid.UUID) (*task.Task, error) {
	start := time.Now()

	query := `SELECT ` + taskColumns + `
		FROM tasks
		WHERE id = $1 AND user_id = $2 AND deleted_at IS NULL`

	t, err := scanTask(s.pool.QueryRow(ctx, query, id, userID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repo.ErrNotFound
		}
		logger.Error("Repository: failed to get task", err)
		return nil, fmt.Errorf("getting task: %w", err)
	}

	if time.Since(start) > slowQuery {
		logger.Warn("Repository: slow query", zap.String("query", "get task"), zap.Duration("ms", time.Since(start)))
	}
	return t, nil
}

func (s *Storage) ListByUser(ctx context.Context, userID uuid.UUID) ([]*task.Task, error) {
	start := time.Now()

	query := `SELECT ` + taskColumns + `
		FROM tasks
		WHERE user_id = $1 AND deleted_at IS NULL
		ORDER BY created_at`

	rows, err := s.pool.Query(ctx, query, userID)
	if err != nil {
		logger.Error("Repository: failed to list tasks", err)
		return nil, fmt.Errorf("listing tasks: %w", err)
	}
	defer rows.Close()

	tasks := []*task.Task{}
	for rows.Next() {
		t, err := scanTask(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning task: %w", err)
		}
		tasks = append(tasks, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("reading task rows: %w", err)
	}

	if time.Since(start) > slowQuery {
		logger.Warn("Repository: slow query", zap.String("query", "list tasks"), zap.Duration("ms", time.Since(start)))
	}
	return tasks, nil
}

func (s *Storage) ListAll(ctx context.Context, offset, limit int) ([]*task.Task, error) {
	query := `SELECT ` + taskColumns + `
		FROM tasks
		WHERE deleted_at IS NULL
		ORDER BY created_at
		OFFSET $1 LIMIT $2`

	rows, err := s.pool.Query(ctx, query, offset, limit)
	if err != nil {
		logger.Error("Repository: failed to list all tasks", err)
		return nil, fmt.Errorf("listing all tasks: %w", err)
	}
	defer rows.Close()

	tasks := []*task.Task{}
	for rows.Next() {
		t, err := scanTask(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning task: %w", err)
		}
		tasks = append(tasks, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("reading task rows: %w", err)
	}
	return tasks, nil
}

// DeleteSoft stamps deleted_at; version check keeps racing deletes honest.
func (s *Storage) DeleteSoft(ctx context.Context, taskToDelete *task.Task) error {
	start := time.Now()

	query := `UPDATE tasks
		SET deleted_at = NOW(),
			updated_at = NOW(),
			version = version + 1
		WHERE id = $1 AND version = $2 AND deleted_at IS NULL
		RETURNING deleted_at, version`

	err := s.pool.QueryRow(ctx, query, taskToDelete.ID, taskToDelete.Version).
		Scan(&taskToDelete.DeletedAt, &taskToDelete.Version)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			logger.Warn("Repository: version conflict on soft delete",
				zap.String("task_id", taskToDelete.ID.String()),
				zap.Int("expected_version", taskToDelete.Version))
			return repo.ErrVersionConflict
		}
		logger.Error("Repository: failed to soft delete task", err, zap.Duration("ms", time.Since(start)))
		return fmt.Errorf("soft deleting task: %w", err)
	}

	if time.Since(start) > slowQuery {
		logger.Warn("Repository: slow query", zap.String("query", "soft delete task"), zap.Duration("ms", time.Since(start)))
	}
	return nil
}
