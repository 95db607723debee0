package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"lifeTracker/internal/handlers/dto"
	"lifeTracker/internal/logger"
	"lifeTracker/internal/middleware"
	"lifeTracker/internal/models/task"
	"lifeTracker/internal/priority"
	"lifeTracker/internal/service"
)

type TaskHandler struct {
	TaskService TaskService
}

func NewTaskHandler(taskService TaskService) TaskHandler {
	return TaskHandler{
		TaskService: taskService,
	}
}

func parseIDParam(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	idParam := chi.URLParam(r, "id")
	id, err := uuid.Parse(idParam)
	if err != nil {
		logger.Warn("HTTP: failed to parse id",
			zap.Error(err),
			zap.String("client_ip", r.RemoteAddr))

		responseWithError(w, http.StatusBadRequest, "failed to parse id: "+err.Error())
		return uuid.Nil, false
	}

	if id == uuid.Nil {
		logger.Warn("HTTP: invalid id value",
			zap.String("error", "nil id"),
			zap.String("client_ip", r.RemoteAddr))

		responseWithError(w, http.StatusBadRequest, "id must not be empty")
		return uuid.Nil, false
	}

	return id, true
}

func (s *TaskHandler) GetTasks(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	logger.HttpRequestInfo(r, "HTTP_IN:")

	userID := middleware.GetUserID(r.Context())
	query := r.URL.Query()

	filter := priority.Filter{
		Status:   query.Get("status"),
		LifeArea: query.Get("life_area"),
		SortBy:   priority.SortKey(query.Get("sort_by")),
	}

	tasks, err := s.TaskService.ListTasks(r.Context(), userID, filter)
	if err != nil {
		serviceError(w, err, "list_tasks")
		return
	}

	logger.Info("HTTP_OUT: tasks listed",
		zap.Int("count", len(tasks)),
		zap.Duration("ms", time.Since(start)),
		zap.Int("http_status", http.StatusOK))

	responseWithJSON(w, http.StatusOK, toPayload("tasks", dto.FromTaskList(tasks)))
}

func (s *TaskHandler) PostTask(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	logger.HttpRequestInfo(r, "HTTP_IN:")

	if !checkContentType(r, "application/json") {
		logger.Warn("HTTP: wrong content type",
			zap.String("expected", "application/json"),
			zap.String("received", r.Header.Get("Content-Type")),
			zap.String("client_ip", r.RemoteAddr))

		responseWithError(w, http.StatusUnsupportedMediaType, "Content-Type must be application/json")
		return
	}

	var request dto.CreateTaskRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		logger.Warn("HTTP: failed to read JSON",
			zap.Error(err),
			zap.String("client_ip", r.RemoteAddr))

		responseWithError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	userID := middleware.GetUserID(r.Context())

	created, err := s.TaskService.CreateTask(r.Context(), userID, service.CreateTaskInput{
		Title:        request.Title,
		Description:  request.Description,
		LifeArea:     task.LifeArea(request.LifeArea),
		GoalID:       request.GoalID,
		Impact:       request.Impact,
		Urgency:      request.Urgency,
		Effort:       request.Effort,
		DueDate:      request.DueDate,
		ScheduledFor: request.ScheduledFor,
	})
	if err != nil {
		serviceError(w, err, "create_task")
		return
	}

	logger.Info("HTTP_OUT: task created",
		zap.String("task_id", created.ID.String()),
		zap.Duration("ms", time.Since(start)),
		zap.Int("http_status", http.StatusCreated))

	responseWithJSON(w, http.StatusCreated, toPayload("task", dto.FromTask(created)))
}

func (s *TaskHandler) GetTaskByID(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	logger.HttpRequestInfo(r, "HTTP_IN:")

	id, ok := parseIDParam(w, r)
	if !ok {
		return
	}

	userID := middleware.GetUserID(r.Context())

	t, err := s.TaskService.GetTaskByID(r.Context(), userID, id)
	if err != nil {
		serviceError(w, err, "get_task")
		return
	}

	logger.Info("HTTP_OUT: task fetched",
		zap.String("task_id", t.ID.String()),
		zap.Duration("ms", time.Since(start)),
		zap.Int("http_status", http.StatusOK))

	responseWithJSON(w, http.StatusOK, toPayload("task", dto.FromTask(t)))
}

func (s *TaskHandler) PatchTask(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	logger.HttpRequestInfo(r, "HTTP_IN:")

	id, ok := parseIDParam(w, r)
	if !ok {
		return
	}

	var request dto.UpdateTaskRequest

	decoder := json.NewDecoder(r.Body)
	defer r.Body.Close()

	if err := decoder.Decode(&request); err != nil {
		logger.Warn("HTTP: failed to read JSON",
			zap.Error(err),
			zap.String("client_ip", r.RemoteAddr))

		responseWithError(w, http.StatusBadRequest, "invalid update parameters: "+err.Error())
		return
	}

	options := taskOptionsFromRequest(request)

	userID := middleware.GetUserID(r.Context())

	updated, err := s.TaskService.UpdateTask(r.Context(), userID, id, options...)
	if err != nil {
		serviceError(w, err, "update_task")
		return
	}

	logger.Info("HTTP_OUT: task updated",
		zap.String("task_id", updated.ID.String()),
		zap.Duration("ms", time.Since(start)),
		zap.Int("http_status", http.StatusOK))

	responseWithJSON(w, http.StatusOK, toPayload("task", dto.FromTask(updated)))
}

// taskOptionsFromRequest turns the present fields of a PATCH body into
// update options; absent fields stay untouched.
func taskOptionsFromRequest(request dto.UpdateTaskRequest) []task.TaskOption {
	options := []task.TaskOption{}
	if request.Title != nil {
		options = append(options, task.WithTitle(*request.Title))
	}
	if request.Description != nil {
		options = append(options, task.WithDescription(*request.Description))
	}
	if request.LifeArea != nil {
		options = append(options, task.WithLifeArea(task.LifeArea(*request.LifeArea)))
	}
	if request.GoalID != nil {
		options = append(options, task.WithGoalID(request.GoalID))
	}
	if request.Status != nil {
		options = append(options, task.WithStatus(task.Status(*request.Status)))
	}
	if request.Impact != nil {
		options = append(options, task.WithImpact(*request.Impact))
	}
	if request.Urgency != nil {
		options = append(options, task.WithUrgency(*request.Urgency))
	}
	if request.Effort != nil {
		options = append(options, task.WithEffort(*request.Effort))
	}
	if request.DueDate != nil {
		options = append(options, task.WithDueDate(request.DueDate))
	}
	if request.ScheduledFor != nil {
		options = append(options, task.WithScheduledFor(request.ScheduledFor))
	}
	return options
}

func (s *TaskHandler) CompleteTask(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	logger.HttpRequestInfo(r, "HTTP_IN:")

	id, ok := parseIDParam(w, r)
	if !ok {
		return
	}

	userID := middleware.GetUserID(r.Context())

	completed, err := s.TaskService.CompleteTask(r.Context(), userID, id)
	if err != nil {
		serviceError(w, err, "complete_task")
		return
	}

	logger.Info("HTTP_OUT: task completed",
		zap.String("task_id", completed.ID.String()),
		zap.Duration("ms", time.Since(start)),
		zap.Int("http_status", http.StatusOK))

	responseWithJSON(w, http.StatusOK, toPayload("task", dto.FromTask(completed)))
}

func (s *TaskHandler) DeleteTask(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	logger.HttpRequestInfo(r, "HTTP_IN:")

	id, ok := parseIDParam(w, r)
	if !ok {
		return
	}

	userID := middleware.GetUserID(r.Context())

	if err := s.TaskService.DeleteTask(r.Context(), userID, id); err != nil {
		serviceError(w, err, "delete_task")
		return
	}

	logger.Info("HTTP_OUT: task deleted",
		zap.String("task_id", id.String()),
		zap.Duration("ms", time.Since(start)),
		zap.Int("http_status", http.StatusNoContent))

	w.WriteHeader(http.StatusNoContent)
}

func (s *TaskHandler) TodayFocus(w http.ResponseWriter, r *http.Request) {
	logger.HttpRequestInfo(r, "HTTP_IN:")

	userID := middleware.GetUserID(r.Context())

	tasks, err := s.TaskService.TodayFocus(r.Context(), userID)
	if err != nil {
		serviceError(w, err, "today_focus")
		return
	}

	responseWithJSON(w, http.StatusOK, toPayload("tasks", dto.FromTaskList(tasks)))
}

func (s *TaskHandler) UpcomingTasks(w http.ResponseWriter, r *http.Request) {
	logger.HttpRequestInfo(r, "HTTP_IN:")

	userID := middleware.GetUserID(r.Context())

	tasks, err := s.TaskService.UpcomingTasks(r.Context(), userID)
	if err != nil {
		serviceError(w, err, "upcoming_tasks")
		return
	}

	responseWithJSON(w, http.StatusOK, toPayload("tasks", dto.FromTaskList(tasks)))
}

func (s *TaskHandler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	logger.HttpRequestInfo(r, "HTTP: health check")

	if err := s.TaskService.HealthCheck(r.Context()); err != nil {
		responseWithError(w, http.StatusServiceUnavailable, err.Error())
		return
	}
	healthCheck(w)
}
