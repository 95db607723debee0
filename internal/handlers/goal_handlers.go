package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"go.uber.org/zap"

	"lifeTracker/internal/handlers/dto"
	"lifeTracker/internal/logger"
	"lifeTracker/internal/middleware"
	"lifeTracker/internal/models/goal"
	"lifeTracker/internal/models/task"
	"lifeTracker/internal/service"
)

type GoalHandler struct {
	GoalService GoalService
}

func NewGoalHandler(goalService GoalService) GoalHandler {
	return GoalHandler{
		GoalService: goalService,
	}
}

func (s *GoalHandler) GetGoals(w http.ResponseWriter, r *http.Request) {
	logger.HttpRequestInfo(r, "HTTP_IN:")

	userID := middleware.GetUserID(r.Context())

	goals, err := s.GoalService.ListGoals(r.Context(), userID)
	if err != nil {
		serviceError(w, err, "list_goals")
		return
	}

	responseWithJSON(w, http.StatusOK, toPayload("goals", dto.FromGoalList(goals)))
}

func (s *GoalHandler) PostGoal(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	logger.HttpRequestInfo(r, "HTTP_IN:")

	if !checkContentType(r, "application/json") {
		responseWithError(w, http.StatusUnsupportedMediaType, "Content-Type must be application/json")
		return
	}

	var request dto.CreateGoalRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		logger.Warn("HTTP: failed to read JSON",
			zap.Error(err),
			zap.String("client_ip", r.RemoteAddr))

		responseWithError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	userID := middleware.GetUserID(r.Context())

	created, err := s.GoalService.CreateGoal(r.Context(), userID, service.CreateGoalInput{
		Title:             request.Title,
		Description:       request.Description,
		LifeArea:          task.LifeArea(request.LifeArea),
		TargetDate:        request.TargetDate,
		Impact:            request.Impact,
		SharedWithPartner: request.SharedWithPartner,
	})
	if err != nil {
		serviceError(w, err, "create_goal")
		return
	}

	logger.Info("HTTP_OUT: goal created",
		zap.String("goal_id", created.ID.String()),
		zap.Duration("ms", time.Since(start)),
		zap.Int("http_status", http.StatusCreated))

	responseWithJSON(w, http.StatusCreated, toPayload("goal", dto.FromGoal(created)))
}

func (s *GoalHandler) PatchGoal(w http.ResponseWriter, r *http.Request) {
	logger.HttpRequestInfo(r, "HTTP_IN:")

	id, ok := parseIDParam(w, r)
	if !ok {
		return
	}

	var request dto.UpdateGoalRequest

	decoder := json.NewDecoder(r.Body)
	defer r.Body.Close()

	if err := decoder.Decode(&request); err != nil {
		logger.Warn("HTTP: failed to read JSON",
			zap.Error(err),
			zap.String("client_ip", r.RemoteAddr))

		responseWithError(w, http.StatusBadRequest, "invalid update parameters: "+err.Error())
		return
	}

	options := []goal.GoalOption{}
	if request.Title != nil {
		options = append(options, goal.WithTitle(*request.Title))
	}
	if request.Description != nil {
		options = append(options, goal.WithDescription(*request.Description))
	}
	if request.LifeArea != nil {
		options = append(options, goal.WithLifeArea(task.LifeArea(*request.LifeArea)))
	}
	if request.TargetDate != nil {
		options = append(options, goal.WithTargetDate(request.TargetDate))
	}
	if request.Status != nil {
		options = append(options, goal.WithStatus(goal.Status(*request.Status)))
	}
	if request.Impact != nil {
		options = append(options, goal.WithImpact(*request.Impact))
	}
	if request.SharedWithPartner != nil {
		options = append(options, goal.WithSharedWithPartner(*request.SharedWithPartner))
	}

	userID := middleware.GetUserID(r.Context())

	updated, err := s.GoalService.UpdateGoal(r.Context(), userID, id, options...)
	if err != nil {
		serviceError(w, err, "update_goal")
		return
	}

	responseWithJSON(w, http.StatusOK, toPayload("goal", dto.FromGoal(updated)))
}

func (s *GoalHandler) DeleteGoal(w http.ResponseWriter, r *http.Request) {
	logger.HttpRequestInfo(r, "HTTP_IN:")

	id, ok := parseIDParam(w, r)
	if !ok {
		return
	}

	userID := middleware.GetUserID(r.Context())

	if err := s.GoalService.DeleteGoal(r.Context(), userID, id); err != nil {
		serviceError(w, err, "delete_goal")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
