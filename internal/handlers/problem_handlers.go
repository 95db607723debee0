package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"go.uber.org/zap"

	"lifeTracker/internal/handlers/dto"
	"lifeTracker/internal/logger"
	"lifeTracker/internal/middleware"
	"lifeTracker/internal/models/problem"
	"lifeTracker/internal/models/task"
	"lifeTracker/internal/service"
)

type ProblemHandler struct {
	ProblemService ProblemService
}

func NewProblemHandler(problemService ProblemService) ProblemHandler {
	return ProblemHandler{
		ProblemService: problemService,
	}
}

func (s *ProblemHandler) GetProblems(w http.ResponseWriter, r *http.Request) {
	logger.HttpRequestInfo(r, "HTTP_IN:")

	userID := middleware.GetUserID(r.Context())

	problems, err := s.ProblemService.ListProblems(r.Context(), userID)
	if err != nil {
		serviceError(w, err, "list_problems")
		return
	}

	responseWithJSON(w, http.StatusOK, toPayload("problems", dto.FromProblemList(problems)))
}

func (s *ProblemHandler) PostProblem(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	logger.HttpRequestInfo(r, "HTTP_IN:")

	if !checkContentType(r, "application/json") {
		responseWithError(w, http.StatusUnsupportedMediaType, "Content-Type must be application/json")
		return
	}

	var request dto.CreateProblemRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		logger.Warn("HTTP: failed to read JSON",
			zap.Error(err),
			zap.String("client_ip", r.RemoteAddr))

		responseWithError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	userID := middleware.GetUserID(r.Context())

	created, err := s.ProblemService.CreateProblem(r.Context(), userID, service.CreateProblemInput{
		Title:       request.Title,
		Description: request.Description,
		LifeArea:    task.LifeArea(request.LifeArea),
		Priority:    problem.Priority(request.Priority),
	})
	if err != nil {
		serviceError(w, err, "create_problem")
		return
	}

	logger.Info("HTTP_OUT: problem created",
		zap.String("problem_id", created.ID.String()),
		zap.Duration("ms", time.Since(start)),
		zap.Int("http_status", http.StatusCreated))

	responseWithJSON(w, http.StatusCreated, toPayload("problem", dto.FromProblem(created)))
}

func (s *ProblemHandler) PatchProblem(w http.ResponseWriter, r *http.Request) {
	logger.HttpRequestInfo(r, "HTTP_IN:")

	id, ok := parseIDParam(w, r)
	if !ok {
		return
	}

	var request dto.UpdateProblemRequest

	decoder := json.NewDecoder(r.Body)
	defer r.Body.Close()

	if err := decoder.Decode(&request); err != nil {
		logger.Warn("HTTP: failed to read JSON",
			zap.Error(err),
			zap.String("client_ip", r.RemoteAddr))

		responseWithError(w, http.StatusBadRequest, "invalid update parameters: "+err.Error())
		return
	}

	options := []problem.ProblemOption{}
	if request.Title != nil {
		options = append(options, problem.WithTitle(*request.Title))
	}
	if request.Description != nil {
		options = append(options, problem.WithDescription(*request.Description))
	}
	if request.Status != nil {
		options = append(options, problem.WithStatus(problem.Status(*request.Status)))
	}
	if request.Priority != nil {
		options = append(options, problem.WithPriority(problem.Priority(*request.Priority)))
	}
	if request.Solution != nil {
		options = append(options, problem.WithSolution(*request.Solution))
	}

	userID := middleware.GetUserID(r.Context())

	updated, err := s.ProblemService.UpdateProblem(r.Context(), userID, id, options...)
	if err != nil {
		serviceError(w, err, "update_problem")
		return
	}

	responseWithJSON(w, http.StatusOK, toPayload("problem", dto.FromProblem(updated)))
}
