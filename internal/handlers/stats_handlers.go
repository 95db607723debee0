package handlers

import (
	"net/http"
	"time"

	"lifeTracker/internal/logger"
	"lifeTracker/internal/middleware"
)

type StatsHandler struct {
	StatsService StatsService
}

func NewStatsHandler(statsService StatsService) StatsHandler {
	return StatsHandler{
		StatsService: statsService,
	}
}

func (s *StatsHandler) QuickStats(w http.ResponseWriter, r *http.Request) {
	logger.HttpRequestInfo(r, "HTTP_IN:")

	userID := middleware.GetUserID(r.Context())

	stats, err := s.StatsService.Quick(r.Context(), userID, time.Now())
	if err != nil {
		serviceError(w, err, "quick_stats")
		return
	}

	responseWithJSON(w, http.StatusOK, toPayload("stats", stats))
}

func (s *StatsHandler) LifeAreas(w http.ResponseWriter, r *http.Request) {
	logger.HttpRequestInfo(r, "HTTP_IN:")

	userID := middleware.GetUserID(r.Context())

	areas, err := s.StatsService.LifeAreas(r.Context(), userID)
	if err != nil {
		serviceError(w, err, "life_areas")
		return
	}

	responseWithJSON(w, http.StatusOK, toPayload("areas", areas))
}

func (s *StatsHandler) DailyProgress(w http.ResponseWriter, r *http.Request) {
	logger.HttpRequestInfo(r, "HTTP_IN:")

	userID := middleware.GetUserID(r.Context())

	days, err := s.StatsService.Daily(r.Context(), userID, time.Now())
	if err != nil {
		serviceError(w, err, "daily_progress")
		return
	}

	responseWithJSON(w, http.StatusOK, toPayload("days", days))
}

func (s *StatsHandler) WeeklyProgress(w http.ResponseWriter, r *http.Request) {
	logger.HttpRequestInfo(r, "HTTP_IN:")

	userID := middleware.GetUserID(r.Context())

	summary, err := s.StatsService.Weekly(r.Context(), userID, time.Now())
	if err != nil {
		serviceError(w, err, "weekly_progress")
		return
	}

	responseWithJSON(w, http.StatusOK, toPayload("week", summary))
}

func (s *StatsHandler) MonthlyProgress(w http.ResponseWriter, r *http.Request) {
	logger.HttpRequestInfo(r, "HTTP_IN:")

	userID := middleware.GetUserID(r.Context())

	months, err := s.StatsService.Monthly(r.Context(), userID, time.Now())
	if err != nil {
		serviceError(w, err, "monthly_progress")
		return
	}

	responseWithJSON(w, http.StatusOK, toPayload("months", months))
}

func (s *StatsHandler) YearlyProgress(w http.ResponseWriter, r *http.Request) {
	logger.HttpRequestInfo(r, "HTTP_IN:")

	userID := middleware.GetUserID(r.Context())

	year, err := s.StatsService.Yearly(r.Context(), userID, time.Now())
	if err != nil {
		serviceError(w, err, "yearly_progress")
		return
	}

	responseWithJSON(w, http.StatusOK, toPayload("year", year))
}
