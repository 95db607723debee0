package handlers

import (
	"net/http"

	"lifeTracker/internal/handlers/dto"
	"lifeTracker/internal/logger"
)

type FinanceHandler struct{}

func NewFinanceHandler() FinanceHandler {
	return FinanceHandler{}
}

// Summary serves the mocked finance view. There is no ledger behind it;
// the dashboard only needs a stable shape to render.
func (s *FinanceHandler) Summary(w http.ResponseWriter, r *http.Request) {
	logger.HttpRequestInfo(r, "HTTP_IN:")

	summary := dto.FinanceSummary{
		Balance:        125000,
		MonthlyIncome:  85000,
		MonthlyExpense: 42000,
		Invested:       230000,
		SavingsRate:    50.6,
	}

	responseWithJSON(w, http.StatusOK, toPayload("summary", summary))
}
