package handler

import (
	"log/slog"
	"net/http"

	"fleetalert/internal/delivery/api/response"
	"fleetalert/internal/domain/constants"
	"fleetalert/internal/domain/entity"
	"fleetalert/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// AlertHandlerParams holds dependencies for AlertHandler, injected by Fx.
type AlertHandlerParams struct {
	fx.In

	AlertUC usecase.AlertUsecase
	Logger  *slog.Logger
}

// AlertHandler serves the dashboard alert endpoints
type AlertHandler struct {
	alertUC usecase.AlertUsecase
	logger  *slog.Logger
}

// NewAlertHandler is the constructor for AlertHandler
func NewAlertHandler(params AlertHandlerParams) *AlertHandler {
	return &AlertHandler{
		alertUC: params.AlertUC,
		logger:  params.Logger,
	}
}

// AlertSummaryResponse is the badge view of the dashboard
type AlertSummaryResponse struct {
	ReferenceDate string              `json:"reference_date"`
	Summary       entity.AlertSummary `json:"summary"`
	Degraded      bool                `json:"degraded"`
}

// GetAlerts returns the top ranked alerts, the total and the urgency summary.
// A failed fleet fetch still answers 200 with an empty, degraded board.
func (h *AlertHandler) GetAlerts(c echo.Context) error {
	ref, err := referenceDate(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	board, err := h.alertUC.GetDashboardAlerts(c.Request().Context(), ref)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, board)
}

// GetSummary returns alert counts by urgency
func (h *AlertHandler) GetSummary(c echo.Context) error {
	ref, err := referenceDate(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	board, err := h.alertUC.GetDashboardAlerts(c.Request().Context(), ref)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, AlertSummaryResponse{
		ReferenceDate: board.ReferenceDate.Format(constants.DateLayout),
		Summary:       board.Summary,
		Degraded:      board.Degraded,
	})
}
