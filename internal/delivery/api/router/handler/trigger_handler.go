package handler

import (
	"log/slog"
	"net/http"

	"fleetalert/internal/delivery/api/middleware"
	deliverycontext "fleetalert/internal/delivery/context"
	"fleetalert/internal/domain/constants"
	"fleetalert/internal/domain/entity"
	domainerrors "fleetalert/internal/domain/errors"
	"fleetalert/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// TriggerHandlerParams holds dependencies for TriggerHandler, injected by Fx.
type TriggerHandlerParams struct {
	fx.In

	RunnerUC usecase.RunnerUsecase
	Logger   *slog.Logger
}

// TriggerHandler runs the alert dispatch on demand, e.g. from Cloud Scheduler
type TriggerHandler struct {
	runnerUC usecase.RunnerUsecase
	logger   *slog.Logger
}

// NewTriggerHandler is the constructor for TriggerHandler
func NewTriggerHandler(params TriggerHandlerParams) *TriggerHandler {
	return &TriggerHandler{
		runnerUC: params.RunnerUC,
		logger:   params.Logger,
	}
}

// TriggerResponse is the run summary returned to the scheduler
type TriggerResponse struct {
	ReferenceDate      string               `json:"referenceDate"`
	Sent               int                  `json:"sent"`
	TotalSubscriptions int                  `json:"totalSubscriptions"`
	AlertsCount        int                  `json:"alertsCount"`
	Pruned             int                  `json:"pruned"`
	Failed             int                  `json:"failed"`
	Details            []entity.AlertDetail `json:"details"`
}

// TriggerErrorResponse is returned with a non-2xx status when the run aborts
type TriggerErrorResponse struct {
	Error string `json:"error"`
}

// Dispatch runs one alert run for ?date= (default today) and reports its outcome
func (h *TriggerHandler) Dispatch(c echo.Context) error {
	ctx := c.Request().Context()

	ref, err := referenceDate(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, TriggerErrorResponse{Error: err.Error()})
	}

	deliverycontext.GetLoggerOrDefault(ctx, h.logger).InfoContext(ctx, "Alert run triggered",
		slog.String("triggeredBy", middleware.GetTriggeredBy(c)),
	)

	report, err := h.runnerUC.Run(ctx, ref)
	if err != nil {
		status := http.StatusInternalServerError
		message := "alert run failed"

		var appErr domainerrors.AppError
		if errors.As(err, &appErr) {
			status = appErr.HTTPCode()
			message = appErr.Message()
		}

		return c.JSON(status, TriggerErrorResponse{Error: message})
	}

	return c.JSON(http.StatusOK, newTriggerResponse(report))
}

func newTriggerResponse(report *entity.RunReport) TriggerResponse {
	details := report.Details
	if details == nil {
		details = []entity.AlertDetail{}
	}

	return TriggerResponse{
		ReferenceDate:      report.ReferenceDate.Format(constants.DateLayout),
		Sent:               report.Sent,
		TotalSubscriptions: report.TotalSubscriptions,
		AlertsCount:        report.AlertsCount,
		Pruned:             report.Pruned,
		Failed:             report.Failed,
		Details:            details,
	}
}
