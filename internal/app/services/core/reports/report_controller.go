package reports

import (
	"context"
	"net/http"
	"time"

	"clinicstack-service/internal/app/contracts"
	"clinicstack-service/internal/app/models"
	"clinicstack-service/internal/pkg/constvars"
	"clinicstack-service/internal/pkg/exceptions"
	"clinicstack-service/internal/pkg/utils"

	"go.uber.org/zap"
)

type ReportController struct {
	Log           *zap.Logger
	ReportUsecase contracts.ReportUsecase
}

func NewReportController(logger *zap.Logger, reportUsecase contracts.ReportUsecase) *ReportController {
	return &ReportController{
		Log:           logger,
		ReportUsecase: reportUsecase,
	}
}

// dateRange pulls the from/to query params, defaulting to the last 30 days.
func dateRange(r *http.Request) (string, string, error) {
	fromDate := r.URL.Query().Get("from")
	toDate := r.URL.Query().Get("to")

	now := time.Now()
	if toDate == "" {
		toDate = utils.FormatDateISO(now)
	}
	if fromDate == "" {
		fromDate = utils.FormatDateISO(now.AddDate(0, 0, -30))
	}

	if _, err := utils.ParseDateISO(fromDate); err != nil {
		return "", "", exceptions.ErrCannotParseDate(err)
	}
	if _, err := utils.ParseDateISO(toDate); err != nil {
		return "", "", exceptions.ErrCannotParseDate(err)
	}
	return fromDate, toDate, nil
}

func (ctrl *ReportController) GetAppointmentReport(w http.ResponseWriter, r *http.Request) {
	sessionData, ok := r.Context().Value(constvars.CONTEXT_SESSION_DATA_KEY).(*models.Session)
	if !ok {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrSessionInvalid(nil))
		return
	}

	fromDate, toDate, err := dateRange(r)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 15*time.Second)
	defer cancel()

	result, err := ctrl.ReportUsecase.AppointmentReport(ctx, sessionData.TenantID, fromDate, toDate)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.ResponseSuccess, result)
}

func (ctrl *ReportController) GetRevenueReport(w http.ResponseWriter, r *http.Request) {
	sessionData, ok := r.Context().Value(constvars.CONTEXT_SESSION_DATA_KEY).(*models.Session)
	if !ok {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrSessionInvalid(nil))
		return
	}

	fromDate, toDate, err := dateRange(r)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 15*time.Second)
	defer cancel()

	result, err := ctrl.ReportUsecase.RevenueReport(ctx, sessionData.TenantID, fromDate, toDate)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.ResponseSuccess, result)
}

func (ctrl *ReportController) GetInventoryReport(w http.ResponseWriter, r *http.Request) {
	sessionData, ok := r.Context().Value(constvars.CONTEXT_SESSION_DATA_KEY).(*models.Session)
	if !ok {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrSessionInvalid(nil))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 15*time.Second)
	defer cancel()

	result, err := ctrl.ReportUsecase.InventoryReport(ctx, sessionData.TenantID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.ResponseSuccess, result)
}
