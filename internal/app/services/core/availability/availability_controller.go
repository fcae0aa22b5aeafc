package availability

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

type AvailabilityController struct {
	Log                 *zap.Logger
	AvailabilityUsecase contracts.AvailabilityUsecase
}

func NewAvailabilityController(logger *zap.Logger, availabilityUsecase contracts.AvailabilityUsecase) *AvailabilityController {
	return &AvailabilityController{
		Log:                 logger,
		AvailabilityUsecase: availabilityUsecase,
	}
}

// GetAvailability serves the dashboard scheduler: GET /availability?doctorId=&date=
func (ctrl *AvailabilityController) GetAvailability(w http.ResponseWriter, r *http.Request) {
	sessionData, ok := r.Context().Value(constvars.CONTEXT_SESSION_DATA_KEY).(*models.Session)
	if !ok {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrSessionInvalid(nil))
		return
	}

	doctorID := r.URL.Query().Get("doctorId")
	date := r.URL.Query().Get("date")
	if doctorID == "" || date == "" {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrURLParamIDValidation(nil, "doctorId/date"))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	result, err := ctrl.AvailabilityUsecase.GetAvailability(ctx, sessionData.TenantID, doctorID, date, false)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.AvailabilityFetchedSuccess, result)
}
