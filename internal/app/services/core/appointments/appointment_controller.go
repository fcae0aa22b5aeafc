package appointments

import (
	"context"
	"net/http"
	"time"

	"clinicstack-service/internal/app/contracts"
	"clinicstack-service/internal/app/models"
	"clinicstack-service/internal/pkg/constvars"
	"clinicstack-service/internal/pkg/dto/requests"
	"clinicstack-service/internal/pkg/exceptions"
	"clinicstack-service/internal/pkg/utils"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type AppointmentController struct {
	Log                *zap.Logger
	AppointmentUsecase contracts.AppointmentUsecase
}

func NewAppointmentController(logger *zap.Logger, appointmentUsecase contracts.AppointmentUsecase) *AppointmentController {
	return &AppointmentController{
		Log:                logger,
		AppointmentUsecase: appointmentUsecase,
	}
}

func (ctrl *AppointmentController) BookAppointment(w http.ResponseWriter, r *http.Request) {
	sessionData, ok := r.Context().Value(constvars.CONTEXT_SESSION_DATA_KEY).(*models.Session)
	if !ok {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrSessionInvalid(nil))
		return
	}

	request := new(requests.BookAppointment)
	err := json.NewDecoder(r.Body).Decode(request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	utils.SanitizeBookAppointmentRequest(request)

	err = utils.ValidateStruct(request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	result, err := ctrl.AppointmentUsecase.BookAppointment(ctx, sessionData.TenantID, request, constvars.AppointmentSourceDashboard)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.AppointmentBookedSuccess, result)
}

func (ctrl *AppointmentController) GetAppointmentByID(w http.ResponseWriter, r *http.Request) {
	sessionData, ok := r.Context().Value(constvars.CONTEXT_SESSION_DATA_KEY).(*models.Session)
	if !ok {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrSessionInvalid(nil))
		return
	}

	appointmentID := chi.URLParam(r, "appointmentID")
	if appointmentID == "" {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrURLParamIDValidation(nil, "appointmentID"))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	result, err := ctrl.AppointmentUsecase.GetAppointmentByID(ctx, sessionData.TenantID, appointmentID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.ResponseSuccess, result)
}

func (ctrl *AppointmentController) GetAppointments(w http.ResponseWriter, r *http.Request) {
	sessionData, ok := r.Context().Value(constvars.CONTEXT_SESSION_DATA_KEY).(*models.Session)
	if !ok {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrSessionInvalid(nil))
		return
	}

	filter := &requests.AppointmentFilter{
		DoctorID:  r.URL.Query().Get("doctorId"),
		PatientID: r.URL.Query().Get("patientId"),
		Date:      r.URL.Query().Get("date"),
		Status:    r.URL.Query().Get("status"),
	}
	pagination := utils.BuildPaginationRequest(r)

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	results, total, err := ctrl.AppointmentUsecase.GetAppointments(ctx, sessionData.TenantID, filter, pagination)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	paginationResponse := utils.BuildPaginationResponse(total, pagination.Page, pagination.PageSize, r.URL.Path)
	utils.BuildSuccessResponseWithPagination(w, constvars.StatusOK, constvars.ResponseSuccess, paginationResponse, results)
}

func (ctrl *AppointmentController) UpdateAppointmentStatus(w http.ResponseWriter, r *http.Request) {
	sessionData, ok := r.Context().Value(constvars.CONTEXT_SESSION_DATA_KEY).(*models.Session)
	if !ok {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrSessionInvalid(nil))
		return
	}

	appointmentID := chi.URLParam(r, "appointmentID")
	if appointmentID == "" {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrURLParamIDValidation(nil, "appointmentID"))
		return
	}

	request := new(requests.UpdateAppointmentStatus)
	err := json.NewDecoder(r.Body).Decode(request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	err = utils.ValidateStruct(request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	err = ctrl.AppointmentUsecase.UpdateAppointmentStatus(ctx, sessionData.TenantID, appointmentID, request.Status)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.AppointmentUpdatedSuccess, nil)
}
