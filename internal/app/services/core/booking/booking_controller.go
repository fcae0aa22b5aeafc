package booking

import (
	"context"
	"net/http"
	"time"

	"clinicstack-service/internal/app/contracts"
	"clinicstack-service/internal/pkg/constvars"
	"clinicstack-service/internal/pkg/dto/requests"
	"clinicstack-service/internal/pkg/exceptions"
	"clinicstack-service/internal/pkg/utils"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type BookingController struct {
	Log            *zap.Logger
	TenantUsecase  contracts.TenantUsecase
	BookingUsecase contracts.BookingUsecase
}

func NewBookingController(logger *zap.Logger, tenantUsecase contracts.TenantUsecase, bookingUsecase contracts.BookingUsecase) *BookingController {
	return &BookingController{
		Log:            logger,
		TenantUsecase:  tenantUsecase,
		BookingUsecase: bookingUsecase,
	}
}

func (ctrl *BookingController) resolveTenant(r *http.Request) (string, error) {
	slug := chi.URLParam(r, "bookingSlug")
	if slug == "" {
		return "", exceptions.ErrURLParamIDValidation(nil, "bookingSlug")
	}

	tenant, err := ctrl.TenantUsecase.ResolveBySlug(r.Context(), slug)
	if err != nil {
		return "", err
	}
	return tenant.ID, nil
}

func (ctrl *BookingController) GetClinicInfo(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "bookingSlug")
	if slug == "" {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrURLParamIDValidation(nil, "bookingSlug"))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	tenant, err := ctrl.TenantUsecase.ResolveBySlug(ctx, slug)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.ResponseSuccess, tenant)
}

func (ctrl *BookingController) GetBookableDoctors(w http.ResponseWriter, r *http.Request) {
	tenantID, err := ctrl.resolveTenant(r)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	results, err := ctrl.BookingUsecase.GetBookableDoctors(ctx, tenantID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.ResponseSuccess, results)
}

func (ctrl *BookingController) GetAvailability(w http.ResponseWriter, r *http.Request) {
	tenantID, err := ctrl.resolveTenant(r)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	doctorID := r.URL.Query().Get("doctorId")
	date := r.URL.Query().Get("date")
	if doctorID == "" || date == "" {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(nil))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	result, err := ctrl.BookingUsecase.GetPublicAvailability(ctx, tenantID, doctorID, date)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.AvailabilityFetchedSuccess, result)
}

func (ctrl *BookingController) BookAppointment(w http.ResponseWriter, r *http.Request) {
	tenantID, err := ctrl.resolveTenant(r)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	request := new(requests.BookPublicAppointment)
	err = json.NewDecoder(r.Body).Decode(request)
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

	result, err := ctrl.BookingUsecase.BookPublicAppointment(ctx, tenantID, request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.AppointmentBookedSuccess, result)
}
