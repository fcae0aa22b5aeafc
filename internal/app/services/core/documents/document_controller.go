package documents

import (
	"context"
	"net/http"
	"time"

	"clinicstack-service/internal/app/config"
	"clinicstack-service/internal/app/contracts"
	"clinicstack-service/internal/app/models"
	"clinicstack-service/internal/pkg/constvars"
	"clinicstack-service/internal/pkg/exceptions"
	"clinicstack-service/internal/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type DocumentController struct {
	Log             *zap.Logger
	DocumentUsecase contracts.DocumentUsecase
	InternalConfig  *config.InternalConfig
}

func NewDocumentController(logger *zap.Logger, documentUsecase contracts.DocumentUsecase, internalConfig *config.InternalConfig) *DocumentController {
	return &DocumentController{
		Log:             logger,
		DocumentUsecase: documentUsecase,
		InternalConfig:  internalConfig,
	}
}

func (ctrl *DocumentController) UploadDocument(w http.ResponseWriter, r *http.Request) {
	sessionData, ok := r.Context().Value(constvars.CONTEXT_SESSION_DATA_KEY).(*models.Session)
	if !ok {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrSessionInvalid(nil))
		return
	}

	patientID := chi.URLParam(r, "patientID")
	if patientID == "" {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrURLParamIDValidation(nil, "patientID"))
		return
	}

	maxUploadBytes := int64(ctrl.InternalConfig.App.DocumentMaxUploadSizeInMB) << 20
	r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes)
	err := r.ParseMultipartForm(maxUploadBytes)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseMultipartForm(err))
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseMultipartForm(err))
		return
	}
	defer file.Close()

	contentType := header.Header.Get(constvars.HeaderContentType)
	if contentType == "" {
		contentType = constvars.MIMEOctetStream
	}

	upload := &models.DocumentUpload{
		FileName:    header.Filename,
		ContentType: contentType,
		SizeBytes:   header.Size,
		Reader:      file,
	}

	ctx, cancel := context.WithTimeout(r.Context(), 30*time.Second)
	defer cancel()

	documentID, err := ctrl.DocumentUsecase.UploadDocument(ctx, sessionData.TenantID, patientID, sessionData.UserID, upload)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.DocumentUploadedSuccess, map[string]string{"id": documentID})
}

func (ctrl *DocumentController) GetDocuments(w http.ResponseWriter, r *http.Request) {
	sessionData, ok := r.Context().Value(constvars.CONTEXT_SESSION_DATA_KEY).(*models.Session)
	if !ok {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrSessionInvalid(nil))
		return
	}

	patientID := chi.URLParam(r, "patientID")
	if patientID == "" {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrURLParamIDValidation(nil, "patientID"))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	results, err := ctrl.DocumentUsecase.GetDocuments(ctx, sessionData.TenantID, patientID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.ResponseSuccess, results)
}

func (ctrl *DocumentController) GetDownloadURL(w http.ResponseWriter, r *http.Request) {
	sessionData, ok := r.Context().Value(constvars.CONTEXT_SESSION_DATA_KEY).(*models.Session)
	if !ok {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrSessionInvalid(nil))
		return
	}

	documentID := chi.URLParam(r, "documentID")
	if documentID == "" {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrURLParamIDValidation(nil, "documentID"))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	url, err := ctrl.DocumentUsecase.GetDownloadURL(ctx, sessionData.TenantID, documentID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.ResponseSuccess, map[string]string{"url": url})
}
