package prescriptions

import (
	"context"
	"time"

	"clinicstack-service/internal/app/contracts"
	"clinicstack-service/internal/app/models"
	"clinicstack-service/internal/pkg/constvars"
	"clinicstack-service/internal/pkg/dto/requests"
	"clinicstack-service/internal/pkg/dto/responses"
	"clinicstack-service/internal/pkg/exceptions"

	"go.uber.org/zap"
)

type prescriptionUsecase struct {
	PrescriptionRepository contracts.PrescriptionRepository
	PatientRepository      contracts.PatientRepository
	InventoryRepository    contracts.InventoryRepository
	Log                    *zap.Logger
}

func NewPrescriptionUsecase(
	prescriptionRepository contracts.PrescriptionRepository,
	patientRepository contracts.PatientRepository,
	inventoryRepository contracts.InventoryRepository,
	logger *zap.Logger,
) contracts.PrescriptionUsecase {
	return &prescriptionUsecase{
		PrescriptionRepository: prescriptionRepository,
		PatientRepository:      patientRepository,
		InventoryRepository:    inventoryRepository,
		Log:                    logger,
	}
}

func (uc *prescriptionUsecase) CreatePrescription(ctx context.Context, tenantID, doctorID string, request *requests.CreatePrescription) (string, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("prescriptionUsecase.CreatePrescription called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingTenantIDKey, tenantID),
		zap.String(constvars.LoggingDoctorIDKey, doctorID),
	)

	patient, err := uc.PatientRepository.FindByID(ctx, tenantID, request.PatientID)
	if err != nil {
		return "", err
	}
	if patient == nil {
		return "", exceptions.ErrPatientNotFound(nil)
	}

	items := make([]models.PrescriptionItem, 0, len(request.Items))
	for _, item := range request.Items {
		items = append(items, models.PrescriptionItem{
			MedicineID:   item.MedicineID,
			Name:         item.Name,
			Dosage:       item.Dosage,
			Frequency:    item.Frequency,
			DurationDays: item.DurationDays,
			Quantity:     item.Quantity,
			Instructions: item.Instructions,
		})
	}

	now := time.Now()
	prescription := &models.Prescription{
		TenantID:      tenantID,
		PatientID:     request.PatientID,
		DoctorID:      doctorID,
		AppointmentID: request.AppointmentID,
		Items:         items,
		Notes:         request.Notes,
		IsDispensed:   false,
		IssuedAt:      now,
	}
	prescription.CreatedAt = now
	prescription.UpdatedAt = now

	return uc.PrescriptionRepository.CreatePrescription(ctx, prescription)
}

func (uc *prescriptionUsecase) GetPrescriptionByID(ctx context.Context, tenantID, prescriptionID string) (*responses.Prescription, error) {
	prescription, err := uc.PrescriptionRepository.FindByID(ctx, tenantID, prescriptionID)
	if err != nil {
		return nil, err
	}
	if prescription == nil {
		return nil, exceptions.ErrDataNotFound(nil)
	}
	return buildPrescriptionResponse(prescription), nil
}

func (uc *prescriptionUsecase) GetPrescriptionsByPatient(ctx context.Context, tenantID, patientID string, pagination *requests.Pagination) ([]responses.Prescription, int, error) {
	prescriptions, total, err := uc.PrescriptionRepository.FindByPatientID(ctx, tenantID, patientID, pagination.Page, pagination.PageSize)
	if err != nil {
		return nil, 0, err
	}

	results := make([]responses.Prescription, 0, len(prescriptions))
	for i := range prescriptions {
		results = append(results, *buildPrescriptionResponse(&prescriptions[i]))
	}
	return results, total, nil
}

// DispensePrescription decrements stock for every item that references an
// inventory record, then marks the prescription dispensed. Stock is checked
// before any decrement so a shortage on the last item does not leave the
// earlier ones half-applied.
func (uc *prescriptionUsecase) DispensePrescription(ctx context.Context, tenantID, prescriptionID string) error {
	prescription, err := uc.PrescriptionRepository.FindByID(ctx, tenantID, prescriptionID)
	if err != nil {
		return err
	}
	if prescription == nil {
		return exceptions.ErrDataNotFound(nil)
	}
	if prescription.IsDispensed {
		return exceptions.ErrInvalidStatusTransition(nil)
	}

	for _, item := range prescription.Items {
		if item.MedicineID == "" {
			continue
		}
		stockItem, err := uc.InventoryRepository.FindByID(ctx, tenantID, item.MedicineID)
		if err != nil {
			return err
		}
		if stockItem == nil || stockItem.QuantityInStock < item.Quantity {
			return exceptions.ErrInsufficientStock(nil)
		}
	}

	for _, item := range prescription.Items {
		if item.MedicineID == "" {
			continue
		}
		err = uc.InventoryRepository.AdjustStock(ctx, tenantID, item.MedicineID, -item.Quantity)
		if err != nil {
			return err
		}
	}

	return uc.PrescriptionRepository.MarkDispensed(ctx, tenantID, prescriptionID)
}

func buildPrescriptionResponse(prescription *models.Prescription) *responses.Prescription {
	return &responses.Prescription{
		ID:            prescription.ID,
		PatientID:     prescription.PatientID,
		DoctorID:      prescription.DoctorID,
		AppointmentID: prescription.AppointmentID,
		Items:         prescription.Items,
		Notes:         prescription.Notes,
		IsDispensed:   prescription.IsDispensed,
		IssuedAt:      prescription.IssuedAt,
	}
}
