package invoices

import (
	"context"
	"fmt"
	"time"

	"clinicstack-service/internal/app/contracts"
	"clinicstack-service/internal/app/models"
	"clinicstack-service/internal/pkg/constvars"
	"clinicstack-service/internal/pkg/dto/requests"
	"clinicstack-service/internal/pkg/dto/responses"
	"clinicstack-service/internal/pkg/exceptions"
	"clinicstack-service/internal/pkg/utils"

	"go.uber.org/zap"
)

type invoiceUsecase struct {
	InvoiceRepository   contracts.InvoiceRepository
	PatientRepository   contracts.PatientRepository
	TaxConfigRepository contracts.TaxConfigRepository
	Log                 *zap.Logger
}

func NewInvoiceUsecase(
	invoiceRepository contracts.InvoiceRepository,
	patientRepository contracts.PatientRepository,
	taxConfigRepository contracts.TaxConfigRepository,
	logger *zap.Logger,
) contracts.InvoiceUsecase {
	return &invoiceUsecase{
		InvoiceRepository:   invoiceRepository,
		PatientRepository:   patientRepository,
		TaxConfigRepository: taxConfigRepository,
		Log:                 logger,
	}
}

func (uc *invoiceUsecase) CreateInvoice(ctx context.Context, tenantID string, request *requests.CreateInvoice) (string, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("invoiceUsecase.CreateInvoice called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingTenantIDKey, tenantID),
	)

	patient, err := uc.PatientRepository.FindByID(ctx, tenantID, request.PatientID)
	if err != nil {
		return "", err
	}
	if patient == nil {
		return "", exceptions.ErrPatientNotFound(nil)
	}

	lineItems := BuildLineItems(request.Items)

	subtotal := 0.0
	for _, item := range lineItems {
		subtotal += item.Amount
	}
	subtotal = RoundMoney(subtotal)
	if request.Discount > subtotal {
		return "", exceptions.BuildNewCustomError(nil, constvars.StatusBadRequest,
			fmt.Sprintf("discount %.2f exceeds subtotal %.2f", request.Discount, subtotal),
			constvars.ErrDevInvalidInput)
	}

	taxConfigs, err := uc.TaxConfigRepository.FindAll(ctx, tenantID, true)
	if err != nil {
		return "", err
	}

	subtotal, taxLines, grandTotal := ComputeTotals(lineItems, request.Discount, taxConfigs)

	now := time.Now()
	invoice := &models.Invoice{
		TenantID:   tenantID,
		PatientID:  request.PatientID,
		Items:      lineItems,
		Subtotal:   subtotal,
		Discount:   request.Discount,
		TaxLines:   taxLines,
		GrandTotal: grandTotal,
		Status:     constvars.InvoiceStatusDraft,
	}
	invoice.CreatedAt = now
	invoice.UpdatedAt = now

	return uc.InvoiceRepository.CreateInvoice(ctx, invoice)
}

func (uc *invoiceUsecase) GetInvoiceByID(ctx context.Context, tenantID, invoiceID string) (*responses.Invoice, error) {
	invoice, err := uc.InvoiceRepository.FindByID(ctx, tenantID, invoiceID)
	if err != nil {
		return nil, err
	}
	if invoice == nil {
		return nil, exceptions.ErrInvoiceNotFound(nil)
	}
	return buildInvoiceResponse(invoice), nil
}

func (uc *invoiceUsecase) GetInvoices(ctx context.Context, tenantID, status string, pagination *requests.Pagination) ([]responses.Invoice, int, error) {
	invoices, total, err := uc.InvoiceRepository.FindAll(ctx, tenantID, status, pagination.Page, pagination.PageSize)
	if err != nil {
		return nil, 0, err
	}

	results := make([]responses.Invoice, 0, len(invoices))
	for i := range invoices {
		results = append(results, *buildInvoiceResponse(&invoices[i]))
	}
	return results, total, nil
}

// IssueInvoice assigns the invoice number from the per-tenant sequence and
// freezes the draft. Only drafts can be issued.
func (uc *invoiceUsecase) IssueInvoice(ctx context.Context, tenantID, invoiceID string) (*responses.Invoice, error) {
	invoice, err := uc.InvoiceRepository.FindByID(ctx, tenantID, invoiceID)
	if err != nil {
		return nil, err
	}
	if invoice == nil {
		return nil, exceptions.ErrInvoiceNotFound(nil)
	}
	if invoice.Status != constvars.InvoiceStatusDraft {
		return nil, exceptions.ErrInvalidStatusTransition(nil)
	}

	sequence, err := uc.InvoiceRepository.NextInvoiceSequence(ctx, tenantID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	invoice.InvoiceNumber = utils.GenerateInvoiceNumber(sequence, now)
	invoice.Status = constvars.InvoiceStatusIssued
	invoice.IssuedAt = &now
	invoice.UpdatedAt = now

	err = uc.InvoiceRepository.UpdateInvoice(ctx, invoice)
	if err != nil {
		return nil, err
	}
	return buildInvoiceResponse(invoice), nil
}

func (uc *invoiceUsecase) PayInvoice(ctx context.Context, tenantID, invoiceID string) error {
	invoice, err := uc.InvoiceRepository.FindByID(ctx, tenantID, invoiceID)
	if err != nil {
		return err
	}
	if invoice == nil {
		return exceptions.ErrInvoiceNotFound(nil)
	}
	if invoice.Status != constvars.InvoiceStatusIssued {
		return exceptions.ErrInvalidStatusTransition(nil)
	}

	now := time.Now()
	invoice.Status = constvars.InvoiceStatusPaid
	invoice.PaidAt = &now
	invoice.UpdatedAt = now

	return uc.InvoiceRepository.UpdateInvoice(ctx, invoice)
}

func (uc *invoiceUsecase) VoidInvoice(ctx context.Context, tenantID, invoiceID string) error {
	invoice, err := uc.InvoiceRepository.FindByID(ctx, tenantID, invoiceID)
	if err != nil {
		return err
	}
	if invoice == nil {
		return exceptions.ErrInvoiceNotFound(nil)
	}
	if invoice.Status == constvars.InvoiceStatusPaid || invoice.Status == constvars.InvoiceStatusVoid {
		return exceptions.ErrInvalidStatusTransition(nil)
	}

	invoice.Status = constvars.InvoiceStatusVoid
	invoice.UpdatedAt = time.Now()

	return uc.InvoiceRepository.UpdateInvoice(ctx, invoice)
}

func buildInvoiceResponse(invoice *models.Invoice) *responses.Invoice {
	return &responses.Invoice{
		ID:            invoice.ID,
		InvoiceNumber: invoice.InvoiceNumber,
		PatientID:     invoice.PatientID,
		Items:         invoice.Items,
		Subtotal:      invoice.Subtotal,
		Discount:      invoice.Discount,
		TaxLines:      invoice.TaxLines,
		GrandTotal:    invoice.GrandTotal,
		Status:        invoice.Status,
		IssuedAt:      invoice.IssuedAt,
		PaidAt:        invoice.PaidAt,
	}
}
