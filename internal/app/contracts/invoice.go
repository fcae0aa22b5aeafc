package contracts

import (
	"context"

	"clinicstack-service/internal/app/models"
	"clinicstack-service/internal/pkg/dto/requests"
	"clinicstack-service/internal/pkg/dto/responses"
)

type InvoiceRepository interface {
	CreateInvoice(ctx context.Context, invoice *models.Invoice) (string, error)
	FindByID(ctx context.Context, tenantID, invoiceID string) (*models.Invoice, error)
	FindAll(ctx context.Context, tenantID, status string, page, pageSize int) ([]models.Invoice, int, error)
	UpdateInvoice(ctx context.Context, invoice *models.Invoice) error
	NextInvoiceSequence(ctx context.Context, tenantID string) (int64, error)
}

type InvoiceUsecase interface {
	CreateInvoice(ctx context.Context, tenantID string, request *requests.CreateInvoice) (string, error)
	GetInvoiceByID(ctx context.Context, tenantID, invoiceID string) (*responses.Invoice, error)
	GetInvoices(ctx context.Context, tenantID, status string, pagination *requests.Pagination) ([]responses.Invoice, int, error)
	IssueInvoice(ctx context.Context, tenantID, invoiceID string) (*responses.Invoice, error)
	PayInvoice(ctx context.Context, tenantID, invoiceID string) error
	VoidInvoice(ctx context.Context, tenantID, invoiceID string) error
}
