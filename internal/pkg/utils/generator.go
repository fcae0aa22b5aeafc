package utils

import (
	"fmt"
	"time"

	"clinicstack-service/internal/pkg/constvars"

	"github.com/google/uuid"
)

func GenerateRequestID() string {
	return constvars.REQUEST_ID_PREFIX + uuid.NewString()
}

func GenerateSessionID() string {
	return uuid.NewString()
}

// GenerateInvoiceNumber renders a per-tenant sequential invoice number, e.g.
// INV-2026-000042.
func GenerateInvoiceNumber(sequence int64, issuedAt time.Time) string {
	return fmt.Sprintf("INV-%d-%06d", issuedAt.Year(), sequence)
}

// GenerateObjectName builds a collision-free MinIO object name for a patient
// document upload.
func GenerateObjectName(tenantID, patientID, fileName string) string {
	return fmt.Sprintf("%s/%s/%s_%s", tenantID, patientID, uuid.NewString(), fileName)
}
