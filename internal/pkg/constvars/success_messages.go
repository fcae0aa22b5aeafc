package constvars

const (
	// Generic messages
	ResponseUnknown = "unknown"
	ResponseSuccess = "success"

	// Auth messages
	LoginSuccess          = "successfully login"
	LogoutSuccess         = "successfully logout"
	ProfileFetchedSuccess = "profile fetched successfully"

	// Entity messages
	PatientCreatedSuccess      = "patient created successfully"
	PatientUpdatedSuccess      = "patient updated successfully"
	PatientDeletedSuccess      = "patient deleted successfully"
	DoctorCreatedSuccess       = "doctor created successfully"
	DoctorUpdatedSuccess       = "doctor updated successfully"
	ScheduleSavedSuccess       = "doctor schedule saved successfully"
	AppointmentBookedSuccess   = "appointment booked successfully"
	AppointmentUpdatedSuccess  = "appointment updated successfully"
	PrescriptionCreatedSuccess = "prescription created successfully"
	PrescriptionIssuedSuccess  = "prescription dispensed successfully"
	InventoryCreatedSuccess    = "inventory item created successfully"
	InventoryAdjustedSuccess   = "stock adjusted successfully"
	InvoiceCreatedSuccess      = "invoice created successfully"
	InvoiceIssuedSuccess       = "invoice issued successfully"
	InvoicePaidSuccess         = "invoice marked as paid"
	TaxSavedSuccess            = "tax configuration saved successfully"
	DocumentUploadedSuccess    = "document uploaded successfully"
	AvailabilityFetchedSuccess = "availability fetched successfully"
)
