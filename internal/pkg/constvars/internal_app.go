package constvars

type ContextKey string

const (
	CONTEXT_REQUEST_ID_KEY           ContextKey = "request_id"
	CONTEXT_SESSION_DATA_KEY         ContextKey = "session_data"
	CONTEXT_TENANT_ID_KEY            ContextKey = "tenant_id"
	CONTEXT_IS_CLIENT_REQUEST_ID_KEY ContextKey = "is_client_request_id"
)

const (
	REQUEST_ID_PREFIX = "CLNC_SVC_"
)

const (
	AppPaginationUrlFormat = "%s?page=%d&page_size=%d"
)

// Staff roles
const (
	RoleAdmin        = "admin"
	RoleDoctor       = "doctor"
	RoleReceptionist = "receptionist"
)

// Appointment statuses
const (
	AppointmentStatusScheduled  = "scheduled"
	AppointmentStatusConfirmed  = "confirmed"
	AppointmentStatusInProgress = "in-progress"
	AppointmentStatusCompleted  = "completed"
	AppointmentStatusCancelled  = "cancelled"
	AppointmentStatusNoShow     = "no-show"
)

// Appointment sources
const (
	AppointmentSourceDashboard = "dashboard"
	AppointmentSourceOnline    = "online"
)

// Invoice statuses
const (
	InvoiceStatusDraft  = "draft"
	InvoiceStatusIssued = "issued"
	InvoiceStatusPaid   = "paid"
	InvoiceStatusVoid   = "void"
)

// Mongo collections
const (
	MongoCollectionTenants          = "tenants"
	MongoCollectionUsers            = "users"
	MongoCollectionPatients         = "patients"
	MongoCollectionDoctors          = "doctors"
	MongoCollectionDoctorSchedules  = "doctor_schedules"
	MongoCollectionAppointments     = "appointments"
	MongoCollectionPrescriptions    = "prescriptions"
	MongoCollectionInventory        = "inventory"
	MongoCollectionInvoices         = "invoices"
	MongoCollectionTaxConfigs       = "tax_configs"
	MongoCollectionPatientDocuments = "patient_documents"
	MongoCollectionCounters         = "counters"
)

// Redis key formats
const (
	RedisKeySessionFormat        = "session:%s"
	RedisKeyDoctorScheduleFormat = "schedule:%s:%s"
	RedisKeyTenantSlugFormat     = "tenant_slug:%s"
)

// Date and clock-time layouts used on the wire.
const (
	DateLayoutISO   = "2006-01-02"
	ClockTimeLayout = "15:04"
)

const (
	WeekdayCount = 7
)
