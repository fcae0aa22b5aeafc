package constvars

// Validation messages mapper
var CustomValidationErrorMessages = map[string]string{
	"required":   "is required",
	"email":      "must be a valid email",
	"alphanum":   "must contain only alphanumeric characters",
	"min":        "must be at least %s characters long",
	"max":        "maximum at %s characters long",
	"numeric":    "must be a number",
	"oneof":      "must be one of [%s]",
	"gt":         "must be greater than %s",
	"gte":        "must be greater than or equal to %s",
	"lt":         "must be less than %s",
	"lte":        "must be less than or equal to %s",
	"password":   "must be at least 8 characters long, contain at least one special character, and one uppercase letter",
	"clock_time": "must be a 24-hour clock time formatted as HH:MM",
	"date_iso":   "must be a date formatted as YYYY-MM-DD",
	"phone":      "must be a valid phone number",
	"slug":       "must contain only lowercase letters, digits and hyphens",
}

var TagsWithParams = map[string]bool{
	"min":   true,
	"max":   true,
	"oneof": true,
	"gt":    true,
	"gte":   true,
	"lt":    true,
	"lte":   true,
}

// Error messages for clients
const (
	ErrClientCannotProcessRequest          = "failed to process your request"
	ErrClientSomethingWrongWithApplication = "there is something wrong with the application"
	ErrClientServerLongRespond             = "the app taking too long to respond"
	ErrClientNotAuthorized                 = "you can't access this feature"
	ErrClientNotLoggedIn                   = "your session ended, please login again"
	ErrClientInvalidEmailOrPassword        = "invalid email or password"
	ErrClientEmailAlreadyExists            = "email already used"
	ErrClientDataNotFound                  = "the data you are looking for does not exist"
	ErrClientClinicNotFound                = "clinic not found"
	ErrClientDoctorNotFound                = "doctor not found"
	ErrClientPatientNotFound               = "patient not found"
	ErrClientAppointmentNotFound           = "appointment not found"
	ErrClientInvoiceNotFound               = "invoice not found"
	ErrClientSlotNoLongerAvailable         = "the selected time slot is no longer available"
	ErrClientInvalidStatusTransition       = "the appointment cannot be moved to that status"
	ErrClientInsufficientStock             = "not enough stock to dispense"
	ErrClientScheduleAlreadyExists         = "a schedule already exists for this doctor"
	ErrClientInvalidDateFormat             = "date must be formatted as YYYY-MM-DD"
	ErrClientOnlineBookingDisabled         = "online booking is not available for this doctor"
	ErrClientFileTooLarge                  = "the uploaded file is too large"
)

// Availability messages shown verbatim in the booking UI. These are normal
// outcomes, not errors.
const (
	MsgDoctorNotWorking        = "Doctor is not available on this date"
	MsgDoctorOnLeave           = "Doctor is on leave on this date"
	MsgFullyBooked             = "No available slots for this date, all slots are booked"
	MsgNoScheduleConfigured    = "No schedule has been configured for this doctor"
	MsgPastDate                = "Cannot book appointments for past dates"
	MsgBeyondBookingWindow     = "This date is beyond the allowed booking window"
	MsgNotAcceptingAppointment = "Doctor is not accepting appointments"
)

// Error messages for developers
const (
	ErrDevInvalidInput          = "invalid input"
	ErrDevCannotParseJSON       = "cannot parse JSON"
	ErrDevCannotParseDate       = "cannot parse date"
	ErrDevValidationFailed      = "validation failed"
	ErrDevDocumentNotFound      = "document not found"
	ErrDevInvalidCredentials    = "invalid credentials"
	ErrDevFailedToHashPassword  = "failed to hash password"
	ErrDevURLParamIDValidation  = "failed to validate URL param: %s"
	ErrDevCannotParseMultipart  = "cannot parse multipart form"
	ErrDevServerDeadline        = "server deadline exceeded"
	ErrDevEmailAlreadyExists    = "email already exists"
	ErrDevScheduleAlreadyExists = "doctor schedule already exists for this tenant"
	ErrDevSlotCapacityReached   = "slot capacity reached"
	ErrDevStatusTransition      = "illegal appointment status transition"
	ErrDevStockUnderflow        = "stock adjustment would go below zero"

	// Authentication messages
	ErrDevAuthSigningMethod  = "unexpected signing method"
	ErrDevAuthTokenInvalid   = "invalid token"
	ErrDevAuthTokenExpired   = "token expired"
	ErrDevAuthTokenMissing   = "token missing"
	ErrDevAuthInvalidSession = "invalid session"
	ErrDevAuthGenerateToken  = "failed to generate token"
	ErrDevAuthRoleNotAllowed = "role not allowed for this endpoint"

	// MongoDB messages
	ErrDevDBFailedToFindDocument   = "failed to find document in MongoDB"
	ErrDevDBFailedToInsertDocument = "failed to insert document into MongoDB"
	ErrDevDBFailedToUpdateDocument = "failed to update document in MongoDB"
	ErrDevDBFailedToDeleteDocument = "failed to delete document in MongoDB"
	ErrDevDBFailedToCountDocument  = "failed to count documents in MongoDB"
	ErrDevDBFailedToAggregate      = "failed to run aggregation in MongoDB"
	ErrDevDBNotObjectID            = "provided ID is not a valid ObjectID"

	// Redis messages
	ErrDevRedisFailedToSet    = "failed to set value in Redis"
	ErrDevRedisFailedToGet    = "failed to get value from Redis"
	ErrDevRedisFailedToDelete = "failed to delete value from Redis"

	// Messaging / storage
	ErrDevRabbitMQFailedToPublish = "failed to publish message to RabbitMQ"
	ErrDevMinioFailedToUpload     = "failed to upload object to MinIO"
	ErrDevMinioFailedToPresign    = "failed to create presigned URL from MinIO"

	ErrDevCannotMarshalJSON = "cannot marshal JSON"
)
