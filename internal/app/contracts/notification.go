package contracts

import "context"

// AppointmentNotification is the message published to the notification queue
// after a successful booking; a separate consumer turns it into email or SMS.
type AppointmentNotification struct {
	TenantID    string `json:"tenantId"`
	PatientName string `json:"patientName"`
	DoctorName  string `json:"doctorName"`
	Date        string `json:"date"`
	StartTime   string `json:"startTime"`
	Source      string `json:"source"`
}

type NotificationPublisher interface {
	PublishAppointmentBooked(ctx context.Context, notification *AppointmentNotification) error
}
