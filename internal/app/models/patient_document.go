package models

import "io"

type PatientDocument struct {
	ID          string `bson:"_id,omitempty"`
	TenantID    string `bson:"tenantId"`
	PatientID   string `bson:"patientId"`
	FileName    string `bson:"fileName"`
	ObjectName  string `bson:"objectName"`
	ContentType string `bson:"contentType"`
	SizeBytes   int64  `bson:"sizeBytes"`
	UploadedBy  string `bson:"uploadedBy"`
	TimeModel   `bson:",inline"`
}

// DocumentUpload carries an incoming multipart upload through the usecase
// layer without buffering the whole file.
type DocumentUpload struct {
	FileName    string
	ContentType string
	SizeBytes   int64
	Reader      io.Reader
}
