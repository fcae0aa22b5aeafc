package storage

import (
	"context"
	"fmt"
	"time"

	"clinicstack-service/internal/app/config"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/sirupsen/logrus"
)

func NewMinio(driverConfig *config.DriverConfig) *minio.Client {
	endpoint := fmt.Sprintf("%s:%s", driverConfig.Minio.Host, driverConfig.Minio.Port)
	client, err := minio.New(endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(driverConfig.Minio.Username, driverConfig.Minio.Password, ""),
		Secure: driverConfig.Minio.UseSSL,
	})
	if err != nil {
		logrus.Fatalf("minio client init failed: %v", err)
	}

	// The document bucket is provisioned out of band; fail fast if it is missing.
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	exists, err := client.BucketExists(ctx, driverConfig.Minio.BucketName)
	if err != nil {
		logrus.Fatalf("minio bucket check failed: %v", err)
	}
	if !exists {
		logrus.Fatalf("minio bucket %q does not exist", driverConfig.Minio.BucketName)
	}

	logrus.Infof("connected to minio, bucket %q", driverConfig.Minio.BucketName)
	return client
}
