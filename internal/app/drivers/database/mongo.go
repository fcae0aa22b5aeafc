package database

import (
	"context"
	"fmt"
	"time"

	"clinicstack-service/internal/app/config"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

const connectTimeout = 10 * time.Second

func NewMongoDB(driverConfig *config.DriverConfig) *mongo.Client {
	uri := fmt.Sprintf(
		"mongodb://%s:%s@%s:%s",
		driverConfig.MongoDB.Username,
		driverConfig.MongoDB.Password,
		driverConfig.MongoDB.Host,
		driverConfig.MongoDB.Port,
	)

	ctx, cancel := context.WithTimeout(context.Background(), connectTimeout)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri).SetConnectTimeout(connectTimeout))
	if err != nil {
		logrus.Fatalf("mongo connect failed: %v", err)
	}
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		logrus.Fatalf("mongo ping failed: %v", err)
	}

	logrus.Infof("connected to mongo database %q", driverConfig.MongoDB.DbName)
	return client
}
