package messaging

import (
	"fmt"

	"clinicstack-service/internal/app/config"

	"github.com/rabbitmq/amqp091-go"
	"github.com/sirupsen/logrus"
)

func NewRabbitMQ(driverConfig *config.DriverConfig) *amqp091.Connection {
	uri := fmt.Sprintf(
		"amqp://%s:%s@%s:%s/",
		driverConfig.RabbitMQ.Username,
		driverConfig.RabbitMQ.Password,
		driverConfig.RabbitMQ.Host,
		driverConfig.RabbitMQ.Port,
	)

	connection, err := amqp091.Dial(uri)
	if err != nil {
		logrus.Fatalf("rabbitmq dial failed: %v", err)
	}

	logrus.Info("connected to rabbitmq")
	return connection
}
