package messaging

import (
	"context"

	"clinicstack-service/internal/app/contracts"
	"clinicstack-service/internal/pkg/exceptions"

	"github.com/goccy/go-json"
	"github.com/rabbitmq/amqp091-go"
)

type rabbitMQNotificationPublisher struct {
	connection *amqp091.Connection
	queueName  string
}

func NewRabbitMQNotificationPublisher(connection *amqp091.Connection, queueName string) contracts.NotificationPublisher {
	return &rabbitMQNotificationPublisher{
		connection: connection,
		queueName:  queueName,
	}
}

func (p *rabbitMQNotificationPublisher) PublishAppointmentBooked(ctx context.Context, notification *contracts.AppointmentNotification) error {
	channel, err := p.connection.Channel()
	if err != nil {
		return exceptions.ErrRabbitMQPublish(err)
	}
	defer channel.Close()

	_, err = channel.QueueDeclare(p.queueName, true, false, false, false, nil)
	if err != nil {
		return exceptions.ErrRabbitMQPublish(err)
	}

	body, err := json.Marshal(notification)
	if err != nil {
		return exceptions.ErrCannotMarshalJSON(err)
	}

	err = channel.PublishWithContext(ctx, "", p.queueName, false, false, amqp091.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp091.Persistent,
		Body:         body,
	})
	if err != nil {
		return exceptions.ErrRabbitMQPublish(err)
	}
	return nil
}
