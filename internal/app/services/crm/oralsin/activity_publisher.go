package oralsin

import (
	"context"
	"debtflow-service/internal/app/contracts"
	"debtflow-service/internal/app/models"
	"debtflow-service/internal/pkg/constvars"
	"debtflow-service/internal/pkg/exceptions"

	"github.com/goccy/go-json"
	"github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

type activityPublisher struct {
	Channel *amqp091.Channel
	Log     *zap.Logger
}

// NewActivityPublisher declares the activities exchange and returns the
// broker-backed publisher for contact-history records.
func NewActivityPublisher(conn *amqp091.Connection, logger *zap.Logger) (contracts.ActivityPublisher, error) {
	channel, err := conn.Channel()
	if err != nil {
		return nil, err
	}
	err = channel.ExchangeDeclare(
		constvars.ExchangeActivities,
		"topic",
		true,
		false,
		false,
		false,
		nil,
	)
	if err != nil {
		return nil, err
	}
	return &activityPublisher{
		Channel: channel,
		Log:     logger,
	}, nil
}

func (p *activityPublisher) PublishContactHistory(ctx context.Context, history *models.ContactHistory) error {
	body, err := json.Marshal(history)
	if err != nil {
		return exceptions.ErrCannotMarshalJSON(err)
	}

	err = p.Channel.PublishWithContext(ctx,
		constvars.ExchangeActivities,
		constvars.RoutingKeyContactHistory,
		false,
		false,
		amqp091.Publishing{
			ContentType:  constvars.MIMEApplicationJSON,
			DeliveryMode: amqp091.Persistent,
			Body:         body,
		},
	)
	if err != nil {
		return exceptions.ErrRabbitMQPublish(err)
	}

	p.Log.Info("activityPublisher.PublishContactHistory published",
		zap.String(constvars.LoggingExchangeKey, constvars.ExchangeActivities),
		zap.String(constvars.LoggingRoutingKeyKey, constvars.RoutingKeyContactHistory),
		zap.String(constvars.LoggingHistoryIDKey, history.ID),
	)
	return nil
}
