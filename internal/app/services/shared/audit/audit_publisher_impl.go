package audit

import (
	"clinicgate-service/internal/app/config"
	"clinicgate-service/internal/app/contracts"
	"clinicgate-service/internal/app/models"
	"clinicgate-service/internal/pkg/exceptions"
	"context"

	"github.com/goccy/go-json"
	"github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

type auditPublisher struct {
	Connection     *amqp091.Connection
	InternalConfig *config.InternalConfig
	Log            *zap.Logger
}

func NewAuditPublisher(connection *amqp091.Connection, internalConfig *config.InternalConfig, logger *zap.Logger) contracts.AuditPublisher {
	return &auditPublisher{
		Connection:     connection,
		InternalConfig: internalConfig,
		Log:            logger,
	}
}

func (p *auditPublisher) PublishAuditEvent(ctx context.Context, event *models.AuditEvent) error {
	body, err := json.Marshal(event)
	if err != nil {
		return exceptions.ErrCannotMarshalJSON(err)
	}

	channel, err := p.Connection.Channel()
	if err != nil {
		return exceptions.ErrAuditPublish(err)
	}
	defer channel.Close()

	queue, err := channel.QueueDeclare(
		p.InternalConfig.Audit.QueueName,
		true,
		false,
		false,
		false,
		nil,
	)
	if err != nil {
		return exceptions.ErrAuditPublish(err)
	}

	err = channel.PublishWithContext(ctx,
		"",
		queue.Name,
		false,
		false,
		amqp091.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp091.Persistent,
			Body:         body,
		},
	)
	if err != nil {
		return exceptions.ErrAuditPublish(err)
	}

	p.Log.Debug("audit event published",
		zap.String("queue", queue.Name),
		zap.String("action", event.Action),
	)
	return nil
}
