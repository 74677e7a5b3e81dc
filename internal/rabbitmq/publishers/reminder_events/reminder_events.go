package reminderevents

import (
	"context"
	e "tasknotes/internal/core/domain/errors"
	"tasknotes/internal/core/domain/logging"
	"tasknotes/internal/core/domain/reminder"
	"tasknotes/internal/rabbitmq"
	"tasknotes/internal/rabbitmq/schema"

	"github.com/rabbitmq/amqp091-go"
)

type RabbitMQ struct {
	log        logging.Logger
	channel    *rabbitmq.Channel
	exchange   string
	routingKey string
}

func NewRabbitMQ(log logging.Logger, channel *rabbitmq.Channel, exchange string, routingKey string) *RabbitMQ {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	if channel == nil {
		panic(e.NewNilArgumentError("channel"))
	}
	return &RabbitMQ{log: log, channel: channel, exchange: exchange, routingKey: routingKey}
}

func (p *RabbitMQ) PublishCreated(ctx context.Context, r reminder.Reminder) error {
	return p.publish(ctx, schema.EventReminderCreated, r)
}

func (p *RabbitMQ) PublishDismissed(ctx context.Context, r reminder.Reminder) error {
	return p.publish(ctx, schema.EventReminderDismissed, r)
}

func (p *RabbitMQ) publish(ctx context.Context, eventType string, r reminder.Reminder) error {
	event := schema.ReminderEvent{
		Type:       eventType,
		ReminderID: int64(r.ID),
		TaskID:     int64(r.TaskID),
		RemindAt:   r.RemindAt,
	}
	body, err := event.Marshal()
	if err != nil {
		logging.Error(ctx, p.log, err)
		return err
	}
	err = p.channel.PublishWithContext(ctx, p.exchange, p.routingKey, false, false, amqp091.Publishing{
		ContentType: "application/json",
		Body:        body,
	})
	if err != nil {
		logging.Error(ctx, p.log, err)
		return err
	}
	p.log.Info(
		ctx,
		"AMQP message has been successfully published.",
		logging.Entry("exchange", p.exchange),
		logging.Entry("RK", p.routingKey),
		logging.Entry("event", eventType),
		logging.Entry("reminderID", r.ID),
	)
	return nil
}
