package queue

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
)

// Publisher emits a JSON event to a named queue.
type Publisher interface {
	Publish(ctx context.Context, queueName string, event any) error
}

// AMQPPublisher publishes persistent messages over RabbitMQ. Each call
// dials, declares the queue and publishes; connections are short-lived
// so a broker restart needs no reconnect handling here.
type AMQPPublisher struct {
	URL string
	Log *slog.Logger
}

func NewAMQPPublisher(url string, log *slog.Logger) *AMQPPublisher {
	return &AMQPPublisher{URL: url, Log: log}
}

func (p *AMQPPublisher) Publish(ctx context.Context, queueName string, event any) error {
	conn, err := amqp.Dial(p.URL)
	if err != nil {
		p.Log.Warn("amqp dial failed", "queue", queueName, "err", err)
		return err
	}
	defer func() { _ = conn.Close() }()

	ch, err := conn.Channel()
	if err != nil {
		p.Log.Warn("amqp channel open failed", "queue", queueName, "err", err)
		return err
	}
	defer func() { _ = ch.Close() }()

	// Durable so messages survive broker restarts.
	if _, err := ch.QueueDeclare(queueName, true, false, false, false, nil); err != nil {
		p.Log.Warn("amqp queue declare failed", "queue", queueName, "err", err)
		return err
	}

	body, err := json.Marshal(event)
	if err != nil {
		return err
	}

	pub := amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		Timestamp:    time.Now().UTC(),
		Body:         body,
	}
	if err := ch.PublishWithContext(ctx, "", queueName, false, false, pub); err != nil {
		p.Log.Warn("amqp publish failed", "queue", queueName, "err", err)
		return err
	}
	return nil
}
