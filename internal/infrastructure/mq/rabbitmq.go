package mq

import (
	"fmt"

	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

// Connection holds the RabbitMQ connection and the channel publishers share.
type Connection struct {
	Connection *amqp.Connection
	Channel    *amqp.Channel
	log        *zap.Logger
}

// Connect dials url, opens a channel and declares queue as durable.
func Connect(url, queue string, log *zap.Logger) (*Connection, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to RabbitMQ: %w", err)
	}
	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("failed to open channel: %w", err)
	}
	if _, err := ch.QueueDeclare(
		queue, // name
		true,  // durable
		false, // delete when unused
		false, // exclusive
		false, // no-wait
		nil,   // arguments
	); err != nil {
		_ = ch.Close()
		_ = conn.Close()
		return nil, fmt.Errorf("failed to declare queue %s: %w", queue, err)
	}
	log.Info("rabbitmq: connected", zap.String("queue", queue))
	return &Connection{Connection: conn, Channel: ch, log: log}, nil
}

func (c *Connection) Close() error {
	if c.Channel != nil {
		if err := c.Channel.Close(); err != nil {
			c.log.Warn("rabbitmq: close channel", zap.Error(err))
		}
	}
	if c.Connection != nil {
		return c.Connection.Close()
	}
	return nil
}
