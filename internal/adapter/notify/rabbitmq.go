package notify

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	domain "loan-origination-backend/internal/domain/notify"

	amqp "github.com/rabbitmq/amqp091-go"
)

// Publisher is the subset of *amqp.Channel used here.
type Publisher interface {
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
}

// QueueNotifier publishes status events as persistent JSON messages on the
// default exchange, routed straight to one queue.
type QueueNotifier struct {
	ch    Publisher
	queue string
}

func NewQueueNotifier(ch Publisher, queue string) *QueueNotifier {
	return &QueueNotifier{ch: ch, queue: queue}
}

func (n *QueueNotifier) StatusChanged(ctx context.Context, ev domain.StatusChanged) error {
	body, err := json.Marshal(ev)
	if err != nil {
		return fmt.Errorf("failed to marshal status event: %w", err)
	}
	err = n.ch.PublishWithContext(
		ctx,
		"",      // exchange
		n.queue, // routing key (queue name)
		false,   // mandatory
		false,   // immediate
		amqp.Publishing{
			DeliveryMode: amqp.Persistent,
			ContentType:  "application/json",
			Type:         "loan.status_changed",
			MessageId:    ev.LoanID + ":" + ev.To,
			Body:         body,
			Timestamp:    time.Now(),
		},
	)
	if err != nil {
		return fmt.Errorf("failed to publish status event: %w", err)
	}
	return nil
}
