package rabbitmq

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/streadway/amqp"
)

// Message служебные поля публикуемого сообщения.
type Message struct {
	ID        string
	Type      string
	Timestamp time.Time
	Body      any
}

// PublishMessage публикует сообщение в RabbitMQ в виде JSON.
func PublishMessage(ch *amqp.Channel, exchange string, routingKey string, msg Message) error {
	const op = "rabbitmq.PublishMessage"
	body, err := json.Marshal(msg.Body)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	err = ch.Publish(
		exchange,
		routingKey,
		false,
		false,
		amqp.Publishing{
			ContentType:  "application/json",
			MessageId:    msg.ID,
			Type:         msg.Type,
			Timestamp:    msg.Timestamp,
			Body:         body,
			DeliveryMode: amqp.Persistent,
		},
	)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}
