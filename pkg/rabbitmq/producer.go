/**
 * @description
 * This package publishes application events to a RabbitMQ topic exchange so
 * downstream services can react to account decisions asynchronously.
 *
 * @dependencies
 * - github.com/rabbitmq/amqp091-go: The RabbitMQ client.
 */
package rabbitmq

import (
	"context"
	"encoding/json"
	"log"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
)

// Publisher is the interface implemented by types that can publish events.
type Publisher interface {
	Publish(ctx context.Context, exchange, routingKey string, body interface{}) error
	Close()
}

// EventProducer publishes JSON events to durable topic exchanges.
type EventProducer struct {
	conn    *amqp.Connection
	channel *amqp.Channel
}

// NewEventProducer dials RabbitMQ and opens a channel. The dial is bounded so
// startup cannot hang indefinitely on a dead broker.
func NewEventProducer(amqpURL string) (*EventProducer, error) {
	conn, err := amqp.DialConfig(amqpURL, amqp.Config{Dial: amqp.DefaultDial(10 * time.Second)})
	if err != nil {
		return nil, err
	}

	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, err
	}

	return &EventProducer{conn: conn, channel: ch}, nil
}

// Publish sends a message to an exchange with the given routing key,
// declaring the exchange as a durable topic if it does not exist yet.
func (p *EventProducer) Publish(ctx context.Context, exchange, routingKey string, body interface{}) error {
	if err := p.channel.ExchangeDeclare(exchange, "topic", true, false, false, false, nil); err != nil {
		log.Printf("Failed to declare exchange '%s': %v", exchange, err)
		return err
	}

	jsonBody, err := json.Marshal(body)
	if err != nil {
		return err
	}

	err = p.channel.PublishWithContext(ctx,
		exchange,
		routingKey,
		false, // mandatory
		false, // immediate
		amqp.Publishing{
			ContentType: "application/json",
			Timestamp:   time.Now(),
			Body:        jsonBody,
		},
	)
	if err != nil {
		log.Printf("Failed to publish to exchange '%s': %v", exchange, err)
		return err
	}

	log.Printf("Published message to exchange '%s' with routing key '%s'", exchange, routingKey)
	return nil
}

// Close closes the RabbitMQ channel and connection.
func (p *EventProducer) Close() {
	if p.channel != nil {
		p.channel.Close()
	}
	if p.conn != nil {
		p.conn.Close()
	}
}
