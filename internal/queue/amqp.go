package queue

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/streadway/amqp"
	"go.uber.org/zap"
)

const retryHeader = "x-retry-count"

// AMQPQueue publishes JSON bodies to durable RabbitMQ queues named after the
// topic. Subscribers receive the body as json.RawMessage.
type AMQPQueue struct {
	conn   *amqp.Connection
	mu     sync.Mutex // guards pub; amqp channels are not safe for concurrent publishing
	pub    *amqp.Channel
	logger *zap.Logger

	MaxRetries int
}

// DialAMQP connects to the broker at url.
func DialAMQP(url string, logger *zap.Logger) (*AMQPQueue, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("dial amqp: %w", err)
	}
	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("open amqp channel: %w", err)
	}
	return &AMQPQueue{conn: conn, pub: ch, logger: logger, MaxRetries: DefaultMaxRetries}, nil
}

func declare(ch *amqp.Channel, topic string) (amqp.Queue, error) {
	return ch.QueueDeclare(
		topic, // name
		true,  // durable
		false, // delete when unused
		false, // exclusive
		false, // no-wait
		nil,   // arguments
	)
}

// Publish marshals payload to JSON and sends it to the topic's queue.
func (q *AMQPQueue) Publish(topic string, payload any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("encode payload: %w", err)
	}
	return q.publish(topic, body, 0)
}

func (q *AMQPQueue) publish(topic string, body []byte, retries int) error {
	q.mu.Lock()
	defer q.mu.Unlock()

	if _, err := declare(q.pub, topic); err != nil {
		return fmt.Errorf("declare queue %s: %w", topic, err)
	}
	return q.pub.Publish("", topic, false, false, amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		Headers:      amqp.Table{retryHeader: int32(retries)},
		Body:         body,
	})
}

// Subscribe consumes the topic on a dedicated channel. A failed delivery is
// republished with an incremented retry header until MaxRetries is reached,
// after which it is dropped.
func (q *AMQPQueue) Subscribe(topic string, handler Handler) error {
	ch, err := q.conn.Channel()
	if err != nil {
		return fmt.Errorf("open consumer channel: %w", err)
	}
	if _, err := declare(ch, topic); err != nil {
		ch.Close()
		return fmt.Errorf("declare queue %s: %w", topic, err)
	}
	msgs, err := ch.Consume(
		topic,
		"",
		false, // autoAck = false for reliability
		false,
		false,
		false,
		nil,
	)
	if err != nil {
		ch.Close()
		return fmt.Errorf("register consumer: %w", err)
	}

	go func() {
		defer ch.Close()
		for d := range msgs {
			q.deliver(topic, d, handler)
		}
	}()
	return nil
}

func (q *AMQPQueue) deliver(topic string, d amqp.Delivery, handler Handler) {
	err := handler(json.RawMessage(d.Body))
	if err == nil {
		d.Ack(false)
		return
	}

	retries := retryCount(d.Headers) + 1
	if retries > q.MaxRetries {
		q.logger.Error("message permanently failed",
			zap.String("topic", topic), zap.Int("attempts", retries), zap.Error(err))
		d.Nack(false, false)
		return
	}

	q.logger.Warn("message failed, requeueing",
		zap.String("topic", topic), zap.Int("attempt", retries), zap.Error(err))
	if perr := q.publish(topic, d.Body, retries); perr != nil {
		q.logger.Error("requeue failed", zap.String("topic", topic), zap.Error(perr))
		d.Nack(false, true)
		return
	}
	d.Ack(false)
}

func retryCount(h amqp.Table) int {
	switch v := h[retryHeader].(type) {
	case int32:
		return int(v)
	case int64:
		return int(v)
	case int:
		return v
	}
	return 0
}

// Close shuts down the publishing channel and the connection, which also
// stops every consumer.
func (q *AMQPQueue) Close() error {
	q.mu.Lock()
	defer q.mu.Unlock()
	if err := q.pub.Close(); err != nil {
		q.logger.Warn("close amqp channel", zap.Error(err))
	}
	return q.conn.Close()
}
