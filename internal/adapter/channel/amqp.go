package channel

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	amqp "github.com/rabbitmq/amqp091-go"

	"campaign-engine/internal/config/configs"
	"campaign-engine/internal/core/domain"
)

// AMQPPublisher hands approved content to a per-channel durable queue.
// Downstream consumers deliver it to the real platform.
type AMQPPublisher struct {
	mu      sync.Mutex
	conn    *amqp.Connection
	channel *amqp.Channel
	prefix  string
	now     func() time.Time
}

func NewAMQPPublisher(cfg configs.AMQP) (*AMQPPublisher, error) {
	conn, err := amqp.Dial(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("connect to amqp: %w", err)
	}
	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("open amqp channel: %w", err)
	}

	for _, c := range domain.Channels {
		_, err = ch.QueueDeclare(
			QueueName(cfg.QueuePrefix, c),
			true,  // durable
			false, // delete when unused
			false, // exclusive
			false, // no-wait
			nil,
		)
		if err != nil {
			_ = ch.Close()
			_ = conn.Close()
			return nil, fmt.Errorf("declare queue for %s: %w", c, err)
		}
	}

	return &AMQPPublisher{conn: conn, channel: ch, prefix: cfg.QueuePrefix, now: time.Now}, nil
}

// QueueName is the queue that carries content of one channel.
func QueueName(prefix string, ch domain.Channel) string {
	return prefix + string(ch)
}

// ForChannel returns a port.Publisher bound to ch.
func (p *AMQPPublisher) ForChannel(ch domain.Channel) *AMQPChannelPublisher {
	return &AMQPChannelPublisher{p: p, queue: QueueName(p.prefix, ch)}
}

// AMQPChannelPublisher publishes to the queue of a single channel.
type AMQPChannelPublisher struct {
	p     *AMQPPublisher
	queue string
}

func (c *AMQPChannelPublisher) Publish(ctx context.Context, content domain.ApprovedContent) (domain.PublishReceipt, error) {
	return c.p.publish(ctx, c.queue, content)
}

func newMessage(content domain.ApprovedContent, at time.Time) (amqp.Publishing, error) {
	body, err := json.Marshal(newPayload(content))
	if err != nil {
		return amqp.Publishing{}, err
	}
	return amqp.Publishing{
		ContentType:   "application/json",
		DeliveryMode:  amqp.Persistent,
		MessageId:     uuid.NewString(),
		CorrelationId: content.EntryID.String(),
		Timestamp:     at,
		Type:          string(content.Channel),
		Body:          body,
	}, nil
}

func (p *AMQPPublisher) publish(ctx context.Context, queue string, content domain.ApprovedContent) (domain.PublishReceipt, error) {
	now := p.now().UTC()
	msg, err := newMessage(content, now)
	if err != nil {
		return domain.PublishReceipt{}, domain.NewPublishError(content.CampaignID, content.Channel, err)
	}

	// amqp channels are not safe for concurrent publishing
	p.mu.Lock()
	err = p.channel.PublishWithContext(ctx,
		"",    // exchange
		queue, // routing key
		false, // mandatory
		false, // immediate
		msg,
	)
	p.mu.Unlock()
	if err != nil {
		return domain.PublishReceipt{}, domain.NewPublishError(content.CampaignID, content.Channel, err)
	}

	return domain.PublishReceipt{Channel: content.Channel, ExternalID: msg.MessageId, PublishedAt: now}, nil
}

func (p *AMQPPublisher) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if err := p.channel.Close(); err != nil {
		_ = p.conn.Close()
		return err
	}
	return p.conn.Close()
}
