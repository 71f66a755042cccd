package channel

import (
	"encoding/json"
	"testing"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"campaign-engine/internal/core/domain"
)

func TestQueueName(t *testing.T) {
	assert.Equal(t, "campaign_publish.email", QueueName("campaign_publish.", domain.ChannelEmail))
}

func TestNewMessage(t *testing.T) {
	content := approved()
	at := time.Date(2025, 3, 4, 9, 30, 0, 0, time.UTC)

	msg, err := newMessage(content, at)
	require.NoError(t, err)
	assert.Equal(t, "application/json", msg.ContentType)
	assert.Equal(t, amqp.Persistent, msg.DeliveryMode)
	assert.Equal(t, content.EntryID.String(), msg.CorrelationId)
	assert.NotEmpty(t, msg.MessageId)
	assert.Equal(t, at, msg.Timestamp)

	var payload webhookPayload
	require.NoError(t, json.Unmarshal(msg.Body, &payload))
	assert.Equal(t, "Hit the trails", payload.Body)
	assert.Equal(t, "social", payload.Channel)
}
