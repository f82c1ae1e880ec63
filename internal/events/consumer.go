package events

import (
	"context"
	"fmt"

	"hotel/config"
	"hotel/infras/kafka"

	"github.com/rs/zerolog/log"
	kafkaGo "github.com/segmentio/kafka-go"
)

// Consumer feeds events from the topic into the notifier.
type Consumer struct {
	client   kafka.Client
	notifier *Notifier
	group    string
	topic    string
}

func NewConsumer(client kafka.Client, notifier *Notifier, cfg *config.Config) *Consumer {
	return &Consumer{
		client:   client,
		notifier: notifier,
		group:    cfg.Kafka.ConsumerGroup,
		topic:    cfg.Kafka.Topic,
	}
}

// Run blocks until ctx is cancelled or the topic cannot be read.
func (c *Consumer) Run(ctx context.Context) error {
	log.Info().Str("topic", c.topic).Str("group", c.group).Msg("notifier consuming events")

	if err := c.client.Consume(ctx, c.group, c.topic, c.handle); err != nil {
		return fmt.Errorf("failed to consume events: %w", err)
	}

	return nil
}

func (c *Consumer) handle(ctx context.Context, message kafkaGo.Message) error {
	event, err := kafka.Decode[Event](message)
	if err != nil {
		// Malformed payloads are committed and skipped.
		log.Error().Err(err).Int64("offset", message.Offset).Msg("dropping malformed event")

		return nil
	}

	return c.notifier.Handle(ctx, event)
}
