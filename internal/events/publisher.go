package events

//go:generate go run go.uber.org/mock/mockgen -source=./publisher.go -destination=./mocks/publisher_mock.go -package=mocks

import (
	"context"
	"fmt"

	"hotel/config"
	"hotel/infras/kafka"
	"hotel/infras/otel"
	"hotel/shared/constant"
)

type Publisher interface {
	Publish(ctx context.Context, events ...Event) error
}

type publisherImpl struct {
	client kafka.Client
	topic  string
	otel   otel.Otel
}

func NewPublisher(client kafka.Client, cfg *config.Config, otel otel.Otel) Publisher {
	return &publisherImpl{
		client: client,
		topic:  cfg.Kafka.Topic,
		otel:   otel,
	}
}

// Publish keys every event by its booking so the events of one booking stay ordered.
func (p *publisherImpl) Publish(ctx context.Context, events ...Event) (err error) {
	ctx, scope := p.otel.NewScope(ctx, constant.OtelEventScopeName, constant.OtelEventScopeName+".Publish")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	messages := make([]kafka.Message, 0, len(events))
	for _, event := range events {
		messages = append(messages, kafka.Message{
			Key:   event.BookingID,
			Value: event,
		})
	}

	if err = p.client.SendMessages(ctx, p.topic, messages...); err != nil {
		return fmt.Errorf("failed to publish events: %w", err)
	}

	return nil
}
