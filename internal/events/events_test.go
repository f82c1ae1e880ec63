package events

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"hotel/config"
	"hotel/infras/kafka"
	kafkaMocks "hotel/infras/kafka/mocks"
	"hotel/infras/mailer"
	mailerMocks "hotel/infras/mailer/mocks"
	otelMocks "hotel/infras/otel/mocks"

	kafkaGo "github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func testConfig() *config.Config {
	cfg := &config.Config{}
	cfg.App.Name = "Grand"
	cfg.Kafka.Topic = "hotel.events"
	cfg.Kafka.ConsumerGroup = "hotel-notifier"

	return cfg
}

func bookingEvent(eventType Type) Event {
	event := New(eventType, time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC))
	event.BookingID = "booking-1"
	event.GuestName = "Ann Lee"
	event.GuestEmail = "ann@example.com"
	event.CheckIn = "2025-03-01"
	event.CheckOut = "2025-03-04"

	return event
}

func TestPublisher_Publish(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := kafkaMocks.NewMockClient(ctrl)

	publisher := NewPublisher(client, testConfig(), otelMocks.NewOtel())

	client.EXPECT().
		SendMessages(gomock.Any(), "hotel.events", gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, messages ...kafka.Message) error {
			require.Len(t, messages, 1)
			assert.Equal(t, "booking-1", messages[0].Key)

			return nil
		})

	require.NoError(t, publisher.Publish(context.Background(), bookingEvent(TypeBookingCreated)))

	client.EXPECT().
		SendMessages(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(errors.New("broker down"))

	assert.Error(t, publisher.Publish(context.Background(), bookingEvent(TypeBookingCreated)))
}

func TestNotifier_Handle(t *testing.T) {
	tests := []struct {
		name        string
		event       Event
		wantSubject string
		wantBody    string
	}{
		{
			name:        "booking created",
			event:       bookingEvent(TypeBookingCreated),
			wantSubject: "Grand: booking confirmed",
			wantBody:    "from 2025-03-01 to 2025-03-04",
		},
		{
			name:        "booking cancelled",
			event:       bookingEvent(TypeBookingCancelled),
			wantSubject: "Grand: booking cancelled",
			wantBody:    "has been cancelled",
		},
		{
			name: "payment recorded",
			event: func() Event {
				event := bookingEvent(TypePaymentRecorded)
				event.Amount = 505
				event.Method = "card"

				return event
			}(),
			wantSubject: "Grand: payment received",
			wantBody:    "505.00 (card)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			mockMailer := mailerMocks.NewMockMailer(ctrl)

			notifier := NewNotifier(mockMailer, testConfig(), otelMocks.NewOtel())

			mockMailer.EXPECT().
				Send(gomock.Any(), gomock.Any()).
				DoAndReturn(func(_ context.Context, mail mailer.Mail) error {
					assert.Equal(t, "ann@example.com", mail.To)
					assert.Equal(t, tt.wantSubject, mail.Subject)
					assert.Contains(t, mail.Body, tt.wantBody)
					assert.Contains(t, mail.Body, "Ann Lee")

					return nil
				})

			assert.NoError(t, notifier.Handle(context.Background(), tt.event))
		})
	}
}

func TestNotifier_HandleSkips(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockMailer := mailerMocks.NewMockMailer(ctrl)

	notifier := NewNotifier(mockMailer, testConfig(), otelMocks.NewOtel())

	noEmail := bookingEvent(TypeBookingCreated)
	noEmail.GuestEmail = ""

	assert.NoError(t, notifier.Handle(context.Background(), noEmail))
	assert.NoError(t, notifier.Handle(context.Background(), bookingEvent(Type("room.cleaned"))))
}

func TestConsumer_Run(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := kafkaMocks.NewMockClient(ctrl)
	mockMailer := mailerMocks.NewMockMailer(ctrl)

	consumer := NewConsumer(client, NewNotifier(mockMailer, testConfig(), otelMocks.NewOtel()), testConfig())

	payload, err := json.Marshal(bookingEvent(TypeBookingCreated))
	require.NoError(t, err)

	mockMailer.EXPECT().Send(gomock.Any(), gomock.Any()).Return(nil).Times(1)

	client.EXPECT().
		Consume(gomock.Any(), "hotel-notifier", "hotel.events", gomock.Any()).
		DoAndReturn(func(ctx context.Context, _, _ string, handler func(context.Context, kafkaGo.Message) error) error {
			assert.NoError(t, handler(ctx, kafkaGo.Message{Value: []byte("not json")}))
			assert.NoError(t, handler(ctx, kafkaGo.Message{Value: payload}))

			return nil
		})

	assert.NoError(t, consumer.Run(context.Background()))
}

func TestConsumer_RunDisabled(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := kafkaMocks.NewMockClient(ctrl)

	consumer := NewConsumer(client, NewNotifier(mailerMocks.NewMockMailer(ctrl), testConfig(), otelMocks.NewOtel()), testConfig())

	client.EXPECT().Consume(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(kafka.ErrDisabled)

	assert.ErrorIs(t, consumer.Run(context.Background()), kafka.ErrDisabled)
}
