package events

import (
	"context"
	"fmt"

	"hotel/config"
	"hotel/infras/mailer"
	"hotel/infras/otel"
	"hotel/shared/constant"

	"github.com/rs/zerolog/log"
)

// Notifier turns events into guest e-mails.
type Notifier struct {
	mailer    mailer.Mailer
	hotelName string
	otel      otel.Otel
}

func NewNotifier(mailer mailer.Mailer, cfg *config.Config, otel otel.Otel) *Notifier {
	return &Notifier{
		mailer:    mailer,
		hotelName: cfg.App.Name,
		otel:      otel,
	}
}

// Handle mails the guest. Events without a guest e-mail and unknown types are skipped.
func (n *Notifier) Handle(ctx context.Context, event Event) (err error) {
	ctx, scope := n.otel.NewScope(ctx, constant.OtelEventScopeName, constant.OtelEventScopeName+".Handle")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	scope.SetAttributes(map[string]any{
		"event.type": string(event.Type),
		"event.id":   event.ID,
	})

	if event.GuestEmail == "" {
		log.Debug().Str("event", event.ID).Msg("guest has no e-mail, skipping notification")

		return nil
	}

	mail, ok := n.compose(event)
	if !ok {
		log.Warn().Str("type", string(event.Type)).Msg("unknown event type, skipping notification")

		return nil
	}

	return n.mailer.Send(ctx, mail) //nolint:wrapcheck
}

func (n *Notifier) compose(event Event) (mailer.Mail, bool) {
	mail := mailer.Mail{To: event.GuestEmail}

	switch event.Type {
	case TypeBookingCreated:
		mail.Subject = fmt.Sprintf("%s: booking confirmed", n.hotelName)
		mail.Body = fmt.Sprintf("Dear %s,\n\nyour booking %s is confirmed from %s to %s.\n",
			event.GuestName, event.BookingID, event.CheckIn, event.CheckOut)
	case TypeBookingCancelled:
		mail.Subject = fmt.Sprintf("%s: booking cancelled", n.hotelName)
		mail.Body = fmt.Sprintf("Dear %s,\n\nyour booking %s from %s to %s has been cancelled.\n",
			event.GuestName, event.BookingID, event.CheckIn, event.CheckOut)
	case TypePaymentRecorded:
		mail.Subject = fmt.Sprintf("%s: payment received", n.hotelName)
		mail.Body = fmt.Sprintf("Dear %s,\n\nwe received %.2f (%s) for booking %s.\n",
			event.GuestName, event.Amount, event.Method, event.BookingID)
	default:
		return mailer.Mail{}, false
	}

	return mail, true
}
