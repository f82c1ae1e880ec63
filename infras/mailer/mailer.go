package mailer

//go:generate go run go.uber.org/mock/mockgen -source=./mailer.go -destination=./mocks/mailer_mock.go -package=mocks

import (
	"context"
	"fmt"

	"hotel/config"
	"hotel/infras/otel"
	"hotel/shared/constant"

	"github.com/rs/zerolog/log"
	"gopkg.in/gomail.v2"
)

type Mail struct {
	To      string
	Subject string
	Body    string
}

type Mailer interface {
	Send(ctx context.Context, mail Mail) error
}

type mailerImpl struct {
	dialer *gomail.Dialer
	from   string
	otel   otel.Otel
}

// New returns an SMTP mailer. Without an SMTP host the mail is only logged.
func New(config *config.Config, otel otel.Otel) Mailer {
	if config.Mail.Host == "" {
		log.Warn().Msg("SMTP host is not set, mails will only be logged")

		return &logMailer{}
	}

	return &mailerImpl{
		dialer: gomail.NewDialer(config.Mail.Host, config.Mail.Port, config.Mail.Username, config.Mail.Password),
		from:   config.Mail.From,
		otel:   otel,
	}
}

func (m *mailerImpl) Send(ctx context.Context, mail Mail) (err error) {
	_, scope := m.otel.NewScope(ctx, constant.OtelMailScopeName, constant.OtelMailScopeName+".Send")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	scope.SetAttribute("mail.subject", mail.Subject)

	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", mail.To)
	msg.SetHeader("Subject", mail.Subject)
	msg.SetBody("text/plain", mail.Body)

	if err = m.dialer.DialAndSend(msg); err != nil {
		log.Error().Err(err).Str("to", mail.To).Msg("failed to send mail")

		return fmt.Errorf("failed to send mail: %w", err)
	}

	log.Info().Str("to", mail.To).Str("subject", mail.Subject).Msg("mail sent")

	return nil
}

type logMailer struct{}

func (*logMailer) Send(_ context.Context, mail Mail) error {
	log.Info().Str("to", mail.To).Str("subject", mail.Subject).Str("body", mail.Body).Msg("mail not sent, SMTP is not configured")

	return nil
}
