package mailer

import (
	"github.com/rs/zerolog"
	"gopkg.in/gomail.v2"
)

// Mailer delivers one HTML email. Implementations are best-effort
// collaborators; nothing in the write path depends on them.
type Mailer interface {
	Send(to, subject, html string) error
}

type SMTPMailer struct {
	dialer *gomail.Dialer
	from   string
}

func NewSMTPMailer(host string, port int, user, password, from string) *SMTPMailer {
	return &SMTPMailer{
		dialer: gomail.NewDialer(host, port, user, password),
		from:   from,
	}
}

func (m *SMTPMailer) Send(to, subject, html string) error {
	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/html", html)
	return m.dialer.DialAndSend(msg)
}

// Emitter decouples notification dispatch from the persistence path.
// Persistence success is never contingent on delivery.
type Emitter interface {
	Emit(to, subject, html string)
}

// AsyncEmitter sends on a goroutine and logs failures. No retries; a lost
// notification is accepted (the data store stays consistent).
type AsyncEmitter struct {
	mailer Mailer
	log    zerolog.Logger
}

func NewAsyncEmitter(mailer Mailer, log zerolog.Logger) *AsyncEmitter {
	return &AsyncEmitter{mailer: mailer, log: log}
}

func (e *AsyncEmitter) Emit(to, subject, html string) {
	go func() {
		if err := e.mailer.Send(to, subject, html); err != nil {
			e.log.Error().Err(err).Str("to", to).Str("subject", subject).Msg("email dispatch failed")
		}
	}()
}
