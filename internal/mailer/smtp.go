package mailer

import (
	"bytes"
	"context"
	"fmt"

	"github.com/wneessen/go-mail"
)

// SMTPConfig carries relay credentials. With Gmail this is the account
// address plus an app-level password, over STARTTLS on port 587.
type SMTPConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string // From header, e.g. `"Cutie" <cutie.cafea@gmail.com>`
}

// SMTPTransport delivers composed messages through an SMTP relay. It is
// the only part of the mailer that performs network I/O.
type SMTPTransport struct {
	client *mail.Client
	from   string
}

// NewSMTPTransport builds a transport speaking PLAIN auth with
// opportunistic STARTTLS, matching how the site has always talked to its
// relay.
func NewSMTPTransport(cfg SMTPConfig) (*SMTPTransport, error) {
	client, err := mail.NewClient(cfg.Host,
		mail.WithPort(cfg.Port),
		mail.WithSMTPAuth(mail.SMTPAuthPlain),
		mail.WithUsername(cfg.Username),
		mail.WithPassword(cfg.Password),
		mail.WithTLSPortPolicy(mail.TLSOpportunistic),
	)
	if err != nil {
		return nil, fmt.Errorf("smtp client: %w", err)
	}
	return &SMTPTransport{client: client, from: cfg.From}, nil
}

// Send delivers one message to one recipient. Inline attachments (those
// with a CID) are embedded so the HTML body can reference them; the rest
// go out as regular attachments. Any relay failure comes back as a
// *TransportError so callers can distinguish delivery problems from their
// own.
func (t *SMTPTransport) Send(ctx context.Context, to string, m *Message) error {
	msg := mail.NewMsg()
	if err := msg.From(t.from); err != nil {
		return &TransportError{Err: err}
	}
	if err := msg.To(to); err != nil {
		return &TransportError{Err: err}
	}
	msg.Subject(m.Subject)
	if m.HTML != "" {
		msg.SetBodyString(mail.TypeTextHTML, m.HTML)
	} else {
		msg.SetBodyString(mail.TypeTextPlain, m.Text)
	}

	for _, a := range m.Attachments {
		opts := []mail.FileOption{mail.WithFileContentType(mail.ContentType(a.ContentType))}
		if a.CID != "" {
			opts = append(opts, mail.WithFileContentID(a.CID))
			if err := msg.EmbedReader(a.Filename, bytes.NewReader(a.Content), opts...); err != nil {
				return &TransportError{Err: err}
			}
			continue
		}
		if err := msg.AttachReader(a.Filename, bytes.NewReader(a.Content), opts...); err != nil {
			return &TransportError{Err: err}
		}
	}

	if err := t.client.DialAndSendWithContext(ctx, msg); err != nil {
		return &TransportError{Err: err}
	}
	return nil
}
