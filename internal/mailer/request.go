// Package mailer turns notification requests into rendered email messages
// and delivers them over SMTP. Composition is a pure transform: only the
// Transport touches the network, so templates and the inline-image
// rewriter are testable without a relay.
package mailer

import (
	"errors"
	"fmt"
)

// Request tags. The JSON "type" field selects which template renders and
// which fields are required. The first three match the payloads the SPA
// posts to /api/send-reservation-email; newsletter is used internally by
// the newsletter service.
const (
	TypeReservation = "reservation"
	TypeDecline     = "decline"
	TypeEvent       = "event"
	TypeNewsletter  = "newsletter"
)

// ErrUnknownRequestType is returned when the type tag matches no known
// variant. Handlers translate it into an HTTP 400.
var ErrUnknownRequestType = errors.New("unknown request type")

// ErrValidation marks a request rejected before any network call because a
// field required by its type tag is missing or empty. Match with
// errors.Is; the wrapped message names the field.
var ErrValidation = errors.New("invalid request")

// missing builds the canonical validation error for one absent field.
func missing(field string) error {
	return fmt.Errorf("%w: missing %s", ErrValidation, field)
}

// Request is the tagged union the composer consumes. Exactly one variant
// is active, selected by Type; fields belonging to other variants are
// ignored. Field names mirror the JSON bodies the original site sends
// (snake_case for the reservation form, eventTitle camelCase as the SPA
// spells it).
type Request struct {
	Type string `json:"type"`

	// Shared by reservation / decline / event.
	Name  string `json:"name"`
	Email string `json:"email"`

	// Reservation confirmation.
	ReservationDate string `json:"reservation_date"`
	ReservationTime string `json:"reservation_time"`
	ReservationType string `json:"reservation_type"`
	PartySize       string `json:"party_size"`
	SpecialRequests string `json:"special_requests"`

	// Decline.
	Reason string `json:"reason"`

	// Event registration.
	EventTitle string `json:"eventTitle"`

	// Newsletter.
	Subject    string   `json:"subject"`
	HTMLBody   string   `json:"html_body"`
	Recipients []string `json:"recipients"`
}

// validate checks the fields required by the active variant. It reports
// the first missing field only, in declaration order, which keeps error
// messages stable for the UI.
func (r *Request) validate() error {
	switch r.Type {
	case TypeReservation:
		for _, f := range []struct{ name, val string }{
			{"name", r.Name},
			{"email", r.Email},
			{"reservation_date", r.ReservationDate},
			{"reservation_time", r.ReservationTime},
		} {
			if f.val == "" {
				return missing(f.name)
			}
		}
	case TypeDecline:
		for _, f := range []struct{ name, val string }{
			{"name", r.Name},
			{"email", r.Email},
			{"reason", r.Reason},
		} {
			if f.val == "" {
				return missing(f.name)
			}
		}
	case TypeEvent:
		for _, f := range []struct{ name, val string }{
			{"eventTitle", r.EventTitle},
			{"name", r.Name},
			{"email", r.Email},
		} {
			if f.val == "" {
				return missing(f.name)
			}
		}
	case TypeNewsletter:
		if r.Subject == "" {
			return missing("subject")
		}
		if r.HTMLBody == "" {
			return missing("html_body")
		}
		if len(r.Recipients) == 0 {
			return missing("recipients")
		}
	default:
		return fmt.Errorf("%w: %q", ErrUnknownRequestType, r.Type)
	}
	return nil
}

// Attachment is one outgoing mail attachment. CID is set for inline
// images referenced from the HTML body and empty for regular file
// attachments.
type Attachment struct {
	Filename    string
	Content     []byte
	ContentType string
	CID         string
}

// Message is a rendered email ready for the transport. Exactly one of
// Text/HTML is populated: the reservation, decline and event templates are
// plain text; the newsletter is HTML.
type Message struct {
	Subject     string
	Text        string
	HTML        string
	Attachments []Attachment
}

// TransportError wraps a failure reported by the mail relay (rejected
// message or network error). The status transition service treats it as
// an abort signal: stored status must remain pending.
type TransportError struct {
	Err error
}

func (e *TransportError) Error() string { return "mail transport: " + e.Err.Error() }

// Unwrap exposes the provider error for errors.Is/As chains.
func (e *TransportError) Unwrap() error { return e.Err }
