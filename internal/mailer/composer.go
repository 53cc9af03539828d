package mailer

import (
	"fmt"
	"strings"
)

// signature is the footer every plain-text template ends with.
const signature = `Echipa Cutie ❤️

---
cutie - florărie, cafenea și comunitate
Strada Comunității 123, Cluj-Napoca
Telefon: +40 264 123 456
Email: cutie.cafea@gmail.com`

// reservationTypeLabels maps the booking form's type values to the
// human-readable labels used inside emails.
var reservationTypeLabels = map[string]string{
	"table":           "Rezervare masă",
	"flowers":         "Rezervare flori",
	"space":           "Rezervare spațiu",
	"community-event": "Pachet eveniment comunitar",
	"corporate-event": "Pachet team building corporativ",
	"photo-session":   "Sesiune foto instant",
}

// reservationTypeFallback is used for any type value outside the fixed set.
const reservationTypeFallback = "Rezervare"

// ReservationTypeLabel returns the display label for a reservation type,
// falling back to a generic label for unknown values.
func ReservationTypeLabel(t string) string {
	if label, ok := reservationTypeLabels[t]; ok {
		return label
	}
	return reservationTypeFallback
}

// Compose renders the subject and body for a notification request. It is a
// pure function of the request: no network, no shared state. Requests with
// missing required fields fail with ErrValidation before anything is
// rendered; an unrecognized tag fails with ErrUnknownRequestType.
func Compose(req *Request) (*Message, error) {
	if err := req.validate(); err != nil {
		return nil, err
	}
	switch req.Type {
	case TypeReservation:
		return composeReservation(req), nil
	case TypeDecline:
		return composeDecline(req), nil
	case TypeEvent:
		return composeEvent(req), nil
	case TypeNewsletter:
		return &Message{Subject: req.Subject, HTML: req.HTMLBody}, nil
	}
	// validate() already rejected unknown tags.
	return nil, ErrUnknownRequestType
}

func composeReservation(req *Request) *Message {
	party := req.PartySize
	if party == "" {
		party = "1"
	}
	persons := "persoane"
	if party == "1" {
		persons = "persoană"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Salut, %s!\n\n", req.Name)
	fmt.Fprintf(&b, "Mulțumim și confirmăm rezervarea din data de %s la ora %s pentru %s %s la noi la locație.\n\n",
		req.ReservationDate, req.ReservationTime, party, persons)
	b.WriteString("Detalii rezervare:\n")
	fmt.Fprintf(&b, "- Tip rezervare: %s\n", ReservationTypeLabel(req.ReservationType))
	fmt.Fprintf(&b, "- Data: %s\n", req.ReservationDate)
	fmt.Fprintf(&b, "- Ora: %s\n", req.ReservationTime)
	if req.PartySize != "" {
		fmt.Fprintf(&b, "- Număr persoane: %s\n", req.PartySize)
	}
	if req.SpecialRequests != "" {
		fmt.Fprintf(&b, "- Cerințe speciale: %s\n", req.SpecialRequests)
	}
	b.WriteString("\nTe așteptăm cu drag!\n\nO zi minunată!\n\n")
	b.WriteString(signature)

	return &Message{
		Subject: fmt.Sprintf("Confirmare rezervare %s", req.ReservationDate),
		Text:    b.String(),
	}
}

func composeDecline(req *Request) *Message {
	var b strings.Builder
	fmt.Fprintf(&b, "Salut, %s!\n\n", req.Name)
	b.WriteString("Îți mulțumim pentru rezervarea făcută la noi. Din păcate, nu o putem onora de această dată.\n\n")
	fmt.Fprintf(&b, "Motiv: %s\n\n", req.Reason)
	b.WriteString("Ne pare rău pentru neplăcere și sperăm să te revedem curând.\n\n")
	b.WriteString(signature)

	return &Message{
		Subject: "Rezervarea ta la Cutie",
		Text:    b.String(),
	}
}

func composeEvent(req *Request) *Message {
	var b strings.Builder
	fmt.Fprintf(&b, "Salut, %s!\n\n", req.Name)
	fmt.Fprintf(&b, "Mulțumim pentru înregistrarea la evenimentul \"%s\"!\n\n", req.EventTitle)
	b.WriteString("Te-ai înregistrat cu succes și îți rezervăm un loc. Vei primi mai multe detalii cu câteva zile înainte de eveniment.\n\n")
	b.WriteString("Te așteptăm cu drag!\n\n")
	b.WriteString(signature)

	return &Message{
		Subject: fmt.Sprintf("Confirmare înregistrare - %s", req.EventTitle),
		Text:    b.String(),
	}
}
