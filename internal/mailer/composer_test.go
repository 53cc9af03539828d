package mailer

import (
	"errors"
	"strings"
	"testing"
)

func TestReservationTypeLabels(t *testing.T) {
	known := []string{"table", "flowers", "space", "community-event", "corporate-event", "photo-session"}
	for _, typ := range known {
		if label := ReservationTypeLabel(typ); label == "" || label == reservationTypeFallback {
			t.Errorf("type %q: expected a specific non-empty label, got %q", typ, label)
		}
	}
	for _, typ := range []string{"", "wedding", "TABLE"} {
		if label := ReservationTypeLabel(typ); label != reservationTypeFallback {
			t.Errorf("type %q: expected fallback %q, got %q", typ, reservationTypeFallback, label)
		}
	}
}

func TestComposeReservation(t *testing.T) {
	msg, err := Compose(&Request{
		Type:            TypeReservation,
		Name:            "Ana",
		Email:           "ana@example.com",
		ReservationDate: "2025-05-01",
		ReservationTime: "18:00",
		ReservationType: "table",
		PartySize:       "2",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if msg.Subject != "Confirmare rezervare 2025-05-01" {
		t.Errorf("subject = %q", msg.Subject)
	}
	if !strings.Contains(msg.Text, "2 persoane") {
		t.Errorf("body should mention \"2 persoane\":\n%s", msg.Text)
	}
	if !strings.Contains(msg.Text, "Rezervare masă") {
		t.Errorf("body should carry the table label:\n%s", msg.Text)
	}
	if msg.HTML != "" {
		t.Error("reservation template must be plain text")
	}
}

func TestComposeReservationSingular(t *testing.T) {
	msg, err := Compose(&Request{
		Type:            TypeReservation,
		Name:            "Ana",
		Email:           "ana@example.com",
		ReservationDate: "2025-05-01",
		ReservationTime: "18:00",
		ReservationType: "flowers",
		PartySize:       "1",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(msg.Text, "1 persoană") {
		t.Errorf("party of one should be singular:\n%s", msg.Text)
	}
}

func TestComposeReservationDefaultsPartySize(t *testing.T) {
	msg, err := Compose(&Request{
		Type:            TypeReservation,
		Name:            "Ana",
		Email:           "ana@example.com",
		ReservationDate: "2025-05-01",
		ReservationTime: "18:00",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(msg.Text, "1 persoană") {
		t.Errorf("empty party size should default to one:\n%s", msg.Text)
	}
	if strings.Contains(msg.Text, "Număr persoane") {
		t.Error("detail line must be omitted when party size was not given")
	}
}

func TestComposeValidation(t *testing.T) {
	cases := []struct {
		name string
		req  Request
	}{
		{"reservation without date", Request{Type: TypeReservation, Name: "Ana", Email: "a@b.c", ReservationTime: "18:00"}},
		{"reservation without name", Request{Type: TypeReservation, Email: "a@b.c", ReservationDate: "2025-05-01", ReservationTime: "18:00"}},
		{"decline without reason", Request{Type: TypeDecline, Name: "Ana", Email: "a@b.c"}},
		{"event without title", Request{Type: TypeEvent, Name: "Ana", Email: "a@b.c"}},
		{"newsletter without subject", Request{Type: TypeNewsletter, HTMLBody: "<p>hi</p>", Recipients: []string{"a@b.c"}}},
		{"newsletter without recipients", Request{Type: TypeNewsletter, Subject: "s", HTMLBody: "<p>hi</p>"}},
	}
	for _, tc := range cases {
		if _, err := Compose(&tc.req); !errors.Is(err, ErrValidation) {
			t.Errorf("%s: expected ErrValidation, got %v", tc.name, err)
		}
	}
}

func TestComposeUnknownType(t *testing.T) {
	_, err := Compose(&Request{Type: "sms", Name: "Ana", Email: "a@b.c"})
	if !errors.Is(err, ErrUnknownRequestType) {
		t.Fatalf("expected ErrUnknownRequestType, got %v", err)
	}
}

func TestComposeDecline(t *testing.T) {
	msg, err := Compose(&Request{Type: TypeDecline, Name: "Ana", Email: "a@b.c", Reason: "Suntem închiși în acea zi."})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(msg.Text, "Suntem închiși în acea zi.") {
		t.Errorf("decline body should carry the reason:\n%s", msg.Text)
	}
	if !strings.Contains(msg.Text, "Echipa Cutie") {
		t.Error("decline body should end with the signature block")
	}
}

func TestComposeEvent(t *testing.T) {
	msg, err := Compose(&Request{Type: TypeEvent, EventTitle: "Atelier de ikebana", Name: "Ana", Email: "a@b.c"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if msg.Subject != "Confirmare înregistrare - Atelier de ikebana" {
		t.Errorf("subject = %q", msg.Subject)
	}
	if !strings.Contains(msg.Text, `"Atelier de ikebana"`) {
		t.Errorf("body should quote the event title:\n%s", msg.Text)
	}
}

func TestComposeNewsletterPassthrough(t *testing.T) {
	msg, err := Compose(&Request{Type: TypeNewsletter, Subject: "Noutăți", HTMLBody: "<h1>Salut</h1>", Recipients: []string{"a@b.c"}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if msg.HTML != "<h1>Salut</h1>" || msg.Text != "" {
		t.Errorf("newsletter must be HTML-only, got text=%q html=%q", msg.Text, msg.HTML)
	}
}
