package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/cutie-cafe/cutie-backend/internal/mailer"
)

type recordingSender struct {
	fail bool
	to   []string
	msgs []*mailer.Message
}

func (r *recordingSender) Send(_ context.Context, to string, m *mailer.Message) error {
	if r.fail {
		return &mailer.TransportError{Err: errors.New("relay unavailable")}
	}
	r.to = append(r.to, to)
	r.msgs = append(r.msgs, m)
	return nil
}

func postJSON(t *testing.T, h echo.HandlerFunc, body string) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	if err := h(e.NewContext(req, rec)); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid JSON response: %v\n%s", err, rec.Body.String())
	}
	return rec, resp
}

func TestSendReservationEmailSuccess(t *testing.T) {
	sender := &recordingSender{}
	h := NewMailHandler(sender)

	body := `{"type":"reservation","name":"Ana","email":"ana@example.com","reservation_date":"2025-05-01","reservation_time":"18:00","reservation_type":"table","party_size":"2"}`
	rec, resp := postJSON(t, h.SendReservationEmail, body)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
	}
	if resp["success"] != true {
		t.Errorf("expected success true, got %v", resp)
	}
	if len(sender.to) != 1 || sender.to[0] != "ana@example.com" {
		t.Errorf("sent to %v", sender.to)
	}
	if got := sender.msgs[0].Subject; got != "Confirmare rezervare 2025-05-01" {
		t.Errorf("subject = %q", got)
	}
}

func TestSendReservationEmailMissingEmail(t *testing.T) {
	sender := &recordingSender{}
	h := NewMailHandler(sender)

	rec, resp := postJSON(t, h.SendReservationEmail, `{"type":"reservation","name":"Ana"}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d", rec.Code)
	}
	if resp["success"] != false {
		t.Errorf("expected success false, got %v", resp)
	}
	if len(sender.to) != 0 {
		t.Error("nothing may be sent for an invalid request")
	}
}

func TestSendReservationEmailUnknownType(t *testing.T) {
	sender := &recordingSender{}
	h := NewMailHandler(sender)

	rec, resp := postJSON(t, h.SendReservationEmail, `{"type":"marketing","email":"ana@example.com"}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d", rec.Code)
	}
	if resp["error"] == nil || resp["error"] == "" {
		t.Errorf("expected an error message, got %v", resp)
	}
}

func TestSendReservationEmailDeclineDefaultReason(t *testing.T) {
	sender := &recordingSender{}
	h := NewMailHandler(sender)

	rec, _ := postJSON(t, h.SendReservationEmail, `{"type":"decline","name":"Ana","email":"ana@example.com"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
	}
	if !strings.Contains(sender.msgs[0].Text, "Rezervarea nu poate fi onorată.") {
		t.Errorf("decline email should carry the default reason:\n%s", sender.msgs[0].Text)
	}
}

func TestSendReservationEmailTransportFailure(t *testing.T) {
	sender := &recordingSender{fail: true}
	h := NewMailHandler(sender)

	body := `{"type":"event","name":"Ana","email":"ana@example.com","eventTitle":"Atelier de cafea"}`
	rec, resp := postJSON(t, h.SendReservationEmail, body)
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d", rec.Code)
	}
	if resp["success"] != false {
		t.Errorf("expected success false, got %v", resp)
	}
}
