package handler

import (
	"context"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/cutie-cafe/cutie-backend/internal/model"
	"github.com/cutie-cafe/cutie-backend/internal/repository"
	"github.com/cutie-cafe/cutie-backend/internal/service"
)

// fakeSubscribers is an in-memory SubscriberSource honoring the unique
// email constraint the way the real repository does.
type fakeSubscribers struct {
	emails []string
}

func (f *fakeSubscribers) Subscribe(_ context.Context, email string) (*model.Subscriber, error) {
	for _, e := range f.emails {
		if e == email {
			return nil, repository.ErrAlreadySubscribed
		}
	}
	f.emails = append(f.emails, email)
	return &model.Subscriber{ID: uint64(len(f.emails)), Email: email, CreatedAt: time.Now()}, nil
}

func (f *fakeSubscribers) ListEmails(_ context.Context) ([]string, error) {
	out := make([]string, len(f.emails))
	copy(out, f.emails)
	return out, nil
}

func TestSubscribeTwice(t *testing.T) {
	subs := &fakeSubscribers{}
	h := NewNewsletterHandler(nil, subs)

	rec, resp := postJSON(t, h.Subscribe, `{"email":"Ana@Example.com"}`)
	if rec.Code != http.StatusCreated {
		t.Fatalf("first subscribe: status = %d, body %s", rec.Code, rec.Body.String())
	}
	if resp["success"] != true {
		t.Errorf("first subscribe: expected success, got %v", resp)
	}
	if len(subs.emails) != 1 || subs.emails[0] != "ana@example.com" {
		t.Errorf("stored emails = %v, want one normalized entry", subs.emails)
	}

	rec, resp = postJSON(t, h.Subscribe, `{"email":"ana@example.com"}`)
	if rec.Code != http.StatusConflict {
		t.Fatalf("second subscribe: status = %d, body %s", rec.Code, rec.Body.String())
	}
	if resp["error"] != "Această adresă de email este deja abonată la newsletter." {
		t.Errorf("second subscribe: error = %v", resp["error"])
	}
	if len(subs.emails) != 1 {
		t.Errorf("duplicate subscribe must not add a row; stored = %v", subs.emails)
	}
}

func TestSubscribeRejectsInvalidEmail(t *testing.T) {
	subs := &fakeSubscribers{}
	h := NewNewsletterHandler(nil, subs)

	rec, _ := postJSON(t, h.Subscribe, `{"email":"not-an-address"}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d", rec.Code)
	}
	if len(subs.emails) != 0 {
		t.Errorf("invalid email must not be stored; stored = %v", subs.emails)
	}
}

func TestSendNewsletterFallsBackToSubscribers(t *testing.T) {
	subs := &fakeSubscribers{emails: []string{"a@example.com", "b@example.com"}}
	sender := &recordingSender{}
	h := NewNewsletterHandler(service.NewNewsletterService(sender), subs)

	body := `{"subject":"Noutăți","message":"<p>Salut</p>"}`
	rec, resp := postJSON(t, h.SendNewsletter, body)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
	}
	if resp["success"] != true {
		t.Errorf("expected success, got %v", resp)
	}
	if got, ok := resp["sent"].(float64); !ok || int(got) != 2 {
		t.Errorf("sent = %v, want 2", resp["sent"])
	}
	if strings.Join(sender.to, ",") != "a@example.com,b@example.com" {
		t.Errorf("fallback recipients = %v", sender.to)
	}
}

func TestSendNewsletterValidation(t *testing.T) {
	subs := &fakeSubscribers{emails: []string{"a@example.com"}}
	sender := &recordingSender{}
	h := NewNewsletterHandler(service.NewNewsletterService(sender), subs)

	rec, resp := postJSON(t, h.SendNewsletter, `{"message":"<p>Salut</p>"}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
	}
	if resp["success"] != false {
		t.Errorf("expected success false, got %v", resp)
	}
	if len(sender.to) != 0 {
		t.Error("nothing may be sent when validation fails")
	}
}
