package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/cutie-cafe/cutie-backend/internal/mailer"
	"github.com/cutie-cafe/cutie-backend/internal/model"
	"github.com/cutie-cafe/cutie-backend/internal/queue"
	"github.com/cutie-cafe/cutie-backend/internal/repository"
)

// fakeStore keeps reservations in a map and honors the pending-only
// transition guard the way the real repository does.
type fakeStore struct {
	rows map[uint64]*model.Reservation
}

func (f *fakeStore) GetByID(_ context.Context, id uint64) (*model.Reservation, error) {
	r, ok := f.rows[id]
	if !ok {
		return nil, repository.ErrReservationNotFound
	}
	cp := *r
	return &cp, nil
}

func (f *fakeStore) UpdateStatusIfPending(_ context.Context, id uint64, status string) error {
	r, ok := f.rows[id]
	if !ok {
		return repository.ErrReservationNotFound
	}
	if r.Status != model.ReservationPending {
		return repository.ErrAlreadyDecided
	}
	r.Status = status
	return nil
}

// fakeSender records sends and optionally fails every call.
type fakeSender struct {
	fail bool
	to   []string
	msgs []*mailer.Message
}

func (f *fakeSender) Send(_ context.Context, to string, m *mailer.Message) error {
	if f.fail {
		return &mailer.TransportError{Err: errors.New("relay unavailable")}
	}
	f.to = append(f.to, to)
	f.msgs = append(f.msgs, m)
	return nil
}

// fakePublisher records events.
type fakePublisher struct {
	events []queue.ReservationStatusEvent
}

func (f *fakePublisher) Publish(_ context.Context, ev queue.ReservationStatusEvent) error {
	f.events = append(f.events, ev)
	return nil
}

func pendingReservation() *model.Reservation {
	return &model.Reservation{
		ID:              7,
		Name:            "Ana",
		Email:           "ana@example.com",
		ReservationType: "table",
		ReservationDate: "2025-05-01",
		ReservationTime: "18:00",
		PartySize:       "2",
		Status:          model.ReservationPending,
	}
}

func TestConfirmSendsThenPersists(t *testing.T) {
	store := &fakeStore{rows: map[uint64]*model.Reservation{7: pendingReservation()}}
	sender := &fakeSender{}
	pub := &fakePublisher{}
	svc := NewReservationService(store, sender, pub)

	res, err := svc.Confirm(context.Background(), 7)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Status != model.ReservationConfirmed {
		t.Errorf("returned status = %q", res.Status)
	}
	if store.rows[7].Status != model.ReservationConfirmed {
		t.Errorf("stored status = %q", store.rows[7].Status)
	}
	if len(sender.to) != 1 || sender.to[0] != "ana@example.com" {
		t.Errorf("expected one email to the customer, got %v", sender.to)
	}
	if got := sender.msgs[0].Subject; got != "Confirmare rezervare 2025-05-01" {
		t.Errorf("subject = %q", got)
	}
	if len(pub.events) != 1 || pub.events[0].Status != model.ReservationConfirmed {
		t.Errorf("expected one confirmed audit event, got %+v", pub.events)
	}
}

func TestConfirmTransportFailureKeepsPending(t *testing.T) {
	store := &fakeStore{rows: map[uint64]*model.Reservation{7: pendingReservation()}}
	sender := &fakeSender{fail: true}
	svc := NewReservationService(store, sender, nil)

	_, err := svc.Confirm(context.Background(), 7)
	var te *mailer.TransportError
	if !errors.As(err, &te) {
		t.Fatalf("expected a TransportError, got %v", err)
	}
	// Re-read: the stored status must not have moved.
	res, err := store.GetByID(context.Background(), 7)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Status != model.ReservationPending {
		t.Errorf("stored status = %q, want pending after a failed send", res.Status)
	}
}

func TestConfirmMissingReservation(t *testing.T) {
	store := &fakeStore{rows: map[uint64]*model.Reservation{}}
	sender := &fakeSender{}
	svc := NewReservationService(store, sender, nil)

	_, err := svc.Confirm(context.Background(), 7)
	if !errors.Is(err, repository.ErrReservationNotFound) {
		t.Fatalf("expected ErrReservationNotFound, got %v", err)
	}
	if len(sender.to) != 0 {
		t.Error("no email may be sent for a missing reservation")
	}
}

func TestConfirmAlreadyDecided(t *testing.T) {
	decided := pendingReservation()
	decided.Status = model.ReservationConfirmed
	store := &fakeStore{rows: map[uint64]*model.Reservation{7: decided}}
	sender := &fakeSender{}
	svc := NewReservationService(store, sender, nil)

	_, err := svc.Confirm(context.Background(), 7)
	if !errors.Is(err, repository.ErrAlreadyDecided) {
		t.Fatalf("expected ErrAlreadyDecided, got %v", err)
	}
	if len(sender.to) != 0 {
		t.Error("a decided reservation must not trigger another email")
	}
}

func TestDeclineUsesDefaultReason(t *testing.T) {
	store := &fakeStore{rows: map[uint64]*model.Reservation{7: pendingReservation()}}
	sender := &fakeSender{}
	svc := NewReservationService(store, sender, nil)

	res, err := svc.Decline(context.Background(), 7, "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Status != model.ReservationDeclined {
		t.Errorf("returned status = %q", res.Status)
	}
	if !strings.Contains(sender.msgs[0].Text, DefaultDeclineReason) {
		t.Errorf("decline email should carry the default reason:\n%s", sender.msgs[0].Text)
	}
}

func TestDeclinePublishesReason(t *testing.T) {
	store := &fakeStore{rows: map[uint64]*model.Reservation{7: pendingReservation()}}
	sender := &fakeSender{}
	pub := &fakePublisher{}
	svc := NewReservationService(store, sender, pub)

	if _, err := svc.Decline(context.Background(), 7, "Suntem închiși."); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(pub.events) != 1 {
		t.Fatalf("expected one audit event, got %d", len(pub.events))
	}
	ev := pub.events[0]
	if ev.Status != model.ReservationDeclined || ev.Reason != "Suntem închiși." {
		t.Errorf("event = %+v", ev)
	}
}
