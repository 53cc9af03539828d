// Package service holds the workflows that span storage and mail: the
// reservation status transition and the newsletter batch send. Both take
// their collaborators as narrow interfaces so they can be tested without
// a database or a relay.
package service

import (
	"context"
	"log"
	"time"

	"github.com/cutie-cafe/cutie-backend/internal/mailer"
	"github.com/cutie-cafe/cutie-backend/internal/model"
	"github.com/cutie-cafe/cutie-backend/internal/queue"
	"github.com/cutie-cafe/cutie-backend/internal/repository"
)

// DefaultDeclineReason is used when the administrator declines without
// typing a message.
const DefaultDeclineReason = "Rezervarea nu poate fi onorată."

// ReservationStore is the slice of the reservation repository the
// transition protocol needs.
type ReservationStore interface {
	GetByID(ctx context.Context, id uint64) (*model.Reservation, error)
	UpdateStatusIfPending(ctx context.Context, id uint64, status string) error
}

// Sender delivers one composed message to one recipient.
type Sender interface {
	Send(ctx context.Context, to string, m *mailer.Message) error
}

// StatusPublisher emits audit events after a persisted transition.
// *queue.Publisher satisfies it; nil means publishing is disabled.
type StatusPublisher interface {
	Publish(ctx context.Context, ev queue.ReservationStatusEvent) error
}

// ReservationService runs the terminal status transitions. The protocol
// order is fixed: re-fetch, guard on pending, send the email, and only
// then persist. A customer must never learn of a decision that did not
// durably stick, and a status must never flip without the customer being
// told.
type ReservationService struct {
	store  ReservationStore
	sender Sender
	pub    StatusPublisher
}

// NewReservationService wires the transition workflow. pub may be nil.
func NewReservationService(store ReservationStore, sender Sender, pub StatusPublisher) *ReservationService {
	return &ReservationService{store: store, sender: sender, pub: pub}
}

// Confirm moves a pending reservation to confirmed. Errors:
// repository.ErrReservationNotFound (no email sent, nothing written),
// repository.ErrAlreadyDecided (reservation no longer pending), or a
// *mailer.TransportError (send failed; stored status remains pending).
func (s *ReservationService) Confirm(ctx context.Context, id uint64) (*model.Reservation, error) {
	res, err := s.store.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if res.Status != model.ReservationPending {
		return nil, repository.ErrAlreadyDecided
	}

	msg, err := mailer.Compose(&mailer.Request{
		Type:            mailer.TypeReservation,
		Name:            res.Name,
		Email:           res.Email,
		ReservationDate: res.ReservationDate,
		ReservationTime: res.ReservationTime,
		ReservationType: res.ReservationType,
		PartySize:       res.PartySize,
		SpecialRequests: res.SpecialRequests,
	})
	if err != nil {
		return nil, err
	}
	if err := s.sender.Send(ctx, res.Email, msg); err != nil {
		return nil, err
	}

	if err := s.store.UpdateStatusIfPending(ctx, id, model.ReservationConfirmed); err != nil {
		return nil, err
	}
	res.Status = model.ReservationConfirmed
	s.publish(ctx, res, "")
	return res, nil
}

// Decline moves a pending reservation to declined, mailing the customer
// the given reason (or DefaultDeclineReason when blank). Error contract
// matches Confirm.
func (s *ReservationService) Decline(ctx context.Context, id uint64, reason string) (*model.Reservation, error) {
	if reason == "" {
		reason = DefaultDeclineReason
	}
	res, err := s.store.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if res.Status != model.ReservationPending {
		return nil, repository.ErrAlreadyDecided
	}

	msg, err := mailer.Compose(&mailer.Request{
		Type:   mailer.TypeDecline,
		Name:   res.Name,
		Email:  res.Email,
		Reason: reason,
	})
	if err != nil {
		return nil, err
	}
	if err := s.sender.Send(ctx, res.Email, msg); err != nil {
		return nil, err
	}

	if err := s.store.UpdateStatusIfPending(ctx, id, model.ReservationDeclined); err != nil {
		return nil, err
	}
	res.Status = model.ReservationDeclined
	s.publish(ctx, res, reason)
	return res, nil
}

// publish emits the audit event for an already-persisted decision. A
// publish failure is logged and swallowed: the transition has happened.
func (s *ReservationService) publish(ctx context.Context, res *model.Reservation, reason string) {
	if s.pub == nil {
		return
	}
	ev := queue.ReservationStatusEvent{
		ReservationID:   res.ID,
		Name:            res.Name,
		Email:           res.Email,
		ReservationType: res.ReservationType,
		ReservationDate: res.ReservationDate,
		ReservationTime: res.ReservationTime,
		Status:          res.Status,
		Reason:          reason,
		DecidedAt:       time.Now().UTC().Format(time.RFC3339),
	}
	if err := s.pub.Publish(ctx, ev); err != nil {
		log.Printf("reservation %d: status event publish failed: %v", res.ID, err)
	}
}
