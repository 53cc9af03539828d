// Package queue defines the reservation audit events exchanged over the
// message broker, plus their publisher and consumer.
package queue

// statusQueueName is the durable queue carrying status decisions.
const statusQueueName = "reservation.status"

// ReservationStatusEvent is published after a reservation transition has
// been durably persisted. It carries enough for downstream consumers to
// log or notify without querying the primary database. Publishing is
// best-effort and always happens after the storage write, so a broker
// outage can never block or reorder the notify-then-persist protocol.
type ReservationStatusEvent struct {
	ReservationID   uint64 `json:"reservation_id"`
	Name            string `json:"name"`
	Email           string `json:"email"`
	ReservationType string `json:"reservation_type"`
	ReservationDate string `json:"reservation_date"`
	ReservationTime string `json:"reservation_time"`
	Status          string `json:"status"`
	Reason          string `json:"reason,omitempty"`
	DecidedAt       string `json:"decided_at"`
}
