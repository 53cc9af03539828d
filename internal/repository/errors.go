// Package repository defines sentinel errors shared across repositories.
// Higher layers match on these values to choose an HTTP status or a
// user-facing message instead of inspecting driver errors directly.
package repository

import "errors"

// ErrReservationNotFound is returned when a reservation id does not exist
// (any more). The status-transition service aborts on it before composing
// any email.
var ErrReservationNotFound = errors.New("reservation not found")

// ErrAlreadyDecided is returned when a status transition is attempted on a
// reservation that is no longer pending. Confirmed and declined are
// terminal; handlers translate this into an HTTP 409 response.
var ErrAlreadyDecided = errors.New("reservation already decided")

// ErrAlreadySubscribed is returned when the newsletter email already has a
// row. The unique index on the email column is the source of truth; the
// duplicate-key driver error is mapped onto this value.
var ErrAlreadySubscribed = errors.New("email already subscribed")

// ErrEventNotFound is returned when an event id does not exist or the
// event is no longer active.
var ErrEventNotFound = errors.New("event not found")

// ErrNotFound is the generic sentinel for catalog rows (products,
// services) addressed by id.
var ErrNotFound = errors.New("not found")
