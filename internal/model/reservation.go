package model

import "time"

// Reservation statuses. A reservation is created as pending by the public
// booking form and is moved exactly once, by an administrator, to either
// confirmed or declined. There are no transitions out of the two final
// states.
const (
	ReservationPending   = "pending"
	ReservationConfirmed = "confirmed"
	ReservationDeclined  = "declined"
)

// Reservation types accepted by the booking form. Unknown values are
// tolerated in storage and rendered with a generic label by the mailer.
const (
	TypeTable          = "table"
	TypeFlowers        = "flowers"
	TypeSpace          = "space"
	TypeCommunityEvent = "community-event"
	TypeCorporateEvent = "corporate-event"
	TypePhotoSession   = "photo-session"
)

// Reservation records a customer's request to book a table, flowers or
// venue space. Dates and times are kept as the strings the booking form
// submits ("2006-01-02" and "15:04"); the mailer interpolates them into
// templates verbatim, so no parsing round-trip is wanted here.
//
// Fields:
//  ID              – primary key identifier.
//  Name            – customer name as typed into the form.
//  Email           – customer contact address; notification target.
//  Phone           – optional phone number (nullable).
//  ReservationType – one of the Type* constants above.
//  ReservationDate – requested date, "2006-01-02".
//  ReservationTime – requested time, "15:04".
//  PartySize       – optional head count, kept as a string.
//  SpecialRequests – free-form notes from the customer.
//  Status          – pending, confirmed or declined.
//  CreatedAt       – creation timestamp.
type Reservation struct {
	ID              uint64    `json:"id"`               // reservations.id
	Name            string    `json:"name"`             // reservations.name
	Email           string    `json:"email"`            // reservations.email
	Phone           *string   `json:"phone,omitempty"`  // reservations.phone (nullable)
	ReservationType string    `json:"reservation_type"` // reservations.reservation_type
	ReservationDate string    `json:"reservation_date"` // reservations.reservation_date
	ReservationTime string    `json:"reservation_time"` // reservations.reservation_time
	PartySize       string    `json:"party_size"`       // reservations.party_size (nullable, "" when absent)
	SpecialRequests string    `json:"special_requests"` // reservations.special_requests
	Status          string    `json:"status"`           // reservations.status
	CreatedAt       time.Time `json:"created_at"`       // reservations.created_at
}
