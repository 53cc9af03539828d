package model

import "time"

// Event is a workshop, community evening or other happening published on
// the events page. Price is free text ("Free", "50 lei") because the site
// displays it verbatim.
type Event struct {
	ID          uint64    `json:"id"`          // events.id
	Title       string    `json:"title"`       // events.title
	Description string    `json:"description"` // events.description
	EventDate   string    `json:"event_date"`  // events.event_date, "2006-01-02"
	EventTime   string    `json:"event_time"`  // events.event_time, "15:04"
	Capacity    int       `json:"capacity"`    // events.capacity
	Price       string    `json:"price"`       // events.price (display string)
	Category    string    `json:"category"`    // events.category
	ImageURL    string    `json:"image_url"`   // events.image_url
	IsActive    bool      `json:"is_active"`   // events.is_active
	CreatedAt   time.Time `json:"created_at"`  // events.created_at
	UpdatedAt   time.Time `json:"updated_at"`  // events.updated_at
}

// EventRegistration is a single signup for an event. It has no lifecycle
// beyond insertion; the confirmation email is sent at signup time.
type EventRegistration struct {
	ID              uint64    `json:"id"`               // event_registrations.id
	EventID         uint64    `json:"event_id"`         // event_registrations.event_id
	Name            string    `json:"name"`             // event_registrations.name
	Email           string    `json:"email"`            // event_registrations.email
	Phone           *string   `json:"phone,omitempty"`  // event_registrations.phone (nullable)
	SpecialRequests string    `json:"special_requests"` // event_registrations.special_requests
	CreatedAt       time.Time `json:"created_at"`       // event_registrations.created_at
}
