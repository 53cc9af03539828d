package model

import "time"

// Product is a menu or shop item (coffee, cakes, flowers). Prices are
// stored in lei as a decimal value.
type Product struct {
	ID          uint64    `json:"id"`          // products.id
	Name        string    `json:"name"`        // products.name
	Category    string    `json:"category"`    // products.category
	Price       float64   `json:"price"`       // products.price
	Description string    `json:"description"` // products.description
	ImageURL    string    `json:"image_url"`   // products.image_url
	CreatedAt   time.Time `json:"created_at"`  // products.created_at
}

// Service is a bookable offering (flower arrangements, venue rental,
// photo sessions). Type groups services on the services page.
type Service struct {
	ID          uint64    `json:"id"`          // services.id
	Name        string    `json:"name"`        // services.name
	Type        string    `json:"type"`        // services.type
	Price       float64   `json:"price"`       // services.price
	Description string    `json:"description"` // services.description
	CreatedAt   time.Time `json:"created_at"`  // services.created_at
}
