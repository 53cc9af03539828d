package model

import "time"

// Subscriber is a newsletter signup. The email column carries a unique
// index; repositories surface a duplicate insert as ErrAlreadySubscribed
// rather than a generic database error.
type Subscriber struct {
	ID        uint64    `json:"id"`         // newsletter_subscriptions.id
	Email     string    `json:"email"`      // newsletter_subscriptions.email (unique)
	CreatedAt time.Time `json:"created_at"` // newsletter_subscriptions.created_at
}

// Admin is a back-office account. Only the password hash is stored;
// verification happens with bcrypt in the auth handler.
type Admin struct {
	ID           uint64    `json:"id"`         // admins.id
	Email        string    `json:"email"`      // admins.email (unique)
	PasswordHash string    `json:"-"`          // admins.password_hash
	CreatedAt    time.Time `json:"created_at"` // admins.created_at
}
