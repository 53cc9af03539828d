package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/go-sql-driver/mysql"

	"github.com/cutie-cafe/cutie-backend/internal/model"
)

// mysqlDupEntry is the MySQL error number for a unique-key violation.
const mysqlDupEntry = 1062

// NewsletterRepo manages the newsletter_subscriptions table. The email
// column is unique; the duplicate-key error surfaces as
// ErrAlreadySubscribed so the handler can show the "already subscribed"
// message instead of a server error.
type NewsletterRepo struct {
	db *sql.DB
}

// NewNewsletterRepo returns a new NewsletterRepo bound to the given database.
func NewNewsletterRepo(db *sql.DB) *NewsletterRepo { return &NewsletterRepo{db: db} }

// Subscribe inserts a subscription for an already-normalized (trimmed,
// lowercased) email and returns the stored row. A second subscription for
// the same address returns ErrAlreadySubscribed without creating a row.
func (r *NewsletterRepo) Subscribe(ctx context.Context, email string) (*model.Subscriber, error) {
	const q = `INSERT INTO newsletter_subscriptions (email) VALUES (?)`
	result, err := r.db.ExecContext(ctx, q, email)
	if err != nil {
		var me *mysql.MySQLError
		if errors.As(err, &me) && me.Number == mysqlDupEntry {
			return nil, ErrAlreadySubscribed
		}
		return nil, err
	}
	id, err := result.LastInsertId()
	if err != nil {
		return nil, err
	}
	sub := &model.Subscriber{ID: uint64(id), Email: email}
	const sel = `SELECT created_at FROM newsletter_subscriptions WHERE id = ?`
	if err := r.db.QueryRowContext(ctx, sel, sub.ID).Scan(&sub.CreatedAt); err != nil {
		return nil, err
	}
	return sub, nil
}

// ListEmails returns all subscriber addresses in signup order. The
// newsletter composer loads its recipient list through here.
func (r *NewsletterRepo) ListEmails(ctx context.Context) ([]string, error) {
	const q = `SELECT email FROM newsletter_subscriptions ORDER BY created_at ASC`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []string{}
	for rows.Next() {
		var email string
		if err := rows.Scan(&email); err != nil {
			return nil, err
		}
		out = append(out, email)
	}
	return out, rows.Err()
}

// List returns full subscriber rows for the admin panel.
func (r *NewsletterRepo) List(ctx context.Context) ([]model.Subscriber, error) {
	const q = `SELECT id, email, created_at FROM newsletter_subscriptions ORDER BY created_at ASC`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []model.Subscriber{}
	for rows.Next() {
		var s model.Subscriber
		if err := rows.Scan(&s.ID, &s.Email, &s.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}
