package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/go-sql-driver/mysql"

	"github.com/cutie-cafe/cutie-backend/internal/model"
)

// AdminRepo looks up back-office accounts for login. Accounts are seeded
// out of band (there is no self-service registration for admins).
type AdminRepo struct {
	db *sql.DB
}

// NewAdminRepo returns a new AdminRepo bound to the given database.
func NewAdminRepo(db *sql.DB) *AdminRepo { return &AdminRepo{db: db} }

// GetByEmail returns the admin row for a lowercased email, or
// sql.ErrNoRows when no such account exists. The caller treats a missing
// row and a bad password identically to avoid leaking which emails exist.
func (r *AdminRepo) GetByEmail(ctx context.Context, email string) (*model.Admin, error) {
	const q = `SELECT id, email, password_hash, created_at FROM admins WHERE email = ?`
	var a model.Admin
	err := r.db.QueryRowContext(ctx, q, email).Scan(&a.ID, &a.Email, &a.PasswordHash, &a.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &a, nil
}

// EnsureAdmin seeds one account at startup from process configuration.
// An existing email is left untouched, so a redeploy cannot silently
// rotate a password; change credentials by editing the row directly.
func (r *AdminRepo) EnsureAdmin(ctx context.Context, email, passwordHash string) error {
	const q = `INSERT INTO admins (email, password_hash) VALUES (?, ?)`
	if _, err := r.db.ExecContext(ctx, q, email, passwordHash); err != nil {
		var me *mysql.MySQLError
		if errors.As(err, &me) && me.Number == mysqlDupEntry {
			return nil
		}
		return err
	}
	return nil
}
