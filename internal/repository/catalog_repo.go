package repository

import (
	"context"
	"database/sql"

	"github.com/cutie-cafe/cutie-backend/internal/model"
)

// ProductRepo provides CRUD for menu/shop items. Reads are public (and
// cached); writes come from the admin manage panel.
type ProductRepo struct {
	db *sql.DB
}

// NewProductRepo returns a new ProductRepo bound to the given database.
func NewProductRepo(db *sql.DB) *ProductRepo { return &ProductRepo{db: db} }

const productCols = `id, name, category, price, description, image_url, created_at`

// List returns products, optionally filtered by category, in insertion order.
func (r *ProductRepo) List(ctx context.Context, category string) ([]model.Product, error) {
	q := `SELECT ` + productCols + ` FROM products`
	var args []any
	if category != "" {
		q += ` WHERE category = ?`
		args = append(args, category)
	}
	q += ` ORDER BY id ASC`

	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []model.Product{}
	for rows.Next() {
		var p model.Product
		if err := rows.Scan(&p.ID, &p.Name, &p.Category, &p.Price, &p.Description, &p.ImageURL, &p.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

// Create inserts a product and populates its generated ID.
func (r *ProductRepo) Create(ctx context.Context, p *model.Product) error {
	const q = `INSERT INTO products (name, category, price, description, image_url) VALUES (?, ?, ?, ?, ?)`
	result, err := r.db.ExecContext(ctx, q, p.Name, p.Category, p.Price, p.Description, p.ImageURL)
	if err != nil {
		return err
	}
	id, err := result.LastInsertId()
	if err != nil {
		return err
	}
	p.ID = uint64(id)
	const sel = `SELECT created_at FROM products WHERE id = ?`
	return r.db.QueryRowContext(ctx, sel, p.ID).Scan(&p.CreatedAt)
}

// Update rewrites a product's editable columns. Missing ids return ErrNotFound.
func (r *ProductRepo) Update(ctx context.Context, p *model.Product) error {
	const q = `UPDATE products SET name = ?, category = ?, price = ?, description = ?, image_url = ? WHERE id = ?`
	result, err := r.db.ExecContext(ctx, q, p.Name, p.Category, p.Price, p.Description, p.ImageURL, p.ID)
	if err != nil {
		return err
	}
	return mustMatchProduct(ctx, r.db, result, p.ID)
}

// Delete removes a product by id. Missing ids return ErrNotFound.
func (r *ProductRepo) Delete(ctx context.Context, id uint64) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM products WHERE id = ?`, id)
	if err != nil {
		return err
	}
	n, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

// mustMatchProduct maps a zero-row UPDATE onto ErrNotFound only when the
// row is actually absent (an update carrying identical values also
// matches zero rows on MySQL).
func mustMatchProduct(ctx context.Context, db *sql.DB, result sql.Result, id uint64) error {
	n, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if n > 0 {
		return nil
	}
	var exists int
	err = db.QueryRowContext(ctx, `SELECT 1 FROM products WHERE id = ?`, id).Scan(&exists)
	if err == sql.ErrNoRows {
		return ErrNotFound
	}
	return err
}

// ServiceRepo provides CRUD for bookable services (arrangements, venue
// rental, photo sessions).
type ServiceRepo struct {
	db *sql.DB
}

// NewServiceRepo returns a new ServiceRepo bound to the given database.
func NewServiceRepo(db *sql.DB) *ServiceRepo { return &ServiceRepo{db: db} }

// List returns all services in insertion order.
func (r *ServiceRepo) List(ctx context.Context) ([]model.Service, error) {
	const q = `SELECT id, name, type, price, description, created_at FROM services ORDER BY id ASC`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []model.Service{}
	for rows.Next() {
		var s model.Service
		if err := rows.Scan(&s.ID, &s.Name, &s.Type, &s.Price, &s.Description, &s.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

// Create inserts a service and populates its generated ID.
func (r *ServiceRepo) Create(ctx context.Context, s *model.Service) error {
	const q = `INSERT INTO services (name, type, price, description) VALUES (?, ?, ?, ?)`
	result, err := r.db.ExecContext(ctx, q, s.Name, s.Type, s.Price, s.Description)
	if err != nil {
		return err
	}
	id, err := result.LastInsertId()
	if err != nil {
		return err
	}
	s.ID = uint64(id)
	const sel = `SELECT created_at FROM services WHERE id = ?`
	return r.db.QueryRowContext(ctx, sel, s.ID).Scan(&s.CreatedAt)
}

// Update rewrites a service's editable columns.
func (r *ServiceRepo) Update(ctx context.Context, s *model.Service) error {
	const q = `UPDATE services SET name = ?, type = ?, price = ?, description = ? WHERE id = ?`
	result, err := r.db.ExecContext(ctx, q, s.Name, s.Type, s.Price, s.Description, s.ID)
	if err != nil {
		return err
	}
	n, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		var exists int
		err = r.db.QueryRowContext(ctx, `SELECT 1 FROM services WHERE id = ?`, s.ID).Scan(&exists)
		if err == sql.ErrNoRows {
			return ErrNotFound
		}
		return err
	}
	return nil
}

// Delete removes a service by id. Missing ids return ErrNotFound.
func (r *ServiceRepo) Delete(ctx context.Context, id uint64) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM services WHERE id = ?`, id)
	if err != nil {
		return err
	}
	n, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}
