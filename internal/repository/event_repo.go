package repository

import (
	"context"
	"database/sql"

	"github.com/cutie-cafe/cutie-backend/internal/model"
)

// EventRepo provides access to the events and event_registrations tables.
// Events are managed by administrators; registrations are inserted once per
// signup and have no further lifecycle.
type EventRepo struct {
	db *sql.DB
}

// NewEventRepo returns a new EventRepo bound to the given database.
func NewEventRepo(db *sql.DB) *EventRepo { return &EventRepo{db: db} }

const eventCols = `id, title, description, event_date, event_time, capacity, price, category, image_url, is_active, created_at, updated_at`

func scanEvent(row interface{ Scan(...any) error }) (*model.Event, error) {
	var e model.Event
	err := row.Scan(&e.ID, &e.Title, &e.Description, &e.EventDate, &e.EventTime,
		&e.Capacity, &e.Price, &e.Category, &e.ImageURL, &e.IsActive, &e.CreatedAt, &e.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &e, nil
}

// ListActive returns upcoming/visible events, soonest first. Inactive
// events stay in the table for the admin panel but are hidden here.
func (r *EventRepo) ListActive(ctx context.Context) ([]model.Event, error) {
	const q = `SELECT ` + eventCols + ` FROM events WHERE is_active = TRUE ORDER BY event_date ASC, event_time ASC`
	return r.list(ctx, q)
}

// ListAll returns every event regardless of is_active, for the admin panel.
func (r *EventRepo) ListAll(ctx context.Context) ([]model.Event, error) {
	const q = `SELECT ` + eventCols + ` FROM events ORDER BY event_date DESC, event_time DESC`
	return r.list(ctx, q)
}

func (r *EventRepo) list(ctx context.Context, q string) ([]model.Event, error) {
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []model.Event{}
	for rows.Next() {
		e, err := scanEvent(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *e)
	}
	return out, rows.Err()
}

// GetByID fetches one event. Returns ErrEventNotFound for a missing id.
func (r *EventRepo) GetByID(ctx context.Context, id uint64) (*model.Event, error) {
	const q = `SELECT ` + eventCols + ` FROM events WHERE id = ?`
	e, err := scanEvent(r.db.QueryRowContext(ctx, q, id))
	if err == sql.ErrNoRows {
		return nil, ErrEventNotFound
	}
	if err != nil {
		return nil, err
	}
	return e, nil
}

// Create inserts an event and populates the generated ID and timestamps.
func (r *EventRepo) Create(ctx context.Context, e *model.Event) error {
	const q = `INSERT INTO events (title, description, event_date, event_time, capacity, price, category, image_url, is_active)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`
	result, err := r.db.ExecContext(ctx, q, e.Title, e.Description, e.EventDate, e.EventTime,
		e.Capacity, e.Price, e.Category, e.ImageURL, e.IsActive)
	if err != nil {
		return err
	}
	id, err := result.LastInsertId()
	if err != nil {
		return err
	}
	e.ID = uint64(id)
	stored, err := r.GetByID(ctx, e.ID)
	if err != nil {
		return err
	}
	*e = *stored
	return nil
}

// Update rewrites all editable columns of an event.
func (r *EventRepo) Update(ctx context.Context, e *model.Event) error {
	const q = `UPDATE events SET title = ?, description = ?, event_date = ?, event_time = ?,
		capacity = ?, price = ?, category = ?, image_url = ?, is_active = ?, updated_at = NOW() WHERE id = ?`
	result, err := r.db.ExecContext(ctx, q, e.Title, e.Description, e.EventDate, e.EventTime,
		e.Capacity, e.Price, e.Category, e.ImageURL, e.IsActive, e.ID)
	if err != nil {
		return err
	}
	n, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		// Zero rows can also mean "nothing changed"; check existence.
		if _, err := r.GetByID(ctx, e.ID); err != nil {
			return err
		}
	}
	return nil
}

// Delete removes an event. Returns ErrEventNotFound when the id is unknown.
func (r *EventRepo) Delete(ctx context.Context, id uint64) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM events WHERE id = ?`, id)
	if err != nil {
		return err
	}
	n, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrEventNotFound
	}
	return nil
}

// CreateRegistration inserts an event signup and populates its generated
// ID and CreatedAt. The caller is responsible for the confirmation email.
func (r *EventRepo) CreateRegistration(ctx context.Context, reg *model.EventRegistration) error {
	const q = `INSERT INTO event_registrations (event_id, name, email, phone, special_requests) VALUES (?, ?, ?, ?, ?)`
	var phone any
	if reg.Phone != nil && *reg.Phone != "" {
		phone = *reg.Phone
	}
	result, err := r.db.ExecContext(ctx, q, reg.EventID, reg.Name, reg.Email, phone, reg.SpecialRequests)
	if err != nil {
		return err
	}
	id, err := result.LastInsertId()
	if err != nil {
		return err
	}
	reg.ID = uint64(id)
	const sel = `SELECT created_at FROM event_registrations WHERE id = ?`
	return r.db.QueryRowContext(ctx, sel, reg.ID).Scan(&reg.CreatedAt)
}
