package repository

import (
	"context"
	"database/sql"
	"strings"

	"github.com/cutie-cafe/cutie-backend/internal/model"
)

// ReservationRepo provides access to the reservations table. Rows are
// created by the public booking form and mutated exactly once, by an
// administrator action that moves status out of pending. All timestamp
// fields are stored in UTC.
type ReservationRepo struct {
	db *sql.DB
}

// NewReservationRepo returns a new ReservationRepo bound to the given database.
func NewReservationRepo(db *sql.DB) *ReservationRepo { return &ReservationRepo{db: db} }

const reservationCols = `id, name, email, phone, reservation_type, reservation_date, reservation_time, party_size, special_requests, status, created_at`

// scanReservation reads one row into a model.Reservation, normalizing the
// nullable columns (phone, party_size, special_requests).
func scanReservation(row interface{ Scan(...any) error }) (*model.Reservation, error) {
	var r model.Reservation
	var phone, partySize, requests sql.NullString
	err := row.Scan(&r.ID, &r.Name, &r.Email, &phone, &r.ReservationType,
		&r.ReservationDate, &r.ReservationTime, &partySize, &requests, &r.Status, &r.CreatedAt)
	if err != nil {
		return nil, err
	}
	if phone.Valid {
		p := phone.String
		r.Phone = &p
	}
	r.PartySize = partySize.String
	r.SpecialRequests = requests.String
	return &r, nil
}

// Create inserts a new pending reservation and populates the generated ID
// and CreatedAt on the provided model. The booking form normalizes email
// to lowercase before calling.
func (r *ReservationRepo) Create(ctx context.Context, res *model.Reservation) error {
	const q = `INSERT INTO reservations
		(name, email, phone, reservation_type, reservation_date, reservation_time, party_size, special_requests, status)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`
	var phone any
	if res.Phone != nil && *res.Phone != "" {
		phone = *res.Phone
	}
	var partySize any
	if res.PartySize != "" {
		partySize = res.PartySize
	}
	res.Status = model.ReservationPending
	result, err := r.db.ExecContext(ctx, q, res.Name, res.Email, phone, res.ReservationType,
		res.ReservationDate, res.ReservationTime, partySize, res.SpecialRequests, res.Status)
	if err != nil {
		return err
	}
	id, err := result.LastInsertId()
	if err != nil {
		return err
	}
	res.ID = uint64(id)
	// Query back the row to populate created_at and column defaults.
	const sel = `SELECT ` + reservationCols + ` FROM reservations WHERE id = ?`
	stored, err := scanReservation(r.db.QueryRowContext(ctx, sel, res.ID))
	if err != nil {
		return err
	}
	*res = *stored
	return nil
}

// GetByID fetches a fresh snapshot of one reservation. The transition
// service always re-reads through here rather than trusting a copy the
// admin UI sent along. Returns ErrReservationNotFound for a missing id.
func (r *ReservationRepo) GetByID(ctx context.Context, id uint64) (*model.Reservation, error) {
	const q = `SELECT ` + reservationCols + ` FROM reservations WHERE id = ?`
	res, err := scanReservation(r.db.QueryRowContext(ctx, q, id))
	if err == sql.ErrNoRows {
		return nil, ErrReservationNotFound
	}
	if err != nil {
		return nil, err
	}
	return res, nil
}

// ReservationFilter narrows the admin listing. Zero values mean "no
// filter". Name matches as a case-insensitive substring.
type ReservationFilter struct {
	Status string
	Date   string
	Name   string
}

// List returns reservations newest-first, optionally filtered. Used by the
// admin reservations panel.
func (r *ReservationRepo) List(ctx context.Context, f ReservationFilter) ([]model.Reservation, error) {
	q := `SELECT ` + reservationCols + ` FROM reservations`
	var conds []string
	var args []any
	if f.Status != "" {
		conds = append(conds, "status = ?")
		args = append(args, f.Status)
	}
	if f.Date != "" {
		conds = append(conds, "reservation_date = ?")
		args = append(args, f.Date)
	}
	if f.Name != "" {
		conds = append(conds, "LOWER(name) LIKE ?")
		args = append(args, "%"+strings.ToLower(f.Name)+"%")
	}
	if len(conds) > 0 {
		q += " WHERE " + strings.Join(conds, " AND ")
	}
	q += " ORDER BY created_at DESC"

	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []model.Reservation{}
	for rows.Next() {
		res, err := scanReservation(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *res)
	}
	return out, rows.Err()
}

// UpdateStatusIfPending performs the guarded terminal transition. The
// WHERE clause only matches rows still in pending, so two administrators
// racing on the same reservation cannot both flip it: the loser matches
// zero rows and gets ErrAlreadyDecided. Callers must send the customer
// notification before calling this (notify-then-persist ordering).
func (r *ReservationRepo) UpdateStatusIfPending(ctx context.Context, id uint64, status string) error {
	if status != model.ReservationConfirmed && status != model.ReservationDeclined {
		return ErrAlreadyDecided
	}
	const q = `UPDATE reservations SET status = ? WHERE id = ? AND status = ?`
	result, err := r.db.ExecContext(ctx, q, status, id, model.ReservationPending)
	if err != nil {
		return err
	}
	n, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		// Distinguish a vanished row from a lost race.
		if _, err := r.GetByID(ctx, id); err != nil {
			return err
		}
		return ErrAlreadyDecided
	}
	return nil
}
