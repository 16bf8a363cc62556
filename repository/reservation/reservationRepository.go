// repository/reservation/repo.go
package reservationrepo

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"carrental/model"
	"carrental/repository"
)

// CustomerRow is the customer-facing reservation projection.
type CustomerRow struct {
	ResvID      int64   `json:"resv_id"`
	CarID       int64   `json:"car_id"`
	Model       string  `json:"model"`
	PlateNo     string  `json:"plate_no"`
	DailyPrice  float64 `json:"daily_price"`
	PickupDay   string  `json:"pickup_day"`
	ReserveDate string  `json:"reserve_date"`
	Status      string  `json:"status"`
}

// AdminRow is the employee-facing projection across all customers.
type AdminRow struct {
	ResvID       int64  `json:"resv_id"`
	CustomerName string `json:"customer_name"`
	Model        string `json:"model"`
	PlateNo      string `json:"plate_no"`
	PickupDay    string `json:"pickup_day"`
	ReserveDate  string `json:"reserve_date"`
	Status       string `json:"status"`
}

type Repo interface {
	// CreateWithPayment inserts a Pending reservation and its companion
	// Pending payment in one transaction. The car row is locked first and
	// availability re-checked under the lock, so two concurrent calls for
	// the same car cannot both succeed.
	CreateWithPayment(ctx context.Context, customerID, carID int64, pickup time.Time) (resvID, payID int64, err error)

	// TransitionStatus moves a reservation to the requested status after
	// checking the transition is legal under a row lock. The previous
	// status is returned on success.
	TransitionStatus(ctx context.Context, resvID int64, to model.ReservationStatus) (model.ReservationStatus, error)

	ListByCustomer(ctx context.Context, customerID int64) ([]CustomerRow, error)
	ListAll(ctx context.Context) ([]AdminRow, error)
}

type repo struct{ db *sql.DB }

func New(db *sql.DB) Repo { return &repo{db} }

func (r *repo) CreateWithPayment(ctx context.Context, customerID, carID int64, pickup time.Time) (resvID, payID int64, err error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, 0, err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	// Lock the car row so concurrent reservations for it serialize here.
	const lockCar = `
		SELECT daily_price
		FROM cars
		WHERE id = $1
		FOR UPDATE`
	var dailyPrice float64
	if err = tx.QueryRowContext(ctx, lockCar, carID).Scan(&dailyPrice); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			err = repository.ErrNotFound
		}
		return 0, 0, err
	}

	const hasActive = `
		SELECT EXISTS (
			SELECT 1 FROM reservations
			WHERE car_id = $1 AND status = 'Active'
		)`
	var taken bool
	if err = tx.QueryRowContext(ctx, hasActive, carID).Scan(&taken); err != nil {
		return 0, 0, err
	}
	if taken {
		err = repository.ErrCarUnavailable
		return 0, 0, err
	}

	const insResv = `
		INSERT INTO reservations (customer_id, car_id, pickup_day)
		VALUES ($1,$2,$3)
		RETURNING id`
	if err = tx.QueryRowContext(ctx, insResv, customerID, carID, pickup).Scan(&resvID); err != nil {
		return 0, 0, err
	}

	// One day charged at creation, due the day after pickup.
	const insPay = `
		INSERT INTO payments (customer_id, reservation_id, amount, due_date)
		VALUES ($1,$2,$3,$4)
		RETURNING id`
	due := pickup.AddDate(0, 0, 1)
	if err = tx.QueryRowContext(ctx, insPay, customerID, resvID, dailyPrice, due).Scan(&payID); err != nil {
		return 0, 0, err
	}

	if err = tx.Commit(); err != nil {
		return 0, 0, err
	}
	return resvID, payID, nil
}

func (r *repo) TransitionStatus(ctx context.Context, resvID int64, to model.ReservationStatus) (prev model.ReservationStatus, err error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return "", err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	const q = `
		SELECT status
		FROM reservations
		WHERE id = $1
		FOR UPDATE`
	var cur string
	if err = tx.QueryRowContext(ctx, q, resvID).Scan(&cur); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			err = repository.ErrNotFound
		}
		return "", err
	}

	prev = model.ReservationStatus(cur)
	if !prev.CanTransitionTo(to) {
		err = repository.ErrInvalidTransition
		return prev, err
	}

	const upd = `UPDATE reservations SET status = $2 WHERE id = $1`
	if _, err = tx.ExecContext(ctx, upd, resvID, string(to)); err != nil {
		return prev, err
	}
	if err = tx.Commit(); err != nil {
		return prev, err
	}
	return prev, nil
}

func (r *repo) ListByCustomer(ctx context.Context, customerID int64) ([]CustomerRow, error) {
	const q = `
		SELECT r.id, c.id, c.model, c.plate_no, c.daily_price,
		       to_char(r.pickup_day, 'YYYY-MM-DD'),
		       to_char(r.reserve_date, 'YYYY-MM-DD'),
		       r.status
		FROM reservations r
		JOIN cars c ON c.id = r.car_id
		WHERE r.customer_id = $1
		ORDER BY r.reserve_date DESC, r.id DESC`
	rows, err := r.db.QueryContext(ctx, q, customerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []CustomerRow
	for rows.Next() {
		var h CustomerRow
		if err := rows.Scan(
			&h.ResvID, &h.CarID, &h.Model, &h.PlateNo, &h.DailyPrice,
			&h.PickupDay, &h.ReserveDate, &h.Status,
		); err != nil {
			return nil, err
		}
		out = append(out, h)
	}
	return out, rows.Err()
}

func (r *repo) ListAll(ctx context.Context) ([]AdminRow, error) {
	const q = `
		SELECT r.id, cu.name, c.model, c.plate_no,
		       to_char(r.pickup_day, 'YYYY-MM-DD'),
		       to_char(r.reserve_date, 'YYYY-MM-DD'),
		       r.status
		FROM reservations r
		JOIN customers cu ON cu.id = r.customer_id
		JOIN cars c ON c.id = r.car_id
		ORDER BY r.reserve_date DESC, r.id DESC`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []AdminRow
	for rows.Next() {
		var h AdminRow
		if err := rows.Scan(
			&h.ResvID, &h.CustomerName, &h.Model, &h.PlateNo,
			&h.PickupDay, &h.ReserveDate, &h.Status,
		); err != nil {
			return nil, err
		}
		out = append(out, h)
	}
	return out, rows.Err()
}
