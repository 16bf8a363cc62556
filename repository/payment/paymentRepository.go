// repository/payment/repo.go
package paymentrepo

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"carrental/repository"
)

// PendingRow is the employee-facing queue of unsettled payments.
type PendingRow struct {
	PayID        int64   `json:"pay_id"`
	CustomerName string  `json:"customer_name"`
	Amount       float64 `json:"amount"`
	PayDate      string  `json:"pay_date"`
	DueDate      string  `json:"due_date"`
	Status       string  `json:"pay_status"`
}

// CustomerRow is the customer-facing payment history projection.
type CustomerRow struct {
	PayID        int64   `json:"pay_id"`
	Amount       float64 `json:"amount"`
	PayDate      string  `json:"pay_date"`
	DueDate      string  `json:"due_date"`
	Method       *string `json:"method,omitempty"`
	Status       string  `json:"pay_status"`
	EmployeeName string  `json:"employee_name"`
}

type Repo interface {
	// Settle marks the payment Paid and, in the same transaction, promotes
	// the linked reservation to Active if it is still Pending. The id of
	// the promoted reservation is returned, 0 when none was promoted.
	// Settling an already-Paid payment fails with ErrAlreadySettled and
	// changes nothing.
	Settle(ctx context.Context, payID int64, method string, employeeID int64) (promotedResvID int64, err error)

	ListPending(ctx context.Context) ([]PendingRow, error)
	ListByCustomer(ctx context.Context, customerID int64) ([]CustomerRow, error)

	// MarkOverdue flips Pending payments whose due date has passed to
	// Overdue and reports how many rows changed.
	MarkOverdue(ctx context.Context, now time.Time) (int64, error)
}

type repo struct{ db *sql.DB }

func New(db *sql.DB) Repo { return &repo{db} }

func (r *repo) Settle(ctx context.Context, payID int64, method string, employeeID int64) (promotedResvID int64, err error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	const lockPay = `
		SELECT pay_status, customer_id, reservation_id
		FROM payments
		WHERE id = $1
		FOR UPDATE`
	var status string
	var customerID int64
	var resvID sql.NullInt64
	if err = tx.QueryRowContext(ctx, lockPay, payID).Scan(&status, &customerID, &resvID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			err = repository.ErrNotFound
		}
		return 0, err
	}
	if status == "Paid" {
		err = repository.ErrAlreadySettled
		return 0, err
	}

	const upd = `
		UPDATE payments
		SET pay_status = 'Paid',
		    method = $2,
		    employee_id = $3,
		    pay_date = CURRENT_DATE
		WHERE id = $1`
	if _, err = tx.ExecContext(ctx, upd, payID, method, employeeID); err != nil {
		return 0, err
	}

	if resvID.Valid {
		promotedResvID, err = r.promote(ctx, tx, resvID.Int64)
	} else {
		// Rows predating the reservation FK: fall back to the original
		// same-customer coupling and promote the oldest Pending one.
		promotedResvID, err = r.promoteByCustomer(ctx, tx, customerID)
	}
	if err != nil {
		return 0, err
	}

	if err = tx.Commit(); err != nil {
		return 0, err
	}
	return promotedResvID, nil
}

func (r *repo) promote(ctx context.Context, tx *sql.Tx, resvID int64) (int64, error) {
	const q = `
		UPDATE reservations
		SET status = 'Active'
		WHERE id = $1 AND status = 'Pending'`
	res, err := tx.ExecContext(ctx, q, resvID)
	if err != nil {
		return 0, err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return 0, nil
	}
	return resvID, nil
}

func (r *repo) promoteByCustomer(ctx context.Context, tx *sql.Tx, customerID int64) (int64, error) {
	const pick = `
		SELECT id
		FROM reservations
		WHERE customer_id = $1 AND status = 'Pending'
		ORDER BY id
		FOR UPDATE
		LIMIT 1`
	var resvID int64
	err := tx.QueryRowContext(ctx, pick, customerID).Scan(&resvID)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}
	return r.promote(ctx, tx, resvID)
}

func (r *repo) ListPending(ctx context.Context) ([]PendingRow, error) {
	const q = `
		SELECT p.id, cu.name, p.amount,
		       to_char(p.pay_date, 'YYYY-MM-DD'),
		       to_char(p.due_date, 'YYYY-MM-DD'),
		       p.pay_status
		FROM payments p
		JOIN customers cu ON cu.id = p.customer_id
		WHERE p.pay_status = 'Pending'
		ORDER BY p.due_date, p.id`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []PendingRow
	for rows.Next() {
		var h PendingRow
		if err := rows.Scan(&h.PayID, &h.CustomerName, &h.Amount, &h.PayDate, &h.DueDate, &h.Status); err != nil {
			return nil, err
		}
		out = append(out, h)
	}
	return out, rows.Err()
}

func (r *repo) ListByCustomer(ctx context.Context, customerID int64) ([]CustomerRow, error) {
	const q = `
		SELECT p.id, p.amount,
		       to_char(p.pay_date, 'YYYY-MM-DD'),
		       to_char(p.due_date, 'YYYY-MM-DD'),
		       p.method, p.pay_status,
		       COALESCE(e.name, 'Not Assigned')
		FROM payments p
		LEFT JOIN employees e ON e.id = p.employee_id
		WHERE p.customer_id = $1
		ORDER BY p.pay_date DESC, p.id DESC`
	rows, err := r.db.QueryContext(ctx, q, customerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []CustomerRow
	for rows.Next() {
		var h CustomerRow
		if err := rows.Scan(&h.PayID, &h.Amount, &h.PayDate, &h.DueDate, &h.Method, &h.Status, &h.EmployeeName); err != nil {
			return nil, err
		}
		out = append(out, h)
	}
	return out, rows.Err()
}

func (r *repo) MarkOverdue(ctx context.Context, now time.Time) (int64, error) {
	const q = `
		UPDATE payments
		SET pay_status = 'Overdue'
		WHERE pay_status = 'Pending' AND due_date < $1`
	res, err := r.db.ExecContext(ctx, q, now)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}
