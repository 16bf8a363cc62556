// repository/car/repo.go
package carrepo

import (
	"context"
	"database/sql"

	"carrental/model"
)

type Repo interface {
	Create(ctx context.Context, carModel, plateNo string, dailyPrice float64) (int64, error)
	// ListAvailable returns cars with no Active reservation, cheapest first.
	ListAvailable(ctx context.Context) ([]model.Car, error)
	ListAll(ctx context.Context) ([]model.Car, error)
}

type repo struct{ db *sql.DB }

func New(db *sql.DB) Repo { return &repo{db} }

func (r *repo) Create(ctx context.Context, carModel, plateNo string, dailyPrice float64) (int64, error) {
	const q = `
		INSERT INTO cars (model, plate_no, daily_price)
		VALUES ($1,$2,$3)
		RETURNING id`
	var id int64
	if err := r.db.QueryRowContext(ctx, q, carModel, plateNo, dailyPrice).Scan(&id); err != nil {
		return 0, err
	}
	return id, nil
}

func (r *repo) ListAvailable(ctx context.Context) ([]model.Car, error) {
	const q = `
		SELECT c.id, c.model, c.plate_no, c.daily_price
		FROM cars c
		WHERE NOT EXISTS (
			SELECT 1 FROM reservations r
			WHERE r.car_id = c.id AND r.status = 'Active'
		)
		ORDER BY c.daily_price, c.id`
	return r.list(ctx, q)
}

func (r *repo) ListAll(ctx context.Context) ([]model.Car, error) {
	const q = `
		SELECT id, model, plate_no, daily_price
		FROM cars
		ORDER BY model, id`
	return r.list(ctx, q)
}

func (r *repo) list(ctx context.Context, q string) ([]model.Car, error) {
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.Car
	for rows.Next() {
		var c model.Car
		if err := rows.Scan(&c.ID, &c.Model, &c.PlateNo, &c.DailyPrice); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}
