// repository/user/repo.go
package userrepo

import (
	"context"
	"database/sql"
	"errors"

	"carrental/model"
	"carrental/repository"
)

type Repo interface {
	// CreateCustomer inserts the account and its customer profile in one
	// transaction. IDs are populated on the passed structs.
	CreateCustomer(ctx context.Context, u *model.User, c *model.Customer) error
	CreateEmployee(ctx context.Context, u *model.User, e *model.Employee) error
	ByUsername(ctx context.Context, username string) (*model.User, error)
	CustomerIDByUserID(ctx context.Context, userID int64) (int64, error)
	EmployeeIDByUserID(ctx context.Context, userID int64) (int64, error)
}

type repo struct{ db *sql.DB }

func New(db *sql.DB) Repo { return &repo{db} }

func (r *repo) CreateCustomer(ctx context.Context, u *model.User, c *model.Customer) (err error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	if err = insertUser(ctx, tx, u); err != nil {
		return err
	}

	const q = `
		INSERT INTO customers (user_id, name, email, phone, address, street, city, id_number, license)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)
		RETURNING id`
	if err = tx.QueryRowContext(ctx, q,
		u.ID, c.Name, c.Email, c.Phone, c.Address, c.Street, c.City, c.IDNumber, c.License,
	).Scan(&c.ID); err != nil {
		return err
	}
	c.UserID = u.ID
	return tx.Commit()
}

func (r *repo) CreateEmployee(ctx context.Context, u *model.User, e *model.Employee) (err error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	if err = insertUser(ctx, tx, u); err != nil {
		return err
	}

	const q = `
		INSERT INTO employees (user_id, name, email, phone, address, street, city)
		VALUES ($1,$2,$3,$4,$5,$6,$7)
		RETURNING id`
	if err = tx.QueryRowContext(ctx, q,
		u.ID, e.Name, e.Email, e.Phone, e.Address, e.Street, e.City,
	).Scan(&e.ID); err != nil {
		return err
	}
	e.UserID = u.ID
	return tx.Commit()
}

func insertUser(ctx context.Context, tx *sql.Tx, u *model.User) error {
	const q = `
		INSERT INTO users (username, password_hash, user_type)
		VALUES ($1,$2,$3)
		RETURNING id, created_at`
	return tx.QueryRowContext(ctx, q, u.Username, u.PasswordHash, u.UserType).
		Scan(&u.ID, &u.CreatedAt)
}

func (r *repo) ByUsername(ctx context.Context, username string) (*model.User, error) {
	u := &model.User{}
	err := r.db.QueryRowContext(ctx, `
		SELECT id, username, password_hash, user_type, created_at
		FROM users
		WHERE lower(username) = lower($1)`,
		username,
	).Scan(&u.ID, &u.Username, &u.PasswordHash, &u.UserType, &u.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return u, nil
}

func (r *repo) CustomerIDByUserID(ctx context.Context, userID int64) (int64, error) {
	return r.profileID(ctx, `SELECT id FROM customers WHERE user_id = $1`, userID)
}

func (r *repo) EmployeeIDByUserID(ctx context.Context, userID int64) (int64, error) {
	return r.profileID(ctx, `SELECT id FROM employees WHERE user_id = $1`, userID)
}

func (r *repo) profileID(ctx context.Context, q string, userID int64) (int64, error) {
	var id int64
	err := r.db.QueryRowContext(ctx, q, userID).Scan(&id)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, repository.ErrNotFound
	}
	return id, err
}
