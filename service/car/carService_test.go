// service/car/car_service_test.go
package carsvc

import (
	"context"
	"errors"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"

	"carrental/model"
)

type repoMock struct {
	createFn        func(ctx context.Context, carModel, plateNo string, dailyPrice float64) (int64, error)
	listAvailableFn func(ctx context.Context) ([]model.Car, error)
	listAllFn       func(ctx context.Context) ([]model.Car, error)
}

func (m *repoMock) Create(ctx context.Context, carModel, plateNo string, dailyPrice float64) (int64, error) {
	return m.createFn(ctx, carModel, plateNo, dailyPrice)
}
func (m *repoMock) ListAvailable(ctx context.Context) ([]model.Car, error) {
	return m.listAvailableFn(ctx)
}
func (m *repoMock) ListAll(ctx context.Context) ([]model.Car, error) { return m.listAllFn(ctx) }

func TestCreate_Validation(t *testing.T) {
	s := New(&repoMock{}, nil)
	if _, err := s.Create(context.Background(), "", "ABC123", 50); Code(err) != ErrBadInput {
		t.Fatal("expected error for empty model")
	}
	if _, err := s.Create(context.Background(), "Toyota Camry", "  ", 50); Code(err) != ErrBadInput {
		t.Fatal("expected error for empty plate")
	}
	if _, err := s.Create(context.Background(), "Toyota Camry", "ABC123", -1); Code(err) != ErrBadInput {
		t.Fatal("expected error for negative price")
	}
}

func TestCreate_Success(t *testing.T) {
	m := &repoMock{
		createFn: func(ctx context.Context, carModel, plateNo string, dailyPrice float64) (int64, error) {
			if carModel != "Toyota Camry" || plateNo != "ABC123" || dailyPrice != 50 {
				return 0, errors.New("bad args")
			}
			return 42, nil
		},
	}
	s := New(m, nil)
	id, err := s.Create(context.Background(), " Toyota Camry ", "ABC123", 50)
	if err != nil || id != 42 {
		t.Fatalf("got id=%v err=%v; want 42 nil", id, err)
	}
}

func TestCreate_DuplicatePlate(t *testing.T) {
	m := &repoMock{
		createFn: func(ctx context.Context, carModel, plateNo string, dailyPrice float64) (int64, error) {
			return 0, &pgconn.PgError{Code: "23505", ConstraintName: "cars_plate_no_key"}
		},
	}
	s := New(m, nil)
	_, err := s.Create(context.Background(), "Honda Accord", "ABC123", 55)
	if Code(err) != ErrPlateTaken {
		t.Fatalf("got %v, want ErrPlateTaken", err)
	}
}

func TestCreate_StoreErrorUncoded(t *testing.T) {
	m := &repoMock{
		createFn: func(ctx context.Context, carModel, plateNo string, dailyPrice float64) (int64, error) {
			return 0, errors.New("db down")
		},
	}
	s := New(m, nil)
	_, err := s.Create(context.Background(), "Honda Accord", "XYZ789", 55)
	if err == nil || Code(err) != "" {
		t.Fatalf("got %v, want uncoded error", err)
	}
}

func TestAvailable_PassThrough(t *testing.T) {
	m := &repoMock{
		listAvailableFn: func(ctx context.Context) ([]model.Car, error) {
			return []model.Car{{ID: 1, Model: "Toyota Camry", PlateNo: "ABC123", DailyPrice: 50}}, nil
		},
		listAllFn: func(ctx context.Context) ([]model.Car, error) { return nil, nil },
	}
	s := New(m, nil)

	cars, err := s.Available(context.Background())
	if err != nil || len(cars) != 1 || cars[0].PlateNo != "ABC123" {
		t.Fatalf("Available got %v %v", cars, err)
	}
	if _, err := s.All(context.Background()); err != nil {
		t.Fatalf("All error: %v", err)
	}
}
