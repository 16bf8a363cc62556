package carsvc

import (
	"context"
	"errors"
	"strings"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"

	"carrental/model"
	"carrental/util/cache"
)

// errors used by controllers

type ErrCode string

const (
	ErrBadInput   ErrCode = "BAD_INPUT"
	ErrPlateTaken ErrCode = "PLATE_TAKEN"
)

type codedError struct{ code ErrCode }

func (e codedError) Error() string { return string(e.code) }
func (e codedError) Code() ErrCode { return e.code }
func makeErr(c ErrCode) error      { return codedError{code: c} }

// Code extracts error code
func Code(err error) ErrCode {
	var ce interface{ Code() ErrCode }
	if errors.As(err, &ce) {
		return ce.Code()
	}
	return ""
}

type Repo interface {
	Create(ctx context.Context, carModel, plateNo string, dailyPrice float64) (int64, error)
	ListAvailable(ctx context.Context) ([]model.Car, error)
	ListAll(ctx context.Context) ([]model.Car, error)
}

type Service interface {
	Create(ctx context.Context, carModel, plateNo string, dailyPrice float64) (int64, error)
	// Available lists cars without an Active reservation, cheapest first.
	Available(ctx context.Context) ([]model.Car, error)
	All(ctx context.Context) ([]model.Car, error)
}

type service struct {
	r     Repo
	cache *cache.Cache
}

func New(r Repo, c *cache.Cache) Service { return &service{r: r, cache: c} }

func (s *service) Create(ctx context.Context, carModel, plateNo string, dailyPrice float64) (int64, error) {
	carModel = strings.TrimSpace(carModel)
	plateNo = strings.TrimSpace(plateNo)
	if carModel == "" || plateNo == "" || dailyPrice < 0 {
		return 0, makeErr(ErrBadInput)
	}

	id, err := s.r.Create(ctx, carModel, plateNo, dailyPrice)
	if err != nil {
		if derr := mapDuplicateErr(err); derr != nil {
			return 0, derr
		}
		return 0, err
	}

	// A new car is available until someone reserves it.
	s.cache.Del(ctx, cache.KeyAvailableCars)
	return id, nil
}

func mapDuplicateErr(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
		cn := strings.ToLower(pgErr.ConstraintName)
		msg := strings.ToLower(pgErr.Message)
		if strings.Contains(cn, "plate") || strings.Contains(msg, "plate") {
			return makeErr(ErrPlateTaken)
		}
		return makeErr(ErrBadInput)
	}
	return nil
}

func (s *service) Available(ctx context.Context) ([]model.Car, error) {
	var cached []model.Car
	if s.cache.GetJSON(ctx, cache.KeyAvailableCars, &cached) {
		return cached, nil
	}

	cars, err := s.r.ListAvailable(ctx)
	if err != nil {
		return nil, err
	}
	s.cache.SetJSON(ctx, cache.KeyAvailableCars, cars)
	return cars, nil
}

func (s *service) All(ctx context.Context) ([]model.Car, error) {
	return s.r.ListAll(ctx)
}
