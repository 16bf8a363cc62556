package reservationsvc

import (
	"context"
	"errors"
	"time"

	"carrental/model"
	"carrental/queue"
	"carrental/repository"
	resvrepo "carrental/repository/reservation"
	"carrental/util/cache"
)

// errors used by controllers

type ErrCode string

const (
	ErrInvalidDate       ErrCode = "INVALID_DATE"
	ErrBadStatus         ErrCode = "BAD_STATUS"
	ErrCarNotFound       ErrCode = "CAR_NOT_FOUND"
	ErrCarUnavailable    ErrCode = "CAR_UNAVAILABLE"
	ErrNotFound          ErrCode = "NOT_FOUND"
	ErrInvalidTransition ErrCode = "INVALID_TRANSITION"
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

// dto

type Created struct {
	ReservationID int64
	PaymentID     int64
	Status        string
	PaymentDueAt  string
}

// row shapes come from the repository
type CustomerRow = resvrepo.CustomerRow
type AdminRow = resvrepo.AdminRow

type Repo interface {
	CreateWithPayment(ctx context.Context, customerID, carID int64, pickup time.Time) (resvID, payID int64, err error)
	TransitionStatus(ctx context.Context, resvID int64, to model.ReservationStatus) (model.ReservationStatus, error)
	ListByCustomer(ctx context.Context, customerID int64) ([]CustomerRow, error)
	ListAll(ctx context.Context) ([]AdminRow, error)
}

type Service interface {
	// Create books a car for pickup on pickupDay ("YYYY-MM-DD") and opens
	// the companion payment. Both rows land or neither does.
	Create(ctx context.Context, customerID, carID int64, pickupDay string) (*Created, error)

	// UpdateStatus applies one legal state-machine step.
	UpdateStatus(ctx context.Context, resvID int64, newStatus string) error

	MyReservations(ctx context.Context, customerID int64) ([]CustomerRow, error)
	AllReservations(ctx context.Context) ([]AdminRow, error)
}

// ----- Service implementation -----

type service struct {
	r     Repo
	cache *cache.Cache
	pub   queue.Publisher
}

func New(r Repo, c *cache.Cache, pub queue.Publisher) Service {
	return &service{r: r, cache: c, pub: pub}
}

const dayLayout = "2006-01-02"

func (s *service) Create(ctx context.Context, customerID, carID int64, pickupDay string) (*Created, error) {
	pickup, err := time.ParseInLocation(dayLayout, pickupDay, time.UTC)
	if err != nil {
		return nil, makeErr(ErrInvalidDate)
	}
	// No backdated pickups. Date-only comparison, so booking for today is fine.
	today := time.Now().UTC().Truncate(24 * time.Hour)
	if pickup.Before(today) {
		return nil, makeErr(ErrInvalidDate)
	}

	resvID, payID, err := s.r.CreateWithPayment(ctx, customerID, carID, pickup)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrNotFound):
			return nil, makeErr(ErrCarNotFound)
		case errors.Is(err, repository.ErrCarUnavailable):
			return nil, makeErr(ErrCarUnavailable)
		}
		return nil, err
	}

	if s.pub != nil {
		_ = s.pub.Publish(ctx, queue.QueueReservationCreated, queue.ReservationCreatedEvent{
			ReservationID: resvID,
			PaymentID:     payID,
			CustomerID:    customerID,
			CarID:         carID,
			PickupDay:     pickupDay,
		})
	}

	return &Created{
		ReservationID: resvID,
		PaymentID:     payID,
		Status:        string(model.ReservationPending),
		PaymentDueAt:  pickup.AddDate(0, 0, 1).Format(dayLayout),
	}, nil
}

func (s *service) UpdateStatus(ctx context.Context, resvID int64, newStatus string) error {
	to, ok := model.ParseReservationStatus(newStatus)
	if !ok {
		return makeErr(ErrBadStatus)
	}

	prev, err := s.r.TransitionStatus(ctx, resvID, to)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrNotFound):
			return makeErr(ErrNotFound)
		case errors.Is(err, repository.ErrInvalidTransition):
			return makeErr(ErrInvalidTransition)
		}
		return err
	}

	// Availability only changes when a car gains or loses an Active
	// reservation.
	if prev == model.ReservationActive || to == model.ReservationActive {
		s.cache.Del(ctx, cache.KeyAvailableCars)
	}

	if s.pub != nil {
		_ = s.pub.Publish(ctx, queue.QueueReservationStatusChanged, queue.ReservationStatusChangedEvent{
			ReservationID: resvID,
			From:          string(prev),
			To:            string(to),
		})
	}
	return nil
}

func (s *service) MyReservations(ctx context.Context, customerID int64) ([]CustomerRow, error) {
	return s.r.ListByCustomer(ctx, customerID)
}

func (s *service) AllReservations(ctx context.Context) ([]AdminRow, error) {
	return s.r.ListAll(ctx)
}
