package paymentsvc

import (
	"context"
	"errors"
	"time"

	"carrental/model"
	"carrental/queue"
	"carrental/repository"
	payrepo "carrental/repository/payment"
	"carrental/util/cache"
)

// errors used by controllers

type ErrCode string

const (
	ErrNotFound       ErrCode = "NOT_FOUND"
	ErrAlreadySettled ErrCode = "ALREADY_SETTLED"
	ErrBadMethod      ErrCode = "BAD_METHOD"
	ErrBadInput       ErrCode = "BAD_INPUT"
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

type PendingRow = payrepo.PendingRow
type CustomerRow = payrepo.CustomerRow

type Repo interface {
	Settle(ctx context.Context, payID int64, method string, employeeID int64) (promotedResvID int64, err error)
	ListPending(ctx context.Context) ([]PendingRow, error)
	ListByCustomer(ctx context.Context, customerID int64) ([]CustomerRow, error)
	MarkOverdue(ctx context.Context, now time.Time) (int64, error)
}

type Service interface {
	// Settle records the payment as Paid and promotes its Pending
	// reservation to Active in the same unit of work. The returned flag
	// reports whether a reservation was promoted.
	Settle(ctx context.Context, payID int64, method string, employeeID int64) (bool, error)

	PendingPayments(ctx context.Context) ([]PendingRow, error)
	MyPayments(ctx context.Context, customerID int64) ([]CustomerRow, error)
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

func (s *service) Settle(ctx context.Context, payID int64, method string, employeeID int64) (bool, error) {
	if !model.ValidPaymentMethod(method) {
		return false, makeErr(ErrBadMethod)
	}
	if employeeID <= 0 {
		return false, makeErr(ErrBadInput)
	}

	resvID, err := s.r.Settle(ctx, payID, method, employeeID)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrNotFound):
			return false, makeErr(ErrNotFound)
		case errors.Is(err, repository.ErrAlreadySettled):
			return false, makeErr(ErrAlreadySettled)
		}
		return false, err
	}
	promoted := resvID != 0

	// The promoted reservation just took its car off the market.
	if promoted {
		s.cache.Del(ctx, cache.KeyAvailableCars)
	}

	if s.pub != nil {
		_ = s.pub.Publish(ctx, queue.QueuePaymentSettled, queue.PaymentSettledEvent{
			PaymentID:     payID,
			ReservationID: resvID,
			EmployeeID:    employeeID,
			Method:        method,
			Promoted:      promoted,
		})
	}
	return promoted, nil
}

func (s *service) PendingPayments(ctx context.Context) ([]PendingRow, error) {
	return s.r.ListPending(ctx)
}

func (s *service) MyPayments(ctx context.Context, customerID int64) ([]CustomerRow, error) {
	return s.r.ListByCustomer(ctx, customerID)
}
