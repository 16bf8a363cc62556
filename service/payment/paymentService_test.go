// service/payment/payment_service_test.go
package paymentsvc_test

import (
	"context"
	"testing"
	"time"

	"carrental/queue"
	"carrental/repository"
	paymentsvc "carrental/service/payment"
)

type repoMock struct {
	settleFn      func(ctx context.Context, payID int64, method string, employeeID int64) (int64, error)
	listPendingFn func(ctx context.Context) ([]paymentsvc.PendingRow, error)
	byCustomerFn  func(ctx context.Context, customerID int64) ([]paymentsvc.CustomerRow, error)
	markOverdueFn func(ctx context.Context, now time.Time) (int64, error)
}

func (m *repoMock) Settle(ctx context.Context, payID int64, method string, employeeID int64) (int64, error) {
	return m.settleFn(ctx, payID, method, employeeID)
}
func (m *repoMock) ListPending(ctx context.Context) ([]paymentsvc.PendingRow, error) {
	return m.listPendingFn(ctx)
}
func (m *repoMock) ListByCustomer(ctx context.Context, customerID int64) ([]paymentsvc.CustomerRow, error) {
	return m.byCustomerFn(ctx, customerID)
}
func (m *repoMock) MarkOverdue(ctx context.Context, now time.Time) (int64, error) {
	return m.markOverdueFn(ctx, now)
}

type pubMock struct {
	queues []string
	events []any
}

func (p *pubMock) Publish(ctx context.Context, queueName string, event any) error {
	p.queues = append(p.queues, queueName)
	p.events = append(p.events, event)
	return nil
}

func TestSettle_Validation(t *testing.T) {
	// repo must not be called; nil settleFn panics if it is
	s := paymentsvc.New(&repoMock{}, nil, nil)

	if _, err := s.Settle(context.Background(), 1, "Bitcoin", 2); paymentsvc.Code(err) != paymentsvc.ErrBadMethod {
		t.Fatalf("unknown method: got %v, want ErrBadMethod", err)
	}
	if _, err := s.Settle(context.Background(), 1, "", 2); paymentsvc.Code(err) != paymentsvc.ErrBadMethod {
		t.Fatalf("empty method: got %v, want ErrBadMethod", err)
	}
	if _, err := s.Settle(context.Background(), 1, "Cash", 0); paymentsvc.Code(err) != paymentsvc.ErrBadInput {
		t.Fatalf("no employee: got %v, want ErrBadInput", err)
	}
}

func TestSettle_PromotesReservation(t *testing.T) {
	m := &repoMock{
		settleFn: func(ctx context.Context, payID int64, method string, employeeID int64) (int64, error) {
			if payID != 4 || method != "Cash" || employeeID != 2 {
				t.Fatalf("repo got pay=%d method=%s emp=%d", payID, method, employeeID)
			}
			return 17, nil
		},
	}
	pub := &pubMock{}
	s := paymentsvc.New(m, nil, pub)

	promoted, err := s.Settle(context.Background(), 4, "Cash", 2)
	if err != nil {
		t.Fatalf("Settle error: %v", err)
	}
	if !promoted {
		t.Fatal("promoted = false, want true")
	}
	if len(pub.queues) != 1 || pub.queues[0] != queue.QueuePaymentSettled {
		t.Fatalf("published to %v, want [%s]", pub.queues, queue.QueuePaymentSettled)
	}
	ev, ok := pub.events[0].(queue.PaymentSettledEvent)
	if !ok || ev.ReservationID != 17 || !ev.Promoted || ev.Method != "Cash" {
		t.Fatalf("event = %#v", pub.events[0])
	}
}

func TestSettle_NoPendingReservation(t *testing.T) {
	m := &repoMock{
		settleFn: func(ctx context.Context, payID int64, method string, employeeID int64) (int64, error) {
			return 0, nil
		},
	}
	s := paymentsvc.New(m, nil, nil)

	promoted, err := s.Settle(context.Background(), 4, "Credit Card", 2)
	if err != nil {
		t.Fatalf("Settle error: %v", err)
	}
	if promoted {
		t.Fatal("promoted = true, want false")
	}
}

func TestSettle_Mapping(t *testing.T) {
	cases := []struct {
		repoErr error
		want    paymentsvc.ErrCode
	}{
		{repository.ErrNotFound, paymentsvc.ErrNotFound},
		{repository.ErrAlreadySettled, paymentsvc.ErrAlreadySettled},
	}
	for _, c := range cases {
		m := &repoMock{
			settleFn: func(ctx context.Context, payID int64, method string, employeeID int64) (int64, error) {
				return 0, c.repoErr
			},
		}
		s := paymentsvc.New(m, nil, nil)
		_, err := s.Settle(context.Background(), 1, "Cheque", 3)
		if paymentsvc.Code(err) != c.want {
			t.Errorf("repo err %v: got %v, want %s", c.repoErr, err, c.want)
		}
	}
}

func TestPassThroughs(t *testing.T) {
	m := &repoMock{
		listPendingFn: func(ctx context.Context) ([]paymentsvc.PendingRow, error) {
			return []paymentsvc.PendingRow{{PayID: 1}}, nil
		},
		byCustomerFn: func(ctx context.Context, customerID int64) ([]paymentsvc.CustomerRow, error) {
			return nil, nil
		},
	}
	s := paymentsvc.New(m, nil, nil)

	rows, err := s.PendingPayments(context.Background())
	if err != nil || len(rows) != 1 {
		t.Fatalf("PendingPayments got %v %v", rows, err)
	}
	if _, err := s.MyPayments(context.Background(), 9); err != nil {
		t.Fatalf("MyPayments error: %v", err)
	}
}

func TestSweeper(t *testing.T) {
	m := &repoMock{
		markOverdueFn: func(ctx context.Context, now time.Time) (int64, error) {
			if now.IsZero() {
				t.Fatal("zero now passed to repo")
			}
			return 3, nil
		},
	}
	sw := paymentsvc.NewSweeper(m)
	n, err := sw.MarkOverdue(context.Background())
	if err != nil || n != 3 {
		t.Fatalf("MarkOverdue got %d %v; want 3 nil", n, err)
	}
}
