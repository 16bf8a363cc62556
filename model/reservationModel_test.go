package model

import "testing"

func TestCanTransitionTo(t *testing.T) {
	cases := []struct {
		from, to ReservationStatus
		want     bool
	}{
		{ReservationPending, ReservationActive, true},
		{ReservationPending, ReservationCancelled, true},
		{ReservationActive, ReservationCompleted, true},
		{ReservationActive, ReservationCancelled, true},
		{ReservationPending, ReservationCompleted, false},
		{ReservationActive, ReservationPending, false},
		{ReservationCompleted, ReservationActive, false},
		{ReservationCompleted, ReservationCancelled, false},
		{ReservationCancelled, ReservationActive, false},
		{ReservationCancelled, ReservationPending, false},
		{ReservationPending, ReservationPending, false},
	}
	for _, c := range cases {
		if got := c.from.CanTransitionTo(c.to); got != c.want {
			t.Errorf("%s -> %s: got %v, want %v", c.from, c.to, got, c.want)
		}
	}
}

func TestParseReservationStatus(t *testing.T) {
	for _, s := range []string{"Pending", "Active", "Completed", "Cancelled"} {
		if _, ok := ParseReservationStatus(s); !ok {
			t.Errorf("ParseReservationStatus(%q) = !ok", s)
		}
	}
	for _, s := range []string{"", "pending", "ACTIVE", "Returned"} {
		if _, ok := ParseReservationStatus(s); ok {
			t.Errorf("ParseReservationStatus(%q) = ok, want !ok", s)
		}
	}
}

func TestValidPaymentMethod(t *testing.T) {
	for _, m := range []string{"Credit Card", "Cash", "Bank Transfer", "Cheque"} {
		if !ValidPaymentMethod(m) {
			t.Errorf("ValidPaymentMethod(%q) = false", m)
		}
	}
	for _, m := range []string{"", "cash", "Bitcoin"} {
		if ValidPaymentMethod(m) {
			t.Errorf("ValidPaymentMethod(%q) = true", m)
		}
	}
}
