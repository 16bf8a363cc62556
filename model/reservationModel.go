// model/reservation.go
package model

import "time"

type ReservationStatus string

const (
	ReservationPending   ReservationStatus = "Pending"
	ReservationActive    ReservationStatus = "Active"
	ReservationCompleted ReservationStatus = "Completed"
	ReservationCancelled ReservationStatus = "Cancelled"
)

// transitions lists the legal next states. Completed and Cancelled are
// terminal, so they have no entry.
var transitions = map[ReservationStatus][]ReservationStatus{
	ReservationPending: {ReservationActive, ReservationCancelled},
	ReservationActive:  {ReservationCompleted, ReservationCancelled},
}

func (s ReservationStatus) CanTransitionTo(to ReservationStatus) bool {
	for _, next := range transitions[s] {
		if next == to {
			return true
		}
	}
	return false
}

// ParseReservationStatus maps a raw status string to a known status.
func ParseReservationStatus(s string) (ReservationStatus, bool) {
	switch ReservationStatus(s) {
	case ReservationPending, ReservationActive, ReservationCompleted, ReservationCancelled:
		return ReservationStatus(s), true
	}
	return "", false
}

type Reservation struct {
	ID          int64             `json:"resv_id"`
	CustomerID  int64             `json:"customer_id"`
	CarID       int64             `json:"car_id"`
	PickupDay   time.Time         `json:"pickup_day"`
	ReserveDate time.Time         `json:"reserve_date"`
	Status      ReservationStatus `json:"status"`
}
