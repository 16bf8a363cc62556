// Package queue defines the lifecycle events published to the message
// broker and the publisher used to emit them. Publishing is best
// effort; a broker outage never fails the request that produced the
// event.
package queue

// Queue names. Durable, declared on publish.
const (
	QueueReservationCreated       = "reservation.created"
	QueueReservationStatusChanged = "reservation.status_changed"
	QueuePaymentSettled           = "payment.settled"
)

type ReservationCreatedEvent struct {
	ReservationID int64  `json:"reservation_id"`
	PaymentID     int64  `json:"payment_id"`
	CustomerID    int64  `json:"customer_id"`
	CarID         int64  `json:"car_id"`
	PickupDay     string `json:"pickup_day"`
}

type ReservationStatusChangedEvent struct {
	ReservationID int64  `json:"reservation_id"`
	From          string `json:"from"`
	To            string `json:"to"`
}

type PaymentSettledEvent struct {
	PaymentID     int64  `json:"payment_id"`
	ReservationID int64  `json:"reservation_id,omitempty"`
	EmployeeID    int64  `json:"employee_id"`
	Method        string `json:"method"`
	Promoted      bool   `json:"promoted"`
}
