// model/payment.go
package model

import "time"

type PaymentStatus string

const (
	PaymentPending PaymentStatus = "Pending"
	PaymentPaid    PaymentStatus = "Paid"
	PaymentOverdue PaymentStatus = "Overdue"
)

var paymentMethods = map[string]bool{
	"Credit Card":   true,
	"Cash":          true,
	"Bank Transfer": true,
	"Cheque":        true,
}

// ValidPaymentMethod reports whether m is an accepted settlement method.
func ValidPaymentMethod(m string) bool { return paymentMethods[m] }

type Payment struct {
	ID            int64         `json:"pay_id"`
	CustomerID    int64         `json:"customer_id"`
	ReservationID *int64        `json:"reservation_id,omitempty"`
	Amount        float64       `json:"amount"`
	PayDate       time.Time     `json:"pay_date"`
	DueDate       time.Time     `json:"due_date"`
	Method        *string       `json:"method,omitempty"`
	Status        PaymentStatus `json:"pay_status"`
	EmployeeID    *int64        `json:"employee_id,omitempty"`
}
