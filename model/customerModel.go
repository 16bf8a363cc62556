// model/customer.go
package model

type Customer struct {
	ID       int64  `json:"customer_id"`
	UserID   int64  `json:"user_id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Address  string `json:"address"`
	Street   string `json:"street"`
	City     string `json:"city"`
	IDNumber string `json:"id_number"`
	License  string `json:"license"`
}

type Employee struct {
	ID      int64  `json:"emp_id"`
	UserID  int64  `json:"user_id"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
	Street  string `json:"street"`
	City    string `json:"city"`
}
