package model

import "time"

const (
	RoleCustomer = "Customer"
	RoleEmployee = "Employee"
)

type User struct {
	ID           int64     `json:"id"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"`
	UserType     string    `json:"user_type"`
	CreatedAt    time.Time `json:"created_at"`
}

// RegisterCustomerReq represents customer registration payload
// swagger:model RegisterCustomerReq
type RegisterCustomerReq struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required,min=6"`
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"omitempty,email"`
	Phone    string `json:"phone"`
	Address  string `json:"address"`
	Street   string `json:"street"`
	City     string `json:"city"`
	IDNumber string `json:"id_number" validate:"required"`
	License  string `json:"license" validate:"required"`
}

// RegisterEmployeeReq represents employee registration payload
// swagger:model RegisterEmployeeReq
type RegisterEmployeeReq struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required,min=6"`
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"omitempty,email"`
	Phone    string `json:"phone"`
	Address  string `json:"address"`
	Street   string `json:"street"`
	City     string `json:"city"`
}

// LoginReq represents login payload
// swagger:model LoginReq
type LoginReq struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}
