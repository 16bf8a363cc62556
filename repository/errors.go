// Package repository defines error values shared by the entity
// repositories. Services translate these sentinels into their own
// error codes instead of leaking raw database errors upward.
package repository

import "errors"

// ErrNotFound is returned when a referenced row does not exist.
var ErrNotFound = errors.New("not found")

// ErrCarUnavailable is returned when a reservation is attempted for a
// car that already has an Active reservation.
var ErrCarUnavailable = errors.New("car unavailable")

// ErrAlreadySettled is returned when settling a payment that is
// already Paid.
var ErrAlreadySettled = errors.New("payment already settled")

// ErrInvalidTransition is returned when a reservation status change
// is not allowed from the row's current status.
var ErrInvalidTransition = errors.New("invalid status transition")
