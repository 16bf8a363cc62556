package reservation

import (
	"log/slog"
	"net/http"
	"strconv"

	rs "carrental/service/reservation"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

type Controller struct {
	Svc rs.Service
	V   *validator.Validate
	Log *slog.Logger
}

// POST /v1/reservations
func (h *Controller) Create(c echo.Context) error {
	var req CreateReservationReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid JSON"})
	}
	if err := h.V.Struct(req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{
			"message": "validation error",
			"errors":  err.Error(),
		})
	}
	customerID, _ := c.Get("profile_id").(int64)

	out, err := h.Svc.Create(c.Request().Context(), customerID, req.CarID, req.PickupDay)
	if err != nil {
		switch rs.Code(err) {
		case rs.ErrInvalidDate:
			return c.JSON(http.StatusBadRequest, echo.Map{"message": "pickup date cannot be before current date"})
		case rs.ErrCarNotFound:
			return c.JSON(http.StatusNotFound, echo.Map{"message": "car not found"})
		case rs.ErrCarUnavailable:
			return c.JSON(http.StatusConflict, echo.Map{"message": "car not available"})
		default:
			h.Log.Error("reservation create", "err", err)
			return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
		}
	}

	return c.JSON(http.StatusCreated, echo.Map{
		"resv_id":        out.ReservationID,
		"pay_id":         out.PaymentID,
		"status":         out.Status,
		"payment_due_at": out.PaymentDueAt,
	})
}

// PATCH /v1/reservations/:id/status
func (h *Controller) UpdateStatus(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid id"})
	}
	var req UpdateStatusReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid JSON"})
	}
	if err := h.V.Struct(req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "validation error"})
	}

	if err := h.Svc.UpdateStatus(c.Request().Context(), id, req.Status); err != nil {
		switch rs.Code(err) {
		case rs.ErrBadStatus:
			return c.JSON(http.StatusBadRequest, echo.Map{"message": "unknown status"})
		case rs.ErrNotFound:
			return c.JSON(http.StatusNotFound, echo.Map{"message": "reservation not found"})
		case rs.ErrInvalidTransition:
			return c.JSON(http.StatusConflict, echo.Map{"message": "status change not allowed"})
		default:
			h.Log.Error("reservation status", "err", err)
			return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
		}
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "updated"})
}

// GET /v1/reservations/my
func (h *Controller) MyReservations(c echo.Context) error {
	customerID, _ := c.Get("profile_id").(int64)
	rows, err := h.Svc.MyReservations(c.Request().Context(), customerID)
	if err != nil {
		h.Log.Error("reservation history", "err", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
	}
	return c.JSON(http.StatusOK, echo.Map{"data": rows})
}

// GET /v1/reservations  (employee)
func (h *Controller) AllReservations(c echo.Context) error {
	rows, err := h.Svc.AllReservations(c.Request().Context())
	if err != nil {
		h.Log.Error("reservation list", "err", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
	}
	return c.JSON(http.StatusOK, echo.Map{"data": rows})
}
