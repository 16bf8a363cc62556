package payment

import (
	"log/slog"
	"net/http"
	"strconv"

	paymentsvc "carrental/service/payment"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

type Controller struct {
	Svc paymentsvc.Service
	V   *validator.Validate
	Log *slog.Logger
}

// POST /v1/payments/:id/settle  (employee)
func (h *Controller) Settle(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid id"})
	}
	var req SettlePaymentReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid JSON"})
	}
	if err := h.V.Struct(req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "validation error"})
	}
	employeeID, _ := c.Get("profile_id").(int64)

	promoted, err := h.Svc.Settle(c.Request().Context(), id, req.Method, employeeID)
	if err != nil {
		switch paymentsvc.Code(err) {
		case paymentsvc.ErrNotFound:
			return c.JSON(http.StatusNotFound, echo.Map{"message": "payment not found"})
		case paymentsvc.ErrAlreadySettled:
			return c.JSON(http.StatusConflict, echo.Map{"message": "payment already settled"})
		case paymentsvc.ErrBadMethod:
			return c.JSON(http.StatusBadRequest, echo.Map{"message": "unknown payment method"})
		case paymentsvc.ErrBadInput:
			return c.JSON(http.StatusBadRequest, echo.Map{"message": "bad input"})
		default:
			h.Log.Error("payment settle", "err", err)
			return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
		}
	}
	return c.JSON(http.StatusOK, echo.Map{
		"message":              "paid",
		"reservation_promoted": promoted,
	})
}

// GET /v1/payments/pending  (employee)
func (h *Controller) Pending(c echo.Context) error {
	rows, err := h.Svc.PendingPayments(c.Request().Context())
	if err != nil {
		h.Log.Error("payments pending", "err", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
	}
	return c.JSON(http.StatusOK, echo.Map{"data": rows})
}

// GET /v1/payments/my
func (h *Controller) MyPayments(c echo.Context) error {
	customerID, _ := c.Get("profile_id").(int64)
	rows, err := h.Svc.MyPayments(c.Request().Context(), customerID)
	if err != nil {
		h.Log.Error("payments history", "err", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
	}
	return c.JSON(http.StatusOK, echo.Map{"data": rows})
}
