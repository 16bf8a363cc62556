package car

import (
	"log/slog"
	"net/http"

	carsvc "carrental/service/car"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

type Controller struct {
	Svc carsvc.Service
	V   *validator.Validate
	Log *slog.Logger
}

// POST /v1/cars  (employee)
func (h *Controller) Create(c echo.Context) error {
	var req CreateCarReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid json"})
	}
	if err := h.V.Struct(req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{
			"message": "validation error",
			"errors":  echo.Map{"model": "required", "plate_no": "required", "daily_price": "gte 0"},
		})
	}

	id, err := h.Svc.Create(c.Request().Context(), req.Model, req.PlateNo, req.DailyPrice)
	if err != nil {
		switch carsvc.Code(err) {
		case carsvc.ErrPlateTaken:
			return c.JSON(http.StatusConflict, echo.Map{"message": "plate number already registered"})
		case carsvc.ErrBadInput:
			return c.JSON(http.StatusBadRequest, echo.Map{"message": "bad input"})
		default:
			h.Log.Error("car create", "err", err)
			return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
		}
	}
	return c.JSON(http.StatusCreated, echo.Map{"car_id": id})
}

// GET /v1/cars/available
func (h *Controller) Available(c echo.Context) error {
	cars, err := h.Svc.Available(c.Request().Context())
	if err != nil {
		h.Log.Error("car available", "err", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
	}
	return c.JSON(http.StatusOK, echo.Map{"data": cars})
}

// GET /v1/cars  (employee)
func (h *Controller) All(c echo.Context) error {
	cars, err := h.Svc.All(c.Request().Context())
	if err != nil {
		h.Log.Error("car list", "err", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
	}
	return c.JSON(http.StatusOK, echo.Map{"data": cars})
}
