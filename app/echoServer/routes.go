package echoServer

import (
	"net/http"

	authctrl "carrental/app/echoServer/controller/auth"
	carctrl "carrental/app/echoServer/controller/car"
	paymentctrl "carrental/app/echoServer/controller/payment"
	resvctrl "carrental/app/echoServer/controller/reservation"
	"carrental/model"

	"github.com/golang-jwt/jwt/v5"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
)

type C struct {
	Auth        *authctrl.Controller
	Car         *carctrl.Controller
	Reservation *resvctrl.Controller
	Payment     *paymentctrl.Controller
	JWTSecret   string
}

func Register(e *echo.Echo, c C) {
	// Public
	pub := e.Group("/v1")
	pub.POST("/users/register", c.Auth.Register)
	pub.POST("/users/login", c.Auth.Login)

	// Auth
	auth := e.Group("/v1")
	auth.Use(echojwt.WithConfig(echojwt.Config{
		SigningKey:  []byte(c.JWTSecret),
		TokenLookup: "header:Authorization:Bearer ",
	}))
	auth.Use(extractClaims)

	// Cars
	auth.GET("/cars/available", c.Car.Available)
	// Employee endpoints
	auth.GET("/cars", c.Car.All, requireEmployee)
	auth.POST("/cars", c.Car.Create, requireEmployee)

	// Reservations
	auth.POST("/reservations", c.Reservation.Create, requireCustomer)
	auth.GET("/reservations/my", c.Reservation.MyReservations, requireCustomer)
	auth.GET("/reservations", c.Reservation.AllReservations, requireEmployee)
	auth.PATCH("/reservations/:id/status", c.Reservation.UpdateStatus, requireEmployee)

	// Payments
	auth.GET("/payments/pending", c.Payment.Pending, requireEmployee)
	auth.POST("/payments/:id/settle", c.Payment.Settle, requireEmployee)
	auth.GET("/payments/my", c.Payment.MyPayments, requireCustomer)
}

// extractClaims pulls sub/role/pid out of the verified token so
// handlers read plain context keys.
func extractClaims(next echo.HandlerFunc) echo.HandlerFunc {
	return func(ctx echo.Context) error {
		tokenObj := ctx.Get("user")
		if tokenObj == nil {
			return ctx.JSON(http.StatusUnauthorized, echo.Map{"message": "unauthorized"})
		}
		tok, ok := tokenObj.(*jwt.Token)
		if !ok {
			return ctx.JSON(http.StatusUnauthorized, echo.Map{"message": "unauthorized"})
		}
		claims, ok := tok.Claims.(jwt.MapClaims)
		if !ok {
			return ctx.JSON(http.StatusUnauthorized, echo.Map{"message": "unauthorized"})
		}

		sub, ok := claims["sub"].(float64)
		if !ok {
			return ctx.JSON(http.StatusUnauthorized, echo.Map{"message": "unauthorized"})
		}
		role, _ := claims["role"].(string)
		pid, _ := claims["pid"].(float64)

		ctx.Set("user_id", int64(sub))
		ctx.Set("role", role)
		ctx.Set("profile_id", int64(pid))
		return next(ctx)
	}
}

func requireRole(role string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			if r, _ := ctx.Get("role").(string); r != role {
				return ctx.JSON(http.StatusForbidden, echo.Map{"message": "forbidden"})
			}
			return next(ctx)
		}
	}
}

var (
	requireCustomer = requireRole(model.RoleCustomer)
	requireEmployee = requireRole(model.RoleEmployee)
)
