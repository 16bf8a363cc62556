// Package main car rental API.
//
// @title           Car Rental API
// @version         1.0
// @description     car rental service (fleet, reservations, payments).
// @BasePath        /
// @schemes         http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description  Use:  Bearer <JWT>
package main

import (
	"context"
	"log/slog"
	"os"
	"time"

	"carrental/app/echoServer"
	authctrl "carrental/app/echoServer/controller/auth"
	carctrl "carrental/app/echoServer/controller/car"
	paymentctrl "carrental/app/echoServer/controller/payment"
	resvctrl "carrental/app/echoServer/controller/reservation"
	"carrental/app/echoServer/validation"
	"carrental/config"
	"carrental/queue"
	carrepo "carrental/repository/car"
	paymentrepo "carrental/repository/payment"
	resvrepo "carrental/repository/reservation"
	userrepo "carrental/repository/user"
	authsvc "carrental/service/auth"
	carsvc "carrental/service/car"
	paymentsvc "carrental/service/payment"
	resvsvc "carrental/service/reservation"
	"carrental/util/cache"
	"carrental/util/database"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	echoSwagger "github.com/swaggo/echo-swagger"
)

func main() {

	cfg := config.Load()
	ctx := context.Background()

	// logger
	log := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	// DB: *sql.DB
	db, err := database.New(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Error("db connect failed", "err", err)
		os.Exit(1)
	}
	defer db.Close()

	// cache (optional; nil client disables it)
	rdb := config.NewRedisClient(cfg.RedisAddr)
	if rdb == nil {
		log.Warn("redis unavailable, running without cache")
	}
	availCache := cache.New(rdb, 30*time.Second)

	// event publisher (optional)
	var pub queue.Publisher
	if cfg.AmqpURL != "" {
		pub = queue.NewAMQPPublisher(cfg.AmqpURL, log)
	}

	// repos
	ur := userrepo.New(db)
	cr := carrepo.New(db)
	rr := resvrepo.New(db)
	pr := paymentrepo.New(db)

	// services
	as := authsvc.New(ur, cfg.JWTSecret)
	cs := carsvc.New(cr, availCache)
	rs := resvsvc.New(rr, availCache, pub)
	ps := paymentsvc.New(pr, availCache, pub)

	// controllers
	v := validator.New()
	authC := &authctrl.Controller{Svc: as, V: v, Log: log}
	carC := &carctrl.Controller{Svc: cs, V: v, Log: log}
	resvC := &resvctrl.Controller{Svc: rs, V: v, Log: log}
	paymentC := &paymentctrl.Controller{Svc: ps, V: v, Log: log}

	// overdue sweep: Pending payments past due become Overdue
	sweeper := paymentsvc.NewSweeper(pr)
	go func() {
		t := time.NewTicker(time.Hour)
		defer t.Stop()
		for range t.C {
			n, err := sweeper.MarkOverdue(ctx)
			if err != nil {
				log.Error("overdue sweep failed", "err", err)
				continue
			}
			if n > 0 {
				log.Info("overdue sweep", "marked", n)
			}
		}
	}()

	// echo
	e := echo.New()
	echoServer.RegisterMiddlewares(e)
	e.Validator = validation.New()

	e.GET("/health", func(c echo.Context) error {
		return c.JSON(200, map[string]any{
			"status":  "ok",
			"message": "Service is healthy and connected",
		})
	})

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	echoServer.Register(e, echoServer.C{
		Auth:        authC,
		Car:         carC,
		Reservation: resvC,
		Payment:     paymentC,

		JWTSecret: cfg.JWTSecret,
	})

	port := os.Getenv("PORT")
	if port == "" {
		port = cfg.Port
	}

	log.Info("starting server", "port", port, "env", cfg.Env)

	e.Logger.Fatal(e.Start(":" + port))
}
