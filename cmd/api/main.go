package main

import (
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	httpadp "goldvault-backend/internal/adapter/http"
	mw "goldvault-backend/internal/adapter/middleware"
	"goldvault-backend/internal/adapter/repository/mysql"
	"goldvault-backend/internal/config"
	"goldvault-backend/internal/infrastructure/cache"
	"goldvault-backend/internal/infrastructure/db"
	collateralUC "goldvault-backend/internal/usecase/collateral"
	loanUC "goldvault-backend/internal/usecase/loan"
	paymentUC "goldvault-backend/internal/usecase/payment"
)

func main() {
	_ = godotenv.Load()

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatal(err)
	}

	gdb, err := db.OpenGorm(cfg.MySQLDSN())
	if err != nil {
		log.Fatalf("mysql: %v", err)
	}
	rdb, err := cache.OpenRedis(cfg.RedisAddr, cfg.RedisDB)
	if err != nil {
		log.Fatalf("redis: %v", err)
	}

	loans := mysql.NewLoanRepository(gdb)
	items := mysql.NewCollateralRepository(gdb)
	payments := mysql.NewPaymentRepository(gdb)
	uow := mysql.NewGormUoW(gdb)

	lh := httpadp.NewLoanHandler(loanUC.NewUsecase(loans, payments, uow))
	gh := httpadp.NewGoldItemHandler(collateralUC.NewUsecase(items, loans, uow))
	ph := httpadp.NewPaymentHandler(paymentUC.NewUsecase(loans, payments, uow))

	e := echo.New()
	e.HideBanner = true
	e.Validator = httpadp.NewValidator()
	e.Use(middleware.Logger(), middleware.Recover())
	e.Use(mw.IdempotencyMiddleware(rdb, time.Duration(cfg.IdempTTLSecs)*time.Second))

	httpadp.Register(e, httpadp.NewHandler(), lh, gh, ph)

	addr := ":" + cfg.AppPort
	log.Printf("listening on %s", addr)
	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
