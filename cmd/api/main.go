package main

import (
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	httpadp "fondo-backend/internal/adapter/http"
	"fondo-backend/internal/adapter/middleware"
	"fondo-backend/internal/adapter/repository/mysql"
	"fondo-backend/internal/config"
	loanDomain "fondo-backend/internal/domain/loan"
	memberDomain "fondo-backend/internal/domain/member"
	notifDomain "fondo-backend/internal/domain/notification"
	paymentDomain "fondo-backend/internal/domain/payment"
	savingDomain "fondo-backend/internal/domain/saving"
	"fondo-backend/internal/infrastructure/cache"
	"fondo-backend/internal/infrastructure/db"
	loanUC "fondo-backend/internal/usecase/loan"
	memberUC "fondo-backend/internal/usecase/member"
	paymentUC "fondo-backend/internal/usecase/payment"
	reportUC "fondo-backend/internal/usecase/report"
	savingUC "fondo-backend/internal/usecase/saving"
)

func main() {
	// Local development convenience; absent .env is fine.
	_ = godotenv.Load()

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("config: %v", err)
	}

	gdb, err := db.OpenGorm(cfg.MySQLDSN())
	if err != nil {
		log.Fatalf("mysql: %v", err)
	}
	if err := gdb.AutoMigrate(
		&memberDomain.Member{},
		&loanDomain.Loan{},
		&paymentDomain.Payment{},
		&savingDomain.Saving{},
		&notifDomain.Notification{},
	); err != nil {
		log.Fatalf("migrate: %v", err)
	}

	rdb, err := cache.OpenRedis(cfg.RedisAddr, cfg.RedisDB)
	if err != nil {
		log.Fatalf("redis: %v", err)
	}

	members := mysql.NewMemberRepository(gdb)
	loans := mysql.NewLoanRepository(gdb)
	savings := mysql.NewSavingRepository(gdb)
	notifications := mysql.NewNotificationRepository(gdb)
	guow := mysql.NewGormUoW(gdb)
	notifier := mysql.NewStoreNotifier(notifications)

	rates := loanUC.RateTable{AsociadoPct: cfg.AsociadoRatePct, ClientePct: cfg.ClienteRatePct}

	memberH := httpadp.NewMemberHandler(memberUC.NewUsecase(members))
	loanH := httpadp.NewLoanHandler(loanUC.NewUsecase(members, loans, guow, notifier, rates))
	paymentH := httpadp.NewPaymentHandler(paymentUC.NewUsecase(guow, notifier))
	savingH := httpadp.NewSavingHandler(savingUC.NewUsecase(members, savings, notifier, cfg.SavingsAccrualRate))
	reportH := httpadp.NewReportHandler(reportUC.NewUsecase(savings, loans, cfg.SavingsAccrualRate), notifications)
	h := httpadp.NewHandler()

	e := echo.New()
	e.HideBanner = true
	e.Validator = httpadp.NewValidator()
	e.Use(echomw.Logger(), echomw.Recover())

	idemp := middleware.Idempotency(rdb, time.Duration(cfg.IdempTTLSecs)*time.Second)

	e.GET("/health", h.Health)

	e.POST("/members", memberH.Register)
	e.GET("/members/:member_id", memberH.Get)

	e.POST("/loans", loanH.Request, idemp)
	e.POST("/loans/quote", loanH.Quote)
	e.GET("/loans/:loan_id", loanH.Get)
	e.GET("/loans/:loan_id/schedule", loanH.Schedule)
	e.POST("/loans/:loan_id/approve", loanH.Approve, idemp)
	e.POST("/loans/:loan_id/reject", loanH.Reject, idemp)

	e.POST("/loans/:loan_id/payments", paymentH.Register, idemp)
	e.GET("/loans/:loan_id/payments", paymentH.History)

	e.POST("/savings", savingH.Create, idemp)
	e.GET("/members/:member_id/savings", savingH.ListByOwner)
	e.GET("/members/:member_id/savings/summary", savingH.Summary)
	e.GET("/members/:member_id/loans", loanH.ListByOwner)
	e.GET("/members/:member_id/dashboard", reportH.Dashboard)
	e.GET("/members/:member_id/report", reportH.Report)
	e.GET("/members/:member_id/notifications", reportH.Notifications)

	addr := ":" + cfg.AppPort
	log.Printf("listening on %s", addr)
	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
