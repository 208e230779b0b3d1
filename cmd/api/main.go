package main

import (
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	httpadp "github.com/Amit562877/fund-collector/internal/adapter/http"
	appmw "github.com/Amit562877/fund-collector/internal/adapter/middleware"
	"github.com/Amit562877/fund-collector/internal/adapter/repository/mysql"
	"github.com/Amit562877/fund-collector/internal/config"
	loanDomain "github.com/Amit562877/fund-collector/internal/domain/loan"
	"github.com/Amit562877/fund-collector/internal/infrastructure/cache"
	"github.com/Amit562877/fund-collector/internal/infrastructure/db"
	"github.com/Amit562877/fund-collector/internal/infrastructure/feed"
	"github.com/Amit562877/fund-collector/internal/infrastructure/otp"
	"github.com/Amit562877/fund-collector/internal/logging"
	dashboardUC "github.com/Amit562877/fund-collector/internal/usecase/dashboard"
	fundUC "github.com/Amit562877/fund-collector/internal/usecase/fund"
	identityUC "github.com/Amit562877/fund-collector/internal/usecase/identity"
	loanUC "github.com/Amit562877/fund-collector/internal/usecase/loan"
	userUC "github.com/Amit562877/fund-collector/internal/usecase/user"
)

func main() {
	cfg := config.Load()
	log := logging.New()
	if err := cfg.Validate(); err != nil {
		log.WithError(err).Fatal("invalid config")
	}

	gdb, err := db.OpenGorm(cfg.MySQLDSN())
	if err != nil {
		log.WithError(err).Fatal("mysql connect failed")
	}
	rdb, err := cache.OpenRedis(cfg.RedisAddr, cfg.RedisDB)
	if err != nil {
		log.WithError(err).Fatal("redis connect failed")
	}

	changeFeed := feed.NewRedisFeed(rdb, logging.WithModule(log, "feed"))

	userRepo := mysql.NewUserRepository(gdb)
	fundRepo := mysql.NewFundRepository(gdb)

	users := userUC.NewUsecase(userRepo, changeFeed, logging.WithModule(log, "users"))
	funds := fundUC.NewUsecase(fundRepo, changeFeed, logging.WithModule(log, "funds"))
	loans := loanUC.NewUsecase(loanDomain.NewLedger(), logging.WithModule(log, "loans"))
	dash := dashboardUC.NewUsecase()

	otpClient := otp.NewClient(cfg.OTPBaseURL, cfg.OTPAPIKey, logging.WithModule(log, "otp"))
	identity := identityUC.NewUsecase(otpClient,
		time.Duration(cfg.SessionTTLSecs)*time.Second, logging.WithModule(log, "identity"))

	h := httpadp.NewHandler()
	uh := httpadp.NewUserHandler(users)
	fh := httpadp.NewFundHandler(funds)
	lh := httpadp.NewLoanHandler(loans)
	dh := httpadp.NewDashboardHandler(dash)
	ih := httpadp.NewIdentityHandler(identity)
	sh := httpadp.NewStreamHandler(changeFeed, users, funds)

	e := echo.New()
	e.HideBanner = true
	e.Validator = httpadp.NewValidator()
	e.Use(middleware.Logger(), middleware.Recover())
	e.Use(appmw.Idempotency(rdb, time.Duration(cfg.IdempTTLSecs)*time.Second))

	// routes
	e.GET("/", h.Index)
	e.GET("/health", h.Health)

	e.POST("/users", uh.CreateUser)
	e.GET("/users", uh.ListUsers)
	e.GET("/users/stream", sh.StreamUsers)

	e.POST("/funds", fh.CreateFund)
	e.GET("/funds", fh.ListFunds)
	e.POST("/funds/:fund_id/approve", fh.ApproveFund)
	e.GET("/funds/stream", sh.StreamFunds)

	e.POST("/loans", lh.RequestLoan)
	e.GET("/loans", lh.ListLoans)
	e.GET("/loans/summary", lh.LoanSummary)

	e.GET("/dashboard", dh.GetDashboard)

	e.POST("/auth/otp/request", ih.RequestOTP)
	e.POST("/auth/otp/verify", ih.VerifyOTP)

	addr := ":" + cfg.AppPort
	log.WithField("addr", addr).Info("listening")
	if err := e.Start(addr); err != nil {
		log.WithError(err).Fatal("server stopped")
	}
}
