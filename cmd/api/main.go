package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/joho/godotenv"

	"github.com/gestor-maestro/gestor/internal/account"
	accountStore "github.com/gestor-maestro/gestor/internal/account/store"
	"github.com/gestor-maestro/gestor/internal/advisor"
	"github.com/gestor-maestro/gestor/internal/auth"
	"github.com/gestor-maestro/gestor/internal/config"
	"github.com/gestor-maestro/gestor/internal/database"
	"github.com/gestor-maestro/gestor/internal/fixedcost"
	fixedcostStore "github.com/gestor-maestro/gestor/internal/fixedcost/store"
	gestorHttp "github.com/gestor-maestro/gestor/internal/http"
	advisorHandler "github.com/gestor-maestro/gestor/internal/http/advisor"
	authHandler "github.com/gestor-maestro/gestor/internal/http/auth"
	fixedcostHandler "github.com/gestor-maestro/gestor/internal/http/fixedcost"
	obligationHandler "github.com/gestor-maestro/gestor/internal/http/obligation"
	pricingHandler "github.com/gestor-maestro/gestor/internal/http/pricing"
	"github.com/gestor-maestro/gestor/internal/ledger"
	ledgerStore "github.com/gestor-maestro/gestor/internal/ledger/store"
	"github.com/gestor-maestro/gestor/internal/notify"
	"github.com/gestor-maestro/gestor/internal/obligation"
	obligationStore "github.com/gestor-maestro/gestor/internal/obligation/store"
	"github.com/gestor-maestro/gestor/internal/pricing"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	if err := database.Migrate(cfg.ConnectionString(), "migrations"); err != nil {
		slog.Error("failed to run migrations", "error", err)
		os.Exit(1)
	}

	db, err := database.New(cfg.ConnectionString())
	if err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	obStore := obligationStore.New(db)
	fcStore := fixedcostStore.New(db)

	var (
		accountService    = account.NewService(accountStore.New(db))
		authService       = auth.NewService(cfg.Auth.Secret, cfg.Auth.TokenTTL)
		obligationService = obligation.NewService(obStore)
		ledgerService     = ledger.NewService(ledgerStore.New(db))
		fixedCostService  = fixedcost.NewService(fcStore)
	)

	var pricingAdvisor pricing.Advisor

	var advisorService *advisor.Service

	if cfg.AdvisorEnabled() {
		advisorService, err = advisor.NewService(ctx, cfg.Gemini.APIKey, cfg.Gemini.Model)
		if err != nil {
			slog.Error("failed to create advisor", "error", err)
			os.Exit(1)
		}
		defer advisorService.Close()

		pricingAdvisor = advisorService
	} else {
		slog.Warn("GEMINI_API_KEY not set, AI suggestions disabled")
	}

	pricingService := pricing.NewService(pricingAdvisor)

	var notifier obligationHandler.Notifier

	if cfg.MailEnabled() {
		notifier = notify.NewMailer(cfg.SMTP.Host, cfg.SMTP.Port, cfg.SMTP.Username, cfg.SMTP.Password, cfg.SMTP.From)
	} else {
		slog.Warn("SMTP not configured, settlement mail disabled")
	}

	fixedcost.NewScheduler(fcStore, obStore, cfg.Scheduler.Interval).Start(ctx)

	var (
		authH       = authHandler.NewHandler(accountService, authService)
		obligationH = obligationHandler.NewHandler(obligationService, ledgerService, accountService, notifier)
		fixedCostH  = fixedcostHandler.NewHandler(fixedCostService)
		pricingH    = pricingHandler.NewHandler(pricingService)
	)

	var advisorH *advisorHandler.Handler
	if advisorService != nil {
		advisorH = advisorHandler.NewHandler(advisorService)
	}

	router := gestorHttp.New(authService, cfg.Server.CORSOrigins, authH, obligationH, fixedCostH, pricingH, advisorH)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	slog.Info("starting server", "port", port)

	if err := http.ListenAndServe(port, router); err != nil {
		slog.Error("server failed", "error", err)
		os.Exit(1)
	}
}
