package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	"github.com/mubarek-tria/CIEt/internal/application/activity"
	"github.com/mubarek-tria/CIEt/internal/application/caregiver"
	"github.com/mubarek-tria/CIEt/internal/application/dashboard"
	"github.com/mubarek-tria/CIEt/internal/application/fund"
	"github.com/mubarek-tria/CIEt/internal/application/project"
	"github.com/mubarek-tria/CIEt/internal/config"
	httprouter "github.com/mubarek-tria/CIEt/internal/infrastructure/http"
	"github.com/mubarek-tria/CIEt/internal/infrastructure/http/handlers"
	"github.com/mubarek-tria/CIEt/internal/infrastructure/http/middleware"
	"github.com/mubarek-tria/CIEt/internal/infrastructure/ident"
	"github.com/mubarek-tria/CIEt/internal/infrastructure/persistence/memory"
)

func main() {
	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	_ = godotenv.Load()
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("load config")
	}

	projectStore := memory.NewProjectStore()
	caregiverStore := memory.NewCaregiverStore()
	fundStore := memory.NewFundStore()
	activityStore := memory.NewActivityStore()
	idGen := ident.NewGenerator()

	createProjectUC := project.NewCreateProject(projectStore, idGen, cfg.Portal.BaseURL)
	listProjectsUC := project.NewListProjects(projectStore)
	setProjectStatusUC := project.NewSetProjectStatus(projectStore)
	enrollCaregiverUC := caregiver.NewEnrollCaregiver(projectStore, caregiverStore, idGen)
	listCaregiversUC := caregiver.NewListCaregivers(caregiverStore)
	allocateFundUC := fund.NewAllocateFund(projectStore, caregiverStore, fundStore, idGen, cfg.Funding.DefaultCurrency)
	listFundsUC := fund.NewListFunds(fundStore)
	reportActivityUC := activity.NewReportActivity(projectStore, caregiverStore, activityStore, idGen)
	listActivitiesUC := activity.NewListActivities(activityStore)
	summarizeUC := dashboard.NewSummarize(projectStore, caregiverStore)

	ipLimit, err := middleware.NewIPRateLimiter(cfg.RateLimit.RatePerIP)
	if err != nil {
		log.Fatal().Err(err).Msg("create IP rate limiter")
	}

	router := httprouter.NewRouter(httprouter.RouterConfig{
		HealthHandler:    handlers.NewHealthHandler(),
		ProjectHandler:   handlers.NewProjectHandler(createProjectUC, listProjectsUC, setProjectStatusUC, log),
		CaregiverHandler: handlers.NewCaregiverHandler(enrollCaregiverUC, listCaregiversUC, log),
		FundHandler:      handlers.NewFundHandler(allocateFundUC, listFundsUC, log),
		ActivityHandler:  handlers.NewActivityHandler(reportActivityUC, listActivitiesUC, log),
		DashboardHandler: handlers.NewDashboardHandler(summarizeUC, log),
		Log:              log,
		Secure:           middleware.NewSecure(cfg.Secure.IsDevelopment),
		CORS:             middleware.CORS(cfg.CORS.AllowedOrigins),
		IPRateLimit:      ipLimit,
		Metrics:          true,
	})

	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	go func() {
		log.Info().Str("port", cfg.Server.Port).Msg("server starting")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server shutdown")
	}
	log.Info().Msg("server stopped")
}
