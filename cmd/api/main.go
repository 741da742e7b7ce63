package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/jhoicas/painel-ajuda/internal/application/auth"
	"github.com/jhoicas/painel-ajuda/internal/application/dto"
	"github.com/jhoicas/painel-ajuda/internal/application/notify"
	"github.com/jhoicas/painel-ajuda/internal/application/usecase"
	"github.com/jhoicas/painel-ajuda/internal/application/viewstate"
	"github.com/jhoicas/painel-ajuda/internal/infrastructure/api"
	infrapdf "github.com/jhoicas/painel-ajuda/internal/infrastructure/pdf"
	httpRouter "github.com/jhoicas/painel-ajuda/internal/interfaces/http"
	"github.com/jhoicas/painel-ajuda/internal/scheduler"
	"github.com/jhoicas/painel-ajuda/pkg/config"
	"github.com/jhoicas/painel-ajuda/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("upstream", cfg.Upstream.BaseURL).
		Msg("iniciando aplicación")

	// API remota: un único cliente (y una única cookie de sesión) por proceso.
	client := api.NewClient(cfg.Upstream, log)
	institutionRepo := api.NewInstitutionRepository(client)
	sessionRepo := api.NewSessionRepository(client)
	beneficiaryRepo := api.NewBeneficiaryRepository(client)
	stockRepo := api.NewStockRepository(client)
	reportRepo := api.NewReportRepository(client)
	dashboardRepo := api.NewDashboardRepository(client)
	equityRepo := api.NewEquityRepository(client)

	store := viewstate.NewStore(time.Now)
	center := notify.NewCenter(cfg.Notify.TTL, time.Now)
	renderer := infrapdf.NewMarotoRenderer(cfg.App.Name)

	institutionUC := usecase.NewInstitutionUseCase(institutionRepo, store, center, log)
	beneficiaryUC := usecase.NewBeneficiaryUseCase(beneficiaryRepo, store, center, log)
	stockUC := usecase.NewStockUseCase(stockRepo, beneficiaryRepo, renderer, store, center, log)
	reportUC := usecase.NewReportUseCase(reportRepo, renderer, store, center, log)
	dashboardUC := usecase.NewDashboardUseCase(dashboardRepo, store, center, log)
	equityUC := usecase.NewEquityUseCase(equityRepo, store, center, log)
	// Un login sustituye la sesión remota: vacía cachés y notificaciones.
	authUC := auth.NewAuthUseCase(sessionRepo, store, center, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	}, log)

	// Sesión de arranque opcional: permite al scheduler recargar sin un login manual.
	if cfg.Upstream.Username != "" {
		bootCtx, cancel := context.WithTimeout(context.Background(), cfg.Upstream.Timeout)
		_, err := authUC.Login(bootCtx, dto.LoginRequest{Username: cfg.Upstream.Username, Password: cfg.Upstream.Password})
		cancel()
		if err != nil {
			log.Warn().Err(err).Msg("login de arranque fallido; se espera login manual")
		}
	}

	sched := scheduler.New(cfg.Refresh.Cron, store, center, []scheduler.Job{
		job(viewstate.KindInstitutions, institutionUC.Refresh),
		job(viewstate.KindBeneficiaries, beneficiaryUC.Refresh),
		job(viewstate.KindItems, stockUC.RefreshItems),
		job(viewstate.KindMovements, stockUC.RefreshMovements),
		job(viewstate.KindReports, reportUC.Refresh),
		job(viewstate.KindPeriods, reportUC.RefreshPeriods),
		job(viewstate.KindDashboard, dashboardUC.Refresh),
		job(viewstate.KindEquity, equityUC.Refresh),
	}, cfg.Upstream.Timeout, log)
	if err := sched.Start(); err != nil {
		log.Fatal().Err(err).Msg("scheduler")
	}

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: cfg.Upstream.Timeout + 5*time.Second,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	if cfg.App.SwaggerFile != "" {
		if _, err := os.Stat(cfg.App.SwaggerFile); err == nil {
			app.Use(swagger.New(swagger.Config{
				BasePath: "/",
				FilePath: cfg.App.SwaggerFile,
				Path:     "docs",
				Title:    "Painel Ajuda API",
			}))
		} else {
			log.Warn().Str("file", cfg.App.SwaggerFile).Msg("swagger.json no encontrado; /docs desactivado")
		}
	}

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		Store:         store,
		Notifications: center,
		AuthUC:        authUC,
		InstitutionUC: institutionUC,
		BeneficiaryUC: beneficiaryUC,
		StockUC:       stockUC,
		ReportUC:      reportUC,
		DashboardUC:   dashboardUC,
		EquityUC:      equityUC,
		JWTSecret:     cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}
	sched.Stop()

	log.Info().Msg("aplicación detenida")
}

// job adapta un Refresh de caso de uso a una tarea del scheduler.
func job[T any](kind viewstate.Kind, refresh func(ctx context.Context) (T, error)) scheduler.Job {
	return scheduler.Job{Kind: kind, Refresh: func(ctx context.Context) error {
		_, err := refresh(ctx)
		return err
	}}
}
