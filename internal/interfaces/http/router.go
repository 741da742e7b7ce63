package http

import (
	"context"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/painel-ajuda/internal/application/auth"
	"github.com/jhoicas/painel-ajuda/internal/application/notify"
	"github.com/jhoicas/painel-ajuda/internal/application/usecase"
	"github.com/jhoicas/painel-ajuda/internal/application/viewstate"
	"github.com/jhoicas/painel-ajuda/pkg/jwt"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	Store         *viewstate.Store
	Notifications *notify.Center
	AuthUC        *auth.AuthUseCase
	InstitutionUC *usecase.InstitutionUseCase
	BeneficiaryUC *usecase.BeneficiaryUseCase
	StockUC       *usecase.StockUseCase
	ReportUC      *usecase.ReportUseCase
	DashboardUC   *usecase.DashboardUseCase
	EquityUC      *usecase.EquityUseCase
	JWTSecret     string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authHandler := NewAuthHandler(deps.AuthUC)
	api.Post("/auth/login", authHandler.Login)

	// Registo de instituciones (público)
	instHandler := NewInstitutionHandler(deps.InstitutionUC)
	registro := api.Group("/registro")
	registro.Post("/", instHandler.Register)
	registro.Post("/disponibilidade", instHandler.Availability)
	registro.Get("/tipos", instHandler.Types)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret, deps.AuthUC))
	anyRole := RequireRole(jwt.RoleAdmin, jwt.RoleInstituicao)

	protected.Post("/auth/logout", authHandler.Logout)
	protected.Get("/auth/me", authHandler.Me)

	// Panel de instituciones (solo admin)
	inst := protected.Group("/instituicoes", RequireRole(jwt.RoleAdmin))
	inst.Get("/", EnsureLoaded(viewstate.KindInstitutions, deps.Store, discard(deps.InstitutionUC.Refresh)), instHandler.Panel)
	inst.Post("/refresh", instHandler.Refresh)
	inst.Put("/tab", instHandler.SetTab)
	inst.Post("/:id/aprovar", instHandler.Approve)
	inst.Post("/:id/rejeitar", instHandler.Reject)
	inst.Delete("/:id", instHandler.Delete)

	// Beneficiarios
	benefHandler := NewBeneficiaryHandler(deps.BeneficiaryUC)
	benef := protected.Group("/beneficiarios", anyRole)
	benef.Get("/", EnsureLoaded(viewstate.KindBeneficiaries, deps.Store, discard(deps.BeneficiaryUC.Refresh)), benefHandler.List)
	benef.Post("/", benefHandler.Create)
	benef.Post("/refresh", benefHandler.Refresh)
	benef.Get("/:nif", benefHandler.Get)
	benef.Get("/:nif/historico", benefHandler.History)

	// Stock
	stockHandler := NewStockHandler(deps.StockUC)
	stock := protected.Group("/stock", anyRole)
	itemsLoaded := EnsureLoaded(viewstate.KindItems, deps.Store, discard(deps.StockUC.RefreshItems))
	stock.Get("/itens", itemsLoaded, stockHandler.Items)
	stock.Post("/itens/refresh", stockHandler.RefreshItems)
	stock.Get("/movimentos", EnsureLoaded(viewstate.KindMovements, deps.Store, discard(deps.StockUC.RefreshMovements)), stockHandler.Movements)
	stock.Post("/movimentos/refresh", stockHandler.RefreshMovements)
	stock.Post("/entrada", stockHandler.Entrada)
	stock.Post("/saida", stockHandler.Saida)
	stock.Get("/formulario-saida", stockHandler.DistributionForm)
	stock.Get("/resumo.pdf", itemsLoaded, stockHandler.SummaryPDF)

	// Relatórios
	reportHandler := NewReportHandler(deps.ReportUC)
	rel := protected.Group("/relatorios", anyRole)
	reportsLoaded := EnsureLoaded(viewstate.KindReports, deps.Store, discard(deps.ReportUC.Refresh))
	rel.Get("/", reportsLoaded, reportHandler.List)
	rel.Post("/refresh", reportHandler.Refresh)
	rel.Post("/gerar", reportHandler.Generate)
	rel.Get("/periodos", EnsureLoaded(viewstate.KindPeriods, deps.Store, discard(deps.ReportUC.RefreshPeriods)), reportHandler.Periods)
	rel.Post("/periodos/refresh", reportHandler.RefreshPeriods)
	rel.Get("/:ano/:mes", reportHandler.ByMonth)
	rel.Get("/:ano/:mes/pdf", reportsLoaded, reportHandler.PDF)

	// Dashboard
	dashHandler := NewDashboardHandler(deps.DashboardUC)
	dash := protected.Group("/dashboard", anyRole)
	dash.Get("/", EnsureLoaded(viewstate.KindDashboard, deps.Store, discard(deps.DashboardUC.Refresh)), dashHandler.View)
	dash.Post("/refresh", dashHandler.Refresh)

	// Alertas de equidad
	equityHandler := NewEquityHandler(deps.EquityUC)
	alertas := protected.Group("/alertas", anyRole)
	alertas.Get("/", EnsureLoaded(viewstate.KindEquity, deps.Store, discard(deps.EquityUC.Refresh)), equityHandler.View)
	alertas.Post("/refresh", equityHandler.Refresh)
	alertas.Get("/menos-ajuda", equityHandler.LeastHelped)

	// Notificaciones
	notifHandler := NewNotificationHandler(deps.Notifications)
	protected.Get("/notificacoes", notifHandler.List)
	protected.Delete("/notificacoes/:id", notifHandler.Dismiss)
}

// discard adapta un Refresh que devuelve vista a la firma de EnsureLoaded.
func discard[T any](refresh func(ctx context.Context) (T, error)) func(ctx context.Context) error {
	return func(ctx context.Context) error {
		_, err := refresh(ctx)
		return err
	}
}
