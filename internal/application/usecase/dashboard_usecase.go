package usecase

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/jhoicas/painel-ajuda/internal/application/dto"
	"github.com/jhoicas/painel-ajuda/internal/application/notify"
	"github.com/jhoicas/painel-ajuda/internal/application/viewstate"
	"github.com/jhoicas/painel-ajuda/internal/domain/entity"
	"github.com/jhoicas/painel-ajuda/internal/domain/repository"
	"github.com/jhoicas/painel-ajuda/pkg/logger"
)

// RecentActivityLimit movimientos recientes mostrados en el painel inicial.
const RecentActivityLimit = 10

// DashboardUseCase painel inicial: estadísticas, actividad reciente y avisos de stock.
type DashboardUseCase struct {
	repo  repository.DashboardRepository
	store *viewstate.Store
	fb    feedback
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(repo repository.DashboardRepository, store *viewstate.Store, n notify.Notifier, log *logger.Logger) *DashboardUseCase {
	return &DashboardUseCase{
		repo:  repo,
		store: store,
		fb:    feedback{inflight: store.InFlight, notify: n, log: log.Component("dashboard")},
	}
}

// Refresh pide en paralelo las tres partes del painel. La caché solo se
// sustituye si las tres responden.
func (uc *DashboardUseCase) Refresh(ctx context.Context) (*dto.DashboardView, error) {
	var (
		stats  *entity.DashboardStats
		activs []entity.Activity
		alerts []entity.SystemAlert
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		stats, err = uc.repo.Stats(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		activs, err = uc.repo.RecentActivity(gctx, RecentActivityLimit)
		return err
	})
	g.Go(func() error {
		var err error
		alerts, err = uc.repo.Alerts(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		uc.fb.fail(err, "carregar_dashboard", "Erro ao carregar estatísticas")
		return nil, err
	}

	uc.store.Dashboard.Load(entity.Dashboard{Stats: *stats, Atividades: activs, Alertas: alerts})
	uc.store.MarkLoaded(viewstate.KindDashboard)
	view := uc.View()
	return &view, nil
}

// View painel desde la caché. Antes de la primera carga devuelve listas vacías.
func (uc *DashboardUseCase) View() dto.DashboardView {
	d, _ := uc.store.Dashboard.Get()
	if d.Atividades == nil {
		d.Atividades = []entity.Activity{}
	}
	if d.Alertas == nil {
		d.Alertas = []entity.SystemAlert{}
	}
	view := dto.DashboardView{Dashboard: d}
	if t, ok := uc.store.LoadedAt(viewstate.KindDashboard); ok {
		view.LoadedAt = &t
	}
	return view
}
