package usecase

import (
	"context"
	"fmt"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/jhoicas/painel-ajuda/internal/application/dto"
	"github.com/jhoicas/painel-ajuda/internal/application/notify"
	"github.com/jhoicas/painel-ajuda/internal/application/viewstate"
	"github.com/jhoicas/painel-ajuda/internal/domain"
	"github.com/jhoicas/painel-ajuda/internal/domain/entity"
	"github.com/jhoicas/painel-ajuda/internal/domain/repository"
	"github.com/jhoicas/painel-ajuda/pkg/logger"
)

// Límites de la consulta de beneficiarios con menos ayuda.
const (
	DefaultLeastHelpedLimit = 10
	MaxLeastHelpedLimit     = 100
)

// EquityUseCase panel de alertas de distribución equitativa.
type EquityUseCase struct {
	repo  repository.EquityRepository
	store *viewstate.Store
	fb    feedback
}

// NewEquityUseCase construye el caso de uso.
func NewEquityUseCase(repo repository.EquityRepository, store *viewstate.Store, n notify.Notifier, log *logger.Logger) *EquityUseCase {
	return &EquityUseCase{
		repo:  repo,
		store: store,
		fb:    feedback{inflight: store.InFlight, notify: n, log: log.Component("alertas")},
	}
}

// Refresh carga en paralelo beneficiarios con menos ayuda, informe de
// distribución y límites. Todo o nada: un fallo conserva el panel anterior.
func (uc *EquityUseCase) Refresh(ctx context.Context) (*dto.EquityView, error) {
	var (
		least  []entity.LeastHelped
		report *entity.DistributionReport
		limits map[string]entity.CategoryLimit
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		least, err = uc.repo.LeastHelped(gctx, "", DefaultLeastHelpedLimit)
		return err
	})
	g.Go(func() error {
		var err error
		report, err = uc.repo.DistributionReport(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		limits, err = uc.repo.Limits(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		uc.fb.fail(err, "carregar_alertas", "Erro ao carregar alertas de distribuição")
		return nil, err
	}

	uc.store.Equity.Load(entity.EquityPanel{MenosAjuda: least, Distribuicao: *report, Limites: limits})
	uc.store.MarkLoaded(viewstate.KindEquity)
	view := uc.View()
	return &view, nil
}

// View panel desde la caché.
func (uc *EquityUseCase) View() dto.EquityView {
	p, _ := uc.store.Equity.Get()
	if p.MenosAjuda == nil {
		p.MenosAjuda = []entity.LeastHelped{}
	}
	if p.Limites == nil {
		p.Limites = map[string]entity.CategoryLimit{}
	}
	view := dto.EquityView{EquityPanel: p}
	if t, ok := uc.store.LoadedAt(viewstate.KindEquity); ok {
		view.LoadedAt = &t
	}
	return view
}

// LeastHelped consulta al momento, sin caché, los beneficiarios con menos
// ayuda de una categoría. limite 0 usa DefaultLeastHelpedLimit.
func (uc *EquityUseCase) LeastHelped(ctx context.Context, categoria string, limite int) (*dto.LeastHelpedView, error) {
	categoria = strings.TrimSpace(categoria)
	switch {
	case limite == 0:
		limite = DefaultLeastHelpedLimit
	case limite < 0 || limite > MaxLeastHelpedLimit:
		return nil, fmt.Errorf("%w: limite deve estar entre 1 e %d", domain.ErrInvalidInput, MaxLeastHelpedLimit)
	}
	list, err := uc.repo.LeastHelped(ctx, categoria, limite)
	if err != nil {
		uc.fb.fail(err, "menos_ajuda", "Erro ao carregar beneficiários")
		return nil, err
	}
	if list == nil {
		list = []entity.LeastHelped{}
	}
	return &dto.LeastHelpedView{Categoria: categoria, Total: len(list), Beneficiarios: list}, nil
}
