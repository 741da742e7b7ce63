package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"

	"github.com/jhoicas/painel-ajuda/internal/application/dto"
	"github.com/jhoicas/painel-ajuda/internal/application/notify"
	"github.com/jhoicas/painel-ajuda/internal/application/ports"
	"github.com/jhoicas/painel-ajuda/internal/application/viewstate"
	"github.com/jhoicas/painel-ajuda/internal/domain"
	"github.com/jhoicas/painel-ajuda/internal/domain/entity"
	"github.com/jhoicas/painel-ajuda/internal/domain/repository"
	"github.com/jhoicas/painel-ajuda/pkg/logger"
)

// StockUseCase catálogo de artículos, registro de movimientos y distribución.
type StockUseCase struct {
	repo      repository.StockRepository
	benefRepo repository.BeneficiaryRepository
	renderer  ports.DocumentRenderer
	store     *viewstate.Store
	fb        feedback
	now       func() time.Time
}

// NewStockUseCase construye el caso de uso. renderer puede ser nil si no se
// exponen documentos.
func NewStockUseCase(
	repo repository.StockRepository,
	benefRepo repository.BeneficiaryRepository,
	renderer ports.DocumentRenderer,
	store *viewstate.Store,
	n notify.Notifier,
	log *logger.Logger,
) *StockUseCase {
	return &StockUseCase{
		repo:      repo,
		benefRepo: benefRepo,
		renderer:  renderer,
		store:     store,
		fb:        feedback{inflight: store.InFlight, notify: n, log: log.Component("stock")},
		now:       time.Now,
	}
}

// RefreshItems recarga el catálogo de artículos.
func (uc *StockUseCase) RefreshItems(ctx context.Context) (*dto.StockView, error) {
	list, err := uc.repo.ListItems(ctx)
	if err != nil {
		uc.fb.fail(err, "listar_itens", "Erro ao carregar itens")
		return nil, err
	}
	uc.store.Items.Load(list)
	uc.store.MarkLoaded(viewstate.KindItems)
	view := uc.Items()
	return &view, nil
}

// RefreshMovements recarga el registro de movimientos.
func (uc *StockUseCase) RefreshMovements(ctx context.Context) (*dto.MovementListView, error) {
	gen := uc.store.Movements.Generation()
	list, err := uc.repo.ListMovements(ctx)
	if err != nil {
		uc.fb.fail(err, "listar_movimentos", "Erro ao carregar movimentos")
		return nil, err
	}
	if uc.store.Movements.LoadIf(list, gen) {
		uc.store.MarkLoaded(viewstate.KindMovements)
	}
	view, _ := uc.Movements("")
	return &view, nil
}

// Items proyección del catálogo en caché.
func (uc *StockUseCase) Items() dto.StockView {
	items := uc.store.Items.Snapshot()
	view := dto.StockView{Total: len(items), Itens: items, StockTotal: decimal.Zero}
	for _, it := range items {
		if !it.StockTotal.IsPositive() {
			view.SemStock++
		}
		view.StockTotal = view.StockTotal.Add(it.StockTotal)
	}
	return view
}

// Movements proyección del registro, opcionalmente por tipo (entrada|saida).
func (uc *StockUseCase) Movements(tipo string) (dto.MovementListView, error) {
	tipo = strings.ToLower(strings.TrimSpace(tipo))
	var list []entity.Movement
	switch tipo {
	case "":
		list = uc.store.Movements.Snapshot()
	case entity.MovementEntrada, entity.MovementSaida:
		list = uc.store.Movements.Filter(func(m entity.Movement) bool { return m.Tipo == tipo })
	default:
		return dto.MovementListView{}, fmt.Errorf("%w: tipo de movimento %q", domain.ErrInvalidInput, tipo)
	}
	return dto.MovementListView{Tipo: tipo, Total: len(list), Movimentos: list}, nil
}

// RegisterEntrada registra una doación recibida. Confirmada, el movimiento se
// añade al principio del registro y se recarga el catálogo (el stock lo
// calcula el servidor).
func (uc *StockUseCase) RegisterEntrada(ctx context.Context, in entity.EntradaRequest) (*entity.Movement, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}
	var mov *entity.Movement
	err := uc.fb.run(ctx, mutation{
		key: viewstate.Key(viewstate.KindItems, in.ItemID),
		op:  "entrada",
		call: func(ctx context.Context) error {
			m, err := uc.repo.RegisterEntrada(ctx, in)
			mov = m
			return err
		},
		apply: func() error {
			if mov != nil {
				uc.store.Movements.Prepend(*mov)
			}
			return nil
		},
		okMsg:   "Entrada registada com sucesso!",
		failMsg: "Erro ao registar entrada",
	})
	if err != nil {
		return nil, err
	}
	uc.reloadItems(ctx)
	return mov, nil
}

// RegisterSaida registra una distribución. Si el servidor pide confirmación
// devuelve el resultado con las alertas y no toca la caché; el cliente debe
// reenviar con ForcarDistribuicao.
func (uc *StockUseCase) RegisterSaida(ctx context.Context, in entity.SaidaRequest) (*entity.SaidaResult, error) {
	in.BeneficiarioNIF = strings.TrimSpace(in.BeneficiarioNIF)
	if err := in.Validate(); err != nil {
		return nil, err
	}
	var res *entity.SaidaResult
	err := uc.fb.run(ctx, mutation{
		key: viewstate.Key(viewstate.KindItems, in.ItemID),
		op:  "saida",
		call: func(ctx context.Context) error {
			r, err := uc.repo.RegisterSaida(ctx, in)
			res = r
			return err
		},
		apply: func() error {
			if res.RequerConfirmacao {
				return nil
			}
			uc.store.Histories.Remove(in.BeneficiarioNIF)
			if res.Movement != nil {
				uc.store.Movements.Prepend(*res.Movement)
			}
			return nil
		},
		failMsg: "Erro ao registar distribuição",
	})
	if err != nil {
		return nil, err
	}
	if res.RequerConfirmacao {
		msg := nonEmpty(res.Mensagem, "A distribuição requer confirmação")
		uc.fb.notify.Push(notify.LevelWarning, msg)
		return res, nil
	}
	uc.fb.notify.Push(notify.LevelSuccess, "Distribuição registada com sucesso!")
	for _, a := range res.Alertas {
		uc.fb.notify.Push(notify.LevelInfo, a)
	}
	uc.reloadItems(ctx)
	uc.reloadBeneficiary(ctx, in.BeneficiarioNIF)
	return res, nil
}

// DistributionForm carga en paralelo artículos y beneficiarios para el
// formulario de salida. Solo si ambas peticiones tienen éxito se actualizan
// las cachés.
func (uc *StockUseCase) DistributionForm(ctx context.Context) (*dto.DistributionFormView, error) {
	benefGen := uc.store.Beneficiaries.Generation()
	var (
		items  []entity.StockItem
		benefs []entity.Beneficiary
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		items, err = uc.repo.ListItems(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		benefs, err = uc.benefRepo.List(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		uc.fb.fail(err, "formulario_distribuicao", "Erro ao carregar dados do formulário")
		return nil, err
	}

	uc.store.Items.Load(items)
	uc.store.MarkLoaded(viewstate.KindItems)
	if uc.store.Beneficiaries.LoadIf(benefs, benefGen) {
		uc.store.MarkLoaded(viewstate.KindBeneficiaries)
	}

	switch {
	case len(items) == 0:
		uc.fb.notify.Push(notify.LevelError, "Nenhum item disponível. Registe itens primeiro.")
		return nil, fmt.Errorf("%w: nenhum item disponível", domain.ErrNotFound)
	case len(benefs) == 0:
		uc.fb.notify.Push(notify.LevelError, "Nenhum beneficiário registado. Registe beneficiários primeiro.")
		return nil, fmt.Errorf("%w: nenhum beneficiário registado", domain.ErrNotFound)
	}
	return &dto.DistributionFormView{Itens: items, Beneficiarios: benefs}, nil
}

// SummaryPDF resumen de stock a partir del catálogo en caché.
func (uc *StockUseCase) SummaryPDF(ctx context.Context) ([]byte, error) {
	if uc.renderer == nil {
		return nil, fmt.Errorf("%w: geração de PDF desativada", domain.ErrNotFound)
	}
	return uc.renderer.StockSummary(ctx, uc.store.Items.Snapshot(), uc.now())
}

// reloadItems refresca el catálogo tras un movimiento. Un fallo aquí no anula
// el movimiento ya confirmado; solo se registra.
func (uc *StockUseCase) reloadItems(ctx context.Context) {
	list, err := uc.repo.ListItems(ctx)
	if err != nil {
		uc.fb.log.Warn().Err(err).Msg("no se pudo recargar el catálogo tras el movimiento")
		return
	}
	uc.store.Items.Load(list)
	uc.store.MarkLoaded(viewstate.KindItems)
}

// reloadBeneficiary actualiza total_ajudas del beneficiario si está en caché.
func (uc *StockUseCase) reloadBeneficiary(ctx context.Context, nif string) {
	if uc.benefRepo == nil || !uc.store.Beneficiaries.Has(nif) {
		return
	}
	b, err := uc.benefRepo.Get(ctx, nif)
	if err != nil {
		uc.fb.log.Warn().Err(err).Str("nif", nif).Msg("no se pudo recargar el beneficiario")
		return
	}
	uc.store.Beneficiaries.Append(*b)
}

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}
