package usecase

import (
	"context"
	"fmt"
	"sort"

	"github.com/jhoicas/painel-ajuda/internal/application/dto"
	"github.com/jhoicas/painel-ajuda/internal/application/notify"
	"github.com/jhoicas/painel-ajuda/internal/application/ports"
	"github.com/jhoicas/painel-ajuda/internal/application/viewstate"
	"github.com/jhoicas/painel-ajuda/internal/domain"
	"github.com/jhoicas/painel-ajuda/internal/domain/entity"
	"github.com/jhoicas/painel-ajuda/internal/domain/repository"
	"github.com/jhoicas/painel-ajuda/pkg/logger"
)

// ReportUseCase informes mensuales: generación, listado e impresión.
type ReportUseCase struct {
	repo     repository.ReportRepository
	renderer ports.DocumentRenderer
	store    *viewstate.Store
	fb       feedback
}

// NewReportUseCase construye el caso de uso.
func NewReportUseCase(repo repository.ReportRepository, renderer ports.DocumentRenderer, store *viewstate.Store, n notify.Notifier, log *logger.Logger) *ReportUseCase {
	return &ReportUseCase{
		repo:     repo,
		renderer: renderer,
		store:    store,
		fb:       feedback{inflight: store.InFlight, notify: n, log: log.Component("relatorios")},
	}
}

// Refresh recarga los informes guardados.
func (uc *ReportUseCase) Refresh(ctx context.Context) (*dto.ReportListView, error) {
	gen := uc.store.Reports.Generation()
	list, err := uc.repo.List(ctx)
	if err != nil {
		uc.fb.fail(err, "listar", "Erro ao carregar relatórios")
		return nil, err
	}
	if uc.store.Reports.LoadIf(list, gen) {
		uc.store.MarkLoaded(viewstate.KindReports)
	}
	view := uc.List()
	return &view, nil
}

// List informes en caché, del más reciente al más antiguo.
func (uc *ReportUseCase) List() dto.ReportListView {
	list := uc.store.Reports.Snapshot()
	sort.SliceStable(list, func(i, j int) bool {
		if list[i].Ano != list[j].Ano {
			return list[i].Ano > list[j].Ano
		}
		return list[i].Mes > list[j].Mes
	})
	return dto.ReportListView{Total: len(list), Relatorios: list}
}

// RefreshPeriods recarga los meses con movimientos.
func (uc *ReportUseCase) RefreshPeriods(ctx context.Context) (*dto.PeriodListView, error) {
	list, err := uc.repo.Periods(ctx)
	if err != nil {
		uc.fb.fail(err, "periodos", "Erro ao carregar períodos")
		return nil, err
	}
	uc.store.Periods.Load(list)
	uc.store.MarkLoaded(viewstate.KindPeriods)
	view := uc.Periods()
	return &view, nil
}

// Periods meses disponibles en caché, del más reciente al más antiguo.
func (uc *ReportUseCase) Periods() dto.PeriodListView {
	list := uc.store.Periods.Snapshot()
	sort.SliceStable(list, func(i, j int) bool {
		if list[i].Ano != list[j].Ano {
			return list[i].Ano > list[j].Ano
		}
		return list[i].Mes > list[j].Mes
	})
	return dto.PeriodListView{Total: len(list), Periodos: list}
}

// ByMonth informe de un mes. Un informe ya en caché se sirve sin petición. Si
// el servidor lo tiene guardado pasa a la caché; una vista previa calculada
// al momento no se guarda.
func (uc *ReportUseCase) ByMonth(ctx context.Context, period entity.ReportPeriod) (*dto.MonthlyReportView, error) {
	if !period.Valid() {
		return nil, fmt.Errorf("%w: ano e mês inválidos", domain.ErrInvalidInput)
	}
	if rep, ok := uc.store.Reports.Get(period); ok {
		return &dto.MonthlyReportView{Guardado: true, Relatorio: rep}, nil
	}
	rep, saved, err := uc.repo.ByMonth(ctx, period)
	if err != nil {
		uc.fb.fail(err, "relatorio_mes", "Erro ao carregar relatório")
		return nil, err
	}
	if saved {
		uc.store.Reports.Append(*rep)
	}
	return &dto.MonthlyReportView{Guardado: saved, Relatorio: *rep}, nil
}

// Generate pide al servidor el informe del período y, confirmado, lo guarda en
// caché (reemplaza uno anterior del mismo período).
func (uc *ReportUseCase) Generate(ctx context.Context, period entity.ReportPeriod) (*entity.MonthlyReport, error) {
	if !period.Valid() {
		return nil, fmt.Errorf("%w: ano e mês são obrigatórios", domain.ErrInvalidInput)
	}
	var rep *entity.MonthlyReport
	err := uc.fb.run(ctx, mutation{
		key: viewstate.Key(viewstate.KindReports, fmt.Sprintf("%04d-%02d", period.Ano, period.Mes)),
		op:  "gerar",
		call: func(ctx context.Context) error {
			r, err := uc.repo.Generate(ctx, period)
			rep = r
			return err
		},
		apply: func() error {
			uc.store.Reports.Prepend(*rep)
			return nil
		},
		okMsg:   fmt.Sprintf("Relatório de %s %d gerado", entity.MonthName(period.Mes), period.Ano),
		failMsg: "Erro ao gerar relatório",
	})
	if err != nil {
		return nil, err
	}
	return rep, nil
}

// PDF imprime el informe del período desde la caché.
func (uc *ReportUseCase) PDF(ctx context.Context, period entity.ReportPeriod) ([]byte, error) {
	if uc.renderer == nil {
		return nil, fmt.Errorf("%w: geração de PDF desativada", domain.ErrNotFound)
	}
	rep, ok := uc.store.Reports.Get(period)
	if !ok {
		return nil, fmt.Errorf("%w: relatório %04d-%02d não gerado", domain.ErrNotFound, period.Ano, period.Mes)
	}
	return uc.renderer.MonthlyReport(ctx, rep)
}
