package usecase_test

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/jhoicas/painel-ajuda/internal/application/notify"
	"github.com/jhoicas/painel-ajuda/internal/application/viewstate"
	"github.com/jhoicas/painel-ajuda/internal/domain"
	"github.com/jhoicas/painel-ajuda/internal/domain/entity"
)

var baseTime = time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)

func newStore() *viewstate.Store {
	return viewstate.NewStore(func() time.Time { return baseTime })
}

func newCenter() *notify.Center {
	return notify.NewCenter(time.Minute, func() time.Time { return baseTime })
}

func rejected(msg string) error {
	return &domain.RejectionError{Status: 200, Message: msg}
}

// ──────────────────────────────────────────────────────────────────────────────
// Instituciones
// ──────────────────────────────────────────────────────────────────────────────

type fakeInstitutionRepo struct {
	mu         sync.Mutex
	list       []entity.Institution
	listErr    error
	pending    []entity.Institution
	pendingErr error
	onList     func() // se ejecuta dentro de List, antes de responder
	err        error  // respuesta de las mutaciones
	calls   []string
	motivo  string
	block   chan struct{} // si no es nil, Approve espera hasta que se cierre
	started chan struct{}
}

func (f *fakeInstitutionRepo) record(op string) {
	f.mu.Lock()
	f.calls = append(f.calls, op)
	f.mu.Unlock()
}

func (f *fakeInstitutionRepo) List(context.Context) ([]entity.Institution, error) {
	f.record("list")
	if f.onList != nil {
		f.onList()
	}
	return f.list, f.listErr
}

func (f *fakeInstitutionRepo) ListPending(context.Context) ([]entity.Institution, error) {
	f.record("pending")
	return f.pending, f.pendingErr
}

func (f *fakeInstitutionRepo) Approve(context.Context, int64) error {
	f.record("approve")
	if f.block != nil {
		close(f.started)
		<-f.block
	}
	return f.err
}

func (f *fakeInstitutionRepo) Reject(_ context.Context, _ int64, motivo string) error {
	f.record("reject")
	f.motivo = motivo
	return f.err
}

func (f *fakeInstitutionRepo) Delete(context.Context, int64) error {
	f.record("delete")
	return f.err
}

func (f *fakeInstitutionRepo) Register(context.Context, entity.InstitutionRegistration) error {
	f.record("register")
	return f.err
}

func (f *fakeInstitutionRepo) CheckAvailability(_ context.Context, campo, _ string) (*entity.Availability, error) {
	f.record("availability")
	return &entity.Availability{Disponivel: true, Campo: campo}, f.err
}

func (f *fakeInstitutionRepo) Types(context.Context) ([]entity.InstitutionType, error) {
	return []entity.InstitutionType{{Valor: "ipss", Nome: "IPSS"}}, nil
}

func (f *fakeInstitutionRepo) Calls() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.calls...)
}

// ──────────────────────────────────────────────────────────────────────────────
// Beneficiarios
// ──────────────────────────────────────────────────────────────────────────────

type fakeBeneficiaryRepo struct {
	list         []entity.Beneficiary
	listErr      error
	get          *entity.Beneficiary
	err          error
	calls        int
	history      *entity.BeneficiaryHistory
	historyCalls int
}

func (f *fakeBeneficiaryRepo) List(context.Context) ([]entity.Beneficiary, error) {
	return f.list, f.listErr
}

func (f *fakeBeneficiaryRepo) Get(_ context.Context, nif string) (*entity.Beneficiary, error) {
	if f.get == nil {
		return nil, rejected("Beneficiário não encontrado")
	}
	return f.get, nil
}

func (f *fakeBeneficiaryRepo) Create(_ context.Context, b entity.Beneficiary) (*entity.Beneficiary, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return &b, nil
}

func (f *fakeBeneficiaryRepo) History(_ context.Context, nif string) (*entity.BeneficiaryHistory, error) {
	f.historyCalls++
	if f.history == nil {
		return nil, &domain.RejectionError{Status: 404, Message: "Beneficiário não encontrado"}
	}
	h := *f.history
	h.NIF = nif
	return &h, nil
}

// ──────────────────────────────────────────────────────────────────────────────
// Stock
// ──────────────────────────────────────────────────────────────────────────────

type fakeStockRepo struct {
	items     []entity.StockItem
	itemsErr  error
	movements []entity.Movement
	entrada   *entity.Movement
	saida     *entity.SaidaResult
	err       error
	listCalls int
}

func (f *fakeStockRepo) ListItems(context.Context) ([]entity.StockItem, error) {
	f.listCalls++
	return f.items, f.itemsErr
}

func (f *fakeStockRepo) ListMovements(context.Context) ([]entity.Movement, error) {
	return f.movements, nil
}

func (f *fakeStockRepo) RegisterEntrada(context.Context, entity.EntradaRequest) (*entity.Movement, error) {
	return f.entrada, f.err
}

func (f *fakeStockRepo) RegisterSaida(context.Context, entity.SaidaRequest) (*entity.SaidaResult, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.saida, nil
}

// ──────────────────────────────────────────────────────────────────────────────
// Informes, sesión y documentos
// ──────────────────────────────────────────────────────────────────────────────

type fakeReportRepo struct {
	list         []entity.MonthlyReport
	rep          *entity.MonthlyReport
	err          error
	periods      []entity.PeriodOption
	byMonth      *entity.MonthlyReport
	saved        bool
	byMonthCalls int
}

func (f *fakeReportRepo) Generate(_ context.Context, p entity.ReportPeriod) (*entity.MonthlyReport, error) {
	if f.err != nil {
		return nil, f.err
	}
	if f.rep != nil {
		return f.rep, nil
	}
	return &entity.MonthlyReport{Ano: p.Ano, Mes: p.Mes}, nil
}

func (f *fakeReportRepo) List(context.Context) ([]entity.MonthlyReport, error) {
	return f.list, f.err
}

func (f *fakeReportRepo) Periods(context.Context) ([]entity.PeriodOption, error) {
	return f.periods, f.err
}

func (f *fakeReportRepo) ByMonth(_ context.Context, p entity.ReportPeriod) (*entity.MonthlyReport, bool, error) {
	f.byMonthCalls++
	if f.err != nil {
		return nil, false, f.err
	}
	if f.byMonth != nil {
		return f.byMonth, f.saved, nil
	}
	return &entity.MonthlyReport{Ano: p.Ano, Mes: p.Mes}, f.saved, nil
}

// ──────────────────────────────────────────────────────────────────────────────
// Dashboard y alertas de equidad
// ──────────────────────────────────────────────────────────────────────────────

type fakeDashboardRepo struct {
	stats     *entity.DashboardStats
	activity  []entity.Activity
	alerts    []entity.SystemAlert
	alertsErr error
	limit     int
}

func (f *fakeDashboardRepo) Stats(context.Context) (*entity.DashboardStats, error) {
	if f.stats == nil {
		return &entity.DashboardStats{}, nil
	}
	return f.stats, nil
}

func (f *fakeDashboardRepo) RecentActivity(_ context.Context, limit int) ([]entity.Activity, error) {
	f.limit = limit
	return f.activity, nil
}

func (f *fakeDashboardRepo) Alerts(context.Context) ([]entity.SystemAlert, error) {
	return f.alerts, f.alertsErr
}

type fakeEquityRepo struct {
	mu        sync.Mutex
	least     []entity.LeastHelped
	report    *entity.DistributionReport
	reportErr error
	limits    map[string]entity.CategoryLimit
	queries   []string
}

func (f *fakeEquityRepo) LeastHelped(_ context.Context, categoria string, limite int) ([]entity.LeastHelped, error) {
	f.mu.Lock()
	f.queries = append(f.queries, fmt.Sprintf("%s/%d", categoria, limite))
	f.mu.Unlock()
	return f.least, nil
}

func (f *fakeEquityRepo) DistributionReport(context.Context) (*entity.DistributionReport, error) {
	if f.reportErr != nil {
		return nil, f.reportErr
	}
	if f.report == nil {
		return &entity.DistributionReport{}, nil
	}
	return f.report, nil
}

func (f *fakeEquityRepo) Limits(context.Context) (map[string]entity.CategoryLimit, error) {
	return f.limits, nil
}

func (f *fakeEquityRepo) Queries() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.queries...)
}

type fakeRenderer struct {
	items  []entity.StockItem
	report entity.MonthlyReport
}

func (f *fakeRenderer) StockSummary(_ context.Context, items []entity.StockItem, _ time.Time) ([]byte, error) {
	f.items = items
	return []byte("%PDF-stock"), nil
}

func (f *fakeRenderer) MonthlyReport(_ context.Context, r entity.MonthlyReport) ([]byte, error) {
	f.report = r
	return []byte("%PDF-report"), nil
}
