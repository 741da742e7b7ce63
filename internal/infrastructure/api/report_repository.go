package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/jhoicas/painel-ajuda/internal/domain/entity"
)

// ReportRepository implementa repository.ReportRepository.
type ReportRepository struct {
	c *Client
}

// NewReportRepository construye el repositorio.
func NewReportRepository(c *Client) *ReportRepository {
	return &ReportRepository{c: c}
}

// Generate pide al servidor el informe del período y lo guarda allí.
func (r *ReportRepository) Generate(ctx context.Context, period entity.ReportPeriod) (*entity.MonthlyReport, error) {
	body := map[string]any{"ano": period.Ano, "mes": period.Mes, "salvar": true}
	var out struct {
		Relatorio *entity.MonthlyReport `json:"relatorio"`
	}
	if err := r.c.call(ctx, http.MethodPost, "/api/relatorios/mensal/gerar", body, &out, true); err != nil {
		return nil, err
	}
	if out.Relatorio == nil {
		return &entity.MonthlyReport{Ano: period.Ano, Mes: period.Mes}, nil
	}
	rep := out.Relatorio
	if rep.Ano == 0 {
		rep.Ano, rep.Mes = period.Ano, period.Mes
	}
	return rep, nil
}

// List informes guardados de la institución.
func (r *ReportRepository) List(ctx context.Context) ([]entity.MonthlyReport, error) {
	var out struct {
		Relatorios []entity.MonthlyReport `json:"relatorios"`
	}
	if err := r.c.call(ctx, http.MethodGet, "/api/relatorios/mensal/listar", nil, &out, true); err != nil {
		return nil, err
	}
	return out.Relatorios, nil
}

// Periods meses con movimientos de la institución, del más antiguo al más reciente.
func (r *ReportRepository) Periods(ctx context.Context) ([]entity.PeriodOption, error) {
	var out struct {
		Periodos []entity.PeriodOption `json:"periodos"`
	}
	if err := r.c.call(ctx, http.MethodGet, "/api/relatorios/mensal/periodos-disponiveis", nil, &out, true); err != nil {
		return nil, err
	}
	for i := range out.Periodos {
		if out.Periodos[i].MesNome == "" {
			out.Periodos[i].MesNome = entity.MonthName(out.Periodos[i].Mes)
		}
	}
	return out.Periodos, nil
}

// ByMonth informe guardado del período o, si no existe, uno calculado al momento.
func (r *ReportRepository) ByMonth(ctx context.Context, period entity.ReportPeriod) (*entity.MonthlyReport, bool, error) {
	var out struct {
		Relatorio *entity.MonthlyReport `json:"relatorio"`
		Existe    bool                  `json:"existe"`
	}
	path := fmt.Sprintf("/api/relatorios/mensal/por-mes/%d/%d", period.Ano, period.Mes)
	if err := r.c.call(ctx, http.MethodGet, path, nil, &out, true); err != nil {
		return nil, false, err
	}
	rep := out.Relatorio
	if rep == nil {
		rep = &entity.MonthlyReport{}
	}
	if rep.Ano == 0 {
		rep.Ano, rep.Mes = period.Ano, period.Mes
	}
	return rep, out.Existe, nil
}
