package repository

import (
	"context"

	"github.com/jhoicas/painel-ajuda/internal/domain/entity"
)

// ReportRepository puerto hacia la API remota de informes mensuales.
// ByMonth devuelve el informe guardado del período o, si no existe, uno
// calculado al momento (saved=false) que el servidor no guarda.
type ReportRepository interface {
	Generate(ctx context.Context, period entity.ReportPeriod) (*entity.MonthlyReport, error)
	List(ctx context.Context) ([]entity.MonthlyReport, error)
	Periods(ctx context.Context) ([]entity.PeriodOption, error)
	ByMonth(ctx context.Context, period entity.ReportPeriod) (rep *entity.MonthlyReport, saved bool, err error)
}
