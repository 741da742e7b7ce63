package repository

import (
	"context"

	"github.com/jhoicas/painel-ajuda/internal/domain/entity"
)

// EquityRepository puerto hacia los controles de distribución equitativa.
type EquityRepository interface {
	LeastHelped(ctx context.Context, categoria string, limite int) ([]entity.LeastHelped, error)
	DistributionReport(ctx context.Context) (*entity.DistributionReport, error)
	Limits(ctx context.Context) (map[string]entity.CategoryLimit, error)
}
