package repository

import (
	"context"

	"github.com/jhoicas/painel-ajuda/internal/domain/entity"
)

// DashboardRepository puerto hacia las estadísticas del painel inicial.
type DashboardRepository interface {
	Stats(ctx context.Context) (*entity.DashboardStats, error)
	RecentActivity(ctx context.Context, limit int) ([]entity.Activity, error)
	Alerts(ctx context.Context) ([]entity.SystemAlert, error)
}
