package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/jhoicas/painel-ajuda/internal/domain/entity"
)

// DashboardRepository implementa repository.DashboardRepository.
type DashboardRepository struct {
	c *Client
}

// NewDashboardRepository construye el repositorio.
func NewDashboardRepository(c *Client) *DashboardRepository {
	return &DashboardRepository{c: c}
}

// Stats estadísticas del sistema y de la institución con sesión.
func (r *DashboardRepository) Stats(ctx context.Context) (*entity.DashboardStats, error) {
	var out struct {
		Stats entity.DashboardStats `json:"stats"`
	}
	if err := r.c.call(ctx, http.MethodGet, "/api/dashboard/stats", nil, &out, true); err != nil {
		return nil, err
	}
	return &out.Stats, nil
}

// RecentActivity últimos limit movimientos de la institución.
func (r *DashboardRepository) RecentActivity(ctx context.Context, limit int) ([]entity.Activity, error) {
	var out struct {
		Atividades []entity.Activity `json:"atividades"`
	}
	path := fmt.Sprintf("/api/dashboard/atividade-recente?limit=%d", limit)
	if err := r.c.call(ctx, http.MethodGet, path, nil, &out, true); err != nil {
		return nil, err
	}
	return out.Atividades, nil
}

// Alerts avisos de stock bajo y agotado.
func (r *DashboardRepository) Alerts(ctx context.Context) ([]entity.SystemAlert, error) {
	var out struct {
		Alertas []entity.SystemAlert `json:"alertas"`
	}
	if err := r.c.call(ctx, http.MethodGet, "/api/dashboard/alertas", nil, &out, true); err != nil {
		return nil, err
	}
	return out.Alertas, nil
}
