package api

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/jhoicas/painel-ajuda/internal/domain"
	"github.com/jhoicas/painel-ajuda/internal/domain/entity"
)

// EquityRepository implementa repository.EquityRepository.
type EquityRepository struct {
	c *Client
}

// NewEquityRepository construye el repositorio.
func NewEquityRepository(c *Client) *EquityRepository {
	return &EquityRepository{c: c}
}

// LeastHelped beneficiarios con menos ayudas en los últimos 30 días,
// opcionalmente limitados a una categoría de artículos.
func (r *EquityRepository) LeastHelped(ctx context.Context, categoria string, limite int) ([]entity.LeastHelped, error) {
	q := url.Values{}
	q.Set("limite", strconv.Itoa(limite))
	if categoria != "" {
		q.Set("categoria", categoria)
	}
	var out struct {
		Beneficiarios []entity.LeastHelped `json:"beneficiarios"`
	}
	if err := r.c.call(ctx, http.MethodGet, "/api/alertas/beneficiarios-menos-ajuda?"+q.Encode(), nil, &out, true); err != nil {
		return nil, err
	}
	return out.Beneficiarios, nil
}

// DistributionReport informe de distribución equitativa. El servidor puede
// responder success con un campo erro dentro del informe: se trata como rechazo.
func (r *EquityRepository) DistributionReport(ctx context.Context) (*entity.DistributionReport, error) {
	var out struct {
		Relatorio struct {
			entity.DistributionReport
			Erro string `json:"erro"`
		} `json:"relatorio"`
	}
	if err := r.c.call(ctx, http.MethodGet, "/api/alertas/relatorio-distribuicao", nil, &out, true); err != nil {
		return nil, err
	}
	if out.Relatorio.Erro != "" {
		return nil, &domain.RejectionError{Status: http.StatusOK, Message: out.Relatorio.Erro}
	}
	rep := out.Relatorio.DistributionReport
	return &rep, nil
}

// Limits límites de distribución por categoría vigentes en el servidor.
func (r *EquityRepository) Limits(ctx context.Context) (map[string]entity.CategoryLimit, error) {
	var out struct {
		Limites map[string]entity.CategoryLimit `json:"limites"`
	}
	if err := r.c.call(ctx, http.MethodGet, "/api/alertas/limites-atuais", nil, &out, true); err != nil {
		return nil, err
	}
	return out.Limites, nil
}
