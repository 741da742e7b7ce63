package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/jhoicas/painel-ajuda/internal/domain/entity"
)

// BeneficiaryRepository implementa repository.BeneficiaryRepository.
type BeneficiaryRepository struct {
	c *Client
}

// NewBeneficiaryRepository construye el repositorio.
func NewBeneficiaryRepository(c *Client) *BeneficiaryRepository {
	return &BeneficiaryRepository{c: c}
}

// List beneficiarios con su contador total_ajudas.
func (r *BeneficiaryRepository) List(ctx context.Context) ([]entity.Beneficiary, error) {
	var out struct {
		Beneficiarios []entity.Beneficiary `json:"beneficiarios"`
		Pagination    *pagination          `json:"pagination"`
	}
	path := fmt.Sprintf("/api/beneficiarios?per_page=%d", listPageSize)
	if err := r.c.call(ctx, http.MethodGet, path, nil, &out, true); err != nil {
		return nil, err
	}
	r.c.warnTruncated(path, out.Pagination)
	return out.Beneficiarios, nil
}

// Get un beneficiario por NIF.
func (r *BeneficiaryRepository) Get(ctx context.Context, nif string) (*entity.Beneficiary, error) {
	var out struct {
		Beneficiario entity.Beneficiary `json:"beneficiario"`
	}
	if err := r.c.call(ctx, http.MethodGet, "/api/beneficiarios/"+url.PathEscape(nif), nil, &out, true); err != nil {
		return nil, err
	}
	return &out.Beneficiario, nil
}

// Create registra un beneficiario y devuelve el eco del servidor.
func (r *BeneficiaryRepository) Create(ctx context.Context, b entity.Beneficiary) (*entity.Beneficiary, error) {
	var out struct {
		Beneficiario *entity.Beneficiary `json:"beneficiario"`
	}
	if err := r.c.call(ctx, http.MethodPost, "/api/beneficiarios", b, &out, true); err != nil {
		return nil, err
	}
	if out.Beneficiario == nil {
		// el servidor no devolvió eco: se usa lo enviado
		return &b, nil
	}
	return out.Beneficiario, nil
}

// History salidas recibidas por nif, más recientes primero (primera página).
func (r *BeneficiaryRepository) History(ctx context.Context, nif string) (*entity.BeneficiaryHistory, error) {
	var out struct {
		Historico  []entity.Movement `json:"historico"`
		Pagination *pagination       `json:"pagination"`
	}
	path := fmt.Sprintf("/api/beneficiarios/%s/historico?per_page=%d", url.PathEscape(nif), listPageSize)
	if err := r.c.call(ctx, http.MethodGet, path, nil, &out, true); err != nil {
		return nil, err
	}
	r.c.warnTruncated(path, out.Pagination)
	h := &entity.BeneficiaryHistory{NIF: nif, Movimentos: out.Historico, Total: len(out.Historico)}
	if out.Pagination != nil {
		h.Total = out.Pagination.Total
		h.HasMore = out.Pagination.HasNext
	}
	return h, nil
}
