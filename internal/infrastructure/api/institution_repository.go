package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/jhoicas/painel-ajuda/internal/domain/entity"
)

// InstitutionRepository implementa repository.InstitutionRepository.
type InstitutionRepository struct {
	c *Client
}

// NewInstitutionRepository construye el repositorio.
func NewInstitutionRepository(c *Client) *InstitutionRepository {
	return &InstitutionRepository{c: c}
}

type institutionsResponse struct {
	Instituicoes []entity.Institution `json:"instituicoes"`
}

// List todas las instituciones visibles para el administrador.
func (r *InstitutionRepository) List(ctx context.Context) ([]entity.Institution, error) {
	var out institutionsResponse
	if err := r.c.call(ctx, http.MethodGet, "/api/auth/admin/instituicoes", nil, &out, true); err != nil {
		return nil, err
	}
	return out.Instituicoes, nil
}

// ListPending instituciones pendientes de aprobación.
func (r *InstitutionRepository) ListPending(ctx context.Context) ([]entity.Institution, error) {
	var out institutionsResponse
	if err := r.c.call(ctx, http.MethodGet, "/api/auth/admin/instituicoes-pendentes", nil, &out, true); err != nil {
		return nil, err
	}
	return out.Instituicoes, nil
}

// Approve aprueba la institución id.
func (r *InstitutionRepository) Approve(ctx context.Context, id int64) error {
	return r.c.call(ctx, http.MethodPost, fmt.Sprintf("/api/auth/admin/aprovar-instituicao/%d", id), nil, nil, true)
}

// Reject rechaza la institución id con el motivo indicado.
func (r *InstitutionRepository) Reject(ctx context.Context, id int64, motivo string) error {
	body := map[string]string{"motivo": motivo}
	return r.c.call(ctx, http.MethodPost, fmt.Sprintf("/api/auth/admin/rejeitar-instituicao/%d", id), body, nil, true)
}

// Delete elimina la institución id.
func (r *InstitutionRepository) Delete(ctx context.Context, id int64) error {
	return r.c.call(ctx, http.MethodDelete, fmt.Sprintf("/api/auth/admin/instituicoes/%d", id), nil, nil, true)
}

// Register envía el formulario público de registro.
func (r *InstitutionRepository) Register(ctx context.Context, in entity.InstitutionRegistration) error {
	return r.c.call(ctx, http.MethodPost, "/api/auth/registro", in, nil, true)
}

// CheckAvailability comprueba si un username o email está libre.
func (r *InstitutionRepository) CheckAvailability(ctx context.Context, campo, valor string) (*entity.Availability, error) {
	var out entity.Availability
	body := map[string]string{campo: valor}
	if err := r.c.call(ctx, http.MethodPost, "/api/auth/verificar-disponibilidade", body, &out, false); err != nil {
		return nil, err
	}
	return &out, nil
}

// Types catálogo de tipos de institución.
func (r *InstitutionRepository) Types(ctx context.Context) ([]entity.InstitutionType, error) {
	var out struct {
		Tipos []entity.InstitutionType `json:"tipos"`
	}
	if err := r.c.call(ctx, http.MethodGet, "/api/auth/tipos-instituicao", nil, &out, false); err != nil {
		return nil, err
	}
	return out.Tipos, nil
}
