package api

import (
	"context"
	"net/http"

	"github.com/jhoicas/painel-ajuda/internal/domain"
	"github.com/jhoicas/painel-ajuda/internal/domain/entity"
)

// SessionRepository implementa repository.SessionRepository. La sesión
// queda en el cookie jar del Client.
type SessionRepository struct {
	c *Client
}

// NewSessionRepository construye el repositorio.
func NewSessionRepository(c *Client) *SessionRepository {
	return &SessionRepository{c: c}
}

// Login abre sesión en la API remota.
func (r *SessionRepository) Login(ctx context.Context, username, password string) (*entity.SessionInstitution, error) {
	var out struct {
		Instituicao entity.SessionInstitution `json:"instituicao"`
	}
	body := map[string]string{"username": username, "password": password}
	if err := r.c.call(ctx, http.MethodPost, "/api/auth/login", body, &out, true); err != nil {
		return nil, err
	}
	return &out.Instituicao, nil
}

// Logout cierra la sesión remota.
func (r *SessionRepository) Logout(ctx context.Context) error {
	return r.c.call(ctx, http.MethodPost, "/api/auth/logout", nil, nil, false)
}

// Check devuelve la institución autenticada o domain.ErrUnauthorized.
func (r *SessionRepository) Check(ctx context.Context) (*entity.SessionInstitution, error) {
	var out struct {
		Authenticated bool                      `json:"authenticated"`
		Instituicao   entity.SessionInstitution `json:"instituicao"`
	}
	if err := r.c.call(ctx, http.MethodGet, "/api/auth/check", nil, &out, false); err != nil {
		return nil, err
	}
	if !out.Authenticated {
		return nil, domain.ErrUnauthorized
	}
	return &out.Instituicao, nil
}
