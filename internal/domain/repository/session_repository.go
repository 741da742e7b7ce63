package repository

import (
	"context"

	"github.com/jhoicas/painel-ajuda/internal/domain/entity"
)

// SessionRepository puerto de sesión contra la API remota.
type SessionRepository interface {
	Login(ctx context.Context, username, password string) (*entity.SessionInstitution, error)
	Logout(ctx context.Context) error
	Check(ctx context.Context) (*entity.SessionInstitution, error)
}
