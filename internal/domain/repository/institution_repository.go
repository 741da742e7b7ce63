package repository

import (
	"context"

	"github.com/jhoicas/painel-ajuda/internal/domain/entity"
)

// InstitutionRepository puerto hacia la API remota de instituciones (DIP).
// Cada método es exactamente una petición; ninguno reintenta.
type InstitutionRepository interface {
	List(ctx context.Context) ([]entity.Institution, error)
	ListPending(ctx context.Context) ([]entity.Institution, error)
	Approve(ctx context.Context, id int64) error
	Reject(ctx context.Context, id int64, motivo string) error
	Delete(ctx context.Context, id int64) error
	Register(ctx context.Context, in entity.InstitutionRegistration) error
	CheckAvailability(ctx context.Context, campo, valor string) (*entity.Availability, error)
	Types(ctx context.Context) ([]entity.InstitutionType, error)
}
