package repository

import (
	"context"

	"github.com/jhoicas/painel-ajuda/internal/domain/entity"
)

// BeneficiaryRepository puerto hacia la API remota de beneficiarios.
type BeneficiaryRepository interface {
	List(ctx context.Context) ([]entity.Beneficiary, error)
	Get(ctx context.Context, nif string) (*entity.Beneficiary, error)
	Create(ctx context.Context, b entity.Beneficiary) (*entity.Beneficiary, error)
	History(ctx context.Context, nif string) (*entity.BeneficiaryHistory, error)
}
