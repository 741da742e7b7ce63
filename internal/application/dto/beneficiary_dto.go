package dto

import "github.com/jhoicas/painel-ajuda/internal/domain/entity"

// BeneficiaryListView lista de beneficiarios (filtrada o completa).
type BeneficiaryListView struct {
	Termo         string               `json:"termo,omitempty"`
	Total         int                  `json:"total"`
	Beneficiarios []entity.Beneficiary `json:"beneficiarios"`
}
