package dto

import (
	"time"

	"github.com/jhoicas/painel-ajuda/internal/domain/entity"
)

// DashboardView painel inicial a partir de la caché.
type DashboardView struct {
	entity.Dashboard
	LoadedAt *time.Time `json:"loaded_at,omitempty"`
}

// EquityView panel de alertas de equidad a partir de la caché.
type EquityView struct {
	entity.EquityPanel
	LoadedAt *time.Time `json:"loaded_at,omitempty"`
}

// LeastHelpedView consulta de beneficiarios con menos ayuda.
type LeastHelpedView struct {
	Categoria     string               `json:"categoria,omitempty"`
	Total         int                  `json:"total"`
	Beneficiarios []entity.LeastHelped `json:"beneficiarios"`
}
