package dto

import (
	"time"

	"github.com/jhoicas/painel-ajuda/internal/domain/entity"
)

// TabView control de pestaña del panel, con su contador.
type TabView struct {
	Filter string `json:"filter"`
	Label  string `json:"label"`
	Count  int    `json:"count"`
	Active bool   `json:"active"`
}

// InstitutionPanelView vista del panel de instituciones para la pestaña activa.
type InstitutionPanelView struct {
	ActiveTab    string               `json:"active_tab"`
	Tabs         []TabView            `json:"tabs"`
	Instituicoes []entity.Institution `json:"instituicoes"`
	Vazio        bool                 `json:"vazio"`
	LoadedAt     *time.Time           `json:"loaded_at,omitempty"`
}

// RejectInstitutionRequest cuerpo para rechazar una institución.
type RejectInstitutionRequest struct {
	Motivo string `json:"motivo"`
}

// SetTabRequest cuerpo para cambiar la pestaña activa.
type SetTabRequest struct {
	Tab string `json:"tab"`
}

// AvailabilityRequest comprueba un username o email.
type AvailabilityRequest struct {
	Campo string `json:"campo"` // username | email
	Valor string `json:"valor"`
}
