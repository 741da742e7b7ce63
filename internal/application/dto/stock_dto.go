package dto

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/painel-ajuda/internal/domain/entity"
)

// StockView catálogo de artículos con su stock.
type StockView struct {
	Total      int                `json:"total"`
	SemStock   int                `json:"sem_stock"`
	StockTotal decimal.Decimal    `json:"stock_total"`
	Itens      []entity.StockItem `json:"itens"`
}

// MovementListView registro de movimientos, opcionalmente filtrado por tipo.
type MovementListView struct {
	Tipo       string            `json:"tipo,omitempty"`
	Total      int               `json:"total"`
	Movimentos []entity.Movement `json:"movimentos"`
}

// DistributionFormView datos necesarios para el formulario de salida.
type DistributionFormView struct {
	Itens         []entity.StockItem   `json:"itens"`
	Beneficiarios []entity.Beneficiary `json:"beneficiarios"`
}
