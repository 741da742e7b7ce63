package entity

import "github.com/shopspring/decimal"

// StockItem artículo del catálogo de stock. StockTotal lo calcula el servidor
// (entradas - saídas) y nunca se modifica en el cliente.
type StockItem struct {
	ID               int64           `json:"id"`
	Nome             string          `json:"nome"`
	Descricao        string          `json:"descricao,omitempty"`
	Unidade          string          `json:"unidade"`
	Categoria        string          `json:"categoria,omitempty"`
	Ativo            bool            `json:"ativo"`
	StockTotal       decimal.Decimal `json:"stock_total"`
	StockInstituicao decimal.Decimal `json:"stock_instituicao"`
}
