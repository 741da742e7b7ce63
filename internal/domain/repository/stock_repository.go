package repository

import (
	"context"

	"github.com/jhoicas/painel-ajuda/internal/domain/entity"
)

// StockRepository puerto hacia la API remota de stock.
type StockRepository interface {
	ListItems(ctx context.Context) ([]entity.StockItem, error)
	ListMovements(ctx context.Context) ([]entity.Movement, error)
	RegisterEntrada(ctx context.Context, in entity.EntradaRequest) (*entity.Movement, error)
	RegisterSaida(ctx context.Context, in entity.SaidaRequest) (*entity.SaidaResult, error)
}
