package ports

import (
	"context"
	"time"

	"github.com/jhoicas/painel-ajuda/internal/domain/entity"
)

// DocumentRenderer puerto de salida para los documentos imprimibles.
// Solo recibe datos ya presentes en la caché; no hace peticiones.
type DocumentRenderer interface {
	// StockSummary resumen del stock actual por artículo.
	StockSummary(ctx context.Context, items []entity.StockItem, generatedAt time.Time) ([]byte, error)
	// MonthlyReport informe mensual de entradas y salidas.
	MonthlyReport(ctx context.Context, report entity.MonthlyReport) ([]byte, error)
}
