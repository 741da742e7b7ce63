package pdf_test

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/painel-ajuda/internal/domain/entity"
	"github.com/jhoicas/painel-ajuda/internal/infrastructure/pdf"
)

var generatedAt = time.Date(2025, 3, 10, 9, 30, 0, 0, time.UTC)

func assertPDF(t *testing.T, out []byte) {
	t.Helper()
	require.NotEmpty(t, out)
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF")), "la salida debe ser un PDF")
}

func TestStockSummary(t *testing.T) {
	r := pdf.NewMarotoRenderer("Painel de Ajuda")
	items := []entity.StockItem{
		{ID: 1, Nome: "Arroz", Categoria: "Alimentar", Unidade: "kg", StockTotal: decimal.RequireFromString("1250.5")},
		{ID: 2, Nome: "Leite", Unidade: "L", StockTotal: decimal.Zero},
	}

	out, err := r.StockSummary(context.Background(), items, generatedAt)
	require.NoError(t, err)
	assertPDF(t, out)
}

func TestStockSummary_SinArticulos(t *testing.T) {
	out, err := pdf.NewMarotoRenderer("").StockSummary(context.Background(), nil, generatedAt)
	require.NoError(t, err)
	assertPDF(t, out)
}

func TestMonthlyReport(t *testing.T) {
	rep := entity.MonthlyReport{
		Ano: 2025, Mes: 3,
		DataGeracao:     entity.NewTimestamp(generatedAt),
		TotalEntradas:   decimal.NewFromInt(40),
		TotalSaidas:     decimal.RequireFromString("12.5"),
		SaldoMensal:     decimal.RequireFromString("27.5"),
		MovimentosCount: 9,
		Itens: []entity.ReportItemLine{
			{ItemNome: "Arroz", Unidade: "kg", Entradas: decimal.NewFromInt(40), Saidas: decimal.RequireFromString("12.5")},
		},
	}

	out, err := pdf.NewMarotoRenderer("Painel de Ajuda").MonthlyReport(context.Background(), rep)
	require.NoError(t, err)
	assertPDF(t, out)
}
