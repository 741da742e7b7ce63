// Package pdf genera los documentos imprimibles del painel con Maroto v2.
//
// Layout de la página A4 (ambos documentos):
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Título + subtítulo   │  Fecha de generación         │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: una fila por artículo                               │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTALES                                                     │
//	│  FOOTER: leyenda                                             │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"strings"
	"time"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/painel-ajuda/internal/domain/entity"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 102, Blue: 68}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorAlert   = &props.Color{Red: 170, Green: 30, Blue: 30}
)

const dateLayout = "02/01/2006 15:04"

// ── Renderer ──────────────────────────────────────────────────────────────────

// MarotoRenderer implementa ports.DocumentRenderer usando Maroto v2.
type MarotoRenderer struct {
	author string
}

// NewMarotoRenderer construye el renderer; author aparece en los metadatos del PDF.
func NewMarotoRenderer(author string) *MarotoRenderer {
	return &MarotoRenderer{author: author}
}

// StockSummary genera el resumen de stock y devuelve sus bytes.
func (r *MarotoRenderer) StockSummary(_ context.Context, items []entity.StockItem, generatedAt time.Time) ([]byte, error) {
	m := r.newDocument("Resumo de Stock")

	m.AddRows(headerRow("RESUMO DE STOCK", fmt.Sprintf("%d itens no catálogo", len(items)), generatedAt))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))

	m.AddRows(tableHeaderRow([]headerCell{
		{"Item", 5, align.Left},
		{"Categoria", 3, align.Left},
		{"Unidade", 2, align.Center},
		{"Stock", 2, align.Right},
	}))
	semStock := 0
	for _, it := range items {
		var color *props.Color
		if !it.StockTotal.IsPositive() {
			color = colorAlert
			semStock++
		}
		m.AddRows(row.New(7).Add(
			col.New(5).Add(text.New(it.Nome, props.Text{Size: 8, Top: 1, Left: 1})),
			col.New(3).Add(text.New(nonEmpty(it.Categoria, "-"), props.Text{Size: 8, Top: 1, Color: colorGray})),
			col.New(2).Add(text.New(nonEmpty(it.Unidade, "-"), props.Text{Size: 8, Align: align.Center, Top: 1})),
			col.New(2).Add(text.New(formatQuantity(it.StockTotal), props.Text{
				Size: 8, Align: align.Right, Top: 1, Right: 1, Color: color,
			})),
		))
	}
	if len(items) == 0 {
		m.AddRows(emptyRow("Nenhum item registado."))
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalsRow([][2]string{
		{"Itens:", fmt.Sprintf("%d", len(items))},
		{"Sem stock:", fmt.Sprintf("%d", semStock)},
	}))
	m.AddRows(footerRow())

	return generate(m)
}

// MonthlyReport genera el informe mensual y devuelve sus bytes.
func (r *MarotoRenderer) MonthlyReport(_ context.Context, rep entity.MonthlyReport) ([]byte, error) {
	mes := nonEmpty(rep.MesNome, entity.MonthName(rep.Mes))
	m := r.newDocument(fmt.Sprintf("Relatório Mensal %s %d", mes, rep.Ano))

	var generated time.Time
	if rep.DataGeracao != nil {
		generated = rep.DataGeracao.Time
	}
	m.AddRows(headerRow("RELATÓRIO MENSAL", fmt.Sprintf("%s de %d", mes, rep.Ano), generated))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))

	m.AddRows(tableHeaderRow([]headerCell{
		{"Item", 5, align.Left},
		{"Unidade", 1, align.Center},
		{"Entradas", 2, align.Right},
		{"Saídas", 2, align.Right},
		{"Saldo", 2, align.Right},
	}))
	for _, l := range rep.Itens {
		m.AddRows(row.New(7).Add(
			col.New(5).Add(text.New(l.ItemNome, props.Text{Size: 8, Top: 1, Left: 1})),
			col.New(1).Add(text.New(nonEmpty(l.Unidade, "-"), props.Text{Size: 8, Align: align.Center, Top: 1})),
			col.New(2).Add(text.New(formatQuantity(l.Entradas), props.Text{Size: 8, Align: align.Right, Top: 1})),
			col.New(2).Add(text.New(formatQuantity(l.Saidas), props.Text{Size: 8, Align: align.Right, Top: 1})),
			col.New(2).Add(text.New(formatQuantity(l.Entradas.Sub(l.Saidas)), props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1})),
		))
	}
	if len(rep.Itens) == 0 {
		m.AddRows(emptyRow("Sem movimentos neste período."))
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalsRow([][2]string{
		{"Total entradas:", formatQuantity(rep.TotalEntradas)},
		{"Total saídas:", formatQuantity(rep.TotalSaidas)},
		{"Saldo mensal:", formatQuantity(rep.SaldoMensal)},
		{"Movimentos:", fmt.Sprintf("%d", rep.MovimentosCount)},
	}))
	m.AddRows(footerRow())

	return generate(m)
}

// newDocument documento A4 con los márgenes y la fuente comunes.
func (r *MarotoRenderer) newDocument(title string) core.Maroto {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle(title, true).
		WithAuthor(r.author, true).
		Build()
	return maroto.New(cfg)
}

func generate(m core.Maroto) ([]byte, error) {
	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: título y subtítulo (izq) y fecha de generación (der).
func headerRow(title, subtitle string, generatedAt time.Time) core.Row {
	fecha := "-"
	if !generatedAt.IsZero() {
		fecha = generatedAt.Format(dateLayout)
	}
	return row.New(18).Add(
		col.New(8).Add(
			text.New(title, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New(subtitle, props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(4).Add(
			text.New("Gerado em", props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right,
				Color: colorPrimary, Top: 1,
			}),
			text.New(fecha, props.Text{
				Size: 9, Align: align.Right, Top: 7,
			}),
		),
	)
}

type headerCell struct {
	label string
	size  int
	align align.Type
}

// tableHeaderRow: cabecera de la tabla.
func tableHeaderRow(cells []headerCell) core.Row {
	cols := make([]core.Col, 0, len(cells))
	for _, c := range cells {
		cols = append(cols, col.New(c.size).Add(text.New(c.label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: c.align,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		})))
	}
	return row.New(8).Add(cols...)
}

func emptyRow(msg string) core.Row {
	return row.New(8).Add(col.New(12).Add(
		text.New(msg, props.Text{Size: 8, Align: align.Center, Color: colorGray, Top: 2}),
	))
}

// totalsRow: pares etiqueta/valor alineados a la derecha.
func totalsRow(pairs [][2]string) core.Row {
	labels := make([]core.Component, 0, len(pairs))
	values := make([]core.Component, 0, len(pairs))
	for i, p := range pairs {
		top := float64(i) * 5
		labels = append(labels, text.New(p[0], props.Text{
			Style: fontstyle.Bold, Size: 9, Align: align.Right, Right: 2, Top: top,
		}))
		values = append(values, text.New(p[1], props.Text{
			Size: 9, Align: align.Right, Right: 1, Top: top,
		}))
	}
	return row.New(float64(len(pairs))*5+4).Add(
		col.New(6),
		col.New(3).Add(labels...),
		col.New(3).Add(values...),
	)
}

func footerRow() core.Row {
	return row.New(10).Add(col.New(12).Add(
		text.New("Documento gerado a partir dos dados confirmados pelo servidor.", props.Text{
			Size: 6.5, Color: colorGray, Top: 4,
		}),
	))
}

// ── helpers ───────────────────────────────────────────────────────────────────

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}

// formatQuantity formato português: milhares com ponto, decimais com vírgula.
// Ej: 1234.5 → "1.234,50", 25 → "25".
func formatQuantity(d decimal.Decimal) string {
	neg := d.IsNegative()
	s := d.Abs().StringFixed(2)
	intPart, frac, _ := strings.Cut(s, ".")
	out := groupThousands(intPart)
	if frac != "00" {
		out += "," + frac
	}
	if neg {
		out = "-" + out
	}
	return out
}

// groupThousands inserta puntos de miles en un string numérico sin decimales.
// Ej: "25000" → "25.000", "1000000" → "1.000.000"
func groupThousands(s string) string {
	n := len(s)
	if n <= 3 {
		return s
	}
	buf := make([]byte, 0, n+n/3)
	for i, c := range []byte(s) {
		if i > 0 && (n-i)%3 == 0 {
			buf = append(buf, '.')
		}
		buf = append(buf, c)
	}
	return string(buf)
}
