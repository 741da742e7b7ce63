package entity

import (
	"fmt"

	"github.com/shopspring/decimal"
)

var monthNames = [...]string{
	"Janeiro", "Fevereiro", "Março", "Abril", "Maio", "Junho",
	"Julho", "Agosto", "Setembro", "Outubro", "Novembro", "Dezembro",
}

// MonthName nombre del mes en portugués (1-12).
func MonthName(mes int) string {
	if mes < 1 || mes > 12 {
		return fmt.Sprintf("Mês %d", mes)
	}
	return monthNames[mes-1]
}

// ReportPeriod clave (año, mes) de un informe mensual.
type ReportPeriod struct {
	Ano int `json:"ano"`
	Mes int `json:"mes"`
}

// Valid indica si el período es un mes válido.
func (p ReportPeriod) Valid() bool {
	return p.Ano > 0 && p.Mes >= 1 && p.Mes <= 12
}

// ReportItemLine totales por artículo en un informe mensual.
type ReportItemLine struct {
	ItemNome string          `json:"item_nome"`
	Unidade  string          `json:"unidade,omitempty"`
	Entradas decimal.Decimal `json:"entradas"`
	Saidas   decimal.Decimal `json:"saidas"`
}

// MonthlyReport informe mensual agregado por el servidor.
type MonthlyReport struct {
	ID              int64            `json:"id,omitempty"`
	Ano             int              `json:"ano"`
	Mes             int              `json:"mes"`
	MesNome         string           `json:"mes_nome,omitempty"`
	DataGeracao     *Timestamp       `json:"data_geracao,omitempty"`
	TotalEntradas   decimal.Decimal  `json:"total_entradas"`
	TotalSaidas     decimal.Decimal  `json:"total_saidas"`
	SaldoMensal     decimal.Decimal  `json:"saldo_mensal"`
	MovimentosCount int              `json:"movimentos_count"`
	Itens           []ReportItemLine `json:"itens,omitempty"`
}

// Period devuelve la clave del informe.
func (r MonthlyReport) Period() ReportPeriod {
	return ReportPeriod{Ano: r.Ano, Mes: r.Mes}
}

// PeriodOption mes con movimientos para el que se puede generar informe.
type PeriodOption struct {
	Ano     int    `json:"ano"`
	Mes     int    `json:"mes"`
	MesNome string `json:"mes_nome,omitempty"`
}

// Period devuelve la clave del período.
func (p PeriodOption) Period() ReportPeriod {
	return ReportPeriod{Ano: p.Ano, Mes: p.Mes}
}
