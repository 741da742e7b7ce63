package dto

import "github.com/jhoicas/painel-ajuda/internal/domain/entity"

// GenerateReportRequest período del informe a generar.
type GenerateReportRequest struct {
	Ano int `json:"ano"`
	Mes int `json:"mes"`
}

// ReportListView informes mensuales en caché.
type ReportListView struct {
	Total      int                    `json:"total"`
	Relatorios []entity.MonthlyReport `json:"relatorios"`
}

// PeriodListView meses disponibles para generar informe.
type PeriodListView struct {
	Total    int                   `json:"total"`
	Periodos []entity.PeriodOption `json:"periodos"`
}

// MonthlyReportView informe de un mes. Guardado indica si existe en el
// servidor; si es false es una vista previa calculada al momento.
type MonthlyReportView struct {
	Guardado  bool                 `json:"guardado"`
	Relatorio entity.MonthlyReport `json:"relatorio"`
}
