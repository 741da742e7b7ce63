package entity

import "github.com/shopspring/decimal"

// LeastHelped beneficiario con pocas ayudas en los últimos 30 días.
type LeastHelped struct {
	NIF         string `json:"nif"`
	Nome        string `json:"nome"`
	Zona        string `json:"zona,omitempty"`
	TotalAjudas int    `json:"total_ajudas"`
}

// ZoneDistribution distribuciones por zona de residencia.
type ZoneDistribution struct {
	Zona               string `json:"zona"`
	TotalDistribuicoes int    `json:"total_distribuicoes"`
}

// TopBeneficiary beneficiario entre los que más ayudas recibieron.
type TopBeneficiary struct {
	NIF         string `json:"nif"`
	Nome        string `json:"nome"`
	TotalAjudas int    `json:"total_ajudas"`
}

// DistributionReport informe de distribución equitativa (últimos 30 días).
type DistributionReport struct {
	Periodo                string             `json:"periodo"`
	TotalBeneficiarios     int                `json:"total_beneficiarios"`
	BeneficiariosAtendidos int                `json:"beneficiarios_atendidos"`
	CoberturaPercentual    decimal.Decimal    `json:"cobertura_percentual"`
	DistribuicaoPorZona    []ZoneDistribution `json:"distribuicao_por_zona"`
	TopBeneficiarios       []TopBeneficiary   `json:"top_beneficiarios"`
}

// CategoryLimit cantidad máxima por artículo dentro de una ventana de días.
type CategoryLimit struct {
	PeriodoDias      int                        `json:"periodo_dias"`
	QuantidadeMaxima map[string]decimal.Decimal `json:"quantidade_maxima"`
}

// EquityPanel panel de alertas de equidad.
type EquityPanel struct {
	MenosAjuda   []LeastHelped            `json:"beneficiarios_menos_ajuda"`
	Distribuicao DistributionReport       `json:"distribuicao"`
	Limites      map[string]CategoryLimit `json:"limites"`
}
