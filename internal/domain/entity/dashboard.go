package entity

import (
	"encoding/json"

	"github.com/shopspring/decimal"
)

// SystemStats cifras globales, iguales para todas las instituciones.
type SystemStats struct {
	TotalBeneficiarios    int `json:"total_beneficiarios"`
	BeneficiariosComAjuda int `json:"beneficiarios_com_ajuda"`
	BeneficiariosSemAjuda int `json:"beneficiarios_sem_ajuda"`
	TotalItensStock       int `json:"total_itens_stock"`
}

// InstitutionStats cifras de la institución con sesión abierta.
// MovimentosRecentes cuenta los últimos 7 días.
type InstitutionStats struct {
	Nome                   string          `json:"nome"`
	TotalMovimentos        int             `json:"total_movimentos"`
	TotalEntradas          decimal.Decimal `json:"total_entradas"`
	TotalSaidas            decimal.Decimal `json:"total_saidas"`
	BeneficiariosAtendidos int             `json:"beneficiarios_atendidos"`
	MovimentosRecentes     int             `json:"movimentos_recentes"`
}

// DashboardStats estadísticas del painel inicial.
type DashboardStats struct {
	Sistema     SystemStats      `json:"sistema"`
	Instituicao InstitutionStats `json:"instituicao"`
}

// Activity resumen de un movimiento reciente de la institución.
type Activity struct {
	ID               int64           `json:"id"`
	Tipo             string          `json:"tipo"`
	ItemNome         string          `json:"item_nome"`
	Quantidade       decimal.Decimal `json:"quantidade"`
	Unidade          string          `json:"unidade,omitempty"`
	Data             *Timestamp      `json:"data,omitempty"`
	Motivo           string          `json:"motivo,omitempty"`
	BeneficiarioNome string          `json:"beneficiario_nome,omitempty"`
	BeneficiarioNIF  string          `json:"beneficiario_nif,omitempty"`
	OrigemDoacao     string          `json:"origem_doacao,omitempty"`
}

// Niveles de SystemAlert.
const (
	AlertWarning = "warning" // stock bajo
	AlertDanger  = "danger"  // artículos agotados
)

// SystemAlert aviso de stock calculado por el servidor. Detalhes varía según
// el aviso (lista de artículos con stock o solo nombres) y se reenvía tal cual.
type SystemAlert struct {
	Tipo     string          `json:"tipo"`
	Titulo   string          `json:"titulo"`
	Mensagem string          `json:"mensagem"`
	Detalhes json.RawMessage `json:"detalhes,omitempty"`
}

// Dashboard agregado del painel inicial: estadísticas, actividad y avisos.
type Dashboard struct {
	Stats      DashboardStats `json:"stats"`
	Atividades []Activity     `json:"atividades"`
	Alertas    []SystemAlert  `json:"alertas"`
}
